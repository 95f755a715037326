package timeline_test

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/timeline2gpx/internal/fsutil"
	"github.com/banshee-data/timeline2gpx/internal/logging"
	"github.com/banshee-data/timeline2gpx/internal/testutil"
	"github.com/banshee-data/timeline2gpx/internal/timeline"
	"github.com/banshee-data/timeline2gpx/internal/track"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
}

func TestLoad(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	mfs.WriteFile("timeline.json", []byte(testutil.ExportJSON(
		testutil.PathSegment(
			"2024-01-01T09:00:00.000000Z", "2024-01-01T10:00:00.000000Z",
			testutil.PathPoint("51.5, -0.1", "2024-01-01T09:30:00.000000Z"),
		),
		testutil.VisitSegment("2024-01-01T10:00:00.000000Z", "2024-01-01T11:00:00.000000Z"),
	)))

	segments, err := timeline.Load(mfs, "timeline.json", discard())
	require.NoError(t, err)

	require.Len(t, segments, 2)
	assert.Len(t, segments[0].TimelinePath, 1)
	assert.Empty(t, segments[1].TimelinePath)
}

func TestLoadLogsSegmentCount(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	mfs.WriteFile("timeline.json", []byte(testutil.ExportJSON(
		testutil.VisitSegment("2024-01-01T10:00:00.000000Z", "2024-01-01T11:00:00.000000Z"),
	)))

	var buf bytes.Buffer
	logger, err := logging.New(&buf, "INFO")
	require.NoError(t, err)

	_, err = timeline.Load(mfs, "timeline.json", logger)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "segments=1")
}

func TestLoadMissingFile(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()

	_, err := timeline.Load(mfs, "nope.json", discard())
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadInvalidJSON(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	mfs.WriteFile("timeline.json", []byte("{not json"))

	_, err := timeline.Load(mfs, "timeline.json", discard())

	var ferr *timeline.FormatError
	require.True(t, errors.As(err, &ferr))
}

func TestLoadMissingSegmentsKey(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	mfs.WriteFile("timeline.json", []byte(`{"rawSignals":[]}`))

	_, err := timeline.Load(mfs, "timeline.json", discard())

	var ferr *timeline.FormatError
	require.True(t, errors.As(err, &ferr))
	assert.Contains(t, err.Error(), "semanticSegments")
}

func TestFlatten(t *testing.T) {
	segments := []timeline.Segment{
		{
			StartTime: "2024-01-01T09:00:00.000000Z",
			EndTime:   "2024-01-01T10:00:00.000000Z",
			TimelinePath: []timeline.PathPoint{
				{Point: "51.5074, -0.1278", Time: "2024-01-01T09:10:00.000000Z"},
				{Point: "51.5080, -0.1260", Time: "2024-01-01T09:20:00.000000Z"},
			},
		},
		{
			// Visit segments decode without a path and contribute nothing.
			StartTime: "2024-01-01T10:00:00.000000Z",
			EndTime:   "2024-01-01T11:00:00.000000Z",
		},
		{
			StartTime: "2024-01-01T11:00:00.000000Z",
			EndTime:   "2024-01-01T12:00:00.000000Z",
			TimelinePath: []timeline.PathPoint{
				{Point: "48.8566Â°, 2.3522Â°", Time: "2024-01-01T11:30:00.000000+01:00"},
			},
		},
	}

	points, err := timeline.Flatten(segments, discard())
	require.NoError(t, err)

	want := []track.Point{
		testutil.Point("2024-01-01T09:10:00Z", 51.5074, -0.1278),
		testutil.Point("2024-01-01T09:20:00Z", 51.5080, -0.1260),
		testutil.Point("2024-01-01T11:30:00+01:00", 48.8566, 2.3522),
	}
	if diff := cmp.Diff(want, points); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenPreservesSourceOrder(t *testing.T) {
	// Flatten does not sort; sequencing happens later.
	segments := []timeline.Segment{
		{
			StartTime: "2024-01-02T09:00:00.000000Z",
			EndTime:   "2024-01-02T10:00:00.000000Z",
			TimelinePath: []timeline.PathPoint{
				{Point: "2, 2", Time: "2024-01-02T09:00:00.000000Z"},
			},
		},
		{
			StartTime: "2024-01-01T09:00:00.000000Z",
			EndTime:   "2024-01-01T10:00:00.000000Z",
			TimelinePath: []timeline.PathPoint{
				{Point: "1, 1", Time: "2024-01-01T09:00:00.000000Z"},
			},
		},
	}

	points, err := timeline.Flatten(segments, discard())
	require.NoError(t, err)

	require.Len(t, points, 2)
	assert.Equal(t, 2.0, points[0].Latitude)
	assert.Equal(t, 1.0, points[1].Latitude)
}

func TestFlattenMalformedPoint(t *testing.T) {
	segments := []timeline.Segment{
		{
			StartTime: "2024-01-01T09:00:00.000000Z",
			EndTime:   "2024-01-01T10:00:00.000000Z",
			TimelinePath: []timeline.PathPoint{
				{Point: "51.5, -0.1", Time: "2024-01-01T09:10:00.000000Z"},
				{Point: "nowhere", Time: "2024-01-01T09:20:00.000000Z"},
			},
		},
	}

	_, err := timeline.Flatten(segments, discard())

	var ferr *timeline.FormatError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, "point", ferr.Field)
}

func TestFlattenMalformedTimestamp(t *testing.T) {
	segments := []timeline.Segment{
		{
			StartTime: "2024-01-01T09:00:00.000000Z",
			EndTime:   "2024-01-01T10:00:00.000000Z",
			TimelinePath: []timeline.PathPoint{
				{Point: "51.5, -0.1", Time: "yesterday"},
			},
		},
	}

	_, err := timeline.Flatten(segments, discard())

	var ferr *timeline.FormatError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, "time", ferr.Field)
}

func TestFlattenMalformedSegmentBounds(t *testing.T) {
	// Segment bounds are only logged, but they parse with the same layout
	// and abort the run when malformed.
	segments := []timeline.Segment{
		{StartTime: "not a time", EndTime: "2024-01-01T10:00:00.000000Z"},
	}

	_, err := timeline.Flatten(segments, discard())
	require.Error(t, err)

	var ferr *timeline.FormatError
	require.True(t, errors.As(err, &ferr))
}
