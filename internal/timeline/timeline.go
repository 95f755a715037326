// Package timeline reads a Google Timeline JSON export and flattens its
// path-bearing semantic segments into a point sequence.
package timeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/banshee-data/timeline2gpx/internal/fsutil"
	"github.com/banshee-data/timeline2gpx/internal/track"
)

// Segment is one semantic segment of the export. Only segments carrying a
// timelinePath contribute points; visit and activity segments decode to a
// segment with an empty path and are ignored.
type Segment struct {
	StartTime    string      `json:"startTime"`
	EndTime      string      `json:"endTime"`
	TimelinePath []PathPoint `json:"timelinePath"`
}

// PathPoint is one raw coordinate/timestamp sample inside a timelinePath.
type PathPoint struct {
	Point string `json:"point"` // "<lat>, <lng>"
	Time  string `json:"time"`
}

// Load reads the export at path and returns its semantic segment list.
// A missing file surfaces as the filesystem's not-found error; a document
// that is not JSON or lacks the semanticSegments key is a FormatError.
func Load(fsys fsutil.FileSystem, path string, logger *slog.Logger) ([]Segment, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &FormatError{Field: "export document", Err: err}
	}
	raw, ok := doc["semanticSegments"]
	if !ok {
		return nil, &FormatError{Field: "export document", Err: errors.New("no semanticSegments key")}
	}
	var segments []Segment
	if err := json.Unmarshal(raw, &segments); err != nil {
		return nil, &FormatError{Field: "semanticSegments", Err: err}
	}

	logger.Info("loaded timeline export", "path", path, "segments", len(segments))
	return segments, nil
}

// Flatten walks every segment's timelinePath and appends one track.Point per
// sample, in source order. The result is not yet sorted. Any malformed
// coordinate or timestamp aborts the flatten; a single export converts
// all-or-nothing.
func Flatten(segments []Segment, logger *slog.Logger) ([]track.Point, error) {
	var points []track.Point
	for _, seg := range segments {
		// Segment bounds are parsed for every segment kind, but only used
		// in the per-path debug line.
		segStart, err := ParseTime(seg.StartTime)
		if err != nil {
			return nil, fmt.Errorf("segment startTime: %w", err)
		}
		segEnd, err := ParseTime(seg.EndTime)
		if err != nil {
			return nil, fmt.Errorf("segment endTime: %w", err)
		}
		if len(seg.TimelinePath) == 0 {
			continue
		}
		logger.Debug("path segment", "start", segStart, "end", segEnd, "points", len(seg.TimelinePath))

		for _, raw := range seg.TimelinePath {
			lat, lng, err := ParseLatLng(raw.Point)
			if err != nil {
				return nil, err
			}
			ts, err := ParseTime(raw.Time)
			if err != nil {
				return nil, err
			}
			points = append(points, track.Point{Time: ts, Latitude: lat, Longitude: lng})
		}
	}
	return points, nil
}
