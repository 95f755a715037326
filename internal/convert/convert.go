// Package convert runs the export-to-GPX pipeline: load, flatten, sort,
// split, write.
package convert

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/banshee-data/timeline2gpx/internal/fsutil"
	"github.com/banshee-data/timeline2gpx/internal/gpx"
	"github.com/banshee-data/timeline2gpx/internal/timeline"
	"github.com/banshee-data/timeline2gpx/internal/track"
)

// ErrOutputExists is returned when the base output path already exists.
// The check runs before the input is touched, so a re-run against the same
// output path never reads or writes anything.
var ErrOutputExists = errors.New("output path already exists")

// ErrInputNotFound is returned when the input path does not exist.
var ErrInputNotFound = errors.New("input file does not exist")

// Options configure a single conversion run.
type Options struct {
	// Input is the timeline JSON export to read.
	Input string

	// Output is the base path for generated GPX files.
	Output string

	// MaxPoints and MaxDays bound each output file; zero or negative means
	// unlimited.
	MaxPoints int
	MaxDays   int

	// Start and End bound the output by calendar date (inclusive). The zero
	// time means unbounded.
	Start time.Time
	End   time.Time
}

// Run executes one conversion. Precondition failures (existing output,
// missing input) and malformed export content all surface as errors; nothing
// is retried and a failure mid-run leaves any files already written.
func Run(fsys fsutil.FileSystem, logger *slog.Logger, opts Options) error {
	if fsys.Exists(opts.Output) {
		return fmt.Errorf("%w: %s", ErrOutputExists, opts.Output)
	}
	if !fsys.Exists(opts.Input) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, opts.Input)
	}
	if dir := filepath.Dir(opts.Output); dir != "." {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	segments, err := timeline.Load(fsys, opts.Input, logger)
	if err != nil {
		return err
	}
	points, err := timeline.Flatten(segments, logger)
	if err != nil {
		return err
	}
	track.SortByTime(points)

	splitter := track.Splitter{
		MaxPoints: opts.MaxPoints,
		MaxDays:   opts.MaxDays,
		Start:     opts.Start,
		End:       opts.End,
	}
	writer := gpx.NewWriter(fsys, logger, opts.Output)
	written := 0
	for _, chunk := range splitter.Split(points) {
		n, err := writer.Write(chunk)
		if err != nil {
			return err
		}
		written += n
	}

	logger.Info("conversion complete",
		"segments", len(segments),
		"points", len(points),
		"written", written,
		"files", writer.Files())
	return nil
}
