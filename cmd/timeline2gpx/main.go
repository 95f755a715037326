// Command timeline2gpx converts a Google Timeline JSON export into one or
// more GPX 1.1 track files, optionally filtered by date range and chunked by
// point count or day span.
package main

import (
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/banshee-data/timeline2gpx/internal/convert"
	"github.com/banshee-data/timeline2gpx/internal/fsutil"
	"github.com/banshee-data/timeline2gpx/internal/logging"
)

const dateLayout = "2006-01-02"

var (
	input    = flag.StringP("input", "i", "", "input timeline JSON file (required)")
	output   = flag.StringP("output", "o", "", "output GPX file (required)")
	count    = flag.IntP("count", "c", -1, "maximum number of points per track")
	days     = flag.IntP("days", "d", -1, "maximum number of days per track")
	start    = flag.StringP("start", "s", "", "start date (YYYY-MM-DD)")
	end      = flag.StringP("end", "e", "", "end date (YYYY-MM-DD)")
	loglevel = flag.StringP("loglevel", "l", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")
)

// parseWindow turns the optional start/end date flags into the pipeline's
// date window. Empty strings map to the zero time, meaning unbounded.
func parseWindow(startArg, endArg string) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if startArg != "" {
		if from, err = time.Parse(dateLayout, startArg); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", startArg, err)
		}
	}
	if endArg != "" {
		if to, err = time.Parse(dateLayout, endArg); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", endArg, err)
		}
	}
	return from, to, nil
}

func main() {
	flag.Parse()

	logger, err := logging.New(os.Stderr, *loglevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "input and output paths are required")
		flag.Usage()
		os.Exit(1)
	}
	from, to, err := parseWindow(*start, *end)
	if err != nil {
		logger.Error("bad date filter", "err", err)
		os.Exit(1)
	}

	opts := convert.Options{
		Input:     *input,
		Output:    *output,
		MaxPoints: *count,
		MaxDays:   *days,
		Start:     from,
		End:       to,
	}
	if err := convert.Run(fsutil.OSFileSystem{}, logger, opts); err != nil {
		logger.Error("conversion failed", "err", err)
		os.Exit(1)
	}
}
