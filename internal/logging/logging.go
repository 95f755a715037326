// Package logging builds the leveled logger handed to the pipeline, so log
// output is injected rather than configured through process-global state.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// New returns a text slog.Logger writing to w at the named level. Level
// names are matched case-insensitively; WARNING is accepted as an alias
// for WARN.
func New(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToUpper(level) {
	case "", "INFO":
		lvl = slog.LevelInfo
	case "DEBUG":
		lvl = slog.LevelDebug
	case "WARN", "WARNING":
		lvl = slog.LevelWarn
	case "ERROR":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
