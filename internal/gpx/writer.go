package gpx

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"strings"

	"github.com/banshee-data/timeline2gpx/internal/fsutil"
	"github.com/banshee-data/timeline2gpx/internal/track"
)

// Writer emits sequence-numbered GPX files derived from one base output
// path. The sequence starts at 0 and advances only when a file is written.
type Writer struct {
	fs     fsutil.FileSystem
	logger *slog.Logger
	base   string
	seq    int
}

// NewWriter returns a Writer that numbers files from base. A ".gpx"
// extension on base is preserved with the sequence number inserted before
// it; otherwise "_NNNNN.gpx" is appended.
func NewWriter(fsys fsutil.FileSystem, logger *slog.Logger, base string) *Writer {
	return &Writer{fs: fsys, logger: logger, base: base}
}

// Write serializes chunk as the next numbered GPX file and returns the
// number of points written. An empty chunk writes nothing and does not
// advance the sequence.
func (w *Writer) Write(chunk []track.Point) (int, error) {
	if len(chunk) == 0 {
		return 0, nil
	}

	name := w.nextName()
	f, err := w.fs.Create(name)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := f.Write([]byte(xml.Header)); err != nil {
		f.Close()
		return 0, fmt.Errorf("write %s: %w", name, err)
	}
	enc := xml.NewEncoder(f)
	enc.Indent("", "  ")
	if err := enc.Encode(Document(chunk)); err != nil {
		f.Close()
		return 0, fmt.Errorf("encode %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", name, err)
	}

	w.seq++
	w.logger.Info("wrote track", "points", len(chunk), "file", name)
	return len(chunk), nil
}

// Files returns how many files have been written so far.
func (w *Writer) Files() int {
	return w.seq
}

func (w *Writer) nextName() string {
	return fmt.Sprintf("%s_%05d.gpx", strings.TrimSuffix(w.base, ".gpx"), w.seq)
}
