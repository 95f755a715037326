package track

import "time"

// Splitter carves a time-sorted point sequence into chunks bounded by point
// count and calendar-day span, constrained to an optional date window.
//
// The zero value splits nothing out: no window, no limits, one chunk.
type Splitter struct {
	// MaxPoints flushes a chunk once it holds this many points. Zero or
	// negative disables the limit.
	MaxPoints int

	// MaxDays flushes a chunk once the date span from its first point
	// reaches this many days. Zero or negative disables the limit.
	MaxDays int

	// Start and End bound the output by calendar date (inclusive), compared
	// against each point's date in its own UTC offset. The zero time means
	// unbounded.
	Start time.Time
	End   time.Time
}

// Split scans points once, left to right, and returns the chunks in emission
// order. The final chunk is always present and may be empty; the writer
// skips empty chunks.
//
// The scan keeps an anchor at the first unflushed point and never tests
// index 0 against the window or the limits. A point whose date falls before
// Start advances the anchor past it, discarding anything accumulated since
// the last flush; because points are sorted by absolute time but compared by
// local date, a west-of-anchor offset can land such a point mid-sequence.
// A point whose date falls after End stops the scan and drops the remainder.
func (s Splitter) Split(points []Point) [][]Point {
	var chunks [][]Point

	start := 0
	stop := len(points)
	for i := 1; i < len(points); i++ {
		date := DateOf(points[i].Time)
		if !s.Start.IsZero() && date.Before(s.Start) {
			start = i + 1
			continue
		}
		if !s.End.IsZero() && date.After(s.End) {
			stop = i
			break
		}
		if s.MaxPoints > 0 && i-start >= s.MaxPoints {
			chunks = append(chunks, points[start:i])
			start = i
		}
		if s.MaxDays > 0 && DaysBetween(points[start].Time, points[i].Time) >= s.MaxDays {
			chunks = append(chunks, points[start:i])
			start = i
		}
	}
	return append(chunks, points[start:stop])
}
