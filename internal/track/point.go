// Package track holds the point model and the chunking logic that carves a
// time-ordered point sequence into bounded runs for output.
package track

import (
	"sort"
	"time"
)

// Point is a single located sample taken from the export. Immutable once
// created.
type Point struct {
	Time      time.Time
	Latitude  float64
	Longitude float64
}

// SortByTime stable-sorts points ascending by timestamp. Points with equal
// timestamps keep their source order.
func SortByTime(points []Point) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Time.Before(points[j].Time)
	})
}

// DateOf reduces a timestamp to its calendar date in the timestamp's own
// offset, normalised to UTC midnight so dates compare and subtract cleanly.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole calendar days from a's date to b's date.
// Negative when b's date precedes a's.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}
