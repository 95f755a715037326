// Package testutil provides shared test utilities and fixtures.
//
// This package centralises point builders and raw export-document assembly
// to reduce duplication across pipeline test files.
package testutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/banshee-data/timeline2gpx/internal/track"
)

// MustTime parses an RFC 3339 timestamp for fixture construction, panicking
// on malformed input so broken fixtures fail loudly.
func MustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		panic(fmt.Sprintf("testutil: bad fixture time %q: %v", s, err))
	}
	return t
}

// Point builds a track.Point at the given RFC 3339 timestamp.
func Point(ts string, lat, lng float64) track.Point {
	return track.Point{Time: MustTime(ts), Latitude: lat, Longitude: lng}
}

// ExportJSON assembles a timeline export document from rendered segment
// objects.
func ExportJSON(segments ...string) string {
	return `{"semanticSegments":[` + strings.Join(segments, ",") + `]}`
}

// PathSegment renders a segment object carrying a timelinePath built from
// entries rendered by PathPoint.
func PathSegment(start, end string, points ...string) string {
	return fmt.Sprintf(`{"startTime":%q,"endTime":%q,"timelinePath":[%s]}`,
		start, end, strings.Join(points, ","))
}

// VisitSegment renders a path-less segment, as produced for place visits.
func VisitSegment(start, end string) string {
	return fmt.Sprintf(`{"startTime":%q,"endTime":%q,"visit":{}}`, start, end)
}

// PathPoint renders one timelinePath entry.
func PathPoint(point, ts string) string {
	return fmt.Sprintf(`{"point":%q,"time":%q}`, point, ts)
}
