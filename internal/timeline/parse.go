package timeline

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// TimeLayout matches the export's timestamps: ISO 8601 with optional
// fractional seconds and either a numeric UTC offset or Z.
const TimeLayout = "2006-01-02T15:04:05.999999Z07:00"

// Exports produced from a double-encoded dump carry a mojibake degree pair
// after each coordinate; correctly decoded dumps carry a bare degree sign.
// Both are stripped before splitting. Nothing else is normalised.
const (
	mojibakeDegree = "Â°"
	degree         = "°"
)

// ParseLatLng splits a "<lat>, <lng>" coordinate string into its two parts.
// Values are trimmed and parsed as floats; latitude must lie in [-90, 90]
// and longitude in [-180, 180].
func ParseLatLng(s string) (lat, lng float64, err error) {
	clean := strings.ReplaceAll(s, mojibakeDegree, "")
	clean = strings.ReplaceAll(clean, degree, "")

	parts := strings.Split(clean, ",")
	if len(parts) != 2 {
		return 0, 0, &FormatError{Field: "point", Value: s, Err: errors.New("want two comma-separated values")}
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, &FormatError{Field: "point", Value: s, Err: err}
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, &FormatError{Field: "point", Value: s, Err: err}
	}
	if lat < -90 || lat > 90 {
		return 0, 0, &FormatError{Field: "point", Value: s, Err: errors.New("latitude out of range")}
	}
	if lng < -180 || lng > 180 {
		return 0, 0, &FormatError{Field: "point", Value: s, Err: errors.New("longitude out of range")}
	}
	return lat, lng, nil
}

// ParseTime parses an export timestamp, keeping its UTC offset.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, &FormatError{Field: "time", Value: s, Err: err}
	}
	return t, nil
}
