// Package gpx serializes point chunks as GPX 1.1 track files.
package gpx

import (
	"encoding/xml"

	"github.com/banshee-data/timeline2gpx/internal/track"
)

// Creator identifies this tool in the gpx root element.
const Creator = "timeline2gpx"

// trackName is the fixed name of every emitted track.
const trackName = "Timeline"

// timeLayout renders trkpt timestamps in ISO 8601, keeping each point's own
// UTC offset and trimming trailing fractional zeros.
const timeLayout = "2006-01-02T15:04:05.999999-07:00"

// File is the GPX 1.1 document emitted for one chunk.
type File struct {
	XMLName xml.Name `xml:"gpx"`
	Xmlns   string   `xml:"xmlns,attr"`
	Version string   `xml:"version,attr"`
	Creator string   `xml:"creator,attr"`
	Track   Track    `xml:"trk"`
}

// Track is the single trk element of a file.
type Track struct {
	Name    string  `xml:"name"`
	Segment Segment `xml:"trkseg"`
}

// Segment is the single trkseg element of a track.
type Segment struct {
	Points []TrackPoint `xml:"trkpt"`
}

// TrackPoint is one trkpt element.
type TrackPoint struct {
	Lat  float64 `xml:"lat,attr"`
	Lon  float64 `xml:"lon,attr"`
	Time string  `xml:"time"`
}

// Document assembles the GPX document for a chunk.
func Document(chunk []track.Point) File {
	seg := Segment{Points: make([]TrackPoint, 0, len(chunk))}
	for _, p := range chunk {
		seg.Points = append(seg.Points, TrackPoint{
			Lat:  p.Latitude,
			Lon:  p.Longitude,
			Time: p.Time.Format(timeLayout),
		})
	}
	return File{
		Xmlns:   "http://www.topografix.com/GPX/1/1",
		Version: "1.1",
		Creator: Creator,
		Track:   Track{Name: trackName, Segment: seg},
	}
}
