package gpx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Coordinate is a single track point in (longitude, latitude) order,
// matching GeoJSON position order.
type Coordinate struct {
	Lon float64
	Lat float64
}

// ParseFile reads a GPX file and flattens every track and segment into a
// single ordered coordinate sequence. A well-formed file with no track
// points yields an empty slice, not an error.
func ParseFile(path string) ([]Coordinate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	coords, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return coords, nil
}

// Parse decodes GPX from r token by token, collecting the lat/lon attributes
// of each <trkpt> in document order. Only track points count; waypoints and
// route points are ignored.
func Parse(r io.Reader) ([]Coordinate, error) {
	dec := xml.NewDecoder(r)

	var coords []Coordinate
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return coords, nil
		}
		if err != nil {
			return nil, fmt.Errorf("XML decode: %w", err)
		}

		el, ok := tok.(xml.StartElement)
		if !ok || el.Name.Local != "trkpt" {
			continue
		}

		var lat, lon float64
		var haveLat, haveLon bool
		for _, a := range el.Attr {
			switch a.Name.Local {
			case "lat":
				lat, err = strconv.ParseFloat(a.Value, 64)
				haveLat = true
			case "lon":
				lon, err = strconv.ParseFloat(a.Value, 64)
				haveLon = true
			}
			if err != nil {
				return nil, fmt.Errorf("trkpt %s=%q: %w", a.Name.Local, a.Value, err)
			}
		}
		if !haveLat || !haveLon {
			return nil, fmt.Errorf("trkpt missing lat/lon attributes")
		}
		coords = append(coords, Coordinate{Lon: lon, Lat: lat})
	}
}

// Positions converts a coordinate sequence to the [[lon, lat], ...] nesting
// used by GeoJSON LineString geometry, preserving order.
func Positions(coords []Coordinate) [][]float64 {
	positions := make([][]float64, len(coords))
	for i, c := range coords {
		positions[i] = []float64{c.Lon, c.Lat}
	}
	return positions
}
