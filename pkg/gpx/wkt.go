package gpx

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatLineString renders a coordinate sequence as WKT, each point as
// "<lon> <lat>" joined by ", ". An empty sequence renders as the empty
// string rather than LINESTRING().
func FormatLineString(coords []Coordinate) string {
	if len(coords) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("LINESTRING(")
	for i, c := range coords {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(c.Lon, 'f', -1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(c.Lat, 'f', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}

// ParseLineString is the inverse of FormatLineString. The empty string
// parses to an empty sequence.
func ParseLineString(s string) ([]Coordinate, error) {
	if s == "" {
		return nil, nil
	}

	body, ok := strings.CutPrefix(s, "LINESTRING(")
	if !ok {
		return nil, fmt.Errorf("not a LINESTRING: %q", s)
	}
	body, ok = strings.CutSuffix(body, ")")
	if !ok {
		return nil, fmt.Errorf("unterminated LINESTRING: %q", s)
	}

	pairs := strings.Split(body, ",")
	coords := make([]Coordinate, 0, len(pairs))
	for _, pair := range pairs {
		fields := strings.Fields(pair)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed coordinate pair %q", strings.TrimSpace(pair))
		}
		lon, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("longitude %q: %w", fields[0], err)
		}
		lat, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("latitude %q: %w", fields[1], err)
		}
		coords = append(coords, Coordinate{Lon: lon, Lat: lat})
	}
	return coords, nil
}
