package gpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLineString(t *testing.T) {
	tests := []struct {
		name   string
		coords []Coordinate
		want   string
	}{
		{"empty", nil, ""},
		{"single point", []Coordinate{{Lon: 153.026, Lat: -27.4705}}, "LINESTRING(153.026 -27.4705)"},
		{
			"two points",
			[]Coordinate{{Lon: 153.026, Lat: -27.4705}, {Lon: 153.027, Lat: -27.471}},
			"LINESTRING(153.026 -27.4705, 153.027 -27.471)",
		},
		{"whole degrees", []Coordinate{{Lon: 153, Lat: -27}}, "LINESTRING(153 -27)"},
	}
	for _, tt := range tests {
		got := FormatLineString(tt.coords)
		if got != tt.want {
			t.Errorf("%s: FormatLineString() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestParseLineString(t *testing.T) {
	coords, err := ParseLineString("LINESTRING(153.026 -27.4705, 153.027 -27.471)")
	assert.NoError(t, err)
	assert.Equal(t, []Coordinate{
		{Lon: 153.026, Lat: -27.4705},
		{Lon: 153.027, Lat: -27.471},
	}, coords)
}

func TestParseLineStringEmpty(t *testing.T) {
	coords, err := ParseLineString("")
	assert.NoError(t, err)
	assert.Empty(t, coords)
}

func TestParseLineStringErrors(t *testing.T) {
	for _, s := range []string{
		"POINT(1 2)",
		"LINESTRING(1 2",
		"LINESTRING(1)",
		"LINESTRING(1 2 3)",
		"LINESTRING(a b)",
	} {
		if _, err := ParseLineString(s); err == nil {
			t.Errorf("ParseLineString(%q) = nil error, want error", s)
		}
	}
}

// Formatting then parsing recovers the original sequence exactly.
func TestLineStringRoundTrip(t *testing.T) {
	tests := [][]Coordinate{
		nil,
		{{Lon: 153.0260, Lat: -27.4705}},
		{{Lon: 153.0260, Lat: -27.4705}, {Lon: 153.0270, Lat: -27.4710}, {Lon: 153.0280, Lat: -27.4720}},
		{{Lon: -0.1276, Lat: 51.5072}, {Lon: 0, Lat: 0}},
	}
	for _, coords := range tests {
		got, err := ParseLineString(FormatLineString(coords))
		if err != nil {
			t.Fatalf("round trip %v: %v", coords, err)
		}
		if len(got) != len(coords) {
			t.Fatalf("round trip %v = %v", coords, got)
		}
		for i := range coords {
			if got[i] != coords[i] {
				t.Errorf("round trip %v: coords[%d] = %v", coords, i, got[i])
			}
		}
	}
}
