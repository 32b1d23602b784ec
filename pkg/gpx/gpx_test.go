package gpx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test">
  <trk>
    <name>Day one</name>
    <trkseg>
      <trkpt lat="-27.4705" lon="153.0260"><ele>12.0</ele></trkpt>
      <trkpt lat="-27.4710" lon="153.0270"/>
    </trkseg>
    <trkseg>
      <trkpt lat="-27.4720" lon="153.0280"/>
    </trkseg>
  </trk>
  <trk>
    <trkseg>
      <trkpt lat="-27.4730" lon="153.0290"/>
    </trkseg>
  </trk>
</gpx>`

func TestParse(t *testing.T) {
	coords, err := Parse(strings.NewReader(sampleGPX))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := []Coordinate{
		{Lon: 153.0260, Lat: -27.4705},
		{Lon: 153.0270, Lat: -27.4710},
		{Lon: 153.0280, Lat: -27.4720},
		{Lon: 153.0290, Lat: -27.4730},
	}
	if len(coords) != len(want) {
		t.Fatalf("Parse() = %d coordinates, want %d", len(coords), len(want))
	}
	for i := range want {
		if coords[i] != want[i] {
			t.Errorf("coords[%d] = %v, want %v", i, coords[i], want[i])
		}
	}
}

func TestParseIgnoresWaypoints(t *testing.T) {
	gpx := `<gpx version="1.1">
  <wpt lat="1.0" lon="2.0"><name>Home</name></wpt>
  <rte><rtept lat="3.0" lon="4.0"/></rte>
  <trk><trkseg><trkpt lat="5.0" lon="6.0"/></trkseg></trk>
</gpx>`
	coords, err := Parse(strings.NewReader(gpx))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(coords) != 1 || coords[0] != (Coordinate{Lon: 6.0, Lat: 5.0}) {
		t.Errorf("Parse() = %v, want single track point (6, 5)", coords)
	}
}

func TestParseEmptyTrack(t *testing.T) {
	gpx := `<gpx version="1.1"><trk><trkseg></trkseg></trk></gpx>`
	coords, err := Parse(strings.NewReader(gpx))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(coords) != 0 {
		t.Errorf("Parse() = %v, want empty sequence", coords)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"truncated document", `<gpx><trk><trkseg><trkpt lat="1" lon="2"/>`},
		{"non-numeric latitude", `<gpx><trk><trkseg><trkpt lat="north" lon="2"/></trkseg></trk></gpx>`},
		{"missing longitude", `<gpx><trk><trkseg><trkpt lat="1"/></trkseg></trk></gpx>`},
	}
	for _, tt := range tests {
		if _, err := Parse(strings.NewReader(tt.in)); err == nil {
			t.Errorf("%s: Parse() = nil error, want error", tt.name)
		}
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2024-07-01.gpx")
	if err := os.WriteFile(path, []byte(sampleGPX), 0644); err != nil {
		t.Fatal(err)
	}

	coords, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(coords) != 4 {
		t.Errorf("ParseFile() = %d coordinates, want 4", len(coords))
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "nope.gpx")); err == nil {
		t.Error("ParseFile() = nil error for missing file, want error")
	}
}

func TestPositions(t *testing.T) {
	coords := []Coordinate{{Lon: 153.026, Lat: -27.4705}, {Lon: 153.027, Lat: -27.471}}
	positions := Positions(coords)
	if len(positions) != 2 {
		t.Fatalf("Positions() = %d entries, want 2", len(positions))
	}
	if positions[0][0] != 153.026 || positions[0][1] != -27.4705 {
		t.Errorf("positions[0] = %v, want [lon lat] order", positions[0])
	}
}
