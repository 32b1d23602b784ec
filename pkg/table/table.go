package table

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Table is a CSV table held fully in memory: a header row plus data rows of
// string cells. Rows may be ragged; short rows are padded on demand when the
// geometry cell is written.
type Table struct {
	Header []string
	Rows   [][]string

	geometryIdx int
}

// Load reads the whole table from path. The first row is the header; the
// geometry column must be present in it, since nothing downstream can
// proceed without somewhere to write results.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty table, missing header row", path)
	}

	header := records[0]
	geometryIdx := -1
	for i, name := range header {
		if name == GeometryColumn {
			geometryIdx = i
			break
		}
	}
	if geometryIdx < 0 {
		return nil, fmt.Errorf("%s: required column not found: %q", path, GeometryColumn)
	}

	return &Table{
		Header:      header,
		Rows:        records[1:],
		geometryIdx: geometryIdx,
	}, nil
}

// Lookup maps each row's date key (column 0) to its position and record id
// (column 1). Rows too short to carry both columns are ignored. Duplicate
// date keys resolve last-wins.
func (t *Table) Lookup() map[string]Match {
	lookup := make(map[string]Match)
	for i, row := range t.Rows {
		if len(row) <= ColRecordID {
			continue
		}
		lookup[row[ColDate]] = Match{Row: i, RecordID: row[ColRecordID]}
	}
	return lookup
}

// SetGeometry overwrites the geometry cell of the given row, padding the row
// with empty cells if it is shorter than the geometry column.
func (t *Table) SetGeometry(row int, wkt string) {
	for len(t.Rows[row]) <= t.geometryIdx {
		t.Rows[row] = append(t.Rows[row], "")
	}
	t.Rows[row][t.geometryIdx] = wkt
}

// Save rewrites the whole table (header plus all rows) to path.
func (t *Table) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
