package table

// The external spreadsheet contract is deliberately hybrid: the date key and
// record id live at fixed positions regardless of their header names, while
// the geometry column is resolved by name.
const (
	ColDate     = 0
	ColRecordID = 1

	GeometryColumn = "geometry"
)

// Match locates the table row a date key resolved to.
type Match struct {
	Row      int
	RecordID string
}
