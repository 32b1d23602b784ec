package updater

import (
	"encoding/json"

	"gpxsync/pkg/fulcrum"
)

// RecordClient is the remote API surface a run needs.
type RecordClient interface {
	Fetch(id string) (*fulcrum.Record, error)
	Update(id string, coords [][]float64, formValues json.RawMessage) error
}

// Outcome classifies what happened to one track file.
type Outcome int

const (
	Updated Outcome = iota
	SkippedNoMatch
	SkippedNoID
	SkippedEmptyTrack
	FailedParse
	FailedRemote
)

func (o Outcome) String() string {
	switch o {
	case Updated:
		return "updated"
	case SkippedNoMatch:
		return "skipped (no matching date)"
	case SkippedNoID:
		return "skipped (no record id)"
	case SkippedEmptyTrack:
		return "skipped (empty track)"
	case FailedParse:
		return "failed (parse)"
	case FailedRemote:
		return "failed (remote)"
	}
	return "unknown"
}

// FileResult records the outcome for a single track file.
type FileResult struct {
	File     string
	DateKey  string
	RecordID string
	Points   int
	Outcome  Outcome
	Err      error
}

// Summary aggregates one run.
type Summary struct {
	Files       int
	Updated     int
	Interrupted bool
	Results     []FileResult
}
