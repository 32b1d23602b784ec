package updater

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gpxsync/pkg/config"
	"gpxsync/pkg/gpx"
	"gpxsync/pkg/table"

	log "github.com/sirupsen/logrus"
)

const trackExt = ".gpx"

// saveTable is indirected so tests can force a persist failure.
var saveTable = func(tbl *table.Table, path string) error {
	return tbl.Save(path)
}

// Run executes one full synchronization pass: scan the track directory,
// push each matched track's geometry to the remote API and write the WKT
// rendering back into the table. Only precondition failures (unreadable
// table, missing geometry column, missing directory) return an error;
// per-file problems are logged, recorded in the summary and skipped.
//
// Cancelling ctx stops the loop between files. An in-flight remote call is
// not cancelled, and the table is not persisted after an interruption.
func Run(ctx context.Context, cfg config.Config, client RecordClient) (Summary, error) {
	log.Print("=== GPX to Fulcrum geometry sync ===")

	tbl, err := table.Load(cfg.TableFile)
	if err != nil {
		return Summary{}, err
	}
	lookup := tbl.Lookup()
	log.Printf("Found %d records in %s with dates: %s", len(lookup), cfg.TableFile, previewKeys(lookup))

	files, err := scanTracks(cfg.TrackDir)
	if err != nil {
		return Summary{}, err
	}
	if len(files) == 0 {
		log.Warnf("No GPX files found in %s", cfg.TrackDir)
		return Summary{}, nil
	}

	summary := Summary{Files: len(files)}
	for _, path := range files {
		if ctx.Err() != nil {
			log.Warn("Interrupted, skipping remaining files")
			summary.Interrupted = true
			break
		}

		result := processFile(path, tbl, lookup, client)
		summary.Results = append(summary.Results, result)
		if result.Outcome == Updated {
			summary.Updated++
		}
	}

	if summary.Interrupted {
		return summary, nil
	}

	if summary.Updated > 0 {
		// A failed rewrite does not fail the run: the remote updates already
		// went through.
		if err := saveTable(tbl, cfg.TableFile); err != nil {
			log.Errorf("Failed to save %s: %v", cfg.TableFile, err)
		} else {
			log.Printf("Updated %d records in %s", summary.Updated, cfg.TableFile)
		}
	} else {
		log.Print("No updates were made")
	}

	return summary, nil
}

// processFile walks one track file through the whole pipeline: date match,
// parse, remote fetch+update, local row update.
func processFile(path string, tbl *table.Table, lookup map[string]table.Match, client RecordClient) FileResult {
	name := filepath.Base(path)
	dateKey := strings.TrimSuffix(name, filepath.Ext(name))
	result := FileResult{File: name, DateKey: dateKey}

	log.Printf("Processing %s (date %s)", name, dateKey)

	match, ok := lookup[dateKey]
	if !ok {
		log.Warnf("No matching date %s in table", dateKey)
		result.Outcome = SkippedNoMatch
		return result
	}
	if match.RecordID == "" {
		log.Warnf("No record id for date %s", dateKey)
		result.Outcome = SkippedNoID
		return result
	}
	result.RecordID = match.RecordID

	coords, err := gpx.ParseFile(path)
	if err != nil {
		log.Errorf("Failed to parse %s: %v", name, err)
		result.Outcome = FailedParse
		result.Err = err
		return result
	}
	if len(coords) == 0 {
		log.Warnf("No coordinates found in %s", name)
		result.Outcome = SkippedEmptyTrack
		return result
	}
	result.Points = len(coords)
	log.Printf("Extracted %d points", len(coords))

	// The API replaces the whole record, so the current form values have to
	// be fetched first and sent back untouched.
	record, err := client.Fetch(match.RecordID)
	if err != nil {
		log.Errorf("Failed to fetch record %s: %v", match.RecordID, err)
		result.Outcome = FailedRemote
		result.Err = err
		return result
	}
	if err := client.Update(match.RecordID, gpx.Positions(coords), record.FormValues); err != nil {
		log.Errorf("Failed to update record %s: %v", match.RecordID, err)
		result.Outcome = FailedRemote
		result.Err = err
		return result
	}

	tbl.SetGeometry(match.Row, gpx.FormatLineString(coords))
	log.Printf("Updated record %s", match.RecordID)
	result.Outcome = Updated
	return result
}

// scanTracks lists the track files in dir, non-recursively, matching the
// extension case-insensitively and sorted by name so runs are reproducible.
func scanTracks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), trackExt) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// previewKeys renders the first few date keys, sorted, for the startup log
// line.
func previewKeys(lookup map[string]table.Match) string {
	keys := make([]string, 0, len(lookup))
	for k := range lookup {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	const max = 5
	if len(keys) <= max {
		return strings.Join(keys, ", ")
	}
	return strings.Join(keys[:max], ", ") + "..."
}
