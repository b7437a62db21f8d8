package subject

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/gradecast/internal/store"
	"github.com/abhisek/gradecast/internal/subject/importer"
)

// Import replays a CSV or JSON history file into the model. The
// existing series is discarded (a full replace, not a merge) and one
// point is scored per row in file order; the last row's parameters
// become the confirmed set and are persisted.
//
// The file is opened and validated before anything is discarded, so a
// missing or malformed file leaves the model untouched. A row failure
// mid-replay, however, keeps the rows already applied: import is not
// transactional.
//
// It returns the number of imported records. Errors are descriptive
// and safe to show to the user; Import never panics.
func (m *Model) Import(path string) (int, error) {
	format, err := importer.DetectFormat(path)
	if err != nil {
		return 0, err
	}

	src, err := importer.Open(path, format)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	m.resetSeries()

	count := 0
	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, fmt.Errorf("row %d: %w", count+1, err)
		}

		// Replace the entire confirmed set from the row, defaulting
		// absent or non-numeric fields. Pending edits are untouched.
		m.confirmed = m.paramsFromRow(row)
		m.calculatePerformance(store.KindImport)
		count++
	}

	if err := m.saveParameters(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save parameters: %v\n", err)
	}
	return count, nil
}

// paramsFromRow builds a fresh parameter set from one imported row.
func (m *Model) paramsFromRow(row importer.Row) ParameterSet {
	ps := make(ParameterSet, len(ParameterNames))
	for _, name := range ParameterNames {
		ps[name] = CoerceValue(row[name], m.defaultValue)
	}
	return ps
}

// resetSeries drops all series state: history, time steps, and the
// clock, along with the persisted event log mirroring them.
func (m *Model) resetSeries() {
	m.series = nil
	m.clock = 0
	if m.history != nil {
		if err := m.history.ResetScores(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to reset score history: %v\n", err)
		}
	}
}
