package store

import (
	"context"
	"time"
)

// Event kinds. Every scoring call appends exactly one event: "confirm"
// for a user confirmation, "import" for a bulk-replay row.
const (
	KindConfirm = "confirm"
	KindImport  = "import"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	// Limit caps results to the N most recent events (0 = unlimited).
	// Results are always returned in ascending sequence order.
	Limit int

	// After restricts results to sequence > After.
	After int64
}

// ScoreEventData captures one scoring call for the audit log.
type ScoreEventData struct {
	Kind       string
	TimeStep   int
	Score      float64
	Parameters map[string]int
}

// ScoreEventRecord is a persisted score event.
type ScoreEventRecord struct {
	ID         string
	Sequence   int64
	Kind       string
	TimeStep   int
	Score      float64
	Parameters map[string]int
	Timestamp  time.Time
}

// EventRepo provides append and query access to the score event log.
type EventRepo interface {
	// AppendScore records a scoring event.
	AppendScore(ctx context.Context, data ScoreEventData) error

	// QueryScores returns events in ascending sequence order.
	QueryScores(ctx context.Context, opts QueryOpts) ([]ScoreEventRecord, error)

	// ResetScores deletes every score event. Used when a bulk import
	// replaces the series.
	ResetScores(ctx context.Context) error
}

// ParamRepo persists the confirmed parameter set.
type ParamRepo interface {
	// Load reads the persisted parameters. A missing store is not an
	// error: it returns (nil, nil) and callers keep their defaults.
	Load() (map[string]int, error)

	// Save overwrites the full persisted set.
	Save(params map[string]int) error
}
