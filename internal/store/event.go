package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// sequenceCounter assigns a single increasing sequence number to every
// score event. SQLite's per-table rowids survive deletes oddly under
// vacuum, so ordering rides on an explicit counter that is never
// reset, even when the event table is cleared by a bulk import. The
// mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo on the score_events table.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendScore(ctx context.Context, data ScoreEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	params, err := json.Marshal(data.Parameters)
	if err != nil {
		return fmt.Errorf("marshal parameters: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO score_events (id, sequence, kind, time_step, score, parameters, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), seq, data.Kind, data.TimeStep, data.Score, string(params), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert score event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryScores(ctx context.Context, opts QueryOpts) ([]ScoreEventRecord, error) {
	query := `SELECT id, sequence, kind, time_step, score, parameters, created_at
		FROM score_events WHERE sequence > ? ORDER BY sequence DESC`
	args := []any{opts.After}
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query score events: %w", err)
	}
	defer rows.Close()

	var records []ScoreEventRecord
	for rows.Next() {
		var rec ScoreEventRecord
		var params string
		if err := rows.Scan(&rec.ID, &rec.Sequence, &rec.Kind, &rec.TimeStep, &rec.Score, &params, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("scan score event: %w", err)
		}
		if err := json.Unmarshal([]byte(params), &rec.Parameters); err != nil {
			return nil, fmt.Errorf("unmarshal event parameters: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate score events: %w", err)
	}

	// The query walks newest-first so LIMIT keeps the most recent
	// events; flip back to ascending order for callers.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func (r *eventRepo) ResetScores(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM score_events`); err != nil {
		return fmt.Errorf("reset score events: %w", err)
	}
	return nil
}
