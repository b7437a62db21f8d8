// Package subject implements the subject performance model: confirmed
// and pending parameter state, the weighted pass-probability score,
// pass/fail classification, trend estimation, and bulk history replay.
package subject

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/gradecast/internal/store"
)

// Point is one entry in the score series.
type Point struct {
	TimeStep int
	Score    float64
}

// Options configures a Model. Both repos are optional: a nil Params
// repo disables durable parameters, a nil History repo disables the
// event log and series rehydration.
type Options struct {
	Params  store.ParamRepo
	History store.EventRepo

	// DefaultValue seeds every parameter and backfills missing or
	// non-numeric imported fields. Zero means the built-in default
	// of 50.
	DefaultValue int

	// Weights overrides the built-in weight table when non-nil.
	Weights Weights
}

// Model is the subject performance model. It is a small synchronous
// stateful calculator: all operations run on the caller's goroutine
// and there is no internal locking.
type Model struct {
	confirmed ParameterSet
	pending   ParameterSet

	weights      Weights
	defaultValue int

	series []Point
	clock  int

	params  store.ParamRepo
	history store.EventRepo
}

// NewModel builds a model from Options, loading confirmed parameters
// from the param store and rehydrating the score series from the event
// log. Load failures are diagnostics, never fatal: the model starts
// from defaults instead.
func NewModel(opts Options) *Model {
	def := opts.DefaultValue
	if def == 0 {
		def = DefaultValue
	}
	weights := opts.Weights
	if weights == nil {
		weights = DefaultWeights()
	}

	m := &Model{
		confirmed:    NewParameterSet(def),
		weights:      weights,
		defaultValue: def,
		params:       opts.Params,
		history:      opts.History,
	}

	m.loadParameters()
	m.pending = m.confirmed.Clone()
	m.rehydrate()
	return m
}

// loadParameters overlays persisted values onto the default set.
// Unrecognized keys in the file are ignored; missing keys keep their
// defaults.
func (m *Model) loadParameters() {
	if m.params == nil {
		return
	}
	stored, err := m.params.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load parameters: %v\n", err)
		return
	}
	for name, value := range stored {
		m.confirmed.Set(name, value)
	}
}

// rehydrate rebuilds the series from the persisted event log so the
// chart and trend survive restarts.
func (m *Model) rehydrate() {
	if m.history == nil {
		return
	}
	events, err := m.history.QueryScores(context.Background(), store.QueryOpts{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load score history: %v\n", err)
		return
	}
	for _, ev := range events {
		m.series = append(m.series, Point{TimeStep: ev.TimeStep, Score: ev.Score})
	}
	if n := len(m.series); n > 0 {
		m.clock = m.series[n-1].TimeStep + 1
	}
}

// Pending returns a copy of the pending parameter set.
func (m *Model) Pending() ParameterSet {
	return m.pending.Clone()
}

// Confirmed returns a copy of the confirmed parameter set.
func (m *Model) Confirmed() ParameterSet {
	return m.confirmed.Clone()
}

// SetPending overwrites one pending parameter. Unrecognized names are
// ignored; values clamp to [0,100]. Confirmed state and the series are
// untouched.
func (m *Model) SetPending(name string, value int) {
	m.pending.Set(name, value)
}

// UpdatePending applies a partial parameter map to the pending set.
func (m *Model) UpdatePending(params map[string]int) {
	for name, value := range params {
		m.pending.Set(name, value)
	}
}

// HasPendingChanges reports whether pending differs from confirmed.
func (m *Model) HasPendingChanges() bool {
	return !m.pending.Equal(m.confirmed)
}

// Change records one confirmed parameter transition.
type Change struct {
	Name string
	From int
	To   int
}

// ConfirmResult describes a successful confirmation: the applied
// changes in parameter display order and the newly scored point.
type ConfirmResult struct {
	Changes []Change
	Score   float64
}

// Log renders the change list as "name: old → new" lines.
func (r *ConfirmResult) Log() string {
	lines := make([]string, 0, len(r.Changes))
	for _, c := range r.Changes {
		lines = append(lines, fmt.Sprintf("%s: %d → %d", c.Name, c.From, c.To))
	}
	return strings.Join(lines, "\n")
}

// Confirm commits the pending parameters. When nothing differs it
// returns nil and has no side effects. Otherwise it copies pending
// into confirmed, persists the full set, scores exactly one new point,
// and returns the change list.
func (m *Model) Confirm() *ConfirmResult {
	var changes []Change
	for _, name := range ParameterNames {
		if m.confirmed[name] != m.pending[name] {
			changes = append(changes, Change{Name: name, From: m.confirmed[name], To: m.pending[name]})
			m.confirmed[name] = m.pending[name]
		}
	}
	if len(changes) == 0 {
		return nil
	}

	if err := m.saveParameters(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save parameters: %v\n", err)
	}
	score := m.calculatePerformance(store.KindConfirm)

	return &ConfirmResult{Changes: changes, Score: score}
}

// calculatePerformance computes the clamped weighted score over the
// confirmed parameters and appends it to the series. This is the only
// place new points enter the series: exactly one call per confirmation
// and one per imported row.
func (m *Model) calculatePerformance(kind string) float64 {
	score := m.weights.Score(m.confirmed)

	m.series = append(m.series, Point{TimeStep: m.clock, Score: score})
	m.appendEvent(kind, m.clock, score)
	m.clock++

	return score
}

// appendEvent records the scoring call in the event log. Logging
// failures never fail the user action.
func (m *Model) appendEvent(kind string, timeStep int, score float64) {
	if m.history == nil {
		return
	}
	err := m.history.AppendScore(context.Background(), store.ScoreEventData{
		Kind:       kind,
		TimeStep:   timeStep,
		Score:      score,
		Parameters: m.confirmed.Clone(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log score event: %v\n", err)
	}
}

// CurrentScore returns the most recent score. ok is false while the
// series is empty.
func (m *Model) CurrentScore() (score float64, ok bool) {
	if len(m.series) == 0 {
		return 0, false
	}
	return m.series[len(m.series)-1].Score, true
}

// PredictPassFail classifies the most recent score into a pass/fail
// band.
func (m *Model) PredictPassFail() Prediction {
	if len(m.series) == 0 {
		return PredictionNoData
	}
	return ClassifyScore(m.series[len(m.series)-1].Score)
}

// PredictTrend estimates the recent direction of the series.
func (m *Model) PredictTrend() Trend {
	return ClassifyTrend(m.series)
}

// Series returns a copy of the full (time step, score) series.
func (m *Model) Series() []Point {
	out := make([]Point, len(m.series))
	copy(out, m.series)
	return out
}

// Close flushes the confirmed parameters to durable storage.
func (m *Model) Close() error {
	return m.saveParameters()
}

func (m *Model) saveParameters() error {
	if m.params == nil {
		return nil
	}
	return m.params.Save(m.confirmed.Clone())
}
