package subject

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/gradecast/internal/store"
)

// fakeParamRepo records saves and serves canned loads.
type fakeParamRepo struct {
	loadData map[string]int
	loadErr  error
	saved    []map[string]int
	saveErr  error
}

func (f *fakeParamRepo) Load() (map[string]int, error) {
	return f.loadData, f.loadErr
}

func (f *fakeParamRepo) Save(params map[string]int) error {
	cp := make(map[string]int, len(params))
	for k, v := range params {
		cp[k] = v
	}
	f.saved = append(f.saved, cp)
	return f.saveErr
}

// fakeEventRepo keeps events in memory.
type fakeEventRepo struct {
	events []store.ScoreEventData
	resets int
}

func (f *fakeEventRepo) AppendScore(_ context.Context, data store.ScoreEventData) error {
	f.events = append(f.events, data)
	return nil
}

func (f *fakeEventRepo) QueryScores(_ context.Context, _ store.QueryOpts) ([]store.ScoreEventRecord, error) {
	records := make([]store.ScoreEventRecord, len(f.events))
	for i, ev := range f.events {
		records[i] = store.ScoreEventRecord{
			Sequence:   int64(i + 1),
			Kind:       ev.Kind,
			TimeStep:   ev.TimeStep,
			Score:      ev.Score,
			Parameters: ev.Parameters,
		}
	}
	return records, nil
}

func (f *fakeEventRepo) ResetScores(_ context.Context) error {
	f.resets++
	f.events = nil
	return nil
}

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel(Options{})
	for _, name := range ParameterNames {
		if got := m.Confirmed()[name]; got != DefaultValue {
			t.Errorf("%s = %d, want %d", name, got, DefaultValue)
		}
	}
	if m.HasPendingChanges() {
		t.Error("fresh model has pending changes")
	}
	if _, ok := m.CurrentScore(); ok {
		t.Error("fresh model reports a score")
	}
}

func TestNewModel_LoadsStoredParameters(t *testing.T) {
	repo := &fakeParamRepo{loadData: map[string]int{
		"teaching": 80,
		"unknown":  99, // ignored
	}}
	m := NewModel(Options{Params: repo})

	confirmed := m.Confirmed()
	if confirmed["teaching"] != 80 {
		t.Errorf("teaching = %d, want 80", confirmed["teaching"])
	}
	if confirmed["preparedness"] != DefaultValue {
		t.Errorf("preparedness = %d, want default", confirmed["preparedness"])
	}
	if _, ok := confirmed["unknown"]; ok {
		t.Error("unrecognized stored key leaked into confirmed set")
	}
	// Pending starts as a copy of confirmed.
	if m.Pending()["teaching"] != 80 {
		t.Errorf("pending teaching = %d, want 80", m.Pending()["teaching"])
	}
}

func TestNewModel_CorruptStoreFallsBackToDefaults(t *testing.T) {
	repo := &fakeParamRepo{loadErr: errors.New("bad json")}
	m := NewModel(Options{Params: repo})
	if m.Confirmed()["teaching"] != DefaultValue {
		t.Errorf("teaching = %d, want default", m.Confirmed()["teaching"])
	}
}

func TestConfirm_NoChangesIsNoOp(t *testing.T) {
	repo := &fakeParamRepo{}
	m := NewModel(Options{Params: repo})

	if res := m.Confirm(); res != nil {
		t.Fatalf("Confirm with no changes = %+v, want nil", res)
	}
	if len(m.Series()) != 0 {
		t.Error("no-op confirm appended a series point")
	}
	if len(repo.saved) != 0 {
		t.Error("no-op confirm persisted parameters")
	}
}

func TestConfirm_AppendsExactlyOnePoint(t *testing.T) {
	repo := &fakeParamRepo{}
	m := NewModel(Options{Params: repo})

	m.SetPending("preparedness", 90)
	m.SetPending("teaching", 10)
	res := m.Confirm()
	if res == nil {
		t.Fatal("Confirm returned nil despite changes")
	}

	if got := len(m.Series()); got != 1 {
		t.Errorf("series length = %d, want 1 (one point per confirmation)", got)
	}
	if len(res.Changes) != 2 {
		t.Errorf("changes = %d, want 2", len(res.Changes))
	}
	if len(repo.saved) != 1 {
		t.Fatalf("saves = %d, want 1", len(repo.saved))
	}
	if repo.saved[0]["preparedness"] != 90 {
		t.Errorf("persisted preparedness = %d, want 90", repo.saved[0]["preparedness"])
	}
	if len(repo.saved[0]) != len(ParameterNames) {
		t.Errorf("persisted %d keys, want the full set of %d", len(repo.saved[0]), len(ParameterNames))
	}
}

func TestConfirm_ChangeLogOrderAndFormat(t *testing.T) {
	m := NewModel(Options{})
	// Set in reverse display order; the log must follow ParameterNames.
	m.SetPending("difficulty", 70)
	m.SetPending("preparedness", 60)

	res := m.Confirm()
	if res == nil {
		t.Fatal("Confirm returned nil")
	}
	want := "preparedness: 50 → 60\ndifficulty: 50 → 70"
	if got := res.Log(); got != want {
		t.Errorf("Log() = %q, want %q", got, want)
	}
}

func TestConfirm_TimeStepsMonotonic(t *testing.T) {
	m := NewModel(Options{})
	for i := 0; i < 3; i++ {
		m.SetPending("teaching", 60+i)
		if m.Confirm() == nil {
			t.Fatalf("confirm %d returned nil", i)
		}
	}
	series := m.Series()
	for i, p := range series {
		if p.TimeStep != i {
			t.Errorf("series[%d].TimeStep = %d, want %d", i, p.TimeStep, i)
		}
	}
}

func TestConfirm_ScoreMatchesWeightedSum(t *testing.T) {
	m := NewModel(Options{})
	m.SetPending("preparedness", 100)
	m.SetPending("teaching", 100)
	m.SetPending("materials", 100)
	m.SetPending("participation", 100)
	m.SetPending("difficulty", 0)

	res := m.Confirm()
	if res == nil {
		t.Fatal("Confirm returned nil")
	}
	// 100*.3 + 100*.3 + 100*.2 + 100*.15 + 0*(-.05) = 95
	if !almostEqual(res.Score, 95.0) {
		t.Errorf("score = %v, want 95.0", res.Score)
	}
	if got, _ := m.CurrentScore(); !almostEqual(got, 95.0) {
		t.Errorf("CurrentScore = %v, want 95.0", got)
	}
}

func TestConfirm_LogsEvent(t *testing.T) {
	events := &fakeEventRepo{}
	m := NewModel(Options{History: events})
	m.SetPending("teaching", 75)
	m.Confirm()

	if len(events.events) != 1 {
		t.Fatalf("events = %d, want 1", len(events.events))
	}
	ev := events.events[0]
	if ev.Kind != store.KindConfirm {
		t.Errorf("kind = %q, want %q", ev.Kind, store.KindConfirm)
	}
	if ev.TimeStep != 0 {
		t.Errorf("time step = %d, want 0", ev.TimeStep)
	}
	if ev.Parameters["teaching"] != 75 {
		t.Errorf("event teaching = %d, want 75", ev.Parameters["teaching"])
	}
}

func TestUpdatePending_PartialAndUnknown(t *testing.T) {
	m := NewModel(Options{})
	m.UpdatePending(map[string]int{
		"materials": 65,
		"charisma":  99,
	})
	pending := m.Pending()
	if pending["materials"] != 65 {
		t.Errorf("materials = %d, want 65", pending["materials"])
	}
	if _, ok := pending["charisma"]; ok {
		t.Error("unknown parameter accepted")
	}
	if m.Confirmed()["materials"] != DefaultValue {
		t.Error("UpdatePending touched confirmed state")
	}
	if len(m.Series()) != 0 {
		t.Error("UpdatePending touched the series")
	}
}

func TestPredictPassFail_NoHistory(t *testing.T) {
	m := NewModel(Options{})
	if got := m.PredictPassFail(); got.Label != "No data" {
		t.Errorf("label = %q, want No data", got.Label)
	}
}

func TestRehydrate_FromEventLog(t *testing.T) {
	events := &fakeEventRepo{}
	first := NewModel(Options{History: events})
	for i := 0; i < 3; i++ {
		first.SetPending("teaching", 60+i)
		first.Confirm()
	}

	second := NewModel(Options{History: events})
	series := second.Series()
	if len(series) != 3 {
		t.Fatalf("rehydrated series length = %d, want 3", len(series))
	}

	// The clock continues after the last persisted step.
	second.SetPending("materials", 70)
	second.Confirm()
	last := second.Series()[len(second.Series())-1]
	if last.TimeStep != 3 {
		t.Errorf("next time step = %d, want 3", last.TimeStep)
	}
}

func TestClose_FlushesParameters(t *testing.T) {
	repo := &fakeParamRepo{}
	m := NewModel(Options{Params: repo})
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if len(repo.saved) != 1 {
		t.Errorf("saves = %d, want 1", len(repo.saved))
	}
}

func TestRoundTrip_SaveThenReload(t *testing.T) {
	repo := &fakeParamRepo{}
	m := NewModel(Options{Params: repo})
	m.SetPending("participation", 85)
	m.Confirm()

	reloaded := NewModel(Options{Params: &fakeParamRepo{loadData: repo.saved[len(repo.saved)-1]}})
	if !reloaded.Confirmed().Equal(m.Confirmed()) {
		t.Errorf("reloaded confirmed = %v, want %v", reloaded.Confirmed(), m.Confirmed())
	}
}

func TestOptions_CustomWeightsAndDefault(t *testing.T) {
	weights := Weights{
		"preparedness":  1.0,
		"teaching":      0,
		"materials":     0,
		"participation": 0,
		"difficulty":    0,
	}
	m := NewModel(Options{Weights: weights, DefaultValue: 30})
	if m.Confirmed()["teaching"] != 30 {
		t.Errorf("default = %d, want 30", m.Confirmed()["teaching"])
	}
	m.SetPending("preparedness", 42)
	res := m.Confirm()
	if res == nil {
		t.Fatal("Confirm returned nil")
	}
	if !almostEqual(res.Score, 42.0) {
		t.Errorf("score = %v, want 42.0", res.Score)
	}
}
