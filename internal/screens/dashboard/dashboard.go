// Package dashboard implements the main Gradecast screen: parameter
// sliders, the pass/fail prediction card, the score chart, and the
// bulk-import form.
package dashboard

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gradecast/internal/subject"
	"github.com/abhisek/gradecast/internal/ui/components"
	"github.com/abhisek/gradecast/internal/ui/layout"
)

// sliderLabels maps parameter names to their display labels, in
// subject.ParameterNames order.
var sliderLabels = map[string]string{
	"preparedness":  "Student Preparedness",
	"teaching":      "Teaching Effectiveness",
	"materials":     "Study Materials",
	"participation": "Class Participation",
	"difficulty":    "Subject Difficulty",
}

// Screen is the dashboard. It owns the only reference to the subject
// model, and every model call runs on the event-loop goroutine; the
// import is deferred by one message cycle rather than run concurrently,
// so the model never needs locking.
type Screen struct {
	model *subject.Model

	selected   int // index into subject.ParameterNames
	pathInput  components.TextInput
	status     string
	statusErr  bool
	importing  bool
	lastUpdate time.Time
}

// New creates the dashboard over an existing model.
func New(model *subject.Model) *Screen {
	return &Screen{
		model:     model,
		pathInput: components.NewTextInput("path/to/history.csv or .json", 256),
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

// Title returns the screen name for the header.
func (s *Screen) Title() string {
	return "Subject Pass/Fail Predictor"
}

// KeyHints lists the footer hints for the current focus.
func (s *Screen) KeyHints() []layout.KeyHint {
	if s.pathInput.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Import"},
			{Key: "Esc", Description: "Back to sliders"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "←→", Description: "Adjust (shift: ±10)"},
		{Key: "C", Description: "Confirm"},
		{Key: "I", Description: "Import file"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (*Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startImportMsg:
		count, err := s.model.Import(msg.Path)
		s.importing = false
		if err != nil {
			s.status = fmt.Sprintf("Import failed: %v", err)
			s.statusErr = true
		} else {
			s.status = fmt.Sprintf("Successfully imported %d records", count)
			s.statusErr = false
			s.lastUpdate = time.Now()
		}
		return s, nil

	case confirmedMsg:
		if msg.Log == "" {
			s.status = "No parameter changes were made"
			s.statusErr = false
		} else {
			s.status = "Applied changes:\n" + msg.Log
			s.statusErr = false
			s.lastUpdate = time.Now()
		}
		return s, nil

	case tea.KeyMsg:
		if s.importing {
			// Between the "Importing data..." frame and startImportMsg
			// nothing else may touch the model or the form.
			return s, nil
		}
		if s.pathInput.Focused() {
			return s.updateImportForm(msg)
		}
		return s.updateSliders(msg)
	}

	return s, nil
}

// updateSliders handles keys while the slider panel has focus.
func (s *Screen) updateSliders(msg tea.KeyMsg) (*Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(subject.ParameterNames)-1 {
			s.selected++
		}
	case "left", "h":
		s.adjustSelected(-1)
	case "right", "l":
		s.adjustSelected(1)
	case "shift+left", "H":
		s.adjustSelected(-10)
	case "shift+right", "L":
		s.adjustSelected(10)
	case "c", "enter":
		return s, s.confirmCmd()
	case "i", "tab":
		return s, s.pathInput.Focus()
	case "q":
		return s, tea.Quit
	}
	return s, nil
}

// updateImportForm handles keys while the path input has focus.
func (s *Screen) updateImportForm(msg tea.KeyMsg) (*Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.pathInput.Blur()
		return s, nil
	case "enter":
		path := strings.TrimSpace(s.pathInput.Value())
		if path == "" {
			s.status = "Please enter a file path first"
			s.statusErr = true
			return s, nil
		}
		if !strings.HasSuffix(path, ".csv") && !strings.HasSuffix(path, ".json") {
			s.status = "Invalid file type. Please use .csv or .json"
			s.statusErr = true
			s.pathInput.Submit(false)
			return s, nil
		}
		s.importing = true
		s.status = "Importing data..."
		s.statusErr = false
		s.pathInput.Blur()
		return s, s.importCmd(path)
	}

	var cmd tea.Cmd
	s.pathInput, cmd = s.pathInput.Update(msg)
	return s, cmd
}

// adjustSelected moves the selected pending parameter by delta.
func (s *Screen) adjustSelected(delta int) {
	name := subject.ParameterNames[s.selected]
	s.model.SetPending(name, s.model.Pending()[name]+delta)
}

// confirmCmd commits pending parameters and reports the change log.
func (s *Screen) confirmCmd() tea.Cmd {
	res := s.model.Confirm()
	log := ""
	if res != nil {
		log = res.Log()
	}
	return func() tea.Msg { return confirmedMsg{Log: log} }
}

// importCmd schedules the import for the next message cycle. The
// command itself does nothing but post startImportMsg, so the status
// frame renders before Update blocks on the replay.
func (s *Screen) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return startImportMsg{Path: path}
	}
}
