package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradecast/internal/screens/dashboard"
	"github.com/abhisek/gradecast/internal/subject"
	"github.com/abhisek/gradecast/internal/ui/layout"
	"github.com/abhisek/gradecast/internal/ui/theme"
)

// Options carries the dependencies for the TUI.
type Options struct {
	Model *subject.Model
}

// AppModel is the root Bubble Tea model. Gradecast is a single-screen
// tool, so the root wraps the dashboard directly.
type AppModel struct {
	model  *subject.Model
	dash   *dashboard.Screen
	width  int
	height int
}

// newAppModel creates a new AppModel over the subject model.
func newAppModel(opts Options) AppModel {
	return AppModel{
		model: opts.Model,
		dash:  dashboard.New(opts.Model),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.dash.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	dash, cmd := m.dash.Update(msg)
	m.dash = dash
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.dash.Title(), m.headerStatus(), m.width)
	footer := layout.RenderFooter(m.dash.KeyHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.dash.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// headerStatus summarizes the latest score for the header bar.
func (m AppModel) headerStatus() string {
	score, ok := m.model.CurrentScore()
	if !ok {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("no data")
	}
	pred := m.model.PredictPassFail()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(pred.Foreground)).
		Render(fmt.Sprintf("%.1f%% · %s", score, pred.Label))
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
