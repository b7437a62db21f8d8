package dashboard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradecast/internal/subject"
	"github.com/abhisek/gradecast/internal/ui/components"
	"github.com/abhisek/gradecast/internal/ui/theme"
)

const leftPanelWidth = 46

// trendGlyphs decorates trend labels in the prediction card.
var trendGlyphs = map[string]string{
	"Rapid improvement": "↑",
	"Improving":         "↗",
	"Stable":            "↔",
	"Declining":         "↘",
	"Rapid decline":     "↓",
}

// View renders the dashboard content area.
func (s *Screen) View(width, height int) string {
	left := s.viewControls()

	chartWidth := width - leftPanelWidth - 6
	chartHeight := height - 14
	right := s.viewPrediction() + "\n" + s.viewChart(chartWidth, chartHeight)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// viewControls renders the slider panel, status line, and import form.
func (s *Screen) viewControls() string {
	pending := s.model.Pending()
	confirmed := s.model.Confirmed()

	var rows []string
	for i, name := range subject.ParameterNames {
		slider := components.NewSlider(sliderLabels[name], pending[name], leftPanelWidth-4)
		slider.Selected = i == s.selected && !s.pathInput.Focused()
		slider.Changed = pending[name] != confirmed[name]
		rows = append(rows, slider.View())
	}

	sliderCard := theme.Card.Width(leftPanelWidth).Render(
		theme.Title.Render("Evaluation Parameters") + "\n\n" +
			strings.Join(rows, "\n"))

	hint := theme.Hint.Render("No pending changes")
	if changed := s.pendingChangeNames(pending, confirmed); len(changed) > 0 {
		hint = lipgloss.NewStyle().Foreground(theme.Accent).
			Render("Pending changes: " + strings.Join(changed, ", "))
	}

	importCard := theme.Card.Width(leftPanelWidth).Render(
		theme.Title.Render("Bulk Data Import") + "\n\n" +
			"File: " + s.pathInput.View())

	status := ""
	if s.status != "" {
		style := theme.StatusOK
		if s.statusErr {
			style = theme.StatusError
		}
		status = "\n" + style.Render(s.status)
	}

	return sliderCard + "\n" + hint + "\n" + importCard + status
}

// pendingChangeNames lists parameters whose pending value differs from
// confirmed, in display order.
func (s *Screen) pendingChangeNames(pending, confirmed subject.ParameterSet) []string {
	var changed []string
	for _, name := range subject.ParameterNames {
		if pending[name] != confirmed[name] {
			changed = append(changed, name)
		}
	}
	return changed
}

// viewPrediction renders the score, band, and trend card.
func (s *Screen) viewPrediction() string {
	var lines []string

	if score, ok := s.model.CurrentScore(); ok {
		pred := s.model.PredictPassFail()
		trend := s.model.PredictTrend()

		lines = append(lines,
			theme.Body.Render(fmt.Sprintf("Pass Probability: %.1f%%", score)))

		bandStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(pred.Foreground)).
			Background(lipgloss.Color(pred.Background)).
			Bold(true).
			Padding(0, 1)
		lines = append(lines, "Prediction: "+bandStyle.Render(pred.Label))

		trendText := trend.Label
		if glyph, ok := trendGlyphs[trend.Label]; ok {
			trendText += " " + glyph
		}
		lines = append(lines, "Trend: "+
			lipgloss.NewStyle().Foreground(lipgloss.Color(trend.Color)).Render(trendText))
	} else {
		lines = append(lines,
			theme.Body.Render("Pass Probability: -"),
			theme.Hint.Render("Prediction: -"),
			theme.Hint.Render("Trend: -"))
	}

	if s.lastUpdate.IsZero() {
		lines = append(lines, theme.Hint.Render("Last update: Never"))
	} else {
		lines = append(lines, theme.Hint.Render(
			"Last update: "+s.lastUpdate.Format("2006-01-02 15:04:05")))
	}

	return theme.Card.Render(
		theme.Title.Render("Pass/Fail Prediction") + "\n\n" +
			strings.Join(lines, "\n"))
}

// viewChart renders the score series with the band threshold guides.
func (s *Screen) viewChart(width, height int) string {
	series := s.model.Series()
	if len(series) == 0 {
		return theme.Hint.Render("\n  No data yet — confirm parameters or import a file.")
	}

	points := make([]components.ChartPoint, len(series))
	for i, p := range series {
		points[i] = components.ChartPoint{TimeStep: p.TimeStep, Score: p.Score}
	}

	chart := components.NewChart(points, width, height)
	chart.Thresholds = []components.Threshold{
		{Value: 70, Color: "#22C55E"},
		{Value: 60, Color: "#15803D"},
		{Value: 50, Color: "#3B82F6"},
		{Value: 40, Color: "#F97316"},
	}

	return theme.Subtitle.Render("Pass Probability Over Time") + "\n" + chart.View()
}
