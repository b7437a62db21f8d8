package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradecast/internal/ui/theme"
)

// Slider displays one 0-100 parameter as a horizontal bar with its
// label and value. Key handling lives in the screen; the slider is
// pure rendering state.
type Slider struct {
	Label    string
	Value    int
	Min      int
	Max      int
	Selected bool
	Changed  bool // pending value differs from confirmed
	Width    int
}

// NewSlider creates a slider over the standard 0-100 range.
func NewSlider(label string, value, width int) Slider {
	return Slider{
		Label: label,
		Value: value,
		Min:   0,
		Max:   100,
		Width: width,
	}
}

// View renders the slider row.
func (s Slider) View() string {
	labelStyle := theme.Unselected
	marker := "  "
	if s.Selected {
		labelStyle = theme.Selected
		marker = "▸ "
	}

	label := labelStyle.Render(fmt.Sprintf("%s%-22s", marker, s.Label))

	value := fmt.Sprintf("%3d", s.Value)
	if s.Changed {
		value += " *"
	} else {
		value += "  "
	}
	valueStyle := theme.Body
	if s.Changed {
		valueStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	}

	barWidth := s.Width - lipgloss.Width(label) - len(value) - 2
	if barWidth < 4 {
		barWidth = 4
	}

	span := s.Max - s.Min
	if span <= 0 {
		span = 1
	}
	filled := (s.Value - s.Min) * barWidth / span
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := theme.SliderFilled.Render(strings.Repeat(" ", filled)) +
		theme.SliderEmpty.Render(strings.Repeat(" ", barWidth-filled))

	return label + " " + bar + " " + valueStyle.Render(value)
}
