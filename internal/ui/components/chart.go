package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradecast/internal/ui/theme"
)

// ChartPoint is one plotted value.
type ChartPoint struct {
	TimeStep int
	Score    float64
}

// Threshold draws a horizontal guide line across the chart.
type Threshold struct {
	Value float64
	Color string
}

// Chart renders a score series as a fixed-scale (0-100) line chart.
type Chart struct {
	Points     []ChartPoint
	Thresholds []Threshold
	Width      int
	Height     int
}

// NewChart creates a chart sized to the given cell area.
func NewChart(points []ChartPoint, width, height int) Chart {
	return Chart{
		Points: points,
		Width:  width,
		Height: height,
	}
}

// View renders the chart with a y-axis, guide lines, and one marker
// column per point. When there are more points than columns, only the
// most recent ones are shown.
func (c Chart) View() string {
	const axisWidth = 5 // "100 ┤"

	plotWidth := c.Width - axisWidth
	plotHeight := c.Height - 1 // reserve the x-axis row
	if plotWidth < 2 || plotHeight < 2 {
		return ""
	}

	points := c.Points
	if len(points) > plotWidth {
		points = points[len(points)-plotWidth:]
	}

	// grid[row][col]: row 0 is the top (score 100).
	grid := make([][]string, plotHeight)
	for i := range grid {
		grid[i] = make([]string, plotWidth)
		for j := range grid[i] {
			grid[i][j] = " "
		}
	}

	rowFor := func(score float64) int {
		row := int((100 - score) / 100 * float64(plotHeight-1))
		if row < 0 {
			row = 0
		}
		if row > plotHeight-1 {
			row = plotHeight - 1
		}
		return row
	}

	for _, th := range c.Thresholds {
		row := rowFor(th.Value)
		dash := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Color)).Render("┄")
		for col := 0; col < plotWidth; col++ {
			grid[row][col] = dash
		}
	}

	marker := lipgloss.NewStyle().Foreground(theme.Primary).Render("●")
	connector := lipgloss.NewStyle().Foreground(theme.Primary).Render("│")

	prevRow := -1
	for i, p := range points {
		row := rowFor(p.Score)
		grid[row][i] = marker

		// Fill the vertical gap toward the previous point so jumps
		// read as a line instead of scattered dots.
		if prevRow >= 0 {
			lo, hi := row, prevRow
			if lo > hi {
				lo, hi = hi, lo
			}
			for r := lo + 1; r < hi; r++ {
				grid[r][i] = connector
			}
		}
		prevRow = row
	}

	var b strings.Builder
	axisStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	for row := 0; row < plotHeight; row++ {
		score := 100 - row*100/(plotHeight-1)
		b.WriteString(axisStyle.Render(fmt.Sprintf("%3d ┤", score)))
		b.WriteString(strings.Join(grid[row], ""))
		b.WriteString("\n")
	}

	// X-axis with the first and last visible time steps.
	axis := axisStyle.Render("    └" + strings.Repeat("─", plotWidth))
	b.WriteString(axis)
	if len(points) > 0 {
		b.WriteString("\n")
		first := points[0].TimeStep
		last := points[len(points)-1].TimeStep
		labels := fmt.Sprintf("     %-*d%d", plotWidth-len(fmt.Sprint(last)), first, last)
		b.WriteString(axisStyle.Render(labels))
	}

	return b.String()
}
