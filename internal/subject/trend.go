package subject

// TrendWindow is the maximum number of recent points used for the
// slope estimate.
const TrendWindow = 5

// Trend describes the direction of the recent score series. Color is
// an opaque token passed through to presentation, Slope the fitted
// least-squares slope (zero when there is not enough data).
type Trend struct {
	Label string
	Color string
	Slope float64
}

// TrendNoData is returned while the series has fewer than two points.
var TrendNoData = Trend{Label: "Not enough data", Color: "#94A3B8"}

// ClassifyTrend fits a degree-1 least-squares line through the last
// min(TrendWindow, len(points)) points and buckets the slope. Every
// comparison is a strict ">", so a slope of exactly 1.5 lands in
// "Improving", not "Rapid improvement".
func ClassifyTrend(points []Point) Trend {
	if len(points) < 2 {
		return TrendNoData
	}

	recent := points
	if len(recent) > TrendWindow {
		recent = recent[len(recent)-TrendWindow:]
	}

	slope := fitSlope(recent)

	t := Trend{Slope: slope}
	switch {
	case slope > 1.5:
		t.Label, t.Color = "Rapid improvement", "#22C55E"
	case slope > 0.5:
		t.Label, t.Color = "Improving", "#15803D"
	case slope > -0.5:
		t.Label, t.Color = "Stable", "#3B82F6"
	case slope > -1.5:
		t.Label, t.Color = "Declining", "#F97316"
	default:
		t.Label, t.Color = "Rapid decline", "#EF4444"
	}
	return t
}

// fitSlope returns the ordinary least-squares slope of score over time
// step. Time steps are distinct by construction, but a degenerate
// denominator still falls back to a flat slope.
func fitSlope(points []Point) float64 {
	n := float64(len(points))
	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		x := float64(p.TimeStep)
		sumX += x
		sumY += p.Score
		sumXY += x * p.Score
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}
