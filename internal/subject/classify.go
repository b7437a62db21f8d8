package subject

// Prediction is a pass/fail band for the most recent score. Foreground
// and Background are opaque color tokens; the model never interprets
// them, the presentation layer feeds them straight into its styles.
type Prediction struct {
	Label      string
	Foreground string
	Background string
}

// PredictionNoData is returned when the series is empty.
var PredictionNoData = Prediction{
	Label:      "No data",
	Foreground: "#94A3B8",
	Background: "#334155",
}

// passBands is ordered highest threshold first. Lower bounds are
// inclusive: a score of exactly 70 is a high pass chance.
var passBands = []struct {
	min  float64
	pred Prediction
}{
	{70, Prediction{Label: "High pass chance", Foreground: "#22C55E", Background: "#ddffdd"}},
	{60, Prediction{Label: "Likely to pass", Foreground: "#15803D", Background: "#eeffee"}},
	{50, Prediction{Label: "Borderline", Foreground: "#3B82F6", Background: "#ffffdd"}},
	{40, Prediction{Label: "Risk of failing", Foreground: "#F97316", Background: "#ffeeee"}},
}

// predictionFailing covers every score below the lowest band threshold.
var predictionFailing = Prediction{
	Label:      "High fail chance",
	Foreground: "#EF4444",
	Background: "#ffdddd",
}

// ClassifyScore maps a score to its pass/fail band.
func ClassifyScore(score float64) Prediction {
	for _, b := range passBands {
		if score >= b.min {
			return b.pred
		}
	}
	return predictionFailing
}
