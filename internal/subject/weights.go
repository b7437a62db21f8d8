package subject

// Weights maps parameter names to their contribution in the weighted
// score. Difficulty carries a negative weight: a harder subject lowers
// the pass chance.
type Weights map[string]float64

// DefaultWeights returns the built-in weight table.
func DefaultWeights() Weights {
	return Weights{
		"preparedness":  0.3,
		"teaching":      0.3,
		"materials":     0.2,
		"participation": 0.15,
		"difficulty":    -0.05,
	}
}

// Score computes the clamped weighted sum over the given parameters
// on the 0-100 scale.
func (w Weights) Score(params ParameterSet) float64 {
	var score float64
	for _, name := range ParameterNames {
		score += float64(params[name]) * w[name]
	}
	if score < float64(MinValue) {
		return float64(MinValue)
	}
	if score > float64(MaxValue) {
		return float64(MaxValue)
	}
	return score
}
