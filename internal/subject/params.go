package subject

import (
	"encoding/json"
	"math"
	"strconv"
)

const (
	// MinValue and MaxValue bound every parameter.
	MinValue = 0
	MaxValue = 100

	// DefaultValue is used when a parameter is missing from storage or
	// from an imported row.
	DefaultValue = 50
)

// ParameterNames lists the five recognized parameters in display order.
// Change logs and UI rows follow this order.
var ParameterNames = []string{
	"preparedness",
	"teaching",
	"materials",
	"participation",
	"difficulty",
}

// ParameterSet maps each recognized parameter name to a value in [0,100].
// A well-formed set always contains exactly the five recognized names.
type ParameterSet map[string]int

// NewParameterSet returns a set with every parameter at def (clamped).
func NewParameterSet(def int) ParameterSet {
	ps := make(ParameterSet, len(ParameterNames))
	for _, name := range ParameterNames {
		ps[name] = ClampValue(def)
	}
	return ps
}

// Recognized reports whether name is one of the five parameters.
func Recognized(name string) bool {
	for _, n := range ParameterNames {
		if n == name {
			return true
		}
	}
	return false
}

// Set assigns a clamped value. Unrecognized names are ignored.
func (ps ParameterSet) Set(name string, value int) {
	if !Recognized(name) {
		return
	}
	ps[name] = ClampValue(value)
}

// Clone returns an independent copy of the set.
func (ps ParameterSet) Clone() ParameterSet {
	out := make(ParameterSet, len(ps))
	for k, v := range ps {
		out[k] = v
	}
	return out
}

// Equal reports whether both sets hold the same value for every
// recognized parameter.
func (ps ParameterSet) Equal(other ParameterSet) bool {
	for _, name := range ParameterNames {
		if ps[name] != other[name] {
			return false
		}
	}
	return true
}

// ClampValue bounds v to [MinValue, MaxValue].
func ClampValue(v int) int {
	if v < MinValue {
		return MinValue
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}

// CoerceValue converts an arbitrary decoded value (JSON field, CSV cell)
// to a clamped parameter value. Anything that is not a number, or a
// string that does not parse as one, falls back to def. This is the
// single place tolerant defaulting happens for imported data.
func CoerceValue(v any, def int) int {
	switch x := v.(type) {
	case nil:
		return ClampValue(def)
	case float64:
		return ClampValue(int(math.Round(x)))
	case float32:
		return ClampValue(int(math.Round(float64(x))))
	case int:
		return ClampValue(x)
	case int64:
		return ClampValue(int(x))
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return ClampValue(def)
		}
		return ClampValue(int(math.Round(f)))
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return ClampValue(def)
		}
		return ClampValue(int(math.Round(f)))
	case bool:
		return ClampValue(def)
	default:
		return ClampValue(def)
	}
}
