package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Atwater factors, kcal per gram.
const (
	kcalPerGramCarb    = 4.0
	kcalPerGramProtein = 4.0
	kcalPerGramFat     = 9.0
)

// CalcCalories estimates kcal from macro grams. Missing or non-finite
// inputs count as zero, and an all-zero row yields an explicit 0 so the
// NOT NULL calories column downstream always gets a value.
func CalcCalories(carbG, proteinG, fatG *float64) int {
	c := finiteOrZero(carbG)
	p := finiteOrZero(proteinG)
	f := finiteOrZero(fatG)
	if c == 0 && p == 0 && f == 0 {
		return 0
	}
	kcal := math.Round(c*kcalPerGramCarb + p*kcalPerGramProtein + f*kcalPerGramFat)
	if math.IsNaN(kcal) || math.IsInf(kcal, 0) {
		return 0
	}
	return int(kcal)
}

func finiteOrZero(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return *v
}

// NormalizeQuantity coerces whatever the form sent into a non-negative
// integer gram count. Numeric strings are accepted ("12.7" -> 13);
// negatives clamp to 0; anything unparseable falls back to def.
func NormalizeQuantity(v any, def int) int {
	var f float64
	switch n := v.(type) {
	case nil:
		return def
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return def
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return def
		}
		f = parsed
	default:
		return def
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	if f < 0 {
		return 0
	}
	return int(math.Round(f))
}
