package nutrition

import (
	"math"

	"NutriViet_V1.0/internal/models"
)

// Round applies the display precision used everywhere a number leaves the
// engine: two decimals below 1, one decimal below 10, whole numbers above.
func Round(v float64) float64 {
	a := math.Abs(v)
	switch {
	case a < 1:
		return math.Round(v*100) / 100
	case a < 10:
		return math.Round(v*10) / 10
	default:
		return math.Round(v)
	}
}

// RoundMacros rounds every field of m with Round.
func RoundMacros(m models.Macros) models.Macros {
	return models.Macros{
		Calories: Round(m.Calories),
		Protein:  Round(m.Protein),
		Fat:      Round(m.Fat),
		Carbs:    Round(m.Carbs),
		Fiber:    Round(m.Fiber),
		Sugar:    Round(m.Sugar),
		Sodium:   Round(m.Sodium),
	}
}
