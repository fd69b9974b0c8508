package mealplan

import (
	"fmt"
	"math"

	"NutriViet_V1.0/internal/models"
)

// Bounds limits how far the Scaler may resize portions.
type Bounds struct {
	Min, Max float64
	// Tolerance is the relative calorie gap that triggers the one
	// secondary correction.
	Tolerance float64
}

var (
	DefaultBounds = Bounds{Min: 0.7, Max: 1.5, Tolerance: 0.05}
	// StrictBounds is used when a day is regenerated after missing its target.
	StrictBounds = Bounds{Min: 0.7, Max: 1.5, Tolerance: 0.02}
)

// ScaleResult describes what the Scaler did.
type ScaleResult struct {
	Factor    float64
	Clamped   bool
	Corrected bool
	Refused   bool
}

// ScaleMacros rescales vs so their calorie sum matches target.Calories.
// The factor is clamped to the bounds; a clamped factor is final. Otherwise
// one unclamped correction runs if the sum is still off by more than the
// tolerance. Input with no calories is returned untouched.
func ScaleMacros(vs []models.Macros, target models.Macros, b Bounds) ([]models.Macros, ScaleResult) {
	total := sumCalories(vs)
	if total <= 0 || target.Calories <= 0 {
		return vs, ScaleResult{Factor: 1, Refused: true}
	}

	f := target.Calories / total
	clamped := math.Min(b.Max, math.Max(b.Min, f))
	out := scaleAll(vs, clamped)
	if clamped != f {
		return out, ScaleResult{Factor: clamped, Clamped: true}
	}

	res := ScaleResult{Factor: f}
	if after := sumCalories(out); math.Abs(after-target.Calories) > b.Tolerance*target.Calories {
		g := target.Calories / after
		out = scaleAll(out, g)
		res.Factor *= g
		res.Corrected = true
	}
	return out, res
}

// Scale applies ScaleMacros to the drafts' nutrition and annotates their notes.
func Scale(drafts []models.DishDraft, target models.Macros, b Bounds) ([]models.DishDraft, ScaleResult) {
	vs := make([]models.Macros, len(drafts))
	for i, d := range drafts {
		vs[i] = d.Nutrition
	}
	scaled, res := ScaleMacros(vs, target, b)

	var note string
	switch {
	case res.Refused:
		note = "unverified: portions not scaled (no baseline calories)"
	case res.Clamped:
		note = fmt.Sprintf("portions adjusted ×%.2f (clamped)", res.Factor)
	case math.Abs(res.Factor-1) >= 0.005:
		note = fmt.Sprintf("portions adjusted ×%.2f", res.Factor)
	}

	out := make([]models.DishDraft, len(drafts))
	for i, d := range drafts {
		d.Nutrition = scaled[i]
		if note != "" {
			d.Notes = append(append([]string(nil), d.Notes...), note)
		}
		out[i] = d
	}
	return out, res
}

func sumCalories(vs []models.Macros) float64 {
	var total float64
	for _, v := range vs {
		total += v.Calories
	}
	return total
}

func scaleAll(vs []models.Macros, f float64) []models.Macros {
	out := make([]models.Macros, len(vs))
	for i, v := range vs {
		out[i] = v.Scale(f)
	}
	return out
}
