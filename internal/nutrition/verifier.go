package nutrition

import (
	"fmt"
	"math"

	"NutriViet_V1.0/internal/models"
)

// Nutrition sources, recorded on every dish.
const (
	SourceDishTable     = "nutrition-table"
	SourceCuratedPool   = "curated-pool"
	SourceIngredientSum = "ingredient-sum"
	SourceRemote        = "usda"
	SourceLLM           = "llm"
	SourceSimilarity    = "similarity"
	SourceEstimated     = "estimated"
	SourceSkeleton      = "skeleton"
)

var sourceConfidence = map[string]float64{
	SourceDishTable:     0.9,
	SourceCuratedPool:   0.85,
	SourceRemote:        0.8,
	SourceIngredientSum: 0.75,
	SourceLLM:           0.7,
	SourceSimilarity:    0.5,
	SourceEstimated:     0.3,
	SourceSkeleton:      0.3,
}

const (
	// MinDishCalories is the floor below which a dish counts as estimated.
	MinDishCalories = 50
	maxDishCalories = 2000
	// Allowed relative gap between stated calories and 4p + 9f + 4c.
	consistencyTolerance = 0.3
)

// Verify checks a per-dish macro vector and returns a verdict. It never
// modifies m; warnings lower the confidence of the source by 0.2 each.
func Verify(m models.Macros, source string) models.NutritionVerification {
	var warnings []string

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"calories", m.Calories}, {"protein", m.Protein}, {"fat", m.Fat}, {"carbs", m.Carbs},
		{"fiber", m.Fiber}, {"sugar", m.Sugar}, {"sodium", m.Sodium},
	} {
		if f.v < 0 {
			warnings = append(warnings, fmt.Sprintf("negative %s (%.1f)", f.name, f.v))
		}
	}

	if m.Calories < MinDishCalories {
		warnings = append(warnings, fmt.Sprintf("calories too low (%.0f < %d kcal)", m.Calories, MinDishCalories))
	}
	if m.Calories > maxDishCalories {
		warnings = append(warnings, fmt.Sprintf("calories too high (%.0f > %d kcal)", m.Calories, maxDishCalories))
	}

	if m.Calories > 0 {
		derived := 4*m.Protein + 9*m.Fat + 4*m.Carbs
		if math.Abs(derived-m.Calories) > consistencyTolerance*m.Calories {
			warnings = append(warnings, fmt.Sprintf("macro/calorie mismatch (stated %.0f, macros imply %.0f kcal)", m.Calories, derived))
		}
	}

	base, ok := sourceConfidence[source]
	if !ok {
		base = 0.6
	}
	conf := base - 0.2*float64(len(warnings))
	conf = math.Max(0, math.Min(1, conf))

	return models.NutritionVerification{
		Verified:   len(warnings) == 0,
		Confidence: math.Round(conf*100) / 100,
		Source:     source,
		Warnings:   warnings,
	}
}
