package nutrition

import (
	"math"
	"strings"

	"NutriViet_V1.0/internal/models"
)

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

var goalAdjustments = map[string]float64{
	"lose":     -500,
	"maintain": 0,
	"gain":     300,
}

const minDailyCalories = 1200

// TargetFromProfile returns the day target for a profile. An explicit
// TargetMacros wins; otherwise the Mifflin-St Jeor BMR times the activity
// multiplier, adjusted for the goal and split 25/25/50 protein/fat/carbs.
// ok is false when the profile lacks body metrics.
func TargetFromProfile(p *models.UserProfile) (models.Macros, bool) {
	if p == nil {
		return models.Macros{}, false
	}
	if p.TargetMacros != nil && p.TargetMacros.Calories > 0 {
		return *p.TargetMacros, true
	}
	if p.WeightKg <= 0 || p.HeightCm <= 0 || p.Age <= 0 {
		return models.Macros{}, false
	}

	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	switch strings.ToLower(p.Gender) {
	case "female", "f", "nữ":
		bmr -= 161
	default:
		bmr += 5
	}

	mult, ok := activityMultipliers[strings.ToLower(p.ActivityLevel)]
	if !ok {
		mult = activityMultipliers["sedentary"]
	}
	kcal := bmr*mult + goalAdjustments[strings.ToLower(p.Goal)]
	kcal = math.Max(minDailyCalories, math.Round(kcal))

	return models.Macros{
		Calories: kcal,
		Protein:  math.Round(kcal * 0.25 / 4),
		Fat:      math.Round(kcal * 0.25 / 9),
		Carbs:    math.Round(kcal * 0.50 / 4),
	}, true
}
