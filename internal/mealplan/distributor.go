package mealplan

import (
	"fmt"
	"math"

	"NutriViet_V1.0/internal/models"
	"github.com/rs/zerolog"
)

const (
	// MaxDailyCalories is the hard cap applied to every day target.
	MaxDailyCalories = 3000

	breakfastShare = 0.25
	lunchShare     = 0.40
)

// MealTargets is a day target split across the three slots.
type MealTargets struct {
	Breakfast models.Macros
	Lunch     models.Macros
	Dinner    models.Macros
}

// For returns the target of slot.
func (mt MealTargets) For(slot models.MealSlot) models.Macros {
	switch slot {
	case models.SlotBreakfast:
		return mt.Breakfast
	case models.SlotLunch:
		return mt.Lunch
	default:
		return mt.Dinner
	}
}

// ValidateTarget checks that the four core fields are finite and positive.
func ValidateTarget(t models.Macros) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"calories", t.Calories}, {"protein", t.Protein}, {"fat", t.Fat}, {"carbs", t.Carbs},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v <= 0 {
			return fmt.Errorf("%w: target %s must be a positive number", ErrInvalidRequest, f.name)
		}
	}
	return nil
}

// CapDayTarget scales every field down so calories do not exceed
// MaxDailyCalories. It reports whether the cap applied.
func CapDayTarget(day models.Macros) (models.Macros, bool) {
	if day.Calories <= MaxDailyCalories {
		return day, false
	}
	capped := day.Scale(MaxDailyCalories / day.Calories)
	capped.Calories = MaxDailyCalories
	return capped, true
}

// Distribute splits day 25/40/35. Breakfast and lunch are floored to whole
// units and dinner takes the residual, so the three targets add up to day.
func Distribute(day models.Macros, logger zerolog.Logger) (MealTargets, error) {
	if err := ValidateTarget(day); err != nil {
		return MealTargets{}, err
	}
	if capped, ok := CapDayTarget(day); ok {
		logger.Warn().
			Float64("requested_kcal", day.Calories).
			Float64("cap_kcal", MaxDailyCalories).
			Msg("Daily target above cap, scaling down")
		day = capped
	}

	var mt MealTargets
	split := func(total float64, set func(b, l, d float64)) {
		b := floorShare(total, breakfastShare)
		l := floorShare(total, lunchShare)
		set(b, l, total-b-l)
	}
	split(day.Calories, func(b, l, d float64) {
		mt.Breakfast.Calories, mt.Lunch.Calories, mt.Dinner.Calories = b, l, d
	})
	split(day.Protein, func(b, l, d float64) {
		mt.Breakfast.Protein, mt.Lunch.Protein, mt.Dinner.Protein = b, l, d
	})
	split(day.Fat, func(b, l, d float64) {
		mt.Breakfast.Fat, mt.Lunch.Fat, mt.Dinner.Fat = b, l, d
	})
	split(day.Carbs, func(b, l, d float64) {
		mt.Breakfast.Carbs, mt.Lunch.Carbs, mt.Dinner.Carbs = b, l, d
	})
	split(day.Fiber, func(b, l, d float64) {
		mt.Breakfast.Fiber, mt.Lunch.Fiber, mt.Dinner.Fiber = b, l, d
	})
	split(day.Sugar, func(b, l, d float64) {
		mt.Breakfast.Sugar, mt.Lunch.Sugar, mt.Dinner.Sugar = b, l, d
	})
	split(day.Sodium, func(b, l, d float64) {
		mt.Breakfast.Sodium, mt.Lunch.Sodium, mt.Dinner.Sodium = b, l, d
	})
	return mt, nil
}

// floorShare floors total*share, keeping the unfloored value when flooring
// would leave a positive total with a zero share.
func floorShare(total, share float64) float64 {
	v := total * share
	if f := math.Floor(v); f > 0 || total <= 0 {
		return f
	}
	return v
}
