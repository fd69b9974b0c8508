// Package models holds the value types shared by the meal-plan engine,
// its collaborators and the HTTP layer.
package models

import "math"

/* =================================================================================
								MACROS
=================================================================================*/

// Macros is a nutrition vector. Calories are kcal, the rest grams except
// Sodium (mg). Targets use the same shape.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`

	// Optional micro fields, carried through scaling and sums.
	Fiber  float64 `json:"fiber,omitempty"`
	Sugar  float64 `json:"sugar,omitempty"`
	Sodium float64 `json:"sodium,omitempty"`
}

// Add returns the componentwise sum of m and o.
func (m Macros) Add(o Macros) Macros {
	return Macros{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Fat:      m.Fat + o.Fat,
		Carbs:    m.Carbs + o.Carbs,
		Fiber:    m.Fiber + o.Fiber,
		Sugar:    m.Sugar + o.Sugar,
		Sodium:   m.Sodium + o.Sodium,
	}
}

// Scale multiplies every field by f.
func (m Macros) Scale(f float64) Macros {
	return Macros{
		Calories: m.Calories * f,
		Protein:  m.Protein * f,
		Fat:      m.Fat * f,
		Carbs:    m.Carbs * f,
		Fiber:    m.Fiber * f,
		Sugar:    m.Sugar * f,
		Sodium:   m.Sodium * f,
	}
}

// AllPositive reports whether the four core fields are strictly positive.
func (m Macros) AllPositive() bool {
	return m.Calories > 0 && m.Protein > 0 && m.Fat > 0 && m.Carbs > 0
}

// IsZero reports whether no calorie information is present.
func (m Macros) IsZero() bool {
	return m.Calories <= 0
}

// SumMacros adds vectors that were already rounded at the dish level.
// Sums are kept to two decimals so float noise never leaks into totals.
func SumMacros(vs ...Macros) Macros {
	var total Macros
	for _, v := range vs {
		total = total.Add(v)
	}
	return Macros{
		Calories: round2(total.Calories),
		Protein:  round2(total.Protein),
		Fat:      round2(total.Fat),
		Carbs:    round2(total.Carbs),
		Fiber:    round2(total.Fiber),
		Sugar:    round2(total.Sugar),
		Sodium:   round2(total.Sodium),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

/* =================================================================================
								DISHES & PLANS
=================================================================================*/

// Ingredient is one line of a recipe; Amount is free text ("200g", "2 quả").
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// NutritionVerification is the Verifier's verdict on one macro vector.
type NutritionVerification struct {
	Verified   bool     `json:"verified"`
	Confidence float64  `json:"confidence"`
	Source     string   `json:"source"`
	Warnings   []string `json:"warnings,omitempty"`
}

// Dish is the canonical, assembled dish returned to callers.
type Dish struct {
	Name            string                `json:"name"`
	Description     string                `json:"description,omitempty"`
	Ingredients     []Ingredient          `json:"ingredients"`
	Preparation     []string              `json:"preparation"`
	Nutrition       Macros                `json:"nutrition"`
	DishType        DishType              `json:"dish_type"`
	Region          Region                `json:"region"`
	PreparationTime string                `json:"preparation_time,omitempty"`
	HealthBenefits  []string              `json:"health_benefits,omitempty"`
	ImageURL        string                `json:"image_url,omitempty"`
	ProvenanceNote  string                `json:"provenance_note"`
	Verification    NutritionVerification `json:"verification"`
}

// DishDraft is an unassembled dish coming from the LLM or the recipe pool.
type DishDraft struct {
	Name            string
	Description     string
	Ingredients     []Ingredient
	Preparation     []string
	Nutrition       Macros
	PreparationTime string
	HealthBenefits  []string
	Region          Region
	ImageURL        string

	// Provenance names the producer: "llm", "curated-pool" or "skeleton".
	Provenance string
	// Notes accumulates annotations (scaler adjustments, nutrition source).
	Notes []string
	// NutritionSource records how Nutrition was obtained, empty until resolved.
	NutritionSource string
}

// Meal is one slot of a day.
type Meal struct {
	Dishes []Dish `json:"dishes"`
	Macros Macros `json:"nutrition"`
}

// DayPlan holds three meals for one week-day label.
type DayPlan struct {
	DayLabel   string   `json:"day_label"`
	Breakfast  Meal     `json:"breakfast"`
	Lunch      Meal     `json:"lunch"`
	Dinner     Meal     `json:"dinner"`
	Macros     Macros   `json:"nutrition"`
	Advisories []string `json:"advisories,omitempty"`
}

// Meal returns the meal stored under slot.
func (d *DayPlan) Meal(slot MealSlot) Meal {
	switch slot {
	case SlotBreakfast:
		return d.Breakfast
	case SlotLunch:
		return d.Lunch
	default:
		return d.Dinner
	}
}

// SetMeal replaces the meal for slot and recomputes the day total.
func (d *DayPlan) SetMeal(slot MealSlot, m Meal) {
	switch slot {
	case SlotBreakfast:
		d.Breakfast = m
	case SlotLunch:
		d.Lunch = m
	default:
		d.Dinner = m
	}
	d.Recompute()
}

// Recompute sets Macros to the sum of the three meals.
func (d *DayPlan) Recompute() {
	d.Macros = SumMacros(d.Breakfast.Macros, d.Lunch.Macros, d.Dinner.Macros)
}

// WeekPlan is seven DayPlans in WeekDays order.
type WeekPlan struct {
	Days       []DayPlan `json:"days"`
	Advisories []string  `json:"advisories,omitempty"`
}

// DayIndex returns the position of label in the plan, or -1.
func (w *WeekPlan) DayIndex(label string) int {
	for i := range w.Days {
		if w.Days[i].DayLabel == label {
			return i
		}
	}
	return -1
}

// FoodMatch is a remote nutrition-service hit, macros per 100 g.
type FoodMatch struct {
	Name    string `json:"name"`
	Per100g Macros `json:"per_100g"`
}
