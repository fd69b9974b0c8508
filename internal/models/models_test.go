package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMealSlot(t *testing.T) {
	tests := []struct {
		in   string
		want MealSlot
	}{
		{"breakfast", SlotBreakfast},
		{" Lunch ", SlotLunch},
		{"Bữa tối", SlotDinner},
		{"sáng", SlotBreakfast},
	}
	for _, tt := range tests {
		got, err := ParseMealSlot(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseMealSlot("snack")
	assert.Error(t, err)
}

func TestParseRegion(t *testing.T) {
	assert.Equal(t, RegionNorth, ParseRegion("Miền Bắc"))
	assert.Equal(t, RegionSouth, ParseRegion("south"))
	assert.Equal(t, RegionHighlander, ParseRegion("Tây Nguyên"))
	assert.Equal(t, Region(""), ParseRegion(""))
	assert.Equal(t, Region(""), ParseRegion("mars"))
}

func TestSumMacrosRoundsToTwoDecimals(t *testing.T) {
	got := SumMacros(Macros{Calories: 0.1, Protein: 1.005}, Macros{Calories: 0.2, Protein: 2})
	assert.Equal(t, 0.3, got.Calories)
	assert.InDelta(t, 3.0, got.Protein, 0.011)
}

func TestDayPlanSetMealRecomputes(t *testing.T) {
	day := DayPlan{DayLabel: WeekDays[0]}
	day.SetMeal(SlotBreakfast, Meal{Macros: Macros{Calories: 500, Protein: 30, Fat: 15, Carbs: 60}})
	day.SetMeal(SlotDinner, Meal{Macros: Macros{Calories: 700, Protein: 40, Fat: 20, Carbs: 90}})

	assert.Equal(t, Macros{Calories: 1200, Protein: 70, Fat: 35, Carbs: 150}, day.Macros)
	assert.Equal(t, 700.0, day.Meal(SlotDinner).Macros.Calories)
	assert.Empty(t, day.Meal(SlotLunch).Dishes)
}

func TestWeekPlanDayIndex(t *testing.T) {
	plan := WeekPlan{}
	for _, label := range WeekDays {
		plan.Days = append(plan.Days, DayPlan{DayLabel: label})
	}
	assert.Equal(t, 0, plan.DayIndex("Thứ 2"))
	assert.Equal(t, 6, plan.DayIndex("Chủ nhật"))
	assert.Equal(t, -1, plan.DayIndex("Thứ 8"))
}
