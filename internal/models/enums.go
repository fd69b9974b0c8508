package models

import (
	"fmt"
	"strings"
)

// MealSlot is one of the three daily meals. Snacks are not planned.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
)

// MealSlots lists the slots in serving order.
var MealSlots = []MealSlot{SlotBreakfast, SlotLunch, SlotDinner}

// Label is the Vietnamese display name used in prompts and skeleton dishes.
func (s MealSlot) Label() string {
	switch s {
	case SlotBreakfast:
		return "Bữa sáng"
	case SlotLunch:
		return "Bữa trưa"
	case SlotDinner:
		return "Bữa tối"
	}
	return string(s)
}

// ParseMealSlot accepts English keys and Vietnamese labels.
func ParseMealSlot(s string) (MealSlot, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "breakfast", "bữa sáng", "sáng":
		return SlotBreakfast, nil
	case "lunch", "bữa trưa", "trưa":
		return SlotLunch, nil
	case "dinner", "bữa tối", "tối":
		return SlotDinner, nil
	}
	return "", fmt.Errorf("unknown meal slot %q", s)
}

// DishType classifies a dish within a meal.
type DishType string

const (
	DishMain      DishType = "main"
	DishSide      DishType = "side"
	DishSoup      DishType = "soup"
	DishDessert   DishType = "dessert"
	DishAppetizer DishType = "appetizer"
)

// Region is the culinary origin of a dish.
type Region string

const (
	RegionNorth      Region = "north"
	RegionCentral    Region = "central"
	RegionSouth      Region = "south"
	RegionHighlander Region = "highlander"
	RegionForeign    Region = "foreign"
)

// ParseRegion maps profile values ("miền bắc", "south", ...) to a Region.
// Unknown input yields "".
func ParseRegion(s string) Region {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "":
		return ""
	case strings.Contains(v, "north"), strings.Contains(v, "bắc"):
		return RegionNorth
	case strings.Contains(v, "central"), strings.Contains(v, "trung"):
		return RegionCentral
	case strings.Contains(v, "south"), strings.Contains(v, "nam"):
		return RegionSouth
	case strings.Contains(v, "highland"), strings.Contains(v, "tây nguyên"):
		return RegionHighlander
	case strings.Contains(v, "foreign"), strings.Contains(v, "quốc tế"):
		return RegionForeign
	}
	return ""
}

// WeekDays is the fixed order of day labels in every WeekPlan.
var WeekDays = []string{"Thứ 2", "Thứ 3", "Thứ 4", "Thứ 5", "Thứ 6", "Thứ 7", "Chủ nhật"}
