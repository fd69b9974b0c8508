package mealplan

import (
	"context"
	"sync"
	"time"

	"NutriViet_V1.0/internal/geminiservice"
	"NutriViet_V1.0/internal/models"
)

// MealSuggester is the LLM driver as seen by the planner.
type MealSuggester interface {
	SuggestMeal(ctx context.Context, req geminiservice.MealRequest) ([]models.DishDraft, error)
	FlushCache()
}

// PlanStore persists week plans per user.
type PlanStore interface {
	SaveWeekPlan(ctx context.Context, userID string, plan *models.WeekPlan, at time.Time) error
	// LatestWeekPlan returns nil, nil when the user has no plan.
	LatestWeekPlan(ctx context.Context, userID string) (*models.WeekPlan, error)
}

// Request is the caller's input to every planner operation.
type Request struct {
	UserID string
	// Target is the day target. When zero it is derived from Profile.
	Target      models.Macros
	Preferences []string
	Allergies   []string
	DietPrefs   []string
	Cuisine     string
	UseAI       bool
	Profile     *models.UserProfile

	// OnDay, when set, is called after each day of a week is accepted.
	OnDay func(index int, day models.DayPlan)
}

// GenerationContext is the state of one generation run. It is created per
// request and never shared between requests.
type GenerationContext struct {
	Tracker  *DishTracker
	LLM      MealSuggester // nil when the run does not use AI
	Assembly AssemblyOptions
	Bounds   Bounds

	preferences []string
	allergies   []string
	dietPrefs   []string
	cuisine     string

	mu         sync.Mutex
	advisories []string
}

func (gc *GenerationContext) advise(msg string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	for _, a := range gc.advisories {
		if a == msg {
			return
		}
	}
	gc.advisories = append(gc.advisories, msg)
}

// takeAdvisories returns and clears the collected advisories.
func (gc *GenerationContext) takeAdvisories() []string {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	out := gc.advisories
	gc.advisories = nil
	return out
}

// mealRequest builds the LLM request for one slot.
func (gc *GenerationContext) mealRequest(slot models.MealSlot, target models.Macros) geminiservice.MealRequest {
	return geminiservice.MealRequest{
		Slot:        slot,
		Target:      target,
		Preferences: gc.preferences,
		Allergies:   gc.allergies,
		DietPrefs:   gc.dietPrefs,
		Cuisine:     gc.cuisine,
		Avoid:       gc.Tracker.Names(slot),
	}
}
