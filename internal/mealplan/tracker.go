package mealplan

import (
	"sync"

	"NutriViet_V1.0/internal/models"
	"NutriViet_V1.0/internal/nutrition"
)

// DishTracker remembers the dish names used per meal slot during one
// generation run. It is safe for concurrent use.
type DishTracker struct {
	mu   sync.Mutex
	used map[models.MealSlot][]trackedName
}

type trackedName struct {
	key, display string
}

// NewDishTracker returns an empty tracker.
func NewDishTracker() *DishTracker {
	return &DishTracker{used: make(map[models.MealSlot][]trackedName)}
}

// Reset forgets every slot.
func (t *DishTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.used = make(map[models.MealSlot][]trackedName)
}

// ResetSlot forgets one slot.
func (t *DishTracker) ResetSlot(slot models.MealSlot) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.used, slot)
}

// Add records name under slot. Re-adding a name moves it to the most recent
// position.
func (t *DishTracker) Add(slot models.MealSlot, name string) {
	key := nutrition.Normalize(name)
	if key == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	names := t.used[slot]
	for i, n := range names {
		if n.key == key {
			names = append(names[:i:i], names[i+1:]...)
			break
		}
	}
	t.used[slot] = append(names, trackedName{key: key, display: name})
}

// Used returns a copy of the normalized names recorded under slot.
func (t *DishTracker) Used(slot models.MealSlot) map[string]struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]struct{}, len(t.used[slot]))
	for _, n := range t.used[slot] {
		out[n.key] = struct{}{}
	}
	return out
}

// Names returns the names recorded under slot as they were added, oldest first.
func (t *DishTracker) Names(slot models.MealSlot) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.used[slot]))
	for i, n := range t.used[slot] {
		out[i] = n.display
	}
	return out
}

func (t *DishTracker) IsUsed(slot models.MealSlot, name string) bool {
	key := nutrition.Normalize(name)
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, n := range t.used[slot] {
		if n.key == key {
			return true
		}
	}
	return false
}

// Prune keeps only the keep most recent names of slot.
func (t *DishTracker) Prune(slot models.MealSlot, keep int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	names := t.used[slot]
	if keep < 0 {
		keep = 0
	}
	if len(names) > keep {
		t.used[slot] = append([]trackedName(nil), names[len(names)-keep:]...)
	}
}

// snapshot copies the tracker state so a discarded day can be rolled back.
func (t *DishTracker) snapshot() map[models.MealSlot][]trackedName {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[models.MealSlot][]trackedName, len(t.used))
	for slot, names := range t.used {
		out[slot] = append([]trackedName(nil), names...)
	}
	return out
}

func (t *DishTracker) restore(s map[models.MealSlot][]trackedName) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.used = s
}
