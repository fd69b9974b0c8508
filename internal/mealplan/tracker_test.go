package mealplan

import (
	"fmt"
	"sync"
	"testing"

	"NutriViet_V1.0/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDishTracker(t *testing.T) {
	tr := NewDishTracker()

	tr.Add(models.SlotBreakfast, "Phở Bò")
	tr.Add(models.SlotBreakfast, "Bánh mì chảo")
	tr.Add(models.SlotLunch, "Cơm tấm")
	tr.Add(models.SlotLunch, "  ")

	assert.True(t, tr.IsUsed(models.SlotBreakfast, "phở  bò"))
	assert.False(t, tr.IsUsed(models.SlotLunch, "Phở Bò"))
	assert.Equal(t, []string{"Phở Bò", "Bánh mì chảo"}, tr.Names(models.SlotBreakfast))
	assert.Equal(t, map[string]struct{}{"phở bò": {}, "bánh mì chảo": {}}, tr.Used(models.SlotBreakfast))
	assert.Len(t, tr.Names(models.SlotLunch), 1)

	// re-adding moves the name to the most recent position
	tr.Add(models.SlotBreakfast, "phở bò")
	assert.Equal(t, []string{"Bánh mì chảo", "phở bò"}, tr.Names(models.SlotBreakfast))

	tr.ResetSlot(models.SlotBreakfast)
	assert.Empty(t, tr.Names(models.SlotBreakfast))
	assert.Len(t, tr.Names(models.SlotLunch), 1)

	tr.Reset()
	assert.Empty(t, tr.Names(models.SlotLunch))
}

func TestDishTracker_UsedIsACopy(t *testing.T) {
	tr := NewDishTracker()
	tr.Add(models.SlotDinner, "Canh chua")

	used := tr.Used(models.SlotDinner)
	used["cá kho"] = struct{}{}

	assert.False(t, tr.IsUsed(models.SlotDinner, "Cá kho"))
}

func TestDishTracker_Prune(t *testing.T) {
	tr := NewDishTracker()
	for i := 1; i <= 5; i++ {
		tr.Add(models.SlotDinner, fmt.Sprintf("Món %d", i))
	}

	tr.Prune(models.SlotDinner, 2)
	assert.Equal(t, []string{"Món 4", "Món 5"}, tr.Names(models.SlotDinner))

	tr.Prune(models.SlotDinner, 10)
	assert.Len(t, tr.Names(models.SlotDinner), 2)

	tr.Prune(models.SlotDinner, -1)
	assert.Empty(t, tr.Names(models.SlotDinner))
}

func TestDishTracker_SnapshotRestore(t *testing.T) {
	tr := NewDishTracker()
	tr.Add(models.SlotLunch, "Bún chả")

	snap := tr.snapshot()
	tr.Add(models.SlotLunch, "Cơm gà")
	tr.Add(models.SlotDinner, "Lẩu")
	tr.restore(snap)

	assert.Equal(t, []string{"Bún chả"}, tr.Names(models.SlotLunch))
	assert.Empty(t, tr.Names(models.SlotDinner))
}

func TestDishTracker_Concurrent(t *testing.T) {
	tr := NewDishTracker()

	var wg sync.WaitGroup
	for _, slot := range models.MealSlots {
		for w := 0; w < 4; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 50; i++ {
					name := fmt.Sprintf("%s-%d-%d", slot, w, i)
					tr.Add(slot, name)
					tr.IsUsed(slot, name)
					tr.Used(slot)
				}
			}()
		}
	}
	wg.Wait()

	for _, slot := range models.MealSlots {
		assert.Len(t, tr.Names(slot), 200)
	}
}
