package recipepool

import (
	"testing"

	"NutriViet_V1.0/internal/models"
	"NutriViet_V1.0/internal/nutrition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var target = models.Macros{Calories: 500, Protein: 30, Fat: 15, Carbs: 60}

func names(rs []Recipe) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

func TestCuratedPoolShape(t *testing.T) {
	p := Default()
	ranges := map[models.MealSlot][2]float64{
		models.SlotBreakfast: {300, 500},
		models.SlotLunch:     {450, 700},
		models.SlotDinner:    {400, 650},
	}
	for slot, r := range ranges {
		require.GreaterOrEqual(t, p.Size(slot), 12, slot)
		for _, rec := range p.bySlot[slot] {
			assert.GreaterOrEqual(t, rec.Macros.Calories, r[0], rec.Name)
			assert.LessOrEqual(t, rec.Macros.Calories, r[1], rec.Name)
			assert.NotEmpty(t, rec.Ingredients, rec.Name)
			assert.Len(t, rec.Preparation, 3, rec.Name)
			v := nutrition.Verify(rec.Macros, nutrition.SourceCuratedPool)
			assert.True(t, v.Verified, "%s: %v", rec.Name, v.Warnings)
		}
	}
}

func TestDrawDeterministic(t *testing.T) {
	p := Default()
	a := p.Draw(models.SlotLunch, 3, nil, 2, target)
	b := p.Draw(models.SlotLunch, 3, nil, 2, target)
	assert.Equal(t, names(a), names(b))

	differs := false
	for day := 0; day < 7; day++ {
		if names(p.Draw(models.SlotLunch, 3, nil, day, target))[0] != names(a)[0] {
			differs = true
		}
	}
	assert.True(t, differs, "day index must perturb the order")
}

func TestDrawPrefix(t *testing.T) {
	p := Default()
	for k := 1; k < 5; k++ {
		short := names(p.Draw(models.SlotDinner, k, nil, 4, target))
		long := names(p.Draw(models.SlotDinner, k+1, nil, 4, target))
		assert.Equal(t, short, long[:k])
	}
}

func TestDrawAvoidsThenRenames(t *testing.T) {
	p := Default()
	avoid := map[string]struct{}{}
	seen := map[string]int{}

	// Drain the whole slot, then draw again.
	total := p.Size(models.SlotBreakfast) + 4
	for i := 0; i < total; i++ {
		r := p.Draw(models.SlotBreakfast, 1, avoid, i, target)
		require.Len(t, r, 1)
		name := r[0].Name
		seen[name]++
		avoid[nutrition.Normalize(name)] = struct{}{}
	}
	for name, n := range seen {
		assert.Equal(t, 1, n, "%s drawn twice under the same name", name)
	}
	assert.Len(t, seen, total)

	var variants int
	for name := range seen {
		if name[len(name)-1] == ')' {
			variants++
		}
	}
	assert.Equal(t, 4, variants)
}

func TestDrawMoreThanPool(t *testing.T) {
	p := New([]Recipe{
		{Name: "A", Slot: models.SlotLunch, Macros: target},
		{Name: "B", Slot: models.SlotLunch, Macros: target},
	})
	got := names(p.Draw(models.SlotLunch, 4, nil, 0, target))
	require.Len(t, got, 4)
	assert.ElementsMatch(t, []string{"A", "B"}, got[:2])
	assert.Contains(t, got[2], "(2)")
	assert.Contains(t, got[3], "(2)")
	assert.NotEqual(t, got[2], got[3])
}

func TestDrawFallbacks(t *testing.T) {
	t.Run("empty slot uses breakfast pool", func(t *testing.T) {
		p := New([]Recipe{{Name: "Bánh mì", Slot: models.SlotBreakfast, Macros: target}})
		got := p.Draw(models.SlotDinner, 1, nil, 0, target)
		require.Len(t, got, 1)
		assert.Equal(t, "Bánh mì", got[0].Name)
	})

	t.Run("empty pool yields skeleton", func(t *testing.T) {
		sub := models.Macros{Calories: 700, Protein: 40, Fat: 20, Carbs: 90}
		got := New(nil).Draw(models.SlotLunch, 2, nil, 0, sub)
		require.Len(t, got, 1)
		assert.True(t, got[0].Skeleton)
		assert.Equal(t, "Bữa trưa cơ bản", got[0].Name)
		assert.Equal(t, sub, got[0].Macros)
		assert.Len(t, got[0].Ingredients, 3)
		assert.Len(t, got[0].Preparation, 3)
	})

	t.Run("zero count", func(t *testing.T) {
		assert.Empty(t, Default().Draw(models.SlotLunch, 0, nil, 0, target))
	})
}
