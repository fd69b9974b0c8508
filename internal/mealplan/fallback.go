package mealplan

import (
	"hash/fnv"
	"math"
	"math/rand/v2"

	"NutriViet_V1.0/internal/models"
	"NutriViet_V1.0/internal/nutrition"
	"NutriViet_V1.0/internal/recipepool"
)

const maxFallbackDishes = 2

// FallbackGenerator builds a meal from the recipe pool when the LLM path
// yields nothing.
type FallbackGenerator struct {
	Pool recipepool.Pool
}

// Generate draws 1 or 2 dishes (seeded by dayIndex) avoiding used names,
// adjusts the count when the draw cannot be scaled onto target within
// bounds, and scales the result.
func (g FallbackGenerator) Generate(slot models.MealSlot, target models.Macros, used map[string]struct{}, dayIndex int, b Bounds) []models.DishDraft {
	recipes := g.Pool.Draw(slot, maxFallbackDishes, used, dayIndex, target)
	if len(recipes) == 0 {
		recipes = []recipepool.Recipe{recipepool.Skeleton(slot, target)}
	}

	rng := rand.New(rand.NewPCG(uint64(dayIndex)+1, slotSeed(slot)))
	n := chooseCount(recipes, 1+rng.IntN(2), target, b)

	drafts := make([]models.DishDraft, n)
	for i, r := range recipes[:n] {
		drafts[i] = draftFromRecipe(r)
	}
	scaled, _ := Scale(drafts, target, b)
	return scaled
}

// chooseCount keeps the seeded count when its prefix can be scaled onto the
// target, otherwise picks the nearest feasible count, otherwise the count
// whose calories are closest to the target. It never exceeds
// maxFallbackDishes.
func chooseCount(recipes []recipepool.Recipe, seeded int, target models.Macros, b Bounds) int {
	limit := min(len(recipes), maxFallbackDishes)
	seeded = min(seeded, limit)

	feasible := func(n int) bool {
		total := 0.0
		for _, r := range recipes[:n] {
			total += r.Macros.Calories
		}
		if total <= 0 {
			return false
		}
		f := target.Calories / total
		return f >= b.Min && f <= b.Max
	}
	if feasible(seeded) {
		return seeded
	}
	for d := 1; d < limit; d++ {
		for _, n := range []int{seeded - d, seeded + d} {
			if n >= 1 && n <= limit && feasible(n) {
				return n
			}
		}
	}

	best, bestGap := seeded, math.Inf(1)
	total := 0.0
	for n := 1; n <= limit; n++ {
		total += recipes[n-1].Macros.Calories
		if total <= 0 {
			continue
		}
		if gap := math.Abs(math.Log(target.Calories / total)); gap < bestGap {
			best, bestGap = n, gap
		}
	}
	return best
}

func draftFromRecipe(r recipepool.Recipe) models.DishDraft {
	d := models.DishDraft{
		Name:            r.Name,
		Description:     r.Description,
		Ingredients:     append([]models.Ingredient(nil), r.Ingredients...),
		Preparation:     append([]string(nil), r.Preparation...),
		Nutrition:       r.Macros,
		Region:          r.Region,
		Provenance:      nutrition.SourceCuratedPool,
		NutritionSource: nutrition.SourceCuratedPool,
	}
	if r.Skeleton {
		d.Provenance = nutrition.SourceSkeleton
		d.NutritionSource = nutrition.SourceSkeleton
	}
	return d
}

func slotSeed(slot models.MealSlot) uint64 {
	h := fnv.New64a()
	h.Write([]byte(slot))
	return h.Sum64()
}
