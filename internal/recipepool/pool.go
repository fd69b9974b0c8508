// Package recipepool is the curated, static set of Vietnamese dishes used
// whenever the model is unavailable or its answer cannot be used.
package recipepool

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"NutriViet_V1.0/internal/models"
	"NutriViet_V1.0/internal/nutrition"
)

// Recipe is one pool entry. Macros are the baseline for one serving.
type Recipe struct {
	Name        string
	Description string
	Slot        models.MealSlot
	Region      models.Region
	Ingredients []models.Ingredient
	Preparation []string
	Macros      models.Macros

	// Skeleton marks a synthesized placeholder, never a curated entry.
	Skeleton bool
}

// Pool draws recipes for a meal slot. Implementations never return an empty
// slice for count > 0.
type Pool interface {
	Draw(slot models.MealSlot, count int, avoid map[string]struct{}, dayIndex int, target models.Macros) []Recipe
}

// StaticPool is an immutable, in-memory Pool.
type StaticPool struct {
	bySlot map[models.MealSlot][]Recipe
}

// New indexes recipes by slot. The slice is copied.
func New(recipes []Recipe) *StaticPool {
	p := &StaticPool{bySlot: make(map[models.MealSlot][]Recipe)}
	for _, r := range recipes {
		p.bySlot[r.Slot] = append(p.bySlot[r.Slot], r)
	}
	return p
}

// Default returns the curated pool shipped with the engine.
func Default() *StaticPool {
	return New(curated)
}

// Size reports the number of entries for slot.
func (p *StaticPool) Size(slot models.MealSlot) int {
	return len(p.bySlot[slot])
}

// Draw returns count recipes for slot. Names in avoid (normalised) are
// skipped while fresh entries remain; after that entries are reused under a
// numbered variant name so trackers still see distinct dishes. The shuffle
// is seeded by dayIndex and slot, so Draw(k+1) always extends Draw(k).
func (p *StaticPool) Draw(slot models.MealSlot, count int, avoid map[string]struct{}, dayIndex int, target models.Macros) []Recipe {
	if count <= 0 {
		return nil
	}
	entries := p.bySlot[slot]
	if len(entries) == 0 {
		entries = p.bySlot[models.SlotBreakfast]
	}
	if len(entries) == 0 {
		return []Recipe{Skeleton(slot, target)}
	}

	rng := rand.New(rand.NewPCG(uint64(dayIndex)+1, slotSalt(slot)))
	order := rng.Perm(len(entries))

	var fresh, seen []Recipe
	for _, i := range order {
		if _, used := avoid[nutrition.Normalize(entries[i].Name)]; used {
			seen = append(seen, entries[i])
		} else {
			fresh = append(fresh, entries[i])
		}
	}
	reuse := append(append([]Recipe{}, seen...), fresh...)

	out := make([]Recipe, 0, count)
	taken := make(map[string]struct{}, count)
	for _, r := range fresh {
		if len(out) == count {
			break
		}
		out = append(out, r)
		taken[nutrition.Normalize(r.Name)] = struct{}{}
	}

	for i := 0; len(out) < count; i++ {
		r := reuse[i%len(reuse)]
		r.Name = variantName(r.Name, avoid, taken)
		out = append(out, r)
		taken[nutrition.Normalize(r.Name)] = struct{}{}
	}
	return out
}

func variantName(name string, avoid, taken map[string]struct{}) string {
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s (%d)", name, n)
		key := nutrition.Normalize(candidate)
		_, a := avoid[key]
		_, t := taken[key]
		if !a && !t {
			return candidate
		}
	}
}

func slotSalt(slot models.MealSlot) uint64 {
	h := fnv.New64a()
	h.Write([]byte(slot))
	return h.Sum64()
}

// Skeleton synthesizes a placeholder dish carrying the given macros.
func Skeleton(slot models.MealSlot, target models.Macros) Recipe {
	return Recipe{
		Name:        skeletonNames[slot],
		Description: "Bữa ăn cơ bản được tạo tự động.",
		Slot:        slot,
		Region:      models.RegionNorth,
		Ingredients: []models.Ingredient{
			{Name: "Tinh bột (cơm, bún hoặc bánh mì)", Amount: "1 phần"},
			{Name: "Chất đạm (thịt, cá, trứng hoặc đậu phụ)", Amount: "1 phần"},
			{Name: "Rau xanh", Amount: "1 phần"},
		},
		Preparation: []string{
			"Sơ chế và rửa sạch nguyên liệu.",
			"Nấu chín phần tinh bột và chất đạm.",
			"Luộc hoặc xào rau, bày ra đĩa và thưởng thức.",
		},
		Macros:   target,
		Skeleton: true,
	}
}

var skeletonNames = map[models.MealSlot]string{
	models.SlotBreakfast: "Bữa sáng cơ bản",
	models.SlotLunch:     "Bữa trưa cơ bản",
	models.SlotDinner:    "Bữa tối cơ bản",
}
