package mealplan

import (
	"context"
	"errors"
	"testing"

	"NutriViet_V1.0/internal/geminiservice"
	"NutriViet_V1.0/internal/models"
	"NutriViet_V1.0/internal/nutrition"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFoods struct {
	foods map[string]models.FoodMatch
	err   error
	calls []string
}

func (f *fakeFoods) SearchFood(_ context.Context, query string) (models.FoodMatch, bool, error) {
	f.calls = append(f.calls, query)
	if f.err != nil {
		return models.FoodMatch{}, false, f.err
	}
	m, ok := f.foods[nutrition.Normalize(query)]
	return m, ok, nil
}

func fixtureTable() *nutrition.Table {
	return nutrition.NewTableFrom(
		map[string]models.Macros{
			"Thịt gà": {Calories: 165, Protein: 31, Fat: 3.6},
			"Cơm":     {Calories: 130, Protein: 2.7, Fat: 0.3, Carbs: 28},
		},
		map[string]models.Macros{
			"Phở bò":  {Calories: 450, Protein: 25, Fat: 12, Carbs: 60},
			"Bún chả": {Calories: 550, Protein: 30, Fat: 20, Carbs: 62},
		},
	)
}

func TestResolveNutrition(t *testing.T) {
	ctx := context.Background()
	a := NewAssembler(fixtureTable(), nil, zerolog.Nop())

	t.Run("stated nutrition is kept", func(t *testing.T) {
		d := models.DishDraft{Name: "Phở bò", Nutrition: models.Macros{Calories: 400, Protein: 20, Fat: 10, Carbs: 55}, Provenance: "llm"}
		got := a.ResolveNutrition(ctx, d, models.SlotBreakfast)
		assert.Equal(t, 400.0, got.Nutrition.Calories)
		assert.Equal(t, nutrition.SourceLLM, got.NutritionSource)
	})

	t.Run("dish table", func(t *testing.T) {
		got := a.ResolveNutrition(ctx, models.DishDraft{Name: "Phở bò tái"}, models.SlotBreakfast)
		assert.Equal(t, 450.0, got.Nutrition.Calories)
		assert.Equal(t, nutrition.SourceDishTable, got.NutritionSource)
		assert.Empty(t, got.Notes)
	})

	t.Run("ingredient sum", func(t *testing.T) {
		d := models.DishDraft{
			Name:        "Cơm gà xối mỡ",
			Ingredients: []models.Ingredient{{Name: "Thịt gà", Amount: "100g"}, {Name: "Cơm", Amount: "200g"}},
		}
		got := a.ResolveNutrition(ctx, d, models.SlotLunch)
		assert.Equal(t, nutrition.SourceIngredientSum, got.NutritionSource)
		assert.InDelta(t, 425, got.Nutrition.Calories, 1e-9)
		assert.InDelta(t, 36.4, got.Nutrition.Protein, 1e-9)
		assert.InDelta(t, 4.2, got.Nutrition.Fat, 1e-9)
		assert.InDelta(t, 56, got.Nutrition.Carbs, 1e-9)
		assert.Empty(t, got.Notes)
	})

	t.Run("similar dish", func(t *testing.T) {
		got := a.ResolveNutrition(ctx, models.DishDraft{Name: "Bún bò xào"}, models.SlotLunch)
		assert.Equal(t, nutrition.SourceSimilarity, got.NutritionSource)
		assert.Equal(t, 550.0, got.Nutrition.Calories)
		assert.Equal(t, []string{`borrowed from similar dish "bún chả"`}, got.Notes)
	})

	t.Run("slot default", func(t *testing.T) {
		got := a.ResolveNutrition(ctx, models.DishDraft{Name: "Món lạ"}, models.SlotDinner)
		assert.Equal(t, nutrition.SourceEstimated, got.NutritionSource)
		assert.Equal(t, slotDefaults[models.SlotDinner], got.Nutrition)
	})
}

func TestResolveNutrition_RemoteLookup(t *testing.T) {
	ctx := context.Background()
	foods := &fakeFoods{foods: map[string]models.FoodMatch{
		"đậu hũ": {Name: "Tofu, raw", Per100g: models.Macros{Calories: 76, Protein: 8, Fat: 4.8, Carbs: 1.9}},
	}}
	a := NewAssembler(fixtureTable(), foods, zerolog.Nop())

	d := models.DishDraft{
		Name:        "Đậu hũ sốt cà",
		Ingredients: []models.Ingredient{{Name: "Đậu hũ", Amount: "200g"}, {Name: "Cơm", Amount: "100g"}},
	}
	got := a.ResolveNutrition(ctx, d, models.SlotDinner)
	assert.Equal(t, nutrition.SourceIngredientSum, got.NutritionSource)
	assert.InDelta(t, 152+130, got.Nutrition.Calories, 1e-9)
	assert.Equal(t, []string{"ingredients: 1 from usda"}, got.Notes)
	// exact table rows never reach the remote service
	assert.Equal(t, []string{"Đậu hũ"}, foods.calls)
}

func TestResolveNutrition_RemoteFailureFallsBackToBuckets(t *testing.T) {
	foods := &fakeFoods{err: errors.New("connection refused")}
	a := NewAssembler(fixtureTable(), foods, zerolog.Nop())

	d := models.DishDraft{
		Name:        "Dê hấp tía tô",
		Ingredients: []models.Ingredient{{Name: "Thịt dê", Amount: "100g"}, {Name: "Lá tía tô", Amount: "vừa đủ"}, {Name: " ", Amount: "10g"}},
	}
	got := a.ResolveNutrition(context.Background(), d, models.SlotDinner)
	assert.Equal(t, nutrition.SourceIngredientSum, got.NutritionSource)
	// meat default for 100 g plus the "other" default for 5 g
	assert.InDelta(t, 205, got.Nutrition.Calories, 1e-9)
	assert.Equal(t, []string{"ingredients: 2 provisional, 1 unpriced"}, got.Notes)
}

func TestAssemble_LLMDishFromMalformedReply(t *testing.T) {
	text := `[{"Bánh Mì Chay", "nutrition": {"calories":377,"protein":28,"fat":10,"carbs":42}}]`
	target := models.Macros{Calories: 377, Protein: 28, Fat: 10, Carbs: 42}

	drafts, err := geminiservice.ValidDrafts(geminiservice.ParseDishes(text, target))
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	a := NewAssembler(nutrition.NewTable(), nil, zerolog.Nop())
	dish := a.Assemble(context.Background(), drafts[0], models.SlotBreakfast, AssemblyOptions{})

	assert.Equal(t, "Bánh Mì Chay", dish.Name)
	assert.Equal(t, 377.0, dish.Nutrition.Calories)
	assert.Equal(t, 28.0, dish.Nutrition.Protein)
	assert.True(t, dish.Verification.Verified)
	assert.Equal(t, nutrition.SourceLLM, dish.Verification.Source)
	assert.Equal(t, models.DishMain, dish.DishType)
	assert.NotEmpty(t, dish.Ingredients)
	assert.NotEmpty(t, dish.Preparation)
	assert.Equal(t, "nutrition from LLM; verified (confidence 0.70)", dish.ProvenanceNote)
}

func TestAssemble_EstimatedDishIsMarkedUnverified(t *testing.T) {
	a := NewAssembler(fixtureTable(), nil, zerolog.Nop())

	dish := a.Assemble(context.Background(), models.DishDraft{Name: "Món lạ"}, models.SlotBreakfast, AssemblyOptions{})

	assert.Equal(t, 320.0, dish.Nutrition.Calories)
	assert.Equal(t, nutrition.SourceEstimated, dish.Verification.Source)
	assert.Contains(t, dish.ProvenanceNote, "estimated, unverified")
	assert.Equal(t, []models.Ingredient{{Name: "Nguyên liệu chính", Amount: "1 phần"}}, dish.Ingredients)
}

func TestAssemble_TinyLLMDishIsFlaggedEstimated(t *testing.T) {
	a := NewAssembler(fixtureTable(), nil, zerolog.Nop())
	d := models.DishDraft{
		Name:       "Nước chanh",
		Nutrition:  models.Macros{Calories: 20, Protein: 0.1, Fat: 0, Carbs: 5},
		Provenance: nutrition.SourceLLM,
		Notes:      []string{"portions adjusted ×1.02"},
	}

	dish := a.Assemble(context.Background(), d, models.SlotBreakfast, AssemblyOptions{})

	assert.Equal(t, 20.0, dish.Nutrition.Calories)
	assert.False(t, dish.Verification.Verified)
	assert.Equal(t, "nutrition from LLM; estimated, unverified; portions adjusted ×1.02; unverified (confidence 0.50): calories too low (20 < 50 kcal)", dish.ProvenanceNote)
}

func TestAssemble_NegativeMacrosClamped(t *testing.T) {
	a := NewAssembler(fixtureTable(), nil, zerolog.Nop())
	d := models.DishDraft{
		Name:       "Gà luộc",
		Nutrition:  models.Macros{Calories: 300, Protein: -5, Fat: 10, Carbs: 40},
		Provenance: nutrition.SourceLLM,
	}

	dish := a.Assemble(context.Background(), d, models.SlotLunch, AssemblyOptions{})

	assert.Equal(t, 0.0, dish.Nutrition.Protein)
	assert.False(t, dish.Verification.Verified)
	assert.Contains(t, dish.ProvenanceNote, "negative protein")
}

func TestAssemble_RoundsMacros(t *testing.T) {
	a := NewAssembler(fixtureTable(), nil, zerolog.Nop())
	d := models.DishDraft{
		Name:       "Cháo gà",
		Nutrition:  models.Macros{Calories: 312.46, Protein: 18.04, Fat: 7.96, Carbs: 41.5},
		Provenance: nutrition.SourceCuratedPool,
	}

	dish := a.Assemble(context.Background(), d, models.SlotBreakfast, AssemblyOptions{})
	assert.Equal(t, nutrition.RoundMacros(d.Nutrition), dish.Nutrition)
	assert.Contains(t, dish.ProvenanceNote, "nutrition from curated pool")
}

func TestAssemble_PrepTimeAndHealth(t *testing.T) {
	a := NewAssembler(fixtureTable(), nil, zerolog.Nop())
	d := models.DishDraft{
		Name:        "Gà hấp lá chanh",
		Nutrition:   models.Macros{Calories: 250, Protein: 22, Fat: 5, Carbs: 30},
		Preparation: []string{"Bước 1: Sơ chế gà. Bước 2: Hấp gà. Bước 3: Bày ra đĩa."},
		Provenance:  nutrition.SourceLLM,
	}

	dish := a.Assemble(context.Background(), d, models.SlotDinner, AssemblyOptions{EnhancedInfo: true})
	assert.Equal(t, []string{"Sơ chế gà.", "Hấp gà.", "Bày ra đĩa."}, dish.Preparation)
	assert.Equal(t, "15–20 phút", dish.PreparationTime)
	assert.Len(t, dish.HealthBenefits, 2)

	plain := a.Assemble(context.Background(), d, models.SlotDinner, AssemblyOptions{})
	assert.Empty(t, plain.PreparationTime)

	d.PreparationTime = "25 phút"
	kept := a.Assemble(context.Background(), d, models.SlotDinner, AssemblyOptions{EnhancedInfo: true})
	assert.Equal(t, "25 phút", kept.PreparationTime)
}

func TestPrepTimeFor(t *testing.T) {
	assert.Equal(t, "15–20 phút", prepTimeFor(3))
	assert.Equal(t, "30–40 phút", prepTimeFor(4))
	assert.Equal(t, "30–40 phút", prepTimeFor(5))
	assert.Equal(t, "45–60 phút", prepTimeFor(6))
}

func TestInferDishType(t *testing.T) {
	tests := []struct {
		name string
		want models.DishType
	}{
		{"Canh chua cá lóc", models.DishSoup},
		{"Chè đậu xanh", models.DishDessert},
		{"Bánh flan", models.DishDessert},
		{"Gỏi cuốn tôm thịt", models.DishAppetizer},
		{"Rau muống xào tỏi", models.DishSide},
		{"Cơm chiên dương châu", models.DishMain},
		{"Mì xào bò", models.DishMain},
		{"Gà nướng", models.DishMain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferDishType(tt.name))
		})
	}
}

func TestInferRegion(t *testing.T) {
	tests := []struct {
		name  string
		draft models.DishDraft
		opts  AssemblyOptions
		want  models.Region
	}{
		{"profile wins", models.DishDraft{Name: "Bún bò Huế", Region: models.RegionCentral}, AssemblyOptions{Region: models.RegionSouth}, models.RegionSouth},
		{"draft region", models.DishDraft{Name: "Cơm tấm", Region: models.RegionCentral}, AssemblyOptions{}, models.RegionCentral},
		{"central keyword", models.DishDraft{Name: "Bún bò Huế"}, AssemblyOptions{}, models.RegionCentral},
		{"south keyword", models.DishDraft{Name: "Cơm tấm sườn"}, AssemblyOptions{}, models.RegionSouth},
		{"foreign keyword", models.DishDraft{Name: "Spaghetti bò bằm"}, AssemblyOptions{}, models.RegionForeign},
		{"default north", models.DishDraft{Name: "Gà kho gừng"}, AssemblyOptions{}, models.RegionNorth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferRegion(tt.draft, tt.opts))
		})
	}
}

func TestNormalizeSteps(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"vietnamese markers", []string{"Bước 1: Sơ chế rau. Bước 2: Luộc thịt. Bước 3: Trộn đều."}, []string{"Sơ chế rau.", "Luộc thịt.", "Trộn đều."}},
		{"english markers", []string{"Step 1: Boil water Step 2) Add noodles"}, []string{"Boil water", "Add noodles"}},
		{"sentences", []string{"Rửa rau. Luộc thịt. Trộn đều"}, []string{"Rửa rau.", "Luộc thịt.", "Trộn đều."}},
		{"lines", []string{"Rửa rau\nLuộc thịt\n"}, []string{"Rửa rau", "Luộc thịt"}},
		{"single step", []string{"Nấu chín"}, []string{"Nấu chín"}},
		{"list drops blanks", []string{"Rửa rau", "  ", "Luộc thịt"}, []string{"Rửa rau", "Luộc thịt"}},
		{"empty", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSteps(tt.in))
		})
	}
}
