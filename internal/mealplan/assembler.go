package mealplan

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"NutriViet_V1.0/internal/models"
	"NutriViet_V1.0/internal/nutrition"
	"github.com/rs/zerolog"
)

// FoodLookup is an optional remote nutrition service.
type FoodLookup interface {
	SearchFood(ctx context.Context, query string) (models.FoodMatch, bool, error)
}

// AssemblyOptions carries per-request presentation switches.
type AssemblyOptions struct {
	// EnhancedInfo enables derived preparation times.
	EnhancedInfo bool
	// Region from the user profile, preferred over inference when set.
	Region models.Region
}

// Assembler turns drafts into canonical dishes.
type Assembler struct {
	table  *nutrition.Table
	foods  FoodLookup
	logger zerolog.Logger
}

// NewAssembler returns an Assembler over table. foods may be nil.
func NewAssembler(table *nutrition.Table, foods FoodLookup, logger zerolog.Logger) *Assembler {
	return &Assembler{table: table, foods: foods, logger: logger}
}

/* =================================================================================
								NUTRITION RESOLUTION
=================================================================================*/

// slotDefaults are the last-resort estimates per slot.
var slotDefaults = map[models.MealSlot]models.Macros{
	models.SlotBreakfast: {Calories: 320, Protein: 16, Fat: 10, Carbs: 42},
	models.SlotLunch:     {Calories: 520, Protein: 26, Fat: 16, Carbs: 68},
	models.SlotDinner:    {Calories: 420, Protein: 24, Fat: 13, Carbs: 52},
}

// ResolveNutrition fills the draft's nutrition when it has none, trying the
// dish table, an ingredient sum, a similar dish and finally the slot default.
func (a *Assembler) ResolveNutrition(ctx context.Context, d models.DishDraft, slot models.MealSlot) models.DishDraft {
	if !d.Nutrition.IsZero() {
		if d.NutritionSource == "" {
			d.NutritionSource = sourceOf(d.Provenance)
		}
		return d
	}
	d.Notes = append([]string(nil), d.Notes...)

	if m, ok := a.table.LookupDish(d.Name); ok {
		d.Nutrition, d.NutritionSource = m, nutrition.SourceDishTable
		return d
	}
	if m, note, ok := a.sumIngredients(ctx, d.Ingredients); ok {
		d.Nutrition, d.NutritionSource = m, nutrition.SourceIngredientSum
		if note != "" {
			d.Notes = append(d.Notes, note)
		}
		return d
	}
	if key, m, ok := a.table.SimilarDish(d.Name); ok {
		d.Nutrition, d.NutritionSource = m, nutrition.SourceSimilarity
		d.Notes = append(d.Notes, fmt.Sprintf("borrowed from similar dish %q", key))
		return d
	}
	d.Nutrition, d.NutritionSource = slotDefaults[slot], nutrition.SourceEstimated
	return d
}

func sourceOf(provenance string) string {
	switch provenance {
	case nutrition.SourceCuratedPool, nutrition.SourceSkeleton, nutrition.SourceLLM:
		return provenance
	}
	return nutrition.SourceLLM
}

// sumIngredients adds up the ingredients it can price: exact table rows,
// then the remote lookup, then the keyword bucket defaults.
func (a *Assembler) sumIngredients(ctx context.Context, ings []models.Ingredient) (models.Macros, string, bool) {
	var total models.Macros
	hits, provisional, remote := 0, 0, 0
	for _, ing := range ings {
		grams := nutrition.ParseAmount(ing.Amount, ing.Name)
		if per100, ok := a.table.LookupExactIngredient(ing.Name); ok {
			total = total.Add(per100.Scale(grams / 100))
			hits++
			continue
		}
		if a.foods != nil {
			match, found, err := a.foods.SearchFood(ctx, ing.Name)
			if err != nil {
				a.logger.Warn().Err(err).Str("ingredient", ing.Name).Msg("Remote nutrition lookup failed")
			} else if found {
				total = total.Add(match.Per100g.Scale(grams / 100))
				hits++
				remote++
				continue
			}
		}
		if hit, ok := a.table.LookupIngredient(ing.Name, grams); ok {
			total = total.Add(hit.Macros)
			hits++
			if hit.Provisional {
				provisional++
			}
		}
	}
	if hits == 0 || total.IsZero() {
		return models.Macros{}, "", false
	}

	var notes []string
	if remote > 0 {
		notes = append(notes, fmt.Sprintf("%d from %s", remote, nutrition.SourceRemote))
	}
	if provisional > 0 {
		notes = append(notes, fmt.Sprintf("%d provisional", provisional))
	}
	if missing := len(ings) - hits; missing > 0 {
		notes = append(notes, fmt.Sprintf("%d unpriced", missing))
	}
	note := ""
	if len(notes) > 0 {
		note = "ingredients: " + strings.Join(notes, ", ")
	}
	return total, note, true
}

/* =================================================================================
								ASSEMBLY
=================================================================================*/

// Assemble resolves nutrition if needed and builds the final Dish. Macros
// are rounded once here; the verifier verdict goes into the provenance note.
func (a *Assembler) Assemble(ctx context.Context, d models.DishDraft, slot models.MealSlot, opts AssemblyOptions) models.Dish {
	d = a.ResolveNutrition(ctx, d, slot)

	macros := nutrition.RoundMacros(d.Nutrition)
	verdict := nutrition.Verify(macros, d.NutritionSource)
	verdict.Source = d.NutritionSource

	dish := models.Dish{
		Name:            strings.TrimSpace(d.Name),
		Description:     d.Description,
		Ingredients:     d.Ingredients,
		Preparation:     NormalizeSteps(d.Preparation),
		Nutrition:       nonNegative(macros),
		DishType:        InferDishType(d.Name),
		Region:          inferRegion(d, opts),
		PreparationTime: d.PreparationTime,
		HealthBenefits:  d.HealthBenefits,
		ImageURL:        d.ImageURL,
		Verification:    verdict,
	}
	if len(dish.Ingredients) == 0 && d.NutritionSource != nutrition.SourceDishTable {
		dish.Ingredients = []models.Ingredient{{Name: "Nguyên liệu chính", Amount: "1 phần"}}
	}
	if dish.PreparationTime == "" && opts.EnhancedInfo {
		dish.PreparationTime = prepTimeFor(len(dish.Preparation))
	}
	if len(dish.HealthBenefits) == 0 {
		dish.HealthBenefits = healthBenefits(dish.Nutrition)
	}
	dish.ProvenanceNote = provenanceNote(d, dish.Nutrition.Calories, verdict)
	return dish
}

var sourcePhrases = map[string]string{
	nutrition.SourceLLM:           "nutrition from LLM",
	nutrition.SourceCuratedPool:   "nutrition from curated pool",
	nutrition.SourceDishTable:     "nutrition from dish table",
	nutrition.SourceIngredientSum: "nutrition summed from ingredients",
	nutrition.SourceSimilarity:    "nutrition from similar dish",
	nutrition.SourceEstimated:     estimatedFlag,
	nutrition.SourceSkeleton:      "skeleton dish, unverified",
}

// estimatedFlag marks dishes whose calories cannot be trusted.
const estimatedFlag = "estimated, unverified"

func provenanceNote(d models.DishDraft, kcal float64, v models.NutritionVerification) string {
	parts := []string{sourcePhrases[d.NutritionSource]}
	if parts[0] == "" {
		parts[0] = "nutrition from " + d.NutritionSource
	}
	if kcal < nutrition.MinDishCalories && parts[0] != estimatedFlag {
		parts = append(parts, estimatedFlag)
	}
	parts = append(parts, d.Notes...)
	if v.Verified {
		parts = append(parts, fmt.Sprintf("verified (confidence %.2f)", v.Confidence))
	} else {
		parts = append(parts, fmt.Sprintf("unverified (confidence %.2f): %s", v.Confidence, strings.Join(v.Warnings, "; ")))
	}
	return strings.Join(parts, "; ")
}

func nonNegative(m models.Macros) models.Macros {
	clamp := func(v float64) float64 { return max(v, 0) }
	return models.Macros{
		Calories: clamp(m.Calories),
		Protein:  clamp(m.Protein),
		Fat:      clamp(m.Fat),
		Carbs:    clamp(m.Carbs),
		Fiber:    clamp(m.Fiber),
		Sugar:    clamp(m.Sugar),
		Sodium:   clamp(m.Sodium),
	}
}

/* =================================================================================
								FIELD INFERENCE
=================================================================================*/

var (
	soupWords      = []string{"canh", "súp", "soup"}
	dessertWords   = []string{"chè", "bánh ngọt", "tráng miệng", "kem", "sữa chua", "dessert", "pudding", "flan", "bánh flan"}
	appetizerWords = []string{"gỏi", "nộm", "nem cuốn", "gỏi cuốn", "khai vị", "salad", "appetizer"}
	carbBaseWords  = []string{"cơm", "bún", "phở", "miến", "mì", "hủ tiếu", "xôi", "cháo", "bánh mì", "bánh cuốn", "rice", "noodle", "noodles"}
	cookingWords   = []string{"xào", "luộc", "hấp", "chiên", "rán", "rang", "stir-fry", "stir-fried", "boiled", "steamed", "fried"}
)

// InferDishType classifies a dish by name keywords. A carb base makes the
// dish a main even when it is stir-fried or boiled.
func InferDishType(name string) models.DishType {
	n := nutrition.Normalize(name)
	switch {
	case containsAny(n, dessertWords):
		return models.DishDessert
	case containsAny(n, appetizerWords):
		return models.DishAppetizer
	case containsAny(n, soupWords):
		return models.DishSoup
	case containsAny(n, carbBaseWords):
		return models.DishMain
	case containsAny(n, cookingWords):
		return models.DishSide
	}
	return models.DishMain
}

var regionWords = []struct {
	region models.Region
	words  []string
}{
	{models.RegionCentral, []string{"huế", "quảng", "đà nẵng", "hội an", "cao lầu", "bánh bèo", "nem lụi", "bánh khoái", "miền trung"}},
	{models.RegionSouth, []string{"sài gòn", "nam bộ", "miền tây", "miền nam", "cơm tấm", "hủ tiếu", "bánh xèo", "canh chua", "kho tộ", "bò bía", "bánh canh"}},
	{models.RegionHighlander, []string{"tây nguyên", "cơm lam", "gà nướng mọi", "cà đắng", "lâm đồng", "đắk lắk", "măng rừng"}},
	{models.RegionNorth, []string{"hà nội", "miền bắc", "phở", "bún chả", "chả cá", "bún thang", "bánh cuốn", "bún riêu", "nem rán"}},
	{models.RegionForeign, []string{"pizza", "pasta", "spaghetti", "burger", "sandwich", "sushi", "steak", "kimchi", "ramen"}},
}

func inferRegion(d models.DishDraft, opts AssemblyOptions) models.Region {
	if opts.Region != "" {
		return opts.Region
	}
	if d.Region != "" {
		return d.Region
	}
	n := nutrition.Normalize(d.Name)
	for _, rw := range regionWords {
		if containsAny(n, rw.words) {
			return rw.region
		}
	}
	return models.RegionNorth
}

func containsAny(normalized string, words []string) bool {
	for _, w := range words {
		if nutrition.ContainsWord(normalized, w) {
			return true
		}
	}
	return false
}

var stepMarker = regexp.MustCompile(`(?i)(?:bước|step)\s*\d+\s*[:.)\-]\s*`)

// NormalizeSteps returns an ordered list of non-empty steps. A single text
// is split on "Bước N:" / "Step N:" markers, else on ". ", else on newlines.
func NormalizeSteps(steps []string) []string {
	if len(steps) == 1 {
		steps = splitSteps(steps[0])
	}
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func splitSteps(text string) []string {
	text = strings.TrimSpace(text)
	switch {
	case stepMarker.MatchString(text):
		return stepMarker.Split(text, -1)
	case strings.Contains(text, ". "):
		parts := strings.Split(text, ". ")
		for i, p := range parts {
			if p = strings.TrimSpace(p); p != "" && !strings.HasSuffix(p, ".") {
				parts[i] = p + "."
			}
		}
		return parts
	case strings.Contains(text, "\n"):
		return strings.Split(text, "\n")
	}
	return []string{text}
}

func prepTimeFor(steps int) string {
	switch {
	case steps <= 3:
		return "15–20 phút"
	case steps <= 5:
		return "30–40 phút"
	}
	return "45–60 phút"
}

func healthBenefits(m models.Macros) []string {
	var out []string
	if m.Protein >= 20 {
		out = append(out, "Giàu đạm, giúp duy trì cơ bắp.")
	}
	if m.Calories <= 300 {
		out = append(out, "Ít calo, phù hợp kiểm soát cân nặng.")
	}
	if m.Carbs >= 45 {
		out = append(out, "Giàu tinh bột, cung cấp năng lượng.")
	}
	return out
}
