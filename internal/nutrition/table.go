// Package nutrition answers "how much energy is in this?" for ingredients and
// dishes from a curated Vietnamese table, parses free-text amounts and
// checks macro vectors for plausibility.
package nutrition

import (
	"sort"
	"strings"

	"NutriViet_V1.0/internal/models"
	"golang.org/x/text/unicode/norm"
)

// Bucket is the keyword class used when an ingredient is not in the table.
type Bucket string

const (
	BucketMeat      Bucket = "meat"
	BucketSeafood   Bucket = "seafood"
	BucketCarbBase  Bucket = "carb-base"
	BucketVegetable Bucket = "vegetable"
	BucketOther     Bucket = "other"
)

// IngredientHit is the result of LookupIngredient, already scaled to grams.
type IngredientHit struct {
	Macros models.Macros
	// Provisional is set when the vector is a bucket default, not a table row.
	Provisional bool
	Bucket      Bucket
}

// Table is immutable after construction and safe for concurrent use.
type Table struct {
	ingredients map[string]models.Macros // per 100 g
	dishes      map[string]models.Macros // per serving
	dishKeys    []string
}

// NewTable returns the curated Vietnamese table.
func NewTable() *Table {
	return NewTableFrom(ingredientsPer100g, dishesPerServing)
}

// NewTableFrom builds a table from caller data; keys are normalised.
func NewTableFrom(ingredients, dishes map[string]models.Macros) *Table {
	t := &Table{
		ingredients: make(map[string]models.Macros, len(ingredients)),
		dishes:      make(map[string]models.Macros, len(dishes)),
	}
	for k, v := range ingredients {
		t.ingredients[Normalize(k)] = v
	}
	for k, v := range dishes {
		key := Normalize(k)
		t.dishes[key] = v
		t.dishKeys = append(t.dishKeys, key)
	}
	sort.Strings(t.dishKeys)
	return t
}

// Normalize lowercases, composes to NFC and collapses whitespace.
// Diacritics are kept: "cá" and "cà" are different foods.
func Normalize(s string) string {
	s = norm.NFC.String(strings.ToLower(s))
	return strings.Join(strings.Fields(s), " ")
}

// LookupIngredient returns macros for grams of the named ingredient. Exact
// table rows win; otherwise the keyword bucket default, BucketOther included,
// is returned with Provisional set.
func (t *Table) LookupIngredient(name string, grams float64) (IngredientHit, bool) {
	key := Normalize(name)
	if key == "" || grams <= 0 {
		return IngredientHit{}, false
	}
	if per100, ok := t.ingredients[key]; ok {
		return IngredientHit{Macros: per100.Scale(grams / 100)}, true
	}
	bucket := Classify(key)
	def := bucketDefaults[bucket]
	return IngredientHit{Macros: def.Scale(grams / 100), Provisional: true, Bucket: bucket}, true
}

// LookupExactIngredient reports only curated rows, per 100 g.
func (t *Table) LookupExactIngredient(name string) (models.Macros, bool) {
	m, ok := t.ingredients[Normalize(name)]
	return m, ok
}

// LookupDish returns per-serving macros for a dish by exact name, then by the
// longest table key contained in the name, then by the shortest key that
// contains the name.
func (t *Table) LookupDish(name string) (models.Macros, bool) {
	key := Normalize(name)
	if key == "" {
		return models.Macros{}, false
	}
	if m, ok := t.dishes[key]; ok {
		return m, true
	}

	padded := " " + key + " "
	best := ""
	for _, k := range t.dishKeys {
		if strings.Contains(padded, " "+k+" ") && len(k) > len(best) {
			best = k
		}
	}
	if best != "" {
		return t.dishes[best], true
	}

	for _, k := range t.dishKeys {
		if strings.Contains(" "+k+" ", padded) && (best == "" || len(k) < len(best)) {
			best = k
		}
	}
	if best != "" {
		return t.dishes[best], true
	}
	return models.Macros{}, false
}

// SimilarDish scans the dish table for the entry sharing the most content
// words with name. At least one shared word is required.
func (t *Table) SimilarDish(name string) (string, models.Macros, bool) {
	words := contentWords(Normalize(name))
	if len(words) == 0 {
		return "", models.Macros{}, false
	}
	bestKey, bestScore := "", 0
	for _, k := range t.dishKeys {
		score := 0
		for w := range contentWords(k) {
			if _, ok := words[w]; ok {
				score++
			}
		}
		if score > bestScore {
			bestKey, bestScore = k, score
		}
	}
	if bestScore == 0 {
		return "", models.Macros{}, false
	}
	return bestKey, t.dishes[bestKey], true
}

var stopWords = map[string]struct{}{
	"với": {}, "và": {}, "kiểu": {}, "món": {}, "của": {}, "sốt": {}, "nấu": {},
	"the": {}, "with": {}, "and": {}, "of": {}, "in": {}, "style": {},
}

func contentWords(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		w = strings.Trim(w, ",.;:()-")
		if w == "" {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		out[w] = struct{}{}
	}
	return out
}

// Classify puts a normalised name in a keyword bucket. Seafood is checked
// before meat so "chả cá" counts as fish.
func Classify(name string) Bucket {
	padded := " " + Normalize(name) + " "
	for _, b := range bucketOrder {
		for _, kw := range bucketKeywords[b] {
			if strings.Contains(padded, " "+kw+" ") {
				return b
			}
		}
	}
	return BucketOther
}

// ContainsWord reports whether kw appears in s on word boundaries.
func ContainsWord(s, kw string) bool {
	return strings.Contains(" "+Normalize(s)+" ", " "+Normalize(kw)+" ")
}

var bucketOrder = []Bucket{BucketSeafood, BucketMeat, BucketCarbBase, BucketVegetable}

var bucketKeywords = map[Bucket][]string{
	BucketSeafood: {"cá", "tôm", "mực", "cua", "ghẹ", "nghêu", "sò", "ốc", "hến", "fish", "shrimp", "prawn", "squid", "crab", "clam", "seafood", "salmon", "tuna"},
	BucketMeat: {"thịt", "bò", "heo", "lợn", "gà", "vịt", "sườn", "chả", "giò", "xúc xích", "lạp xưởng",
		"beef", "pork", "chicken", "duck", "meat", "sausage", "ham", "bacon"},
	BucketCarbBase: {"cơm", "gạo", "bún", "phở", "miến", "mì", "bánh", "xôi", "khoai", "ngô", "bắp", "nếp",
		"rice", "noodle", "noodles", "bread", "potato", "pasta", "oat", "oats", "corn"},
	BucketVegetable: {"rau", "cải", "cà", "bí", "đậu que", "giá", "hành", "nấm", "dưa", "mướp", "su su", "măng", "bầu",
		"vegetable", "vegetables", "cabbage", "tomato", "carrot", "mushroom", "spinach", "lettuce", "onion", "broccoli"},
}

// Conservative per-100 g defaults. "other" covers seasonings, starches and
// dairy with a mixed split.
var bucketDefaults = map[Bucket]models.Macros{
	BucketMeat:      {Calories: 200, Protein: 25, Fat: 10, Carbs: 0},
	BucketSeafood:   {Calories: 110, Protein: 20, Fat: 3, Carbs: 1},
	BucketCarbBase:  {Calories: 130, Protein: 3, Fat: 0.5, Carbs: 28},
	BucketVegetable: {Calories: 25, Protein: 2, Fat: 0.3, Carbs: 4.5},
	BucketOther:     {Calories: 100, Protein: 4, Fat: 3, Carbs: 14},
}
