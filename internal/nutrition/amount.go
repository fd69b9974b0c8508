package nutrition

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// unitGrams maps a recognised unit word to grams per unit. Entries are
// matched longest-first so "muỗng cà phê" wins over "muỗng" and "kg" over "g".
var unitGrams = map[string]float64{
	"kg": 1000, "kilogram": 1000, "kilograms": 1000,
	"g": 1, "gr": 1, "gram": 1, "grams": 1, "gam": 1,
	"mg": 0.001, "lạng": 100, "cân": 1000,
	"ml": 1, "l": 1000, "lít": 1000, "liter": 1000, "litre": 1000,
	"muỗng canh": 15, "thìa canh": 15, "tbsp": 15, "tablespoon": 15, "tablespoons": 15,
	"muỗng cà phê": 5, "thìa cà phê": 5, "muỗng cafe": 5, "tsp": 5, "teaspoon": 5, "teaspoons": 5,
	"muỗng": 10, "thìa": 10,
	"ổ": 150, "loaf": 150,
	"bát": 200, "chén": 200, "bowl": 200, "bowls": 200,
	"tô": 400,
	"ly": 250, "cốc": 250, "cup": 250, "cups": 250, "glass": 250,
	"lát": 30, "slice": 30, "slices": 30,
	"miếng": 50,
	"nắm": 30, "handful": 30,
	"bó": 200, "bunch": 200,
	"tép": 5, "clove": 5, "cloves": 5,
}

// pieceUnits weigh per ingredient rather than per unit.
var pieceUnits = map[string]struct{}{
	"quả": {}, "trái": {}, "cái": {}, "con": {}, "củ": {},
	"piece": {}, "pieces": {}, "pcs": {}, "pc": {},
}

var unitsByLength []string

func init() {
	for u := range unitGrams {
		unitsByLength = append(unitsByLength, u)
	}
	for u := range pieceUnits {
		unitsByLength = append(unitsByLength, u)
	}
	sort.Slice(unitsByLength, func(i, j int) bool {
		a, b := utf8.RuneCountInString(unitsByLength[i]), utf8.RuneCountInString(unitsByLength[j])
		if a != b {
			return a > b
		}
		return unitsByLength[i] < unitsByLength[j]
	})
}

var leadingNumber = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)(?:\s*/\s*(\d+))?(?:\s*-\s*\d+(?:[.,]\d+)?)?`)

var vagueAmounts = []string{"vừa đủ", "to taste", "một chút", "chút", "ít", "a pinch", "pinch", "tùy khẩu vị"}

// ParseAmount converts free text like "200g", "2 quả" or "1 tbsp" to grams.
// The ingredient name refines piece weights (an egg is 60 g, a loaf 150 g).
// The result is always positive.
func ParseAmount(text, ingredient string) float64 {
	s := Normalize(text)
	n, rest, hasNumber := splitNumber(s)

	if !hasNumber {
		for _, v := range vagueAmounts {
			if strings.HasPrefix(s, v) {
				return 5
			}
		}
		n = 1
	}

	if unit, ok := matchUnit(rest); ok {
		if _, piece := pieceUnits[unit]; piece {
			return positive(n * pieceWeight(ingredient, unit))
		}
		return positive(n * unitGrams[unit])
	}

	if !hasNumber {
		return 100
	}
	if n >= 10 {
		return n
	}
	return positive(n * pieceWeight(ingredient+" "+rest, ""))
}

func splitNumber(s string) (float64, string, bool) {
	m := leadingNumber.FindStringSubmatch(s)
	if m == nil {
		return 0, s, false
	}
	n, err := strconv.ParseFloat(strings.Replace(m[1], ",", ".", 1), 64)
	if err != nil {
		return 0, s, false
	}
	if m[2] != "" {
		d, err := strconv.ParseFloat(m[2], 64)
		if err == nil && d > 0 {
			n /= d
		}
	}
	return n, strings.TrimSpace(s[len(m[0]):]), true
}

// matchUnit finds a unit at the start of s ending on a word boundary.
func matchUnit(s string) (string, bool) {
	for _, u := range unitsByLength {
		if !strings.HasPrefix(s, u) {
			continue
		}
		next, _ := utf8.DecodeRuneInString(s[len(u):])
		if next == utf8.RuneError || !unicode.IsLetter(next) {
			return u, true
		}
	}
	return "", false
}

func pieceWeight(ingredient, unit string) float64 {
	name := Normalize(ingredient)
	switch {
	case ContainsWord(name, "trứng"), ContainsWord(name, "egg"), ContainsWord(name, "eggs"):
		return 60
	case ContainsWord(name, "bánh mì"), ContainsWord(name, "bread"):
		return 150
	case ContainsWord(name, "tỏi"), ContainsWord(name, "garlic"):
		if unit == "củ" {
			return 40
		}
		return 5
	case ContainsWord(name, "ớt"), ContainsWord(name, "chili"):
		return 5
	case ContainsWord(name, "hành"):
		return 50
	}
	return 100
}

func positive(g float64) float64 {
	if g < 1 {
		return 1
	}
	return g
}
