package geminiservice

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"NutriViet_V1.0/internal/models"
)

/* =================================================================================
								LLM DISH SUM TYPE
=================================================================================*/

// LLMDish is either a ValidDish or a MalformedDish.
type LLMDish interface {
	isLLMDish()
}

// ValidDish is an item that passed validation.
type ValidDish struct {
	Draft models.DishDraft
}

// MalformedDish keeps what could not be used and why.
type MalformedDish struct {
	Raw    string
	Errors []string
}

func (ValidDish) isLLMDish()     {}
func (MalformedDish) isLLMDish() {}

// ValidDrafts returns the drafts of all valid items. When there are none the
// error describes the first problem found, for the repair prompt.
func ValidDrafts(items []LLMDish) ([]models.DishDraft, error) {
	var drafts []models.DishDraft
	var firstErr string
	for _, it := range items {
		switch v := it.(type) {
		case ValidDish:
			drafts = append(drafts, v.Draft)
		case MalformedDish:
			if firstErr == "" && len(v.Errors) > 0 {
				firstErr = v.Errors[0]
			}
		}
	}
	if len(drafts) > 0 {
		return drafts, nil
	}
	if firstErr == "" {
		firstErr = "no dish objects found"
	}
	return nil, errors.New(firstErr)
}

/* =================================================================================
								REPAIR PIPELINE
=================================================================================*/

var (
	codeFence     = regexp.MustCompile("```[a-zA-Z]*")
	keylessName   = regexp.MustCompile(`\{\s*("(?:[^"\\]|\\.)*")\s*([,}])`)
	trailingComma = regexp.MustCompile(`,\s*([\]}])`)
	wrapperObject = regexp.MustCompile(`^\{\s*"(?:[^"\\]|\\.)*"\s*:\s*\[`)
)

// ParseDishes runs the whole pipeline on a raw model reply: isolate the
// array, repair known defects, decode, validate, and fall back to field-wise
// extraction when decoding fails. target fills macros missing from an
// otherwise present nutrition object.
func ParseDishes(text string, target models.Macros) []LLMDish {
	fixed, ok := RepairJSON(text)
	if !ok {
		return []LLMDish{MalformedDish{Raw: text, Errors: []string{"no JSON array or object found"}}}
	}

	var raws []rawDish
	if err := json.Unmarshal([]byte(fixed), &raws); err == nil {
		out := make([]LLMDish, 0, len(raws))
		for i, r := range raws {
			out = append(out, r.validate(i, "", target))
		}
		return out
	}

	return extractObjects(fixed, target)
}

// RepairJSON applies the textual fixes: strip code fences and prose, keep
// the outermost array, name key-less first values and drop trailing commas.
func RepairJSON(text string) (string, bool) {
	s, ok := isolateArray(text)
	if !ok {
		return "", false
	}
	s = keylessName.ReplaceAllString(s, `{"name": ${1}${2}`)
	s = trailingComma.ReplaceAllString(s, "${1}")
	return s, true
}

func isolateArray(text string) (string, bool) {
	s := strings.TrimSpace(codeFence.ReplaceAllString(text, ""))

	start := strings.IndexAny(s, "[{")
	if start < 0 {
		return "", false
	}
	if s[start] == '{' && !wrapperObject.MatchString(s[start:]) {
		// Bare object(s) without brackets.
		end := strings.LastIndex(s, "}")
		if end < start {
			return "", false
		}
		return "[" + s[start:end+1] + "]", true
	}

	first := strings.Index(s, "[")
	last := strings.LastIndex(s, "]")
	if first < 0 || last < first {
		// Truncated reply: keep what is there and let extraction try.
		if first >= 0 {
			return s[first:], true
		}
		return "", false
	}
	return s[first : last+1], true
}

/* =================================================================================
								TOLERANT DECODING
=================================================================================*/

type rawDish struct {
	Name            flexText        `json:"name"`
	Description     flexText        `json:"description"`
	Ingredients     flexIngredients `json:"ingredients"`
	Preparation     flexList        `json:"preparation"`
	Nutrition       *rawNutrition   `json:"nutrition"`
	PreparationTime flexText        `json:"preparation_time"`
	HealthBenefits  flexList        `json:"health_benefits"`
	Region          flexText        `json:"region"`
	ImageURL        flexText        `json:"image_url"`
}

type rawNutrition struct {
	Calories flexNumber `json:"calories"`
	Protein  flexNumber `json:"protein"`
	Fat      flexNumber `json:"fat"`
	Carbs    flexNumber `json:"carbs"`
	Fiber    flexNumber `json:"fiber"`
	Sugar    flexNumber `json:"sugar"`
	Sodium   flexNumber `json:"sodium"`
}

var leadingNumber = regexp.MustCompile(`-?\d+(?:[.,]\d+)?`)

// flexNumber accepts 377, "377" and "377 kcal".
type flexNumber struct {
	Value float64
	Set   bool
}

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		n.Value, n.Set = f, true
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invalid number %s", b)
	}
	n.Value, n.Set = parseLooseNumber(s)
	return nil
}

func parseLooseNumber(s string) (float64, bool) {
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.Replace(m, ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// flexText accepts a string, a number or a list of strings.
type flexText string

func (t *flexText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = flexText(strings.TrimSpace(s))
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*t = flexText(strings.Join(list, " "))
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*t = flexText(strconv.FormatFloat(f, 'f', -1, 64))
		return nil
	}
	return nil
}

// flexList accepts a list of strings or a single string.
type flexList []string

func (l *flexList) UnmarshalJSON(b []byte) error {
	var list []json.RawMessage
	if err := json.Unmarshal(b, &list); err == nil {
		for _, item := range list {
			var t flexText
			_ = t.UnmarshalJSON(item)
			if t != "" {
				*l = append(*l, string(t))
			}
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil && strings.TrimSpace(s) != "" {
		*l = flexList{strings.TrimSpace(s)}
	}
	return nil
}

// flexIngredients accepts objects, "200g thịt bò" strings or one string.
type flexIngredients []models.Ingredient

func (fi *flexIngredients) UnmarshalJSON(b []byte) error {
	var list []json.RawMessage
	if err := json.Unmarshal(b, &list); err != nil {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		for _, part := range strings.Split(s, ",") {
			if ing, ok := parseIngredientText(part); ok {
				*fi = append(*fi, ing)
			}
		}
		return nil
	}
	for _, item := range list {
		var obj struct {
			Name     flexText `json:"name"`
			Amount   flexText `json:"amount"`
			Quantity flexText `json:"quantity"`
		}
		if err := json.Unmarshal(item, &obj); err == nil && obj.Name != "" {
			amount := string(obj.Amount)
			if amount == "" {
				amount = string(obj.Quantity)
			}
			*fi = append(*fi, models.Ingredient{Name: string(obj.Name), Amount: amount})
			continue
		}
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			if ing, ok := parseIngredientText(s); ok {
				*fi = append(*fi, ing)
			}
		}
	}
	return nil
}

var (
	amountFirst  = regexp.MustCompile(`^(\d+(?:[.,/]\d+)?\s*\S*)\s+(.+)$`)
	amountParens = regexp.MustCompile(`^(.+?)\s*\(([^()]+)\)\s*$`)
)

func parseIngredientText(s string) (models.Ingredient, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Ingredient{}, false
	}
	if name, amount, ok := strings.Cut(s, ":"); ok {
		return models.Ingredient{Name: strings.TrimSpace(name), Amount: strings.TrimSpace(amount)}, true
	}
	if m := amountParens.FindStringSubmatch(s); m != nil {
		return models.Ingredient{Name: m[1], Amount: m[2]}, true
	}
	if m := amountFirst.FindStringSubmatch(s); m != nil {
		return models.Ingredient{Name: m[2], Amount: m[1]}, true
	}
	return models.Ingredient{Name: s}, true
}

/* =================================================================================
								VALIDATION
=================================================================================*/

var (
	genericIngredient = models.Ingredient{Name: "Nguyên liệu chính", Amount: "1 phần"}
	genericStep       = "Chế biến theo cách truyền thống."
)

// validate requires a name and a nutrition object with positive calories.
// Every other field gets a neutral default.
func (r rawDish) validate(i int, raw string, target models.Macros) LLMDish {
	var errs []string
	name := strings.TrimSpace(string(r.Name))
	if name == "" {
		errs = append(errs, fmt.Sprintf("item %d: missing name", i))
	}

	var macros models.Macros
	if r.Nutrition == nil {
		errs = append(errs, fmt.Sprintf("item %d: missing nutrition", i))
	} else {
		macros = r.Nutrition.complete(target)
		if macros.Calories <= 0 {
			errs = append(errs, fmt.Sprintf("item %d: nutrition.calories must be a positive number", i))
		}
	}

	if len(errs) > 0 {
		if raw == "" {
			b, _ := json.Marshal(r)
			raw = string(b)
		}
		return MalformedDish{Raw: raw, Errors: errs}
	}

	d := models.DishDraft{
		Name:            name,
		Description:     string(r.Description),
		Ingredients:     []models.Ingredient(r.Ingredients),
		Preparation:     []string(r.Preparation),
		Nutrition:       macros,
		PreparationTime: string(r.PreparationTime),
		HealthBenefits:  []string(r.HealthBenefits),
		Region:          models.ParseRegion(string(r.Region)),
		ImageURL:        string(r.ImageURL),
		Provenance:      "llm",
	}
	if len(d.Ingredients) == 0 {
		d.Ingredients = []models.Ingredient{genericIngredient}
	}
	if len(d.Preparation) == 0 {
		d.Preparation = []string{genericStep}
	}
	return ValidDish{Draft: d}
}

// complete fills missing macros. Missing protein, fat or carbs come from the
// target scaled by calories; missing calories are derived from the macros.
func (n *rawNutrition) complete(target models.Macros) models.Macros {
	m := models.Macros{
		Calories: n.Calories.Value,
		Protein:  n.Protein.Value,
		Fat:      n.Fat.Value,
		Carbs:    n.Carbs.Value,
		Fiber:    n.Fiber.Value,
		Sugar:    n.Sugar.Value,
		Sodium:   n.Sodium.Value,
	}
	if !n.Calories.Set || m.Calories <= 0 {
		m.Calories = 4*m.Protein + 9*m.Fat + 4*m.Carbs
	}
	if m.Calories <= 0 || target.Calories <= 0 {
		return m
	}
	ratio := m.Calories / target.Calories
	if !n.Protein.Set {
		m.Protein = target.Protein * ratio
	}
	if !n.Fat.Set {
		m.Fat = target.Fat * ratio
	}
	if !n.Carbs.Set {
		m.Carbs = target.Carbs * ratio
	}
	return m
}

/* =================================================================================
								FALLBACK EXTRACTOR
=================================================================================*/

var (
	strField      = `"%s"\s*:\s*"((?:[^"\\]|\\.)*)"`
	nameRe        = regexp.MustCompile(fmt.Sprintf(strField, "name"))
	descRe        = regexp.MustCompile(fmt.Sprintf(strField, "description"))
	prepTimeRe    = regexp.MustCompile(fmt.Sprintf(strField, "preparation_time"))
	benefitsStrRe = regexp.MustCompile(fmt.Sprintf(strField, "health_benefits"))
	benefitsArrRe = regexp.MustCompile(`(?s)"health_benefits"\s*:\s*\[(.*?)\]`)
	prepArrRe     = regexp.MustCompile(`(?s)"preparation"\s*:\s*\[(.*?)\]`)
	prepStrRe     = regexp.MustCompile(fmt.Sprintf(strField, "preparation"))
	ingredientsRe = regexp.MustCompile(`(?s)"ingredients"\s*:\s*\[(.*?)\]`)
	innerObjectRe = regexp.MustCompile(`\{[^{}]*\}`)
	quotedRe      = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"`)
	nutritionRe   = regexp.MustCompile(`(?s)"nutrition"\s*:\s*\{([^{}]*)\}?`)
	amountRe      = regexp.MustCompile(fmt.Sprintf(strField, "amount"))
)

func macroRe(key string) *regexp.Regexp {
	return regexp.MustCompile(`"` + key + `"\s*:\s*"?\s*(-?\d+(?:[.,]\d+)?)`)
}

var macroFields = map[string]*regexp.Regexp{
	"calories": macroRe("calories"),
	"protein":  macroRe("protein"),
	"fat":      macroRe("fat"),
	"carbs":    macroRe("carbs"),
}

// extractObjects finds object-like substrings and pulls fields out of each
// one individually.
func extractObjects(s string, target models.Macros) []LLMDish {
	objs := splitObjects(s)
	if len(objs) == 0 {
		return []LLMDish{MalformedDish{Raw: s, Errors: []string{"no dish objects found"}}}
	}
	out := make([]LLMDish, 0, len(objs))
	for i, obj := range objs {
		var r rawDish
		if err := json.Unmarshal([]byte(obj), &r); err == nil {
			out = append(out, r.validate(i, obj, target))
			continue
		}
		out = append(out, extractFields(obj).validate(i, obj, target))
	}
	return out
}

// splitObjects returns every outermost {...} in s, string-aware. An object
// left open at the end of s is closed.
func splitObjects(s string) []string {
	var out []string
	depth, start := 0, -1
	inStr, esc := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inStr {
			switch {
			case esc:
				esc = false
			case c == '\\':
				esc = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					out = append(out, s[start:i+1])
				}
			}
		}
	}
	if depth > 0 && start >= 0 && !inStr {
		out = append(out, s[start:]+strings.Repeat("}", depth))
	}
	return out
}

func extractFields(obj string) rawDish {
	var r rawDish

	head := obj
	if i := strings.Index(obj, `"ingredients"`); i > 0 {
		head = obj[:i]
	}
	if m := nameRe.FindStringSubmatch(head); m != nil {
		r.Name = flexText(unquote(m[1]))
	}
	if m := descRe.FindStringSubmatch(obj); m != nil {
		r.Description = flexText(unquote(m[1]))
	}
	if m := prepTimeRe.FindStringSubmatch(obj); m != nil {
		r.PreparationTime = flexText(unquote(m[1]))
	}

	if m := benefitsArrRe.FindStringSubmatch(obj); m != nil {
		r.HealthBenefits = quotedList(m[1])
	} else if m := benefitsStrRe.FindStringSubmatch(obj); m != nil {
		r.HealthBenefits = flexList{unquote(m[1])}
	}

	if m := prepArrRe.FindStringSubmatch(obj); m != nil {
		r.Preparation = quotedList(m[1])
	} else if m := prepStrRe.FindStringSubmatch(obj); m != nil {
		r.Preparation = flexList{unquote(m[1])}
	}

	if m := ingredientsRe.FindStringSubmatch(obj); m != nil {
		if inner := innerObjectRe.FindAllString(m[1], -1); len(inner) > 0 {
			for _, o := range inner {
				n := nameRe.FindStringSubmatch(o)
				if n == nil {
					continue
				}
				ing := models.Ingredient{Name: unquote(n[1])}
				if a := amountRe.FindStringSubmatch(o); a != nil {
					ing.Amount = unquote(a[1])
				}
				r.Ingredients = append(r.Ingredients, ing)
			}
		} else {
			for _, s := range quotedList(m[1]) {
				if ing, ok := parseIngredientText(s); ok {
					r.Ingredients = append(r.Ingredients, ing)
				}
			}
		}
	}

	if m := nutritionRe.FindStringSubmatch(obj); m != nil {
		n := &rawNutrition{}
		fields := map[string]*flexNumber{
			"calories": &n.Calories, "protein": &n.Protein, "fat": &n.Fat, "carbs": &n.Carbs,
		}
		for key, re := range macroFields {
			if v := re.FindStringSubmatch(m[1]); v != nil {
				fields[key].Value, fields[key].Set = parseLooseNumber(v[1])
			}
		}
		r.Nutrition = n
	}
	return r
}

func quotedList(s string) flexList {
	var out flexList
	for _, m := range quotedRe.FindAllStringSubmatch(s, -1) {
		if v := strings.TrimSpace(unquote(m[1])); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func unquote(s string) string {
	if u, err := strconv.Unquote(`"` + s + `"`); err == nil {
		return u
	}
	return s
}
