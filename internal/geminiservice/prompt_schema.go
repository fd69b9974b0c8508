package geminiservice

import (
	"encoding/json"
	"fmt"
	"strings"

	"NutriViet_V1.0/internal/models"
)

/* =================================================================================
							GEMINI SCHEMA DEFINITION
	Tells the model how to format its JSON response.
=================================================================================*/

// GeminiSchema defines the structure for "Controlled Generation" (Structured Output).
type GeminiSchema struct {
	// Type defines the data type (e.g., "OBJECT", "ARRAY", "STRING", "NUMBER").
	Type string `json:"type"`

	Format      string `json:"format,omitempty"`
	Description string `json:"description,omitempty"`

	// Properties maps field names to their child schemas (used when Type is "OBJECT").
	Properties map[string]*GeminiSchema `json:"properties,omitempty"`

	// Items defines the schema for elements within an array (used when Type is "ARRAY").
	Items *GeminiSchema `json:"items,omitempty"`

	// Required lists the field names that the model MUST include.
	Required []string `json:"required,omitempty"`

	// PropertyOrdering fixes the key order of generated objects.
	PropertyOrdering []string `json:"propertyOrdering,omitempty"`

	Enum []string `json:"enum,omitempty"`
}

// dishKeys is the order every generated dish object must follow.
var dishKeys = []string{"name", "description", "ingredients", "preparation", "nutrition", "preparation_time", "health_benefits"}

// DishArraySchema is the response schema for one meal.
var DishArraySchema = &GeminiSchema{
	Type:        "ARRAY",
	Description: "Các món ăn cho một bữa, 1 đến 3 món.",
	Items: &GeminiSchema{
		Type: "OBJECT",
		Properties: map[string]*GeminiSchema{
			"name":        {Type: "STRING", Description: "Tên món ăn tiếng Việt"},
			"description": {Type: "STRING"},
			"ingredients": {
				Type: "ARRAY",
				Items: &GeminiSchema{
					Type: "OBJECT",
					Properties: map[string]*GeminiSchema{
						"name":   {Type: "STRING"},
						"amount": {Type: "STRING", Description: "Ví dụ: 200g, 2 quả, 1 muỗng canh"},
					},
					Required:         []string{"name", "amount"},
					PropertyOrdering: []string{"name", "amount"},
				},
			},
			"preparation": {Type: "ARRAY", Items: &GeminiSchema{Type: "STRING"}},
			"nutrition": {
				Type: "OBJECT",
				Properties: map[string]*GeminiSchema{
					"calories": {Type: "NUMBER"},
					"protein":  {Type: "NUMBER"},
					"fat":      {Type: "NUMBER"},
					"carbs":    {Type: "NUMBER"},
				},
				Required:         []string{"calories", "protein", "fat", "carbs"},
				PropertyOrdering: []string{"calories", "protein", "fat", "carbs"},
			},
			"preparation_time": {Type: "STRING"},
			"health_benefits":  {Type: "STRING"},
		},
		Required:         dishKeys,
		PropertyOrdering: dishKeys,
	},
}

/* =================================================================================
						PROMPT ENGINEERING & GUARDRAILS
=================================================================================*/

/*
SystemPrompt sets the persona and the output contract. The worked example
anchors the model on a valid array.
*/
const SystemPrompt = `Bạn là chuyên gia dinh dưỡng người Việt Nam, lên thực đơn món Việt cho từng bữa ăn.

OUTPUT CONTRACT (CRITICAL):
- Return ONLY a JSON array. No markdown, no code fences, no explanations.
- Each item MUST have exactly these keys, in this order:
  "name", "description", "ingredients", "preparation", "nutrition", "preparation_time", "health_benefits"
- "ingredients" is an array of {"name": string, "amount": string} with grams or Vietnamese units (g, quả, muỗng canh...).
- "preparation" is an array of step strings.
- "nutrition" is {"calories": number, "protein": number, "fat": number, "carbs": number} for the portion described.
- Numbers are plain JSON numbers, never strings, never units.

NUMERIC TOLERANCE:
- The SUM of all dishes must match the meal target within ±20 kcal for calories and ±3 g for protein, fat and carbs.
- Use realistic Vietnamese portions; do not invent 0-calorie dishes.

SAFETY:
- Allergens listed by the user are FORBIDDEN. Never use them or any ingredient derived from them.
- Never repeat a dish listed under "avoid".

EXAMPLE (one dish, for a 400 kcal breakfast):
[{"name": "Phở gà", "description": "Phở gà nước dùng trong, thơm gừng nướng.", "ingredients": [{"name": "Bánh phở", "amount": "200g"}, {"name": "Thịt gà", "amount": "100g"}, {"name": "Hành lá", "amount": "10g"}], "preparation": ["Luộc gà với gừng nướng lấy nước dùng.", "Trụng bánh phở, xé gà đặt lên trên.", "Chan nước dùng sôi, rắc hành lá."], "nutrition": {"calories": 400, "protein": 24, "fat": 8, "carbs": 58}, "preparation_time": "30 phút", "health_benefits": "Giàu đạm, ít chất béo."}]`

/*
UserPromptTemplate is filled with fmt.Sprintf at runtime.
*/
const UserPromptTemplate = `=== MEAL ===
%s (%s)

=== TARGET (sum of all dishes) ===
calories: %.0f kcal, protein: %.0f g, fat: %.0f g, carbs: %.0f g

=== USER PREFERENCES ===
Preferences: %s
Diet: %s
Cuisine: %s

=== FORBIDDEN ALLERGENS (NEVER USE) ===
%s

=== AVOID THESE DISHES (already served this week) ===
%s

Suggest 1 to 3 Vietnamese dishes for this meal. Return ONLY the JSON array.`

/*
RepairPromptTemplate is sent once when the first answer could not be parsed.
*/
const RepairPromptTemplate = `Your previous answer was not a valid JSON array for the required schema.

Validator error: %s

Previous answer:
%s

Return the corrected JSON array only, with keys "name", "description", "ingredients", "preparation", "nutrition", "preparation_time", "health_benefits" in that order.`

// MealRequest is everything SuggestMeal needs for one meal.
type MealRequest struct {
	Slot        models.MealSlot
	Target      models.Macros
	Preferences []string
	Allergies   []string
	DietPrefs   []string
	Cuisine     string
	// Avoid lists dish names already used in this slot.
	Avoid []string
}

// BuildMealPrompt renders the user message for req.
func BuildMealPrompt(req MealRequest) string {
	return fmt.Sprintf(UserPromptTemplate,
		req.Slot.Label(), req.Slot,
		req.Target.Calories, req.Target.Protein, req.Target.Fat, req.Target.Carbs,
		listOrNone(req.Preferences),
		listOrNone(req.DietPrefs),
		orNone(req.Cuisine),
		listOrNone(req.Allergies),
		listOrNone(req.Avoid),
	)
}

// BuildRepairPrompt echoes the failed text and the validator error.
func BuildRepairPrompt(failed string, validationErr error) string {
	const maxEcho = 4000
	if len(failed) > maxEcho {
		failed = strings.ToValidUTF8(failed[:maxEcho], "")
	}
	return fmt.Sprintf(RepairPromptTemplate, validationErr, failed)
}

func listOrNone(xs []string) string {
	if len(xs) == 0 {
		return "none"
	}
	return strings.Join(xs, ", ")
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "none"
	}
	return s
}

// schemaJSON is logged at startup at debug level.
func schemaJSON() string {
	b, _ := json.Marshal(DishArraySchema)
	return string(b)
}
