package models

// UserProfile is the read-only profile handed to the engine by the caller.
type UserProfile struct {
	Goal          string   `json:"goal,omitempty"` // lose, maintain, gain
	TargetMacros  *Macros  `json:"target_macros,omitempty"`
	HeightCm      float64  `json:"height_cm,omitempty"`
	WeightKg      float64  `json:"weight_kg,omitempty"`
	Age           int      `json:"age,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	ActivityLevel string   `json:"activity_level,omitempty"`
	Preferences   []string `json:"preferences,omitempty"`
	Allergies     []string `json:"allergies,omitempty"`
	Region        string   `json:"region,omitempty"`
	EnhancedInfo  bool     `json:"enhanced_info,omitempty"`
}
