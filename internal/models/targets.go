package models

// Macros are daily macronutrient targets in grams.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// EnergyTargets is derived from a UserProfile on every call and never cached.
type EnergyTargets struct {
	BMR            float64 `json:"bmr"`
	TDEE           int     `json:"tdee"`
	TargetCalories int     `json:"target_calories"`
	Macros         Macros  `json:"macros"`
}

// Nutrients projects the targets onto the four metrics a meal plan is scaled against.
func (t EnergyTargets) Nutrients() Nutrients {
	return Nutrients{
		Calories: t.TargetCalories,
		Protein:  t.Macros.Protein,
		Carbs:    t.Macros.Carbs,
		Fat:      t.Macros.Fat,
	}
}
