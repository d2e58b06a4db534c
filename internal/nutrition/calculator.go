/**
* Name:        calculator.go
* Description: Mifflin-St Jeor energy targets and macronutrient split
* Workflow:    BMR -> TDEE (rounded) -> target calories (rounded) -> macros (rounded)
 */
package nutrition

import (
	"math"

	"github.com/BhushanSadavarti/Nutrition-App/internal/models"
)

var activityMultipliers = map[models.ActivityLevel]float64{
	models.Sedentary:  1.2,   // little or no exercise
	models.Light:      1.375, // light exercise 1-3 days/week
	models.Moderate:   1.55,  // moderate exercise 3-5 days/week
	models.Active:     1.725, // hard exercise 6-7 days/week
	models.VeryActive: 1.9,   // physical job or twice-daily training
}

var goalAdjustments = map[models.Goal]float64{
	models.Lose:     0.85,
	models.Maintain: 1.0,
	models.Gain:     1.15,
}

// grams of protein per kg of bodyweight
var proteinMultipliers = map[models.Goal]float64{
	models.Lose:     2.0,
	models.Maintain: 1.8,
	models.Gain:     1.6,
}

const (
	fatCalorieShare = 0.25
	kcalPerGramFat  = 9
	kcalPerGramPC   = 4 // protein and carbohydrate
)

// Round rounds half-up (ties go toward positive infinity), so -412.5 becomes -412.
func Round(x float64) int {
	f := math.Floor(x)
	if x-f >= 0.5 {
		f++
	}
	return int(f)
}

// ComputeBMR returns the unrounded basal metabolic rate in kcal/day.
func ComputeBMR(p models.UserProfile) float64 {
	bmr := 10*p.Weight + 6.25*p.Height - 5*p.Age
	if p.Gender == models.Male {
		return bmr + 5
	}
	return bmr - 161
}

// ComputeTDEE scales the BMR by the activity multiplier. An unknown level has no multiplier and yields 0.
func ComputeTDEE(p models.UserProfile) int {
	return Round(ComputeBMR(p) * activityMultipliers[p.ActivityLevel])
}

// ComputeTargetCalories applies the goal adjustment to the already rounded TDEE.
func ComputeTargetCalories(p models.UserProfile) int {
	return Round(float64(ComputeTDEE(p)) * goalAdjustments[p.Goal])
}

// ComputeMacros splits targetCalories into protein by bodyweight, fat at 25% of calories
// and carbs from whatever remains. Carbs are not floored and go negative when protein
// and fat alone exceed the target.
func ComputeMacros(p models.UserProfile, targetCalories int) models.Macros {
	multiplier, ok := proteinMultipliers[p.Goal]
	if !ok {
		multiplier = proteinMultipliers[models.Maintain]
	}

	protein := Round(p.Weight * multiplier)
	fat := Round(float64(targetCalories) * fatCalorieShare / kcalPerGramFat)
	remaining := targetCalories - protein*kcalPerGramPC - fat*kcalPerGramFat
	carbs := Round(float64(remaining) / kcalPerGramPC)

	return models.Macros{Protein: protein, Carbs: carbs, Fat: fat}
}

// ComputeTargets runs the four calculations in order for one profile.
func ComputeTargets(p models.UserProfile) models.EnergyTargets {
	target := ComputeTargetCalories(p)
	return models.EnergyTargets{
		BMR:            ComputeBMR(p),
		TDEE:           ComputeTDEE(p),
		TargetCalories: target,
		Macros:         ComputeMacros(p, target),
	}
}
