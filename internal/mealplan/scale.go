package mealplan

import (
	"github.com/BhushanSadavarti/Nutrition-App/internal/models"
	"github.com/BhushanSadavarti/Nutrition-App/internal/nutrition"
)

// Scale rounds each metric of target times its share independently.
func Scale(target models.Nutrients, share models.ItemShare) models.Nutrients {
	return models.Nutrients{
		Calories: nutrition.Round(float64(target.Calories) * share.Calories),
		Protein:  nutrition.Round(float64(target.Protein) * share.Protein),
		Carbs:    nutrition.Round(float64(target.Carbs) * share.Carbs),
		Fat:      nutrition.Round(float64(target.Fat) * share.Fat),
	}
}

// Instantiate scales every item of a copy of tmpl. tmpl itself is left untouched.
func Instantiate(tmpl models.MealPlan, target models.Nutrients) models.MealPlan {
	plan := tmpl.Clone()
	for i := range plan.Meals {
		items := plan.Meals[i].Items
		for j := range items {
			items[j].Nutrients = Scale(target, items[j].Share)
		}
	}
	return plan
}
