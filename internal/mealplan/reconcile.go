package mealplan

import "github.com/BhushanSadavarti/Nutrition-App/internal/models"

// Drift at or below these bounds is accepted without correction.
const (
	CalorieTolerance = 5
	MacroTolerance   = 2
)

// Sum adds up every item of every meal.
func Sum(plan models.MealPlan) models.Nutrients {
	var total models.Nutrients
	for _, meal := range plan.Meals {
		for _, item := range meal.Items {
			total = total.Add(item.Nutrients)
		}
	}
	return total
}

// Reconcile moves the whole drift between the plan total and target into the last item
// of the last meal, then clamps that item (calories >= 1, macros >= 0). It runs once:
// when clamping fires the returned total keeps the residual.
//
// Call it on a freshly instantiated plan. Running it again with the same target is a
// no-op, but a plan reconciled against one target must not be reused for another.
func Reconcile(plan *models.MealPlan, target models.Nutrients) models.Nutrients {
	diff := target.Sub(Sum(*plan))
	if !exceedsTolerance(diff) {
		return Sum(*plan)
	}

	item := lastItem(plan)
	if item == nil {
		return Sum(*plan)
	}

	adjusted := item.Nutrients.Add(diff)
	adjusted.Calories = max(adjusted.Calories, 1)
	adjusted.Protein = max(adjusted.Protein, 0)
	adjusted.Carbs = max(adjusted.Carbs, 0)
	adjusted.Fat = max(adjusted.Fat, 0)
	item.Nutrients = adjusted

	return Sum(*plan)
}

// Build instantiates tmpl for target and reconciles the result.
func Build(tmpl models.MealPlan, target models.Nutrients) (models.MealPlan, models.Nutrients) {
	plan := Instantiate(tmpl, target)
	totals := Reconcile(&plan, target)
	return plan, totals
}

func exceedsTolerance(d models.Nutrients) bool {
	return abs(d.Calories) > CalorieTolerance ||
		abs(d.Protein) > MacroTolerance ||
		abs(d.Carbs) > MacroTolerance ||
		abs(d.Fat) > MacroTolerance
}

func lastItem(plan *models.MealPlan) *models.MealItem {
	if len(plan.Meals) == 0 {
		return nil
	}
	items := plan.Meals[len(plan.Meals)-1].Items
	if len(items) == 0 {
		return nil
	}
	return &items[len(items)-1]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
