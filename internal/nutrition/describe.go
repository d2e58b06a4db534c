package nutrition

import "github.com/BhushanSadavarti/Nutrition-App/internal/models"

func GoalDescription(goal models.Goal) string {
	switch goal {
	case models.Lose:
		return "Weight Loss"
	case models.Maintain:
		return "Weight Maintenance"
	case models.Gain:
		return "Weight Gain"
	default:
		return "Custom Goal"
	}
}

func ActivityDescription(level models.ActivityLevel) string {
	switch level {
	case models.Sedentary:
		return "Sedentary (little or no exercise)"
	case models.Light:
		return "Lightly active (light exercise 1-3 days/week)"
	case models.Moderate:
		return "Moderately active (moderate exercise 3-5 days/week)"
	case models.Active:
		return "Active (hard exercise 6-7 days/week)"
	case models.VeryActive:
		return "Very active (hard daily exercise & physical job)"
	default:
		return "Custom Activity Level"
	}
}
