package models

type FoodCategory string

const (
	CategoryProtein   FoodCategory = "protein"
	CategoryCarbs     FoodCategory = "carbs"
	CategoryFat       FoodCategory = "fat"
	CategoryMixed     FoodCategory = "mixed"
	CategoryVegetable FoodCategory = "vegetable"
	CategoryFruit     FoodCategory = "fruit"
	CategoryDairy     FoodCategory = "dairy"
	CategorySpice     FoodCategory = "spice"
)

// Per100g is raw food nutrition per 100 grams.
type Per100g struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

type FoodItem struct {
	Name               string       `json:"name"`
	Category           FoodCategory `json:"category"`
	Per100g            Per100g      `json:"per_100g"`
	ServingSize        float64      `json:"serving_size"` // grams
	ServingDescription string       `json:"serving_description"`
}

type ServingSuggestion struct {
	Food     FoodItem `json:"food"`
	Servings float64  `json:"servings"`
	Calories int      `json:"calories"`
}
