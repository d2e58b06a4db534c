package suggest

import (
	"strings"

	"github.com/BhushanSadavarti/Nutrition-App/internal/models"
	"github.com/BhushanSadavarti/Nutrition-App/internal/nutrition"
)

// Shuffler is satisfied by *rand.Rand from math/rand and math/rand/v2.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type pick struct {
	category models.FoodCategory
	count    int
}

// Strategy describes how many foods of each category a suggestion draws.
type Strategy struct {
	Name    string
	picks   []pick
	exclude []string // name substrings left out of the protein pool
}

var (
	Balanced = Strategy{
		Name: "Balanced",
		picks: []pick{
			{models.CategoryProtein, 2},
			{models.CategoryCarbs, 2},
			{models.CategoryFat, 1},
			{models.CategoryMixed, 1},
			{models.CategoryVegetable, 1},
			{models.CategoryFruit, 1},
		},
	}
	HighProtein = Strategy{
		Name: "High Protein",
		picks: []pick{
			{models.CategoryProtein, 3},
			{models.CategoryCarbs, 1},
			{models.CategoryFat, 1},
			{models.CategoryMixed, 1},
			{models.CategoryVegetable, 2},
		},
	}
	PlantBased = Strategy{
		Name: "Plant-Based",
		picks: []pick{
			{models.CategoryProtein, 2},
			{models.CategoryCarbs, 2},
			{models.CategoryFat, 1},
			{models.CategoryMixed, 1},
			{models.CategoryVegetable, 2},
			{models.CategoryFruit, 1},
		},
		exclude: []string{"Chicken", "Fish"},
	}
)

var Strategies = []Strategy{Balanced, HighProtein, PlantBased}

type FoodPlan struct {
	Name  string                     `json:"name"`
	Foods []models.ServingSuggestion `json:"foods"`
}

// Pick draws foods for one strategy. Each category pool is shuffled with rng and its first
// count entries kept; a pool smaller than count contributes all it has.
func (s Strategy) Pick(foods []models.FoodItem, rng Shuffler) []models.FoodItem {
	var out []models.FoodItem
	for _, p := range s.picks {
		pool := s.pool(foods, p.category)
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		out = append(out, pool[:min(p.count, len(pool))]...)
	}
	return out
}

func (s Strategy) pool(foods []models.FoodItem, category models.FoodCategory) []models.FoodItem {
	var pool []models.FoodItem
	for _, f := range foods {
		if f.Category != category {
			continue
		}
		if category == models.CategoryProtein && s.excluded(f.Name) {
			continue
		}
		pool = append(pool, f)
	}
	return pool
}

func (s Strategy) excluded(name string) bool {
	for _, sub := range s.exclude {
		if strings.Contains(name, sub) {
			return true
		}
	}
	return false
}

// Generate draws one food plan per strategy and sizes its servings for calorieTarget.
func Generate(foods []models.FoodItem, calorieTarget int, rng Shuffler) []FoodPlan {
	plans := make([]FoodPlan, 0, len(Strategies))
	for _, s := range Strategies {
		plans = append(plans, FoodPlan{
			Name:  s.Name,
			Foods: ServingSizes(s.Pick(foods, rng), calorieTarget),
		})
	}
	return plans
}

// ServingSizes splits calorieTarget evenly across foods and converts each share into
// servings rounded to one decimal.
func ServingSizes(foods []models.FoodItem, calorieTarget int) []models.ServingSuggestion {
	if len(foods) == 0 {
		return nil
	}
	perFood := float64(calorieTarget) / float64(len(foods))

	out := make([]models.ServingSuggestion, 0, len(foods))
	for _, f := range foods {
		perGram := f.Per100g.Calories / 100
		if perGram <= 0 || f.ServingSize <= 0 {
			out = append(out, models.ServingSuggestion{Food: f})
			continue
		}
		idealGrams := nutrition.Round(perFood / perGram)
		servings := float64(nutrition.Round(float64(idealGrams)/f.ServingSize*10)) / 10
		out = append(out, models.ServingSuggestion{
			Food:     f,
			Servings: servings,
			Calories: nutrition.Round(servings * f.ServingSize * perGram),
		})
	}
	return out
}
