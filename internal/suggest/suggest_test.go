package suggest

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/BhushanSadavarti/Nutrition-App/internal/catalog"
	"github.com/BhushanSadavarti/Nutrition-App/internal/models"
)

// keepOrder leaves every pool in catalog order.
type keepOrder struct{}

func (keepOrder) Shuffle(int, func(i, j int)) {}

func loadFoods(t *testing.T) []models.FoodItem {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return cat.Foods
}

func countByCategory(foods []models.FoodItem) map[models.FoodCategory]int {
	counts := make(map[models.FoodCategory]int)
	for _, f := range foods {
		counts[f.Category]++
	}
	return counts
}

func TestStrategyPickCounts(t *testing.T) {
	foods := loadFoods(t)
	rng := rand.New(rand.NewPCG(7, 11))

	tests := []struct {
		strategy Strategy
		want     map[models.FoodCategory]int
	}{
		{Balanced, map[models.FoodCategory]int{"protein": 2, "carbs": 2, "fat": 1, "mixed": 1, "vegetable": 1, "fruit": 1}},
		{HighProtein, map[models.FoodCategory]int{"protein": 3, "carbs": 1, "fat": 1, "mixed": 1, "vegetable": 2}},
		{PlantBased, map[models.FoodCategory]int{"protein": 2, "carbs": 2, "fat": 1, "mixed": 1, "vegetable": 2, "fruit": 1}},
	}
	for _, tt := range tests {
		t.Run(tt.strategy.Name, func(t *testing.T) {
			got := countByCategory(tt.strategy.Pick(foods, rng))
			if len(got) != len(tt.want) {
				t.Fatalf("expected categories %v, got %v", tt.want, got)
			}
			for cat, n := range tt.want {
				if got[cat] != n {
					t.Errorf("category %s: expected %d, got %d", cat, n, got[cat])
				}
			}
		})
	}
}

func TestPlantBasedExcludesMeat(t *testing.T) {
	foods := loadFoods(t)
	for seed := uint64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed))
		for _, f := range PlantBased.Pick(foods, rng) {
			if strings.Contains(f.Name, "Chicken") || strings.Contains(f.Name, "Fish") {
				t.Fatalf("seed %d: plant-based pick contains %q", seed, f.Name)
			}
		}
	}
}

func TestPickWithoutShuffleKeepsCatalogOrder(t *testing.T) {
	got := HighProtein.Pick(loadFoods(t), keepOrder{})
	want := []string{
		"Moong Dal (Split Green Gram)", "Masoor Dal (Red Lentils)", "Chana Dal (Split Bengal Gram)",
		"Basmati Rice", "Mustard Oil", "Chickpeas (Kabuli Chana)",
		"Spinach (Palak)", "Bitter Gourd (Karela)",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d foods, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, got[i].Name)
		}
	}
}

func TestPickSmallPool(t *testing.T) {
	foods := []models.FoodItem{{Name: "Tofu", Category: models.CategoryProtein, ServingSize: 100}}
	got := Balanced.Pick(foods, keepOrder{})
	if len(got) != 1 || got[0].Name != "Tofu" {
		t.Errorf("expected only Tofu, got %+v", got)
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	foods := loadFoods(t)

	first := Generate(foods, 2000, rand.New(rand.NewPCG(42, 42)))
	second := Generate(foods, 2000, rand.New(rand.NewPCG(42, 42)))

	if len(first) != 3 {
		t.Fatalf("expected 3 food plans, got %d", len(first))
	}
	for i := range first {
		if first[i].Name != Strategies[i].Name {
			t.Errorf("plan %d: expected name %q, got %q", i, Strategies[i].Name, first[i].Name)
		}
		if len(first[i].Foods) != len(second[i].Foods) {
			t.Fatalf("plan %d: lengths differ", i)
		}
		for j := range first[i].Foods {
			if first[i].Foods[j] != second[i].Foods[j] {
				t.Errorf("plan %d food %d: %+v != %+v", i, j, first[i].Foods[j], second[i].Foods[j])
			}
		}
	}
}

func TestServingSizes(t *testing.T) {
	foods := loadFoods(t)
	byName := make(map[string]models.FoodItem)
	for _, f := range foods {
		byName[f.Name] = f
	}

	selected := []models.FoodItem{
		byName["Moong Dal (Split Green Gram)"],
		byName["Paneer (Indian Cottage Cheese)"],
		byName["Chicken Breast"],
		byName["Ghee (Clarified Butter)"],
	}
	got := ServingSizes(selected, 2000)

	want := []struct {
		servings float64
		calories int
	}{
		{4.8, 500},
		{3.8, 504},
		{3.0, 495},
		{5.6, 504},
	}
	for i, w := range want {
		if got[i].Servings != w.servings || got[i].Calories != w.calories {
			t.Errorf("%s: expected %.1f servings / %d kcal, got %.1f / %d",
				selected[i].Name, w.servings, w.calories, got[i].Servings, got[i].Calories)
		}
	}
}

func TestServingSizesEdgeCases(t *testing.T) {
	if got := ServingSizes(nil, 2000); got != nil {
		t.Errorf("expected nil for no foods, got %+v", got)
	}

	water := models.FoodItem{Name: "Water", Category: models.CategoryMixed, ServingSize: 250}
	got := ServingSizes([]models.FoodItem{water}, 2000)
	if len(got) != 1 || got[0].Servings != 0 || got[0].Calories != 0 {
		t.Errorf("expected zero servings for a zero-calorie food, got %+v", got)
	}
}
