package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/BhushanSadavarti/Nutrition-App/internal/models"
	"github.com/google/uuid"
	"gopkg.in/yaml.v2"
)

//go:embed catalog.yaml
var embedded []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

var planNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/BhushanSadavarti/Nutrition-App/plans"))

// Catalog is the static reference data: meal plan templates and raw foods.
type Catalog struct {
	Plans []models.MealPlan
	Foods []models.FoodItem
	byKey map[string]int
}

type document struct {
	Plans []planDoc `yaml:"plans"`
	Foods []foodDoc `yaml:"foods"`
}

type planDoc struct {
	Key         string    `yaml:"key"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Diet        string    `yaml:"diet"`
	Meals       []mealDoc `yaml:"meals"`
}

type mealDoc struct {
	Title string    `yaml:"title"`
	Time  string    `yaml:"time"`
	Items []itemDoc `yaml:"items"`
}

type itemDoc struct {
	Name    string           `yaml:"name"`
	Portion string           `yaml:"portion"`
	Share   models.ItemShare `yaml:"share"`
}

type foodDoc struct {
	Name               string         `yaml:"name"`
	Category           string         `yaml:"category"`
	Per100g            models.Per100g `yaml:"per_100g"`
	ServingSize        float64        `yaml:"serving_size"`
	ServingDescription string         `yaml:"serving_description"`
}

// Load parses the catalog compiled into the binary.
func Load() (*Catalog, error) {
	return Parse(embedded)
}

func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	c := &Catalog{byKey: make(map[string]int, len(doc.Plans))}
	for _, pd := range doc.Plans {
		plan, err := pd.toModel()
		if err != nil {
			return nil, err
		}
		if _, dup := c.byKey[plan.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate plan key %q", ErrInvalidCatalog, plan.Key)
		}
		c.byKey[plan.Key] = len(c.Plans)
		c.Plans = append(c.Plans, plan)
	}

	for _, fd := range doc.Foods {
		food, err := fd.toModel()
		if err != nil {
			return nil, err
		}
		c.Foods = append(c.Foods, food)
	}
	return c, nil
}

// Lookup returns a fresh copy of the template stored under key.
func (c *Catalog) Lookup(key string) (models.MealPlan, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return models.MealPlan{}, false
	}
	return c.Plans[i].Clone(), true
}

// PlanID is stable for a given key across runs and machines.
func PlanID(key string) uuid.UUID {
	return uuid.NewSHA1(planNamespace, []byte(key))
}

func (pd planDoc) toModel() (models.MealPlan, error) {
	if pd.Key == "" {
		return models.MealPlan{}, fmt.Errorf("%w: plan %q has no key", ErrInvalidCatalog, pd.Title)
	}
	diet := models.DietType(pd.Diet)
	if diet != models.Veg && diet != models.NonVeg {
		return models.MealPlan{}, fmt.Errorf("%w: plan %q: unknown diet %q", ErrInvalidCatalog, pd.Key, pd.Diet)
	}
	if len(pd.Meals) == 0 {
		return models.MealPlan{}, fmt.Errorf("%w: plan %q has no meals", ErrInvalidCatalog, pd.Key)
	}

	plan := models.MealPlan{
		ID:          PlanID(pd.Key),
		Key:         pd.Key,
		Title:       pd.Title,
		Description: pd.Description,
		Diet:        diet,
		Meals:       make([]models.Meal, 0, len(pd.Meals)),
	}
	for _, md := range pd.Meals {
		meal := models.Meal{Title: md.Title, Time: md.Time, Items: make([]models.MealItem, 0, len(md.Items))}
		for _, it := range md.Items {
			if !validShare(it.Share) {
				return models.MealPlan{}, fmt.Errorf("%w: plan %q item %q: share outside [0, 1]", ErrInvalidCatalog, pd.Key, it.Name)
			}
			meal.Items = append(meal.Items, models.MealItem{Name: it.Name, Portion: it.Portion, Share: it.Share})
		}
		plan.Meals = append(plan.Meals, meal)
	}
	return plan, nil
}

func (fd foodDoc) toModel() (models.FoodItem, error) {
	category := models.FoodCategory(fd.Category)
	switch category {
	case models.CategoryProtein, models.CategoryCarbs, models.CategoryFat, models.CategoryMixed,
		models.CategoryVegetable, models.CategoryFruit, models.CategoryDairy, models.CategorySpice:
	default:
		return models.FoodItem{}, fmt.Errorf("%w: food %q: unknown category %q", ErrInvalidCatalog, fd.Name, fd.Category)
	}
	if fd.ServingSize <= 0 {
		return models.FoodItem{}, fmt.Errorf("%w: food %q: serving size must be positive", ErrInvalidCatalog, fd.Name)
	}
	return models.FoodItem{
		Name:               fd.Name,
		Category:           category,
		Per100g:            fd.Per100g,
		ServingSize:        fd.ServingSize,
		ServingDescription: fd.ServingDescription,
	}, nil
}

func validShare(s models.ItemShare) bool {
	for _, v := range []float64{s.Calories, s.Protein, s.Carbs, s.Fat} {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}
