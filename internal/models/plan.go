package models

import "github.com/google/uuid"

type DietType string

const (
	Veg    DietType = "veg"
	NonVeg DietType = "non-veg"
)

// Nutrients holds calories (kcal) and protein/carbs/fat (g).
type Nutrients struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
	}
}

func (n Nutrients) Sub(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories - o.Calories,
		Protein:  n.Protein - o.Protein,
		Carbs:    n.Carbs - o.Carbs,
		Fat:      n.Fat - o.Fat,
	}
}

// ItemShare is the fraction of each plan-level target a meal item carries.
type ItemShare struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type MealItem struct {
	Name      string    `json:"name"`
	Portion   string    `json:"portion"`
	Share     ItemShare `json:"-"`
	Nutrients Nutrients `json:"nutrients"`
}

type Meal struct {
	Title string     `json:"title"`
	Time  string     `json:"time"`
	Items []MealItem `json:"items"`
}

// MealPlan is either a catalog template (zero Nutrients) or a plan scaled to one set of targets.
type MealPlan struct {
	ID          uuid.UUID `json:"id"`
	Key         string    `json:"key"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Diet        DietType  `json:"diet"`
	Meals       []Meal    `json:"meals"`
}

// Clone returns a deep copy that shares no slices with p.
func (p MealPlan) Clone() MealPlan {
	out := p
	out.Meals = make([]Meal, len(p.Meals))
	for i, meal := range p.Meals {
		out.Meals[i] = meal
		out.Meals[i].Items = append([]MealItem(nil), meal.Items...)
	}
	return out
}
