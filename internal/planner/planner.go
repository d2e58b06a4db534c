package planner

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/BhushanSadavarti/Nutrition-App/internal/mealplan"
	"github.com/BhushanSadavarti/Nutrition-App/internal/models"
	"github.com/BhushanSadavarti/Nutrition-App/internal/nutrition"
	"github.com/BhushanSadavarti/Nutrition-App/internal/suggest"
	"go.uber.org/zap"
)

// ReferenceStore supplies unmodified catalog data. *storage.Store implements it.
type ReferenceStore interface {
	ListPlans(ctx context.Context, diet models.DietType) ([]models.MealPlan, error)
	Foods(ctx context.Context) ([]models.FoodItem, error)
}

type Planner struct {
	store ReferenceStore
	log   *zap.Logger
}

func New(store ReferenceStore, log *zap.Logger) *Planner {
	return &Planner{store: store, log: log}
}

type Request struct {
	Profile models.UserProfile
	Diet    models.DietType
	Seed    uint64
}

// PlanResult is one reconciled meal plan. Residual is target minus Totals and is
// non-zero only when the correction item had to be clamped.
type PlanResult struct {
	Plan     models.MealPlan  `json:"plan"`
	Totals   models.Nutrients `json:"totals"`
	Residual models.Nutrients `json:"residual"`
}

type Report struct {
	Profile             models.UserProfile   `json:"profile"`
	GoalDescription     string               `json:"goal_description"`
	ActivityDescription string               `json:"activity_description"`
	Targets             models.EnergyTargets `json:"targets"`
	Plans               []PlanResult         `json:"plans"`
	Suggestions         []suggest.FoodPlan   `json:"suggestions"`
}

// Plan computes the targets for req.Profile and scales every template of req.Diet to them.
// The profile is assumed to be validated already.
func (p *Planner) Plan(ctx context.Context, req Request) (Report, error) {
	targets := nutrition.ComputeTargets(req.Profile)
	target := targets.Nutrients()

	report := Report{
		Profile:             req.Profile,
		GoalDescription:     nutrition.GoalDescription(req.Profile.Goal),
		ActivityDescription: nutrition.ActivityDescription(req.Profile.ActivityLevel),
		Targets:             targets,
	}

	templates, err := p.store.ListPlans(ctx, req.Diet)
	if err != nil {
		return report, fmt.Errorf("Plan(): failed to list %s plans: %w", req.Diet, err)
	}
	for _, tmpl := range templates {
		plan, totals := mealplan.Build(tmpl, target)
		residual := target.Sub(totals)
		if residual != (models.Nutrients{}) {
			p.log.Debug("Plan(): correction item clamped",
				zap.String("plan", plan.Key),
				zap.Int("calories", residual.Calories),
				zap.Int("protein", residual.Protein),
				zap.Int("carbs", residual.Carbs),
				zap.Int("fat", residual.Fat))
		}
		report.Plans = append(report.Plans, PlanResult{Plan: plan, Totals: totals, Residual: residual})
	}

	foods, err := p.store.Foods(ctx)
	if err != nil {
		return report, fmt.Errorf("Plan(): failed to load foods: %w", err)
	}
	rng := rand.New(rand.NewPCG(req.Seed, req.Seed))
	report.Suggestions = suggest.Generate(foods, targets.TargetCalories, rng)

	p.log.Info("Plan(): report built",
		zap.Int("target_calories", targets.TargetCalories),
		zap.String("diet", string(req.Diet)),
		zap.Int("plans", len(report.Plans)))
	return report, nil
}
