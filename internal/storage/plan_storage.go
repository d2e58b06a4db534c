package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/BhushanSadavarti/Nutrition-App/internal/models"
	"github.com/google/uuid"
)

// ListPlans returns the templates of one diet in catalog order. An empty diet lists every plan.
// Each call rebuilds the templates from rows, so callers always get an unmodified copy.
func (s *Store) ListPlans(ctx context.Context, diet models.DietType) ([]models.MealPlan, error) {
	keys, err := s.planKeys(ctx, diet)
	if err != nil {
		return nil, err
	}

	plans := make([]models.MealPlan, 0, len(keys))
	for _, key := range keys {
		plan, err := s.GetPlan(ctx, key)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func (s *Store) GetPlan(ctx context.Context, key string) (models.MealPlan, error) {
	var (
		plan    models.MealPlan
		planID  int64
		rawUUID string
		diet    string
		desc    sql.NullString
	)

	row := s.db.QueryRowContext(ctx, "SELECT id, key, uuid, title, description, diet FROM plans WHERE key = ?", key)
	if err := row.Scan(&planID, &plan.Key, &rawUUID, &plan.Title, &desc, &diet); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return plan, fmt.Errorf("%w: %q", ErrPlanNotFound, key)
		}
		return plan, err
	}

	id, err := uuid.Parse(rawUUID)
	if err != nil {
		return plan, fmt.Errorf("GetPlan(): plan %q has malformed uuid: %w", key, err)
	}
	plan.ID = id
	plan.Diet = models.DietType(diet)
	if desc.Valid {
		plan.Description = desc.String
	}

	if plan.Meals, err = s.meals(ctx, planID); err != nil {
		return plan, err
	}
	if err := s.fillItems(ctx, planID, plan.Meals); err != nil {
		return plan, err
	}
	return plan, nil
}

func (s *Store) planKeys(ctx context.Context, diet models.DietType) ([]string, error) {
	query := "SELECT key FROM plans ORDER BY id"
	args := []any{}
	if diet != "" {
		query = "SELECT key FROM plans WHERE diet = ? ORDER BY id"
		args = append(args, string(diet))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func (s *Store) meals(ctx context.Context, planID int64) ([]models.Meal, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT title, time FROM meals WHERE plan_id = ? ORDER BY position", planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meals []models.Meal
	for rows.Next() {
		var m models.Meal
		var t sql.NullString
		if err := rows.Scan(&m.Title, &t); err != nil {
			return nil, err
		}
		if t.Valid {
			m.Time = t.String
		}
		meals = append(meals, m)
	}
	return meals, rows.Err()
}

func (s *Store) fillItems(ctx context.Context, planID int64, meals []models.Meal) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT meal_position, name, portion, calories_share, protein_share, carbs_share, fat_share
		FROM meal_items
		WHERE plan_id = ?
		ORDER BY meal_position, position`, planID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			mealPos int
			item    models.MealItem
			portion sql.NullString
		)
		sh := &item.Share
		if err := rows.Scan(&mealPos, &item.Name, &portion, &sh.Calories, &sh.Protein, &sh.Carbs, &sh.Fat); err != nil {
			return err
		}
		if mealPos < 0 || mealPos >= len(meals) {
			return fmt.Errorf("fillItems(): item %q references missing meal %d", item.Name, mealPos)
		}
		if portion.Valid {
			item.Portion = portion.String
		}
		meals[mealPos].Items = append(meals[mealPos].Items, item)
	}
	return rows.Err()
}
