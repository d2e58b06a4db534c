package storage

import (
	"context"
	"database/sql"

	"github.com/BhushanSadavarti/Nutrition-App/internal/models"
)

func (s *Store) Foods(ctx context.Context) ([]models.FoodItem, error) {
	return s.queryFoods(ctx, "SELECT name, category, calories, protein, carbs, fat, fiber, serving_size, serving_description FROM foods ORDER BY id")
}

func (s *Store) FoodsByCategory(ctx context.Context, category models.FoodCategory) ([]models.FoodItem, error) {
	query := `
		SELECT name, category, calories, protein, carbs, fat, fiber, serving_size, serving_description
		FROM foods
		WHERE category = ?
		ORDER BY id
	`
	return s.queryFoods(ctx, query, string(category))
}

func (s *Store) queryFoods(ctx context.Context, query string, args ...any) ([]models.FoodItem, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var foods []models.FoodItem
	for rows.Next() {
		var (
			f        models.FoodItem
			category string
			desc     sql.NullString
		)
		n := &f.Per100g
		if err := rows.Scan(&f.Name, &category, &n.Calories, &n.Protein, &n.Carbs, &n.Fat, &n.Fiber, &f.ServingSize, &desc); err != nil {
			return nil, err
		}
		f.Category = models.FoodCategory(category)
		if desc.Valid {
			f.ServingDescription = desc.String
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}
