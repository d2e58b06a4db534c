package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/BhushanSadavarti/Nutrition-App/internal/catalog"
	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	ErrPlanNotFound  = errors.New("meal plan not found")
	ErrDuplicatePlan = errors.New("duplicate meal plan key")
)

// Store keeps the static catalog in SQLite reference tables. It never stores profiles or results.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS plans (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"key" TEXT NOT NULL UNIQUE,
		"uuid" TEXT NOT NULL,
		"title" TEXT NOT NULL,
		"description" TEXT,
		"diet" TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS meals (
		"plan_id" INTEGER NOT NULL,
		"position" INTEGER NOT NULL,
		"title" TEXT NOT NULL,
		"time" TEXT,
		PRIMARY KEY(plan_id, position),
		FOREIGN KEY(plan_id) REFERENCES plans(id)
);
CREATE TABLE IF NOT EXISTS meal_items (
		"plan_id" INTEGER NOT NULL,
		"meal_position" INTEGER NOT NULL,
		"position" INTEGER NOT NULL,
		"name" TEXT NOT NULL,
		"portion" TEXT,
		"calories_share" REAL NOT NULL,
		"protein_share" REAL NOT NULL,
		"carbs_share" REAL NOT NULL,
		"fat_share" REAL NOT NULL,
		PRIMARY KEY(plan_id, meal_position, position),
		FOREIGN KEY(plan_id, meal_position) REFERENCES meals(plan_id, position)
);
CREATE TABLE IF NOT EXISTS foods (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"name" TEXT NOT NULL,
		"category" TEXT NOT NULL,
		"calories" REAL NOT NULL,
		"protein" REAL NOT NULL,
		"carbs" REAL NOT NULL,
		"fat" REAL NOT NULL,
		"fiber" REAL NOT NULL,
		"serving_size" REAL NOT NULL,
		"serving_description" TEXT
);`

// Open opens (or creates) the reference database at dsn, e.g. ":memory:" or "./catalog.db".
func Open(dsn string, log *zap.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("Open(): failed to open database: %w", err)
	}
	// an in-memory database exists per connection
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("Open(): failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("Open(): failed to create tables: %w", err)
	}

	log.Info("Open(): reference database ready", zap.String("dsn", dsn))
	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Seed replaces the reference tables with the contents of c in one transaction.
func (s *Store) Seed(ctx context.Context, c *catalog.Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"meal_items", "meals", "plans", "foods"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("Seed(): failed to clear %s: %w", table, err)
		}
	}

	if err := insertPlans(ctx, tx, c); err != nil {
		return err
	}
	if err := insertFoods(ctx, tx, c); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.log.Info("Seed(): reference tables seeded", zap.Int("plans", len(c.Plans)), zap.Int("foods", len(c.Foods)))
	return nil
}

func insertPlans(ctx context.Context, tx *sql.Tx, c *catalog.Catalog) error {
	planStmt, err := tx.PrepareContext(ctx, "INSERT INTO plans(key, uuid, title, description, diet) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer planStmt.Close()

	mealStmt, err := tx.PrepareContext(ctx, "INSERT INTO meals(plan_id, position, title, time) VALUES(?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer mealStmt.Close()

	itemStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO meal_items(plan_id, meal_position, position, name, portion,
			calories_share, protein_share, carbs_share, fat_share)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer itemStmt.Close()

	for _, plan := range c.Plans {
		res, err := planStmt.ExecContext(ctx, plan.Key, plan.ID.String(), plan.Title, plan.Description, string(plan.Diet))
		if err != nil {
			var sqliteErr *sqlite.Error
			if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
				return fmt.Errorf("%w: %q", ErrDuplicatePlan, plan.Key)
			}
			return err
		}
		planID, err := res.LastInsertId()
		if err != nil {
			return err
		}

		for mi, meal := range plan.Meals {
			if _, err := mealStmt.ExecContext(ctx, planID, mi, meal.Title, meal.Time); err != nil {
				return err
			}
			for ii, item := range meal.Items {
				sh := item.Share
				if _, err := itemStmt.ExecContext(ctx, planID, mi, ii, item.Name, item.Portion,
					sh.Calories, sh.Protein, sh.Carbs, sh.Fat); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func insertFoods(ctx context.Context, tx *sql.Tx, c *catalog.Catalog) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO foods(name, category, calories, protein, carbs, fat, fiber, serving_size, serving_description)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, f := range c.Foods {
		n := f.Per100g
		if _, err := stmt.ExecContext(ctx, f.Name, string(f.Category), n.Calories, n.Protein, n.Carbs, n.Fat, n.Fiber,
			f.ServingSize, f.ServingDescription); err != nil {
			return err
		}
	}
	return nil
}
