/**
* Name:        config.go
* Description: one-shot runner configuration from .env and the environment
 */
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BhushanSadavarti/Nutrition-App/internal/models"
	"github.com/joho/godotenv"
)

type Config struct {
	Env       string
	CatalogDB string
	Diet      models.DietType
	Seed      uint64
	Profile   models.UserProfile
}

// Load reads an optional .env file, then the process environment.
func Load() (Config, error) {
	// a missing .env is fine; variables may come from the environment alone
	_ = godotenv.Load()
	return LoadFrom(os.Getenv)
}

// LoadFrom builds a Config from getenv and validates the profile.
func LoadFrom(getenv func(string) string) (Config, error) {
	cfg := Config{
		Env:       valueOr(getenv("APP_ENV"), "development"),
		CatalogDB: valueOr(getenv("CATALOG_DB"), ":memory:"),
		Diet:      models.DietType(valueOr(getenv("DIET"), string(models.Veg))),
	}
	if cfg.Diet != models.Veg && cfg.Diet != models.NonVeg {
		return cfg, fmt.Errorf("config: DIET must be %q or %q, got %q", models.Veg, models.NonVeg, cfg.Diet)
	}

	seed, err := strconv.ParseUint(valueOr(getenv("SUGGEST_SEED"), "1"), 10, 64)
	if err != nil {
		return cfg, fmt.Errorf("config: SUGGEST_SEED: %w", err)
	}
	cfg.Seed = seed

	p := models.UserProfile{
		Gender:        models.Gender(getenv("PROFILE_GENDER")),
		ActivityLevel: models.ActivityLevel(getenv("PROFILE_ACTIVITY")),
		Goal:          models.Goal(getenv("PROFILE_GOAL")),
	}
	numbers := []struct {
		key string
		dst *float64
	}{
		{"PROFILE_AGE", &p.Age},
		{"PROFILE_WEIGHT", &p.Weight},
		{"PROFILE_HEIGHT", &p.Height},
	}
	for _, n := range numbers {
		raw := getenv(n.key)
		if raw == "" {
			return cfg, fmt.Errorf("config: %s is required", n.key)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", n.key, err)
		}
		*n.dst = v
	}

	if err := p.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	cfg.Profile = p
	return cfg, nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
