package config

import (
	"errors"
	"testing"

	"github.com/BhushanSadavarti/Nutrition-App/internal/models"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func baseVars() map[string]string {
	return map[string]string{
		"PROFILE_AGE":      "30",
		"PROFILE_GENDER":   "male",
		"PROFILE_WEIGHT":   "70",
		"PROFILE_HEIGHT":   "170",
		"PROFILE_ACTIVITY": "moderate",
		"PROFILE_GOAL":     "maintain",
	}
}

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(env(baseVars()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Env != "development" {
		t.Errorf("expected env 'development', got %q", cfg.Env)
	}
	if cfg.CatalogDB != ":memory:" {
		t.Errorf("expected catalog db ':memory:', got %q", cfg.CatalogDB)
	}
	if cfg.Diet != models.Veg {
		t.Errorf("expected veg diet, got %q", cfg.Diet)
	}
	if cfg.Seed != 1 {
		t.Errorf("expected seed 1, got %d", cfg.Seed)
	}

	want := models.UserProfile{Age: 30, Gender: models.Male, Weight: 70, Height: 170, ActivityLevel: models.Moderate, Goal: models.Maintain}
	if cfg.Profile != want {
		t.Errorf("expected profile %+v, got %+v", want, cfg.Profile)
	}
}

func TestLoadFromOverrides(t *testing.T) {
	vars := baseVars()
	vars["APP_ENV"] = "production"
	vars["CATALOG_DB"] = "./catalog.db"
	vars["DIET"] = "non-veg"
	vars["SUGGEST_SEED"] = "99"
	vars["PROFILE_ACTIVITY"] = "very-active"

	cfg, err := LoadFrom(env(vars))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Env != "production" || cfg.CatalogDB != "./catalog.db" || cfg.Diet != models.NonVeg || cfg.Seed != 99 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Profile.ActivityLevel != models.VeryActive {
		t.Errorf("expected very-active, got %q", cfg.Profile.ActivityLevel)
	}
}

func TestLoadFromErrors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		profile bool
	}{
		{"missing age", "PROFILE_AGE", "", false},
		{"malformed weight", "PROFILE_WEIGHT", "seventy", false},
		{"malformed seed", "SUGGEST_SEED", "-1", false},
		{"unknown diet", "DIET", "vegan", false},
		{"age out of range", "PROFILE_AGE", "12", true},
		{"height out of range", "PROFILE_HEIGHT", "260", true},
		{"unknown gender", "PROFILE_GENDER", "other", true},
		{"unknown goal", "PROFILE_GOAL", "bulk", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := baseVars()
			vars[tt.key] = tt.value
			_, err := LoadFrom(env(vars))
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, models.ErrInvalidProfile); got != tt.profile {
				t.Errorf("errors.Is(ErrInvalidProfile) = %v, expected %v (err: %v)", got, tt.profile, err)
			}
		})
	}
}
