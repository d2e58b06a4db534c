package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/BhushanSadavarti/Nutrition-App/internal/catalog"
	"github.com/BhushanSadavarti/Nutrition-App/internal/config"
	"github.com/BhushanSadavarti/Nutrition-App/internal/logger"
	"github.com/BhushanSadavarti/Nutrition-App/internal/planner"
	"github.com/BhushanSadavarti/Nutrition-App/internal/storage"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync(zl)

	if err := run(context.Background(), cfg, zl); err != nil {
		zl.Error("main(): failed to build meal plans", zap.Error(err))
		logger.Sync(zl)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, zl *zap.Logger) error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.CatalogDB, zl)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Seed(ctx, cat); err != nil {
		return err
	}

	report, err := planner.New(store, zl).Plan(ctx, planner.Request{
		Profile: cfg.Profile,
		Diet:    cfg.Diet,
		Seed:    cfg.Seed,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
