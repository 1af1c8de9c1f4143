package main

import (
	"context"
	"log"

	"github.com/purplefit/purplefit-v2/backend/config"
	"github.com/purplefit/purplefit-v2/backend/internal/models"
	"github.com/purplefit/purplefit-v2/backend/internal/seed"
	"github.com/purplefit/purplefit-v2/backend/internal/store"
)

// seed populates the record store with the default food catalog and a
// sample plan, then exits. The API server runs the same seeding at boot;
// this binary exists for priming a store ahead of deployment.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	kv, err := store.OpenKV(cfg)
	if err != nil {
		log.Fatalf("Failed to open record store: %v", err)
	}

	foods := store.NewCollection[models.FoodEntry](kv, store.FoodEntriesKey)
	plans := store.NewCollection[models.MealPlan](kv, store.MealPlansKey)
	plans.Normalize = models.NormalizePlans

	ctx := context.Background()
	if err := seed.NewSeeder(foods, plans).Run(ctx); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seed complete: %d food entries, %d meal plans",
		len(foods.List(ctx)), len(plans.List(ctx)))
}
