package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/purplefit/purplefit-v2/backend/config"
	"github.com/purplefit/purplefit-v2/backend/internal/models"
	"github.com/purplefit/purplefit-v2/backend/internal/renderer"
	"github.com/purplefit/purplefit-v2/backend/internal/service"
	"github.com/purplefit/purplefit-v2/backend/internal/store"
)

// export renders a stored meal plan to a PDF file without going through
// the HTTP API.
func main() {
	planID := flag.String("plan", "", "id of the meal plan to export")
	outPath := flag.String("out", "", "output path (defaults to the plan's filename)")
	flag.Parse()

	if *planID == "" {
		log.Fatal("usage: export -plan <id> [-out <file.pdf>]")
	}

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

	var s3Client renderer.S3Getter
	if cfg.NeedsS3() {
		s3cfg, err := config.NewS3Config(ctx)
		if err != nil {
			log.Fatalf("Failed to configure S3 assets: %v", err)
		}
		s3Client = s3cfg.Client
	}
	assets := renderer.NewBrandAssets(cfg.CoverImageURL, cfg.LogoImageURL, s3Client)

	planner := service.NewPlannerService(plans, foods, renderer.New(assets))

	draft, err := planner.LoadDraft(ctx, *planID)
	if err != nil {
		log.Fatalf("Loading plan: %v", err)
	}

	result, err := planner.Export(ctx, draft)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	path := *outPath
	if path == "" {
		path = result.Filename
	}
	if err := os.WriteFile(path, result.PDF, 0o644); err != nil {
		log.Fatalf("Writing %s: %v", path, err)
	}
	log.Printf("Wrote %s (%d pages, %d bytes)", path, result.Pages, len(result.PDF))
}
