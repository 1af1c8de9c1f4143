package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/purplefit/purplefit-v2/backend/internal/models"
	"github.com/purplefit/purplefit-v2/backend/internal/store"
)

// catalogThreshold is the "still the old/incomplete default set" heuristic:
// a food collection shorter than this is overwritten wholesale with the
// built-in catalog.
const catalogThreshold = 100

// Seeder populates the store with default content on first run. Best-effort:
// two processes seeding at once can race, which the single-operator model
// accepts.
type Seeder struct {
	foods *store.Collection[models.FoodEntry]
	plans *store.Collection[models.MealPlan]
}

// NewSeeder creates a Seeder over the two collections.
func NewSeeder(foods *store.Collection[models.FoodEntry], plans *store.Collection[models.MealPlan]) *Seeder {
	return &Seeder{foods: foods, plans: plans}
}

// Run seeds the food catalog and a sample plan where needed.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedCatalog(ctx); err != nil {
		return fmt.Errorf("seeding food catalog: %w", err)
	}
	if err := s.seedSamplePlan(ctx); err != nil {
		return fmt.Errorf("seeding sample plan: %w", err)
	}
	return nil
}

func (s *Seeder) seedCatalog(ctx context.Context) error {
	existing := s.foods.List(ctx)
	if len(existing) >= catalogThreshold {
		return nil
	}

	catalog := DefaultCatalog()
	stamped := make([]models.FoodEntry, 0, len(catalog))
	for _, entry := range catalog {
		stamped = append(stamped, entry.Stamped(s.foods.NewID(), s.foods.Now()))
	}
	if err := s.foods.Overwrite(ctx, stamped); err != nil {
		return err
	}
	log.Printf("[Seeder] wrote default food catalog (%d entries, had %d)", len(stamped), len(existing))
	return nil
}

func (s *Seeder) seedSamplePlan(ctx context.Context) error {
	if len(s.plans.List(ctx)) > 0 {
		return nil
	}

	plan := models.MealPlan{
		Title:      "Purple Fit Sample Meal Plan",
		ClientName: "Sample Client",
		Category:   models.PlanCategoryNormal,
		Weeks: []models.MealPlanWeek{
			{ID: s.plans.NewID(), WeekNumber: 1, Meals: []models.MealPlanMeal{}},
		},
	}
	created, err := s.plans.Create(ctx, plan)
	if err != nil {
		return err
	}
	log.Printf("[Seeder] created sample meal plan %s", created.ID)
	return nil
}
