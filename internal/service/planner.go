package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/purplefit/purplefit-v2/backend/internal/models"
	"github.com/purplefit/purplefit-v2/backend/internal/renderer"
	"github.com/purplefit/purplefit-v2/backend/internal/store"
)

var (
	ErrPlanNotFound = errors.New("meal plan not found")
	ErrWeekNotFound = errors.New("week not found in plan")
)

// Draft is an editable working copy of a meal plan. Edits accumulate in memory
// until Save or Export writes them through the planner.
type Draft struct {
	Plan models.MealPlan

	newID store.IDGenerator
}

// SetMealSelection writes a slot's contents at (day, mealType) in the given
// week. When both foodIDs and customTexts are empty the slot is removed; a
// missing slot stays absent. Otherwise the slot is created or overwritten so
// the pair stays unique within the week.
func (d *Draft) SetMealSelection(weekID string, day int, mealType models.MealType, foodIDs, customTexts []string) error {
	week := d.Plan.FindWeek(weekID)
	if week == nil {
		return ErrWeekNotFound
	}

	if len(foodIDs) == 0 && len(customTexts) == 0 {
		kept := week.Meals[:0]
		for _, m := range week.Meals {
			if m.DayOfWeek == day && m.MealType == mealType {
				continue
			}
			kept = append(kept, m)
		}
		week.Meals = kept
		return nil
	}

	if existing := week.MealFor(day, mealType); existing != nil {
		existing.FoodEntryIDs = foodIDs
		existing.CustomMealTexts = customTexts
		return nil
	}

	week.Meals = append(week.Meals, models.MealPlanMeal{
		ID:              d.newID(),
		DayOfWeek:       day,
		MealType:        mealType,
		FoodEntryIDs:    foodIDs,
		CustomMealTexts: customTexts,
	})
	return nil
}

// AddWeek appends an empty week numbered after the current count and returns it.
func (d *Draft) AddWeek() models.MealPlanWeek {
	week := models.MealPlanWeek{
		ID:         d.newID(),
		WeekNumber: len(d.Plan.Weeks) + 1,
		Meals:      []models.MealPlanMeal{},
	}
	d.Plan.Weeks = append(d.Plan.Weeks, week)
	return week
}

// PlannerService manages meal plans and their export to PDF.
type PlannerService struct {
	plans    *store.Collection[models.MealPlan]
	foods    *store.Collection[models.FoodEntry]
	renderer DocumentRenderer
}

func NewPlannerService(plans *store.Collection[models.MealPlan], foods *store.Collection[models.FoodEntry], r DocumentRenderer) *PlannerService {
	return &PlannerService{plans: plans, foods: foods, renderer: r}
}

func (s *PlannerService) ListPlans(ctx context.Context) []models.MealPlan {
	return s.plans.List(ctx)
}

func (s *PlannerService) CreatePlan(ctx context.Context, plan models.MealPlan) (models.MealPlan, error) {
	if !plan.Category.Valid() {
		plan.Category = models.PlanCategoryNormal
	}
	return s.plans.Create(ctx, plan)
}

func (s *PlannerService) DeletePlan(ctx context.Context, id string) (bool, error) {
	return s.plans.Delete(ctx, id)
}

// LoadDraft fetches a plan into an editable draft.
func (s *PlannerService) LoadDraft(ctx context.Context, id string) (*Draft, error) {
	plan := s.plans.Get(ctx, id)
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	return &Draft{Plan: *plan, newID: s.plans.NewID}, nil
}

// Save writes the draft's plan back to the store.
func (s *PlannerService) Save(ctx context.Context, d *Draft) error {
	updated, err := s.plans.Replace(ctx, d.Plan)
	if err != nil {
		return fmt.Errorf("failed to save meal plan: %w", err)
	}
	if updated == nil {
		return ErrPlanNotFound
	}
	d.Plan = *updated
	return nil
}

// Export saves the draft, then renders the freshly persisted plan. The render
// always reads the stored copy so the document cannot drift from what was saved.
func (s *PlannerService) Export(ctx context.Context, d *Draft) (*renderer.Result, error) {
	if err := s.Save(ctx, d); err != nil {
		return nil, err
	}
	stored := s.plans.Get(ctx, d.Plan.ID)
	if stored == nil {
		return nil, ErrPlanNotFound
	}
	log.Printf("[Planner] exporting plan %s (%d weeks)", stored.ID, len(stored.Weeks))
	return s.renderer.Render(ctx, *stored, s.foods.List(ctx))
}
