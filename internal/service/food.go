package service

import (
	"context"

	"github.com/purplefit/purplefit-v2/backend/internal/models"
	"github.com/purplefit/purplefit-v2/backend/internal/store"
)

// FoodService manages the food entry catalog.
type FoodService struct {
	foods *store.Collection[models.FoodEntry]
}

func NewFoodService(foods *store.Collection[models.FoodEntry]) *FoodService {
	return &FoodService{foods: foods}
}

func (s *FoodService) ListFoods(ctx context.Context) []models.FoodEntry {
	return s.foods.List(ctx)
}

func (s *FoodService) GetFood(ctx context.Context, id string) *models.FoodEntry {
	return s.foods.Get(ctx, id)
}

func (s *FoodService) CreateFood(ctx context.Context, entry models.FoodEntry) (models.FoodEntry, error) {
	return s.foods.Create(ctx, entry)
}

// UpdateFood applies a partial update. Returns nil when no entry has the given id.
func (s *FoodService) UpdateFood(ctx context.Context, id string, patch models.FoodEntryPatch) (*models.FoodEntry, error) {
	existing := s.foods.Get(ctx, id)
	if existing == nil {
		return nil, nil
	}
	merged := existing.Merged(patch)
	return s.foods.Replace(ctx, merged)
}

// DeleteFood removes an entry. Meal plans referencing the entry keep their
// references; the renderer resolves them to a placeholder label.
func (s *FoodService) DeleteFood(ctx context.Context, id string) (bool, error) {
	return s.foods.Delete(ctx, id)
}
