package service

import (
	"context"

	"github.com/purplefit/purplefit-v2/backend/internal/models"
	"github.com/purplefit/purplefit-v2/backend/internal/renderer"
	"github.com/purplefit/purplefit-v2/backend/internal/types"
)

// IAuthService defines the interface for operator authentication
type IAuthService interface {
	Login(email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IFoodService defines the interface for food entry operations
type IFoodService interface {
	ListFoods(ctx context.Context) []models.FoodEntry
	GetFood(ctx context.Context, id string) *models.FoodEntry
	CreateFood(ctx context.Context, entry models.FoodEntry) (models.FoodEntry, error)
	UpdateFood(ctx context.Context, id string, patch models.FoodEntryPatch) (*models.FoodEntry, error)
	DeleteFood(ctx context.Context, id string) (bool, error)
}

// IPlannerService defines the interface for meal plan operations
type IPlannerService interface {
	ListPlans(ctx context.Context) []models.MealPlan
	CreatePlan(ctx context.Context, plan models.MealPlan) (models.MealPlan, error)
	DeletePlan(ctx context.Context, id string) (bool, error)
	LoadDraft(ctx context.Context, id string) (*Draft, error)
	Save(ctx context.Context, d *Draft) error
	Export(ctx context.Context, d *Draft) (*renderer.Result, error)
}

// DocumentRenderer produces a paginated PDF document from a meal plan.
type DocumentRenderer interface {
	Render(ctx context.Context, plan models.MealPlan, foods []models.FoodEntry) (*renderer.Result, error)
}
