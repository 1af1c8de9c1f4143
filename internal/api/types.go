package api

import "github.com/purplefit/purplefit-v2/backend/internal/models"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type CreateFoodRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	MealType    models.MealType `json:"meal_type" binding:"required"`
	Calories    int             `json:"calories"`
	Category    string          `json:"category"`
}

type CreatePlanRequest struct {
	Title      string              `json:"title" binding:"required"`
	ClientName string              `json:"client_name"`
	Category   models.PlanCategory `json:"category"`
}

type UpdatePlanRequest struct {
	Title      string                `json:"title" binding:"required"`
	ClientName string                `json:"client_name"`
	Category   models.PlanCategory   `json:"category"`
	Weeks      []models.MealPlanWeek `json:"weeks"`
}

type SetMealsRequest struct {
	DayOfWeek       int             `json:"day_of_week" binding:"required,min=1,max=7"`
	MealType        models.MealType `json:"meal_type" binding:"required"`
	FoodEntryIDs    []string        `json:"food_entry_ids"`
	CustomMealTexts []string        `json:"custom_meal_texts"`
}
