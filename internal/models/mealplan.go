package models

import "time"

// PlanCategory classifies a whole meal plan.
type PlanCategory string

const (
	PlanCategoryNormal     PlanCategory = "Normal"
	PlanCategoryLiverReset PlanCategory = "Liver Reset"
)

// Valid reports whether the category is one of the known values.
func (c PlanCategory) Valid() bool {
	return c == PlanCategoryNormal || c == PlanCategoryLiverReset
}

// MealPlan is a client's plan. A plan owns its weeks exclusively.
type MealPlan struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	ClientName string         `json:"client_name"`
	CreatedAt  time.Time      `json:"created_at"`
	Weeks      []MealPlanWeek `json:"weeks"`
	Category   PlanCategory   `json:"category"`
}

// RecordID returns the plan's identity for the record store.
func (p MealPlan) RecordID() string { return p.ID }

// Stamped returns a copy of the plan with a fresh identity and creation time.
func (p MealPlan) Stamped(id string, createdAt time.Time) MealPlan {
	p.ID = id
	p.CreatedAt = createdAt
	if p.Weeks == nil {
		p.Weeks = []MealPlanWeek{}
	}
	return p
}

// FindWeek returns the week with the given id, or nil.
func (p *MealPlan) FindWeek(weekID string) *MealPlanWeek {
	for i := range p.Weeks {
		if p.Weeks[i].ID == weekID {
			return &p.Weeks[i]
		}
	}
	return nil
}

// MealPlanWeek groups the meal slots of one week. WeekNumber is a display
// label assigned as count+1 at append time, not guaranteed contiguous.
type MealPlanWeek struct {
	ID         string         `json:"id"`
	WeekNumber int            `json:"week_number"`
	Meals      []MealPlanMeal `json:"meals"`
}

// MealFor returns the meal slot matching (day, mealType), or nil. At most one
// slot exists per pair.
func (w *MealPlanWeek) MealFor(day int, mealType MealType) *MealPlanMeal {
	for i := range w.Meals {
		if w.Meals[i].DayOfWeek == day && w.Meals[i].MealType == mealType {
			return &w.Meals[i]
		}
	}
	return nil
}

// MealPlanMeal is one slot of a week's grid, addressed by (day_of_week,
// meal_type). FoodEntryIDs are weak references into the catalog; dangling ids
// are expected and resolved to a fallback label at render time.
type MealPlanMeal struct {
	ID              string   `json:"id"`
	DayOfWeek       int      `json:"day_of_week"`
	MealType        MealType `json:"meal_type"`
	FoodEntryIDs    []string `json:"food_entry_ids"`
	CustomMealTexts []string `json:"custom_meal_texts"`
	Notes           string   `json:"notes,omitempty"`

	// Fields of the retired singular meal shape. Read during migration,
	// never written back.
	LegacyFoodEntryID    string `json:"food_entry_id,omitempty"`
	LegacyCustomMeal     string `json:"custom_meal,omitempty"`
	LegacyCustomMealText string `json:"custom_meal_text,omitempty"`
}

// IsEmpty reports whether the slot carries no content and should be removed
// rather than kept as a placeholder.
func (m *MealPlanMeal) IsEmpty() bool {
	return len(m.FoodEntryIDs) == 0 && len(m.CustomMealTexts) == 0
}
