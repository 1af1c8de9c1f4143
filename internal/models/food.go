package models

import "time"

// MealType identifies which of the three daily meals an entry belongs to.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
)

// Valid reports whether the meal type is one of the three known values.
func (m MealType) Valid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner:
		return true
	}
	return false
}

// FoodEntry is one item of the food catalog. Category is a free-form
// classification tag ("Normal", "Liver Reset", "Snack") used only for
// filtering.
type FoodEntry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MealType    MealType  `json:"meal_type"`
	Calories    int       `json:"calories,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Category    string    `json:"category"`
}

// RecordID returns the entry's identity for the record store.
func (e FoodEntry) RecordID() string { return e.ID }

// Stamped returns a copy of the entry with a fresh identity and creation time.
func (e FoodEntry) Stamped(id string, createdAt time.Time) FoodEntry {
	e.ID = id
	e.CreatedAt = createdAt
	return e
}

// FoodEntryPatch is a partial update of a FoodEntry. Nil fields are left
// untouched.
type FoodEntryPatch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	MealType    *MealType `json:"meal_type,omitempty"`
	Calories    *int      `json:"calories,omitempty"`
	Category    *string   `json:"category,omitempty"`
}

// Merged returns the entry with the patch's non-nil fields applied over it.
func (e FoodEntry) Merged(p FoodEntryPatch) FoodEntry {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.MealType != nil {
		e.MealType = *p.MealType
	}
	if p.Calories != nil {
		e.Calories = *p.Calories
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	return e
}
