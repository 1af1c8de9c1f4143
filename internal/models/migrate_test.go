package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWrapsLegacyMeal(t *testing.T) {
	raw := []byte(`{
		"id": "p1",
		"title": "Old Plan",
		"weeks": [{
			"id": "w1",
			"week_number": 1,
			"meals": [{
				"id": "m1",
				"day_of_week": 2,
				"meal_type": "lunch",
				"food_entry_id": "f-42"
			}]
		}]
	}`)

	var plan MealPlan
	require.NoError(t, json.Unmarshal(raw, &plan))

	changed := plan.Normalize()
	assert.True(t, changed)

	meal := plan.Weeks[0].Meals[0]
	assert.Equal(t, []string{"f-42"}, meal.FoodEntryIDs)
	assert.Equal(t, []string{}, meal.CustomMealTexts)
	assert.Empty(t, meal.LegacyFoodEntryID)
	assert.Equal(t, PlanCategoryNormal, plan.Category)
}

func TestNormalizePrefersCustomMealOverText(t *testing.T) {
	plan := MealPlan{
		ID:       "p1",
		Category: PlanCategoryNormal,
		Weeks: []MealPlanWeek{{
			ID: "w1",
			Meals: []MealPlanMeal{{
				ID:                   "m1",
				DayOfWeek:            0,
				MealType:             MealTypeBreakfast,
				LegacyCustomMeal:     "Oatmeal with berries",
				LegacyCustomMealText: "stale value",
			}},
		}},
	}

	assert.True(t, plan.Normalize())
	meal := plan.Weeks[0].Meals[0]
	assert.Equal(t, []string{"Oatmeal with berries"}, meal.CustomMealTexts)
	assert.Equal(t, []string{}, meal.FoodEntryIDs)
	assert.Empty(t, meal.LegacyCustomMeal)
	assert.Empty(t, meal.LegacyCustomMealText)
}

func TestNormalizeFallsBackToCustomMealText(t *testing.T) {
	plan := MealPlan{
		ID:       "p1",
		Category: PlanCategoryNormal,
		Weeks: []MealPlanWeek{{
			ID: "w1",
			Meals: []MealPlanMeal{{
				ID:                   "m1",
				MealType:             MealTypeDinner,
				LegacyCustomMealText: "Grilled salmon",
			}},
		}},
	}

	assert.True(t, plan.Normalize())
	assert.Equal(t, []string{"Grilled salmon"}, plan.Weeks[0].Meals[0].CustomMealTexts)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	plan := MealPlan{
		ID: "p1",
		Weeks: []MealPlanWeek{{
			ID: "w1",
			Meals: []MealPlanMeal{{
				ID:                "m1",
				MealType:          MealTypeLunch,
				LegacyFoodEntryID: "f-1",
			}},
		}},
	}

	assert.True(t, plan.Normalize())
	first := plan

	assert.False(t, plan.Normalize(), "second pass must report no change")
	assert.Equal(t, first, plan)
}

func TestNormalizeLeavesMigratedMealsAlone(t *testing.T) {
	plan := MealPlan{
		ID:       "p1",
		Category: PlanCategoryLiverReset,
		Weeks: []MealPlanWeek{{
			ID: "w1",
			Meals: []MealPlanMeal{{
				ID:              "m1",
				MealType:        MealTypeLunch,
				FoodEntryIDs:    []string{"f-1", "f-2"},
				CustomMealTexts: []string{"extra"},
			}},
		}},
	}

	assert.False(t, plan.Normalize())
	assert.Equal(t, []string{"f-1", "f-2"}, plan.Weeks[0].Meals[0].FoodEntryIDs)
}

func TestNormalizePlansDropsEmptyIDs(t *testing.T) {
	plans := []MealPlan{
		{ID: "p1", Category: PlanCategoryNormal, Weeks: []MealPlanWeek{}},
		{ID: ""},
		{ID: "p2", Category: PlanCategoryNormal, Weeks: []MealPlanWeek{}},
	}

	kept, changed := NormalizePlans(plans)
	assert.True(t, changed)
	require.Len(t, kept, 2)
	assert.Equal(t, "p1", kept[0].ID)
	assert.Equal(t, "p2", kept[1].ID)
}

func TestNormalizePlansNoChange(t *testing.T) {
	plans := []MealPlan{
		{ID: "p1", Category: PlanCategoryNormal, Weeks: []MealPlanWeek{}},
	}
	kept, changed := NormalizePlans(plans)
	assert.False(t, changed)
	assert.Len(t, kept, 1)
}
