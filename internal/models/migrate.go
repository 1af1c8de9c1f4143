package models

// Normalize upgrades a plan read from storage to the current schema and
// reports whether anything changed. Meals still in the singular shape get
// their id/text wrapped into one-element lists and the legacy fields cleared;
// already-migrated meals pass through untouched, so the upgrade is idempotent.
func (p *MealPlan) Normalize() bool {
	changed := false
	if p.Category == "" {
		p.Category = PlanCategoryNormal
		changed = true
	}
	if p.Weeks == nil {
		p.Weeks = []MealPlanWeek{}
		changed = true
	}
	for wi := range p.Weeks {
		week := &p.Weeks[wi]
		for mi := range week.Meals {
			meal := &week.Meals[mi]
			if meal.FoodEntryIDs != nil {
				continue
			}
			meal.FoodEntryIDs = []string{}
			if meal.LegacyFoodEntryID != "" {
				meal.FoodEntryIDs = []string{meal.LegacyFoodEntryID}
			}
			text := meal.LegacyCustomMeal
			if text == "" {
				text = meal.LegacyCustomMealText
			}
			meal.CustomMealTexts = []string{}
			if text != "" {
				meal.CustomMealTexts = []string{text}
			}
			meal.LegacyFoodEntryID = ""
			meal.LegacyCustomMeal = ""
			meal.LegacyCustomMealText = ""
			changed = true
		}
	}
	return changed
}

// NormalizePlans is the plans collection's read hook. It drops records with
// no identity and runs the schema upgrade on the rest. The store persists the
// result whenever it reports a change, so a legacy store is rewritten once on
// first read instead of being re-migrated forever.
func NormalizePlans(plans []MealPlan) ([]MealPlan, bool) {
	changed := false
	kept := plans[:0]
	for i := range plans {
		if plans[i].ID == "" {
			changed = true
			continue
		}
		if plans[i].Normalize() {
			changed = true
		}
		kept = append(kept, plans[i])
	}
	return kept, changed
}
