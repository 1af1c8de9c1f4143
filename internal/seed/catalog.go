package seed

import "github.com/purplefit/purplefit-v2/backend/internal/models"

// catalogItem is a catalog food before identity stamping.
type catalogItem struct {
	Name        string
	Description string
	MealType    models.MealType
	Calories    int
}

var normalFoods = []catalogItem{
	{"Celery + Cucumber + Ginger Juice", "Fresh juice on empty stomach", models.MealTypeBreakfast, 50},
	{"Warm Water with Lemon", "2 cups warm water with lemon slice", models.MealTypeBreakfast, 10},
	{"Hard Boiled Eggs (2)", "Two hard boiled eggs", models.MealTypeBreakfast, 140},
	{"Steel Cut Jumbo Oatmeal", "Bowl with 2 tsp honey and banana topping", models.MealTypeBreakfast, 300},
	{"3 Eggs Omelette with Mixed Veggies", "Omelette with vegetables of choice", models.MealTypeBreakfast, 250},
	{"Whole Wheat Bread (1 slice)", "One slice whole wheat bread", models.MealTypeBreakfast, 80},
	{"Half Avocado", "Half medium avocado", models.MealTypeBreakfast, 120},
	{"Overnight Oats", "With chia seeds and strawberries", models.MealTypeBreakfast, 280},
	{"Celery + Cucumber + Ginger Juice with Boiled Eggs and Oatmeal", "Celery + cucumber + ginger juice, boiled eggs, steel-cut jumbo oatmeal with honey and banana", models.MealTypeBreakfast, 500},
	{"Celery + Cucumber + Ginger Juice with Veggie Omelette", "Celery + cucumber + ginger juice, omelette with veggies, avocado, whole wheat bread", models.MealTypeBreakfast, 500},
	{"Celery + Cucumber + Ginger Juice with Overnight Oats", "Celery + cucumber + ginger juice, boiled eggs, overnight oats with honey, chia seeds, strawberries", models.MealTypeBreakfast, 500},
	{"Celery + Cucumber + Ginger Juice with Wheat Bread Omelette", "Celery + cucumber + ginger juice, wheat bread with veggie omelet", models.MealTypeBreakfast, 400},
	{"Mint Leaves + Cucumber + Apple Juice with Wheat Bread", "3 mint leaves + cucumber + apple juice, wheat bread with mixed veggies omelet", models.MealTypeBreakfast, 500},
	{"Whole Wheat Pasta with Mixed Veggies", "2 serving spoons whole wheat pasta with mixed veggies and 2 hard-boiled eggs", models.MealTypeBreakfast, 500},
	{"Moi-moi with Fish and Stir-fried Eggs", "One wrap moi-moi with fish, 2 eggs stir fried with spinach or kale", models.MealTypeBreakfast, 500},
	{"Steel Cut Oats with Strawberry and Almond Milk", "Medium bowl steel cut oats with strawberry/blueberry topping, almond milk, chia seeds", models.MealTypeBreakfast, 500},
	{"Greek Yogurt with Granola", "Plain Greek yogurt with granola, apple and raisin topping", models.MealTypeBreakfast, 500},
	{"Overnight Oats with Peanut Butter", "Overnight oats with almond milk, chia seeds, banana and peanut butter", models.MealTypeBreakfast, 500},
	{"Chicken Breast Sandwich", "Sandwich with whole wheat bread, shredded chicken breast, lettuce and half avocado", models.MealTypeBreakfast, 500},
	{"Protein Shake", "Banana, almond milk, overnight oats, blueberries, whey protein powder", models.MealTypeBreakfast, 600},
	{"Unripe Plantain Porridge", "Small plate with little red oil", models.MealTypeLunch, 200},
	{"Grilled Fish", "Fresh grilled fish portion", models.MealTypeLunch, 150},
	{"Grilled Chicken", "200g grilled chicken breast", models.MealTypeLunch, 200},
	{"Green Vegetables", "Any green vegetables of choice", models.MealTypeLunch, 50},
	{"Minced Lean Beef (100g)", "Stir fried with vegetables", models.MealTypeLunch, 180},
	{"Rice (1 serving spoon)", "One serving spoon of rice", models.MealTypeLunch, 100},
	{"Mixed Vegetables Sauce", "With chicken and rice", models.MealTypeLunch, 150},
	{"Beans (small bowl)", "Small bowl with little oil", models.MealTypeLunch, 180},
	{"Jollof Rice (1 serving spoon)", "One serving spoon jollof rice", models.MealTypeLunch, 120},
	{"Unripe Plantain Porridge with Fish/Chicken", "Unripe plantain porridge with grilled fish or chicken and green vegetables", models.MealTypeLunch, 500},
	{"Minced Beef Stir-fry with Rice", "Minced lean beef with carrots, bell peppers, green beans, stir-fried in olive oil, served with rice", models.MealTypeLunch, 500},
	{"Mixed Vegetable Sauce with Chicken and Rice", "Mixed vegetable sauce with chicken and rice", models.MealTypeLunch, 500},
	{"Beans with Titus Fish and Greens", "Beans with Titus fish and green leafy vegetables", models.MealTypeLunch, 500},
	{"Moi-moi with Fish and Grilled Plantain", "One wrap moi-moi with fish, one finger grilled plantain", models.MealTypeLunch, 500},
	{"Vegetable Soup with Fish and Swallow", "Medium bowl vegetable soup (Afang, okra, Edikaikon or Eforiro) with fish, meat, crayfish and swallow", models.MealTypeLunch, 500},
	{"Sweet Potato with Vegetable Sauce", "Vegetable sauce with green leafy vegetables, tomatoes, peppers, fish, crayfish with 2 medium sweet potatoes", models.MealTypeLunch, 500},
	{"Rice and Mixed Vegetables with Fish", "1 serving spoonful rice and mixed vegetables with grilled fish", models.MealTypeLunch, 500},
	{"Pasta and Vegetables with Chicken", "1 serving spoonful pasta and vegetables with chicken breast", models.MealTypeLunch, 500},
	{"Rice and Beans Jollof with Vegetables", "2 serving spoonfuls rice and beans jollof with green leafy vegetables and chicken breast", models.MealTypeLunch, 500},
	{"Cabbage and Mixed Peppers Stir-fry with Jollof Rice", "Cabbage, carrot and mixed peppers stir fried with olive oil, jollof rice and chicken", models.MealTypeLunch, 500},
	{"Grilled Plantain with Vegetable and Fish Sauce", "1 finger grilled/boiled plantain with vegetable and fish sauce", models.MealTypeLunch, 600},
	{"Fish Pepper Soup", "Fish pepper soup", models.MealTypeDinner, 200},
	{"Goat Meat Pepper Soup", "Goat meat pepper soup", models.MealTypeDinner, 250},
	{"Chicken Pepper Soup", "Chicken pepper soup", models.MealTypeDinner, 220},
	{"Okra Soup", "With green leafy vegetables and fish", models.MealTypeDinner, 180},
	{"Boiled Yam (2 slices)", "Two slices boiled yam", models.MealTypeDinner, 160},
	{"Tomatoes and Spinach Sauce", "With 3 eggs", models.MealTypeDinner, 200},
	{"Sweet Potato Porridge", "Medium sized with fish and spinach", models.MealTypeDinner, 220},
	{"Oolong Tea", "One cup served warm before bedtime", models.MealTypeDinner, 5},
	{"Fish or Goat Meat Pepper Soup", "Fish or goat meat pepper soup", models.MealTypeDinner, 500},
	{"Okra Soup with Fish and Vegetables", "Okra soup with leafy vegetables, fish, chicken, crayfish", models.MealTypeDinner, 500},
	{"Boiled Yam with Eggs and Spinach", "Boiled yam with eggs, tomato sauce, and spinach", models.MealTypeDinner, 500},
	{"Jollof Rice with Stir-fried Veggies", "Jollof rice with stir-fried veggies and fish or chicken", models.MealTypeDinner, 500},
	{"Sweet Potato Porridge with Fish", "Two medium sweet potato porridge with fish, red oil and spinach/green leafy veggie", models.MealTypeDinner, 500},
	{"Tortilla Wrap with Chicken", "Tortilla wrap with half avocado, cooked chicken breast, lettuce, tomato", models.MealTypeDinner, 500},
	{"Okra Soup with Shrimps and Chicken", "Okra soup with shrimps, chicken, Ugu/Uziza leaves in high volume", models.MealTypeDinner, 500},
	{"Chicken Pepper Soup with Yam", "Chicken pepper soup with yam slice (100g)", models.MealTypeDinner, 500},
	{"Porridge Beans with Fish and Plantain", "Porridge beans with fish and 1/2 finger grilled/boiled plantain", models.MealTypeDinner, 500},
	{"Fish Pepper Soup with Unripe Plantain", "Fish pepper soup cooked with half finger unripe plantain", models.MealTypeDinner, 400},
	{"Mixed Vegetables and Chicken Stir Fry in Pitta", "Mixed vegetables and chicken stir fry wrapped in one pitta bread", models.MealTypeDinner, 400},
	{"Fish Pepper Soup with Yam", "Fish pepper soup with 100g yam", models.MealTypeDinner, 500},
	{"Tortilla Shawarma", "Tortilla shawarma (stir fried egg, mixed vegetables, minced meat) wrap", models.MealTypeDinner, 500},
	{"Vegetable Soup with Swallow", "Plate of vegetable soup with fish and fist sized swallow", models.MealTypeDinner, 500},
	{"Fish and Vegetable Sauce with Plantain", "Fish and vegetable sauce with 1/2 finger grilled/boiled plantain", models.MealTypeDinner, 500},
}

var liverResetFoods = []catalogItem{
	{"Green cleanse smoothie", "celery + cucumber + ginger + lemon", models.MealTypeBreakfast, 110},
	{"Turmeric flush smoothie", "carrot + turmeric + lemon + black pepper", models.MealTypeBreakfast, 90},
	{"Beetroot cleanse juice", "beetroot + carrot + ginger + lemon", models.MealTypeBreakfast, 95},
	{"Oats with chia seeds + fruit", "Oats with chia seeds, skimmed milk, and fruit", models.MealTypeBreakfast, 425},
	{"Greek yogurt with almonds & seeds", "Greek yogurt with almonds, chia seeds, flax seeds, blueberries", models.MealTypeBreakfast, 475},
	{"Wheat bread with boiled eggs/omelet", "Wheat bread with boiled eggs or omelet", models.MealTypeBreakfast, 425},
	{"Moi-moi wrap (fish or beef)", "One wrap of moi-moi with fish or beef filling", models.MealTypeBreakfast, 275},
	{"Egg muffins (egg whites + veggies)", "Muffins made with egg whites and assorted vegetables", models.MealTypeBreakfast, 225},
	{"Sandwich (chicken, avocado, cheese)", "Sandwich with chicken, avocado, lettuce, and cheese", models.MealTypeBreakfast, 475},
	{"Protein/Berry/Chocolate Smoothies", "protein, berry flax, chocolate avocado, or nut cacao", models.MealTypeBreakfast, 450},
	{"Oat pancakes (banana + oats)", "Pancakes made with banana, oats, egg, and skim milk", models.MealTypeBreakfast, 375},
	{"Sweet potato porridge", "Sweet potato porridge with fish and spinach", models.MealTypeBreakfast, 475},
	{"Tomato-egg-spinach sauce with plantain", "A savory sauce with eggs and spinach, served with plantain", models.MealTypeBreakfast, 425},
	{"Oat swallow with vegetable soup & fish", "", models.MealTypeLunch, 500},
	{"Vegetable soups with protein", "Okra, efo riro, spinach, ugu, uziza with fish, chicken, prawns, or snails", models.MealTypeLunch, 475},
	{"Beans porridge with mackerel/chicken", "", models.MealTypeLunch, 500},
	{"Brown rice (plain/jollof) with protein", "Brown rice served plain or jollof style with chicken or fish", models.MealTypeLunch, 500},
	{"Unripe plantain porridge", "Porridge made with unripe plantain and fish/mackerel", models.MealTypeLunch, 500},
	{"Yam porridge with ugu & fish", "", models.MealTypeLunch, 500},
	{"Ofada rice with stew & protein", "Ofada rice with a side of stew and chicken/fish", models.MealTypeLunch, 500},
	{"Whole grain pasta with veggies & chicken", "Whole grain pasta or soup with vegetables and chicken", models.MealTypeLunch, 475},
	{"Chicken & bell pepper stir fry", "Served with fonio or rice", models.MealTypeLunch, 500},
	{"Chinese sauce with shrimp & chicken", "Shrimp, chicken, broccoli, and peppers with rice", models.MealTypeLunch, 500},
	{"Curry sauce with protein", "Curry sauce with chicken, turkey, or fish", models.MealTypeLunch, 500},
	{"Tortilla wrap (lunch)", "Wrap with chicken, avocado, lettuce, and veggies", models.MealTypeLunch, 475},
	{"Fish pepper soup", "with yam, plantain, spinach, or scent leaves", models.MealTypeDinner, 425},
	{"Goat meat pepper soup with yam", "", models.MealTypeDinner, 500},
	{"Okra soup (dinner)", "with fish, chicken, prawns, or snail", models.MealTypeDinner, 475},
	{"Spinach & tomato sauce with protein", "Spinach and tomato sauce with chicken or fish, served with rice", models.MealTypeDinner, 500},
	{"Vegetable soups (dinner)", "Efo riro or veggie stew with snails, shrimps, or chicken", models.MealTypeDinner, 475},
	{"Sweet potato with protein sauce", "Sweet potato with fish, chicken, or spinach sauce", models.MealTypeDinner, 500},
	{"Mixed vegetable stir fry with protein", "Stir fry with chicken, fish, turkey, or shrimp", models.MealTypeDinner, 500},
	{"Shawarma/tortilla wrap (dinner)", "Wrap with chicken and veggies", models.MealTypeDinner, 475},
	{"Fish, tomato & spinach sauce with plantain", "", models.MealTypeDinner, 450},
	{"Grilled turkey with salad & avocado", "", models.MealTypeDinner, 500},
}

// Snacks are meal-type agnostic in the source material; the catalog fans
// each one out across all three meal types so it can be picked anywhere.
var snackFoods = []catalogItem{
	{Name: "Snack: Watermelon (cup)", Calories: 55},
	{Name: "Snack: Pawpaw (cup)", Calories: 70},
	{Name: "Snack: Pineapple (cup)", Calories: 80},
	{Name: "Snack: Apple (medium)", Calories: 95},
	{Name: "Snack: Orange (medium)", Calories: 60},
	{Name: "Snack: Blueberries (100g)", Calories: 57},
	{Name: "Snack: Cucumber (1 cup sliced)", Calories: 15},
	{Name: "Snack: Almonds (10-30g)", Calories: 125},
	{Name: "Snack: Pumpkin seeds (1 tbsp)", Calories: 50},
	{Name: "Snack: Flax seeds (1 tbsp)", Calories: 55},
	{Name: "Snack: Chia seeds (1 tbsp)", Calories: 58},
}

// DefaultCatalog returns the built-in food catalog without identities; the
// seeder stamps ids and timestamps before writing.
func DefaultCatalog() []models.FoodEntry {
	var entries []models.FoodEntry
	for _, item := range normalFoods {
		entries = append(entries, catalogEntry(item, item.MealType, "Normal"))
	}
	for _, item := range liverResetFoods {
		entries = append(entries, catalogEntry(item, item.MealType, "Liver Reset"))
	}
	mealTypes := []models.MealType{models.MealTypeBreakfast, models.MealTypeLunch, models.MealTypeDinner}
	for _, item := range snackFoods {
		for _, mt := range mealTypes {
			entries = append(entries, catalogEntry(item, mt, "Snack"))
		}
	}
	return entries
}

func catalogEntry(item catalogItem, mealType models.MealType, category string) models.FoodEntry {
	return models.FoodEntry{
		Name:        item.Name,
		Description: item.Description,
		MealType:    mealType,
		Calories:    item.Calories,
		Category:    category,
	}
}
