package models

import "strings"

// MaxFoodResults caps SearchFoods.
const MaxFoodResults = 50

// FoodItem is read-only reference data with macros per 100g.
type FoodItem struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	Protein         float64 `json:"protein"`
	Carbs           float64 `json:"carbs"`
	Fat             float64 `json:"fat"`
}

var foods = []FoodItem{
	{ID: "chicken_breast", Name: "Chicken Breast", CaloriesPer100g: 165, Protein: 31, Carbs: 0, Fat: 3.6},
	{ID: "turkey_breast", Name: "Turkey Breast", CaloriesPer100g: 135, Protein: 29, Carbs: 0, Fat: 1},
	{ID: "egg", Name: "Egg", CaloriesPer100g: 155, Protein: 13, Carbs: 1.1, Fat: 11},
	{ID: "egg_white", Name: "Egg White", CaloriesPer100g: 52, Protein: 11, Carbs: 0.7, Fat: 0.2},
	{ID: "egg_yolk", Name: "Egg Yolk", CaloriesPer100g: 322, Protein: 16, Carbs: 3.6, Fat: 27},
	{ID: "oats", Name: "Oats", CaloriesPer100g: 379, Protein: 13, Carbs: 68, Fat: 7},
	{ID: "white_rice", Name: "White Rice (Cooked)", CaloriesPer100g: 130, Protein: 2.7, Carbs: 28, Fat: 0.3},
	{ID: "bulgur", Name: "Bulgur (Cooked)", CaloriesPer100g: 83, Protein: 3.1, Carbs: 18.6, Fat: 0.2},
	{ID: "pasta", Name: "Pasta (Cooked)", CaloriesPer100g: 131, Protein: 5, Carbs: 25, Fat: 1.1},
	{ID: "sweet_potato", Name: "Sweet Potato", CaloriesPer100g: 86, Protein: 1.6, Carbs: 20, Fat: 0.1},
	{ID: "banana", Name: "Banana", CaloriesPer100g: 96, Protein: 1.1, Carbs: 23, Fat: 0.3},
	{ID: "apple", Name: "Apple", CaloriesPer100g: 52, Protein: 0.3, Carbs: 14, Fat: 0.2},
	{ID: "avocado", Name: "Avocado", CaloriesPer100g: 160, Protein: 2, Carbs: 9, Fat: 15},
	{ID: "almonds", Name: "Almonds", CaloriesPer100g: 579, Protein: 21, Carbs: 22, Fat: 50},
	{ID: "peanut_butter", Name: "Peanut Butter", CaloriesPer100g: 588, Protein: 25, Carbs: 20, Fat: 50},
	{ID: "olive_oil", Name: "Olive Oil", CaloriesPer100g: 884, Protein: 0, Carbs: 0, Fat: 100},
	{ID: "salmon", Name: "Salmon", CaloriesPer100g: 208, Protein: 20, Carbs: 0, Fat: 13},
	{ID: "beef_steak", Name: "Beef Steak", CaloriesPer100g: 250, Protein: 26, Carbs: 0, Fat: 15},
	{ID: "minced_beef", Name: "Minced Beef (15% Fat)", CaloriesPer100g: 240, Protein: 25, Carbs: 0, Fat: 15},
	{ID: "grilled_kofte", Name: "Grilled Kofte", CaloriesPer100g: 250, Protein: 17, Carbs: 3, Fat: 18},
	{ID: "chicken_doner", Name: "Chicken Doner", CaloriesPer100g: 190, Protein: 18, Carbs: 2, Fat: 12},
	{ID: "protein_powder", Name: "Whey Protein Powder", CaloriesPer100g: 400, Protein: 80, Carbs: 5, Fat: 6},
}

// Foods returns a copy of the food table.
func Foods() []FoodItem {
	return append([]FoodItem(nil), foods...)
}

// FoodByID looks a food up by id.
func FoodByID(id string) (FoodItem, bool) {
	for _, f := range foods {
		if f.ID == id {
			return f, true
		}
	}
	return FoodItem{}, false
}

// SearchFoods matches query against food names case-insensitively. An empty
// query matches nothing.
func SearchFoods(query string) []FoodItem {
	if query == "" {
		return []FoodItem{}
	}
	q := strings.ToLower(query)
	results := []FoodItem{}
	for _, f := range foods {
		if strings.Contains(strings.ToLower(f.Name), q) {
			results = append(results, f)
			if len(results) == MaxFoodResults {
				break
			}
		}
	}
	return results
}
