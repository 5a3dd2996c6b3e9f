package models

import (
	"fmt"
	"strconv"
)

// Meal is a logged food portion. The macro values are a snapshot taken when
// the meal was logged and are never recomputed from the food table.
type Meal struct {
	ID        string  `json:"id"`
	FoodID    string  `json:"foodId"`
	Grams     float64 `json:"grams"`
	Name      string  `json:"name"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
	Timestamp int64   `json:"timestamp"`
}

// Macros returns the meal's nutrition snapshot.
func (m Meal) Macros() Macros {
	return Macros{Calories: m.Calories, Protein: m.Protein, Carbs: m.Carbs, Fat: m.Fat}
}

// MealInput is a meal before it gets an id and timestamp.
type MealInput struct {
	FoodID   string  `json:"foodId"`
	Grams    float64 `json:"grams"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// NewMealInput computes a meal snapshot for grams of food.
func NewMealInput(food FoodItem, grams float64) MealInput {
	ratio := grams / 100
	return MealInput{
		FoodID:   food.ID,
		Grams:    grams,
		Name:     fmt.Sprintf("%s (%sg)", food.Name, strconv.FormatFloat(grams, 'f', -1, 64)),
		Calories: food.CaloriesPer100g * ratio,
		Protein:  food.Protein * ratio,
		Carbs:    food.Carbs * ratio,
		Fat:      food.Fat * ratio,
	}
}

// MealPatch replaces the editable fields of a stored meal.
type MealPatch struct {
	FoodID   *string
	Grams    *float64
	Name     *string
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64
}

// Apply merges the set fields into m.
func (p MealPatch) Apply(m *Meal) {
	setIf(&m.FoodID, p.FoodID)
	setIf(&m.Grams, p.Grams)
	setIf(&m.Name, p.Name)
	setIf(&m.Calories, p.Calories)
	setIf(&m.Protein, p.Protein)
	setIf(&m.Carbs, p.Carbs)
	setIf(&m.Fat, p.Fat)
}

// PatchFromMeal builds a patch that overwrites every editable field of a
// stored meal with the values of m.
func PatchFromMeal(m Meal) MealPatch {
	return MealPatch{
		FoodID:   &m.FoodID,
		Grams:    &m.Grams,
		Name:     &m.Name,
		Calories: &m.Calories,
		Protein:  &m.Protein,
		Carbs:    &m.Carbs,
		Fat:      &m.Fat,
	}
}

// Macros is a signed nutrition amount, used as a delta on DailyProgress.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Sub returns m - o field by field.
func (m Macros) Sub(o Macros) Macros {
	return Macros{
		Calories: m.Calories - o.Calories,
		Protein:  m.Protein - o.Protein,
		Carbs:    m.Carbs - o.Carbs,
		Fat:      m.Fat - o.Fat,
	}
}

// Neg returns -m.
func (m Macros) Neg() Macros {
	return Macros{}.Sub(m)
}
