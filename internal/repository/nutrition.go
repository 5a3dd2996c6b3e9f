package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/willythepapi/FITART-v1/internal/database"
	"github.com/willythepapi/FITART-v1/internal/models"
)

// NutritionRepository stores logged meals.
type NutritionRepository struct {
	base
}

var _ INutritionRepository = (*NutritionRepository)(nil)

// GetMeals returns every meal in storage order.
func (r *NutritionRepository) GetMeals(ctx context.Context) ([]models.Meal, error) {
	return database.GetTable(ctx, r.store, database.Meals)
}

// GetMealByID returns one meal.
func (r *NutritionRepository) GetMealByID(ctx context.Context, id string) (models.Meal, error) {
	meal, err := database.FindOne(ctx, r.store, database.Meals, byMealID(id))
	if err != nil {
		return meal, fmt.Errorf("meal %s: %w", id, err)
	}
	return meal, nil
}

// GetMealsByDate returns the meals whose timestamp falls on date in the
// repository's time zone, newest first.
func (r *NutritionRepository) GetMealsByDate(ctx context.Context, date string) ([]models.Meal, error) {
	start, end, err := r.dayBounds(date)
	if err != nil {
		return nil, err
	}
	meals, err := database.Find(ctx, r.store, database.Meals, func(m models.Meal) bool {
		return m.Timestamp >= start && m.Timestamp <= end
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(meals, func(i, j int) bool {
		return meals[i].Timestamp > meals[j].Timestamp
	})
	return meals, nil
}

// AddMeal stores a meal stamped with the current time.
func (r *NutritionRepository) AddMeal(ctx context.Context, in models.MealInput) (models.Meal, error) {
	meal := models.Meal{
		ID:        newID("meal"),
		FoodID:    in.FoodID,
		Grams:     in.Grams,
		Name:      in.Name,
		Calories:  in.Calories,
		Protein:   in.Protein,
		Carbs:     in.Carbs,
		Fat:       in.Fat,
		Timestamp: r.now().UnixMilli(),
	}
	return database.Insert(ctx, r.store, database.Meals, meal)
}

// UpdateMeal merges patch into a stored meal.
func (r *NutritionRepository) UpdateMeal(ctx context.Context, id string, patch models.MealPatch) (models.Meal, error) {
	meal, err := database.Update(ctx, r.store, database.Meals, byMealID(id), patch)
	if errors.Is(err, ErrNotFound) {
		return meal, fmt.Errorf("meal not found for update: %w", err)
	}
	return meal, err
}

// DeleteMeal removes a meal. Deleting a missing meal is not an error.
func (r *NutritionRepository) DeleteMeal(ctx context.Context, id string) error {
	_, err := database.Delete(ctx, r.store, database.Meals, byMealID(id))
	return err
}

func byMealID(id string) database.Filter[models.Meal] {
	return func(m models.Meal) bool { return m.ID == id }
}
