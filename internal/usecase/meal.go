package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/willythepapi/FITART-v1/internal/models"
	"github.com/willythepapi/FITART-v1/internal/repository"
)

// MealFromFood computes the meal snapshot for grams of the food foodID.
func MealFromFood(foodID string, grams float64) (models.MealInput, error) {
	if grams <= 0 {
		return models.MealInput{}, ErrInvalidGrams
	}
	food, ok := models.FoodByID(foodID)
	if !ok {
		return models.MealInput{}, fmt.Errorf("%w: %s", ErrUnknownFood, foodID)
	}
	return models.NewMealInput(food, grams), nil
}

// AddMealEntryUseCase logs a meal and adds its macros to the day's totals.
// Both writes are committed together.
type AddMealEntryUseCase struct {
	uow       repository.IUnitOfWork
	nutrition repository.INutritionRepository
	progress  repository.IProgressRepository
}

func (uc *AddMealEntryUseCase) Execute(ctx context.Context, date string, in models.MealInput) (models.Meal, error) {
	var meal models.Meal
	err := uc.uow.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		meal, err = uc.nutrition.AddMeal(ctx, in)
		if err != nil {
			return err
		}
		_, err = uc.progress.UpdateMacros(ctx, date, meal.Macros())
		return err
	})
	return meal, err
}

// ExecuteFood logs grams of a food from the food table.
func (uc *AddMealEntryUseCase) ExecuteFood(ctx context.Context, date, foodID string, grams float64) (models.Meal, error) {
	in, err := MealFromFood(foodID, grams)
	if err != nil {
		return models.Meal{}, err
	}
	return uc.Execute(ctx, date, in)
}

// UpdateMealEntryUseCase replaces a meal's values and applies the net macro
// change to the day's totals.
type UpdateMealEntryUseCase struct {
	uow       repository.IUnitOfWork
	nutrition repository.INutritionRepository
	progress  repository.IProgressRepository
}

func (uc *UpdateMealEntryUseCase) Execute(ctx context.Context, date, id string, in models.MealInput) (models.Meal, error) {
	var meal models.Meal
	err := uc.uow.RunInTransaction(ctx, func(ctx context.Context) error {
		previous, err := uc.nutrition.GetMealByID(ctx, id)
		if err != nil {
			return err
		}

		next := previous
		next.FoodID = in.FoodID
		next.Grams = in.Grams
		next.Name = in.Name
		next.Calories = in.Calories
		next.Protein = in.Protein
		next.Carbs = in.Carbs
		next.Fat = in.Fat

		if _, err := uc.progress.UpdateMacros(ctx, date, next.Macros().Sub(previous.Macros())); err != nil {
			return err
		}
		meal, err = uc.nutrition.UpdateMeal(ctx, id, models.PatchFromMeal(next))
		return err
	})
	return meal, err
}

// ExecuteFood changes a meal to grams of a food from the food table.
func (uc *UpdateMealEntryUseCase) ExecuteFood(ctx context.Context, date, id, foodID string, grams float64) (models.Meal, error) {
	in, err := MealFromFood(foodID, grams)
	if err != nil {
		return models.Meal{}, err
	}
	return uc.Execute(ctx, date, id, in)
}

// DeleteMealEntryUseCase removes a meal and subtracts its stored macros from
// the day's totals. Deleting a missing meal is a no-op.
type DeleteMealEntryUseCase struct {
	uow       repository.IUnitOfWork
	nutrition repository.INutritionRepository
	progress  repository.IProgressRepository
}

func (uc *DeleteMealEntryUseCase) Execute(ctx context.Context, date, id string) error {
	return uc.uow.RunInTransaction(ctx, func(ctx context.Context) error {
		meal, err := uc.nutrition.GetMealByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			log.Printf("[Meals] Meal %s not found, nothing to delete", id)
			return nil
		}
		if err != nil {
			return err
		}

		if _, err := uc.progress.UpdateMacros(ctx, date, meal.Macros().Neg()); err != nil {
			return err
		}
		return uc.nutrition.DeleteMeal(ctx, id)
	})
}

// GetMealByIDUseCase returns one meal.
type GetMealByIDUseCase struct {
	nutrition repository.INutritionRepository
}

func (uc *GetMealByIDUseCase) Execute(ctx context.Context, id string) (models.Meal, error) {
	return uc.nutrition.GetMealByID(ctx, id)
}

// GetMealsByDateUseCase returns a day's meals, newest first.
type GetMealsByDateUseCase struct {
	nutrition repository.INutritionRepository
}

func (uc *GetMealsByDateUseCase) Execute(ctx context.Context, date string) ([]models.Meal, error) {
	return uc.nutrition.GetMealsByDate(ctx, date)
}

// SearchFoodsUseCase looks foods up by name.
type SearchFoodsUseCase struct{}

func (uc *SearchFoodsUseCase) Execute(query string) []models.FoodItem {
	return models.SearchFoods(query)
}
