package types

import (
	"time"

	"github.com/willythepapi/FITART-v1/internal/models"
)

// LoginRequest represents the request body for exchanging the passcode for
// a session token
type LoginRequest struct {
	Passcode string `json:"passcode" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// MealRequest logs or replaces a meal. Either FoodID and Grams are set and
// the nutrition is computed from the food table, or the values are given
// directly.
type MealRequest struct {
	Date     string  `json:"date" binding:"required"`
	FoodID   string  `json:"foodId"`
	Grams    float64 `json:"grams"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// FromFood reports whether the nutrition comes from the food table.
func (r MealRequest) FromFood() bool {
	return r.FoodID != "" && r.Name == ""
}

// MealInput returns the directly given values.
func (r MealRequest) MealInput() models.MealInput {
	return models.MealInput{
		FoodID:   r.FoodID,
		Grams:    r.Grams,
		Name:     r.Name,
		Calories: r.Calories,
		Protein:  r.Protein,
		Carbs:    r.Carbs,
		Fat:      r.Fat,
	}
}

// WaterRequest adds water in ml to a day
type WaterRequest struct {
	Amount int `json:"amount" binding:"required"`
}

// CompleteWorkoutRequest marks a workout done. Date defaults to today.
type CompleteWorkoutRequest struct {
	Date string `json:"date"`
}

// WeeklyPlanRequest assigns a workout to a day
type WeeklyPlanRequest struct {
	WorkoutID string `json:"workoutId" binding:"required"`
}

// ChatRequest asks the coach a question
type ChatRequest struct {
	History []models.ChatMessage `json:"history"`
	Message string               `json:"message" binding:"required"`
}
