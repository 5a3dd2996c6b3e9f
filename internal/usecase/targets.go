package usecase

import (
	"math"

	"github.com/willythepapi/FITART-v1/internal/models"
)

var activityFactors = map[string]float64{
	models.ActivityLow:    1.2,
	models.ActivityMedium: 1.55,
	models.ActivityHigh:   1.9,
}

// waterPerKg is the daily water goal in ml per kg of body weight.
const waterPerKg = 35

// TargetsInput holds the body metrics the daily targets are derived from.
type TargetsInput struct {
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activityLevel"`
}

// TargetsFromUser extracts the metrics of u.
func TargetsFromUser(u models.User) TargetsInput {
	return TargetsInput{
		Weight:        u.Weight,
		Height:        u.Height,
		Age:           u.Age,
		Gender:        u.Gender,
		ActivityLevel: u.ActivityLevel,
	}
}

// DailyTargets are the suggested calorie (kcal) and water (ml) goals.
type DailyTargets struct {
	CalorieGoal int `json:"calorieGoal"`
	WaterGoal   int `json:"waterGoal"`
}

// CalculateDailyTargetsUseCase computes daily targets with the
// Mifflin-St Jeor equation. It does no I/O.
type CalculateDailyTargetsUseCase struct{}

// Execute returns zero targets when weight, height or age is missing or the
// activity level is unknown.
func (uc *CalculateDailyTargetsUseCase) Execute(in TargetsInput) DailyTargets {
	factor, ok := activityFactors[in.ActivityLevel]
	if in.Weight <= 0 || in.Height <= 0 || in.Age <= 0 || !ok {
		return DailyTargets{}
	}

	bmr := 10*in.Weight + 6.25*in.Height - 5*float64(in.Age)
	if in.Gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	return DailyTargets{
		CalorieGoal: int(math.Round(bmr * factor)),
		WaterGoal:   int(math.Round(in.Weight * waterPerKg)),
	}
}
