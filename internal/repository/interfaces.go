package repository

import (
	"context"

	"github.com/willythepapi/FITART-v1/internal/models"
)

// IUnitOfWork runs a group of repository calls as one atomic write.
type IUnitOfWork interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// IUserRepository defines access to the user profile and its weight log
type IUserRepository interface {
	GetUser(ctx context.Context) (models.User, error)
	UpdateUser(ctx context.Context, patch models.UserPatch) (models.User, error)
	GetWeightHistory(ctx context.Context) ([]models.WeightHistory, error)
	AddWeightEntry(ctx context.Context, weight float64, date string) (models.WeightHistory, error)
}

// IWorkoutRepository defines access to workouts and their exercises
type IWorkoutRepository interface {
	GetWorkouts(ctx context.Context) ([]models.Workout, error)
	GetWorkout(ctx context.Context, id string) (models.Workout, error)
	AddWorkout(ctx context.Context, in models.WorkoutInput) (models.Workout, error)
	UpdateWorkout(ctx context.Context, id string, in models.WorkoutInput) (models.Workout, error)
}

// INutritionRepository defines access to logged meals
type INutritionRepository interface {
	GetMeals(ctx context.Context) ([]models.Meal, error)
	GetMealByID(ctx context.Context, id string) (models.Meal, error)
	GetMealsByDate(ctx context.Context, date string) ([]models.Meal, error)
	AddMeal(ctx context.Context, in models.MealInput) (models.Meal, error)
	UpdateMeal(ctx context.Context, id string, patch models.MealPatch) (models.Meal, error)
	DeleteMeal(ctx context.Context, id string) error
}

// IProgressRepository defines access to the per-day aggregates. Mutators
// only ever apply deltas.
type IProgressRepository interface {
	GetDailyProgress(ctx context.Context, date string) (models.DailyProgress, error)
	EnsureDailyProgress(ctx context.Context, date string) (models.DailyProgress, error)
	GetProgressHistory(ctx context.Context, from, to string) ([]models.DailyProgress, error)
	AddWater(ctx context.Context, date string, amount int) (models.DailyProgress, error)
	CompleteWorkout(ctx context.Context, date, workoutID string) (models.DailyProgress, error)
	UpdateMacros(ctx context.Context, date string, delta models.Macros) (models.DailyProgress, error)
}

// IWeeklyPlanRepository defines access to the day-of-week workout plan
type IWeeklyPlanRepository interface {
	GetAll(ctx context.Context) ([]models.WeeklyWorkoutPlan, error)
	GetForDay(ctx context.Context, day int) (models.WeeklyWorkoutPlan, error)
	SetForDay(ctx context.Context, day int, workoutID string) (models.WeeklyWorkoutPlan, error)
	ClearForDay(ctx context.Context, day int) error
}

// ISettingsRepository defines access to the settings singleton
type ISettingsRepository interface {
	GetSettings(ctx context.Context) (models.AppSettings, error)
	EnsureSettings(ctx context.Context) (models.AppSettings, error)
	UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.AppSettings, error)
}

// IProgressPhotoRepository defines access to progress photos
type IProgressPhotoRepository interface {
	AddPhoto(ctx context.Context, in models.ProgressPhotoInput) (models.ProgressPhoto, error)
	GetPhotos(ctx context.Context) ([]models.ProgressPhoto, error)
}

// ISystemRepository defines whole-database operations
type ISystemRepository interface {
	ClearAllData(ctx context.Context) error
}
