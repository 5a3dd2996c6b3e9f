package usecase

import (
	"context"
	"time"

	"github.com/willythepapi/FITART-v1/internal/models"
	"github.com/willythepapi/FITART-v1/internal/repository"
)

// DayOfWeek maps t to 1=Monday .. 7=Sunday.
func DayOfWeek(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

func validateDay(day int) error {
	if day < 1 || day > 7 {
		return ErrInvalidDay
	}
	return nil
}

// GetWeeklyPlanUseCase returns every planned day, Monday first.
type GetWeeklyPlanUseCase struct {
	plans repository.IWeeklyPlanRepository
}

func (uc *GetWeeklyPlanUseCase) Execute(ctx context.Context) ([]models.WeeklyWorkoutPlan, error) {
	return uc.plans.GetAll(ctx)
}

// GetPlanByDayUseCase returns the plan row for one day.
type GetPlanByDayUseCase struct {
	plans repository.IWeeklyPlanRepository
}

func (uc *GetPlanByDayUseCase) Execute(ctx context.Context, day int) (models.WeeklyWorkoutPlan, error) {
	if err := validateDay(day); err != nil {
		return models.WeeklyWorkoutPlan{}, err
	}
	return uc.plans.GetForDay(ctx, day)
}

// SetWeeklyWorkoutForDayUseCase assigns an existing workout to a day.
type SetWeeklyWorkoutForDayUseCase struct {
	plans    repository.IWeeklyPlanRepository
	workouts repository.IWorkoutRepository
}

func (uc *SetWeeklyWorkoutForDayUseCase) Execute(ctx context.Context, day int, workoutID string) (models.WeeklyWorkoutPlan, error) {
	if err := validateDay(day); err != nil {
		return models.WeeklyWorkoutPlan{}, err
	}
	if _, err := uc.workouts.GetWorkout(ctx, workoutID); err != nil {
		return models.WeeklyWorkoutPlan{}, err
	}
	return uc.plans.SetForDay(ctx, day, workoutID)
}

// ClearWeeklyWorkoutForDayUseCase turns a day into a rest day.
type ClearWeeklyWorkoutForDayUseCase struct {
	plans repository.IWeeklyPlanRepository
}

func (uc *ClearWeeklyWorkoutForDayUseCase) Execute(ctx context.Context, day int) error {
	if err := validateDay(day); err != nil {
		return err
	}
	return uc.plans.ClearForDay(ctx, day)
}
