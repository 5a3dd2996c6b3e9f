package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/willythepapi/FITART-v1/internal/models"
	"github.com/willythepapi/FITART-v1/internal/repository"
)

// GetWorkoutsUseCase lists workouts, optionally filtered.
type GetWorkoutsUseCase struct {
	workouts repository.IWorkoutRepository
}

func (uc *GetWorkoutsUseCase) Execute(ctx context.Context, filters models.WorkoutFilters) ([]models.Workout, error) {
	workouts, err := uc.workouts.GetWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	query := strings.ToLower(strings.TrimSpace(filters.ExerciseName))
	if query == "" {
		return workouts, nil
	}

	out := []models.Workout{}
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			if strings.Contains(strings.ToLower(ex.Name), query) {
				out = append(out, w)
				break
			}
		}
	}
	return out, nil
}

// AddWorkoutUseCase creates a workout with its exercises.
type AddWorkoutUseCase struct {
	workouts repository.IWorkoutRepository
}

func (uc *AddWorkoutUseCase) Execute(ctx context.Context, in models.WorkoutInput) (models.Workout, error) {
	if err := validateWorkout(in); err != nil {
		return models.Workout{}, err
	}
	return uc.workouts.AddWorkout(ctx, in)
}

// UpdateWorkoutUseCase replaces a workout and its full exercise list.
type UpdateWorkoutUseCase struct {
	workouts repository.IWorkoutRepository
}

func (uc *UpdateWorkoutUseCase) Execute(ctx context.Context, id string, in models.WorkoutInput) (models.Workout, error) {
	if err := validateWorkout(in); err != nil {
		return models.Workout{}, err
	}
	return uc.workouts.UpdateWorkout(ctx, id, in)
}

func validateWorkout(in models.WorkoutInput) error {
	if in.Category != "" && !models.IsWorkoutCategory(in.Category) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, in.Category)
	}
	return nil
}

// CompleteWorkoutUseCase marks a workout completed on a date.
type CompleteWorkoutUseCase struct {
	progress repository.IProgressRepository
}

func (uc *CompleteWorkoutUseCase) Execute(ctx context.Context, date, workoutID string) (models.DailyProgress, error) {
	return uc.progress.CompleteWorkout(ctx, date, workoutID)
}

// GetTodayWorkoutUseCase returns the workout planned for today.
type GetTodayWorkoutUseCase struct {
	plans    repository.IWeeklyPlanRepository
	workouts repository.IWorkoutRepository
	clock    clock
}

// Execute returns nil on a rest day.
func (uc *GetTodayWorkoutUseCase) Execute(ctx context.Context) (*models.Workout, error) {
	day := DayOfWeek(uc.clock.local())
	plan, err := uc.plans.GetForDay(ctx, day)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	workout, err := uc.workouts.GetWorkout(ctx, plan.WorkoutID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &workout, nil
}
