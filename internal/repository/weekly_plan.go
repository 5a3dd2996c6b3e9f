package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/willythepapi/FITART-v1/internal/database"
	"github.com/willythepapi/FITART-v1/internal/models"
)

// WeeklyPlanRepository stores at most one workout per day of the week.
// A day without a row is a rest day.
type WeeklyPlanRepository struct {
	base
}

var _ IWeeklyPlanRepository = (*WeeklyPlanRepository)(nil)

// GetAll returns the plan rows ordered by day.
func (r *WeeklyPlanRepository) GetAll(ctx context.Context) ([]models.WeeklyWorkoutPlan, error) {
	plans, err := database.GetTable(ctx, r.store, database.WeeklyPlans)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].DayOfWeek < plans[j].DayOfWeek
	})
	return plans, nil
}

// GetForDay returns the row for day or ErrNotFound.
func (r *WeeklyPlanRepository) GetForDay(ctx context.Context, day int) (models.WeeklyWorkoutPlan, error) {
	plan, err := database.FindOne(ctx, r.store, database.WeeklyPlans, byDay(day))
	if err != nil {
		return plan, fmt.Errorf("plan for day %d: %w", day, err)
	}
	return plan, nil
}

// SetForDay assigns workoutID to day, overwriting an existing assignment.
func (r *WeeklyPlanRepository) SetForDay(ctx context.Context, day int, workoutID string) (models.WeeklyWorkoutPlan, error) {
	var plan models.WeeklyWorkoutPlan
	err := r.store.Update(ctx, func(d *database.Document) error {
		if updated, ok := database.WeeklyPlans.Update(d, byDay(day), models.WeeklyPlanPatch{WorkoutID: &workoutID}); ok {
			plan = updated
			return nil
		}
		plan = models.WeeklyWorkoutPlan{ID: newID("wp"), DayOfWeek: day, WorkoutID: workoutID}
		database.WeeklyPlans.Insert(d, plan)
		return nil
	})
	return plan, err
}

// ClearForDay removes the assignment for day.
func (r *WeeklyPlanRepository) ClearForDay(ctx context.Context, day int) error {
	_, err := database.Delete(ctx, r.store, database.WeeklyPlans, byDay(day))
	return err
}

func byDay(day int) database.Filter[models.WeeklyWorkoutPlan] {
	return func(p models.WeeklyWorkoutPlan) bool { return p.DayOfWeek == day }
}
