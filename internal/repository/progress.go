package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/willythepapi/FITART-v1/internal/database"
	"github.com/willythepapi/FITART-v1/internal/models"
)

// ProgressRepository stores one DailyProgress row per calendar day.
// Reads never create rows; EnsureDailyProgress does. The mutators create
// the row for date when it is missing.
type ProgressRepository struct {
	base
}

var _ IProgressRepository = (*ProgressRepository)(nil)

// GetDailyProgress returns the row for date or ErrNotFound.
func (r *ProgressRepository) GetDailyProgress(ctx context.Context, date string) (models.DailyProgress, error) {
	p, err := database.FindOne(ctx, r.store, database.DailyProgress, byDate(date))
	if err != nil {
		return p, fmt.Errorf("progress for %s: %w", date, err)
	}
	return p, nil
}

// EnsureDailyProgress returns the row for date, creating an empty one first
// if there is none.
func (r *ProgressRepository) EnsureDailyProgress(ctx context.Context, date string) (models.DailyProgress, error) {
	p, err := database.FindOne(ctx, r.store, database.DailyProgress, byDate(date))
	if !errors.Is(err, ErrNotFound) {
		return p, err
	}
	return r.apply(ctx, date, func(models.DailyProgress) (models.ProgressPatch, bool) {
		return models.ProgressPatch{}, false
	})
}

// GetProgressHistory returns the rows with from <= date <= to, oldest first.
func (r *ProgressRepository) GetProgressHistory(ctx context.Context, from, to string) ([]models.DailyProgress, error) {
	rows, err := database.Find(ctx, r.store, database.DailyProgress, func(p models.DailyProgress) bool {
		return p.Date >= from && p.Date <= to
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date < rows[j].Date
	})
	return rows, nil
}

// AddWater adds amount ml to the day's water intake.
func (r *ProgressRepository) AddWater(ctx context.Context, date string, amount int) (models.DailyProgress, error) {
	return r.apply(ctx, date, func(p models.DailyProgress) (models.ProgressPatch, bool) {
		water := p.WaterIntake + amount
		return models.ProgressPatch{WaterIntake: &water}, amount != 0
	})
}

// CompleteWorkout records workoutID as completed on date. Completing the
// same workout twice on one day is a no-op.
func (r *ProgressRepository) CompleteWorkout(ctx context.Context, date, workoutID string) (models.DailyProgress, error) {
	return r.apply(ctx, date, func(p models.DailyProgress) (models.ProgressPatch, bool) {
		if p.HasCompleted(workoutID) {
			return models.ProgressPatch{}, false
		}
		completed := append(append([]string{}, p.WorkoutsCompleted...), workoutID)
		return models.ProgressPatch{WorkoutsCompleted: completed}, true
	})
}

// UpdateMacros adds delta to the day's nutrition totals.
func (r *ProgressRepository) UpdateMacros(ctx context.Context, date string, delta models.Macros) (models.DailyProgress, error) {
	return r.apply(ctx, date, func(p models.DailyProgress) (models.ProgressPatch, bool) {
		return models.MacrosPatch(p, delta), delta != models.Macros{}
	})
}

// apply patches the row for date in one write, creating it if needed.
// Nothing is persisted when the row exists and change reports no change.
func (r *ProgressRepository) apply(ctx context.Context, date string, change func(models.DailyProgress) (models.ProgressPatch, bool)) (models.DailyProgress, error) {
	if _, _, err := r.dayBounds(date); err != nil {
		return models.DailyProgress{}, err
	}

	var out models.DailyProgress
	err := r.store.Update(ctx, func(d *database.Document) error {
		current, exists := database.DailyProgress.FindOne(d, byDate(date))
		if !exists {
			current = models.NewDailyProgress(date)
			database.DailyProgress.Insert(d, current)
		}

		patch, changed := change(current)
		if !changed {
			out = current
			if exists {
				return database.ErrUnchanged
			}
			return nil
		}

		updated, ok := database.DailyProgress.Update(d, byDate(date), patch)
		if !ok {
			return fmt.Errorf("progress not found for update: %w", ErrNotFound)
		}
		out = updated
		return nil
	})
	return out, err
}

func byDate(date string) database.Filter[models.DailyProgress] {
	return func(p models.DailyProgress) bool { return p.Date == date }
}
