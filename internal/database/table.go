package database

import (
	"context"

	"github.com/willythepapi/FITART-v1/internal/models"
)

// Filter selects rows of type T.
type Filter[T any] func(T) bool

// Every matches every row.
func Every[T any](T) bool { return true }

// Table gives typed access to one collection of a Document.
type Table[T any] struct {
	Name  string
	rows  func(*Document) *[]T
	clone func(T) T
}

// Tables of the Document.
var (
	Workouts = Table[models.Workout]{
		Name: "workouts",
		rows: func(d *Document) *[]models.Workout { return &d.Workouts },
		clone: func(w models.Workout) models.Workout {
			if w.Exercises != nil {
				w.Exercises = append([]models.Exercise(nil), w.Exercises...)
			}
			return w
		},
	}
	Exercises = Table[models.Exercise]{
		Name: "exercises",
		rows: func(d *Document) *[]models.Exercise { return &d.Exercises },
	}
	Meals = Table[models.Meal]{
		Name: "meals",
		rows: func(d *Document) *[]models.Meal { return &d.Meals },
	}
	DailyProgress = Table[models.DailyProgress]{
		Name: "daily_progress",
		rows: func(d *Document) *[]models.DailyProgress { return &d.DailyProgress },
		clone: func(p models.DailyProgress) models.DailyProgress {
			p.WorkoutsCompleted = append([]string{}, p.WorkoutsCompleted...)
			return p
		},
	}
	WeightHistory = Table[models.WeightHistory]{
		Name: "weight_history",
		rows: func(d *Document) *[]models.WeightHistory { return &d.WeightHistory },
	}
	WeeklyPlans = Table[models.WeeklyWorkoutPlan]{
		Name: "weekly_workout_plans",
		rows: func(d *Document) *[]models.WeeklyWorkoutPlan { return &d.WeeklyPlans },
	}
	ProgressPhotos = Table[models.ProgressPhoto]{
		Name: "progress_photos",
		rows: func(d *Document) *[]models.ProgressPhoto { return &d.ProgressPhotos },
	}
)

func (t Table[T]) copyOf(v T) T {
	if t.clone != nil {
		return t.clone(v)
	}
	return v
}

// All returns copies of every row in storage order.
func (t Table[T]) All(d *Document) []T {
	return t.Find(d, Every[T])
}

// Find returns copies of the matching rows in storage order.
func (t Table[T]) Find(d *Document, f Filter[T]) []T {
	out := []T{}
	for _, r := range *t.rows(d) {
		if f(r) {
			out = append(out, t.copyOf(r))
		}
	}
	return out
}

// FindOne returns a copy of the first matching row.
func (t Table[T]) FindOne(d *Document, f Filter[T]) (T, bool) {
	for _, r := range *t.rows(d) {
		if f(r) {
			return t.copyOf(r), true
		}
	}
	var zero T
	return zero, false
}

// Insert appends rec.
func (t Table[T]) Insert(d *Document, rec T) {
	rows := t.rows(d)
	*rows = append(*rows, t.copyOf(rec))
}

// Update applies patch to the first matching row and returns its new value.
func (t Table[T]) Update(d *Document, f Filter[T], patch models.Patch[T]) (T, bool) {
	rows := *t.rows(d)
	for i := range rows {
		if f(rows[i]) {
			patch.Apply(&rows[i])
			return t.copyOf(rows[i]), true
		}
	}
	var zero T
	return zero, false
}

// Delete removes every matching row and returns how many were removed.
func (t Table[T]) Delete(d *Document, f Filter[T]) int {
	rows := t.rows(d)
	kept := (*rows)[:0]
	removed := 0
	for _, r := range *rows {
		if f(r) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	*rows = kept
	return removed
}

// GetTable returns every row of t.
func GetTable[T any](ctx context.Context, s *Store, t Table[T]) ([]T, error) {
	var out []T
	err := s.View(ctx, func(d *Document) error {
		out = t.All(d)
		return nil
	})
	return out, err
}

// Find returns the rows of t matching f.
func Find[T any](ctx context.Context, s *Store, t Table[T], f Filter[T]) ([]T, error) {
	var out []T
	err := s.View(ctx, func(d *Document) error {
		out = t.Find(d, f)
		return nil
	})
	return out, err
}

// FindOne returns the first row of t matching f, or ErrNotFound.
func FindOne[T any](ctx context.Context, s *Store, t Table[T], f Filter[T]) (T, error) {
	var (
		out T
		ok  bool
	)
	err := s.View(ctx, func(d *Document) error {
		out, ok = t.FindOne(d, f)
		return nil
	})
	if err != nil {
		return out, err
	}
	if !ok {
		return out, ErrNotFound
	}
	return out, nil
}

// Insert appends rec to t and persists.
func Insert[T any](ctx context.Context, s *Store, t Table[T], rec T) (T, error) {
	err := s.Update(ctx, func(d *Document) error {
		t.Insert(d, rec)
		return nil
	})
	return rec, err
}

// Update patches the first row of t matching f and persists. When nothing
// matches it returns ErrNotFound and writes nothing.
func Update[T any](ctx context.Context, s *Store, t Table[T], f Filter[T], patch models.Patch[T]) (T, error) {
	var (
		out T
		ok  bool
	)
	err := s.Update(ctx, func(d *Document) error {
		out, ok = t.Update(d, f, patch)
		if !ok {
			return ErrNotFound
		}
		return nil
	})
	return out, err
}

// Delete removes the rows of t matching f. It persists only when at least
// one row was removed.
func Delete[T any](ctx context.Context, s *Store, t Table[T], f Filter[T]) (int, error) {
	var n int
	err := s.Update(ctx, func(d *Document) error {
		n = t.Delete(d, f)
		if n == 0 {
			return ErrUnchanged
		}
		return nil
	})
	return n, err
}
