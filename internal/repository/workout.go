package repository

import (
	"context"
	"fmt"

	"github.com/willythepapi/FITART-v1/internal/database"
	"github.com/willythepapi/FITART-v1/internal/models"
)

// WorkoutRepository treats a workout and its exercises as one aggregate
// split across the workouts and exercises tables.
type WorkoutRepository struct {
	base
}

var _ IWorkoutRepository = (*WorkoutRepository)(nil)

// GetWorkouts returns every workout with its exercises, in storage order.
func (r *WorkoutRepository) GetWorkouts(ctx context.Context) ([]models.Workout, error) {
	var workouts []models.Workout
	err := r.store.View(ctx, func(d *database.Document) error {
		byWorkout := make(map[string][]models.Exercise)
		for _, ex := range database.Exercises.All(d) {
			byWorkout[ex.WorkoutID] = append(byWorkout[ex.WorkoutID], ex)
		}
		workouts = database.Workouts.All(d)
		for i := range workouts {
			workouts[i].Exercises = nonNilExercises(byWorkout[workouts[i].ID])
		}
		return nil
	})
	return workouts, err
}

// GetWorkout returns one workout with its exercises.
func (r *WorkoutRepository) GetWorkout(ctx context.Context, id string) (models.Workout, error) {
	var workout models.Workout
	err := r.store.View(ctx, func(d *database.Document) error {
		w, ok := database.Workouts.FindOne(d, byWorkoutID(id))
		if !ok {
			return fmt.Errorf("workout %s: %w", id, ErrNotFound)
		}
		w.Exercises = nonNilExercises(database.Exercises.Find(d, exercisesOf(id)))
		workout = w
		return nil
	})
	return workout, err
}

// AddWorkout stores a workout and its exercises with fresh ids.
func (r *WorkoutRepository) AddWorkout(ctx context.Context, in models.WorkoutInput) (models.Workout, error) {
	workout := models.Workout{
		ID:       newID("workout"),
		Name:     in.Name,
		Category: categoryOrDefault(in.Category),
	}
	err := r.store.Update(ctx, func(d *database.Document) error {
		database.Workouts.Insert(d, workout)
		workout.Exercises = insertExercises(d, workout.ID, in.Exercises)
		return nil
	})
	return workout, err
}

// UpdateWorkout replaces the workout's fields and its whole exercise list.
// Exercises get new ids; order follows in.Exercises.
func (r *WorkoutRepository) UpdateWorkout(ctx context.Context, id string, in models.WorkoutInput) (models.Workout, error) {
	var workout models.Workout
	err := r.store.Update(ctx, func(d *database.Document) error {
		category := categoryOrDefault(in.Category)
		w, ok := database.Workouts.Update(d, byWorkoutID(id), models.WorkoutPatch{
			Name:     &in.Name,
			Category: &category,
		})
		if !ok {
			return fmt.Errorf("workout not found for update: %w", ErrNotFound)
		}
		database.Exercises.Delete(d, exercisesOf(id))
		w.Exercises = insertExercises(d, id, in.Exercises)
		workout = w
		return nil
	})
	return workout, err
}

func insertExercises(d *database.Document, workoutID string, inputs []models.ExerciseInput) []models.Exercise {
	exercises := make([]models.Exercise, 0, len(inputs))
	for _, in := range inputs {
		ex := models.Exercise{
			ID:          newID("ex"),
			WorkoutID:   workoutID,
			Name:        in.Name,
			Sets:        in.Sets,
			Reps:        in.Reps,
			VideoURL:    in.VideoURL,
			Description: in.Description,
		}
		database.Exercises.Insert(d, ex)
		exercises = append(exercises, ex)
	}
	return exercises
}

func categoryOrDefault(c string) string {
	if c == "" {
		return models.CategoryFullBody
	}
	return c
}

func nonNilExercises(ex []models.Exercise) []models.Exercise {
	if ex == nil {
		return []models.Exercise{}
	}
	return ex
}

func byWorkoutID(id string) database.Filter[models.Workout] {
	return func(w models.Workout) bool { return w.ID == id }
}

func exercisesOf(workoutID string) database.Filter[models.Exercise] {
	return func(e models.Exercise) bool { return e.WorkoutID == workoutID }
}
