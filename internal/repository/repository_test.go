package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willythepapi/FITART-v1/internal/database"
	"github.com/willythepapi/FITART-v1/internal/models"
)

const testKey = "zenithfit_test"

// testZone is two hours ahead of UTC so local-day logic differs from UTC.
var testZone = time.FixedZone("UTC+2", 2*60*60)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Set(t time.Time) { c.t = t }

func setupRepos(t *testing.T) (*Repositories, *database.Store, *database.MemoryKV, *fakeClock) {
	t.Helper()
	kv := database.NewMemoryKV()
	store := database.NewStore(kv, testKey)
	require.NoError(t, store.Init(context.Background()))
	clock := &fakeClock{t: time.Date(2024, 3, 15, 12, 0, 0, 0, testZone)}
	return New(store, testZone, clock.Now), store, kv, clock
}

func persisted(t *testing.T, kv *database.MemoryKV) *database.Document {
	t.Helper()
	data, err := kv.Get(context.Background(), testKey)
	require.NoError(t, err)
	doc := &database.Document{}
	require.NoError(t, json.Unmarshal(data, doc))
	return doc
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repos, _, kv, _ := setupRepos(t)

	t.Run("returns the seeded user", func(t *testing.T) {
		user, err := repos.Users.GetUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.DefaultUser(), user)
	})

	t.Run("update round trip", func(t *testing.T) {
		name, age, gender := "Sam", 35, models.GenderFemale
		height, weight, target := 165.5, 62.0, 58.0
		activity, goal := models.ActivityHigh, models.GoalGainMuscle
		calories, water, workouts, steps := 2100, 2200, 4, 10000
		photo := "data:image/png;base64,AAAA"
		patch := models.UserPatch{
			Name: &name, Age: &age, Gender: &gender, Height: &height,
			Weight: &weight, TargetWeight: &target, ActivityLevel: &activity,
			Goal: &goal, CalorieGoal: &calories, WaterGoal: &water,
			WorkoutGoal: &workouts, StepsTarget: &steps, PhotoDataURL: &photo,
		}

		updated, err := repos.Users.UpdateUser(ctx, patch)
		require.NoError(t, err)

		got, err := repos.Users.GetUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, updated, got)
		assert.Equal(t, models.User{
			ID: "user-1", Name: name, Age: age, Gender: gender, Height: height,
			Weight: weight, TargetWeight: target, ActivityLevel: activity,
			Goal: goal, CalorieGoal: calories, WaterGoal: water,
			WorkoutGoal: workouts, StepsTarget: steps, PhotoDataURL: photo,
		}, got)
		assert.Equal(t, got, *persisted(t, kv).User)
	})

	t.Run("weight history sorted by date", func(t *testing.T) {
		_, err := repos.Users.AddWeightEntry(ctx, 74, "2024-03-10")
		require.NoError(t, err)
		entry, err := repos.Users.AddWeightEntry(ctx, 76, "2024-03-01")
		require.NoError(t, err)
		assert.Contains(t, entry.ID, "wh-")
		assert.Equal(t, "user-1", entry.UserID)

		history, err := repos.Users.GetWeightHistory(ctx)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, "2024-03-01", history[0].Date)
		assert.Equal(t, 74.0, history[1].Weight)
	})
}

func TestWorkoutRepository(t *testing.T) {
	ctx := context.Background()
	repos, store, kv, _ := setupRepos(t)

	created, err := repos.Workouts.AddWorkout(ctx, models.WorkoutInput{
		Name: "Leg day",
		Exercises: []models.ExerciseInput{
			{Name: "Squat", Sets: 5, Reps: "5"},
			{Name: "Lunge", Sets: 3, Reps: "12"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, created.ID, "workout-")
	assert.Equal(t, models.CategoryFullBody, created.Category)
	require.Len(t, created.Exercises, 2)

	t.Run("joins exercises on read", func(t *testing.T) {
		workouts, err := repos.Workouts.GetWorkouts(ctx)
		require.NoError(t, err)
		require.Len(t, workouts, 1)
		assert.Equal(t, created, workouts[0])
	})

	t.Run("persists workout rows without exercises", func(t *testing.T) {
		doc := persisted(t, kv)
		assert.Empty(t, doc.Workouts[0].Exercises)
		assert.Len(t, doc.Exercises, 2)
	})

	t.Run("update replaces the exercise list", func(t *testing.T) {
		updated, err := repos.Workouts.UpdateWorkout(ctx, created.ID, models.WorkoutInput{
			Name:     "Legs",
			Category: models.CategoryLegs,
			Exercises: []models.ExerciseInput{
				{Name: "Lunge", Sets: 3, Reps: "12"},
				{Name: "Deadlift", Sets: 3, Reps: "5"},
				{Name: "Squat", Sets: 5, Reps: "5"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Legs", updated.Name)

		got, err := repos.Workouts.GetWorkout(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, got)
		names := []string{}
		for _, ex := range got.Exercises {
			names = append(names, ex.Name)
			assert.NotEqual(t, created.Exercises[0].ID, ex.ID)
		}
		assert.Equal(t, []string{"Lunge", "Deadlift", "Squat"}, names)

		require.NoError(t, store.View(ctx, func(d *database.Document) error {
			assert.Len(t, d.Exercises, 3, "no stale exercise rows remain")
			return nil
		}))
	})

	t.Run("update of a missing workout", func(t *testing.T) {
		_, err := repos.Workouts.UpdateWorkout(ctx, "nope", models.WorkoutInput{Name: "x"})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "workout not found for update")
	})

	t.Run("workout without exercises", func(t *testing.T) {
		w, err := repos.Workouts.AddWorkout(ctx, models.WorkoutInput{Name: "Rest", Category: models.CategoryUpper})
		require.NoError(t, err)
		got, err := repos.Workouts.GetWorkout(ctx, w.ID)
		require.NoError(t, err)
		assert.NotNil(t, got.Exercises)
		assert.Empty(t, got.Exercises)
	})
}

func TestNutritionRepository(t *testing.T) {
	ctx := context.Background()
	repos, _, kv, clock := setupRepos(t)

	add := func(at time.Time, name string) models.Meal {
		clock.Set(at)
		m, err := repos.Nutrition.AddMeal(ctx, models.MealInput{Name: name, Calories: 100})
		require.NoError(t, err)
		return m
	}

	// Local midnight on the 15th is 22:00 UTC on the 14th.
	add(time.Date(2024, 3, 14, 23, 59, 59, 0, testZone), "yesterday")
	first := add(time.Date(2024, 3, 15, 0, 0, 0, 0, testZone), "midnight")
	last := add(time.Date(2024, 3, 15, 23, 59, 59, 999e6, testZone), "late")
	add(time.Date(2024, 3, 16, 0, 0, 0, 0, testZone), "tomorrow")
	lunch := add(time.Date(2024, 3, 15, 12, 30, 0, 0, testZone), "lunch")

	t.Run("meals by local day newest first", func(t *testing.T) {
		meals, err := repos.Nutrition.GetMealsByDate(ctx, "2024-03-15")
		require.NoError(t, err)
		require.Len(t, meals, 3)
		assert.Equal(t, last.ID, meals[0].ID)
		assert.Equal(t, lunch.ID, meals[1].ID)
		assert.Equal(t, first.ID, meals[2].ID)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := repos.Nutrition.GetMealsByDate(ctx, "15/03/2024")
		assert.Error(t, err)
	})

	t.Run("update and get", func(t *testing.T) {
		calories := 250.0
		updated, err := repos.Nutrition.UpdateMeal(ctx, lunch.ID, models.MealPatch{Calories: &calories})
		require.NoError(t, err)
		assert.Equal(t, 250.0, updated.Calories)
		assert.Equal(t, lunch.Timestamp, updated.Timestamp)

		got, err := repos.Nutrition.GetMealByID(ctx, lunch.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, got)

		_, err = repos.Nutrition.UpdateMeal(ctx, "missing", models.MealPatch{Calories: &calories})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "meal not found for update")
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repos.Nutrition.DeleteMeal(ctx, lunch.ID))
		_, err := repos.Nutrition.GetMealByID(ctx, lunch.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, repos.Nutrition.DeleteMeal(ctx, lunch.ID))

		meals, err := repos.Nutrition.GetMeals(ctx)
		require.NoError(t, err)
		assert.Len(t, meals, 4)
		assert.Len(t, persisted(t, kv).Meals, 4)
	})
}

func TestProgressRepository(t *testing.T) {
	ctx := context.Background()
	repos, _, kv, _ := setupRepos(t)
	const date = "2024-03-15"

	t.Run("reads do not create rows", func(t *testing.T) {
		_, err := repos.Progress.GetDailyProgress(ctx, date)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, persisted(t, kv).DailyProgress)
	})

	t.Run("ensure creates the empty row once", func(t *testing.T) {
		p, err := repos.Progress.EnsureDailyProgress(ctx, date)
		require.NoError(t, err)
		assert.Equal(t, models.NewDailyProgress(date), p)

		again, err := repos.Progress.EnsureDailyProgress(ctx, date)
		require.NoError(t, err)
		assert.Equal(t, p, again)
		assert.Len(t, persisted(t, kv).DailyProgress, 1)
	})

	t.Run("add water", func(t *testing.T) {
		_, err := repos.Progress.AddWater(ctx, date, 250)
		require.NoError(t, err)
		p, err := repos.Progress.AddWater(ctx, date, 500)
		require.NoError(t, err)
		assert.Equal(t, 750, p.WaterIntake)
	})

	t.Run("complete workout is idempotent", func(t *testing.T) {
		_, err := repos.Progress.CompleteWorkout(ctx, date, "w1")
		require.NoError(t, err)
		p, err := repos.Progress.CompleteWorkout(ctx, date, "w1")
		require.NoError(t, err)
		assert.Equal(t, []string{"w1"}, p.WorkoutsCompleted)
	})

	t.Run("update macros applies deltas", func(t *testing.T) {
		_, err := repos.Progress.UpdateMacros(ctx, date, models.Macros{Calories: 300, Protein: 20, Carbs: 30, Fat: 10})
		require.NoError(t, err)
		p, err := repos.Progress.UpdateMacros(ctx, date, models.Macros{Calories: -100, Protein: -5})
		require.NoError(t, err)
		assert.Equal(t, 200.0, p.CaloriesEaten)
		assert.Equal(t, 15.0, p.Protein)
		assert.Equal(t, 30.0, p.Carbs)
		assert.Equal(t, 10.0, p.Fat)
	})

	t.Run("mutators create missing rows", func(t *testing.T) {
		p, err := repos.Progress.AddWater(ctx, "2024-03-10", 100)
		require.NoError(t, err)
		assert.Equal(t, "progress-2024-03-10", p.ID)
		assert.Equal(t, 100, p.WaterIntake)
	})

	t.Run("history is inclusive and ascending", func(t *testing.T) {
		_, err := repos.Progress.EnsureDailyProgress(ctx, "2024-03-20")
		require.NoError(t, err)

		rows, err := repos.Progress.GetProgressHistory(ctx, "2024-03-10", date)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "2024-03-10", rows[0].Date)
		assert.Equal(t, date, rows[1].Date)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := repos.Progress.AddWater(ctx, "yesterday", 100)
		assert.Error(t, err)
		_, err = repos.Progress.EnsureDailyProgress(ctx, "yesterday")
		assert.Error(t, err)
	})
}

func TestWeeklyPlanRepository(t *testing.T) {
	ctx := context.Background()
	repos, store, _, _ := setupRepos(t)

	t.Run("set for day upserts", func(t *testing.T) {
		first, err := repos.WeeklyPlan.SetForDay(ctx, 3, "w1")
		require.NoError(t, err)
		second, err := repos.WeeklyPlan.SetForDay(ctx, 3, "w1")
		require.NoError(t, err)
		assert.Equal(t, first, second)

		overwritten, err := repos.WeeklyPlan.SetForDay(ctx, 3, "w2")
		require.NoError(t, err)
		assert.Equal(t, first.ID, overwritten.ID)

		require.NoError(t, store.View(ctx, func(d *database.Document) error {
			require.Len(t, d.WeeklyPlans, 1)
			assert.Equal(t, models.WeeklyWorkoutPlan{ID: first.ID, DayOfWeek: 3, WorkoutID: "w2"}, d.WeeklyPlans[0])
			return nil
		}))
	})

	t.Run("get all ordered by day", func(t *testing.T) {
		_, err := repos.WeeklyPlan.SetForDay(ctx, 1, "w3")
		require.NoError(t, err)
		plans, err := repos.WeeklyPlan.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, plans, 2)
		assert.Equal(t, 1, plans[0].DayOfWeek)
		assert.Equal(t, 3, plans[1].DayOfWeek)
	})

	t.Run("clear for day removes the row", func(t *testing.T) {
		require.NoError(t, repos.WeeklyPlan.ClearForDay(ctx, 3))
		_, err := repos.WeeklyPlan.GetForDay(ctx, 3)
		assert.ErrorIs(t, err, ErrNotFound)

		plan, err := repos.WeeklyPlan.GetForDay(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "w3", plan.WorkoutID)
	})
}

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()
	repos, store, kv, _ := setupRepos(t)

	settings, err := repos.Settings.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)

	interval := 0
	updated, err := repos.Settings.UpdateSettings(ctx, models.SettingsPatch{WaterReminderInterval: &interval})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.WaterReminderInterval)
	assert.Equal(t, "08:30", updated.MealReminderTime)

	t.Run("missing settings", func(t *testing.T) {
		require.NoError(t, store.Update(ctx, func(d *database.Document) error {
			d.Settings = nil
			return nil
		}))

		_, err := repos.Settings.GetSettings(ctx)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = repos.Settings.UpdateSettings(ctx, models.SettingsPatch{})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "Settings not found for update")

		ensured, err := repos.Settings.EnsureSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.DefaultSettings(), ensured)
		assert.Equal(t, ensured, *persisted(t, kv).Settings)
	})
}

func TestProgressPhotoRepository(t *testing.T) {
	ctx := context.Background()
	repos, _, _, clock := setupRepos(t)

	older, err := repos.Photos.AddPhoto(ctx, models.ProgressPhotoInput{ImageDataURL: "data:a", Note: "week 1"})
	require.NoError(t, err)
	clock.Set(clock.Now().Add(time.Hour))
	newer, err := repos.Photos.AddPhoto(ctx, models.ProgressPhotoInput{ImageDataURL: "data:b"})
	require.NoError(t, err)
	assert.Contains(t, newer.ID, "pp-")

	photos, err := repos.Photos.GetPhotos(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.ProgressPhoto{newer, older}, photos)
}

func TestSystemRepositoryClearAllData(t *testing.T) {
	ctx := context.Background()
	repos, _, kv, _ := setupRepos(t)

	_, err := repos.Nutrition.AddMeal(ctx, models.MealInput{Name: "x"})
	require.NoError(t, err)
	require.NoError(t, repos.System.ClearAllData(ctx))

	meals, err := repos.Nutrition.GetMeals(ctx)
	require.NoError(t, err)
	assert.Empty(t, meals)
	_, err = kv.Get(ctx, testKey)
	assert.True(t, errors.Is(err, database.ErrKeyNotFound))
}

func TestUnitOfWorkRollsBack(t *testing.T) {
	ctx := context.Background()
	repos, _, kv, _ := setupRepos(t)
	boom := errors.New("boom")

	err := repos.UnitOfWork.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := repos.Nutrition.AddMeal(ctx, models.MealInput{Name: "x", Calories: 10}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	meals, err := repos.Nutrition.GetMeals(ctx)
	require.NoError(t, err)
	assert.Empty(t, meals)
	assert.Empty(t, persisted(t, kv).Meals)
}
