package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"iter"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willythepapi/FITART-v1/internal/database"
	"github.com/willythepapi/FITART-v1/internal/models"
	"github.com/willythepapi/FITART-v1/internal/repository"
)

// Friday 2024-03-15 in a zone where local and UTC dates differ in the
// evening.
var (
	testZone = time.FixedZone("UTC-5", -5*60*60)
	testNow  = time.Date(2024, 3, 15, 10, 0, 0, 0, testZone)
)

const today = "2024-03-15"

type fakeCoach struct {
	chunks []string
	err    error
	calls  int
	user   models.User
	msg    string
}

func (f *fakeCoach) StreamReply(_ context.Context, user models.User, _ []models.ChatMessage, message string) iter.Seq2[string, error] {
	f.calls++
	f.user = user
	f.msg = message
	return func(yield func(string, error) bool) {
		for _, c := range f.chunks {
			if !yield(c, nil) {
				return
			}
		}
		if f.err != nil {
			yield("", f.err)
		}
	}
}

type fakeStorage struct {
	uploaded []string
	err      error
}

func (f *fakeStorage) Upload(_ context.Context, dataURL string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploaded = append(f.uploaded, dataURL)
	return "https://photos.example.com/p1.jpg", nil
}

type fixture struct {
	uc    *UseCases
	store *database.Store
	now   *time.Time
}

func setup(t *testing.T, opts Options) *fixture {
	t.Helper()
	store := database.NewStore(database.NewMemoryKV(), "zenithfit_test")
	require.NoError(t, store.Init(context.Background()))

	now := testNow
	clock := func() time.Time { return now }
	opts.Location = testZone
	opts.Now = clock
	repos := repository.New(store, testZone, clock)
	return &fixture{uc: New(repos, opts), store: store, now: &now}
}

func TestCalculateDailyTargets(t *testing.T) {
	uc := &CalculateDailyTargetsUseCase{}

	t.Run("male medium activity", func(t *testing.T) {
		got := uc.Execute(TargetsInput{Weight: 75, Height: 180, Age: 28, Gender: models.GenderMale, ActivityLevel: models.ActivityMedium})
		assert.Equal(t, DailyTargets{CalorieGoal: 2697, WaterGoal: 2625}, got)
	})

	t.Run("female low activity", func(t *testing.T) {
		// 10*60 + 6.25*165 - 5*30 - 161 = 1320.25; * 1.2 = 1584.3
		got := uc.Execute(TargetsInput{Weight: 60, Height: 165, Age: 30, Gender: models.GenderFemale, ActivityLevel: models.ActivityLow})
		assert.Equal(t, DailyTargets{CalorieGoal: 1584, WaterGoal: 2100}, got)
	})

	t.Run("missing inputs give zero targets", func(t *testing.T) {
		for _, in := range []TargetsInput{
			{Height: 180, Age: 28, ActivityLevel: models.ActivityHigh},
			{Weight: 75, Age: 28, ActivityLevel: models.ActivityHigh},
			{Weight: 75, Height: 180, ActivityLevel: models.ActivityHigh},
			{Weight: 75, Height: 180, Age: 28, ActivityLevel: "extreme"},
		} {
			assert.Equal(t, DailyTargets{}, uc.Execute(in))
		}
	})

	t.Run("from user", func(t *testing.T) {
		got := uc.Execute(TargetsFromUser(models.DefaultUser()))
		assert.Equal(t, 2697, got.CalorieGoal)
	})
}

func TestEscapeCSVField(t *testing.T) {
	tests := map[string]string{
		`Tom's "Big" Workout, v2`: `"Tom's ""Big"" Workout, v2"`,
		"plain":                   "plain",
		" leading space":          " leading space",
		"two\nlines":              "\"two\nlines\"",
		"":                        "",
	}
	for in, want := range tests {
		assert.Equal(t, want, EscapeCSVField(in), in)
	}
}

func TestDayOfWeek(t *testing.T) {
	assert.Equal(t, 1, DayOfWeek(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 5, DayOfWeek(testNow))
	assert.Equal(t, 7, DayOfWeek(time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)))
}

func sumMeals(t *testing.T, f *fixture, date string) models.Macros {
	t.Helper()
	meals, err := f.uc.GetMealsByDate.Execute(context.Background(), date)
	require.NoError(t, err)
	var sum models.Macros
	for _, m := range meals {
		sum.Calories += m.Calories
		sum.Protein += m.Protein
		sum.Carbs += m.Carbs
		sum.Fat += m.Fat
	}
	return sum
}

func assertTotals(t *testing.T, want models.Macros, p models.DailyProgress) {
	t.Helper()
	assert.InDelta(t, want.Calories, p.CaloriesEaten, 1e-6)
	assert.InDelta(t, want.Protein, p.Protein, 1e-6)
	assert.InDelta(t, want.Carbs, p.Carbs, 1e-6)
	assert.InDelta(t, want.Fat, p.Fat, 1e-6)
}

func TestMealEntries(t *testing.T) {
	ctx := context.Background()
	f := setup(t, Options{})

	t.Run("add from food updates the totals", func(t *testing.T) {
		meal, err := f.uc.AddMealEntry.ExecuteFood(ctx, today, "chicken_breast", 150)
		require.NoError(t, err)
		assert.Equal(t, "Chicken Breast (150g)", meal.Name)
		assert.Equal(t, testNow.UnixMilli(), meal.Timestamp)

		p, err := f.uc.GetDailyProgress.Execute(ctx, today)
		require.NoError(t, err)
		assertTotals(t, meal.Macros(), p)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := f.uc.AddMealEntry.ExecuteFood(ctx, today, "chicken_breast", 0)
		assert.ErrorIs(t, err, ErrInvalidGrams)
		_, err = f.uc.AddMealEntry.ExecuteFood(ctx, today, "unicorn", 100)
		assert.ErrorIs(t, err, ErrUnknownFood)
	})

	t.Run("failed progress update leaves no meal behind", func(t *testing.T) {
		before, err := f.uc.GetMealsByDate.Execute(ctx, today)
		require.NoError(t, err)

		_, err = f.uc.AddMealEntry.Execute(ctx, "not-a-date", models.MealInput{Name: "ghost", Calories: 100})
		require.Error(t, err)

		after, err := f.uc.GetMealsByDate.Execute(ctx, today)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("update applies the net change", func(t *testing.T) {
		meal, err := f.uc.AddMealEntry.Execute(ctx, today, models.MealInput{Name: "Snack", Calories: 200, Protein: 10, Carbs: 20, Fat: 5})
		require.NoError(t, err)

		updated, err := f.uc.UpdateMealEntry.Execute(ctx, today, meal.ID, models.MealInput{Name: "Bigger snack", Calories: 350, Protein: 12, Carbs: 40, Fat: 3})
		require.NoError(t, err)
		assert.Equal(t, meal.Timestamp, updated.Timestamp)
		assert.Equal(t, "Bigger snack", updated.Name)

		p, err := f.uc.GetDailyProgress.Execute(ctx, today)
		require.NoError(t, err)
		assertTotals(t, sumMeals(t, f, today), p)
	})

	t.Run("update of a missing meal", func(t *testing.T) {
		_, err := f.uc.UpdateMealEntry.Execute(ctx, today, "meal-missing", models.MealInput{Calories: 1})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("delete subtracts the stored macros", func(t *testing.T) {
		meals, err := f.uc.GetMealsByDate.Execute(ctx, today)
		require.NoError(t, err)
		require.NotEmpty(t, meals)

		require.NoError(t, f.uc.DeleteMealEntry.Execute(ctx, today, meals[0].ID))
		p, err := f.uc.GetDailyProgress.Execute(ctx, today)
		require.NoError(t, err)
		assertTotals(t, sumMeals(t, f, today), p)
	})

	t.Run("delete of a missing meal is a no-op", func(t *testing.T) {
		before, err := f.uc.GetDailyProgress.Execute(ctx, today)
		require.NoError(t, err)
		require.NoError(t, f.uc.DeleteMealEntry.Execute(ctx, today, "meal-missing"))
		after, err := f.uc.GetDailyProgress.Execute(ctx, today)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestMealDeltaCorrectness(t *testing.T) {
	ctx := context.Background()
	f := setup(t, Options{})
	rng := rand.New(rand.NewSource(42))
	foods := models.Foods()

	var ids []string
	for i := 0; i < 200; i++ {
		food := foods[rng.Intn(len(foods))]
		grams := float64(rng.Intn(400) + 1)

		switch op := rng.Intn(3); {
		case op == 0 || len(ids) == 0:
			meal, err := f.uc.AddMealEntry.ExecuteFood(ctx, today, food.ID, grams)
			require.NoError(t, err)
			ids = append(ids, meal.ID)
		case op == 1:
			id := ids[rng.Intn(len(ids))]
			_, err := f.uc.UpdateMealEntry.ExecuteFood(ctx, today, id, food.ID, grams)
			require.NoError(t, err)
		default:
			i := rng.Intn(len(ids))
			require.NoError(t, f.uc.DeleteMealEntry.Execute(ctx, today, ids[i]))
			ids = append(ids[:i], ids[i+1:]...)
		}
	}

	p, err := f.uc.GetDailyProgress.Execute(ctx, today)
	require.NoError(t, err)
	assertTotals(t, sumMeals(t, f, today), p)
}

func TestUpdateUserProfile(t *testing.T) {
	ctx := context.Background()
	f := setup(t, Options{})

	name := "Alex R."
	_, err := f.uc.UpdateUserProfile.Execute(ctx, models.UserPatch{Name: &name})
	require.NoError(t, err)
	history, err := f.uc.GetWeightHistory.Execute(ctx)
	require.NoError(t, err)
	assert.Empty(t, history, "no entry when the weight is unchanged")

	same := models.DefaultUser().Weight
	_, err = f.uc.UpdateUserProfile.Execute(ctx, models.UserPatch{Weight: &same})
	require.NoError(t, err)
	history, err = f.uc.GetWeightHistory.Execute(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)

	weight := 73.5
	user, err := f.uc.UpdateUserProfile.Execute(ctx, models.UserPatch{Weight: &weight})
	require.NoError(t, err)
	assert.Equal(t, 73.5, user.Weight)
	assert.Equal(t, "Alex R.", user.Name)

	history, err = f.uc.GetWeightHistory.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 73.5, history[0].Weight)
	assert.Equal(t, today, history[0].Date)

	got, err := f.uc.GetUserProfile.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestWorkouts(t *testing.T) {
	ctx := context.Background()
	f := setup(t, Options{})

	push, err := f.uc.AddWorkout.Execute(ctx, models.WorkoutInput{
		Name: "Push", Category: models.CategoryPush,
		Exercises: []models.ExerciseInput{{Name: "Bench Press", Sets: 4, Reps: "8"}},
	})
	require.NoError(t, err)
	_, err = f.uc.AddWorkout.Execute(ctx, models.WorkoutInput{
		Name: "Pull", Category: models.CategoryPull,
		Exercises: []models.ExerciseInput{{Name: "Row", Sets: 4, Reps: "10"}},
	})
	require.NoError(t, err)

	t.Run("invalid category", func(t *testing.T) {
		_, err := f.uc.AddWorkout.Execute(ctx, models.WorkoutInput{Name: "x", Category: "Cardio"})
		assert.ErrorIs(t, err, ErrInvalidCategory)
		_, err = f.uc.UpdateWorkout.Execute(ctx, push.ID, models.WorkoutInput{Name: "x", Category: "Cardio"})
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("filter by exercise name", func(t *testing.T) {
		all, err := f.uc.GetWorkouts.Execute(ctx, models.WorkoutFilters{})
		require.NoError(t, err)
		assert.Len(t, all, 2)

		filtered, err := f.uc.GetWorkouts.Execute(ctx, models.WorkoutFilters{ExerciseName: "BENCH"})
		require.NoError(t, err)
		require.Len(t, filtered, 1)
		assert.Equal(t, push.ID, filtered[0].ID)

		none, err := f.uc.GetWorkouts.Execute(ctx, models.WorkoutFilters{ExerciseName: "curl"})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("complete twice", func(t *testing.T) {
		_, err := f.uc.CompleteWorkout.Execute(ctx, today, push.ID)
		require.NoError(t, err)
		p, err := f.uc.CompleteWorkout.Execute(ctx, today, push.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{push.ID}, p.WorkoutsCompleted)
	})

	t.Run("today's workout", func(t *testing.T) {
		got, err := f.uc.GetTodayWorkout.Execute(ctx)
		require.NoError(t, err)
		assert.Nil(t, got, "rest day")

		_, err = f.uc.SetWeeklyWorkoutForDay.Execute(ctx, 5, push.ID)
		require.NoError(t, err)
		got, err = f.uc.GetTodayWorkout.Execute(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, push, *got)

		// Saturday 02:00 UTC is still Friday in the test zone.
		*f.now = time.Date(2024, 3, 16, 2, 0, 0, 0, time.UTC)
		got, err = f.uc.GetTodayWorkout.Execute(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		*f.now = testNow
	})
}

func TestWeeklyPlan(t *testing.T) {
	ctx := context.Background()
	f := setup(t, Options{})

	w, err := f.uc.AddWorkout.Execute(ctx, models.WorkoutInput{Name: "Legs"})
	require.NoError(t, err)

	for _, day := range []int{0, 8, -1} {
		_, err := f.uc.SetWeeklyWorkoutForDay.Execute(ctx, day, w.ID)
		assert.ErrorIs(t, err, ErrInvalidDay)
		_, err = f.uc.GetPlanByDay.Execute(ctx, day)
		assert.ErrorIs(t, err, ErrInvalidDay)
		assert.ErrorIs(t, f.uc.ClearWeeklyWorkoutForDay.Execute(ctx, day), ErrInvalidDay)
	}

	_, err = f.uc.SetWeeklyWorkoutForDay.Execute(ctx, 2, "workout-missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = f.uc.SetWeeklyWorkoutForDay.Execute(ctx, 3, w.ID)
	require.NoError(t, err)
	_, err = f.uc.SetWeeklyWorkoutForDay.Execute(ctx, 3, w.ID)
	require.NoError(t, err)

	plans, err := f.uc.GetWeeklyPlan.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, 3, plans[0].DayOfWeek)

	require.NoError(t, f.uc.ClearWeeklyWorkoutForDay.Execute(ctx, 3))
	_, err = f.uc.GetPlanByDay.Execute(ctx, 3)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAppSettings(t *testing.T) {
	ctx := context.Background()
	f := setup(t, Options{})

	require.NoError(t, f.store.Update(ctx, func(d *database.Document) error {
		d.Settings = nil
		return nil
	}))

	settings, err := f.uc.GetAppSettings.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)

	meal := "07:45"
	updated, err := f.uc.UpdateAppSettings.Execute(ctx, models.SettingsPatch{MealReminderTime: &meal})
	require.NoError(t, err)
	assert.Equal(t, "07:45", updated.MealReminderTime)
	assert.Equal(t, "18:00", updated.WorkoutReminderTime)

	bad := "7pm"
	_, err = f.uc.UpdateAppSettings.Execute(ctx, models.SettingsPatch{WorkoutReminderTime: &bad})
	assert.ErrorIs(t, err, ErrInvalidSettings)
	negative := -5
	_, err = f.uc.UpdateAppSettings.Execute(ctx, models.SettingsPatch{WaterReminderInterval: &negative})
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestWaterAndHistory(t *testing.T) {
	ctx := context.Background()
	f := setup(t, Options{})

	_, err := f.uc.AddWaterIntake.Execute(ctx, "2024-03-14", 500)
	require.NoError(t, err)
	p, err := f.uc.AddWaterIntake.Execute(ctx, today, 250)
	require.NoError(t, err)
	assert.Equal(t, 250, p.WaterIntake)

	history, err := f.uc.GetProgressHistory.Execute(ctx, "2024-03-01", today)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2024-03-14", history[0].Date)
}

func TestExportUserData(t *testing.T) {
	ctx := context.Background()
	f := setup(t, Options{})

	meal, err := f.uc.AddMealEntry.Execute(ctx, today, models.MealInput{Name: "Oats, with milk", Calories: 300.5, Protein: 10, Carbs: 50, Fat: 6})
	require.NoError(t, err)
	w, err := f.uc.AddWorkout.Execute(ctx, models.WorkoutInput{
		Name: `Tom's "Big" Workout, v2`,
		Exercises: []models.ExerciseInput{
			{Name: "Squat", Sets: 5, Reps: "5", VideoURL: "https://v.example.com/squat"},
			{Name: "Press", Sets: 3, Reps: "8-12", Description: "Slow\neccentric"},
		},
	})
	require.NoError(t, err)

	t.Run("nothing selected", func(t *testing.T) {
		files, err := f.uc.ExportUserData.Execute(ctx, ExportOptions{})
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	files, err := f.uc.ExportUserData.Execute(ctx, ExportOptions{Meals: true, Workouts: true, Progress: true})
	require.NoError(t, err)
	require.Len(t, files, 5)

	byName := map[string]ExportFile{}
	for _, file := range files {
		byName[file.Filename] = file
	}

	t.Run("meals", func(t *testing.T) {
		assert.Equal(t, MimeJSON, byName["meals.json"].MimeType)
		var meals []models.Meal
		require.NoError(t, json.Unmarshal([]byte(byName["meals.json"].Content), &meals))
		assert.Equal(t, []models.Meal{meal}, meals)
		assert.Contains(t, byName["meals.json"].Content, "\n  {")

		csv := byName["meals.csv"]
		assert.Equal(t, MimeCSV, csv.MimeType)
		assert.Equal(t,
			"id,name,calories,protein,carbs,fat,timestamp\n"+
				meal.ID+`,"Oats, with milk",300.5,10,50,6,1710514800000`,
			csv.Content)
	})

	t.Run("workouts", func(t *testing.T) {
		lines := strings.Split(byName["workouts.csv"].Content, "\n")
		require.Len(t, lines, 4, "header plus one line per exercise, one of which spans two lines")
		assert.Equal(t, "workout_id,workout_name,exercise_name,sets,reps,video_url,description", lines[0])
		assert.Equal(t, w.ID+`,"Tom's ""Big"" Workout, v2",Squat,5,5,https://v.example.com/squat,`, lines[1])
		assert.True(t, strings.HasSuffix(lines[2], `Press,3,8-12,,"Slow`))
	})

	t.Run("progress", func(t *testing.T) {
		var history []models.DailyProgress
		require.NoError(t, json.Unmarshal([]byte(byName["progress.json"].Content), &history))
		require.Len(t, history, 1)
		assert.Equal(t, today, history[0].Date)
	})
}

func TestProgressPhotos(t *testing.T) {
	ctx := context.Background()

	t.Run("inline", func(t *testing.T) {
		f := setup(t, Options{})
		photo, err := f.uc.AddProgressPhoto.Execute(ctx, models.ProgressPhotoInput{ImageDataURL: "data:image/jpeg;base64,AAA", Note: "day 1"})
		require.NoError(t, err)
		assert.Equal(t, "data:image/jpeg;base64,AAA", photo.ImageDataURL)

		photos, err := f.uc.GetProgressPhotos.Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.ProgressPhoto{photo}, photos)
	})

	t.Run("external storage", func(t *testing.T) {
		storage := &fakeStorage{}
		f := setup(t, Options{Photos: storage})
		photo, err := f.uc.AddProgressPhoto.Execute(ctx, models.ProgressPhotoInput{ImageDataURL: "data:image/jpeg;base64,AAA"})
		require.NoError(t, err)
		assert.Equal(t, "https://photos.example.com/p1.jpg", photo.ImageDataURL)
		assert.Equal(t, []string{"data:image/jpeg;base64,AAA"}, storage.uploaded)
	})

	t.Run("upload failure stores nothing", func(t *testing.T) {
		f := setup(t, Options{Photos: &fakeStorage{err: errors.New("s3 down")}})
		_, err := f.uc.AddProgressPhoto.Execute(ctx, models.ProgressPhotoInput{ImageDataURL: "data:x"})
		require.Error(t, err)
		photos, err := f.uc.GetProgressPhotos.Execute(ctx)
		require.NoError(t, err)
		assert.Empty(t, photos)
	})
}

func TestClearAllData(t *testing.T) {
	ctx := context.Background()
	f := setup(t, Options{})

	_, err := f.uc.AddMealEntry.Execute(ctx, today, models.MealInput{Name: "x", Calories: 1})
	require.NoError(t, err)
	require.NoError(t, f.uc.ClearAllData.Execute(ctx))

	meals, err := f.uc.GetMealsByDate.Execute(ctx, today)
	require.NoError(t, err)
	assert.Empty(t, meals)
	user, err := f.uc.GetUserProfile.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultUser(), user)
}

func collect(seq iter.Seq2[string, error]) (string, error) {
	var sb strings.Builder
	for chunk, err := range seq {
		if err != nil {
			return sb.String(), err
		}
		sb.WriteString(chunk)
	}
	return sb.String(), nil
}

func TestGetAICoachResponse(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		f := setup(t, Options{})
		assert.False(t, f.uc.GetAICoachResponse.Enabled())
		_, err := collect(f.uc.GetAICoachResponse.ExecuteStream(ctx, nil, "hi"))
		assert.ErrorIs(t, err, ErrCoachDisabled)
	})

	t.Run("streams chunks with the profile", func(t *testing.T) {
		coach := &fakeCoach{chunks: []string{"Hello ", "Alex", "!"}}
		f := setup(t, Options{Coach: coach})

		seq := f.uc.GetAICoachResponse.ExecuteStream(ctx, []models.ChatMessage{{Role: models.RoleUser, Text: "hey"}}, "plan my week")
		assert.Equal(t, 0, coach.calls, "nothing happens until the sequence is ranged over")

		text, err := collect(seq)
		require.NoError(t, err)
		assert.Equal(t, "Hello Alex!", text)
		assert.Equal(t, "Alex Ryder", coach.user.Name)
		assert.Equal(t, "plan my week", coach.msg)

		_, err = collect(seq)
		require.NoError(t, err)
		assert.Equal(t, 2, coach.calls, "each range starts a new request")
	})

	t.Run("early break", func(t *testing.T) {
		coach := &fakeCoach{chunks: []string{"a", "b", "c"}}
		f := setup(t, Options{Coach: coach})
		var got []string
		for chunk := range f.uc.GetAICoachResponse.ExecuteStream(ctx, nil, "hi") {
			got = append(got, chunk)
			if len(got) == 2 {
				break
			}
		}
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("errors", func(t *testing.T) {
		coach := &fakeCoach{chunks: []string{"par"}, err: errors.New("upstream closed")}
		f := setup(t, Options{Coach: coach})

		_, err := collect(f.uc.GetAICoachResponse.ExecuteStream(ctx, nil, "   "))
		assert.ErrorIs(t, err, ErrEmptyMessage)

		text, err := collect(f.uc.GetAICoachResponse.ExecuteStream(ctx, nil, "hi"))
		assert.EqualError(t, err, "upstream closed")
		assert.Equal(t, "par", text)
	})
}
