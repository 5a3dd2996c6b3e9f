package database

import (
	"encoding/json"

	"github.com/willythepapi/FITART-v1/internal/models"
)

// CurrentSchemaVersion is the layout version written by this build.
const CurrentSchemaVersion = 6

// Document is the whole application state, persisted as one blob.
// User and Settings are singletons in memory and one-row tables on disk.
// Workout rows never carry exercises here; they live in Exercises.
type Document struct {
	SchemaVersion  int
	User           *models.User
	Workouts       []models.Workout
	Exercises      []models.Exercise
	Meals          []models.Meal
	DailyProgress  []models.DailyProgress
	WeightHistory  []models.WeightHistory
	WeeklyPlans    []models.WeeklyWorkoutPlan
	Settings       *models.AppSettings
	ProgressPhotos []models.ProgressPhoto
}

// wireDocument is the persisted layout.
type wireDocument struct {
	SchemaVersion  int                        `json:"schema_version"`
	Users          []models.User              `json:"users"`
	Workouts       []models.Workout           `json:"workouts"`
	Exercises      []models.Exercise          `json:"exercises"`
	Meals          []models.Meal              `json:"meals"`
	DailyProgress  []models.DailyProgress     `json:"daily_progress"`
	WeightHistory  []models.WeightHistory     `json:"weight_history"`
	WeeklyPlans    []models.WeeklyWorkoutPlan `json:"weekly_workout_plans"`
	AppSettings    []models.AppSettings       `json:"app_settings"`
	ProgressPhotos []models.ProgressPhoto     `json:"progress_photos"`
}

// Seed returns the state of a fresh install: the default user, default
// settings and empty tables.
func Seed() *Document {
	user := models.DefaultUser()
	settings := models.DefaultSettings()
	return &Document{
		SchemaVersion:  CurrentSchemaVersion,
		User:           &user,
		Workouts:       []models.Workout{},
		Exercises:      []models.Exercise{},
		Meals:          []models.Meal{},
		DailyProgress:  []models.DailyProgress{},
		WeightHistory:  []models.WeightHistory{},
		WeeklyPlans:    []models.WeeklyWorkoutPlan{},
		Settings:       &settings,
		ProgressPhotos: []models.ProgressPhoto{},
	}
}

func (d *Document) MarshalJSON() ([]byte, error) {
	w := wireDocument{
		SchemaVersion:  d.SchemaVersion,
		Users:          []models.User{},
		Workouts:       make([]models.Workout, 0, len(d.Workouts)),
		Exercises:      nonNil(d.Exercises),
		Meals:          nonNil(d.Meals),
		DailyProgress:  make([]models.DailyProgress, 0, len(d.DailyProgress)),
		WeightHistory:  nonNil(d.WeightHistory),
		WeeklyPlans:    nonNil(d.WeeklyPlans),
		AppSettings:    []models.AppSettings{},
		ProgressPhotos: nonNil(d.ProgressPhotos),
	}
	if d.User != nil {
		w.Users = append(w.Users, *d.User)
	}
	if d.Settings != nil {
		w.AppSettings = append(w.AppSettings, *d.Settings)
	}
	for _, wo := range d.Workouts {
		wo.Exercises = []models.Exercise{}
		w.Workouts = append(w.Workouts, wo)
	}
	for _, p := range d.DailyProgress {
		if p.WorkoutsCompleted == nil {
			p.WorkoutsCompleted = []string{}
		}
		w.DailyProgress = append(w.DailyProgress, p)
	}
	return json.Marshal(w)
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var w wireDocument
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*d = Document{
		SchemaVersion:  w.SchemaVersion,
		Workouts:       nonNil(w.Workouts),
		Exercises:      nonNil(w.Exercises),
		Meals:          nonNil(w.Meals),
		DailyProgress:  nonNil(w.DailyProgress),
		WeightHistory:  nonNil(w.WeightHistory),
		WeeklyPlans:    nonNil(w.WeeklyPlans),
		ProgressPhotos: nonNil(w.ProgressPhotos),
	}
	if len(w.Users) > 0 {
		u := w.Users[0]
		d.User = &u
	}
	for i := range w.AppSettings {
		if w.AppSettings[i].ID == models.SettingsID {
			s := w.AppSettings[i]
			d.Settings = &s
			break
		}
	}
	for i := range d.Workouts {
		d.Workouts[i].Exercises = nil
	}
	for i := range d.DailyProgress {
		if d.DailyProgress[i].WorkoutsCompleted == nil {
			d.DailyProgress[i].WorkoutsCompleted = []string{}
		}
	}
	return nil
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	c := &Document{
		SchemaVersion:  d.SchemaVersion,
		Workouts:       cloneRows(d.Workouts, Workouts.clone),
		Exercises:      cloneRows(d.Exercises, nil),
		Meals:          cloneRows(d.Meals, nil),
		DailyProgress:  cloneRows(d.DailyProgress, DailyProgress.clone),
		WeightHistory:  cloneRows(d.WeightHistory, nil),
		WeeklyPlans:    cloneRows(d.WeeklyPlans, nil),
		ProgressPhotos: cloneRows(d.ProgressPhotos, nil),
	}
	if d.User != nil {
		u := *d.User
		c.User = &u
	}
	if d.Settings != nil {
		s := *d.Settings
		c.Settings = &s
	}
	return c
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}

func cloneRows[T any](rows []T, clone func(T) T) []T {
	out := make([]T, len(rows))
	for i, r := range rows {
		if clone != nil {
			r = clone(r)
		}
		out[i] = r
	}
	return out
}
