package database

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/willythepapi/FITART-v1/internal/models"
)

// Migration upgrades a decoded blob in place. Apply reports whether it
// changed anything; it must leave an already-upgraded blob untouched.
type Migration struct {
	Version int
	Name    string
	Apply   func(root map[string]any) bool
}

// Migrations are applied in order to blobs whose schema_version is lower
// than the migration's Version. Blobs written before versioning have no
// schema_version and start at 0.
var Migrations = []Migration{
	{Version: 1, Name: "user_defaults", Apply: migrateUserDefaults},
	{Version: 2, Name: "newer_tables", Apply: migrateNewerTables},
	{Version: 3, Name: "water_reminder_interval", Apply: migrateWaterReminder},
	{Version: 4, Name: "weekly_plan_shape", Apply: migrateWeeklyPlanShape},
	{Version: 5, Name: "daily_progress_macros", Apply: migrateProgressMacros},
	{Version: 6, Name: "workout_category", Apply: migrateWorkoutCategory},
}

// Migrate brings a persisted blob up to CurrentSchemaVersion. It returns
// data unchanged and changed=false when there was nothing to do, so running
// it on its own output is a no-op.
func Migrate(data []byte) ([]byte, bool, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return nil, false, fmt.Errorf("failed to parse document: %w", err)
	}
	if root == nil {
		return nil, false, errors.New("document is empty")
	}

	version, err := schemaVersion(root)
	if err != nil {
		return nil, false, err
	}
	if version > CurrentSchemaVersion {
		return nil, false, fmt.Errorf("document schema version %d is newer than supported version %d", version, CurrentSchemaVersion)
	}

	changed := false
	for _, m := range Migrations {
		if version >= m.Version {
			continue
		}
		if m.Apply(root) {
			log.Printf("[Migrate] Applied migration %d %s", m.Version, m.Name)
			changed = true
		}
	}
	if version < CurrentSchemaVersion {
		root["schema_version"] = CurrentSchemaVersion
		changed = true
	}
	if !changed {
		return data, false, nil
	}

	out, err := json.Marshal(root)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode migrated document: %w", err)
	}
	return out, true, nil
}

// PendingMigrations lists the migrations Migrate would run on data.
func PendingMigrations(data []byte) ([]Migration, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	version, err := schemaVersion(root)
	if err != nil {
		return nil, err
	}

	var pending []Migration
	for _, m := range Migrations {
		if version < m.Version {
			pending = append(pending, m)
		}
	}
	return pending, nil
}

// MigrateStored upgrades the blob stored under key in place and returns
// the migrations that were pending. With dryRun nothing is written. A
// missing key has nothing to migrate.
func MigrateStored(ctx context.Context, kv KVStore, key string, dryRun bool) ([]Migration, error) {
	data, err := kv.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}

	pending, err := PendingMigrations(data)
	if err != nil {
		return nil, err
	}
	if dryRun || len(pending) == 0 {
		return pending, nil
	}

	out, changed, err := Migrate(data)
	if err != nil {
		return nil, err
	}
	if changed {
		if err := kv.Set(ctx, key, out); err != nil {
			return nil, fmt.Errorf("failed to save migrated data: %w", err)
		}
	}
	return pending, nil
}

func schemaVersion(root map[string]any) (int, error) {
	raw, ok := root["schema_version"]
	if !ok || raw == nil {
		return 0, nil
	}
	n, ok := raw.(json.Number)
	if !ok {
		return 0, fmt.Errorf("schema_version has unexpected type %T", raw)
	}
	v, err := n.Int64()
	if err != nil {
		return 0, fmt.Errorf("invalid schema_version: %w", err)
	}
	return int(v), nil
}

// rows returns the objects of the array stored under key.
func rows(root map[string]any, key string) []map[string]any {
	arr, _ := root[key].([]any)
	out := make([]map[string]any, 0, len(arr))
	for _, v := range arr {
		if m, ok := v.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func setDefault(obj map[string]any, key string, value any) bool {
	if _, ok := obj[key]; ok {
		return false
	}
	obj[key] = value
	return true
}

func migrateUserDefaults(root map[string]any) bool {
	users := rows(root, "users")
	if len(users) == 0 {
		return false
	}
	u := users[0]
	d := models.DefaultUser()

	changed := false
	for _, kv := range []struct {
		key   string
		value any
	}{
		{"calorieGoal", d.CalorieGoal},
		{"waterGoal", d.WaterGoal},
		{"workoutGoal", d.WorkoutGoal},
		{"gender", d.Gender},
		{"targetWeight", d.TargetWeight},
		{"activityLevel", d.ActivityLevel},
		{"stepsTarget", d.StepsTarget},
	} {
		if setDefault(u, kv.key, kv.value) {
			changed = true
		}
	}
	return changed
}

func migrateNewerTables(root map[string]any) bool {
	changed := false
	for _, key := range []string{"weight_history", "weekly_workout_plans", "progress_photos"} {
		if v, ok := root[key]; !ok || v == nil {
			root[key] = []any{}
			changed = true
		}
	}
	if v, ok := root["app_settings"]; !ok || v == nil {
		s := models.DefaultSettings()
		root["app_settings"] = []any{map[string]any{
			"id":                    s.ID,
			"mealReminderTime":      s.MealReminderTime,
			"workoutReminderTime":   s.WorkoutReminderTime,
			"waterReminderInterval": s.WaterReminderInterval,
		}}
		changed = true
	}
	return changed
}

func migrateWaterReminder(root map[string]any) bool {
	settings := rows(root, "app_settings")
	if len(settings) == 0 {
		return false
	}
	return setDefault(settings[0], "waterReminderInterval", models.DefaultSettings().WaterReminderInterval)
}

func migrateWeeklyPlanShape(root map[string]any) bool {
	changed := false
	for _, plan := range rows(root, "weekly_workout_plans") {
		for key := range plan {
			switch key {
			case "id", "dayOfWeek", "workoutId":
			default:
				delete(plan, key)
				changed = true
			}
		}
	}
	return changed
}

func migrateProgressMacros(root map[string]any) bool {
	changed := false
	for _, p := range rows(root, "daily_progress") {
		for _, key := range []string{"protein", "carbs", "fat"} {
			if setDefault(p, key, 0) {
				changed = true
			}
		}
	}
	return changed
}

func migrateWorkoutCategory(root map[string]any) bool {
	changed := false
	for _, w := range rows(root, "workouts") {
		if c, _ := w["category"].(string); c == "" {
			w["category"] = models.CategoryFullBody
			changed = true
		}
	}
	return changed
}
