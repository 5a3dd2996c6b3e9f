package models

// SettingsID is the fixed id of the settings record.
const SettingsID = "singleton-settings"

// AppSettings holds reminder configuration.
type AppSettings struct {
	ID                  string `json:"id"`
	MealReminderTime    string `json:"mealReminderTime"`
	WorkoutReminderTime string `json:"workoutReminderTime"`

	// WaterReminderInterval is in minutes; 0 turns the reminder off.
	WaterReminderInterval int `json:"waterReminderInterval"`
}

// DefaultSettings returns the settings a fresh database is seeded with.
func DefaultSettings() AppSettings {
	return AppSettings{
		ID:                    SettingsID,
		MealReminderTime:      "08:30",
		WorkoutReminderTime:   "18:00",
		WaterReminderInterval: 30,
	}
}

// SettingsPatch changes a subset of the settings.
type SettingsPatch struct {
	MealReminderTime      *string `json:"mealReminderTime,omitempty"`
	WorkoutReminderTime   *string `json:"workoutReminderTime,omitempty"`
	WaterReminderInterval *int    `json:"waterReminderInterval,omitempty"`
}

// Apply merges the set fields into s.
func (p SettingsPatch) Apply(s *AppSettings) {
	setIf(&s.MealReminderTime, p.MealReminderTime)
	setIf(&s.WorkoutReminderTime, p.WorkoutReminderTime)
	setIf(&s.WaterReminderInterval, p.WaterReminderInterval)
}
