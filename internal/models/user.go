package models

// Gender values accepted for User.Gender.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Activity levels used by the daily target calculation.
const (
	ActivityLow    = "low"
	ActivityMedium = "medium"
	ActivityHigh   = "high"
)

// Goals a user can pick on their profile.
const (
	GoalLoseWeight = "lose_weight"
	GoalMaintain   = "maintain"
	GoalGainMuscle = "gain_muscle"
)

// User is the single profile of the application.
type User struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	TargetWeight  float64 `json:"targetWeight"`
	ActivityLevel string  `json:"activityLevel"`
	Goal          string  `json:"goal"`
	CalorieGoal   int     `json:"calorieGoal"`
	WaterGoal     int     `json:"waterGoal"`
	WorkoutGoal   int     `json:"workoutGoal"`
	StepsTarget   int     `json:"stepsTarget"`
	PhotoDataURL  string  `json:"photoDataUrl,omitempty"`
}

// DefaultUser returns the profile a fresh database is seeded with.
func DefaultUser() User {
	return User{
		ID:            "user-1",
		Name:          "Alex Ryder",
		Age:           28,
		Gender:        GenderMale,
		Height:        180,
		Weight:        75,
		TargetWeight:  72,
		ActivityLevel: ActivityMedium,
		Goal:          GoalLoseWeight,
		CalorieGoal:   2500,
		WaterGoal:     3000,
		WorkoutGoal:   3,
		StepsTarget:   8000,
	}
}

// UserPatch carries the profile fields to change. Nil fields are left as is.
type UserPatch struct {
	Name          *string  `json:"name,omitempty"`
	Age           *int     `json:"age,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	Height        *float64 `json:"height,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	TargetWeight  *float64 `json:"targetWeight,omitempty"`
	ActivityLevel *string  `json:"activityLevel,omitempty"`
	Goal          *string  `json:"goal,omitempty"`
	CalorieGoal   *int     `json:"calorieGoal,omitempty"`
	WaterGoal     *int     `json:"waterGoal,omitempty"`
	WorkoutGoal   *int     `json:"workoutGoal,omitempty"`
	StepsTarget   *int     `json:"stepsTarget,omitempty"`
	PhotoDataURL  *string  `json:"photoDataUrl,omitempty"`
}

// Apply merges the set fields into u.
func (p UserPatch) Apply(u *User) {
	setIf(&u.Name, p.Name)
	setIf(&u.Age, p.Age)
	setIf(&u.Gender, p.Gender)
	setIf(&u.Height, p.Height)
	setIf(&u.Weight, p.Weight)
	setIf(&u.TargetWeight, p.TargetWeight)
	setIf(&u.ActivityLevel, p.ActivityLevel)
	setIf(&u.Goal, p.Goal)
	setIf(&u.CalorieGoal, p.CalorieGoal)
	setIf(&u.WaterGoal, p.WaterGoal)
	setIf(&u.WorkoutGoal, p.WorkoutGoal)
	setIf(&u.StepsTarget, p.StepsTarget)
	setIf(&u.PhotoDataURL, p.PhotoDataURL)
}

// WeightHistory is one entry of the append-only weight log.
type WeightHistory struct {
	ID     string  `json:"id"`
	UserID string  `json:"userId"`
	Weight float64 `json:"weight"`
	Date   string  `json:"date"`
}
