package models

// Workout categories.
const (
	CategoryFullBody = "Full Body"
	CategoryUpper    = "Upper"
	CategoryLower    = "Lower"
	CategoryPush     = "Push"
	CategoryPull     = "Pull"
	CategoryLegs     = "Legs"
)

// WorkoutCategories lists every valid Workout.Category value.
var WorkoutCategories = []string{
	CategoryFullBody,
	CategoryUpper,
	CategoryLower,
	CategoryPush,
	CategoryPull,
	CategoryLegs,
}

// IsWorkoutCategory reports whether c is one of WorkoutCategories.
func IsWorkoutCategory(c string) bool {
	for _, v := range WorkoutCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Workout owns an ordered list of exercises. Exercises are stored in their
// own table and joined back on read.
type Workout struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Category  string     `json:"category"`
	Exercises []Exercise `json:"exercises"`
}

// Exercise belongs to exactly one workout.
type Exercise struct {
	ID          string `json:"id"`
	WorkoutID   string `json:"workoutId"`
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	VideoURL    string `json:"videoUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

// ExerciseInput is an exercise as supplied by a caller, before it is
// assigned an id and an owner.
type ExerciseInput struct {
	Name        string `json:"name" binding:"required"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	VideoURL    string `json:"videoUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

// WorkoutInput is the payload for creating or replacing a workout.
type WorkoutInput struct {
	Name      string          `json:"name" binding:"required"`
	Category  string          `json:"category"`
	Exercises []ExerciseInput `json:"exercises"`
}

// WorkoutPatch changes the scalar fields of a stored workout row.
type WorkoutPatch struct {
	Name     *string
	Category *string
}

// Apply merges the set fields into w.
func (p WorkoutPatch) Apply(w *Workout) {
	setIf(&w.Name, p.Name)
	setIf(&w.Category, p.Category)
}

// WorkoutFilters narrows GetWorkouts.
type WorkoutFilters struct {
	// ExerciseName keeps workouts having an exercise whose name contains
	// this text, case-insensitively. Blank means no filtering.
	ExerciseName string
}

// WeeklyWorkoutPlan assigns a workout to a day of the week (1=Mon..7=Sun).
type WeeklyWorkoutPlan struct {
	ID        string `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"`
	WorkoutID string `json:"workoutId"`
}

// WeeklyPlanPatch changes the workout assigned to a plan row.
type WeeklyPlanPatch struct {
	WorkoutID *string
}

// Apply merges the set fields into p.
func (p WeeklyPlanPatch) Apply(w *WeeklyWorkoutPlan) {
	setIf(&w.WorkoutID, p.WorkoutID)
}
