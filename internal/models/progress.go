package models

// DateLayout is the format of every calendar date (DailyProgress.Date,
// WeightHistory.Date and date parameters).
const DateLayout = "2006-01-02"

// DailyProgress aggregates one calendar day. Nutrition totals are kept up to
// date by applying deltas, never by summing meals.
type DailyProgress struct {
	ID                string   `json:"id"`
	Date              string   `json:"date"`
	CaloriesEaten     float64  `json:"caloriesEaten"`
	Protein           float64  `json:"protein"`
	Carbs             float64  `json:"carbs"`
	Fat               float64  `json:"fat"`
	WaterIntake       int      `json:"waterIntake"`
	WorkoutsCompleted []string `json:"workoutsCompleted"`
}

// NewDailyProgress returns the empty row for date.
func NewDailyProgress(date string) DailyProgress {
	return DailyProgress{
		ID:                "progress-" + date,
		Date:              date,
		WorkoutsCompleted: []string{},
	}
}

// HasCompleted reports whether workoutID is already recorded for the day.
func (p DailyProgress) HasCompleted(workoutID string) bool {
	for _, id := range p.WorkoutsCompleted {
		if id == workoutID {
			return true
		}
	}
	return false
}

// ProgressPatch changes stored aggregate fields. Callers compute the new
// values from the current row so every change stays a delta.
type ProgressPatch struct {
	CaloriesEaten     *float64
	Protein           *float64
	Carbs             *float64
	Fat               *float64
	WaterIntake       *int
	WorkoutsCompleted []string
}

// Apply merges the set fields into p.
func (pp ProgressPatch) Apply(p *DailyProgress) {
	setIf(&p.CaloriesEaten, pp.CaloriesEaten)
	setIf(&p.Protein, pp.Protein)
	setIf(&p.Carbs, pp.Carbs)
	setIf(&p.Fat, pp.Fat)
	setIf(&p.WaterIntake, pp.WaterIntake)
	if pp.WorkoutsCompleted != nil {
		p.WorkoutsCompleted = append([]string(nil), pp.WorkoutsCompleted...)
	}
}

// MacrosPatch returns the patch that adds delta to p's nutrition totals.
func MacrosPatch(p DailyProgress, delta Macros) ProgressPatch {
	calories := p.CaloriesEaten + delta.Calories
	protein := p.Protein + delta.Protein
	carbs := p.Carbs + delta.Carbs
	fat := p.Fat + delta.Fat
	return ProgressPatch{CaloriesEaten: &calories, Protein: &protein, Carbs: &carbs, Fat: &fat}
}

// ProgressPhoto is an append-only progress picture.
type ProgressPhoto struct {
	ID           string `json:"id"`
	ImageDataURL string `json:"imageDataUrl"`
	Note         string `json:"note,omitempty"`
	CreatedAt    int64  `json:"createdAt"`
}

// ProgressPhotoInput is a captured photo before it is stored.
type ProgressPhotoInput struct {
	ImageDataURL string `json:"imageDataUrl" binding:"required"`
	Note         string `json:"note,omitempty"`
}
