package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/willythepapi/FITART-v1/internal/database"
	"github.com/willythepapi/FITART-v1/internal/models"
)

// ErrNotFound is returned, possibly wrapped, when a record does not exist.
var ErrNotFound = database.ErrNotFound

// Clock returns the current time.
type Clock func() time.Time

// Repositories bundles every repository over one Store.
type Repositories struct {
	UnitOfWork IUnitOfWork
	Users      IUserRepository
	Workouts   IWorkoutRepository
	Nutrition  INutritionRepository
	Progress   IProgressRepository
	WeeklyPlan IWeeklyPlanRepository
	Settings   ISettingsRepository
	Photos     IProgressPhotoRepository
	System     ISystemRepository
}

// New creates the repositories. Calendar days are computed in loc; a nil
// loc means time.Local and a nil now means time.Now.
func New(store *database.Store, loc *time.Location, now Clock) *Repositories {
	b := newBase(store, loc, now)
	return &Repositories{
		UnitOfWork: store,
		Users:      &UserRepository{base: b},
		Workouts:   &WorkoutRepository{base: b},
		Nutrition:  &NutritionRepository{base: b},
		Progress:   &ProgressRepository{base: b},
		WeeklyPlan: &WeeklyPlanRepository{base: b},
		Settings:   &SettingsRepository{base: b},
		Photos:     &ProgressPhotoRepository{base: b},
		System:     &SystemRepository{base: b},
	}
}

type base struct {
	store *database.Store
	loc   *time.Location
	now   Clock
}

func newBase(store *database.Store, loc *time.Location, now Clock) base {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return base{store: store, loc: loc, now: now}
}

// dayBounds returns the first and last millisecond of date in b.loc.
func (b base) dayBounds(date string) (int64, int64, error) {
	start, err := time.ParseInLocation(models.DateLayout, date, b.loc)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	end := start.AddDate(0, 0, 1)
	return start.UnixMilli(), end.UnixMilli() - 1, nil
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
