package usecase

import (
	"context"
	"errors"
	"iter"
	"time"

	"github.com/willythepapi/FITART-v1/internal/models"
	"github.com/willythepapi/FITART-v1/internal/repository"
)

// Validation errors returned by the use cases. Everything else comes from
// the repositories unchanged.
var (
	ErrInvalidDay      = errors.New("day of week must be between 1 and 7")
	ErrUnknownFood     = errors.New("unknown food")
	ErrInvalidGrams    = errors.New("grams must be greater than zero")
	ErrInvalidCategory = errors.New("unknown workout category")
	ErrInvalidSettings = errors.New("invalid settings")
	ErrEmptyMessage    = errors.New("message must not be empty")
	ErrCoachDisabled   = errors.New("AI coach is not configured")
)

// ICoachService streams an AI coach reply.
type ICoachService interface {
	StreamReply(ctx context.Context, user models.User, history []models.ChatMessage, message string) iter.Seq2[string, error]
}

// IPhotoStorage moves a photo data URL to external storage and returns the
// URL to keep instead.
type IPhotoStorage interface {
	Upload(ctx context.Context, dataURL string) (string, error)
}

// Options configures New. Zero values fall back to time.Local, time.Now,
// no coach and inline photo storage.
type Options struct {
	Location *time.Location
	Now      func() time.Time
	Coach    ICoachService
	Photos   IPhotoStorage
}

// UseCases is the full set of operations offered to the presentation layer.
type UseCases struct {
	GetUserProfile           *GetUserProfileUseCase
	UpdateUserProfile        *UpdateUserProfileUseCase
	GetWeightHistory         *GetWeightHistoryUseCase
	CalculateDailyTargets    *CalculateDailyTargetsUseCase
	GetWorkouts              *GetWorkoutsUseCase
	AddWorkout               *AddWorkoutUseCase
	UpdateWorkout            *UpdateWorkoutUseCase
	CompleteWorkout          *CompleteWorkoutUseCase
	GetTodayWorkout          *GetTodayWorkoutUseCase
	AddMealEntry             *AddMealEntryUseCase
	UpdateMealEntry          *UpdateMealEntryUseCase
	DeleteMealEntry          *DeleteMealEntryUseCase
	GetMealByID              *GetMealByIDUseCase
	GetMealsByDate           *GetMealsByDateUseCase
	SearchFoods              *SearchFoodsUseCase
	AddWaterIntake           *AddWaterIntakeUseCase
	GetDailyProgress         *GetDailyProgressUseCase
	GetProgressHistory       *GetProgressHistoryUseCase
	GetWeeklyPlan            *GetWeeklyPlanUseCase
	GetPlanByDay             *GetPlanByDayUseCase
	SetWeeklyWorkoutForDay   *SetWeeklyWorkoutForDayUseCase
	ClearWeeklyWorkoutForDay *ClearWeeklyWorkoutForDayUseCase
	GetAppSettings           *GetAppSettingsUseCase
	UpdateAppSettings        *UpdateAppSettingsUseCase
	AddProgressPhoto         *AddProgressPhotoUseCase
	GetProgressPhotos        *GetProgressPhotosUseCase
	ExportUserData           *ExportUserDataUseCase
	ClearAllData             *ClearAllDataUseCase
	GetAICoachResponse       *GetAICoachResponseUseCase

	clock clock
}

// New wires every use case to repos.
func New(repos *repository.Repositories, opts Options) *UseCases {
	c := newClock(opts.Location, opts.Now)
	return &UseCases{
		GetUserProfile:           &GetUserProfileUseCase{users: repos.Users},
		UpdateUserProfile:        &UpdateUserProfileUseCase{uow: repos.UnitOfWork, users: repos.Users, clock: c},
		GetWeightHistory:         &GetWeightHistoryUseCase{users: repos.Users},
		CalculateDailyTargets:    &CalculateDailyTargetsUseCase{},
		GetWorkouts:              &GetWorkoutsUseCase{workouts: repos.Workouts},
		AddWorkout:               &AddWorkoutUseCase{workouts: repos.Workouts},
		UpdateWorkout:            &UpdateWorkoutUseCase{workouts: repos.Workouts},
		CompleteWorkout:          &CompleteWorkoutUseCase{progress: repos.Progress},
		GetTodayWorkout:          &GetTodayWorkoutUseCase{plans: repos.WeeklyPlan, workouts: repos.Workouts, clock: c},
		AddMealEntry:             &AddMealEntryUseCase{uow: repos.UnitOfWork, nutrition: repos.Nutrition, progress: repos.Progress},
		UpdateMealEntry:          &UpdateMealEntryUseCase{uow: repos.UnitOfWork, nutrition: repos.Nutrition, progress: repos.Progress},
		DeleteMealEntry:          &DeleteMealEntryUseCase{uow: repos.UnitOfWork, nutrition: repos.Nutrition, progress: repos.Progress},
		GetMealByID:              &GetMealByIDUseCase{nutrition: repos.Nutrition},
		GetMealsByDate:           &GetMealsByDateUseCase{nutrition: repos.Nutrition},
		SearchFoods:              &SearchFoodsUseCase{},
		AddWaterIntake:           &AddWaterIntakeUseCase{progress: repos.Progress},
		GetDailyProgress:         &GetDailyProgressUseCase{progress: repos.Progress},
		GetProgressHistory:       &GetProgressHistoryUseCase{progress: repos.Progress},
		GetWeeklyPlan:            &GetWeeklyPlanUseCase{plans: repos.WeeklyPlan},
		GetPlanByDay:             &GetPlanByDayUseCase{plans: repos.WeeklyPlan},
		SetWeeklyWorkoutForDay:   &SetWeeklyWorkoutForDayUseCase{plans: repos.WeeklyPlan, workouts: repos.Workouts},
		ClearWeeklyWorkoutForDay: &ClearWeeklyWorkoutForDayUseCase{plans: repos.WeeklyPlan},
		GetAppSettings:           &GetAppSettingsUseCase{settings: repos.Settings},
		UpdateAppSettings:        &UpdateAppSettingsUseCase{uow: repos.UnitOfWork, settings: repos.Settings},
		AddProgressPhoto:         &AddProgressPhotoUseCase{photos: repos.Photos, storage: opts.Photos},
		GetProgressPhotos:        &GetProgressPhotosUseCase{photos: repos.Photos},
		ExportUserData:           &ExportUserDataUseCase{workouts: repos.Workouts, nutrition: repos.Nutrition, progress: repos.Progress, clock: c},
		ClearAllData:             &ClearAllDataUseCase{system: repos.System},
		GetAICoachResponse:       &GetAICoachResponseUseCase{users: repos.Users, coach: opts.Coach},
		clock:                    c,
	}
}

// Today returns the current date in the configured time zone.
func (u *UseCases) Today() string {
	return u.clock.today()
}

type clock struct {
	loc *time.Location
	now func() time.Time
}

func newClock(loc *time.Location, now func() time.Time) clock {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return clock{loc: loc, now: now}
}

func (c clock) local() time.Time {
	return c.now().In(c.loc)
}

func (c clock) today() string {
	return c.local().Format(models.DateLayout)
}
