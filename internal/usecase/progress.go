package usecase

import (
	"context"

	"github.com/willythepapi/FITART-v1/internal/models"
	"github.com/willythepapi/FITART-v1/internal/repository"
)

// AddWaterIntakeUseCase adds water to a day.
type AddWaterIntakeUseCase struct {
	progress repository.IProgressRepository
}

func (uc *AddWaterIntakeUseCase) Execute(ctx context.Context, date string, amount int) (models.DailyProgress, error) {
	return uc.progress.AddWater(ctx, date, amount)
}

// GetDailyProgressUseCase returns a day's totals, creating the empty row
// the first time a day is read.
type GetDailyProgressUseCase struct {
	progress repository.IProgressRepository
}

func (uc *GetDailyProgressUseCase) Execute(ctx context.Context, date string) (models.DailyProgress, error) {
	return uc.progress.EnsureDailyProgress(ctx, date)
}

// GetProgressHistoryUseCase returns the recorded days in a date range.
type GetProgressHistoryUseCase struct {
	progress repository.IProgressRepository
}

func (uc *GetProgressHistoryUseCase) Execute(ctx context.Context, from, to string) ([]models.DailyProgress, error) {
	return uc.progress.GetProgressHistory(ctx, from, to)
}
