package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/willythepapi/FITART-v1/internal/models"
	"github.com/willythepapi/FITART-v1/internal/repository"
)

// reminderLayout is the HH:MM format of reminder times.
const reminderLayout = "15:04"

// GetAppSettingsUseCase returns the settings, storing the defaults the
// first time they are read.
type GetAppSettingsUseCase struct {
	settings repository.ISettingsRepository
}

func (uc *GetAppSettingsUseCase) Execute(ctx context.Context) (models.AppSettings, error) {
	return uc.settings.EnsureSettings(ctx)
}

// UpdateAppSettingsUseCase changes the settings.
type UpdateAppSettingsUseCase struct {
	uow      repository.IUnitOfWork
	settings repository.ISettingsRepository
}

func (uc *UpdateAppSettingsUseCase) Execute(ctx context.Context, patch models.SettingsPatch) (models.AppSettings, error) {
	if err := validateSettings(patch); err != nil {
		return models.AppSettings{}, err
	}

	var settings models.AppSettings
	err := uc.uow.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := uc.settings.EnsureSettings(ctx); err != nil {
			return err
		}
		var err error
		settings, err = uc.settings.UpdateSettings(ctx, patch)
		return err
	})
	return settings, err
}

func validateSettings(p models.SettingsPatch) error {
	for _, t := range []*string{p.MealReminderTime, p.WorkoutReminderTime} {
		if t == nil {
			continue
		}
		if _, err := time.Parse(reminderLayout, *t); err != nil {
			return fmt.Errorf("%w: reminder time %q is not HH:MM", ErrInvalidSettings, *t)
		}
	}
	if p.WaterReminderInterval != nil && *p.WaterReminderInterval < 0 {
		return fmt.Errorf("%w: water reminder interval must not be negative", ErrInvalidSettings)
	}
	return nil
}
