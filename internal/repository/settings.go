package repository

import (
	"context"
	"fmt"

	"github.com/willythepapi/FITART-v1/internal/database"
	"github.com/willythepapi/FITART-v1/internal/models"
)

// SettingsRepository stores the settings singleton.
type SettingsRepository struct {
	base
}

var _ ISettingsRepository = (*SettingsRepository)(nil)

// GetSettings returns the settings or ErrNotFound.
func (r *SettingsRepository) GetSettings(ctx context.Context) (models.AppSettings, error) {
	var settings models.AppSettings
	err := r.store.View(ctx, func(d *database.Document) error {
		if d.Settings == nil {
			return fmt.Errorf("settings: %w", ErrNotFound)
		}
		settings = *d.Settings
		return nil
	})
	return settings, err
}

// EnsureSettings returns the settings, storing the defaults first if there
// are none.
func (r *SettingsRepository) EnsureSettings(ctx context.Context) (models.AppSettings, error) {
	var settings models.AppSettings
	err := r.store.Update(ctx, func(d *database.Document) error {
		if d.Settings != nil {
			settings = *d.Settings
			return database.ErrUnchanged
		}
		settings = models.DefaultSettings()
		d.Settings = &settings
		return nil
	})
	return settings, err
}

// UpdateSettings merges patch into the settings.
func (r *SettingsRepository) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.AppSettings, error) {
	var settings models.AppSettings
	err := r.store.Update(ctx, func(d *database.Document) error {
		if d.Settings == nil {
			return fmt.Errorf("Settings not found for update: %w", ErrNotFound)
		}
		updated := *d.Settings
		patch.Apply(&updated)
		d.Settings = &updated
		settings = updated
		return nil
	})
	return settings, err
}
