package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/willythepapi/FITART-v1/internal/database"
	"github.com/willythepapi/FITART-v1/internal/models"
)

// UserRepository stores the single user profile and the weight log.
type UserRepository struct {
	base
}

var _ IUserRepository = (*UserRepository)(nil)

// GetUser returns the profile.
func (r *UserRepository) GetUser(ctx context.Context) (models.User, error) {
	var user models.User
	err := r.store.View(ctx, func(d *database.Document) error {
		if d.User == nil {
			return fmt.Errorf("user not found: %w", ErrNotFound)
		}
		user = *d.User
		return nil
	})
	return user, err
}

// UpdateUser merges patch into the profile and returns the result.
func (r *UserRepository) UpdateUser(ctx context.Context, patch models.UserPatch) (models.User, error) {
	var user models.User
	err := r.store.Update(ctx, func(d *database.Document) error {
		if d.User == nil {
			return fmt.Errorf("user not found: %w", ErrNotFound)
		}
		updated := *d.User
		patch.Apply(&updated)
		d.User = &updated
		user = updated
		return nil
	})
	return user, err
}

// GetWeightHistory returns the weight log, oldest date first.
func (r *UserRepository) GetWeightHistory(ctx context.Context) ([]models.WeightHistory, error) {
	entries, err := database.GetTable(ctx, r.store, database.WeightHistory)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	return entries, nil
}

// AddWeightEntry appends a weight log entry for the current user.
func (r *UserRepository) AddWeightEntry(ctx context.Context, weight float64, date string) (models.WeightHistory, error) {
	var entry models.WeightHistory
	err := r.store.Update(ctx, func(d *database.Document) error {
		if d.User == nil {
			return fmt.Errorf("user not found: %w", ErrNotFound)
		}
		entry = models.WeightHistory{
			ID:     newID("wh"),
			UserID: d.User.ID,
			Weight: weight,
			Date:   date,
		}
		database.WeightHistory.Insert(d, entry)
		return nil
	})
	return entry, err
}
