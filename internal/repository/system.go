package repository

import "context"

// SystemRepository runs whole-database operations.
type SystemRepository struct {
	base
}

var _ ISystemRepository = (*SystemRepository)(nil)

// ClearAllData wipes the persisted data and resets to the seed state.
func (r *SystemRepository) ClearAllData(ctx context.Context) error {
	return r.store.Clear(ctx)
}
