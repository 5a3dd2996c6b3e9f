package usecase

import (
	"context"

	"github.com/willythepapi/FITART-v1/internal/models"
	"github.com/willythepapi/FITART-v1/internal/repository"
)

// GetUserProfileUseCase returns the profile.
type GetUserProfileUseCase struct {
	users repository.IUserRepository
}

func (uc *GetUserProfileUseCase) Execute(ctx context.Context) (models.User, error) {
	return uc.users.GetUser(ctx)
}

// UpdateUserProfileUseCase saves profile changes and logs a weight history
// entry dated today when the weight changed.
type UpdateUserProfileUseCase struct {
	uow   repository.IUnitOfWork
	users repository.IUserRepository
	clock clock
}

func (uc *UpdateUserProfileUseCase) Execute(ctx context.Context, patch models.UserPatch) (models.User, error) {
	var updated models.User
	err := uc.uow.RunInTransaction(ctx, func(ctx context.Context) error {
		previous, err := uc.users.GetUser(ctx)
		if err != nil {
			return err
		}
		updated, err = uc.users.UpdateUser(ctx, patch)
		if err != nil {
			return err
		}
		if updated.Weight != previous.Weight {
			_, err = uc.users.AddWeightEntry(ctx, updated.Weight, uc.clock.today())
		}
		return err
	})
	return updated, err
}

// GetWeightHistoryUseCase returns the weight log, oldest first.
type GetWeightHistoryUseCase struct {
	users repository.IUserRepository
}

func (uc *GetWeightHistoryUseCase) Execute(ctx context.Context) ([]models.WeightHistory, error) {
	return uc.users.GetWeightHistory(ctx)
}
