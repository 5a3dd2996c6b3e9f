package usecase

import (
	"context"

	"github.com/willythepapi/FITART-v1/internal/repository"
)

// ClearAllDataUseCase wipes every record and restores the seed data.
type ClearAllDataUseCase struct {
	system repository.ISystemRepository
}

func (uc *ClearAllDataUseCase) Execute(ctx context.Context) error {
	return uc.system.ClearAllData(ctx)
}
