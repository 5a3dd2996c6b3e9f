package usecase

import (
	"context"
	"fmt"

	"github.com/willythepapi/FITART-v1/internal/models"
	"github.com/willythepapi/FITART-v1/internal/repository"
)

// AddProgressPhotoUseCase stores a captured photo. With external storage
// configured the image is uploaded and only its URL is kept.
type AddProgressPhotoUseCase struct {
	photos  repository.IProgressPhotoRepository
	storage IPhotoStorage
}

func (uc *AddProgressPhotoUseCase) Execute(ctx context.Context, in models.ProgressPhotoInput) (models.ProgressPhoto, error) {
	if uc.storage != nil {
		url, err := uc.storage.Upload(ctx, in.ImageDataURL)
		if err != nil {
			return models.ProgressPhoto{}, fmt.Errorf("failed to upload photo: %w", err)
		}
		in.ImageDataURL = url
	}
	return uc.photos.AddPhoto(ctx, in)
}

// GetProgressPhotosUseCase returns every photo, newest first.
type GetProgressPhotosUseCase struct {
	photos repository.IProgressPhotoRepository
}

func (uc *GetProgressPhotosUseCase) Execute(ctx context.Context) ([]models.ProgressPhoto, error) {
	return uc.photos.GetPhotos(ctx)
}
