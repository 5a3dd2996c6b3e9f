package repository

import (
	"context"
	"sort"

	"github.com/willythepapi/FITART-v1/internal/database"
	"github.com/willythepapi/FITART-v1/internal/models"
)

// ProgressPhotoRepository stores progress photos.
type ProgressPhotoRepository struct {
	base
}

var _ IProgressPhotoRepository = (*ProgressPhotoRepository)(nil)

// AddPhoto stores a photo stamped with the current time.
func (r *ProgressPhotoRepository) AddPhoto(ctx context.Context, in models.ProgressPhotoInput) (models.ProgressPhoto, error) {
	photo := models.ProgressPhoto{
		ID:           newID("pp"),
		ImageDataURL: in.ImageDataURL,
		Note:         in.Note,
		CreatedAt:    r.now().UnixMilli(),
	}
	return database.Insert(ctx, r.store, database.ProgressPhotos, photo)
}

// GetPhotos returns every photo, newest first.
func (r *ProgressPhotoRepository) GetPhotos(ctx context.Context) ([]models.ProgressPhoto, error) {
	photos, err := database.GetTable(ctx, r.store, database.ProgressPhotos)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(photos, func(i, j int) bool {
		return photos[i].CreatedAt > photos[j].CreatedAt
	})
	return photos, nil
}
