package postgres

import (
	"context"

	"cromptch/internal/domain/entity"
	domainerrors "cromptch/internal/domain/errors"
	"cromptch/internal/domain/repository"
	"cromptch/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository is the constructor for imageRepository.
func NewImageRepository(db *gorm.DB) repository.ImageRepository {
	return &imageRepository{db: db}
}

func (repo *imageRepository) Create(ctx context.Context, image *entity.Image) error {
	imageM := &model.ImageModel{
		ID:          image.ID,
		DeleteToken: image.DeleteToken,
		Owner:       image.Owner,
	}

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicate
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInvalidReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create image")
	}

	image.CreatedAt = imageM.CreatedAt

	return nil
}
