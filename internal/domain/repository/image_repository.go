package repository

import (
	"context"

	"cromptch/internal/domain/entity"
)

// ImageRepository records images stored on the media host.
type ImageRepository interface {
	Create(ctx context.Context, image *entity.Image) error
}
