package usecase

import (
	"context"
	"io"

	"cromptch/internal/domain/entity"
	"cromptch/internal/domain/service"

	"github.com/google/uuid"
)

// ImageUsecase stores images on the media host and keeps the local ledger.
type ImageUsecase interface {
	Upload(ctx context.Context, owner *entity.User, filename string, content io.Reader) (*entity.Image, error)
	Fetch(ctx context.Context, id uuid.UUID) (*service.MediaObject, error)
	Thumbnail(ctx context.Context, id uuid.UUID) (*service.MediaObject, error)
}
