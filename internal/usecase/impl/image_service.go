package impl

import (
	"context"
	"io"
	"log/slog"

	deliverycontext "cromptch/internal/delivery/context"
	"cromptch/internal/domain/entity"
	domainerrors "cromptch/internal/domain/errors"
	"cromptch/internal/domain/repository"
	"cromptch/internal/domain/service"
	"cromptch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type imageService struct {
	imageRepo repository.ImageRepository
	host      service.MediaHost
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// ImageServiceParams holds dependencies for ImageService, injected by Fx.
// Host is nil when no media provider is configured.
type ImageServiceParams struct {
	fx.In

	ImageRepo repository.ImageRepository
	Host      service.MediaHost `optional:"true"`
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewImageService is the constructor for imageService.
func NewImageService(params ImageServiceParams) usecase.ImageUsecase {
	return &imageService{
		imageRepo: params.ImageRepo,
		host:      params.Host,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *imageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload forwards the file to the media host and records the returned id and delete token.
func (srv *imageService) Upload(ctx context.Context, owner *entity.User, filename string, content io.Reader) (*entity.Image, error) {
	if srv.host == nil {
		return nil, domainerrors.ErrImageUploadFailed.WrapMessage("media host not configured")
	}

	uploaded, err := srv.host.Upload(ctx, filename, content)
	if err != nil {
		srv.log(ctx).Warn("Image upload failed", slog.String("filename", filename), slog.Any("error", err))

		return nil, domainerrors.ErrImageUploadFailed.Wrap(err)
	}

	image := &entity.Image{
		ID:          uploaded.ID,
		DeleteToken: uploaded.DeleteToken,
		Owner:       &owner.ID,
	}
	if err := srv.imageRepo.Create(ctx, image); err != nil {
		srv.log(ctx).Error("Failed to record image", slog.String("imageID", uploaded.ID.String()), slog.Any("error", err))

		return nil, domainerrors.ErrImageEntryFailed.Wrap(err)
	}

	srv.metrics.ImageUploaded()
	srv.log(ctx).Info("Image uploaded",
		slog.String("imageID", image.ID.String()),
		slog.String("owner", owner.ID.String()),
	)

	return image, nil
}

func (srv *imageService) Fetch(ctx context.Context, id uuid.UUID) (*service.MediaObject, error) {
	if srv.host == nil {
		return nil, domainerrors.ErrImageNotFound
	}

	object, err := srv.host.Fetch(ctx, id)

	return srv.mediaResult(ctx, id, object, err)
}

func (srv *imageService) Thumbnail(ctx context.Context, id uuid.UUID) (*service.MediaObject, error) {
	if srv.host == nil {
		return nil, domainerrors.ErrImageNotFound
	}

	object, err := srv.host.Thumbnail(ctx, id)

	return srv.mediaResult(ctx, id, object, err)
}

// mediaResult reports every host failure as a missing image.
func (srv *imageService) mediaResult(ctx context.Context, id uuid.UUID, object *service.MediaObject, err error) (*service.MediaObject, error) {
	if err == nil {
		return object, nil
	}

	if !errors.Is(err, service.ErrMediaNotFound) {
		srv.log(ctx).Warn("Media host request failed", slog.String("imageID", id.String()), slog.Any("error", err))
	}

	return nil, domainerrors.ErrImageNotFound.Wrap(err)
}
