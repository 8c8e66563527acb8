package handler

import (
	"context"
	"log/slog"
	"net/http"

	"cromptch/internal/delivery/api/middleware"
	"cromptch/internal/delivery/api/response"
	domainerrors "cromptch/internal/domain/errors"
	"cromptch/internal/domain/service"
	"cromptch/internal/errors"
	"cromptch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const uploadFormField = "file"

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	ImageUC usecase.ImageUsecase
	Logger  *slog.Logger
}

type ImageHandler struct {
	imageUC usecase.ImageUsecase
	logger  *slog.Logger
}

func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{
		imageUC: params.ImageUC,
		logger:  params.Logger,
	}
}

// Upload accepts a multipart form with the image in the "file" field.
func (h *ImageHandler) Upload(c echo.Context) error {
	owner, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	header, err := c.FormFile(uploadFormField)
	if err != nil {
		return domainerrors.ErrImageUploadFailed.Wrap(err)
	}

	file, err := header.Open()
	if err != nil {
		return domainerrors.ErrImageUploadFailed.Wrap(err)
	}
	defer file.Close()

	image, err := h.imageUC.Upload(c.Request().Context(), owner, header.Filename, file)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, IDResponse{ID: image.ID})
}

func (h *ImageHandler) Fetch(c echo.Context) error {
	return h.serve(c, h.imageUC.Fetch)
}

func (h *ImageHandler) Thumbnail(c echo.Context) error {
	return h.serve(c, h.imageUC.Thumbnail)
}

func (h *ImageHandler) serve(c echo.Context, load func(context.Context, uuid.UUID) (*service.MediaObject, error)) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrImageNotFound
	}

	object, err := load(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Blob(c, object.ContentType, object.Data)
}
