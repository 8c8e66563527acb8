// Package media adapts external image stores to service.MediaHost.
package media

import (
	"context"
	"log/slog"

	"cromptch/config"
	"cromptch/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HostParams holds dependencies for MediaHost, injected by Fx
type HostParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMediaHost selects the image store from media.provider.
// It returns a nil host when no provider is configured; image routes are then not mounted.
func NewMediaHost(params HostParams) (service.MediaHost, error) {
	return newMediaHost(params.Ctx, params.Config.Media, params.Logger)
}

func newMediaHost(ctx context.Context, cfg *config.MediaConfig, logger *slog.Logger) (service.MediaHost, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Media host not configured, image routes disabled")

		return nil, nil
	}

	switch cfg.Provider {
	case config.MediaProviderPictrs:
		if cfg.PictrsURL == "" {
			return nil, errors.New("pictrs url is required for pictrs provider")
		}
		logger.Info("Using pict-rs media host", slog.String("url", cfg.PictrsURL))

		return NewPictrsHost(cfg.PictrsURL, logger), nil

	case config.MediaProviderS3:
		if cfg.S3.Bucket == "" {
			return nil, errors.New("bucket is required for s3 provider")
		}
		logger.Info("Using S3 media host",
			slog.String("bucket", cfg.S3.Bucket),
			slog.String("endpoint", cfg.S3.Endpoint),
		)

		return NewS3Host(ctx, cfg.S3, logger)

	default:
		return nil, errors.Errorf("unknown media provider: %s", cfg.Provider)
	}
}

// Module provides the media FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMediaHost),
)
