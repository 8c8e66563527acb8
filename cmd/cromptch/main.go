package main

import (
	"context"
	"log/slog"
	"os"

	"cromptch/config"
	"cromptch/internal/delivery"
	"cromptch/internal/delivery/api"
	"cromptch/internal/infra/auth"
	"cromptch/internal/infra/captcha"
	logs "cromptch/internal/infra/log"
	"cromptch/internal/infra/media"
	"cromptch/internal/infra/metrics"
	"cromptch/internal/infra/persistence/postgres"
	"cromptch/internal/infra/pubsub"
	"cromptch/internal/infra/qrcode"
	"cromptch/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		api.Module,
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewTokenRepository,
			postgres.NewRecipeRepository,
			postgres.NewImageRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewArgon2Hasher,
			auth.NewTokenGenerator,
			captcha.NewCaptchaVerifier,
			qrcode.NewQRCodeService,
		),
		media.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewRecipeService,
			impl.NewImageService,
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				params.Logger.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
