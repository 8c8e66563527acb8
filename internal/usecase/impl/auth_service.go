package impl

import (
	"context"
	"log/slog"
	"time"

	"cromptch/config"
	deliverycontext "cromptch/internal/delivery/context"
	"cromptch/internal/domain/entity"
	domainerrors "cromptch/internal/domain/errors"
	"cromptch/internal/domain/repository"
	"cromptch/internal/domain/service"
	"cromptch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	tokenRepo   repository.TokenRepository
	generator   service.TokenGenerator
	idleTimeout time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TokenRepo repository.TokenRepository
	Generator service.TokenGenerator
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var idleTimeout time.Duration
	if params.Config != nil && params.Config.Auth != nil {
		idleTimeout = params.Config.Auth.TokenIdleTimeout
	}

	return &authService{
		tokenRepo:   params.TokenRepo,
		generator:   params.Generator,
		idleTimeout: idleTimeout,
		now:         func() time.Time { return time.Now().UTC() },
		logger:      params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueToken creates and stores a fresh token for user.
func (srv *authService) IssueToken(ctx context.Context, user *entity.User) (string, error) {
	value, err := srv.generator.Generate()
	if err != nil {
		srv.log(ctx).Error("Failed to generate token", slog.Any("error", err))

		return "", domainerrors.ErrTokenCreateFailed.Wrap(err)
	}

	token := &entity.Token{
		Token:    value,
		UserID:   user.ID,
		LastUsed: srv.now(),
	}
	if err := srv.tokenRepo.Create(ctx, token); err != nil {
		srv.log(ctx).Error("Failed to store token", slog.String("userID", user.ID.String()), slog.Any("error", err))

		return "", domainerrors.ErrTokenCreateFailed.Wrap(err)
	}

	return value, nil
}

// Authenticate resolves the token with one join, enforces the idle timeout and bumps last_used.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	owner, err := srv.tokenRepo.FindOwner(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, domainerrors.ErrInvalidToken
		}

		srv.log(ctx).Error("Failed to look up token", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.Wrap(err)
	}

	now := srv.now()

	if srv.idleTimeout > 0 && now.Sub(owner.LastUsed) > srv.idleTimeout {
		if err := srv.tokenRepo.Delete(ctx, token); err != nil && !errors.Is(err, repository.ErrTokenNotFound) {
			srv.log(ctx).Warn("Failed to delete expired token", slog.Any("error", err))
		}

		return nil, domainerrors.ErrTokenExpired
	}

	if err := srv.tokenRepo.Touch(ctx, token, now); err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, domainerrors.ErrInvalidToken
		}

		srv.log(ctx).Error("Failed to update token", slog.String("userID", owner.User.ID.String()), slog.Any("error", err))

		return nil, domainerrors.ErrTokenUpdateFailed.Wrap(err)
	}

	return owner.User, nil
}

// RevokeToken deletes the token so it no longer authenticates.
func (srv *authService) RevokeToken(ctx context.Context, token string) error {
	if err := srv.tokenRepo.Delete(ctx, token); err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return domainerrors.ErrInvalidToken
		}

		srv.log(ctx).Error("Failed to revoke token", slog.Any("error", err))

		return domainerrors.ErrInternalError.Wrap(err)
	}

	return nil
}
