// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "cromptch/internal/delivery/context"
	"cromptch/internal/domain/entity"
	domainerrors "cromptch/internal/domain/errors"
	"cromptch/internal/domain/repository"
	"cromptch/internal/domain/service"
	"cromptch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minUsernameLength = 3
	minPasswordLength = 8
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	captcha  service.CaptchaVerifier
	auth     usecase.AuthUsecase
	metrics  service.MetricsRecorder
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Captcha  service.CaptchaVerifier
	Auth     usecase.AuthUsecase
	Metrics  service.MetricsRecorder
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		captcha:  params.Captcha,
		auth:     params.Auth,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a non-admin account after the CAPTCHA gate and input validation.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Creating user", slog.String("username", input.Username))

	if err := srv.checkCaptcha(ctx, input.CaptchaToken); err != nil {
		return nil, err
	}

	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHash.Wrap(err)
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		IsAdmin:      false,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domainerrors.ErrUserTaken
		}

		srv.log(ctx).Error("Failed to create user", slog.String("username", input.Username), slog.Any("error", err))

		return nil, domainerrors.ErrUserCreateFailed.Wrap(err)
	}

	srv.metrics.UserRegistered()
	srv.log(ctx).Info("User created", slog.String("userID", user.ID.String()))

	return user, nil
}

func (srv *userService) checkCaptcha(ctx context.Context, token string) error {
	if !srv.captcha.Enabled() {
		return nil
	}

	if token == "" {
		return domainerrors.ErrCaptchaMissing
	}

	ok, err := srv.captcha.Verify(ctx, token)
	if err != nil {
		srv.log(ctx).Error("hCaptcha verification failed", slog.Any("error", err))

		return domainerrors.ErrCaptchaVerifyFailed.Wrap(err)
	}
	if !ok {
		return domainerrors.ErrCaptchaInvalid
	}

	return nil
}

func validateRegistration(input *usecase.RegisterInput) error {
	if utf8.RuneCountInString(input.Username) < minUsernameLength {
		return domainerrors.ErrUsernameTooShort
	}
	if utf8.RuneCountInString(input.Password) < minPasswordLength {
		return domainerrors.ErrPasswordTooShort
	}
	if !strings.Contains(input.Email, "@") {
		return domainerrors.ErrInvalidEmail
	}

	return nil
}

// Verify looks the user up by email and checks the password against the stored hash.
func (srv *userService) Verify(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		srv.log(ctx).Error("Failed to look up user", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.Wrap(err)
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrUserNotFound
	}

	return user, nil
}

// Login verifies the credentials and issues a new bearer token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Logging in user", slog.String("email", input.Email))

	user, err := srv.Verify(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	token, err := srv.auth.IssueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.metrics.LoginSucceeded()
	srv.log(ctx).Info("User logged in", slog.String("userID", user.ID.String()))

	return &usecase.LoginOutput{User: user, Token: token}, nil
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.Wrap(err)
	}

	return users, nil
}
