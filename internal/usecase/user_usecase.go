// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cromptch/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	// CaptchaToken is the hCaptcha response; required only when the verifier is enabled.
	CaptchaToken string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the issued bearer token with its owner.
type LoginOutput struct {
	User  *entity.User
	Token string
}

// UserUsecase defines the interface for credential operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Verify checks an email/password pair. A wrong password is indistinguishable from an unknown email.
	Verify(ctx context.Context, email, password string) (*entity.User, error)

	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ListUsers returns every account ordered by username.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
