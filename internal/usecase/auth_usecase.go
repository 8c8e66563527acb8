package usecase

import (
	"context"

	"cromptch/internal/domain/entity"
)

// AuthUsecase issues and validates opaque bearer tokens.
type AuthUsecase interface {
	IssueToken(ctx context.Context, user *entity.User) (string, error)

	// Authenticate resolves a token to its user and records the use.
	Authenticate(ctx context.Context, token string) (*entity.User, error)

	RevokeToken(ctx context.Context, token string) error
}
