package repository

import (
	"context"
	"errors"
	"time"

	"cromptch/internal/domain/entity"
)

// ErrTokenNotFound is returned when a presented token is not on record.
var ErrTokenNotFound = errors.New("token not found")

// TokenRepository stores opaque bearer tokens.
type TokenRepository interface {
	Create(ctx context.Context, token *entity.Token) error

	// FindOwner resolves a token to its user with a single join.
	FindOwner(ctx context.Context, token string) (*entity.TokenOwner, error)

	// Touch sets last_used for the token.
	Touch(ctx context.Context, token string, at time.Time) error

	// Delete removes the token. Returns ErrTokenNotFound when nothing was deleted.
	Delete(ctx context.Context, token string) error
}
