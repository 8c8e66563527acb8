// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cromptch/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")

	// ErrInvalidReference is returned when an insert references a missing row.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrConstraintViolated is returned when a value fails a check constraint.
	ErrConstraintViolated = errors.New("constraint violated")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Create persists a new user. Returns ErrDuplicate when the username or email is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns every user ordered by username.
	List(ctx context.Context) ([]*entity.User, error)
}
