// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. It is immutable after registration.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // Display name, unique across users.
	Email        string    // Login identifier, unique across users.
	PasswordHash string    // Encoded argon2 hash. Never leaves the server.
	IsAdmin      bool      // Grants access to moderation operations.
	CreatedAt    time.Time // Timestamp of registration.
}

// Token is an opaque bearer credential bound to a single user.
type Token struct {
	Token     string    // The opaque secret presented as "Bearer <token>".
	UserID    uuid.UUID // The user this token authenticates.
	LastUsed  time.Time // Updated on each successful validation.
	CreatedAt time.Time // Timestamp of issuance.
}

// TokenOwner is the result of resolving a token: the user plus the token's usage record.
type TokenOwner struct {
	User     *User
	LastUsed time.Time
}
