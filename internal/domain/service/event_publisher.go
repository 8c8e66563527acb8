package service

import (
	"context"
	"time"
)

// Recipe event types.
const (
	RecipeEventCreated = "recipe.created"
	RecipeEventDeleted = "recipe.deleted"
)

// RecipeEvent describes a change to a recipe for downstream consumers
type RecipeEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	RecipeID   string    `json:"recipe_id"`
	AuthorID   string    `json:"author_id"`
	ActorID    string    `json:"actor_id"`
	Title      string    `json:"title"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRecipeEvent publishes a recipe event for async processing
	PublishRecipeEvent(ctx context.Context, event *RecipeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
