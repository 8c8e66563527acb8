package repository

import (
	"context"
	"errors"

	"cromptch/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecipeNotFound is returned when no recipe metadata row matches.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository persists the recipe aggregate across its metadata, ingredient and step tables.
// Multi-table writes must run through TransactionManager.
type RecipeRepository interface {
	CreateMetadata(ctx context.Context, meta *entity.RecipeMetadata) error

	// CreateIngredients inserts the ingredients with their slice index as position.
	CreateIngredients(ctx context.Context, recipeID uuid.UUID, ingredients []entity.Ingredient) error

	// CreateSteps inserts the steps with their slice index as position.
	CreateSteps(ctx context.Context, recipeID uuid.UUID, steps []entity.Step) error

	FindMetadata(ctx context.Context, id uuid.UUID) (*entity.RecipeMetadata, error)
	FindIngredients(ctx context.Context, recipeID uuid.UUID) ([]entity.Ingredient, error)
	FindSteps(ctx context.Context, recipeID uuid.UUID) ([]entity.Step, error)

	// List returns up to limit metadata rows in the requested order.
	List(ctx context.Context, limit int, sort entity.RecipeSort) ([]*entity.RecipeMetadata, error)

	// Delete removes the recipe; ingredients and steps cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}
