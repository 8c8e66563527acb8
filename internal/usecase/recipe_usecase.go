package usecase

import (
	"context"

	"cromptch/internal/domain/entity"

	"github.com/google/uuid"
)

// ListRecipesInput selects a page of recipes. A nil Limit means the configured default.
type ListRecipesInput struct {
	Limit *int
	Sort  entity.RecipeSort
}

// RecipeDetails is a full recipe together with its author's display name.
type RecipeDetails struct {
	Recipe     *entity.Recipe
	AuthorName string
}

// RecipeUsecase defines the recipe aggregate operations.
type RecipeUsecase interface {
	Create(ctx context.Context, author *entity.User, input *entity.RecipeCreation) (*RecipeDetails, error)
	Get(ctx context.Context, id uuid.UUID) (*RecipeDetails, error)
	List(ctx context.Context, input ListRecipesInput) ([]*entity.RecipeMetadata, error)
	Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error

	// ShareQR renders a PNG QR code linking to the recipe's public page.
	ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
