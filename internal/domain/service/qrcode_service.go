package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates shareable QR codes for recipes
type QRCodeService interface {
	// GenerateRecipeQR returns a PNG QR code pointing at the recipe's public page
	GenerateRecipeQR(recipeID uuid.UUID) ([]byte, error)

	// RecipeURL returns the public URL encoded in the recipe's QR code
	RecipeURL(recipeID uuid.UUID) string
}
