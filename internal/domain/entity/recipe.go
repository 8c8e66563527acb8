package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecipeMetadata is the root of the recipe aggregate.
type RecipeMetadata struct {
	ID                 uuid.UUID
	Title              string
	Description        string
	Author             uuid.UUID
	ImageID            *uuid.UUID
	TimeEstimateActive *decimal.Decimal // minutes
	TimeEstimateTotal  *decimal.Decimal // minutes
	SourceURL          *string
	CreatedAt          time.Time
	EditedAt           time.Time
}

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Quantity decimal.Decimal
	Unit     string
	Name     string
}

// Step is one instruction of a recipe.
type Step struct {
	Description string
	ImageID     *uuid.UUID
}

// Recipe is the full aggregate. Ingredients and Steps keep their authored order.
type Recipe struct {
	RecipeMetadata

	Ingredients []Ingredient
	Steps       []Step
}

// RecipeCreation is the author-supplied content of a new recipe.
type RecipeCreation struct {
	Title              string
	Description        string
	ImageID            *uuid.UUID
	TimeEstimateActive *decimal.Decimal
	TimeEstimateTotal  *decimal.Decimal
	SourceURL          *string
	Ingredients        []Ingredient
	Steps              []Step
}

// RecipeSort is the closed set of orderings for recipe listings.
type RecipeSort int

const (
	RecipeSortCreatedAsc RecipeSort = iota + 1
	RecipeSortCreatedDesc
	RecipeSortTitleAsc
	RecipeSortTitleDesc
)

var recipeSortNames = map[RecipeSort]string{
	RecipeSortCreatedAsc:  "created_asc",
	RecipeSortCreatedDesc: "created_desc",
	RecipeSortTitleAsc:    "title_asc",
	RecipeSortTitleDesc:   "title_desc",
}

// String returns the boundary name of the ordering.
func (s RecipeSort) String() string {
	if name, ok := recipeSortNames[s]; ok {
		return name
	}

	return "unknown"
}

// Valid reports whether s is one of the defined orderings.
func (s RecipeSort) Valid() bool {
	_, ok := recipeSortNames[s]

	return ok
}

// ParseRecipeSort maps a query value to a RecipeSort. Names and the legacy
// numeric codes 1-4 are accepted; anything else falls back to oldest first.
func ParseRecipeSort(raw string) RecipeSort {
	raw = strings.ToLower(strings.TrimSpace(raw))

	for sort, name := range recipeSortNames {
		if name == raw {
			return sort
		}
	}

	if n, err := strconv.Atoi(raw); err == nil && RecipeSort(n).Valid() {
		return RecipeSort(n)
	}

	return RecipeSortCreatedAsc
}
