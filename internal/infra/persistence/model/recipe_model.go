package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecipeModel mirrors the 'recipes' table.
type RecipeModel struct {
	ID                 uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Title              string              `gorm:"type:text;not null"`
	Description        string              `gorm:"type:text;not null"`
	Author             uuid.UUID           `gorm:"type:uuid;not null;index"`
	ImageID            *uuid.UUID          `gorm:"type:uuid"`
	TimeEstimateActive decimal.NullDecimal `gorm:"type:numeric"`
	TimeEstimateTotal  decimal.NullDecimal `gorm:"type:numeric"`
	SourceURL          *string             `gorm:"type:text"`
	CreatedAt          time.Time           `gorm:"index"`
	EditedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// RecipeIngredientModel mirrors the 'recipe_ingredients' table. Num is the 0-based position.
type RecipeIngredientModel struct {
	RecipeID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Num      int             `gorm:"primaryKey"`
	Quantity decimal.Decimal `gorm:"type:numeric;not null"`
	Unit     string          `gorm:"type:text;not null"`
	Name     string          `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeIngredientModel) TableName() string {
	return "recipe_ingredients"
}

// RecipeStepModel mirrors the 'recipe_steps' table. Num is the 0-based position.
type RecipeStepModel struct {
	RecipeID    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Num         int        `gorm:"primaryKey"`
	Description string     `gorm:"type:text;not null"`
	ImageID     *uuid.UUID `gorm:"type:uuid"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeStepModel) TableName() string {
	return "recipe_steps"
}
