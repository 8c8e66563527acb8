package model

import (
	"time"

	"github.com/google/uuid"
)

// ImageModel mirrors the 'images' table.
type ImageModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DeleteToken string     `gorm:"type:text;not null"`
	Owner       *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ImageModel) TableName() string {
	return "images"
}
