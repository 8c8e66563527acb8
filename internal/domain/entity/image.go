package entity

import (
	"time"

	"github.com/google/uuid"
)

// Image is a ledger entry for an image stored on the external media host.
type Image struct {
	ID          uuid.UUID  // Identifier assigned by the media host.
	DeleteToken string     // Capability for deleting the image on the host.
	Owner       *uuid.UUID // Uploader, nil when unknown.
	CreatedAt   time.Time
}
