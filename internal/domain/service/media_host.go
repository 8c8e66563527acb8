package service

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
)

// ErrMediaNotFound is returned by a MediaHost when the requested object does not exist.
var ErrMediaNotFound = errors.New("media not found")

// UploadedMedia identifies an object stored on the media host.
type UploadedMedia struct {
	ID          uuid.UUID
	DeleteToken string
}

// MediaObject is binary content served back from the media host.
type MediaObject struct {
	Data        []byte
	ContentType string
}

// MediaHost is the external image store.
type MediaHost interface {
	Upload(ctx context.Context, filename string, content io.Reader) (*UploadedMedia, error)
	Fetch(ctx context.Context, id uuid.UUID) (*MediaObject, error)
	Thumbnail(ctx context.Context, id uuid.UUID) (*MediaObject, error)
}
