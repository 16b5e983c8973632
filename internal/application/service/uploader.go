package service

import (
	"context"
	"io"
)

// Uploader stores an image and returns the path it is addressable under.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
