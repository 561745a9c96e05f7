package service

import (
	"context"
	"io"
)

// ImageStore defines the interface for storing product images in a blob bucket.
type ImageStore interface {
	// Upload writes the image under the given key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// Delete removes the image stored under the given key.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying bucket handle.
	Close() error
}
