// Package storage keeps uploaded document files on local disk or in S3.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"rentdesk-backend/pkg/config"
)

// ErrNotFound is returned by Open when no object exists under the key
var ErrNotFound = errors.New("object not found")

// Storage is an object store addressed by slash separated keys
type Storage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// New builds the backend selected by cfg.StorageBackend
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.StorageBackend {
	case "s3":
		return NewS3Storage(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3Prefix)
	case "local", "":
		return NewLocalStorage(cfg.UploadDir)
	default:
		return nil, fmt.Errorf("unsupported STORAGE_BACKEND %q", cfg.StorageBackend)
	}
}
