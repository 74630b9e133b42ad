// Package artifact stores generated report files.
package artifact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"site-uptime-backend/config"
)

var (
	ErrNotFound      = errors.New("artifact not found")
	ErrAlreadyExists = errors.New("artifact already exists")
	ErrInvalidKey    = errors.New("invalid artifact key")
)

//go:generate mockgen -source=storage.go -destination=./mocks/storage_mock.go -package=mocks

// Storage writes and reads artifacts by key. Put never overwrites an existing key
// and never leaves a partially written artifact behind.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// New builds the storage selected by cfg.Driver.
func New(ctx context.Context, cfg config.ArtifactConfig) (Storage, error) {
	switch cfg.Driver {
	case "local", "":
		return NewLocalStorage(cfg.Dir)
	case "s3":
		return NewS3Storage(ctx, S3Config{
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			UseSSL:    cfg.S3.UseSSL,
			Prefix:    cfg.S3.Prefix,
		})
	default:
		return nil, fmt.Errorf("unsupported artifact driver: %q", cfg.Driver)
	}
}

// validateKey accepts relative, slash-separated keys that stay inside the root.
func validateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, `\`) {
		return ErrInvalidKey
	}
	clean := path.Clean(key)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return ErrInvalidKey
	}
	return nil
}
