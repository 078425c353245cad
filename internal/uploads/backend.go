// Package uploads stores admin uploaded images and videos in object storage
// or on local disk.
package uploads

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/mgfilms/site-service/internal/config"
)

var (
	ErrPresignUnsupported = errors.New("presigned uploads are not supported by this storage backend")
	ErrObjectNotFound     = errors.New("object not found")
)

// Backend is where upload bytes end up.
type Backend interface {
	Name() string
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)
	PublicURL(key string) string
}

func s3Configured(cfg config.S3) bool {
	return cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" && (cfg.Endpoint != "" || cfg.AccountID != "")
}

func minioConfigured(cfg config.Minio) bool {
	return cfg.Endpoint != "" && cfg.AccessKey != "" && cfg.SecretKey != ""
}

// NewBackend picks the backend named by cfg.Upload.Driver. "auto" prefers
// S3, then MinIO, then local disk.
func NewBackend(ctx context.Context, cfg *config.Config) (Backend, error) {
	driver := cfg.Upload.Driver
	if driver == "auto" {
		switch {
		case s3Configured(cfg.S3):
			driver = "s3"
		case minioConfigured(cfg.Minio):
			driver = "minio"
		default:
			driver = "local"
		}
	}

	var (
		backend Backend
		err     error
	)
	switch driver {
	case "s3":
		backend, err = NewS3Backend(ctx, cfg.S3)
	case "minio":
		backend, err = NewMinioBackend(ctx, cfg.Minio)
	case "local":
		backend, err = NewLocalBackend(cfg.Upload.LocalDir, cfg.Upload.PublicPath)
	default:
		err = errors.New("unknown upload driver " + driver)
	}
	if err != nil {
		return nil, err
	}

	slog.Info("Upload storage ready", slog.String("backend", backend.Name()))
	return backend, nil
}
