package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/mgfilms/site-service/internal/config"
)

type MinioBackend struct {
	client     *minio.Client
	bucketName string
	publicURL  string
	useSSL     bool
}

// NewMinioBackend connects to MinIO and creates the bucket if needed.
func NewMinioBackend(ctx context.Context, cfg config.Minio) (*MinioBackend, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	b := &MinioBackend{
		client:     client,
		bucketName: cfg.Bucket,
		publicURL:  strings.TrimRight(cfg.PublicURL, "/"),
		useSSL:     cfg.UseSSL,
	}

	if err := b.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	return b, nil
}

// ensureBucket creates the bucket if it doesn't exist
func (b *MinioBackend) ensureBucket(ctx context.Context) error {
	exists, err := b.client.BucketExists(ctx, b.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check if bucket exists: %w", err)
	}

	if !exists {
		if err := b.client.MakeBucket(ctx, b.bucketName, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

func (b *MinioBackend) Name() string { return "minio" }

func (b *MinioBackend) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := b.client.PutObject(ctx, b.bucketName, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("minio put %s: %w", key, err)
	}
	return nil
}

func (b *MinioBackend) Delete(ctx context.Context, key string) error {
	if _, err := b.client.StatObject(ctx, b.bucketName, key, minio.StatObjectOptions{}); err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return ErrObjectNotFound
		}
		return fmt.Errorf("minio stat %s: %w", key, err)
	}
	return b.client.RemoveObject(ctx, b.bucketName, key, minio.RemoveObjectOptions{})
}

func (b *MinioBackend) PresignPut(ctx context.Context, key, _ string, ttl time.Duration) (string, error) {
	u, err := b.client.PresignedPutObject(ctx, b.bucketName, key, ttl)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return u.String(), nil
}

// PublicURL returns the public URL for an object; the bucket must allow
// anonymous reads or sit behind a CDN configured as public_url.
func (b *MinioBackend) PublicURL(key string) string {
	if b.publicURL != "" {
		return b.publicURL + "/" + key
	}

	scheme := "http"
	if b.useSSL {
		scheme = "https"
	}
	endpoint := b.client.EndpointURL().Host
	return fmt.Sprintf("%s://%s/%s/%s", scheme, endpoint, b.bucketName, key)
}
