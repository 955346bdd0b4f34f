package ports

import (
	"context"
	"io"
)

type S3Client interface {
	PutObject(ctx context.Context, key string, body io.Reader, contentType string, size int64) (string, error)
	DeleteObject(ctx context.Context, key string) error
	GetPublicURL(key string) string
	GetBucket() string
}
