package ports

import (
	"context"
	"mime/multipart"
)

type S3Client interface {
	Upload(ctx context.Context, deliveryID string, in *multipart.FileHeader) (string, error)
	GetPublicURL(key string) string
	GetBucket() string
}
