package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"mediabridge/internal/domain/entity"
	"mediabridge/pkg/utils"
)

// Uploader archives accepted upload payloads under a random key.
type Uploader struct {
	minioClient *minio.Client
	cfg         *UploaderConfig
}

func NewUploader(minioClient *minio.Client, config *UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         config,
	}
}

func (u *Uploader) UploadFile(ctx context.Context, body io.Reader, fileSize int64, fileName,
	contentType string,
) (entity.ArchiveResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout(u.cfg.Timeout))
	defer cancel()

	key := uuid.NewString() + utils.GetExtensionFromMimeType(contentType)

	info, err := u.minioClient.PutObject(ctx, u.cfg.Bucket, key, body, fileSize, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"original-name": fileName},
	})
	if err != nil {
		logger.Error("failed to archive upload", "bucket", u.cfg.Bucket, "object", key, "err", err)

		return entity.ArchiveResult{}, fmt.Errorf("archive upload failed: %w", err)
	}

	return entity.ArchiveResult{
		Bucket:   u.cfg.Bucket,
		Key:      key,
		Location: u.location(key),
		Size:     info.Size,
		Type:     contentType,
	}, nil
}

func (u *Uploader) location(key string) string {
	base := strings.TrimRight(u.cfg.PublicURL, "/")
	if base == "" {
		base = strings.TrimRight(u.minioClient.EndpointURL().String(), "/")
	}

	return fmt.Sprintf("%s/%s/%s", base, u.cfg.Bucket, key)
}
