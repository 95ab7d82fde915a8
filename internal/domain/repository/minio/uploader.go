package minio

import (
	"context"
	"io"

	"mediabridge/internal/domain/entity"
)

type Uploader interface {
	UploadFile(ctx context.Context, body io.Reader, fileSize int64, fileName,
		contentType string,
	) (entity.ArchiveResult, error)
}
