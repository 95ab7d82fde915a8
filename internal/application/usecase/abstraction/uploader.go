package abstraction

import (
	"context"

	"mediabridge/internal/domain/entity"
)

type Uploader interface {
	Upload(ctx context.Context, in entity.UploadInput) (entity.UploadResult, error)
}
