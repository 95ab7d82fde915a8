package abstraction

import (
	"context"

	"mediabridge/internal/domain/entity"
)

type URLAdder interface {
	AddURL(ctx context.Context, title, url, caption string) (entity.UploadResult, error)
}
