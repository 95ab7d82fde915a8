package abstraction

import (
	"context"

	"mediabridge/internal/domain/dto"
)

type Lister interface {
	ListEntries(ctx context.Context) ([]dto.PageDescriptor, error)
}
