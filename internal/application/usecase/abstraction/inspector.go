package abstraction

import (
	"context"
	"encoding/json"
)

// Inspector defines the interface for reading raw entry content.
type Inspector interface {
	GetBlocks(ctx context.Context, pageID string) ([]json.RawMessage, error)
}
