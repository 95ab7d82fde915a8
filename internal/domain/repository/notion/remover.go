package notion

import "context"

// Remover archives a page. Archival is a soft delete.
type Remover interface {
	ArchivePage(ctx context.Context, pageID string) error
}
