package ports

import (
	"context"

	"github.com/aamhq/aam-agent/internal/domain"
)

// CursorStore persists the poller's stream position. Save must be
// durable before the next page fetch: a crash after processing a page
// but before Save may only ever cause that page to be re-processed,
// never skipped.
type CursorStore interface {
	Load(ctx context.Context) (domain.Cursor, error)
	Save(ctx context.Context, cursor domain.Cursor) error
}
