package ports

import (
	"context"

	"github.com/aamhq/aam-agent/internal/domain"
)

// ActivityHandler consumes one deduplicated activity. A handler error
// is the handler's problem alone; it never blocks the rest of the page.
type ActivityHandler interface {
	Handle(ctx context.Context, activity domain.Activity) error
}

// ActivityHandlerFunc adapts a function to the ActivityHandler port.
type ActivityHandlerFunc func(ctx context.Context, activity domain.Activity) error

func (f ActivityHandlerFunc) Handle(ctx context.Context, activity domain.Activity) error {
	return f(ctx, activity)
}
