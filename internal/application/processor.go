package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/aamhq/aam-agent/internal/domain"
	"github.com/aamhq/aam-agent/internal/logging"
	"github.com/aamhq/aam-agent/internal/ports"
)

// DefaultSeenCapacity bounds the dedup window. The stream delivers
// at-least-once with redeliveries clustered around page boundaries, so
// a few thousand ids of lookback is far more than adjacent pages need
// while keeping memory flat for long-running agents.
const DefaultSeenCapacity = 4096

// Processor dispatches activities to kind-specific handlers at most
// once per activity id, despite at-least-once delivery from the
// server. A handler failure is logged and recorded as seen: it does
// not abort the page and is not re-dispatched later.
type Processor struct {
	seen     *lru.Cache[domain.ActivityID, time.Time]
	handlers map[domain.ActivityKind]ports.ActivityHandler
	clock    ports.Clock
	log      *slog.Logger
}

func NewProcessor(seenCapacity int, clock ports.Clock) (*Processor, error) {
	if seenCapacity <= 0 {
		seenCapacity = DefaultSeenCapacity
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	seen, err := lru.New[domain.ActivityID, time.Time](seenCapacity)
	if err != nil {
		return nil, fmt.Errorf("create seen set: %w", err)
	}

	return &Processor{
		seen:     seen,
		handlers: map[domain.ActivityKind]ports.ActivityHandler{},
		clock:    clock,
		log:      logging.WithComponent("processor"),
	}, nil
}

// Register binds a handler to an activity kind. Kinds without a
// handler are counted as handled and skipped silently; the cursor
// still advances past them.
func (p *Processor) Register(kind domain.ActivityKind, handler ports.ActivityHandler) {
	p.handlers[kind] = handler
}

// Process returns true when the activity was dispatched (or had no
// handler) and false when it was a duplicate.
func (p *Processor) Process(ctx context.Context, activity domain.Activity) bool {
	if _, dup := p.seen.Get(activity.ID); dup {
		p.log.Debug("skipping duplicate activity", slog.String("activity_id", string(activity.ID)))
		return false
	}

	if handler, ok := p.handlers[activity.Kind]; ok {
		if err := handler.Handle(ctx, activity); err != nil {
			p.log.Warn("activity handler failed",
				slog.String("activity_id", string(activity.ID)),
				slog.String("kind", string(activity.Kind)),
				slog.String("issue_id", string(activity.IssueID)),
				slog.String("error", err.Error()))
		}
	} else {
		p.log.Debug("no handler for activity kind", slog.String("kind", string(activity.Kind)))
	}

	p.seen.Add(activity.ID, p.clock.Now())
	return true
}
