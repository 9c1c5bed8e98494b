package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aamhq/aam-agent/internal/domain"
	"github.com/aamhq/aam-agent/internal/logging"
	"github.com/aamhq/aam-agent/internal/ports"
)

const (
	defaultPollInterval = 10 * time.Second
	defaultPageLimit    = 100
)

type PollerConfig struct {
	Interval  time.Duration
	PageLimit int
	// Since is the fallback instant for the very first run and for
	// cursor resets when no last-known-good instant exists yet.
	Since time.Time
}

// Poller drives the pull loop: fetch a page, hand its activities to
// the processor in delivery order, and persist the advanced cursor
// only after the whole page was handed over. It owns the cursor; the
// store and seen-set see exactly one writer.
type Poller struct {
	client    ports.TrackerClient
	store     ports.CursorStore
	processor *Processor
	clock     ports.Clock
	cfg       PollerConfig
	log       *slog.Logger
}

func NewPoller(client ports.TrackerClient, store ports.CursorStore, processor *Processor, clock ports.Clock, cfg PollerConfig) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultPollInterval
	}
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = defaultPageLimit
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Poller{
		client:    client,
		store:     store,
		processor: processor,
		clock:     clock,
		cfg:       cfg,
		log:       logging.WithComponent("poller"),
	}
}

// Run polls until ctx is cancelled (clean stop, returns nil) or a
// terminal error surfaces from the transport or the cursor store.
func (p *Poller) Run(ctx context.Context) error {
	cursor, err := p.store.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrCursorNotFound):
		cursor = p.initialCursor()
		p.log.Info("no saved cursor, starting fresh",
			slog.Time("since", cursor.Since))
	case err != nil:
		return fmt.Errorf("load cursor: %w", err)
	default:
		p.log.Info("resuming from saved cursor",
			slog.Bool("has_token", cursor.HasToken()),
			slog.Time("since", cursor.Since))
	}

	for {
		next, err := p.pollOnce(ctx, cursor)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		cursor = next

		if err := p.clock.Sleep(ctx, p.cfg.Interval); err != nil {
			return nil
		}
	}
}

// pollOnce fetches and processes one page, returning the cursor to use
// for the next fetch. An invalid-cursor signal resets to the timestamp
// fallback and refetches exactly once; every other failure is the
// caller's to handle.
func (p *Poller) pollOnce(ctx context.Context, cursor domain.Cursor) (domain.Cursor, error) {
	page, err := p.client.FetchActivityPage(ctx, p.cfg.PageLimit, cursor)
	if errors.Is(err, domain.ErrInvalidCursor) {
		fallback := p.fallbackCursor(cursor)
		p.log.Warn("server rejected stored cursor, resetting to timestamp fallback",
			slog.Time("since", fallback.Since))
		if saveErr := p.store.Save(ctx, fallback); saveErr != nil {
			return cursor, fmt.Errorf("save fallback cursor: %w", saveErr)
		}
		cursor = fallback
		page, err = p.client.FetchActivityPage(ctx, p.cfg.PageLimit, cursor)
		if err != nil {
			return cursor, fmt.Errorf("refetch after cursor reset: %w", err)
		}
	} else if err != nil {
		return cursor, err
	}

	dispatched := 0
	lastSeen := cursor.Since
	for _, activity := range page.Activities {
		if p.processor.Process(ctx, activity) {
			dispatched++
		}
		if activity.Timestamp.After(lastSeen) {
			lastSeen = activity.Timestamp
		}
	}
	if len(page.Activities) > 0 {
		p.log.Debug("page processed",
			slog.Int("activities", len(page.Activities)),
			slog.Int("dispatched", dispatched))
	}

	// No next cursor means the stream head was reached: hold position
	// and re-poll later. The seen-set absorbs any redelivery.
	if page.NextCursor == "" {
		return cursor, nil
	}

	// Carry the newest processed timestamp alongside the token so a
	// later invalid-cursor reset resumes from a last-known-good
	// instant instead of the configured epoch.
	next := domain.Cursor{Token: page.NextCursor, Since: lastSeen}
	if err := p.store.Save(ctx, next); err != nil {
		return cursor, fmt.Errorf("save cursor: %w", err)
	}
	return next, nil
}

func (p *Poller) initialCursor() domain.Cursor {
	if !p.cfg.Since.IsZero() {
		return domain.SinceCursor(p.cfg.Since)
	}
	return domain.Cursor{}
}

func (p *Poller) fallbackCursor(current domain.Cursor) domain.Cursor {
	if !current.Since.IsZero() {
		return domain.SinceCursor(current.Since)
	}
	return p.initialCursor()
}
