package tracker

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultMaxAttempts    = 5
	defaultInitialBackoff = 500 * time.Millisecond
)

// retryPolicy retries transient failures with exponential backoff and
// jitter, up to a fixed attempt budget. Fatal outcomes make exactly one
// attempt. Backoff sleeps observe the request context.
type retryPolicy struct {
	maxAttempts    int
	initialBackoff time.Duration
	log            *slog.Logger
}

func newRetryPolicy(maxAttempts int, initialBackoff time.Duration, log *slog.Logger) retryPolicy {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if initialBackoff <= 0 {
		initialBackoff = defaultInitialBackoff
	}
	return retryPolicy{maxAttempts: maxAttempts, initialBackoff: initialBackoff, log: log}
}

func (p retryPolicy) run(ctx context.Context, op string, fn func() error) error {
	// BackOff implementations are stateful; always build a fresh one.
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.initialBackoff

	wrapped := backoff.WithMaxRetries(backoff.WithContext(bo, ctx), uint64(p.maxAttempts-1))

	return backoff.RetryNotify(func() error {
		err := fn()
		if err == nil {
			return nil
		}
		if isTransient(err) {
			return err
		}
		return backoff.Permanent(err)
	}, wrapped, func(err error, wait time.Duration) {
		p.log.Debug("transient failure, backing off",
			slog.String("op", op),
			slog.Duration("wait", wait),
			slog.String("error", err.Error()))
	})
}

// isTransient classifies an attempt's failure. 5xx responses, timeouts,
// and connection-level errors are presumed transient; everything else
// (validation, auth, malformed bodies, cancelled contexts) is fatal
// and must not be retried.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Transient()
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	// url.Error implements net.Error whatever its cause, so it must be
	// unwrapped before the net.Error check: only the wrapped failure
	// (connection reset vs unsupported scheme) decides retryability.
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return isTransient(urlErr.Err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return false
}
