package statsapi

import (
	"context"
	"log/slog"
	"time"

	"mlb-stats-service/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingFetcher wraps a Fetcher with retry/backoff behavior.
type retryingFetcher struct {
	inner       Fetcher
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingFetcher wraps the given fetcher with retries. If
// maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingFetcher(inner Fetcher, logger *slog.Logger, maxAttempts int, backoff time.Duration) Fetcher {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingFetcher{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingFetcher) FetchDocument(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		payload, err := r.inner.FetchDocument(ctx, url)
		if err == nil {
			return payload, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "upstream fetch retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "upstream fetch failed", "attempts", r.maxAttempts, "err", lastErr)
	return nil, lastErr
}

func (r *retryingFetcher) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
