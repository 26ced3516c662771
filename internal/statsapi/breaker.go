package statsapi

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// breakerFetcher wraps a Fetcher with circuit-breaker protection so a
// hard upstream outage fails fast instead of tying up request threads.
type breakerFetcher struct {
	inner   Fetcher
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerFetcher wraps the given fetcher with a circuit breaker.
func NewBreakerFetcher(inner Fetcher, logger *slog.Logger) Fetcher {
	settings := gobreaker.Settings{
		Name:    "statsapi",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger != nil {
				logger.Info("circuit breaker state changed",
					"service", name,
					"from", from.String(),
					"to", to.String(),
				)
			}
		},
	}

	return &breakerFetcher{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *breakerFetcher) FetchDocument(ctx context.Context, url string) ([]byte, error) {
	result, err := b.breaker.Execute(func() (interface{}, error) {
		return b.inner.FetchDocument(ctx, url)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &UnavailableError{URL: url, Err: err}
		}
		return nil, err
	}
	payload, ok := result.([]byte)
	if !ok {
		return nil, &UnavailableError{URL: url, Err: errors.New("unexpected breaker result type")}
	}
	return payload, nil
}
