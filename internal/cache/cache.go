package cache

import (
	"context"
	"log/slog"
	"time"

	"mlb-stats-service/internal/logging"
	"mlb-stats-service/internal/metrics"
)

// Entry is one stored document with its last-write timestamp.
type Entry struct {
	Payload  []byte
	StoredAt time.Time
}

// Store persists raw documents keyed by Key. Implementations must make
// Put a whole-document replacement; partial writes are never observed.
type Store interface {
	Get(ctx context.Context, key Key) (Entry, bool, error)
	Put(ctx context.Context, key Key, payload []byte) error
}

// TTLPolicy computes the effective TTL for a cached payload. Policies
// may inspect the document itself, e.g. to shorten the TTL while games
// are in progress.
type TTLPolicy func(payload []byte) time.Duration

// FixedTTL returns a policy that ignores the payload.
func FixedTTL(ttl time.Duration) TTLPolicy {
	return func([]byte) time.Duration { return ttl }
}

// LiveAwareTTL returns a policy that serves live documents with a
// shorter TTL than settled ones.
func LiveAwareTTL(base, live time.Duration, isLive func(payload []byte) bool) TTLPolicy {
	return func(payload []byte) time.Duration {
		if isLive != nil && isLive(payload) {
			return live
		}
		return base
	}
}

// RefetchFunc produces a fresh copy of a document from upstream.
type RefetchFunc func(ctx context.Context) ([]byte, error)

// Cache implements the tiered freshness cache: serve fresh entries
// as-is, refetch expired ones, and fall back to the stale entry when a
// refetch fails. Upstream failure surfaces only on a cold miss.
type Cache struct {
	store    Store
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// New constructs a Cache over the given store.
func New(store Store, logger *slog.Logger, recorder *metrics.Recorder) *Cache {
	return &Cache{
		store:    store,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

// Fetch returns the document for key, refetching per the policy. The
// second return value reports whether the payload is stale, i.e. older
// than its effective TTL and only served because the refetch failed.
func (c *Cache) Fetch(ctx context.Context, key Key, policy TTLPolicy, refetch RefetchFunc) ([]byte, bool, error) {
	category := string(key.Category)

	entry, found, err := c.store.Get(ctx, key)
	if err != nil {
		// A broken store read is indistinguishable from a cold miss.
		logging.Warn(c.logger, "cache read failed", logging.FieldCacheKey, key.String(), "error", err)
		found = false
	}

	if !found {
		payload, err := refetch(ctx)
		if err != nil {
			c.recorder.RecordCacheLookup(category, metrics.OutcomeCold)
			return nil, false, err
		}
		c.put(ctx, key, payload)
		c.recorder.RecordCacheLookup(category, metrics.OutcomeRefresh)
		return payload, false, nil
	}

	age := c.now().Sub(entry.StoredAt)
	if ttl := policy(entry.Payload); age <= ttl {
		c.recorder.RecordCacheLookup(category, metrics.OutcomeHit)
		return entry.Payload, false, nil
	}

	payload, err := refetch(ctx)
	if err != nil {
		// Stale-on-failure: a failed refetch never touches the stored
		// entry, and the stale document remains valid for responses.
		logging.Warn(c.logger, "serving stale cache entry",
			logging.FieldCacheKey, key.String(),
			"age", age.String(),
			"error", err,
		)
		c.recorder.RecordCacheLookup(category, metrics.OutcomeStale)
		return entry.Payload, true, nil
	}

	c.put(ctx, key, payload)
	c.recorder.RecordCacheLookup(category, metrics.OutcomeRefresh)
	return payload, false, nil
}

func (c *Cache) put(ctx context.Context, key Key, payload []byte) {
	if err := c.store.Put(ctx, key, payload); err != nil {
		logging.Warn(c.logger, "cache write failed", logging.FieldCacheKey, key.String(), "error", err)
	}
}
