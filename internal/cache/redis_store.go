package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "mlbstats:cache:"

// envelope wraps a payload with its stored-at timestamp so Redis
// entries carry the same age information the filesystem gets from
// mtime.
type envelope struct {
	StoredAt time.Time       `json:"storedAt"`
	Payload  json.RawMessage `json:"payload"`
}

// RedisStore persists entries in Redis. Entries are written without a
// Redis-side expiry: the TTL policy governs usability, not existence,
// so stale entries must survive for the stale-on-failure path.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisStore constructs a Redis-backed store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

func redisKey(key Key) string {
	return redisKeyPrefix + key.String()
}

// Get retrieves the entry for key.
func (s *RedisStore) Get(ctx context.Context, key Key) (Entry, bool, error) {
	raw, err := s.client.Get(ctx, redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Entry{}, false, nil
		}
		return Entry{}, false, fmt.Errorf("redis get: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Entry{}, false, fmt.Errorf("redis entry decode: %w", err)
	}
	return Entry{Payload: env.Payload, StoredAt: env.StoredAt}, true, nil
}

// Put replaces the entry for key.
func (s *RedisStore) Put(ctx context.Context, key Key, payload []byte) error {
	data, err := json.Marshal(envelope{StoredAt: s.now().UTC(), Payload: payload})
	if err != nil {
		return fmt.Errorf("redis entry encode: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(key), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
