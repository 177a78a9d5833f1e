// Package redisstore implements the CounterStore and RetryQueue ports on
// Redis, giving rate limiting and webhook retries shared state across
// instances.
package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// CounterStore implements ports.CounterStore with INCR and a TTL that is
// set only on the first increment of a window.
type CounterStore struct {
	client *redis.Client
}

// NewCounterStore creates a Redis-backed counter store.
func NewCounterStore(client *redis.Client) *CounterStore {
	return &CounterStore{client: client}
}

// IncrWithTTL atomically increments the counter at key and returns the new
// value. EXPIRE NX leaves an existing window's deadline untouched, so the
// window is fixed rather than sliding.
func (s *CounterStore) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	return incr.Val(), nil
}
