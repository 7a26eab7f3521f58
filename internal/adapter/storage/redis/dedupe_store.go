package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DedupeStore implements ports.DedupeStore using Redis SETNX. Saga stages
// use it to drop at-least-once redeliveries.
type DedupeStore struct {
	client *goredis.Client
	prefix string
}

// NewDedupeStore creates a Redis-backed dedupe store.
func NewDedupeStore(client *goredis.Client) *DedupeStore {
	return &DedupeStore{
		client: client,
		prefix: "dedupe:",
	}
}

// CheckAndSet atomically records (stage, correlationID) with a TTL.
// Returns true if this is the first delivery, false on a redelivery.
func (s *DedupeStore) CheckAndSet(ctx context.Context, stage, correlationID string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("%s%s:%s", s.prefix, stage, correlationID)
	ok, err := s.client.SetNX(ctx, key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis dedupe setnx: %w", err)
	}
	return ok, nil
}
