package ports

import (
	"context"
	"time"

	"bank-backoffice/internal/core/domain"
)

// BusHandler processes one delivered message. Returning an error leaves the
// message unacknowledged so the bus redelivers it.
type BusHandler func(ctx context.Context, key string, payload []byte) error

// MessageBus is the publish/subscribe transport used for all cross-service
// communication. Delivery is at-least-once; messages sharing a key are
// observed in publish order.
type MessageBus interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
	Subscribe(topic, group string, handler BusHandler) error
}

// ReportStore holds completed (or lost) reports keyed by correlation ID.
// One writer (the collector subscriber), many polling readers.
type ReportStore interface {
	Put(ctx context.Context, correlationID string, report *domain.TrackedReport) error
	// Get returns nil, nil when the correlation ID is unknown.
	Get(ctx context.Context, correlationID string) (*domain.TrackedReport, error)
	Clear(ctx context.Context, correlationID string) error
}

// DedupeStore makes saga stages idempotent against at-least-once redelivery.
type DedupeStore interface {
	// CheckAndSet atomically records (stage, correlationID). Returns true the
	// first time, false for a redelivery within the TTL window.
	CheckAndSet(ctx context.Context, stage, correlationID string, ttl time.Duration) (bool, error)
}
