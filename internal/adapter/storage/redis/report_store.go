package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bank-backoffice/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ReportStore implements ports.ReportStore using Redis. Entries are written
// once by the collector subscriber and read by polling callers; the TTL is
// the eviction policy for completed reports.
type ReportStore struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewReportStore creates a Redis-backed correlation store.
func NewReportStore(client *goredis.Client, ttl time.Duration) *ReportStore {
	return &ReportStore{
		client: client,
		prefix: "report:",
		ttl:    ttl,
	}
}

// Put stores a tracked report under its correlation ID.
func (s *ReportStore) Put(ctx context.Context, correlationID string, report *domain.TrackedReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal tracked report: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+correlationID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis report put: %w", err)
	}
	return nil
}

// Get retrieves a tracked report by correlation ID.
// Returns nil, nil if the entry does not exist.
func (s *ReportStore) Get(ctx context.Context, correlationID string) (*domain.TrackedReport, error) {
	raw, err := s.client.Get(ctx, s.prefix+correlationID).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis report get: %w", err)
	}

	report := &domain.TrackedReport{}
	if err := json.Unmarshal(raw, report); err != nil {
		return nil, fmt.Errorf("unmarshal tracked report: %w", err)
	}
	return report, nil
}

// Clear removes a tracked report.
func (s *ReportStore) Clear(ctx context.Context, correlationID string) error {
	if err := s.client.Del(ctx, s.prefix+correlationID).Err(); err != nil {
		return fmt.Errorf("redis report clear: %w", err)
	}
	return nil
}
