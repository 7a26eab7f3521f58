package saga

import (
	"context"
	"encoding/json"

	"bank-backoffice/internal/core/domain"
	"bank-backoffice/internal/core/ports"

	"github.com/rs/zerolog"
)

// Collector is the terminal saga stage, back on the account service. It
// lands enriched reports in the correlation store as READY and dead-lettered
// ones as LOST, completing the saga either way. Writes are idempotent, so
// the collector needs no dedupe stage of its own.
type Collector struct {
	store ports.ReportStore
	log   zerolog.Logger
}

// NewCollector creates a new Collector.
func NewCollector(store ports.ReportStore, log zerolog.Logger) *Collector {
	return &Collector{store: store, log: log}
}

// Register subscribes the collector on the enriched and dead-letter topics.
func (c *Collector) Register(bus ports.MessageBus, group string) error {
	if err := bus.Subscribe(TopicReportResponsesEnriched, group, c.HandleEnriched); err != nil {
		return err
	}
	return bus.Subscribe(TopicReportResponsesDLQ, group, c.HandleDeadLetter)
}

// HandleEnriched stores a completed report under its correlation ID.
func (c *Collector) HandleEnriched(ctx context.Context, key string, payload []byte) error {
	return c.land(ctx, key, payload, domain.ReportStatusReady)
}

// HandleDeadLetter stores a Lost marker under the correlation ID so polling
// callers get a terminal answer instead of pending forever.
func (c *Collector) HandleDeadLetter(ctx context.Context, key string, payload []byte) error {
	return c.land(ctx, key, payload, domain.ReportStatusLost)
}

func (c *Collector) land(ctx context.Context, key string, payload []byte, status domain.ReportStatus) error {
	var response domain.ReportResponseEvent
	if err := json.Unmarshal(payload, &response); err != nil {
		c.log.Error().Err(err).Str("key", key).Msg("discarding malformed report payload")
		return nil
	}

	tracked := &domain.TrackedReport{Status: status}
	if status == domain.ReportStatusReady {
		tracked.Report = &response
	}

	if err := c.store.Put(ctx, response.CorrelationID, tracked); err != nil {
		c.log.Error().Err(err).Str("correlation_id", response.CorrelationID).Msg("storing report failed, leaving for redelivery")
		return err
	}

	c.log.Info().
		Str("correlation_id", response.CorrelationID).
		Str("status", string(status)).
		Msg("report collected")
	return nil
}
