package saga

import (
	"context"
	"encoding/json"
	"time"

	"bank-backoffice/internal/core/domain"
	"bank-backoffice/internal/core/ports"
	"bank-backoffice/pkg/apperror"

	"github.com/rs/zerolog"
)

const stageBuilder = "builder"

// Builder is the account-service saga stage. It consumes report requests,
// projects the client's ledger data and publishes a response carrying only
// the client ID; personal attributes are the enricher's job.
type Builder struct {
	aggregator ports.ReportAggregator
	bus        ports.MessageBus
	dedupe     ports.DedupeStore // nil disables redelivery dedupe
	dedupeTTL  time.Duration
	log        zerolog.Logger
}

// NewBuilder creates a new Builder. Pass a nil dedupe store to disable
// redelivery suppression.
func NewBuilder(aggregator ports.ReportAggregator, bus ports.MessageBus, dedupe ports.DedupeStore, dedupeTTL time.Duration, log zerolog.Logger) *Builder {
	return &Builder{aggregator: aggregator, bus: bus, dedupe: dedupe, dedupeTTL: dedupeTTL, log: log}
}

// Register subscribes the builder on the request topic.
func (b *Builder) Register(bus ports.MessageBus, group string) error {
	return bus.Subscribe(TopicReportRequests, group, b.Handle)
}

// Handle processes one report request. Returning an error leaves the message
// unacknowledged for redelivery.
func (b *Builder) Handle(ctx context.Context, key string, payload []byte) error {
	var req domain.ReportRequestEvent
	if err := json.Unmarshal(payload, &req); err != nil {
		// Malformed payloads never become valid; ack and move on.
		b.log.Error().Err(err).Str("key", key).Msg("discarding malformed report request")
		return nil
	}

	log := b.log.With().Str("correlation_id", req.CorrelationID).Logger()

	if b.dedupe != nil {
		first, err := b.dedupe.CheckAndSet(ctx, stageBuilder, req.CorrelationID, b.dedupeTTL)
		if err != nil {
			return err
		}
		if !first {
			log.Warn().Msg("duplicate report request delivery suppressed")
			return nil
		}
	}

	from, err := time.Parse(domain.DateLayout, req.StartDate)
	if err != nil {
		log.Error().Err(err).Str("start_date", req.StartDate).Msg("discarding report request with bad start date")
		return nil
	}
	to, err := time.Parse(domain.DateLayout, req.EndDate)
	if err != nil {
		log.Error().Err(err).Str("end_date", req.EndDate).Msg("discarding report request with bad end date")
		return nil
	}

	accounts, err := b.aggregator.BuildReport(ctx, req.ClientID, from, to)
	if err != nil {
		log.Error().Err(err).Msg("report projection failed, leaving request for redelivery")
		return err
	}

	response := domain.ReportResponseEvent{
		Client:        domain.ClientData{ID: req.ClientID},
		Period:        domain.ReportPeriod{From: req.StartDate, To: req.EndDate},
		Accounts:      accounts,
		CorrelationID: req.CorrelationID,
	}
	out, err := json.Marshal(response)
	if err != nil {
		return apperror.InternalError(err)
	}

	if err := b.bus.Publish(ctx, TopicReportResponses, req.CorrelationID, out); err != nil {
		return apperror.ErrBusPublish(TopicReportResponses, err)
	}

	log.Info().Int("accounts", len(accounts)).Msg("report response published")
	return nil
}
