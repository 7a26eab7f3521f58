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

const stageEnricher = "enricher"

// Enricher is the client-service saga stage. It fills the client block of a
// report response with personal data. Responses whose client cannot be found
// are routed to the dead-letter topic instead of being dropped, so the
// polling caller eventually sees a Lost outcome rather than waiting forever.
type Enricher struct {
	clientRepo ports.ClientRepository
	bus        ports.MessageBus
	dedupe     ports.DedupeStore // nil disables redelivery dedupe
	dedupeTTL  time.Duration
	log        zerolog.Logger
}

// NewEnricher creates a new Enricher.
func NewEnricher(clientRepo ports.ClientRepository, bus ports.MessageBus, dedupe ports.DedupeStore, dedupeTTL time.Duration, log zerolog.Logger) *Enricher {
	return &Enricher{clientRepo: clientRepo, bus: bus, dedupe: dedupe, dedupeTTL: dedupeTTL, log: log}
}

// Register subscribes the enricher on the response topic.
func (e *Enricher) Register(bus ports.MessageBus, group string) error {
	return bus.Subscribe(TopicReportResponses, group, e.Handle)
}

// Handle processes one report response.
func (e *Enricher) Handle(ctx context.Context, key string, payload []byte) error {
	var response domain.ReportResponseEvent
	if err := json.Unmarshal(payload, &response); err != nil {
		e.log.Error().Err(err).Str("key", key).Msg("discarding malformed report response")
		return nil
	}

	log := e.log.With().Str("correlation_id", response.CorrelationID).Logger()

	if e.dedupe != nil {
		first, err := e.dedupe.CheckAndSet(ctx, stageEnricher, response.CorrelationID, e.dedupeTTL)
		if err != nil {
			return err
		}
		if !first {
			log.Warn().Msg("duplicate report response delivery suppressed")
			return nil
		}
	}

	client, err := e.clientRepo.GetByID(ctx, response.Client.ID)
	if err != nil {
		log.Error().Err(err).Msg("client lookup failed, leaving response for redelivery")
		return err
	}
	if client == nil {
		log.Warn().Str("client_id", response.Client.ID.String()).Msg("no client for report, routing to dead letter")
		return e.publish(ctx, TopicReportResponsesDLQ, response)
	}

	response.Client = domain.ClientData{
		ID:      client.ID,
		Name:    client.Name,
		DNI:     client.DNI,
		Gender:  client.Gender,
		Age:     client.Age,
		Phone:   client.Phone,
		Address: client.Address,
	}

	if err := e.publish(ctx, TopicReportResponsesEnriched, response); err != nil {
		return err
	}
	log.Info().Msg("report response enriched")
	return nil
}

func (e *Enricher) publish(ctx context.Context, topic string, response domain.ReportResponseEvent) error {
	payload, err := json.Marshal(response)
	if err != nil {
		return apperror.InternalError(err)
	}
	if err := e.bus.Publish(ctx, topic, response.CorrelationID, payload); err != nil {
		return apperror.ErrBusPublish(topic, err)
	}
	return nil
}
