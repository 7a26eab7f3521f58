package saga

import (
	"context"
	"encoding/json"
	"time"

	"bank-backoffice/internal/core/domain"
	"bank-backoffice/internal/core/ports"
	"bank-backoffice/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Dispatcher implements ports.ReportDispatcher. It mints the correlation ID
// for a new saga instance and publishes the request event keyed by it.
type Dispatcher struct {
	bus ports.MessageBus
	log zerolog.Logger
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(bus ports.MessageBus, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{bus: bus, log: log}
}

// Dispatch publishes a report request and returns its correlation ID.
func (d *Dispatcher) Dispatch(ctx context.Context, clientID uuid.UUID, from, to time.Time) (string, error) {
	correlationID := uuid.NewString()

	event := domain.ReportRequestEvent{
		ClientID:      clientID,
		StartDate:     domain.FormatReportDate(from),
		EndDate:       domain.FormatReportDate(to),
		CorrelationID: correlationID,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return "", apperror.InternalError(err)
	}

	if err := d.bus.Publish(ctx, TopicReportRequests, correlationID, payload); err != nil {
		return "", apperror.ErrBusPublish(TopicReportRequests, err)
	}

	d.log.Info().
		Str("correlation_id", correlationID).
		Str("client_id", clientID.String()).
		Str("topic", TopicReportRequests).
		Msg("report request dispatched")
	return correlationID, nil
}
