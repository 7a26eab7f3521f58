package service

import (
	"context"
	"fmt"
	"time"

	"bank-backoffice/internal/core/domain"
	"bank-backoffice/internal/core/ports"
	"bank-backoffice/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ReportServiceImpl implements ports.ReportService: the polling facade over
// the asynchronous report saga. Dispatching never blocks on saga
// completion; polling reads the correlation store only.
type ReportServiceImpl struct {
	dispatcher ports.ReportDispatcher
	store      ports.ReportStore
	log        zerolog.Logger
}

// NewReportService creates a new ReportServiceImpl.
func NewReportService(dispatcher ports.ReportDispatcher, store ports.ReportStore, log zerolog.Logger) *ReportServiceImpl {
	return &ReportServiceImpl{dispatcher: dispatcher, store: store, log: log}
}

// RequestReport starts a new saga instance and returns tracking information.
func (s *ReportServiceImpl) RequestReport(ctx context.Context, clientID uuid.UUID, from, to time.Time) (*ports.ReportTicket, error) {
	correlationID, err := s.dispatcher.Dispatch(ctx, clientID, from, to)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("correlation_id", correlationID).
		Str("client_id", clientID.String()).
		Msg("report dispatched")

	return &ports.ReportTicket{
		CorrelationID: correlationID,
		ReportURL: fmt.Sprintf(
			"/api/v1/transactions/clients/%s/report?dateTransactionStart=%s&dateTransactionEnd=%s&correlationId=%s",
			clientID, domain.FormatReportDate(from), domain.FormatReportDate(to), correlationID,
		),
	}, nil
}

// GetReport returns the tracked result for a correlation ID, or nil while
// the saga is still pending (indistinguishable from an unknown ID).
func (s *ReportServiceImpl) GetReport(ctx context.Context, correlationID string) (*domain.TrackedReport, error) {
	report, err := s.store.Get(ctx, correlationID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return report, nil
}
