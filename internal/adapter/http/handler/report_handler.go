package handler

import (
	"net/http"

	"bank-backoffice/internal/core/domain"
	"bank-backoffice/internal/core/ports"
	"bank-backoffice/pkg/apperror"
	"bank-backoffice/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Report poll message bodies. These are part of the public contract, so the
// wording is fixed.
const (
	msgReportRequested = "Report requested. It will be available soon."
	msgReportNotReady  = "Report not ready or correlation ID invalid"
	msgReportLost      = "Report could not be generated for this client"
)

// ReportHandler handles the report dispatch-and-poll endpoint.
type ReportHandler struct {
	reportSvc ports.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportSvc ports.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Report handles GET /api/v1/transactions/clients/:clientId/report.
//
// Without a correlationId query parameter it dispatches a new report saga
// and answers 202 immediately; the saga completes in the background. With
// one, it polls: 200 with the enriched report when READY, 410 when the saga
// terminated LOST, 404 while pending or for an unknown ID.
func (h *ReportHandler) Report(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("clientId"))
	if err != nil {
		response.Error(c, apperror.Validation("clientId must be a UUID"))
		return
	}

	correlationID := c.Query("correlationId")
	if correlationID == "" {
		h.dispatch(c, clientID)
		return
	}
	h.poll(c, correlationID)
}

func (h *ReportHandler) dispatch(c *gin.Context, clientID uuid.UUID) {
	from, to, err := parseDateRange(c.Query("dateTransactionStart"), c.Query("dateTransactionEnd"))
	if err != nil {
		response.Error(c, err)
		return
	}

	ticket, err := h.reportSvc.RequestReport(c.Request.Context(), clientID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":       msgReportRequested,
		"correlationId": ticket.CorrelationID,
		"status":        "PENDING",
		"reportUrl":     ticket.ReportURL,
	})
}

func (h *ReportHandler) poll(c *gin.Context, correlationID string) {
	tracked, err := h.reportSvc.GetReport(c.Request.Context(), correlationID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if tracked == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message":       msgReportNotReady,
			"correlationId": correlationID,
			"status":        "NOT_FOUND",
		})
		return
	}

	if tracked.Status == domain.ReportStatusLost {
		c.JSON(http.StatusGone, gin.H{
			"message":       msgReportLost,
			"correlationId": correlationID,
			"status":        string(domain.ReportStatusLost),
		})
		return
	}

	c.JSON(http.StatusOK, tracked.Report)
}
