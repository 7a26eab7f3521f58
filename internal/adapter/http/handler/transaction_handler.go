package handler

import (
	"time"

	"bank-backoffice/internal/adapter/http/dto"
	"bank-backoffice/internal/core/domain"
	"bank-backoffice/internal/core/ports"
	"bank-backoffice/pkg/apperror"
	"bank-backoffice/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransactionHandler handles ledger endpoints.
type TransactionHandler struct {
	ledgerSvc ports.LedgerService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerSvc ports.LedgerService) *TransactionHandler {
	return &TransactionHandler{ledgerSvc: ledgerSvc}
}

// Apply handles POST /api/v1/transactions.
func (h *TransactionHandler) Apply(c *gin.Context) {
	var req dto.ApplyTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		response.Error(c, apperror.Validation("accountId must be a UUID"))
		return
	}
	amount, err := domain.ParseCents(req.Amount)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	txn, err := h.ledgerSvc.Apply(c.Request.Context(), ports.ApplyTransactionRequest{
		AccountID: accountID,
		Type:      domain.TransactionType(req.Type),
		Amount:    amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToTransactionResponse(txn))
}

// GetByID handles GET /api/v1/transactions/:id.
func (h *TransactionHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return
	}

	txn, err := h.ledgerSvc.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToTransactionResponse(txn))
}

// Last handles GET /api/v1/transactions/accounts/:accountId/last.
func (h *TransactionHandler) Last(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		response.Error(c, apperror.Validation("accountId must be a UUID"))
		return
	}

	txn, err := h.ledgerSvc.LastTransaction(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToTransactionResponse(txn))
}

// ListInRange handles GET /api/v1/transactions/accounts/:accountId with the
// dateTransactionStart and dateTransactionEnd query parameters.
func (h *TransactionHandler) ListInRange(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		response.Error(c, apperror.Validation("accountId must be a UUID"))
		return
	}

	from, to, err := parseDateRange(c.Query("dateTransactionStart"), c.Query("dateTransactionEnd"))
	if err != nil {
		response.Error(c, err)
		return
	}

	txns, err := h.ledgerSvc.TransactionsInRange(c.Request.Context(), accountID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, dto.ToTransactionResponse(&txns[i]))
	}
	response.OK(c, out)
}

// parseDateRange parses and orders the inclusive report date range.
func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, apperror.Validation("dateTransactionStart and dateTransactionEnd are required")
	}
	from, err := time.Parse(domain.DateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.Validation("dateTransactionStart must be YYYY-MM-DD")
	}
	to, err := time.Parse(domain.DateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.Validation("dateTransactionEnd must be YYYY-MM-DD")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, apperror.Validation("dateTransactionEnd must not precede dateTransactionStart")
	}
	return from, to, nil
}
