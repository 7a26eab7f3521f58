package dto

import (
	"time"

	"bank-backoffice/internal/core/domain"
)

// CreateAccountRequest is the request body for account creation.
type CreateAccountRequest struct {
	ClientID      string `json:"clientId" binding:"required,uuid"`
	Type          string `json:"type" binding:"required,oneof=SAVINGS CHECKING"`
	InitialAmount string `json:"initialAmount" binding:"required,money"`
}

// SetActiveRequest toggles the logical-deletion flag.
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// AccountResponse is the response body for account queries.
type AccountResponse struct {
	ID             string `json:"id"`
	Number         string `json:"number"`
	Type           string `json:"type"`
	InitialAmount  string `json:"initialAmount"`
	CurrentBalance string `json:"currentBalance"`
	ClientID       string `json:"clientId"`
	Active         bool   `json:"active"`
	CreatedAt      string `json:"createdAt"`
}

// ApplyTransactionRequest is the request body for posting a ledger entry.
type ApplyTransactionRequest struct {
	AccountID string `json:"accountId" binding:"required,uuid"`
	Type      string `json:"type" binding:"required,oneof=DEPOSIT WITHDRAWAL"`
	Amount    string `json:"amount" binding:"required,money"`
}

// TransactionResponse is the response body for ledger entries.
type TransactionResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Type      string `json:"type"`
	Amount    string `json:"amount"`
	Balance   string `json:"balance"`
	AccountID string `json:"accountId"`
	CreatedAt string `json:"createdAt"`
}

// CreateClientRequest is the request body for client registration.
type CreateClientRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	DNI      string `json:"dni" binding:"required,safe_id,max=20"`
	Gender   string `json:"gender" binding:"required,max=20"`
	Age      int    `json:"age" binding:"required,gte=18,lte=120"`
	Address  string `json:"address" binding:"required,max=200"`
	Phone    string `json:"phone" binding:"required,max=30"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// UpdateClientRequest is the request body for client updates. The DNI is
// immutable and therefore absent.
type UpdateClientRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Gender  string `json:"gender" binding:"required,max=20"`
	Age     int    `json:"age" binding:"required,gte=18,lte=120"`
	Address string `json:"address" binding:"required,max=200"`
	Phone   string `json:"phone" binding:"required,max=30"`
}

// ClientResponse is the response body for client queries. The password hash
// never leaves the service.
type ClientResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	DNI       string `json:"dni"`
	Gender    string `json:"gender"`
	Age       int    `json:"age"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt"`
}

// ToAccountResponse maps a domain account to its wire form. Monetary fields
// are fixed-point decimal strings.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:             a.ID.String(),
		Number:         a.Number,
		Type:           string(a.Type),
		InitialAmount:  domain.FormatCents(a.InitialAmount),
		CurrentBalance: domain.FormatCents(a.CurrentBalance),
		ClientID:       a.ClientID.String(),
		Active:         a.Active,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
}

// ToTransactionResponse maps a ledger entry to its wire form.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID.String(),
		Date:      domain.FormatReportDate(t.Date),
		Type:      string(t.Type),
		Amount:    domain.FormatCents(t.Amount),
		Balance:   domain.FormatCents(t.Balance),
		AccountID: t.AccountID.String(),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

// ToClientResponse maps a domain client to its wire form.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		DNI:       c.DNI,
		Gender:    c.Gender,
		Age:       c.Age,
		Address:   c.Address,
		Phone:     c.Phone,
		Active:    c.Active,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
