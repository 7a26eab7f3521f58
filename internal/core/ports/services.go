package ports

import (
	"context"
	"time"

	"bank-backoffice/internal/core/domain"

	"github.com/google/uuid"
)

// LedgerService owns all balance-affecting operations. Apply serializes per
// account so concurrent calls never validate against a stale balance.
type LedgerService interface {
	Apply(ctx context.Context, req ApplyTransactionRequest) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	LastTransaction(ctx context.Context, accountID uuid.UUID) (*domain.Transaction, error)
	TransactionsInRange(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]domain.Transaction, error)
}

// ApplyTransactionRequest holds validated input for a ledger application.
type ApplyTransactionRequest struct {
	AccountID uuid.UUID
	Type      domain.TransactionType
	Amount    int64 // positive magnitude, cents
}

// AccountService defines account lifecycle operations.
type AccountService interface {
	Create(ctx context.Context, req CreateAccountRequest) (*domain.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	ListActive(ctx context.Context) ([]domain.Account, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateAccountRequest holds validated input for account creation.
type CreateAccountRequest struct {
	ClientID      uuid.UUID
	Type          domain.AccountType
	InitialAmount int64 // cents
}

// ClientService defines client lifecycle operations.
type ClientService interface {
	Create(ctx context.Context, req CreateClientRequest) (*domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, req UpdateClientRequest) (*domain.Client, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateClientRequest holds validated input for client creation.
type CreateClientRequest struct {
	Name     string
	DNI      string
	Gender   string
	Age      int
	Address  string
	Phone    string
	Password string
}

// UpdateClientRequest holds validated input for a client update.
// DNI is immutable and therefore absent.
type UpdateClientRequest struct {
	ID      uuid.UUID
	Name    string
	Gender  string
	Age     int
	Address string
	Phone   string
}

// ReportAggregator projects a client's active accounts and in-range
// transactions into report payload data.
type ReportAggregator interface {
	BuildReport(ctx context.Context, clientID uuid.UUID, from, to time.Time) ([]domain.AccountData, error)
}

// ReportDispatcher starts one report saga instance by publishing a request
// event under a freshly minted correlation ID, which it returns.
type ReportDispatcher interface {
	Dispatch(ctx context.Context, clientID uuid.UUID, from, to time.Time) (string, error)
}

// ReportService is the synchronous polling facade over the report saga.
type ReportService interface {
	// RequestReport dispatches a new saga instance and returns tracking
	// information immediately; it never waits for completion.
	RequestReport(ctx context.Context, clientID uuid.UUID, from, to time.Time) (*ReportTicket, error)
	// GetReport returns the tracked result, or nil when still pending or the
	// correlation ID is unknown.
	GetReport(ctx context.Context, correlationID string) (*domain.TrackedReport, error)
}

// ReportTicket is the tracking descriptor returned on dispatch.
type ReportTicket struct {
	CorrelationID string
	ReportURL     string
}

// PasswordHasher hashes client passwords for storage. Verification lives on
// the concrete implementation; no API surface performs a login.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
