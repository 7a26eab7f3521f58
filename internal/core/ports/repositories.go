package ports

import (
	"context"
	"time"

	"bank-backoffice/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepository defines persistence operations for accounts.
// Methods accepting pgx.Tx run inside ledger transactions so the balance
// check and the write share one row lock.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error)
	ListActive(ctx context.Context) ([]domain.Account, error)
	ListActiveByClientID(ctx context.Context, clientID uuid.UUID) ([]domain.Account, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, id uuid.UUID, newBalance int64) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionRepository defines persistence operations for ledger entries.
// There is deliberately no update method: transactions are immutable.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	GetLastByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.Transaction, error)
	// ListByAccountIDAndDateRange returns entries with from <= date <= to,
	// ordered by date then insertion order.
	ListByAccountIDAndDateRange(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]domain.Transaction, error)
}

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	GetByDNI(ctx context.Context, dni string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
