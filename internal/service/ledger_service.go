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

// LedgerServiceImpl implements ports.LedgerService with pessimistic
// per-account locking: the account row is locked FOR UPDATE for the whole
// read-compute-write, so two concurrent withdrawals can never both pass the
// non-negative check against a stale balance.
type LedgerServiceImpl struct {
	accountRepo ports.AccountRepository
	txRepo      ports.TransactionRepository
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	accountRepo ports.AccountRepository,
	txRepo ports.TransactionRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		accountRepo: accountRepo,
		txRepo:      txRepo,
		transactor:  transactor,
		log:         log,
	}
}

// Apply validates and applies one balance-affecting operation. The balance
// update and the ledger entry insert commit together or not at all.
func (s *LedgerServiceImpl) Apply(ctx context.Context, req ports.ApplyTransactionRequest) (*domain.Transaction, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if !domain.ValidTransactionType(req.Type) {
		return nil, apperror.ErrInvalidTransactionType()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock & get account
	account, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, req.AccountID)
	if err != nil {
		return nil, apperror.ErrPersistence("retrieve", "account", err)
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound()
	}
	if !account.Active {
		return nil, apperror.ErrAccountInactive()
	}

	signedEffect := req.Amount
	if req.Type == domain.TransactionTypeWithdrawal {
		signedEffect = -req.Amount
	}

	newBalance := account.CurrentBalance + signedEffect
	if newBalance < 0 {
		return nil, apperror.ErrInsufficientBalance(account.Number)
	}

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:        uuid.New(),
		Date:      now.Truncate(24 * time.Hour),
		Type:      req.Type,
		Amount:    req.Amount,
		Balance:   newBalance,
		AccountID: account.ID,
		CreatedAt: now,
	}

	// Persist: update account balance
	if err := s.accountRepo.UpdateBalance(ctx, dbTx, account.ID, newBalance); err != nil {
		return nil, apperror.ErrPersistence("update", "account", err)
	}

	// Persist: create immutable ledger entry
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.ErrPersistence("create", "transaction", err)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrPersistence("commit", "transaction", err)
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("account_id", account.ID.String()).
		Str("type", string(req.Type)).
		Int64("amount", req.Amount).
		Int64("balance", newBalance).
		Msg("transaction applied")

	return txn, nil
}

// GetTransaction fetches one ledger entry by ID.
func (s *LedgerServiceImpl) GetTransaction(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	txn, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrPersistence("retrieve", "transaction", err)
	}
	if txn == nil {
		return nil, apperror.ErrTransactionNotFound()
	}
	return txn, nil
}

// LastTransaction fetches the most recent entry for an account.
func (s *LedgerServiceImpl) LastTransaction(ctx context.Context, accountID uuid.UUID) (*domain.Transaction, error) {
	txn, err := s.txRepo.GetLastByAccountID(ctx, accountID)
	if err != nil {
		return nil, apperror.ErrPersistence("retrieve", "transaction", err)
	}
	if txn == nil {
		return nil, apperror.ErrTransactionNotFound()
	}
	return txn, nil
}

// TransactionsInRange fetches entries with date in [from, to].
func (s *LedgerServiceImpl) TransactionsInRange(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]domain.Transaction, error) {
	txns, err := s.txRepo.ListByAccountIDAndDateRange(ctx, accountID, from, to)
	if err != nil {
		return nil, apperror.ErrPersistence("retrieve", "transactions", err)
	}
	return txns, nil
}
