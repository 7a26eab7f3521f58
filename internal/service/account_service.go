package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"bank-backoffice/internal/core/domain"
	"bank-backoffice/internal/core/ports"
	"bank-backoffice/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Account number layout: entity code + branch code + 8 random digits.
const (
	numberEntityCode  = "3021"
	numberBranchCode  = "0456"
	numberMaxAttempts = 5
)

// AccountServiceImpl implements ports.AccountService.
type AccountServiceImpl struct {
	accountRepo ports.AccountRepository
	log         zerolog.Logger
}

// NewAccountService creates a new AccountServiceImpl.
func NewAccountService(accountRepo ports.AccountRepository, log zerolog.Logger) *AccountServiceImpl {
	return &AccountServiceImpl{accountRepo: accountRepo, log: log}
}

// Create opens a new account. The initial amount becomes the opening
// balance; the account number is minted with a collision-retry loop against
// the store.
func (s *AccountServiceImpl) Create(ctx context.Context, req ports.CreateAccountRequest) (*domain.Account, error) {
	if !domain.ValidAccountType(req.Type) {
		return nil, apperror.ErrInvalidAccountType()
	}
	if req.InitialAmount < 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	number, err := s.mintNumber(ctx)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		ID:             uuid.New(),
		Number:         number,
		Type:           req.Type,
		InitialAmount:  req.InitialAmount,
		CurrentBalance: req.InitialAmount,
		ClientID:       req.ClientID,
		Active:         true,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, apperror.ErrPersistence("create", "account", err)
	}

	s.log.Info().
		Str("account_id", account.ID.String()).
		Str("number", account.Number).
		Str("client_id", account.ClientID.String()).
		Msg("account created")

	return account, nil
}

// GetByID fetches an active account.
func (s *AccountServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrPersistence("retrieve", "account", err)
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound()
	}
	return account, nil
}

// ListActive fetches all active accounts.
func (s *AccountServiceImpl) ListActive(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListActive(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence("retrieve", "accounts", err)
	}
	return accounts, nil
}

// SetActive flips the logical-deletion flag and returns the updated account.
func (s *AccountServiceImpl) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrPersistence("retrieve", "account", err)
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound()
	}

	if err := s.accountRepo.SetActive(ctx, id, active); err != nil {
		return nil, apperror.ErrPersistence("update", "account", err)
	}
	account.Active = active
	return account, nil
}

// Delete removes an account permanently. Unlike deactivation this is
// irreversible.
func (s *AccountServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.ErrPersistence("retrieve", "account", err)
	}
	if account == nil {
		return apperror.ErrAccountNotFound()
	}

	if err := s.accountRepo.Delete(ctx, id); err != nil {
		return apperror.ErrPersistence("delete", "account", err)
	}

	s.log.Info().Str("account_id", id.String()).Msg("account deleted")
	return nil
}

// mintNumber generates a unique account number, retrying on collision.
func (s *AccountServiceImpl) mintNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < numberMaxAttempts; attempt++ {
		seq, err := rand.Int(rand.Reader, big.NewInt(100_000_000))
		if err != nil {
			return "", apperror.InternalError(fmt.Errorf("generate account number: %w", err))
		}
		number := fmt.Sprintf("%s%s%08d", numberEntityCode, numberBranchCode, seq.Int64())

		exists, err := s.accountRepo.ExistsByNumber(ctx, number)
		if err != nil {
			return "", apperror.ErrPersistence("retrieve", "account", err)
		}
		if !exists {
			return number, nil
		}
	}
	return "", apperror.ErrAccountNumberConflict()
}
