package service

import (
	"context"
	"time"

	"bank-backoffice/internal/core/domain"
	"bank-backoffice/internal/core/ports"
	"bank-backoffice/pkg/apperror"

	"github.com/google/uuid"
)

// ReportAggregatorImpl implements ports.ReportAggregator. It is a pure read
// projection over the ledger: active accounts plus their in-range entries,
// rendered as display strings.
type ReportAggregatorImpl struct {
	accountRepo ports.AccountRepository
	txRepo      ports.TransactionRepository
}

// NewReportAggregator creates a new ReportAggregatorImpl.
func NewReportAggregator(accountRepo ports.AccountRepository, txRepo ports.TransactionRepository) *ReportAggregatorImpl {
	return &ReportAggregatorImpl{accountRepo: accountRepo, txRepo: txRepo}
}

// BuildReport assembles per-account data for a client over [from, to].
// Inactive accounts are omitted entirely. A client with no active accounts
// yields an empty list, not an error.
func (a *ReportAggregatorImpl) BuildReport(ctx context.Context, clientID uuid.UUID, from, to time.Time) ([]domain.AccountData, error) {
	accounts, err := a.accountRepo.ListActiveByClientID(ctx, clientID)
	if err != nil {
		return nil, apperror.ErrPersistence("retrieve", "accounts", err)
	}

	accountData := make([]domain.AccountData, 0, len(accounts))
	for _, account := range accounts {
		txns, err := a.txRepo.ListByAccountIDAndDateRange(ctx, account.ID, from, to)
		if err != nil {
			return nil, apperror.ErrPersistence("retrieve", "transactions", err)
		}
		accountData = append(accountData, toAccountData(account, txns))
	}
	return accountData, nil
}

func toAccountData(account domain.Account, txns []domain.Transaction) domain.AccountData {
	data := domain.AccountData{
		Number:         account.Number,
		Type:           string(account.Type),
		InitialAmount:  domain.FormatCents(account.InitialAmount),
		CurrentBalance: domain.FormatCents(account.CurrentBalance),
	}
	for _, t := range txns {
		data.Transactions = append(data.Transactions, domain.TransactionSummary{
			Type:    string(t.Type),
			Date:    domain.FormatReportDate(t.Date),
			Amount:  domain.FormatCents(t.Amount),
			Balance: domain.FormatCents(t.Balance),
		})
	}
	return data
}
