package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the direction of a ledger movement.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
)

// ValidTransactionType reports whether t is a known transaction type.
func ValidTransactionType(t TransactionType) bool {
	return t == TransactionTypeDeposit || t == TransactionTypeWithdrawal
}

// Transaction is an immutable ledger entry. Once persisted no field is ever
// modified; the schema backs this with a trigger that rejects updates.
type Transaction struct {
	ID        uuid.UUID       `json:"id"`
	Date      time.Time       `json:"date"` // calendar date, set at creation
	Type      TransactionType `json:"type"`
	Amount    int64           `json:"amount"`  // positive magnitude, cents
	Balance   int64           `json:"balance"` // account balance after application, cents
	AccountID uuid.UUID       `json:"account_id"`
	CreatedAt time.Time       `json:"created_at"`
}

// SignedEffect returns the amount with the sign implied by the type.
func (t *Transaction) SignedEffect() int64 {
	if t.Type == TransactionTypeWithdrawal {
		return -t.Amount
	}
	return t.Amount
}
