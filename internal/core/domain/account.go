package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountType represents the product kind of a bank account.
type AccountType string

const (
	AccountTypeSavings  AccountType = "SAVINGS"
	AccountTypeChecking AccountType = "CHECKING"
)

// ValidAccountType reports whether t is a known account type.
func ValidAccountType(t AccountType) bool {
	return t == AccountTypeSavings || t == AccountTypeChecking
}

// Account is a client bank account. Number and InitialAmount are immutable
// once assigned; CurrentBalance changes only through ledger application and
// never goes below zero.
type Account struct {
	ID             uuid.UUID   `json:"id"`
	Number         string      `json:"number"`
	Type           AccountType `json:"type"`
	InitialAmount  int64       `json:"initial_amount"`  // cents
	CurrentBalance int64       `json:"current_balance"` // cents
	ClientID       uuid.UUID   `json:"client_id"`
	Active         bool        `json:"active"`
	CreatedAt      time.Time   `json:"created_at"`
}
