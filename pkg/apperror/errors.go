package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Accounts (ACC) ----

func ErrAccountNotFound() *AppError {
	return New("ACC_001", "Account not found", http.StatusNotFound)
}

func ErrAccountInactive() *AppError {
	return New("ACC_002", "Account is inactive", http.StatusConflict)
}

func ErrAccountNumberConflict() *AppError {
	return New("ACC_003", "Account number already exists", http.StatusConflict)
}

func ErrInvalidAccountType() *AppError {
	return New("ACC_004", "Invalid account type", http.StatusBadRequest)
}

// ---- Ledger transactions (TRX) ----

func ErrInvalidAmount() *AppError {
	return New("TRX_001", "Transaction amount must be greater than zero", http.StatusBadRequest)
}

func ErrInvalidTransactionType() *AppError {
	return New("TRX_002", "Invalid transaction type", http.StatusBadRequest)
}

func ErrInsufficientBalance(accountNumber string) *AppError {
	return New("TRX_003", fmt.Sprintf("Insufficient balance in account %s", accountNumber), http.StatusBadRequest)
}

func ErrTransactionNotFound() *AppError {
	return New("TRX_004", "Transaction not found", http.StatusNotFound)
}

// ---- Clients (CLI) ----

func ErrClientNotFound() *AppError {
	return New("CLI_001", "Client not found", http.StatusNotFound)
}

func ErrClientInactive() *AppError {
	return New("CLI_002", "Client is inactive", http.StatusConflict)
}

func ErrClientConflict(field string) *AppError {
	return New("CLI_003", fmt.Sprintf("Client %s already exists", field), http.StatusConflict)
}

// ---- System & Infrastructure (SYS) ----

func ErrPersistence(op, entity string, err error) *AppError {
	return Wrap("SYS_001", fmt.Sprintf("Could not %s %s", op, entity), http.StatusInternalServerError, err)
}

func ErrBusPublish(topic string, err error) *AppError {
	return Wrap("SYS_002", fmt.Sprintf("Could not publish to topic %s", topic), http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a 400 validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
