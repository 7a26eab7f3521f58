package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is a bank client record owned by the client service. DNI is unique
// and immutable once assigned.
type Client struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DNI          string    `json:"dni"`
	Gender       string    `json:"gender"`
	Age          int       `json:"age"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}
