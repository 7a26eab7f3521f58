package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for report period dates.
const DateLayout = "2006-01-02"

// ReportRequestEvent asks the account service to assemble a transaction
// report for a client over an inclusive date range. The correlation ID binds
// every hop of one saga instance and keys the bus messages.
type ReportRequestEvent struct {
	ClientID      uuid.UUID `json:"clientId"`
	StartDate     string    `json:"startDate"` // YYYY-MM-DD
	EndDate       string    `json:"endDate"`   // YYYY-MM-DD
	CorrelationID string    `json:"correlationId"`
}

// ClientData is the client block of a report response. Until enrichment only
// ID is populated; the client service fills the personal attributes.
type ClientData struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name,omitempty"`
	DNI     string    `json:"dni,omitempty"`
	Gender  string    `json:"gender,omitempty"`
	Age     int       `json:"age,omitempty"`
	Phone   string    `json:"phone,omitempty"`
	Address string    `json:"address,omitempty"`
}

// ReportPeriod is the requested date range, display-formatted.
type ReportPeriod struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// TransactionSummary is a display-level projection of one ledger entry.
// Amount and Balance are fixed-point decimal strings so no floating point
// representation crosses the wire.
type TransactionSummary struct {
	Type    string `json:"type"`
	Date    string `json:"date"`
	Amount  string `json:"amount"`
	Balance string `json:"balance"`
}

// AccountData aggregates one account and its in-range transactions.
type AccountData struct {
	Number         string               `json:"number"`
	Type           string               `json:"type"`
	InitialAmount  string               `json:"initialAmount"`
	CurrentBalance string               `json:"currentBalance"`
	Transactions   []TransactionSummary `json:"transactions,omitempty"`
}

// ReportResponseEvent is the report payload flowing through the response and
// enriched topics, and ultimately returned to the polling caller.
type ReportResponseEvent struct {
	Client        ClientData    `json:"client"`
	Period        ReportPeriod  `json:"period"`
	Accounts      []AccountData `json:"accounts"`
	CorrelationID string        `json:"correlationId"`
}

// ReportStatus is the terminal state of a tracked report.
type ReportStatus string

const (
	ReportStatusReady ReportStatus = "READY"
	ReportStatusLost  ReportStatus = "LOST"
)

// TrackedReport is the correlation store entry: a completed report, or a
// Lost marker when enrichment found no matching client.
type TrackedReport struct {
	Status ReportStatus         `json:"status"`
	Report *ReportResponseEvent `json:"report,omitempty"`
}

// FormatReportDate renders t in the report wire format.
func FormatReportDate(t time.Time) string {
	return t.Format(DateLayout)
}
