package models

import (
	"time"
)

const (
	EventTypeLoanOriginated = "loan.originated"
	EventTypeLoanPayment    = "loan.payment"
	EventTypeLoanCompleted  = "loan.completed"
)

// LoanEvent is the message published to the loan event topic after a
// successful origination or settlement.
type LoanEvent struct {
	EventID    string    `json:"eventId"`
	EventType  string    `json:"eventType"`
	LoanID     int64     `json:"loanId"`
	CustomerID int64     `json:"customerId"`
	Amount     Decimal   `json:"amount"`
	OccurredAt time.Time `json:"occurredAt"`
}
