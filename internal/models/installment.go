package models

import (
	"time"
)

// Installment carries two amounts: Amount is its share of the loan principal
// and is what the credit ledger releases when it settles, TotalAmount is its
// share of principal plus interest and is the nominal due amount before any
// discount or penalty.
type Installment struct {
	ID          int64      `json:"id"`
	LoanID      int64      `json:"loanId"`
	Amount      Decimal    `json:"amount"`
	TotalAmount Decimal    `json:"totalAmount"`
	PaidAmount  Decimal    `json:"paidAmount"`
	DueDate     time.Time  `json:"dueDate"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
	IsPaid      bool       `json:"isPaid"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
