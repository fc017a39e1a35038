package models

import (
	"github.com/shopspring/decimal"
)

// PayLoan is the service-level input for settling installments of a loan.
type PayLoan struct {
	CustomerID int64
	LoanID     int64
	Amount     decimal.Decimal
}

type DoPayLoanRequest struct {
	Amount Decimal `json:"amount" validate:"required,decimalGreaterThan=0"`
}

func (r DoPayLoanRequest) ToPayLoan(customerID, loanID int64) PayLoan {
	return PayLoan{
		CustomerID: customerID,
		LoanID:     loanID,
		Amount:     r.Amount.Decimal,
	}
}

// LoanPaymentInfo summarizes a settlement run: which installments the budget
// covered, how much was actually charged and whether the loan closed.
type LoanPaymentInfo struct {
	PaidInstallments   []Installment `json:"paidInstallments"`
	TotalAmountSpent   Decimal       `json:"totalAmountSpent"`
	LoanPaidCompletely bool          `json:"loanPaidCompletely"`
}

func NewLoanPaymentInfo(paid []Installment, spent decimal.Decimal, completed bool) LoanPaymentInfo {
	if paid == nil {
		paid = []Installment{}
	}

	return LoanPaymentInfo{
		PaidInstallments:   paid,
		TotalAmountSpent:   NewDecimalFromExternal(spent),
		LoanPaidCompletely: completed,
	}
}
