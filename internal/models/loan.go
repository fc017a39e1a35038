package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Loan struct {
	ID                   int64     `json:"id"`
	CustomerID           int64     `json:"customerId"`
	Amount               Decimal   `json:"amount"`
	TotalAmount          Decimal   `json:"totalAmount"`
	NumberOfInstallments int       `json:"numberOfInstallments"`
	IsPaid               bool      `json:"isPaid"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`

	Installments []Installment `json:"installments,omitempty"`
}

// CreateLoan is the service-level input for originating a loan.
type CreateLoan struct {
	CustomerID           int64
	Amount               decimal.Decimal
	InterestRate         decimal.Decimal
	NumberOfInstallments int
}

// TotalWithInterest is principal * (1 + rate), banker-rounded by the caller.
// The caller passes the already-rounded principal so the total stays in step
// with what the loan record stores.
func (c CreateLoan) TotalWithInterest(principal decimal.Decimal) decimal.Decimal {
	return principal.Mul(decimal.NewFromInt(1).Add(c.InterestRate))
}

type DoCreateLoanRequest struct {
	Amount               Decimal `json:"amount" validate:"required,decimalGreaterThan=0"`
	InterestRate         float64 `json:"interestRate" validate:"required,gte=0.1,lte=0.5"`
	NumberOfInstallments int     `json:"numberOfInstallments" validate:"required,installment"`
}

func (r DoCreateLoanRequest) ToCreateLoan(customerID int64) CreateLoan {
	return CreateLoan{
		CustomerID:           customerID,
		Amount:               r.Amount.Decimal,
		InterestRate:         decimal.NewFromFloat(r.InterestRate),
		NumberOfInstallments: r.NumberOfInstallments,
	}
}

type DoCreateLoanResponse struct {
	ID                   int64         `json:"id"`
	CustomerID           int64         `json:"customerId"`
	Amount               Decimal       `json:"amount"`
	TotalAmount          Decimal       `json:"totalAmount"`
	NumberOfInstallments int           `json:"numberOfInstallments"`
	IsPaid               bool          `json:"isPaid"`
	CreatedAt            time.Time     `json:"createdAt"`
	Installments         []Installment `json:"installments"`
}

func (l Loan) ToCreateLoanResponse() DoCreateLoanResponse {
	installments := l.Installments
	if installments == nil {
		installments = []Installment{}
	}

	return DoCreateLoanResponse{
		ID:                   l.ID,
		CustomerID:           l.CustomerID,
		Amount:               l.Amount,
		TotalAmount:          l.TotalAmount,
		NumberOfInstallments: l.NumberOfInstallments,
		IsPaid:               l.IsPaid,
		CreatedAt:            l.CreatedAt,
		Installments:         installments,
	}
}

// GetLoanFilter narrows the loan listing. Zero values mean "no filter".
type GetLoanFilter struct {
	CustomerID           int64
	IsPaid               *bool
	NumberOfInstallments int
	Limit                uint64
	Offset               uint64
}

const defaultListLimit = 10

type DoGetListLoanRequest struct {
	CustomerID           int64  `query:"customerId"`
	IsPaid               *bool  `query:"isPaid"`
	NumberOfInstallments int    `query:"numberOfInstallments"`
	Limit                uint64 `query:"limit"`
	Offset               uint64 `query:"offset"`
}

func (r DoGetListLoanRequest) ToFilter() GetLoanFilter {
	limit := r.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	return GetLoanFilter{
		CustomerID:           r.CustomerID,
		IsPaid:               r.IsPaid,
		NumberOfInstallments: r.NumberOfInstallments,
		Limit:                limit,
		Offset:               r.Offset,
	}
}
