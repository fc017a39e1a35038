package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

type Customer struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Surname         string    `json:"surname"`
	Username        string    `json:"username"`
	PasswordHash    string    `json:"-"`
	Role            string    `json:"role"`
	CreditLimit     Decimal   `json:"creditLimit"`
	UsedCreditLimit Decimal   `json:"usedCreditLimit"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (c Customer) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// AvailableLimit is the credit still open for new loans.
func (c Customer) AvailableLimit() decimal.Decimal {
	return c.CreditLimit.Decimal.Sub(c.UsedCreditLimit.Decimal)
}

type CreateCustomer struct {
	Name        string
	Surname     string
	Username    string
	Password    string
	Role        string
	CreditLimit decimal.Decimal
}

type DoCreateCustomerRequest struct {
	Name        string  `json:"name" validate:"required,noStartEndSpaces"`
	Surname     string  `json:"surname" validate:"required,noStartEndSpaces"`
	Username    string  `json:"username" validate:"required,noStartEndSpaces"`
	Password    string  `json:"password" validate:"required,min=8"`
	CreditLimit Decimal `json:"creditLimit" validate:"required,decimalGreaterThan=0"`
}

func (r DoCreateCustomerRequest) ToCreateCustomer() CreateCustomer {
	return CreateCustomer{
		Name:        r.Name,
		Surname:     r.Surname,
		Username:    r.Username,
		Password:    r.Password,
		Role:        RoleCustomer,
		CreditLimit: r.CreditLimit.Decimal,
	}
}

type DoCreateCustomerResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Surname         string    `json:"surname"`
	Username        string    `json:"username"`
	Role            string    `json:"role"`
	CreditLimit     Decimal   `json:"creditLimit"`
	UsedCreditLimit Decimal   `json:"usedCreditLimit"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (c Customer) ToCreateCustomerResponse() DoCreateCustomerResponse {
	return DoCreateCustomerResponse{
		ID:              c.ID,
		Name:            c.Name,
		Surname:         c.Surname,
		Username:        c.Username,
		Role:            c.Role,
		CreditLimit:     c.CreditLimit,
		UsedCreditLimit: c.UsedCreditLimit,
		CreatedAt:       c.CreatedAt,
	}
}

type DoLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type DoLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
