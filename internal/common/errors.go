package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRowsAffected        = errors.New("no rows affected")
	ErrDataNotFound          = errors.New("data not found")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrLoanNotFound          = errors.New("loan not found")
	ErrNotEnoughLimit        = errors.New("not enough available credit limit")
	ErrInvalidDivisor        = errors.New("number of parts must be greater than zero")
	ErrAccessDenied          = errors.New("access denied")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrUsernameTaken         = errors.New("username already taken")
	ErrInvalidAmount         = errors.New("amount must be greater than zero")
	ErrValidation            = errors.New("validation failed")
	ErrMissingAuthToken      = errors.New("missing or malformed authorization header")
	ErrMissingIdempotencyKey = errors.New("missing idempotency key. this operation requires idempotency key")
	ErrInvalidFingerprint    = errors.New("idempotency key cannot be reused for different requests payload")
	ErrRequestBeingProcessed = errors.New("request with same idempotency key is being processed")
	ErrNoRows                = sql.ErrNoRows
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}
