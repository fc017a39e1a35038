package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/safafin/go-loan-api/internal/common"
	"github.com/safafin/go-loan-api/internal/models"
)

// uniqueViolation is the SQLSTATE raised when the username index rejects a duplicate.
const uniqueViolation = "23505"

type CustomerRepository interface {
	Create(ctx context.Context, in models.Customer) (created *models.Customer, err error)
	GetOne(ctx context.Context, id int64) (result models.Customer, err error)
	GetOneForUpdate(ctx context.Context, id int64) (result models.Customer, err error)
	GetOneByUsername(ctx context.Context, username string) (result models.Customer, err error)
	UpdateUsedCreditLimit(ctx context.Context, id int64, usedCreditLimit decimal.Decimal) (err error)
}

type customerRepository sqlRepo

var _ CustomerRepository = (*customerRepository)(nil)

func (r *customerRepository) Create(ctx context.Context, in models.Customer) (created *models.Customer, err error) {
	db := r.r.writer(ctx)

	var customer models.Customer
	err = scanCustomer(db.QueryRowContext(ctx, queryCustomerCreate,
		in.Name,
		in.Surname,
		in.Username,
		in.PasswordHash,
		in.Role,
		in.CreditLimit.Decimal,
		in.UsedCreditLimit.Decimal,
	), &customer)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, common.ErrUsernameTaken
		}
		return nil, err
	}

	created = &customer
	return
}

func (r *customerRepository) GetOne(ctx context.Context, id int64) (result models.Customer, err error) {
	db := r.r.reader(ctx)

	err = scanCustomer(db.QueryRowContext(ctx, queryCustomerGetOne, id), &result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = common.ErrCustomerNotFound
		}
		return
	}

	return
}

// GetOneForUpdate locks the customer row for the remainder of the enclosing
// transaction. Only call it inside Atomic.
func (r *customerRepository) GetOneForUpdate(ctx context.Context, id int64) (result models.Customer, err error) {
	db := r.r.writer(ctx)

	err = scanCustomer(db.QueryRowContext(ctx, queryCustomerGetOneForUpdate, id), &result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = common.ErrCustomerNotFound
		}
		return
	}

	return
}

func (r *customerRepository) GetOneByUsername(ctx context.Context, username string) (result models.Customer, err error) {
	db := r.r.reader(ctx)

	err = scanCustomer(db.QueryRowContext(ctx, queryCustomerGetOneByUsername, username), &result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = common.ErrCustomerNotFound
		}
		return
	}

	return
}

func (r *customerRepository) UpdateUsedCreditLimit(ctx context.Context, id int64, usedCreditLimit decimal.Decimal) (err error) {
	db := r.r.writer(ctx)

	res, err := db.ExecContext(ctx, queryCustomerUpdateUsedCreditLimit, id, usedCreditLimit)
	if err != nil {
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return
	}
	if affected == 0 {
		return common.ErrNoRowsAffected
	}

	return
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCustomer(row rowScanner, customer *models.Customer) error {
	return row.Scan(
		&customer.ID,
		&customer.Name,
		&customer.Surname,
		&customer.Username,
		&customer.PasswordHash,
		&customer.Role,
		&customer.CreditLimit.Decimal,
		&customer.UsedCreditLimit.Decimal,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
}
