package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/safafin/go-loan-api/internal/common"
	"github.com/safafin/go-loan-api/internal/models"
)

type LoanRepository interface {
	Create(ctx context.Context, in models.Loan) (created *models.Loan, err error)
	GetOne(ctx context.Context, id int64) (result models.Loan, err error)
	GetOneForUpdate(ctx context.Context, id int64) (result models.Loan, err error)
	GetList(ctx context.Context, opts models.GetLoanFilter) (result []models.Loan, err error)
	CountAll(ctx context.Context, opts models.GetLoanFilter) (total int, err error)
	MarkPaid(ctx context.Context, id int64) (err error)
}

type loanRepository sqlRepo

var _ LoanRepository = (*loanRepository)(nil)

func (r *loanRepository) Create(ctx context.Context, in models.Loan) (created *models.Loan, err error) {
	db := r.r.writer(ctx)

	var loan models.Loan
	err = scanLoan(db.QueryRowContext(ctx, queryLoanCreate,
		in.CustomerID,
		in.Amount.Decimal,
		in.TotalAmount.Decimal,
		in.NumberOfInstallments,
	), &loan)
	if err != nil {
		return nil, err
	}

	created = &loan
	return
}

func (r *loanRepository) GetOne(ctx context.Context, id int64) (result models.Loan, err error) {
	db := r.r.reader(ctx)

	err = scanLoan(db.QueryRowContext(ctx, queryLoanGetOne, id), &result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = common.ErrLoanNotFound
		}
		return
	}

	return
}

// GetOneForUpdate locks the loan row for the remainder of the enclosing
// transaction. Only call it inside Atomic.
func (r *loanRepository) GetOneForUpdate(ctx context.Context, id int64) (result models.Loan, err error) {
	db := r.r.writer(ctx)

	err = scanLoan(db.QueryRowContext(ctx, queryLoanGetOneForUpdate, id), &result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = common.ErrLoanNotFound
		}
		return
	}

	return
}

func (r *loanRepository) GetList(ctx context.Context, opts models.GetLoanFilter) (result []models.Loan, err error) {
	db := r.r.reader(ctx)

	query, args, err := buildListLoanQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var loan models.Loan
		if err = scanLoan(rows, &loan); err != nil {
			return result, err
		}

		result = append(result, loan)
	}

	if err = rows.Err(); err != nil {
		return result, err
	}

	return
}

func (r *loanRepository) CountAll(ctx context.Context, opts models.GetLoanFilter) (total int, err error) {
	db := r.r.reader(ctx)

	query, args, err := buildCountLoanQuery(opts)
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	err = db.QueryRowContext(ctx, query, args...).Scan(&total)
	if err != nil {
		return
	}

	return
}

func (r *loanRepository) MarkPaid(ctx context.Context, id int64) (err error) {
	db := r.r.writer(ctx)

	res, err := db.ExecContext(ctx, queryLoanMarkPaid, id)
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

func scanLoan(row rowScanner, loan *models.Loan) error {
	return row.Scan(
		&loan.ID,
		&loan.CustomerID,
		&loan.Amount.Decimal,
		&loan.TotalAmount.Decimal,
		&loan.NumberOfInstallments,
		&loan.IsPaid,
		&loan.CreatedAt,
		&loan.UpdatedAt,
	)
}
