package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/safafin/go-loan-api/internal/common"
	"github.com/safafin/go-loan-api/internal/models"
)

type InstallmentRepository interface {
	Create(ctx context.Context, in models.Installment) (created models.Installment, err error)
	GetAllByLoanID(ctx context.Context, loanID int64) (result []models.Installment, err error)
	GetUnpaidByLoanID(ctx context.Context, loanID int64) (result []models.Installment, err error)
	MarkPaid(ctx context.Context, id int64, paidAmount decimal.Decimal, paymentDate time.Time) (err error)
}

type installmentRepository sqlRepo

var _ InstallmentRepository = (*installmentRepository)(nil)

func (r *installmentRepository) Create(ctx context.Context, in models.Installment) (created models.Installment, err error) {
	db := r.r.writer(ctx)

	err = scanInstallment(db.QueryRowContext(ctx, queryInstallmentCreate,
		in.LoanID,
		in.Amount.Decimal,
		in.TotalAmount.Decimal,
		in.DueDate,
	), &created)
	if err != nil {
		return
	}

	return
}

func (r *installmentRepository) GetAllByLoanID(ctx context.Context, loanID int64) (result []models.Installment, err error) {
	return r.queryInstallments(ctx, queryInstallmentGetAllByLoanID, loanID)
}

// GetUnpaidByLoanID returns the open installments of a loan ordered by due
// date, earliest first. Settlement relies on that ordering.
func (r *installmentRepository) GetUnpaidByLoanID(ctx context.Context, loanID int64) (result []models.Installment, err error) {
	return r.queryInstallments(ctx, queryInstallmentGetUnpaidByLoanID, loanID)
}

func (r *installmentRepository) MarkPaid(ctx context.Context, id int64, paidAmount decimal.Decimal, paymentDate time.Time) (err error) {
	db := r.r.writer(ctx)

	res, err := db.ExecContext(ctx, queryInstallmentMarkPaid, id, paidAmount, paymentDate)
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

func (r *installmentRepository) queryInstallments(ctx context.Context, query string, loanID int64) (result []models.Installment, err error) {
	db := r.r.reader(ctx)

	rows, err := db.QueryContext(ctx, query, loanID)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var installment models.Installment
		if err = scanInstallment(rows, &installment); err != nil {
			return result, err
		}

		result = append(result, installment)
	}

	if err = rows.Err(); err != nil {
		return result, err
	}

	return
}

func scanInstallment(row rowScanner, installment *models.Installment) error {
	return row.Scan(
		&installment.ID,
		&installment.LoanID,
		&installment.Amount.Decimal,
		&installment.TotalAmount.Decimal,
		&installment.PaidAmount.Decimal,
		&installment.DueDate,
		&installment.PaymentDate,
		&installment.IsPaid,
		&installment.CreatedAt,
		&installment.UpdatedAt,
	)
}
