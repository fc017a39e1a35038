package services

import (
	"context"
	"strconv"

	"github.com/safafin/go-loan-api/internal/common"
	"github.com/safafin/go-loan-api/internal/common/log"
	"github.com/safafin/go-loan-api/internal/common/money"
	"github.com/safafin/go-loan-api/internal/common/publisher"
	"github.com/safafin/go-loan-api/internal/models"
	"github.com/safafin/go-loan-api/internal/repositories"
)

type LoanService interface {
	Create(ctx context.Context, in models.CreateLoan) (created models.Loan, err error)
	GetOne(ctx context.Context, principal models.Principal, id int64) (result models.Loan, err error)
	GetList(ctx context.Context, principal models.Principal, opts models.GetLoanFilter) (loans []models.Loan, total int, err error)
}

type loan service

var _ LoanService = (*loan)(nil)

// Create originates a loan: it charges the customer's credit limit with the
// principal, stores the loan and schedules one installment per month, each
// due on the first day of the month. The principal and the interest-inclusive
// total are partitioned separately, so every installment carries its own
// principal share next to the nominal amount due. The whole thing runs in one
// transaction holding a lock on the customer row, and is retried on
// transaction conflicts.
func (ls *loan) Create(ctx context.Context, in models.CreateLoan) (created models.Loan, err error) {
	principal := money.RoundBank2(in.Amount)
	totalAmount := money.RoundBank2(in.TotalWithInterest(principal))

	principalParts, err := money.Partition(principal, in.NumberOfInstallments)
	if err != nil {
		return
	}

	totalParts, err := money.Partition(totalAmount, in.NumberOfInstallments)
	if err != nil {
		return
	}

	err = ls.srv.retryer.Retry(ctx, func() error {
		txErr := ls.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
			cust, stepErr := r.GetCustomerRepository().GetOneForUpdate(ctx, in.CustomerID)
			if stepErr != nil {
				return stepErr
			}

			if cust.AvailableLimit().LessThan(principal) {
				return common.ErrNotEnoughLimit
			}

			createdLoan, stepErr := r.GetLoanRepository().Create(ctx, models.Loan{
				CustomerID:           in.CustomerID,
				Amount:               models.NewDecimalFromExternal(principal),
				TotalAmount:          models.NewDecimalFromExternal(totalAmount),
				NumberOfInstallments: in.NumberOfInstallments,
			})
			if stepErr != nil {
				return stepErr
			}

			now := common.Now()
			for i := range principalParts {
				installment, stepErr := r.GetInstallmentRepository().Create(ctx, models.Installment{
					LoanID:      createdLoan.ID,
					Amount:      models.NewDecimalFromExternal(principalParts[i]),
					TotalAmount: models.NewDecimalFromExternal(totalParts[i]),
					DueDate:     common.FirstOfMonthAfter(now, i+1),
				})
				if stepErr != nil {
					return stepErr
				}

				createdLoan.Installments = append(createdLoan.Installments, installment)
			}

			newUsedLimit := cust.UsedCreditLimit.Decimal.Add(principal)
			if stepErr := r.GetCustomerRepository().UpdateUsedCreditLimit(ctx, cust.ID, newUsedLimit); stepErr != nil {
				return stepErr
			}

			created = *createdLoan
			return nil
		})
		if txErr != nil && !isRetryableTxError(txErr) {
			return ls.srv.retryer.StopRetryWithErr(txErr)
		}

		return txErr
	})
	if err != nil {
		return
	}

	ls.srv.metrics.RecordOrigination(strconv.Itoa(in.NumberOfInstallments), principal)
	ls.publishEvent(ctx, models.EventTypeLoanOriginated, created)

	return
}

func (ls *loan) GetOne(ctx context.Context, principal models.Principal, id int64) (result models.Loan, err error) {
	result, err = ls.srv.sqlRepo.GetLoanRepository().GetOne(ctx, id)
	if err != nil {
		return
	}

	if !principal.CanAccess(result.CustomerID) {
		err = common.ErrAccessDenied
		return models.Loan{}, err
	}

	result.Installments, err = ls.srv.sqlRepo.GetInstallmentRepository().GetAllByLoanID(ctx, id)
	if err != nil {
		return
	}

	return
}

// GetList returns loans visible to the caller. Customers only ever see their
// own loans no matter what filter they send.
func (ls *loan) GetList(ctx context.Context, principal models.Principal, opts models.GetLoanFilter) (loans []models.Loan, total int, err error) {
	if !principal.IsAdmin {
		opts.CustomerID = principal.ID
	}

	loanRepo := ls.srv.sqlRepo.GetLoanRepository()

	loans, err = loanRepo.GetList(ctx, opts)
	if err != nil {
		return
	}

	if len(loans) == 0 {
		return loans, total, nil
	}

	total, err = loanRepo.CountAll(ctx, opts)
	if err != nil {
		return
	}

	return loans, total, nil
}

func (ls *loan) publishEvent(ctx context.Context, eventType string, subject models.Loan) {
	if ls.srv.loanEventPub == nil {
		return
	}

	event := models.LoanEvent{
		EventID:    ls.srv.idgenerator.Generate("loan", "event"),
		EventType:  eventType,
		LoanID:     subject.ID,
		CustomerID: subject.CustomerID,
		Amount:     subject.Amount,
		OccurredAt: common.Now(),
	}

	if err := ls.srv.loanEventPub.Publish(ctx, event, publisher.WithKey(strconv.FormatInt(subject.ID, 10))); err != nil {
		log.Warn(ctx, "[LOAN.EVENT.PUBLISH_FAILED]",
			log.String("eventType", eventType),
			log.Int64("loanId", subject.ID),
			log.Err(err),
		)
	}
}
