package services

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/safafin/go-loan-api/internal/common"
	"github.com/safafin/go-loan-api/internal/common/log"
	"github.com/safafin/go-loan-api/internal/common/money"
	"github.com/safafin/go-loan-api/internal/common/publisher"
	"github.com/safafin/go-loan-api/internal/models"
	"github.com/safafin/go-loan-api/internal/repositories"
)

// dailyAdjustmentRate is the per-day rate applied to an installment amount:
// as a discount for every day it is paid early, as a penalty for every day
// it is paid late.
var dailyAdjustmentRate = decimal.RequireFromString("0.001")

// payableWindowMonths bounds how far ahead a payment may reach: an
// installment is settleable only when its due date lies at most three
// calendar months ahead, boundary included.
const payableWindowMonths = 3

type InstallmentService interface {
	Pay(ctx context.Context, in models.PayLoan) (info models.LoanPaymentInfo, err error)
	GetAllByLoanID(ctx context.Context, principal models.Principal, loanID int64) (result []models.Installment, err error)
}

type installment service

var _ InstallmentService = (*installment)(nil)

// Pay settles as many installments as the paid amount covers, strictly in due
// date order. An installment is either fully covered or not paid at all;
// allocation stops at the first installment the remaining budget cannot
// cover. The run is transactional, holds locks on the loan and customer rows
// and is retried on transaction conflicts.
func (is *installment) Pay(ctx context.Context, in models.PayLoan) (info models.LoanPaymentInfo, err error) {
	err = is.srv.retryer.Retry(ctx, func() error {
		txErr := is.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
			subject, stepErr := r.GetLoanRepository().GetOneForUpdate(ctx, in.LoanID)
			if stepErr != nil {
				return stepErr
			}

			// a loan of another customer is indistinguishable from a missing one
			if subject.CustomerID != in.CustomerID {
				return common.ErrLoanNotFound
			}

			cust, stepErr := r.GetCustomerRepository().GetOneForUpdate(ctx, subject.CustomerID)
			if stepErr != nil {
				return stepErr
			}

			unpaid, stepErr := r.GetInstallmentRepository().GetUnpaidByLoanID(ctx, in.LoanID)
			if stepErr != nil {
				return stepErr
			}

			now := common.Now()
			paid, spent, released, stepErr := is.settle(ctx, r, unpaid, in.Amount, now)
			if stepErr != nil {
				return stepErr
			}

			remaining, stepErr := r.GetInstallmentRepository().GetUnpaidByLoanID(ctx, in.LoanID)
			if stepErr != nil {
				return stepErr
			}

			// completion is solely "nothing unpaid remains": a loan that was
			// already fully paid before this call reports completed with an
			// empty paid list
			completed := len(remaining) == 0
			if completed && !subject.IsPaid {
				if stepErr = r.GetLoanRepository().MarkPaid(ctx, subject.ID); stepErr != nil {
					return stepErr
				}
			}

			// every settled installment frees its principal share, never the
			// interest and never the discounted or penalized charge
			newUsedLimit := cust.UsedCreditLimit.Decimal.Sub(released)
			if stepErr = r.GetCustomerRepository().UpdateUsedCreditLimit(ctx, cust.ID, newUsedLimit); stepErr != nil {
				return stepErr
			}

			info = models.NewLoanPaymentInfo(paid, spent, completed)
			return nil
		})
		if txErr != nil && !isRetryableTxError(txErr) {
			return is.srv.retryer.StopRetryWithErr(txErr)
		}

		return txErr
	})
	if err != nil {
		return
	}

	// only an actual transition to fully-paid counts as a completion, a
	// payment against an already-closed loan does not
	closedNow := info.LoanPaidCompletely && len(info.PaidInstallments) > 0

	is.srv.metrics.RecordSettlement(len(info.PaidInstallments), closedNow)
	if len(info.PaidInstallments) == 0 && !info.LoanPaidCompletely {
		is.srv.metrics.RecordRejection("budget_too_small")
	}

	is.publishEvent(ctx, models.EventTypeLoanPayment, in, info.TotalAmountSpent)
	if closedNow {
		is.publishEvent(ctx, models.EventTypeLoanCompleted, in, info.TotalAmountSpent)
	}

	return
}

// settle walks the open installments in due date order, paying every one the
// remaining budget fully covers and stopping at the first it cannot. It
// reports both the adjusted amounts charged and the principal shares freed,
// which diverge whenever a discount or penalty applies.
func (is *installment) settle(
	ctx context.Context,
	r repositories.SQLRepository,
	unpaid []models.Installment,
	budget decimal.Decimal,
	paymentDate time.Time,
) (paid []models.Installment, spent, released decimal.Decimal, err error) {
	spent = decimal.Zero
	released = decimal.Zero
	today := common.TruncateToDate(paymentDate)

	for _, due := range unpaid {
		// payable window: the due date may lie at most three calendar months
		// ahead, the boundary itself included
		if due.DueDate.AddDate(0, -payableWindowMonths, 0).After(today) {
			break
		}

		effective := effectiveAmount(due, paymentDate)
		if budget.LessThan(effective) {
			break
		}

		if err = r.GetInstallmentRepository().MarkPaid(ctx, due.ID, effective, paymentDate); err != nil {
			return
		}

		due.PaidAmount = models.NewDecimalFromExternal(effective)
		due.PaymentDate = &paymentDate
		due.IsPaid = true

		paid = append(paid, due)
		spent = money.RoundBank2(spent.Add(effective))
		released = released.Add(due.Amount.Decimal)
		budget = budget.Sub(effective)
	}

	return
}

// effectiveAmount adjusts the nominal amount due for the payment date: a
// discount of 0.1% of the total per day when paid before the due date, the
// same as a penalty per day when paid after it.
func effectiveAmount(due models.Installment, paymentDate time.Time) decimal.Decimal {
	amount := due.TotalAmount.Decimal

	days := common.DaysBetween(paymentDate, due.DueDate)
	if days == 0 {
		return money.RoundBank2(amount)
	}

	adjustment := money.RoundBank2(amount.Mul(dailyAdjustmentRate).Mul(decimal.NewFromInt(days)))

	// days is negative past the due date, so the subtraction flips into a penalty
	return money.RoundBank2(amount.Sub(adjustment))
}

func (is *installment) GetAllByLoanID(ctx context.Context, principal models.Principal, loanID int64) (result []models.Installment, err error) {
	subject, err := is.srv.sqlRepo.GetLoanRepository().GetOne(ctx, loanID)
	if err != nil {
		return
	}

	if !principal.CanAccess(subject.CustomerID) {
		return nil, common.ErrAccessDenied
	}

	return is.srv.sqlRepo.GetInstallmentRepository().GetAllByLoanID(ctx, loanID)
}

func (is *installment) publishEvent(ctx context.Context, eventType string, in models.PayLoan, amount models.Decimal) {
	if is.srv.loanEventPub == nil {
		return
	}

	event := models.LoanEvent{
		EventID:    is.srv.idgenerator.Generate("loan", "event"),
		EventType:  eventType,
		LoanID:     in.LoanID,
		CustomerID: in.CustomerID,
		Amount:     amount,
		OccurredAt: common.Now(),
	}

	if err := is.srv.loanEventPub.Publish(ctx, event, publisher.WithKey(strconv.FormatInt(in.LoanID, 10))); err != nil {
		log.Warn(ctx, "[LOAN.EVENT.PUBLISH_FAILED]",
			log.String("eventType", eventType),
			log.Int64("loanId", in.LoanID),
			log.Err(err),
		)
	}
}
