package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/safafin/go-loan-api/internal/common"
	"github.com/safafin/go-loan-api/internal/models"
)

func testLoan() models.Loan {
	return models.Loan{
		ID:                   1,
		CustomerID:           7,
		Amount:               models.NewDecimalFromExternal(decimal.NewFromInt(1000)),
		TotalAmount:          models.NewDecimalFromExternal(decimal.NewFromInt(1200)),
		NumberOfInstallments: 12,
	}
}

func unpaidInstallment(id int64, principal, total string, dueInDays int) models.Installment {
	return models.Installment{
		ID:          id,
		LoanID:      1,
		Amount:      models.NewDecimalFromExternal(decimal.RequireFromString(principal)),
		TotalAmount: models.NewDecimalFromExternal(decimal.RequireFromString(total)),
		DueDate:     common.Today().AddDate(0, 0, dueInDays),
	}
}

func TestInstallmentService_Pay(t *testing.T) {
	testHelper := serviceTestHelper(t)

	in := models.PayLoan{CustomerID: 7, LoanID: 1, Amount: decimal.NewFromInt(240)}

	// one due today, one due in ten days, one far outside the payable window
	dueNow := unpaidInstallment(1, "100", "120", 0)
	dueSoon := unpaidInstallment(2, "100", "120", 10)
	dueLater := unpaidInstallment(3, "100", "120", 150)

	testHelper.mockLoanRepository.EXPECT().
		GetOneForUpdate(gomock.Any(), int64(1)).
		Return(testLoan(), nil)
	testHelper.mockCustomerRepository.EXPECT().
		GetOneForUpdate(gomock.Any(), int64(7)).
		Return(testCustomer("1000"), nil)

	gomock.InOrder(
		testHelper.mockInstallmentRepository.EXPECT().
			GetUnpaidByLoanID(gomock.Any(), int64(1)).
			Return([]models.Installment{dueNow, dueSoon, dueLater}, nil),
		testHelper.mockInstallmentRepository.EXPECT().
			GetUnpaidByLoanID(gomock.Any(), int64(1)).
			Return([]models.Installment{dueLater}, nil),
	)

	// the nominal due settles at face value today, ten days early earns a 1%
	// discount off the total
	testHelper.mockInstallmentRepository.EXPECT().
		MarkPaid(gomock.Any(), int64(1), decimalEq("120"), gomock.AssignableToTypeOf(time.Time{})).
		Return(nil)
	testHelper.mockInstallmentRepository.EXPECT().
		MarkPaid(gomock.Any(), int64(2), decimalEq("118.80"), gomock.AssignableToTypeOf(time.Time{})).
		Return(nil)

	// two principal shares come off the ledger even though the loan is still
	// open; the discount never touches it
	testHelper.mockCustomerRepository.EXPECT().
		UpdateUsedCreditLimit(gomock.Any(), int64(7), decimalEq("800")).
		Return(nil)

	info, err := testHelper.services.Installment.Pay(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, info.PaidInstallments, 2)
	assert.Equal(t, int64(1), info.PaidInstallments[0].ID)
	assert.Equal(t, int64(2), info.PaidInstallments[1].ID)
	assert.True(t, info.PaidInstallments[1].IsPaid)
	require.NotNil(t, info.PaidInstallments[1].PaymentDate)
	assert.True(t, info.TotalAmountSpent.Equal(decimal.RequireFromString("238.80")))
	assert.False(t, info.LoanPaidCompletely)
}

func TestInstallmentService_Pay_CompletesLoan(t *testing.T) {
	testHelper := serviceTestHelper(t)

	in := models.PayLoan{CustomerID: 7, LoanID: 1, Amount: decimal.NewFromInt(120)}
	last := unpaidInstallment(12, "100", "120", 0)

	testHelper.mockLoanRepository.EXPECT().
		GetOneForUpdate(gomock.Any(), int64(1)).
		Return(testLoan(), nil)
	testHelper.mockCustomerRepository.EXPECT().
		GetOneForUpdate(gomock.Any(), int64(7)).
		Return(testCustomer("1000"), nil)

	gomock.InOrder(
		testHelper.mockInstallmentRepository.EXPECT().
			GetUnpaidByLoanID(gomock.Any(), int64(1)).
			Return([]models.Installment{last}, nil),
		testHelper.mockInstallmentRepository.EXPECT().
			GetUnpaidByLoanID(gomock.Any(), int64(1)).
			Return(nil, nil),
	)

	testHelper.mockInstallmentRepository.EXPECT().
		MarkPaid(gomock.Any(), int64(12), decimalEq("120"), gomock.AssignableToTypeOf(time.Time{})).
		Return(nil)
	testHelper.mockLoanRepository.EXPECT().
		MarkPaid(gomock.Any(), int64(1)).
		Return(nil)

	// closing the loan releases this installment's principal share, not the
	// interest and not the rest of the loan
	testHelper.mockCustomerRepository.EXPECT().
		UpdateUsedCreditLimit(gomock.Any(), int64(7), decimalEq("900")).
		Return(nil)

	info, err := testHelper.services.Installment.Pay(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, info.LoanPaidCompletely)
	assert.Len(t, info.PaidInstallments, 1)
	assert.True(t, info.TotalAmountSpent.Equal(decimal.NewFromInt(120)))
}

func TestInstallmentService_Pay_AlreadyPaidLoan(t *testing.T) {
	testHelper := serviceTestHelper(t)

	// paying a fully-settled loan again reports completion with nothing paid
	// and leaves the ledger alone
	in := models.PayLoan{CustomerID: 7, LoanID: 1, Amount: decimal.NewFromInt(120)}

	paidLoan := testLoan()
	paidLoan.IsPaid = true

	testHelper.mockLoanRepository.EXPECT().
		GetOneForUpdate(gomock.Any(), int64(1)).
		Return(paidLoan, nil)
	testHelper.mockCustomerRepository.EXPECT().
		GetOneForUpdate(gomock.Any(), int64(7)).
		Return(testCustomer("0"), nil)

	testHelper.mockInstallmentRepository.EXPECT().
		GetUnpaidByLoanID(gomock.Any(), int64(1)).
		Return(nil, nil).
		Times(2)

	testHelper.mockCustomerRepository.EXPECT().
		UpdateUsedCreditLimit(gomock.Any(), int64(7), decimalEq("0")).
		Return(nil)

	info, err := testHelper.services.Installment.Pay(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, info.LoanPaidCompletely)
	assert.Empty(t, info.PaidInstallments)
	assert.True(t, info.TotalAmountSpent.IsZero())
}

func TestInstallmentService_Pay_DueExactlyThreeMonthsOut(t *testing.T) {
	testHelper := serviceTestHelper(t)

	// the payable window is inclusive: a due date exactly three calendar
	// months ahead still settles
	in := models.PayLoan{CustomerID: 7, LoanID: 1, Amount: decimal.NewFromInt(120)}
	boundary := unpaidInstallment(1, "100", "120", 0)
	// the farthest due date the window admits; stepping back handles the
	// month-end days where adding three months normalizes past the boundary
	boundary.DueDate = common.Today().AddDate(0, 3, 0)
	for boundary.DueDate.AddDate(0, -3, 0).After(common.Today()) {
		boundary.DueDate = boundary.DueDate.AddDate(0, 0, -1)
	}

	testHelper.mockLoanRepository.EXPECT().
		GetOneForUpdate(gomock.Any(), int64(1)).
		Return(testLoan(), nil)
	testHelper.mockCustomerRepository.EXPECT().
		GetOneForUpdate(gomock.Any(), int64(7)).
		Return(testCustomer("1000"), nil)

	gomock.InOrder(
		testHelper.mockInstallmentRepository.EXPECT().
			GetUnpaidByLoanID(gomock.Any(), int64(1)).
			Return([]models.Installment{boundary}, nil),
		testHelper.mockInstallmentRepository.EXPECT().
			GetUnpaidByLoanID(gomock.Any(), int64(1)).
			Return(nil, nil),
	)

	// the early-payment discount depends on today's distance in days, so only
	// the call itself is pinned here
	testHelper.mockInstallmentRepository.EXPECT().
		MarkPaid(gomock.Any(), int64(1), gomock.Any(), gomock.AssignableToTypeOf(time.Time{})).
		Return(nil)
	testHelper.mockLoanRepository.EXPECT().
		MarkPaid(gomock.Any(), int64(1)).
		Return(nil)

	testHelper.mockCustomerRepository.EXPECT().
		UpdateUsedCreditLimit(gomock.Any(), int64(7), decimalEq("900")).
		Return(nil)

	info, err := testHelper.services.Installment.Pay(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, info.PaidInstallments, 1)
	assert.True(t, info.PaidInstallments[0].PaidAmount.LessThan(decimal.NewFromInt(120)), "an early payment is discounted")
}

func TestInstallmentService_Pay_PenaltyPastDue(t *testing.T) {
	testHelper := serviceTestHelper(t)

	// ten days overdue carries a 1% penalty on the total, the budget no
	// longer covers it
	in := models.PayLoan{CustomerID: 7, LoanID: 1, Amount: decimal.NewFromInt(120)}
	overdue := unpaidInstallment(1, "100", "120", -10)

	testHelper.mockLoanRepository.EXPECT().
		GetOneForUpdate(gomock.Any(), int64(1)).
		Return(testLoan(), nil)
	testHelper.mockCustomerRepository.EXPECT().
		GetOneForUpdate(gomock.Any(), int64(7)).
		Return(testCustomer("1000"), nil)

	testHelper.mockInstallmentRepository.EXPECT().
		GetUnpaidByLoanID(gomock.Any(), int64(1)).
		Return([]models.Installment{overdue}, nil).
		Times(2)

	testHelper.mockCustomerRepository.EXPECT().
		UpdateUsedCreditLimit(gomock.Any(), int64(7), decimalEq("1000")).
		Return(nil)

	info, err := testHelper.services.Installment.Pay(context.Background(), in)
	require.NoError(t, err)

	assert.Empty(t, info.PaidInstallments)
	assert.True(t, info.TotalAmountSpent.IsZero())
	assert.False(t, info.LoanPaidCompletely)
}

func TestInstallmentService_Pay_StopsAtFirstUncovered(t *testing.T) {
	testHelper := serviceTestHelper(t)

	// the second installment alone would fit the budget, but allocation is
	// strictly by due date: nothing is paid
	in := models.PayLoan{CustomerID: 7, LoanID: 1, Amount: decimal.NewFromInt(60)}
	first := unpaidInstallment(1, "100", "120", 0)
	second := unpaidInstallment(2, "40", "50", 1)

	testHelper.mockLoanRepository.EXPECT().
		GetOneForUpdate(gomock.Any(), int64(1)).
		Return(testLoan(), nil)
	testHelper.mockCustomerRepository.EXPECT().
		GetOneForUpdate(gomock.Any(), int64(7)).
		Return(testCustomer("1000"), nil)

	testHelper.mockInstallmentRepository.EXPECT().
		GetUnpaidByLoanID(gomock.Any(), int64(1)).
		Return([]models.Installment{first, second}, nil).
		Times(2)

	testHelper.mockCustomerRepository.EXPECT().
		UpdateUsedCreditLimit(gomock.Any(), int64(7), decimalEq("1000")).
		Return(nil)

	info, err := testHelper.services.Installment.Pay(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, info.PaidInstallments)
}

func TestInstallmentService_Pay_LoanOfAnotherCustomer(t *testing.T) {
	testHelper := serviceTestHelper(t)

	in := models.PayLoan{CustomerID: 8, LoanID: 1, Amount: decimal.NewFromInt(100)}

	testHelper.mockLoanRepository.EXPECT().
		GetOneForUpdate(gomock.Any(), int64(1)).
		Return(testLoan(), nil).
		Times(1)

	_, err := testHelper.services.Installment.Pay(context.Background(), in)
	assert.ErrorIs(t, err, common.ErrLoanNotFound)
}

func TestInstallmentService_Pay_LoanNotFound(t *testing.T) {
	testHelper := serviceTestHelper(t)

	in := models.PayLoan{CustomerID: 7, LoanID: 42, Amount: decimal.NewFromInt(100)}

	testHelper.mockLoanRepository.EXPECT().
		GetOneForUpdate(gomock.Any(), int64(42)).
		Return(models.Loan{}, common.ErrLoanNotFound).
		Times(1)

	_, err := testHelper.services.Installment.Pay(context.Background(), in)
	assert.ErrorIs(t, err, common.ErrLoanNotFound)
}

func TestInstallmentService_GetAllByLoanID(t *testing.T) {
	testHelper := serviceTestHelper(t)

	tests := []struct {
		name      string
		principal models.Principal
		doMock    func()
		wantErr   error
	}{
		{
			name:      "owner can read",
			principal: models.Principal{ID: 7},
			doMock: func() {
				testHelper.mockLoanRepository.EXPECT().GetOne(gomock.Any(), int64(1)).Return(testLoan(), nil)
				testHelper.mockInstallmentRepository.EXPECT().GetAllByLoanID(gomock.Any(), int64(1)).Return([]models.Installment{{ID: 1}}, nil)
			},
		},
		{
			name:      "stranger is denied",
			principal: models.Principal{ID: 8},
			doMock: func() {
				testHelper.mockLoanRepository.EXPECT().GetOne(gomock.Any(), int64(1)).Return(testLoan(), nil)
			},
			wantErr: common.ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.doMock()

			result, err := testHelper.services.Installment.GetAllByLoanID(context.Background(), tt.principal, 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, result, 1)
		})
	}
}
