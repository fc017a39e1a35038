package loan

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/safafin/go-loan-api/internal/common"
	"github.com/safafin/go-loan-api/internal/models"
)

func Test_Handler_createLoan(t *testing.T) {
	testHelper := loanTestHelper(t)
	timeNow := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	customerToken := testHelper.tokenFor(t, models.Customer{ID: 7, Role: models.RoleCustomer})

	type args struct {
		body  string
		token string
	}
	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name     string
		args     args
		mockData mockData
		doMock   func(args args, mockData mockData)
	}{
		{
			name: "success",
			args: args{
				body:  `{"amount":1000,"interestRate":0.2,"numberOfInstallments":12}`,
				token: customerToken,
			},
			mockData: mockData{
				wantRes:  `{"id":1,"customerId":7,"amount":1000,"totalAmount":1200,"numberOfInstallments":12,"isPaid":false,"createdAt":"2026-02-01T00:00:00Z","installments":[]}`,
				wantCode: 201,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockLoanService.EXPECT().
					Create(gomock.AssignableToTypeOf(context.Background()), gomock.Any()).
					DoAndReturn(func(_ context.Context, in models.CreateLoan) (models.Loan, error) {
						require.Equal(t, int64(7), in.CustomerID)
						require.True(t, in.Amount.Equal(decimal.NewFromInt(1000)))
						require.True(t, in.InterestRate.Equal(decimal.NewFromFloat(0.2)))
						require.Equal(t, 12, in.NumberOfInstallments)

						return models.Loan{
							ID:                   1,
							CustomerID:           in.CustomerID,
							Amount:               models.NewDecimalFromExternal(in.Amount),
							TotalAmount:          models.NewDecimalFromExternal(decimal.NewFromInt(1200)),
							NumberOfInstallments: in.NumberOfInstallments,
							CreatedAt:            timeNow,
						}, nil
					})
			},
		},
		{
			name: "not enough credit limit",
			args: args{
				body:  `{"amount":1000000,"interestRate":0.2,"numberOfInstallments":12}`,
				token: customerToken,
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":"LOAN-40001","message":"not enough available credit limit"}`,
				wantCode: 400,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockLoanService.EXPECT().
					Create(gomock.AssignableToTypeOf(context.Background()), gomock.Any()).
					Return(models.Loan{}, common.ErrNotEnoughLimit)
			},
		},
		{
			name: "error validating policy bounds",
			args: args{
				body:  `{"amount":0,"interestRate":0.8,"numberOfInstallments":7}`,
				token: customerToken,
			},
			mockData: mockData{
				wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"LOAN-42202","field":"amount","message":"amount must be greater than zero"},{"code":"LOAN-42205","field":"interestRate","message":"interest rate must be at most 0.5"},{"code":"LOAN-42207","field":"numberOfInstallments","message":"number of installments must be one of 6, 9, 12 or 24"}]}`,
				wantCode: 422,
			},
		},
		{
			name: "missing token",
			args: args{
				body: `{"amount":1000,"interestRate":0.2,"numberOfInstallments":12}`,
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":401,"message":"missing or malformed authorization header"}`,
				wantCode: 401,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args, tt.mockData)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/loans", strings.NewReader(tt.args.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.args.token != "" {
				req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", tt.args.token))
			}

			resp, err := testHelper.router.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.mockData.wantCode, resp.StatusCode)
			require.Equal(t, tt.mockData.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func Test_Handler_getAllLoans(t *testing.T) {
	testHelper := loanTestHelper(t)
	timeNow := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	customerToken := testHelper.tokenFor(t, models.Customer{ID: 7, Role: models.RoleCustomer})

	type args struct {
		queryURL string
	}
	type mockData struct {
		wantRes         string
		wantResContains string
		wantCode        int
	}
	tests := []struct {
		name     string
		args     args
		mockData mockData
		doMock   func(args args, mockData mockData)
	}{
		{
			name: "success",
			mockData: mockData{
				wantRes:  `{"kind":"collection","contents":[{"id":1,"customerId":7,"amount":1000,"totalAmount":1200,"numberOfInstallments":12,"isPaid":false,"createdAt":"2026-02-01T00:00:00Z","updatedAt":"2026-02-01T00:00:00Z"}],"total_rows":1}`,
				wantCode: 200,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockLoanService.EXPECT().
					GetList(gomock.AssignableToTypeOf(context.Background()), models.Principal{ID: 7}, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ models.Principal, opts models.GetLoanFilter) ([]models.Loan, int, error) {
						require.Equal(t, uint64(10), opts.Limit)

						return []models.Loan{{
							ID:                   1,
							CustomerID:           7,
							Amount:               models.NewDecimalFromExternal(decimal.NewFromInt(1000)),
							TotalAmount:          models.NewDecimalFromExternal(decimal.NewFromInt(1200)),
							NumberOfInstallments: 12,
							CreatedAt:            timeNow,
							UpdatedAt:            timeNow,
						}}, 1, nil
					})
			},
		},
		{
			name: "empty result",
			args: args{
				queryURL: "?isPaid=true",
			},
			mockData: mockData{
				wantRes:  `{"kind":"collection","contents":[],"total_rows":0}`,
				wantCode: 200,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockLoanService.EXPECT().
					GetList(gomock.AssignableToTypeOf(context.Background()), models.Principal{ID: 7}, gomock.Any()).
					Return(nil, 0, nil)
			},
		},
		{
			name: "error limit not uint",
			args: args{
				queryURL: "?limit=invalid_string_here",
			},
			mockData: mockData{
				wantResContains: `"status":"error"`,
				wantCode:        400,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args, tt.mockData)
			}

			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("%s%s", "/api/v1/loans", tt.args.queryURL), nil)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", customerToken))

			resp, err := testHelper.router.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.mockData.wantCode, resp.StatusCode)
			if tt.mockData.wantRes != "" {
				require.Equal(t, tt.mockData.wantRes, strings.TrimSuffix(string(body), "\n"))
			} else {
				require.Contains(t, string(body), tt.mockData.wantResContains)
			}
		})
	}
}

func Test_Handler_getOneLoan(t *testing.T) {
	testHelper := loanTestHelper(t)
	timeNow := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	dueDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	customerToken := testHelper.tokenFor(t, models.Customer{ID: 7, Role: models.RoleCustomer})

	type args struct {
		urlCalled string
	}
	type mockData struct {
		wantRes         string
		wantResContains string
		wantCode        int
	}
	tests := []struct {
		name     string
		args     args
		mockData mockData
		doMock   func(args args, mockData mockData)
	}{
		{
			name: "success",
			args: args{
				urlCalled: "/api/v1/loans/1",
			},
			mockData: mockData{
				wantRes:  `{"id":1,"customerId":7,"amount":1000,"totalAmount":1200,"numberOfInstallments":12,"isPaid":false,"createdAt":"2026-02-01T00:00:00Z","updatedAt":"2026-02-01T00:00:00Z","installments":[{"id":11,"loanId":1,"amount":83.33,"totalAmount":100,"paidAmount":0,"dueDate":"2026-03-01T00:00:00Z","isPaid":false,"createdAt":"2026-02-01T00:00:00Z","updatedAt":"2026-02-01T00:00:00Z"}]}`,
				wantCode: 200,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockLoanService.EXPECT().
					GetOne(gomock.AssignableToTypeOf(context.Background()), models.Principal{ID: 7}, int64(1)).
					Return(models.Loan{
						ID:                   1,
						CustomerID:           7,
						Amount:               models.NewDecimalFromExternal(decimal.NewFromInt(1000)),
						TotalAmount:          models.NewDecimalFromExternal(decimal.NewFromInt(1200)),
						NumberOfInstallments: 12,
						CreatedAt:            timeNow,
						UpdatedAt:            timeNow,
						Installments: []models.Installment{{
							ID:          11,
							LoanID:      1,
							Amount:      models.NewDecimalFromExternal(decimal.RequireFromString("83.33")),
							TotalAmount: models.NewDecimalFromExternal(decimal.NewFromInt(100)),
							DueDate:     dueDate,
							CreatedAt:   timeNow,
							UpdatedAt:   timeNow,
						}},
					}, nil)
			},
		},
		{
			name: "loan not found",
			args: args{
				urlCalled: "/api/v1/loans/999",
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":"LOAN-40402","message":"loan not found"}`,
				wantCode: 404,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockLoanService.EXPECT().
					GetOne(gomock.AssignableToTypeOf(context.Background()), models.Principal{ID: 7}, int64(999)).
					Return(models.Loan{}, common.ErrLoanNotFound)
			},
		},
		{
			name: "loan of another customer",
			args: args{
				urlCalled: "/api/v1/loans/2",
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":"LOAN-40301","message":"access denied"}`,
				wantCode: 403,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockLoanService.EXPECT().
					GetOne(gomock.AssignableToTypeOf(context.Background()), models.Principal{ID: 7}, int64(2)).
					Return(models.Loan{}, common.ErrAccessDenied)
			},
		},
		{
			name: "loan id not numeric",
			args: args{
				urlCalled: "/api/v1/loans/not-a-number",
			},
			mockData: mockData{
				wantResContains: `"status":"error"`,
				wantCode:        400,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args, tt.mockData)
			}

			req := httptest.NewRequest(http.MethodGet, tt.args.urlCalled, nil)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", customerToken))

			resp, err := testHelper.router.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.mockData.wantCode, resp.StatusCode)
			if tt.mockData.wantRes != "" {
				require.Equal(t, tt.mockData.wantRes, strings.TrimSuffix(string(body), "\n"))
			} else {
				require.Contains(t, string(body), tt.mockData.wantResContains)
			}
		})
	}
}
