package models

import (
	"errors"
	"fmt"

	"github.com/safafin/go-loan-api/internal/common"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

// MapErrors maps business error keys and `<field>_<tag>` validation keys to
// the detail returned on the HTTP surface.
var MapErrors = MapErrs{
	"CustomerNotFound": {Code: "LOAN-40401", ErrorMessage: common.ErrCustomerNotFound},
	"LoanNotFound":     {Code: "LOAN-40402", ErrorMessage: common.ErrLoanNotFound},
	"NotEnoughLimit":   {Code: "LOAN-40001", ErrorMessage: common.ErrNotEnoughLimit},
	"AccessDenied":     {Code: "LOAN-40301", ErrorMessage: common.ErrAccessDenied},
	"UsernameTaken":    {Code: "LOAN-40901", ErrorMessage: common.ErrUsernameTaken},

	"amount_required":           {Code: "LOAN-42201", ErrorMessage: errors.New("amount is required")},
	"amount_decimalGreaterThan": {Code: "LOAN-42202", ErrorMessage: errors.New("amount must be greater than zero")},

	"interestRate_required": {Code: "LOAN-42203", ErrorMessage: errors.New("interest rate is required")},
	"interestRate_gte":      {Code: "LOAN-42204", ErrorMessage: errors.New("interest rate must be at least 0.1")},
	"interestRate_lte":      {Code: "LOAN-42205", ErrorMessage: errors.New("interest rate must be at most 0.5")},

	"numberOfInstallments_required":    {Code: "LOAN-42206", ErrorMessage: errors.New("number of installments is required")},
	"numberOfInstallments_installment": {Code: "LOAN-42207", ErrorMessage: errors.New("number of installments must be one of 6, 9, 12 or 24")},

	"name_required":     {Code: "LOAN-42208", ErrorMessage: errors.New("name is required")},
	"surname_required":  {Code: "LOAN-42209", ErrorMessage: errors.New("surname is required")},
	"username_required": {Code: "LOAN-42210", ErrorMessage: errors.New("username is required")},
	"password_required": {Code: "LOAN-42211", ErrorMessage: errors.New("password is required")},
	"password_min":      {Code: "LOAN-42212", ErrorMessage: errors.New("password must be at least 8 characters")},

	"creditLimit_required":          {Code: "LOAN-42213", ErrorMessage: errors.New("credit limit is required")},
	"creditLimit_decimalGreaterThan": {Code: "LOAN-42214", ErrorMessage: errors.New("credit limit must be greater than zero")},
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}
