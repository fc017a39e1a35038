package installment

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/safafin/go-loan-api/internal/common"
	"github.com/safafin/go-loan-api/internal/common/http"
	"github.com/safafin/go-loan-api/internal/common/http/middleware"
	"github.com/safafin/go-loan-api/internal/common/validation"
	"github.com/safafin/go-loan-api/internal/models"
	"github.com/safafin/go-loan-api/internal/services"
)

type installmentHandler struct {
	installmentService services.InstallmentService
}

// New installment handler will initialize the loans/:loanID installment endpoints
func New(app fiber.Router, installmentService services.InstallmentService, m middleware.AppMiddleware) {
	ih := installmentHandler{installmentService: installmentService}
	loans := app.Group("/loans", m.Authenticate())
	loans.Get("/:loanID/installments", ih.getLoanInstallments())
	loans.Post("/:loanID/pay", m.CheckIdempotentRequest(), ih.payLoan())
}

// getLoanInstallments API lists the installment schedule of a loan
// @Summary Get loan installments
// @Description List all installments of a loan in due date order
// @Tags Installments
// @Accept  json
// @Produce  json
// @Param 	loanID path int true "loan identifier"
// @Param	Authorization header string true "Bearer token"
// @Success 200 {object} http.RestTotalRowResponseModel "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the loan id is not numeric"
// @Failure 403 {object} http.RestErrorResponseModel "Forbidden. This can happen if the loan belongs to another customer"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the loan does not exist"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while listing installments"
// @Router /v1/loans/{loanID}/installments [get]
func (ih installmentHandler) getLoanInstallments() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := middleware.PrincipalFromCtx(c)
		if !ok {
			return http.RestErrorResponse(c, fiber.StatusUnauthorized, common.ErrMissingAuthToken)
		}

		loanID, err := c.ParamsInt("loanID")
		if err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		installments, err := ih.installmentService.GetAllByLoanID(c.UserContext(), principal, int64(loanID))
		if err != nil {
			return http.RestErrorResponse(c, getHTTPErrorStatusCode(err), mapKnownError(err))
		}

		if installments == nil {
			installments = []models.Installment{}
		}

		return http.RestSuccessResponseListWithTotalRows(c, installments, len(installments))
	}
}

// payLoan API settles installments of a loan with the paid amount
// @Summary Pay loan installments
// @Description Settle as many installments as the paid amount covers, earliest due date first
// @Tags Installments
// @Accept  json
// @Produce  json
// @Param 	loanID path int true "loan identifier"
// @Param 	payload body models.DoPayLoanRequest true "A JSON object containing the payment amount"
// @Param	Authorization header string true "Bearer token"
// @Param	X-Idempotency-Key header string true "Idempotency key, replays return the recorded response"
// @Success 200 {object} models.LoanPaymentInfo "Response indicates that the request succeeded and the payment has been processed"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the idempotency key is missing"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the loan does not exist or belongs to another customer"
// @Failure 409 {object} http.RestErrorResponseModel "Conflict. This can happen if a request with the same idempotency key is still running"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if the amount is missing or not positive"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while processing the payment"
// @Router /v1/loans/{loanID}/pay [post]
func (ih installmentHandler) payLoan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := middleware.PrincipalFromCtx(c)
		if !ok {
			return http.RestErrorResponse(c, fiber.StatusUnauthorized, common.ErrMissingAuthToken)
		}

		loanID, err := c.ParamsInt("loanID")
		if err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		req := new(models.DoPayLoanRequest)
		if err := c.BodyParser(req); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		info, err := ih.installmentService.Pay(c.UserContext(), req.ToPayLoan(principal.ID, int64(loanID)))
		if err != nil {
			return http.RestErrorResponse(c, getHTTPErrorStatusCode(err), mapKnownError(err))
		}

		return http.RestSuccessResponse(c, fiber.StatusOK, info)
	}
}

func getHTTPErrorStatusCode(err error) int {
	switch {
	case errors.Is(err, common.ErrLoanNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, common.ErrAccessDenied):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

func mapKnownError(err error) error {
	switch {
	case errors.Is(err, common.ErrLoanNotFound):
		return models.GetErrMap("LoanNotFound")
	case errors.Is(err, common.ErrAccessDenied):
		return models.GetErrMap("AccessDenied")
	default:
		return err
	}
}
