package loan

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

type loanHandler struct {
	loanService services.LoanService
}

// New loan handler will initialize the loans/ resources endpoint
func New(app fiber.Router, loanService services.LoanService, m middleware.AppMiddleware) {
	lh := loanHandler{loanService: loanService}
	loans := app.Group("/loans", m.Authenticate())
	loans.Post("/", lh.createLoan())
	loans.Get("/", lh.getAllLoans())
	loans.Get("/:loanID", lh.getOneLoan())
}

// createLoan API originates a loan for the authenticated customer
// @Summary Create loan
// @Description Originate a loan with its installment schedule for the authenticated customer
// @Tags Loans
// @Accept  json
// @Produce  json
// @Param 	payload body models.DoCreateLoanRequest true "A JSON object containing the create loan payload"
// @Param	Authorization header string true "Bearer token"
// @Success 201 {object} models.DoCreateLoanResponse "Response indicates that the request succeeded and the loan has been created"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the customer does not have enough credit limit"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the customer no longer exists"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if there is an error validation while create loan"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while create loan"
// @Router /v1/loans [post]
func (lh loanHandler) createLoan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := middleware.PrincipalFromCtx(c)
		if !ok {
			return http.RestErrorResponse(c, fiber.StatusUnauthorized, common.ErrMissingAuthToken)
		}

		req := new(models.DoCreateLoanRequest)
		if err := c.BodyParser(req); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		created, err := lh.loanService.Create(c.UserContext(), req.ToCreateLoan(principal.ID))
		if err != nil {
			switch {
			case errors.Is(err, common.ErrNotEnoughLimit):
				return http.RestErrorResponse(c, fiber.StatusBadRequest, models.GetErrMap("NotEnoughLimit"))
			case errors.Is(err, common.ErrCustomerNotFound):
				return http.RestErrorResponse(c, fiber.StatusNotFound, models.GetErrMap("CustomerNotFound"))
			default:
				return http.RestErrorResponse(c, fiber.StatusInternalServerError, err)
			}
		}

		return http.RestSuccessResponse(c, fiber.StatusCreated, created.ToCreateLoanResponse())
	}
}

// getAllLoans API lists loans visible to the caller
// @Summary Get all loans
// @Description List loans, customers only see their own, admins see everything
// @Tags Loans
// @Accept  json
// @Produce  json
// @Param	Authorization header string true "Bearer token"
// @Param   params query models.DoGetListLoanRequest true "Get all loans query parameters"
// @Success 200 {object} http.RestTotalRowResponseModel "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if a query parameter has the wrong type"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while listing loans"
// @Router /v1/loans [get]
func (lh loanHandler) getAllLoans() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := middleware.PrincipalFromCtx(c)
		if !ok {
			return http.RestErrorResponse(c, fiber.StatusUnauthorized, common.ErrMissingAuthToken)
		}

		var queryFilter models.DoGetListLoanRequest
		if err := c.QueryParser(&queryFilter); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		loans, total, err := lh.loanService.GetList(c.UserContext(), principal, queryFilter.ToFilter())
		if err != nil {
			return http.RestErrorResponse(c, fiber.StatusInternalServerError, err)
		}

		if loans == nil {
			loans = []models.Loan{}
		}

		return http.RestSuccessResponseListWithTotalRows(c, loans, total)
	}
}

// getOneLoan API fetches one loan with its installment schedule
// @Summary Get one loan by id
// @Description Get one loan detail with its installments
// @Tags Loans
// @Accept  json
// @Produce  json
// @Param 	loanID path int true "loan identifier"
// @Param	Authorization header string true "Bearer token"
// @Success 200 {object} models.Loan "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the loan id is not numeric"
// @Failure 403 {object} http.RestErrorResponseModel "Forbidden. This can happen if the loan belongs to another customer"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the loan does not exist"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while get loan"
// @Router /v1/loans/{loanID} [get]
func (lh loanHandler) getOneLoan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := middleware.PrincipalFromCtx(c)
		if !ok {
			return http.RestErrorResponse(c, fiber.StatusUnauthorized, common.ErrMissingAuthToken)
		}

		loanID, err := c.ParamsInt("loanID")
		if err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		result, err := lh.loanService.GetOne(c.UserContext(), principal, int64(loanID))
		if err != nil {
			return http.RestErrorResponse(c, getHTTPErrorStatusCode(err), mapKnownError(err))
		}

		return http.RestSuccessResponse(c, fiber.StatusOK, result)
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
