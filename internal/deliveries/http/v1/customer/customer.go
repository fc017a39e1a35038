package customer

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

type customerHandler struct {
	customerService services.CustomerService
}

// New customer handler will initialize the customers/ resources endpoint
func New(app fiber.Router, customerService services.CustomerService, m middleware.AppMiddleware) {
	ch := customerHandler{customerService: customerService}
	customers := app.Group("/customers", m.Authenticate())
	customers.Post("/", ch.createCustomer())
}

// createCustomer API registers a new customer with a credit limit
// @Summary Create customer
// @Description Create a new customer, admin only
// @Tags Customers
// @Accept  json
// @Produce  json
// @Param 	payload body models.DoCreateCustomerRequest true "A JSON object containing the create customer payload"
// @Param	Authorization header string true "Bearer token"
// @Success 201 {object} models.DoCreateCustomerResponse "Response indicates that the request succeeded and the customer has been created"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the payload is not valid JSON"
// @Failure 403 {object} http.RestErrorResponseModel "Forbidden. This can happen if the caller is not an admin"
// @Failure 409 {object} http.RestErrorResponseModel "Conflict. This can happen if the username is already taken"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if there is an error validation while create customer"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while create customer"
// @Router /v1/customers [post]
func (ch customerHandler) createCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := middleware.PrincipalFromCtx(c)
		if !ok {
			return http.RestErrorResponse(c, fiber.StatusUnauthorized, common.ErrMissingAuthToken)
		}
		if !principal.IsAdmin {
			return http.RestErrorResponse(c, fiber.StatusForbidden, models.GetErrMap("AccessDenied"))
		}

		req := new(models.DoCreateCustomerRequest)
		if err := c.BodyParser(req); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		created, err := ch.customerService.Create(c.UserContext(), req.ToCreateCustomer())
		if err != nil {
			if errors.Is(err, common.ErrUsernameTaken) {
				return http.RestErrorResponse(c, fiber.StatusConflict, models.GetErrMap("UsernameTaken"))
			}
			return http.RestErrorResponse(c, fiber.StatusInternalServerError, err)
		}

		return http.RestSuccessResponse(c, fiber.StatusCreated, created.ToCreateCustomerResponse())
	}
}
