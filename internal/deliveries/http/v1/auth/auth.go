package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/safafin/go-loan-api/internal/common"
	"github.com/safafin/go-loan-api/internal/common/http"
	"github.com/safafin/go-loan-api/internal/common/validation"
	"github.com/safafin/go-loan-api/internal/models"
	"github.com/safafin/go-loan-api/internal/services"
)

type authHandler struct {
	customerService services.CustomerService
}

// New auth handler will initialize the auth/ resources endpoint
func New(app fiber.Router, customerService services.CustomerService) {
	ah := authHandler{customerService: customerService}
	auth := app.Group("/auth")
	auth.Post("/login", ah.login())
}

// login API exchanges customer credentials for a bearer token
// @Summary Log a customer in
// @Description Exchange username and password for a bearer token
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param 	payload body models.DoLoginRequest true "A JSON object containing login credentials"
// @Success 200 {object} models.DoLoginResponse "Response indicates that the request succeeded and a token has been issued"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the payload is not valid JSON"
// @Failure 401 {object} http.RestErrorResponseModel "Unauthorized. This can happen if the credentials do not match any customer"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if a credential field is missing"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while issuing the token"
// @Router /v1/auth/login [post]
func (ah authHandler) login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(models.DoLoginRequest)

		if err := c.BodyParser(req); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		token, expiresAt, err := ah.customerService.Authenticate(c.UserContext(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, common.ErrInvalidCredentials) {
				return http.RestErrorResponse(c, fiber.StatusUnauthorized, err)
			}
			return http.RestErrorResponse(c, fiber.StatusInternalServerError, err)
		}

		return http.RestSuccessResponse(c, fiber.StatusOK, models.DoLoginResponse{
			Token:     token,
			ExpiresAt: expiresAt,
		})
	}
}
