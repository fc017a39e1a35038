package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/safafin/go-loan-api/internal/common"
	"github.com/safafin/go-loan-api/internal/common/http"
	"github.com/safafin/go-loan-api/internal/models"
)

const principalKey = "principal"

// Authenticate verifies the bearer token and stores the caller's principal
// in the request locals. Handlers behind it can rely on PrincipalFromCtx.
func (m *AppMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return http.RestErrorResponse(c, fiber.StatusUnauthorized, common.ErrMissingAuthToken)
		}

		principal, err := m.tokenManager.Parse(token)
		if err != nil {
			return http.RestErrorResponse(c, fiber.StatusUnauthorized, err)
		}

		c.Locals(principalKey, principal)
		return c.Next()
	}
}

func PrincipalFromCtx(c *fiber.Ctx) (models.Principal, bool) {
	principal, ok := c.Locals(principalKey).(models.Principal)
	return principal, ok
}
