package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/safafin/go-loan-api/internal/common/log"
)

const correlationIDHeader = "X-Correlation-Id"

// RequestContext tags every request with a correlation id and logs it once
// it is served.
func (m *AppMiddleware) RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		correlationID := c.Get(correlationIDHeader)
		if correlationID == "" {
			correlationID = uuid.NewString()
		}

		ctx := log.WithCorrelationID(c.UserContext(), correlationID)
		c.SetUserContext(ctx)
		c.Set(correlationIDHeader, correlationID)

		start := time.Now()
		err := c.Next()

		log.Info(ctx, "[HTTP.REQUEST]",
			log.String("method", c.Method()),
			log.String("path", c.Path()),
			log.Int("status", c.Response().StatusCode()),
			log.Any("latency", time.Since(start).String()),
		)

		return err
	}
}
