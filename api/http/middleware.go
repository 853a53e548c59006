package http

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/artem13815/members/pkg/logging"
)

// requestContext copies the request id set by the requestid middleware into
// the user context so services can log with it.
func requestContext(c *fiber.Ctx) error {
	if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		c.SetUserContext(logging.WithRequestID(c.UserContext(), id))
	}
	return c.Next()
}

// requestLogger writes one structured line per request.
func requestLogger(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		attrs := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"ip", c.IP(),
			"user_agent", c.Get(fiber.HeaderUserAgent),
		}
		if err != nil {
			attrs = append(attrs, "error", err.Error())
		}
		logging.With(c.UserContext(), log).Info("request", attrs...)
		return err
	}
}
