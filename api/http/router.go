package http

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/artem13815/members/api/http/handlers"
	"github.com/artem13815/members/api/http/presenter"
	"github.com/artem13815/members/pkg/version"
)

// NewApp builds a Fiber app whose errors and panics are answered with the
// failure envelope.
func NewApp(log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "members",
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
			return presenter.Failure(c, status, "request failed", err)
		},
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(requestContext)
	app.Use(requestLogger(log))
	return app
}

// Handlers groups what Register mounts.
type Handlers struct {
	Users  *handlers.UserHandler
	Logs   *handlers.LogHandler
	Health *handlers.HealthHandler
	// LogsAuth guards the log listing.
	LogsAuth fiber.Handler
}

// Register wires all HTTP routes onto given Fiber app, once per version.
// No versions means the default version only.
func Register(app *fiber.App, versions []string, h Handlers) error {
	if len(versions) == 0 {
		versions = []string{""}
	}
	for _, v := range versions {
		prefix, err := version.RoutePrefix(v)
		if err != nil {
			return err
		}
		g := app.Group("/" + prefix)

		g.Get("/test", h.Health.Test)
		// Health and readiness endpoints for probes/monitoring
		g.Get("/health", h.Health.Health)
		g.Get("/ready", h.Health.Ready)

		u := g.Group("/users")
		u.Post("/", h.Users.Store)

		l := g.Group("/logs")
		l.Post("/", h.Logs.Store)
		l.Get("/", h.LogsAuth, h.Logs.Index)
	}
	return nil
}
