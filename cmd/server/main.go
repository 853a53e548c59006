// @title         members API
// @version       1.0
// @description   Member registration with an audited log trail.
// @BasePath      /
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Operator token: "Bearer <JWT>" or "<JWT>".
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/artem13815/members/docs"
	swagger "github.com/gofiber/swagger"

	// internal imports
	"github.com/artem13815/members/api/http"
	"github.com/artem13815/members/api/http/handlers"
	"github.com/artem13815/members/pkg/config"
	"github.com/artem13815/members/pkg/health"
	healthpg "github.com/artem13815/members/pkg/health/checkers"
	"github.com/artem13815/members/pkg/logging"
	"github.com/artem13815/members/pkg/logrecorder"
	pgrepo "github.com/artem13815/members/pkg/repository/postgres"
	"github.com/artem13815/members/pkg/security/jwt"
	"github.com/artem13815/members/pkg/storage/postgres"
	"github.com/artem13815/members/pkg/user"
	"github.com/artem13815/members/pkg/validation"
)

func main() {
	if err := run(); err != nil {
		logging.Setup("error", "text").Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from env/.env
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to PostgreSQL and bring the schema up to date
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL, postgres.Options{MaxConns: int32(cfg.DBMaxConns)})
	if err != nil {
		return err
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool, log); err != nil {
		return err
	}

	// Wire dependencies (Clean Architecture)
	recorder := logrecorder.NewRecorder(pgrepo.NewLogRepository(pool), log)
	users := user.NewService(pgrepo.NewUserRepository(pool), recorder, log, cfg.BcryptCost)
	v := validation.New()

	app := http.NewApp(log)
	err = http.Register(app, cfg.APIVersions, http.Handlers{
		Users:    handlers.NewUserHandler(users, v),
		Logs:     handlers.NewLogHandler(recorder, v),
		Health:   handlers.NewHealthHandler(health.NewService(healthpg.NewPostgresChecker(pool))),
		LogsAuth: jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer, jwt.ScopeLogsRead),
	})
	if err != nil {
		return err
	}

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "port", cfg.Port, "versions", cfg.APIVersions)
		serveErr <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
