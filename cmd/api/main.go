// Package main is the entrypoint for the Studentbook API server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/studentbook/studentbook/internal/config"
	"github.com/studentbook/studentbook/internal/handler"
	"github.com/studentbook/studentbook/internal/metrics"
	"github.com/studentbook/studentbook/internal/middleware"
	"github.com/studentbook/studentbook/internal/repository"
	"github.com/studentbook/studentbook/internal/server"
	"github.com/studentbook/studentbook/internal/service"
	"github.com/studentbook/studentbook/web"
)

func main() {
	ctx := context.Background()

	// Local development convenience; real deployments set the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	// A service without its backing store is useless: boot failures here
	// are fatal rather than serving broken endpoints.
	repo, err := repository.New(ctx, cfg.DatabaseURL(), cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Error("failed to connect to database",
			slog.String("error", err.Error()),
			slog.String("host", cfg.DBHost),
			slog.String("database", cfg.DBName),
		)
		os.Exit(1)
	}
	logger.Info("connected to database")

	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Error("failed to bootstrap schema", slog.String("error", err.Error()))
		repo.Close()
		os.Exit(1)
	}
	logger.Info("students table ready")

	studentService := service.NewStudentService(repo, metrics.NewNoop())

	healthHandler := handler.NewHealthHandler(repo)
	studentHandler := handler.NewStudentHandler(studentService, logger)

	r := setupRouter(studentHandler, healthHandler, cfg, logger)

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)
	srv.OnShutdown("database pool", func(ctx context.Context) error {
		repo.Close()
		return nil
	})

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	var h slog.Handler
	if cfg.ResolvedLogFormat() == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	studentHandler *handler.StudentHandler,
	healthHandler *handler.HealthHandler,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.MaxBody(cfg.MaxRequestBodySize))

	r.Get("/health", healthHandler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/students", func(r chi.Router) {
			r.Get("/", studentHandler.List)
			r.Post("/", studentHandler.Create)
			r.Get("/{id}", studentHandler.Get)
			r.Put("/{id}", studentHandler.Update)
			r.Delete("/{id}", studentHandler.Delete)
		})

		r.Get("/export", studentHandler.Export)
		r.Post("/import", studentHandler.Import)

		r.NotFound(handler.NotFound)
		r.MethodNotAllowed(handler.MethodNotAllowed)
	})

	// Everything else is the embedded front-end.
	r.Handle("/*", web.Handler())

	return r
}
