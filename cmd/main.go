package main

//
//  @title           herdpulse API
//  @version         1.0
//  @description     Farmer livestock and revenue dashboard service.
//  @termsOfService  https://github.com/guttosm/herdpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/herdpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        dashboard
//  @tag.description Farmer herd health and sales metrics
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/herdpulse/config"
	_ "github.com/guttosm/herdpulse/docs" // swagger docs
	"github.com/guttosm/herdpulse/internal/app"
	"github.com/guttosm/herdpulse/internal/logger"
	"github.com/guttosm/herdpulse/internal/seed"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runMigrate connects to PostgreSQL and applies the embedded schema migrations.
func runMigrate(cfg config.Config) error {
	db, err := app.InitPostgres(cfg)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer func() { _ = db.Close() }()

	return app.RunMigrations(db)
}

// runSeed loads a JSON fixture of animals and orders into PostgreSQL.
func runSeed(ctx context.Context, cfg config.Config, file string, batch int) error {
	if file == "" {
		return errors.New("--file is required in seed mode")
	}

	db, err := app.InitPostgres(cfg)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := seed.ProcessFile(ctx, file, db, batch); err != nil {
		return fmt.Errorf("seed %s: %w", file, err)
	}
	return nil
}

// main is the entry point of the herdpulse application.
//
// Modes (selected via --mode flag):
//   - api:     Starts the REST API serving farmer dashboards.
//   - migrate: Applies the embedded database migrations and exits.
//   - seed:    Loads a JSON fixture of animals and orders into PostgreSQL.
//
// Flags:
//   - --mode:      Execution mode ("api", "migrate" or "seed"). Default: "api".
//   - --port:      Port for the API server. Defaults to value from config (SERVER_PORT).
//   - --file:      Fixture file for seed mode.
//   - --batch:     Records per insert batch in seed mode.
//   - --seed-file: Fixture loaded into the memory store in api mode (STORAGE_DRIVER=memory).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api, migrate or seed")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	file := flag.String("file", "", "Fixture JSON file for seed mode")
	batch := flag.Int("batch", seed.DefaultBatchSize, "Records per insert batch in seed mode")
	seedFile := flag.String("seed-file", config.AppConfig.Storage.SeedFile, "Fixture JSON loaded into the memory store in api mode")
	flag.Parse()

	switch *mode {
	case "migrate":
		logger.L().Info().Msg("running migrations")
		if err := runMigrate(config.AppConfig); err != nil {
			logger.L().Fatal().Err(err).Msg("migration failed")
		}

	case "seed":
		logger.L().Info().Str("file", *file).Msg("running seed")
		if err := runSeed(ctx, config.AppConfig, *file, *batch); err != nil {
			logger.L().Fatal().Err(err).Msg("seed failed")
		}
		logger.L().Info().Msg("seed completed successfully")

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		config.AppConfig.Storage.SeedFile = *seedFile
		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
