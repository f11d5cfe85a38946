package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UnknownOlympus/compass/internal/api"
	"github.com/UnknownOlympus/compass/internal/config"
	"github.com/UnknownOlympus/compass/internal/display"
	"github.com/UnknownOlympus/compass/internal/location"
	"github.com/UnknownOlympus/compass/internal/metrics"
	"github.com/UnknownOlympus/compass/internal/reporter"
	"github.com/UnknownOlympus/compass/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()
	logger := setupLogger(cfg.Env)

	// Application metrics and the Go runtime and process collectors share one registry
	// served on /metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	providerConfig := location.ProviderConfig{
		Type:      location.ProviderType(cfg.Provider.Type),
		APIKey:    cfg.Provider.APIKey,
		Query:     cfg.Provider.Query,
		DeviceID:  cfg.Provider.DeviceID,
		RateLimit: cfg.Provider.RateLimit,
		Latitude:  cfg.Provider.Latitude,
		Longitude: cfg.Provider.Longitude,
		Logger:    logger,
	}

	// The database is only needed when fixes are read from it.
	var health api.HealthChecker
	if providerConfig.Type == location.ProviderTypeDatabase {
		dtb, err := repository.NewDatabase(
			ctx, cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
		)
		if err != nil {
			log.Fatalf("Failed to connect to DB: %v", err)
		}
		defer dtb.Close()

		var repo repository.Interface = repository.NewRepository(dtb, logger)
		providerConfig.Store = repo
		health = repo
	}

	// A provider that cannot be built means the host has no location capability.
	provider, err := location.NewProvider(providerConfig)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create location provider, location is unavailable",
			"type", cfg.Provider.Type, "error", err)
		provider = location.UnavailableProvider{}
	}

	logger.InfoContext(ctx, "Location provider initialized",
		"type", cfg.Provider.Type, "available", provider.Available())

	target := display.New()
	rep := reporter.New(logger, provider, cfg.Provider.Type, target, appMetrics)
	server := api.NewServer(logger, rep, target, health, appMetrics, reg)

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	if err = runServer(ctx, logger, server.Router(), cfg.Port); err != nil {
		logger.ErrorContext(ctx, "HTTP server failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Application stopped gracefully.")
}

// runServer serves handler on the given port until ctx is canceled, then shuts the
// server down and waits for in-flight requests.
func runServer(ctx context.Context, log *slog.Logger, handler http.Handler, port int) error {
	const (
		readTimeout     = 5 * time.Second
		writeTimeout    = 30 * time.Second // lifted by the ?wait=true report handler
		shutdownTimeout = 10 * time.Second
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "Starting HTTP server", "port", port)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	dropTime := func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	}

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelError,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
