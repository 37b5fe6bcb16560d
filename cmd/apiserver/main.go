// API server entry point: wires the discovery pipeline, its backends and
// the HTTP interface, then serves until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/veritrav/veritrav/internal/config"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
	httpserver "github.com/veritrav/veritrav/internal/interfaces/http"
	"github.com/veritrav/veritrav/internal/interfaces/http/handlers"
	"github.com/veritrav/veritrav/internal/interfaces/http/middleware"
)

const defaultConfigPath = "configs/config.yaml"

var version = "dev"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting veritrav API server",
		logging.String("version", version),
		logging.Int("port", cfg.Server.Port),
		logging.String("cache_backend", cfg.Cache.Backend),
	)

	app, err := buildApplication(cfg, logger)
	if err != nil {
		logger.Fatal("failed to wire application", logging.Err(err))
	}
	defer app.close()

	router := httpserver.NewRouter(httpserver.RouterConfig{
		DiscoveryHandler:    handlers.NewDiscoveryHandler(app.service, logger),
		VerificationHandler: verificationHandler(app, logger),
		HealthHandler:       handlers.NewHealthHandler(version, app.metrics, app.checkers...),
		Logger:              logger,
		Metrics:             app.metrics,
		MetricsCollector:    app.collector,
		EnableCORS:          cfg.Server.EnableCORS,
		CORSConfig:          middleware.DefaultCORSConfig(),
	})

	srv := httpserver.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("HTTP server failed", logging.Err(err))
		}
	case sig := <-quit:
		logger.Info("received shutdown signal", logging.String("signal", sig.String()))
	}

	if err := srv.Stop(context.Background()); err != nil {
		logger.Error("shutdown failed", logging.Err(err))
	}
}

// verificationHandler is nil when no database is configured, which removes
// the route entirely.
func verificationHandler(app *application, logger logging.Logger) *handlers.VerificationHandler {
	if app.verRepo == nil {
		return nil
	}
	return handlers.NewVerificationHandler(app.verRepo, logger)
}

// loadConfig loads the config file when present and falls back to
// environment variables and defaults otherwise.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "config file %s not found, using environment and defaults\n", path)
		return config.LoadFromEnv()
	}
	return config.Load(path)
}

//Personal.AI order the ending
