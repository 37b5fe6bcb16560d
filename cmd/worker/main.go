// Background worker entry point: periodically sweeps expired crawl cache
// entries and reports its health over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/veritrav/veritrav/internal/config"
	"github.com/veritrav/veritrav/internal/infrastructure/cache"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/prometheus"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	interval := flag.Duration("interval", 0, "cleanup interval (overrides config)")
	healthPort := flag.Int("health-port", 8081, "health check port")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger = logger.Named("worker")

	cleanupInterval := cfg.Worker.CleanupInterval
	if *interval > 0 {
		cleanupInterval = *interval
	}
	if cleanupInterval <= 0 {
		cleanupInterval = time.Hour
	}

	store := buildStore(cfg, logger)

	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace: cfg.Metrics.Namespace,
	}, logger)
	if err != nil {
		logger.Fatal("failed to create metrics collector", logging.Err(err))
	}
	sweepDuration := collector.RegisterHistogram("cache_sweep_duration_seconds",
		"Duration of one cache cleanup sweep", prometheus.DefaultDBDurationBuckets)
	sweptTotal := collector.RegisterCounter("cache_swept_entries_total",
		"Expired cache entries removed", "status")

	// Health endpoint for probes.
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	mux.Handle("/metrics", collector.Handler())
	healthSrv := &http.Server{Addr: fmt.Sprintf(":%d", *healthPort), Handler: mux}
	go func() {
		if err := healthSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", logging.Err(err))
		}
	}()

	logger.Info("cache cleanup worker started",
		logging.Duration("interval", cleanupInterval),
		logging.String("backend", cfg.Cache.Backend),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down worker")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = healthSrv.Shutdown(shutdownCtx)
			return
		case <-ticker.C:
			start := time.Now()
			removed, err := store.Cleanup(ctx)
			sweepDuration.WithLabelValues().Observe(time.Since(start).Seconds())
			if err != nil {
				sweptTotal.WithLabelValues("failure").Inc()
				logger.Error("cache sweep failed", logging.Err(err))
				continue
			}
			sweptTotal.WithLabelValues("success").Add(float64(removed))
			logger.Info("cache sweep completed",
				logging.Int("removed", removed),
				logging.Duration("took", time.Since(start)),
			)
		}
	}
}

func buildStore(cfg *config.Config, logger logging.Logger) cache.Store {
	if cfg.Cache.Backend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return cache.NewRedisStore(client, logger, cache.WithRedisTTL(cfg.Cache.TTL))
	}
	return cache.NewMemoryStore(logger, cache.WithTTL(cfg.Cache.TTL))
}

func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.LoadFromEnv()
	}
	return config.Load(path)
}

//Personal.AI order the ending
