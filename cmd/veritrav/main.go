// CLI entry point: wires a local discovery pipeline and runs the command
// tree.
package main

import (
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/veritrav/veritrav/internal/application/discovery"
	"github.com/veritrav/veritrav/internal/config"
	"github.com/veritrav/veritrav/internal/infrastructure/cache"
	"github.com/veritrav/veritrav/internal/infrastructure/database/postgres"
	"github.com/veritrav/veritrav/internal/infrastructure/database/postgres/repositories"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
	"github.com/veritrav/veritrav/internal/infrastructure/providers/placedetails"
	"github.com/veritrav/veritrav/internal/infrastructure/providers/reviews"
	"github.com/veritrav/veritrav/internal/infrastructure/providers/websearch"
	"github.com/veritrav/veritrav/internal/infrastructure/providers/weather"
	"github.com/veritrav/veritrav/internal/interfaces/cli"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	cli.Version = version
	cli.GitCommit = commit
	cli.BuildDate = buildDate
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootOpts := &cli.RootOptions{}
	rootCmd := cli.NewRootCommand(rootOpts)

	// The config path flag must be known before cobra parses, so peek at
	// the arguments up front.
	configPath := peekConfigPath(os.Args[1:])

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logCfg := cfg.Log
	logCfg.Format = "console"
	logCfg.OutputPaths = []string{"stderr"}
	logger, err := logging.NewLogger(logCfg)
	if err != nil {
		return err
	}

	deps := buildDependencies(cfg, logger)
	cli.RegisterCommands(rootCmd, rootOpts, deps)

	return rootCmd.Execute()
}

func buildDependencies(cfg *config.Config, logger logging.Logger) cli.CommandDependencies {
	var store cache.Store
	if cfg.Cache.Backend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store = cache.NewRedisStore(client, logger, cache.WithRedisTTL(cfg.Cache.TTL))
	} else {
		store = cache.NewMemoryStore(logger, cache.WithTTL(cfg.Cache.TTL))
	}

	var searchers []discovery.SearchProvider
	if cfg.Providers.WebSearch.Enabled {
		searchers = append(searchers, websearch.NewClient(websearch.Config{
			BaseURL:      cfg.Providers.WebSearch.BaseURL,
			ClientID:     cfg.Providers.WebSearch.APIKey,
			ClientSecret: cfg.Providers.WebSearch.APISecret,
			Timeout:      cfg.Providers.WebSearch.Timeout,
		}, logger))
	}

	var detailProvider discovery.DetailProvider
	if cfg.Providers.PlaceDetails.Enabled {
		detailProvider = placedetails.NewClient(placedetails.Config{
			BaseURL: cfg.Providers.PlaceDetails.BaseURL,
			APIKey:  cfg.Providers.PlaceDetails.APIKey,
			Timeout: cfg.Providers.PlaceDetails.Timeout,
		}, logger)
	}

	var reviewProvider discovery.ReviewProvider
	if cfg.Providers.Reviews.Enabled {
		reviewProvider = reviews.NewClient(reviews.Config{
			BaseURL:      cfg.Providers.Reviews.BaseURL,
			ClientID:     cfg.Providers.Reviews.APIKey,
			ClientSecret: cfg.Providers.Reviews.APISecret,
			Timeout:      cfg.Providers.Reviews.Timeout,
		}, logger)
	}

	var verRepo discovery.VerificationRepository
	if cfg.Database.Host != "" {
		if conn, err := postgres.NewConnection(cfg.Database, logger); err == nil {
			verRepo = repositories.NewVerificationRepo(conn, logger)
		} else {
			logger.Warn("verification store unavailable", logging.Err(err))
		}
	}

	service := discovery.NewService(
		searchers,
		detailProvider,
		reviewProvider,
		weather.NewCategoryScorer(),
		store,
		nil,
		logger,
		discovery.Options{
			MaxCandidatesPerKeyword: cfg.Discovery.MaxCandidatesPerKeyword,
			MinAcceptedPlaces:       cfg.Discovery.MinAcceptedPlaces,
			DistanceWeight:          cfg.Discovery.DistanceWeight,
			RatingWeight:            cfg.Discovery.RatingWeight,
			VerificationRepo:        verRepo,
		},
	)

	return cli.CommandDependencies{
		Logger:           logger,
		DiscoveryService: service,
		CacheStore:       store,
		VerificationRepo: verRepo,
	}
}

// peekConfigPath extracts --config/-c from raw args before cobra parsing.
func peekConfigPath(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config" || arg == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
		case len(arg) > len("--config=") && arg[:len("--config=")] == "--config=":
			return arg[len("--config="):]
		}
	}
	return ""
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = "configs/config.yaml"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.LoadFromEnv()
	}
	return config.Load(path)
}

//Personal.AI order the ending
