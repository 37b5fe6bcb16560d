package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all settings.
const envPrefix = "VERITRAV"

// configKeys enumerates every known configuration key.  Viper only resolves
// environment variables for keys it has already seen in a file or a
// default, so each key is bound explicitly; without this, env-only
// deployments would silently run on pure defaults.
var configKeys = []string{
	"server.port", "server.mode", "server.read_timeout",
	"server.write_timeout", "server.shutdown_timeout", "server.enable_cors",

	"database.host", "database.port", "database.user", "database.password",
	"database.db_name", "database.ssl_mode", "database.max_conns",
	"database.min_conns", "database.conn_max_lifetime",
	"database.migration_path",

	"redis.addr", "redis.password", "redis.db", "redis.pool_size",
	"redis.dial_timeout", "redis.read_timeout", "redis.write_timeout",

	"opensearch.addresses", "opensearch.user", "opensearch.password",
	"opensearch.insecure_skip_verify", "opensearch.index_prefix",

	"providers.web_search.base_url", "providers.web_search.api_key",
	"providers.web_search.api_secret", "providers.web_search.timeout",
	"providers.web_search.enabled",
	"providers.place_details.base_url", "providers.place_details.api_key",
	"providers.place_details.api_secret", "providers.place_details.timeout",
	"providers.place_details.enabled",
	"providers.reviews.base_url", "providers.reviews.api_key",
	"providers.reviews.api_secret", "providers.reviews.timeout",
	"providers.reviews.enabled",

	"cache.backend", "cache.ttl", "cache.fallback_memory",

	"discovery.max_candidates_per_keyword", "discovery.min_accepted_places",
	"discovery.fallback_enabled", "discovery.request_timeout",
	"discovery.distance_weight", "discovery.rating_weight",

	"worker.cleanup_interval", "worker.concurrency",

	"metrics.enabled", "metrics.namespace", "metrics.path",

	"log.level", "log.format", "log.output_paths", "log.error_output_paths",
}

// newViper builds a pre-configured Viper instance: YAML file type,
// VERITRAV_ env prefix, automatic env binding, and a key replacer that maps
// "." to "_" so that nested keys like "database.host" resolve to
// "VERITRAV_DATABASE_HOST".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range configKeys {
		// BindEnv only fails on an empty key.
		_ = v.BindEnv(key)
	}
	return v
}

// Load reads the YAML file at configPath, merges any VERITRAV_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from VERITRAV_* environment
// variables, with no config file required.  This is the preferred loading
// strategy for containerised deployments.
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config whenever the file is modified on disk.  It is intended for
// hot-reloading non-critical settings such as the log level; callers are
// responsible for applying only the safe subset of changes at runtime.
//
// Watch is non-blocking; viper manages the background goroutine.  A changed
// file that fails to parse or validate does not trigger onChange.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read; callers should have called Load first, so errors here
	// are not actionable.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
}

// MustLoad wraps Load and panics on any error, for use in main() where a
// config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}

//Personal.AI order the ending
