package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
  mode: release
cache:
  backend: redis
  ttl: 720h
redis:
  addr: redis.internal:6379
discovery:
  min_accepted_places: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, 720*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
	assert.Equal(t, 5, cfg.Discovery.MinAcceptedPlaces)

	// Unset fields fall back to defaults.
	assert.Equal(t, DefaultDBHost, cfg.Database.Host)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultDistanceWeight, cfg.Discovery.DistanceWeight)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadInvalidConfigFailsValidation(t *testing.T) {
	path := writeConfigFile(t, `
server:
  mode: staging
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("VERITRAV_SERVER_PORT", "7070")
	t.Setenv("VERITRAV_REDIS_ADDR", "envredis:6379")
	t.Setenv("VERITRAV_LOG_LEVEL", "debug")
	t.Setenv("VERITRAV_CACHE_FALLBACK_MEMORY", "true")
	t.Setenv("VERITRAV_PROVIDERS_WEB_SEARCH_API_KEY", "env-key")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "envredis:6379", cfg.Redis.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Cache.FallbackMemory)
	assert.Equal(t, "env-key", cfg.Providers.WebSearch.APIKey)

	// Unset keys still come from defaults.
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
`)
	t.Setenv("VERITRAV_SERVER_PORT", "6060")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Server.Port, "environment must win over file")
}

func TestMustLoadPanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "absent.yaml"))
	})
}

//Personal.AI order the ending
