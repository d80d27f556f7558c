package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvFeedURL, EnvPageSize, EnvCacheTTL, EnvLogLevel, EnvLogFile} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultFeedURL, cfg.Feed.URL)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.Feed.TimeoutSeconds)
	assert.Equal(t, DefaultCacheTTLSeconds, cfg.Feed.CacheTTLSeconds)
	assert.Equal(t, DefaultPageSize, cfg.Catalog.PageSize)
	assert.Equal(t, DefaultCurrency, cfg.Catalog.Currency)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, DefaultOutputFormat, cfg.Output.DefaultFormat)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)

	path := writeConfigFile(t, `
feed:
  url: http://localhost:8718/products
  timeout_seconds: 3
catalog:
  page_size: 5
  currency: EUR
logging:
  level: debug
output:
  default_format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8718/products", cfg.Feed.URL)
	assert.Equal(t, 3, cfg.Feed.TimeoutSeconds)
	assert.Equal(t, 5, cfg.Catalog.PageSize)
	assert.Equal(t, "EUR", cfg.Catalog.Currency)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)

	// Untouched sections keep their defaults.
	assert.Equal(t, DefaultCacheTTLSeconds, cfg.Feed.CacheTTLSeconds)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
}

func TestLoad_SparseFileBackfillsDefaults(t *testing.T) {
	clearEnv(t)

	path := writeConfigFile(t, `
catalog:
  page_size: 0
feed:
  timeout_seconds: -1
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultPageSize, cfg.Catalog.PageSize)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.Feed.TimeoutSeconds)
	assert.Equal(t, DefaultFeedURL, cfg.Feed.URL)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)

	path := writeConfigFile(t, "feed: [not: a: mapping")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := writeConfigFile(t, `
feed:
  url: http://from-file/products
catalog:
  page_size: 7
`)

	t.Setenv(EnvFeedURL, "http://from-env/products")
	t.Setenv(EnvPageSize, "15")
	t.Setenv(EnvCacheTTL, "0")
	t.Setenv(EnvLogLevel, "trace")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env/products", cfg.Feed.URL)
	assert.Equal(t, 15, cfg.Catalog.PageSize)
	assert.Equal(t, 0, cfg.Feed.CacheTTLSeconds, "explicit zero TTL disables memoization")
	assert.Equal(t, "trace", cfg.Logging.Level)
}

func TestLoad_UnparseableEnvNumbersIgnored(t *testing.T) {
	clearEnv(t)

	t.Setenv(EnvPageSize, "lots")
	t.Setenv(EnvCacheTTL, "-3")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultPageSize, cfg.Catalog.PageSize)
	assert.Equal(t, DefaultCacheTTLSeconds, cfg.Feed.CacheTTLSeconds)
}

func TestDurations(t *testing.T) {
	cfg := Default()
	cfg.Feed.TimeoutSeconds = 3
	cfg.Feed.CacheTTLSeconds = 120

	assert.Equal(t, 3*time.Second, cfg.Timeout())
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL())
}

func TestGlobal(t *testing.T) {
	t.Cleanup(func() { SetGlobal(nil) })

	SetGlobal(nil)
	assert.Equal(t, Default(), Global(), "unset global falls back to defaults")

	cfg := Default()
	cfg.Catalog.PageSize = 42
	SetGlobal(cfg)
	assert.Equal(t, 42, Global().Catalog.PageSize)
}
