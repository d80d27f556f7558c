// Package config loads and merges storewalk configuration from the YAML
// config file, environment variables, and CLI flag overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variable overrides. Each takes precedence over the config file
// but is itself overridden by an explicit CLI flag.
const (
	EnvFeedURL  = "STOREWALK_FEED_URL"
	EnvPageSize = "STOREWALK_PAGE_SIZE"
	EnvCacheTTL = "STOREWALK_CACHE_TTL"
	EnvLogLevel = "STOREWALK_LOG_LEVEL"
	EnvLogFile  = "STOREWALK_LOG_FILE"
)

// Defaults applied when neither file, env, nor flags specify a value.
const (
	DefaultFeedURL         = "https://fakestoreapi.com/products"
	DefaultTimeoutSeconds  = 10
	DefaultCacheTTLSeconds = 300
	DefaultPageSize        = 10
	DefaultCurrency        = "USD"
	DefaultOutputFormat    = "table"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "console"
)

// configDirName is the per-user directory holding config.yaml and logs.
const configDirName = ".storewalk"

// Config is the root configuration document.
type Config struct {
	Feed    FeedConfig    `yaml:"feed"`
	Catalog CatalogConfig `yaml:"catalog"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// FeedConfig configures the remote product feed client.
type FeedConfig struct {
	// URL is the feed endpoint returning the full product array.
	URL string `yaml:"url"`

	// TimeoutSeconds bounds a single feed request.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// CacheTTLSeconds is how long a fetched dataset is reused in memory.
	// Zero disables memoization.
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`
}

// CatalogConfig configures list presentation.
type CatalogConfig struct {
	// PageSize is the number of products appended per load step.
	PageSize int `yaml:"page_size"`

	// Currency is the ISO 4217 code used when rendering prices.
	Currency string `yaml:"currency"`
}

// LoggingConfig configures the zerolog output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`

	// File, when set, receives a copy of all log events in addition to
	// stderr. Interactive TUI runs log to the file only so the
	// alternate screen stays clean.
	File string `yaml:"file"`
}

// OutputConfig configures non-interactive output.
type OutputConfig struct {
	// DefaultFormat is "table" or "json".
	DefaultFormat string `yaml:"default_format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Feed: FeedConfig{
			URL:             DefaultFeedURL,
			TimeoutSeconds:  DefaultTimeoutSeconds,
			CacheTTLSeconds: DefaultCacheTTLSeconds,
		},
		Catalog: CatalogConfig{
			PageSize: DefaultPageSize,
			Currency: DefaultCurrency,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
		},
	}
}

// DefaultPath returns the per-user config file location
// ($HOME/.storewalk/config.yaml). An empty string means the home directory
// could not be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, "config.yaml")
}

// Load reads the config file at path, merged over the defaults, then applies
// environment overrides. A missing file is not an error: defaults plus env
// apply. path == "" means DefaultPath.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // path comes from the user's own flag or home dir
		switch {
		case err == nil:
			if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, unmarshalErr)
			}
		case os.IsNotExist(err):
			// No config file is fine; defaults apply.
		default:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

// applyEnv layers STOREWALK_* environment variables over cfg. Unparseable
// numeric values are ignored rather than failing startup.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvFeedURL); v != "" {
		c.Feed.URL = v
	}
	if v := os.Getenv(EnvPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Catalog.PageSize = n
		}
	}
	if v := os.Getenv(EnvCacheTTL); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Feed.CacheTTLSeconds = n
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
}

// normalize backfills zero values left by a sparse config file.
func (c *Config) normalize() {
	if c.Feed.URL == "" {
		c.Feed.URL = DefaultFeedURL
	}
	if c.Feed.TimeoutSeconds <= 0 {
		c.Feed.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.Feed.CacheTTLSeconds < 0 {
		c.Feed.CacheTTLSeconds = DefaultCacheTTLSeconds
	}
	if c.Catalog.PageSize <= 0 {
		c.Catalog.PageSize = DefaultPageSize
	}
	if c.Catalog.Currency == "" {
		c.Catalog.Currency = DefaultCurrency
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	if c.Output.DefaultFormat == "" {
		c.Output.DefaultFormat = DefaultOutputFormat
	}
}

// Timeout returns the feed request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Feed.TimeoutSeconds) * time.Second
}

// CacheTTL returns the dataset memoization TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Feed.CacheTTLSeconds) * time.Second
}

// Global config, set once during root command setup and read by subcommands.
var (
	globalConfig   *Config      //nolint:gochecknoglobals // Set once at startup, read by subcommands
	globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects globalConfig
)

// SetGlobal stores the resolved configuration for the current invocation.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// Global returns the configuration resolved at startup, or the defaults when
// setup has not run (tests exercising a subcommand directly).
func Global() *Config {
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	if globalConfig == nil {
		return Default()
	}
	return globalConfig
}
