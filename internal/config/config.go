package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultDraftCacheSizeMB applies when draft_cache_size_mb is not set.
const DefaultDraftCacheSizeMB = 16

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`
	// per-user data lives under <data_dir>/users/<user>
	DataDir string `toml:"data_dir"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// redis, used for rate limiting program generation
	RedisHost                  string `toml:"redis_host"`
	RedisPort                  string `toml:"redis_port"`
	ProgramsRateLimitPerMinute int    `toml:"programs_rate_limit_per_minute"`
	// program drafts
	DraftTTLSeconds  int      `toml:"draft_ttl_seconds"`
	DraftCacheSizeMB int      `toml:"draft_cache_size_mb"`
	AllowedOrigins   []string `toml:"allowed_origins"`
}

func (c *Config) DraftTTL() time.Duration {
	return time.Duration(c.DraftTTLSeconds) * time.Second
}

// RateLimitEnabled reports whether a redis instance is configured for rate limiting.
func (c *Config) RateLimitEnabled() bool {
	return c.RedisHost != "" && c.ProgramsRateLimitPerMinute > 0
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env,
// with defaults applied for the optional keys.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults(env)

	return cfg, nil
}

func (c *Config) applyDefaults(env string) {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.Environment == "" {
		c.Environment = strings.ToLower(env)
	}
	if c.DataDir == "" {
		c.DataDir = "./data"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.DraftTTLSeconds <= 0 {
		c.DraftTTLSeconds = 3600
	}
	if c.DraftCacheSizeMB <= 0 {
		c.DraftCacheSizeMB = DefaultDraftCacheSizeMB
	}
}
