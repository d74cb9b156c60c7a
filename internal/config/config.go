package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

const (
	RemoteStorePostgres = "postgres"
	RemoteStoreMongo    = "mongo"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	LogMaxBackups int    `toml:"log_max_backups"`
	LogMaxAgeDays int    `toml:"log_max_age_days"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis, used as the local diet plan cache and for rate limiting
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// remote diet plan store: "postgres" (default) or "mongo"
	RemoteStore string `toml:"remote_store"`
	MongoDBName string `toml:"mongo_db_name"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	WriteRateLimitAllowedPerMin int `toml:"write_rate_limit_allowed_per_min"`

	// Timezone is the calendar used for day bucketing (weight reports, sets, 1RM).
	Timezone            string `toml:"timezone"`
	AnalyzerCacheSizeMB int    `toml:"analyzer_cache_size_mb"`
	AnalyzerCacheTTL    string `toml:"analyzer_cache_ttl"`
}

// Location resolves the configured timezone, UTC when unset.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

// CacheTTL parses AnalyzerCacheTTL, defaulting to 5 minutes.
func (c *Config) CacheTTL() (time.Duration, error) {
	if c.AnalyzerCacheTTL == "" {
		return 5 * time.Minute, nil
	}
	return time.ParseDuration(c.AnalyzerCacheTTL)
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.RemoteStore == "" {
		c.RemoteStore = RemoteStorePostgres
	}
	if c.MongoDBName == "" {
		c.MongoDBName = "gymcoach"
	}
	if c.AnalyzerCacheSizeMB <= 0 {
		c.AnalyzerCacheSizeMB = 20
	}
	if c.WriteRateLimitAllowedPerMin <= 0 {
		c.WriteRateLimitAllowedPerMin = 30
	}
}

func (c *Config) validate() error {
	switch c.RemoteStore {
	case RemoteStorePostgres, RemoteStoreMongo:
	default:
		return fmt.Errorf("unknown remote store: %s", c.RemoteStore)
	}
	if c.PostgresHost == "" || c.PostgresDBName == "" {
		return errors.New("postgres host and db name must be set")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	if _, err := c.CacheTTL(); err != nil {
		return fmt.Errorf("analyzer cache ttl: %w", err)
	}
	return nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
