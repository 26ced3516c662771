package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port      string          `env:"PORT" envDefault:"4000"`
	Log       LogConfig       `envPrefix:"LOG_"`
	Upstream  UpstreamConfig  `envPrefix:"STATSAPI_"`
	Cache     CacheConfig     `envPrefix:"CACHE_"`
	Reference ReferenceConfig `envPrefix:"REFERENCE_"`
	Metrics   MetricsConfig   `envPrefix:"METRICS_"`
}

// LogConfig selects log verbosity and output format.
type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// UpstreamConfig controls how the MLB Stats API is reached.
type UpstreamConfig struct {
	BaseURL        string        `env:"BASE_URL" envDefault:"https://statsapi.mlb.com"`
	Timeout        time.Duration `env:"TIMEOUT" envDefault:"20s"`
	RetryAttempts  int           `env:"RETRY_ATTEMPTS" envDefault:"3"`
	RetryBackoff   time.Duration `env:"RETRY_BACKOFF" envDefault:"200ms"`
	BreakerEnabled bool          `env:"BREAKER_ENABLED" envDefault:"true"`
}

// CacheConfig selects the cache backend and per-category TTLs.
type CacheConfig struct {
	Backend  string `env:"BACKEND" envDefault:"fs"`
	Dir      string `env:"DIR" envDefault:"storage/cache"`
	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`

	ScheduleTTL       time.Duration `env:"SCHEDULE_TTL" envDefault:"5m"`
	StandingsTTL      time.Duration `env:"STANDINGS_TTL" envDefault:"30m"`
	LiveTTL           time.Duration `env:"LIVE_TTL" envDefault:"1m"`
	PostseasonTTL     time.Duration `env:"POSTSEASON_TTL" envDefault:"1h"`
	PostseasonLiveTTL time.Duration `env:"POSTSEASON_LIVE_TTL" envDefault:"5m"`
	ProfileTTL        time.Duration `env:"PROFILE_TTL" envDefault:"24h"`
	RosterTTL         time.Duration `env:"ROSTER_TTL" envDefault:"6h"`
}

// ReferenceConfig points at the read-only reference database, if any.
type ReferenceConfig struct {
	SQLitePath string `env:"DB_PATH"`
}

// MetricsConfig controls telemetry exporters.
type MetricsConfig struct {
	Enabled      bool   `env:"ENABLED" envDefault:"true"`
	Port         string `env:"PORT" envDefault:"9090"`
	ServiceName  string `env:"SERVICE_NAME" envDefault:"mlb-stats-service"`
	OtlpEndpoint string `env:"OTLP_ENDPOINT"`
	OtlpInsecure bool   `env:"OTLP_INSECURE"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	switch c.Cache.Backend {
	case "fs", "redis", "memory":
	default:
		c.Cache.Backend = "fs"
	}
	if c.Upstream.Timeout <= 0 {
		c.Upstream.Timeout = 20 * time.Second
	}
	if c.Upstream.RetryAttempts <= 0 {
		c.Upstream.RetryAttempts = 3
	}
}
