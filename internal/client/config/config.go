package config

import (
	"time"

	"github.com/dmitrijs2005/carework/internal/common"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds runtime settings for the CareWork CLI.
//
// RateLimit is in requests per second; zero disables limiting.
type Config struct {
	BaseURL        string        `env:"CAREWORK_BASE_URL"`
	RequestTimeout time.Duration `env:"CAREWORK_REQUEST_TIMEOUT"`
	RateLimit      float64       `env:"CAREWORK_RATE_LIMIT"`
	DatabasePath   string        `env:"CAREWORK_DATABASE_PATH"`
	KeyPrefix      string        `env:"CAREWORK_KEY_PREFIX"`
	Environment    string        `env:"CAREWORK_ENVIRONMENT"`
	Locale         string        `env:"CAREWORK_LOCALE"`
	LogLevel       string        `env:"CAREWORK_LOG_LEVEL"`
	LogFormat      string        `env:"CAREWORK_LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.RequestTimeout = 30 * time.Second
	c.RateLimit = 0
	c.DatabasePath = ""
	c.KeyPrefix = common.DefaultKeyPrefix
	c.Environment = EnvDevelopment
	c.Locale = "en"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// IsDevelopment reports whether diagnostics meant for developers are enabled.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, the environment and command-line flags. Later sources take precedence
// over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
