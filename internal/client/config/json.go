package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/carework/internal/flagx"
	"github.com/dmitrijs2005/carework/internal/timex"
)

// JSONConfig is a DTO used only for unmarshalling. Pointer fields tell an
// absent key from a zero value so that the file overrides only what it sets.
type JSONConfig struct {
	BaseURL        *string         `json:"base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	RateLimit      *float64        `json:"rate_limit"`
	DatabasePath   *string         `json:"database_path"`
	KeyPrefix      *string         `json:"key_prefix"`
	Environment    *string         `json:"environment"`
	Locale         *string         `json:"locale"`
	LogLevel       *string         `json:"log_level"`
	LogFormat      *string         `json:"log_format"`
}

// parseJSON overlays cfg with the file named by -c or -config. It does nothing
// when neither flag is given and panics on read or unmarshal errors.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFilePath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}
	jc.apply(cfg)
}

func (jc JSONConfig) apply(cfg *Config) {
	setIf(&cfg.BaseURL, jc.BaseURL)
	setIf(&cfg.RateLimit, jc.RateLimit)
	setIf(&cfg.DatabasePath, jc.DatabasePath)
	setIf(&cfg.KeyPrefix, jc.KeyPrefix)
	setIf(&cfg.Environment, jc.Environment)
	setIf(&cfg.Locale, jc.Locale)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
