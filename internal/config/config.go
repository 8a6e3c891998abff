// Package config loads application configuration from viper.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"

	"moneytracker/internal/common"
)

// Default values applied when the config file and environment provide
// nothing. The 10 second timeout matches the remote API's expectations.
const (
	DefaultBaseURL = "http://localhost:5000/api/v1"
	DefaultTimeout = 10 * time.Second
)

// API holds the remote API client settings.
type API struct {
	BaseURL string
	Timeout time.Duration
}

// Config is the resolved application configuration.
type Config struct {
	API API
}

// SetDefaults registers defaults on the global viper instance. Called
// once from command setup before Load.
func SetDefaults() {
	viper.SetDefault("api.base_url", DefaultBaseURL)
	viper.SetDefault("api.timeout", DefaultTimeout)
}

// Load resolves the configuration from viper and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		API: API{
			BaseURL: viper.GetString("api.base_url"),
			Timeout: viper.GetDuration("api.timeout"),
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("%w: api.base_url", common.ErrMissingConfig)
	}
	if _, err := url.ParseRequestURI(cfg.API.BaseURL); err != nil {
		return nil, fmt.Errorf("%w: api.base_url %q: %v", common.ErrInvalidConfig, cfg.API.BaseURL, err)
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = DefaultTimeout
	}

	return cfg, nil
}
