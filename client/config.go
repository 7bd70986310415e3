package client

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the backend connection settings.
type Config struct {
	BaseURL string        `env:"CLAIMREADY_API_URL" envDefault:"http://localhost:8787"`
	Timeout time.Duration `env:"CLAIMREADY_API_TIMEOUT" envDefault:"15s"`
}

// ConfigFromEnv loads connection settings from environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse client env: %w", err)
	}
	return cfg, nil
}
