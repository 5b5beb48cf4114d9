// Package config loads CLI configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the runtime knobs of the chatlens CLI. Everything is optional:
// the core library itself takes no configuration.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"local"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// DefaultSourceApp is used when the --app flag is omitted.
	DefaultSourceApp string `env:"DEFAULT_SOURCE_APP" envDefault:"whatsapp"`
}

// Load reads the optional .env file and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env file is optional, error is expected when not present

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}

	return cfg, nil
}
