// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds the boardsim runtime settings.
type Config struct {
	Port         int    `env:"BOARDSIM_PORT" envDefault:"8080"`
	DBPath       string `env:"BOARDSIM_DB" envDefault:"data/settlers.db"`
	AdminKey     string `env:"BOARDSIM_ADMIN_KEY"`
	RandomOrgKey string `env:"RANDOM_ORG_KEY"`
	LogLevel     string `env:"BOARDSIM_LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps the configured log level to a slog level, defaulting
// to info for unknown values.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
