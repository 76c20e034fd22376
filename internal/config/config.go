// Package config loads and validates service configuration from the
// environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	// HTTP listen address, e.g. ":8000"
	Addr string `env:"ADDR" envDefault:":8000"`

	// PostgreSQL connection URL
	DatabaseURL string `env:"DATABASE_URL"`

	// Gemini API key for styling chat and image classification
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	// Directory item photos are stored in and served from
	UploadsDir string `env:"UPLOADS_DIR" envDefault:"uploads"`

	// City used for weather lookups when a request names none
	DefaultCity string `env:"DEFAULT_CITY" envDefault:"Chennai"`

	// zerolog level name: debug, info, warn, error
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Origins allowed by the CORS middleware; empty allows any
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	JWT      JWTConfig
	Password PasswordConfig
}

// Load reads .env (if present) and parses environment variables into Config.
func Load() (*Config, error) {
	// Load .env if available; ignore error if file does not exist
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Password.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidateServe checks the settings the HTTP server cannot run without.
// One-shot CLI commands validate only what they use.
func (c *Config) ValidateServe() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required but not set")
	}
	return c.JWT.normalize()
}
