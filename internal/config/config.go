// Package config loads the application configuration from the environment.
// Everything that used to be ambient (signing secret, TTLs, addresses) is
// carried on an explicit Config value injected at construction time.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the server.
type Config struct {
	Addr           string `validate:"required"`
	DatabasePath   string `validate:"required"`
	SecretKey      string `validate:"required,min=16"`
	AccessTokenTTL time.Duration
	BcryptCost     int

	// RedisAddr selects the Redis denylist backend when set; the
	// in-memory backend is used otherwise.
	RedisAddr string

	// OTLPEndpoint enables the OTLP exporters when set.
	OTLPEndpoint string
}

// Load reads configuration from the environment, with an optional .env
// file in the working directory.
func Load() (*Config, error) {
	// Best effort; a missing .env file is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Addr:           envOr("ADDR", ":8080"),
		DatabasePath:   envOr("DATABASE_PATH", "./list_handler.db"),
		SecretKey:      os.Getenv("SECRET_KEY"),
		AccessTokenTTL: 30 * time.Minute,
		RedisAddr:      os.Getenv("REDIS_CONNSTRING"),
		OTLPEndpoint:   os.Getenv("OTLP_ENDPOINT"),
	}

	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES %q: %w", v, err)
		}
		cfg.AccessTokenTTL = time.Duration(minutes) * time.Minute
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("invalid configuration: access token TTL must be positive")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
