// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Config is the server configuration.
type Config struct {
	// HTTP server
	Port int `env:"PORT" envDefault:"8080"`

	// Storage
	Backend      string `env:"LEDGER_BACKEND" envDefault:"sqlite"`
	DBPath       string `env:"DB_PATH"        envDefault:"./data/ledger.db"`
	DocumentPath string `env:"DOCUMENT_PATH"  envDefault:"./data/ledger.json"`

	// Auth. Disabled when JWTSecret is empty.
	JWTSecret         string        `env:"JWT_SECRET"`
	TokenTTL          time.Duration `env:"TOKEN_TTL"           envDefault:"24h"`
	OwnerName         string        `env:"OWNER_NAME"          envDefault:"owner"`
	OwnerPasswordHash string        `env:"OWNER_PASSWORD_HASH"`

	// Change events. Disabled when AMQPURL is empty.
	AMQPURL      string `env:"AMQP_URL"`
	AMQPExchange string `env:"AMQP_EXCHANGE" envDefault:"jobledger"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads a .env file if one exists, then parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// AuthEnabled reports whether RPCs require a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the configuration and returns every problem found.
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}

	switch c.Backend {
	case BackendSQLite:
		if c.DBPath == "" {
			problems = append(problems, "DB_PATH cannot be empty when using the sqlite backend")
		}
	case BackendFile:
		if c.DocumentPath == "" {
			problems = append(problems, "DOCUMENT_PATH cannot be empty when using the file backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid backend '%s': must be one of [%s %s]", c.Backend, BackendSQLite, BackendFile))
	}

	if c.AuthEnabled() {
		if len(c.JWTSecret) < 32 {
			problems = append(problems, "JWT_SECRET must be at least 32 bytes")
		}
		if c.OwnerName == "" {
			problems = append(problems, "OWNER_NAME cannot be empty when auth is enabled")
		}
		if c.OwnerPasswordHash == "" {
			problems = append(problems, "OWNER_PASSWORD_HASH is required when auth is enabled")
		}
		if c.TokenTTL <= 0 {
			problems = append(problems, fmt.Sprintf("invalid TOKEN_TTL %s: must be positive", c.TokenTTL))
		}
	}

	if c.AMQPURL != "" {
		if u, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if u.Scheme != "amqp" && u.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", u.Scheme))
		}
		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
