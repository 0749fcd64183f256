// Package config loads server settings from the environment and an optional
// .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP server
	Port            string
	MetricsPath     string
	ShutdownTimeout time.Duration

	// Ledger
	RecentLimit int

	// Auth; empty JWTSecret leaves every procedure open.
	JWTSecret            string
	TokenTTL             time.Duration
	Operator             string
	OperatorPasswordHash string
}

// Load reads .env (if present) and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8080"),
		MetricsPath:     getEnv("METRICS_PATH", "/metrics"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		RecentLimit: getEnvInt("LEDGER_RECENT_LIMIT", 10),

		JWTSecret:            getEnv("LEDGER_JWT_SECRET", ""),
		TokenTTL:             getEnvDuration("LEDGER_TOKEN_TTL", 24*time.Hour),
		Operator:             getEnv("LEDGER_OPERATOR", "admin"),
		OperatorPasswordHash: getEnv("LEDGER_OPERATOR_PASSWORD_HASH", ""),
	}
}

// AuthEnabled reports whether mutating procedures require a token.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if !strings.HasPrefix(c.MetricsPath, "/") {
		errors = append(errors, fmt.Sprintf("invalid metrics path '%s': must start with '/'", c.MetricsPath))
	}

	if c.ShutdownTimeout <= 0 {
		errors = append(errors, "shutdown timeout must be positive")
	}

	if c.RecentLimit <= 0 {
		errors = append(errors, fmt.Sprintf("invalid recent limit %d: must be positive", c.RecentLimit))
	}

	if c.AuthEnabled() {
		if len(c.JWTSecret) < 32 {
			errors = append(errors, "LEDGER_JWT_SECRET must be at least 32 characters")
		}
		if c.Operator == "" {
			errors = append(errors, "LEDGER_OPERATOR cannot be empty when auth is enabled")
		}
		if c.OperatorPasswordHash == "" {
			errors = append(errors, "LEDGER_OPERATOR_PASSWORD_HASH is required when auth is enabled")
		}
		if c.TokenTTL <= 0 {
			errors = append(errors, "token TTL must be positive")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
