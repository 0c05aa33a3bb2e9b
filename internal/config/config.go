// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
	"8BYkEfBA6O6donzWlSihBXox7C0sKR6b",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBDriver   string `env:"BLOG_DB_DRIVER" envDefault:"sqlite"`
	DBDSN      string `env:"BLOG_DB_DSN" envDefault:"./data/blog.db"`
	SecretKey  string `env:"BLOG_SECRET_KEY,required"`
	ServerHost string `env:"BLOG_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"BLOG_SERVER_PORT" envDefault:"5000"`
	Env        string `env:"BLOG_ENV" envDefault:"development"`
	LogLevel   string `env:"BLOG_LOG_LEVEL" envDefault:"info"`
	SiteName   string `env:"BLOG_SITE_NAME" envDefault:"My Blog"`

	// Delete over GET is kept for compatibility unless StrictDelete is set.
	StrictDelete bool `env:"BLOG_STRICT_DELETE" envDefault:"false"`

	// Per-IP limits on form submissions
	FormRateLimit float64 `env:"BLOG_FORM_RATE_LIMIT" envDefault:"2"`
	FormRateBurst int     `env:"BLOG_FORM_RATE_BURST" envDefault:"10"`

	RequestTimeout time.Duration `env:"BLOG_REQUEST_TIMEOUT" envDefault:"30s"`

	// Seeding configuration
	DoSeed bool `env:"BLOG_DO_SEED" envDefault:"false"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// MinSecretKeyLength is the minimum required length for the secret key.
const MinSecretKeyLength = 32

// Load parses environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Warnings lists non-fatal problems with the configuration. The caller logs
// them once its logger is installed.
func (c Config) Warnings() []string {
	var warnings []string
	if !hasMinimumEntropy(c.SecretKey) {
		warnings = append(warnings, "BLOG_SECRET_KEY has low character diversity; "+
			"consider generating a random secret with: openssl rand -base64 32")
	}
	return warnings
}

// Validate checks values that env tags cannot express.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite, DriverMySQL, DriverPostgres:
	default:
		return fmt.Errorf("BLOG_DB_DRIVER must be one of %q, %q or %q, got %q",
			DriverSQLite, DriverMySQL, DriverPostgres, c.DBDriver)
	}

	if c.DBDSN == "" {
		return fmt.Errorf("BLOG_DB_DSN must not be empty")
	}

	if len(c.SecretKey) < MinSecretKeyLength {
		return fmt.Errorf("BLOG_SECRET_KEY must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSecretKeyLength, len(c.SecretKey))
	}

	for _, weak := range knownWeakSecrets {
		if c.SecretKey == weak {
			return fmt.Errorf("BLOG_SECRET_KEY is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if c.FormRateLimit <= 0 || c.FormRateBurst <= 0 {
		return fmt.Errorf("BLOG_FORM_RATE_LIMIT and BLOG_FORM_RATE_BURST must be positive")
	}

	return nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
