// Package config centralizes the environment variables the service reads.
// Values come from defaults overlaid with the environment; malformed numeric
// values keep the default rather than failing startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variable names.
const (
	EnvAppEnv         = "APP_ENV"
	EnvHTTPPort       = "HTTP_PORT"
	EnvPGHost         = "PG_HOST"
	EnvPGPort         = "PG_PORT"
	EnvPGUser         = "PG_USER"
	EnvPGPassword     = "PG_PASSWORD"
	EnvPGDatabase     = "PG_DB"
	EnvPGSSLMode      = "PG_SSLMODE"
	EnvQueryTimeoutMS = "DB_QUERY_TIMEOUT_MS"
	EnvRateLimitRPS   = "RATE_LIMIT_RPS"
	EnvRateLimitBurst = "RATE_LIMIT_BURST"
)

type Config struct {
	AppEnv     string
	HTTPPort   int
	PGHost     string
	PGPort     int
	PGUser     string
	PGPassword string
	PGDatabase string
	PGSSLMode  string

	// QueryTimeout bounds every database operation, transaction included.
	QueryTimeout time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
}

// Default returns the configuration for a local Postgres with nothing set.
func Default() *Config {
	return &Config{
		AppEnv:         "development",
		HTTPPort:       8000,
		PGHost:         "localhost",
		PGPort:         5432,
		PGUser:         "postgres",
		PGPassword:     "postgres",
		PGDatabase:     "motorpool",
		PGSSLMode:      "disable",
		QueryTimeout:   5 * time.Second,
		RateLimitRPS:   10,
		RateLimitBurst: 20,
	}
}

// Load builds a Config from defaults overlaid with the environment.
func Load() *Config {
	cfg := Default()

	if v := os.Getenv(EnvAppEnv); v != "" {
		cfg.AppEnv = v
	}
	if v := os.Getenv(EnvHTTPPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.HTTPPort = port
		}
	}
	if v := os.Getenv(EnvPGHost); v != "" {
		cfg.PGHost = v
	}
	if v := os.Getenv(EnvPGPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.PGPort = port
		}
	}
	if v := os.Getenv(EnvPGUser); v != "" {
		cfg.PGUser = v
	}
	if v := os.Getenv(EnvPGPassword); v != "" {
		cfg.PGPassword = v
	}
	if v := os.Getenv(EnvPGDatabase); v != "" {
		cfg.PGDatabase = v
	}
	if v := os.Getenv(EnvPGSSLMode); v != "" {
		cfg.PGSSLMode = v
	}
	if v := os.Getenv(EnvQueryTimeoutMS); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.QueryTimeout = time.Duration(ms) * time.Millisecond
		}
	}
	if v := os.Getenv(EnvRateLimitRPS); v != "" {
		if rps, err := strconv.ParseFloat(v, 64); err == nil && rps > 0 {
			cfg.RateLimitRPS = rps
		}
	}
	if v := os.Getenv(EnvRateLimitBurst); v != "" {
		if burst, err := strconv.Atoi(v); err == nil && burst > 0 {
			cfg.RateLimitBurst = burst
		}
	}

	return cfg
}

// DSN renders the lib/pq connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PGHost, c.PGPort, c.PGUser, c.PGPassword, c.PGDatabase, c.PGSSLMode)
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
