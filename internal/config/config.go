// Package config loads server settings from SIM_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr           string        `env:"SIM_HTTP_ADDR" envDefault:"127.0.0.1:8077"`
	DBPath             string        `env:"SIM_DB_PATH" envDefault:"lotus-sim.db"`
	LogLevel           string        `env:"SIM_LOG_LEVEL" envDefault:"info"`
	LogFormat          string        `env:"SIM_LOG_FORMAT" envDefault:"console"`
	InfiniteCredits    bool          `env:"SIM_INFINITE_CREDITS" envDefault:"false"`
	RequestTimeout     time.Duration `env:"SIM_REQUEST_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout    time.Duration `env:"SIM_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	NotifyWriteTimeout time.Duration `env:"SIM_NOTIFY_WRITE_TIMEOUT" envDefault:"5s"`
}

// Load reads the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads settings from environ instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	if c.HTTPAddr == "" {
		return fmt.Errorf("config: SIM_HTTP_ADDR is empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("config: SIM_DB_PATH is empty")
	}
	for name, d := range map[string]time.Duration{
		"SIM_REQUEST_TIMEOUT":      c.RequestTimeout,
		"SIM_SHUTDOWN_TIMEOUT":     c.ShutdownTimeout,
		"SIM_NOTIFY_WRITE_TIMEOUT": c.NotifyWriteTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("config: %s must be positive, got %s", name, d)
		}
	}
	return nil
}
