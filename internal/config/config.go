package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	minSessionSecretLength = 32
)

// Config holds all configuration for the application
type Config struct {
	Env             string        `env:"APP_ENV" env-default:"local"`
	LogLevel        string        `env:"LOG_LEVEL" env-default:"info"`
	LogFormat       string        `env:"LOG_FORMAT" env-default:"text"`
	Port            string        `env:"PORT" env-default:"8080"`
	PrometheusPort  string        `env:"PROMETHEUS_PORT" env-default:"9090"`
	DatabaseDriver  string        `env:"DATABASE_DRIVER" env-default:"postgres"`
	DatabaseURL     string        `env:"DATABASE_URL" env-required:"true"`
	SessionSecret   string        `env:"SESSION_SECRET" env-required:"true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values cleanenv cannot express with tags
func (c *Config) Validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown APP_ENV %q", c.Env)
	}

	switch c.DatabaseDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}

	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if len(c.SessionSecret) < minSessionSecretLength {
		return fmt.Errorf("SESSION_SECRET must be at least %d bytes", minSessionSecretLength)
	}
	return nil
}

// IsLocal returns true when running on a developer machine
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal
}
