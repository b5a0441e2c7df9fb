// Package config loads server settings from an optional YAML file overlaid
// by environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/mmynk/dormshare/internal/calculator"
)

// Config is the server configuration.
type Config struct {
	// Environment is "development" or "production". Production logs JSON.
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" env-default:"info" yaml:"logLevel"`

	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr              string        `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSOrigin is sent as Access-Control-Allow-Origin.
		CORSOrigin string `env:"HTTP_CORS_ORIGIN" env-default:"*" yaml:"corsOrigin"`
	} `yaml:"http"`

	Database struct {
		// Path is the SQLite database file. Parent directories are created.
		Path        string        `env:"DB_PATH" env-default:"./data/dormshare.db" yaml:"path"`
		BusyTimeout time.Duration `env:"DB_BUSY_TIMEOUT" env-default:"5s" yaml:"busyTimeout"`
	} `yaml:"database"`

	Auth struct {
		// JWTSecret signs session tokens. Required in production.
		JWTSecret     string        `env:"JWT_SECRET" yaml:"jwtSecret"`
		TokenDuration time.Duration `env:"JWT_TOKEN_DURATION" env-default:"24h" yaml:"tokenDuration"`
		// BcryptCost is the password hashing cost.
		BcryptCost int `env:"AUTH_BCRYPT_COST" env-default:"10" yaml:"bcryptCost"`
	} `yaml:"auth"`

	Ledger struct {
		// RemainderPolicy is payer, first or none.
		RemainderPolicy string `env:"LEDGER_REMAINDER_POLICY" env-default:"payer" yaml:"remainderPolicy"`
	} `yaml:"ledger"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"`
}

// devSecret is only accepted outside production.
const devSecret = "dormshare-dev-secret-change-me"

// Load reads configPath when it exists, then applies environment variables.
// An empty or missing path reads the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	var err error
	if configPath != "" && fileExists(configPath) {
		err = cleanenv.ReadConfig(configPath, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction reports whether Environment is "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// RemainderPolicy returns the parsed ledger remainder policy.
func (c *Config) RemainderPolicy() calculator.RemainderPolicy {
	p, _ := calculator.ParseRemainderPolicy(c.Ledger.RemainderPolicy)
	return p
}

func (c *Config) validate() error {
	if _, err := calculator.ParseRemainderPolicy(c.Ledger.RemainderPolicy); err != nil {
		return fmt.Errorf("invalid ledger config: %w", err)
	}
	if c.Auth.JWTSecret == "" {
		if c.IsProduction() {
			return errors.New("JWT_SECRET is required in production")
		}
		c.Auth.JWTSecret = devSecret
	}
	if c.Auth.TokenDuration <= 0 {
		return fmt.Errorf("token duration must be positive, got %s", c.Auth.TokenDuration)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
