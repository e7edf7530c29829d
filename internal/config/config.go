package config

import (
	"fmt"
	"strings"
	"time"

	"ctchen222/Movie-Catalog/internal/validator"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config holds every process-wide setting. It is built once at startup and
// passed by reference; nothing mutates it afterwards, so concurrent reads
// need no synchronization.
type Config struct {
	// SecretKey signs and verifies access tokens. The process refuses to
	// start without one.
	SecretKey string `koanf:"secret_key" validate:"required"`
	// Algorithm is the token signing algorithm identifier. HS256 is the
	// single supported value.
	Algorithm string `koanf:"algorithm" validate:"required,oneof=HS256"`
	// AccessTokenExpireMinutes is the default token lifetime.
	AccessTokenExpireMinutes int `koanf:"access_token_expire_minutes" validate:"required,gt=0"`

	// DatabasePath is the SQLite database file, or ":memory:".
	DatabasePath string `koanf:"database_path" validate:"required"`

	ServerAddr string `koanf:"server_addr" validate:"required"`

	TelemetryEnabled bool   `koanf:"telemetry_enabled"`
	OTLPEndpoint     string `koanf:"otlp_endpoint"`
}

// TokenLifetime returns the default access-token lifetime as a duration.
func (c *Config) TokenLifetime() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

func defaultConfig() *Config {
	return &Config{
		Algorithm:                "HS256",
		AccessTokenExpireMinutes: 15,
		ServerAddr:               ":8080",
		TelemetryEnabled:         false,
		OTLPEndpoint:             "otel-collector:4317",
	}
}

// Load builds the Config from defaults overlaid with environment variables
// (SECRET_KEY, ALGORITHM, ACCESS_TOKEN_EXPIRE_MINUTES, DATABASE_PATH,
// SERVER_ADDR, TELEMETRY_ENABLED, OTLP_ENDPOINT) and validates it. A missing
// secret key or database path is a startup error, not a per-request one.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load config defaults: %w", err)
	}

	// SECRET_KEY -> secret_key
	envProvider := env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.GetValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
