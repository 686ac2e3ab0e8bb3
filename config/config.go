// Package config loads UI-shell configuration from environment variables
// using the github.com/caarlos0/env library, with optional .env file support
// for development.
package config

import (
	"fmt"
	"strings"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// StoreBackend selects where the credential slot lives.
type StoreBackend string

const (
	// StoreFile keeps the credential in a single file (the default).
	StoreFile StoreBackend = "file"
	// StoreRedis keeps the credential in redis, for shared terminal fleets.
	StoreRedis StoreBackend = "redis"
	// StoreMemory keeps the credential in memory only; the session is not
	// restored after a restart.
	StoreMemory StoreBackend = "memory"
)

// UnmarshalText implements encoding.TextUnmarshaler for StoreBackend.
func (s *StoreBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "file", "redis", "memory":
		*s = StoreBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid store backend: %q (valid options: file, redis, memory)", v)
	}
}

// BackendConfig points at the hospital REST backend.
type BackendConfig struct {
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:5000/api"`
	Timeout time.Duration `env:"TIMEOUT"  envDefault:"15s"`
}

// RedisConfig configures the redis credential store (used when STORE=redis).
type RedisConfig struct {
	Addr      string        `env:"ADDR"       envDefault:"localhost:6379"`
	Password  string        `env:"PASSWORD"`
	DB        int           `env:"DB"         envDefault:"0"`
	KeyPrefix string        `env:"KEY_PREFIX" envDefault:"authkit"`
	TTL       time.Duration `env:"TTL"`
}

// SessionConfig configures credential persistence.
type SessionConfig struct {
	Store          StoreBackend `env:"STORE"           envDefault:"file"`
	CredentialPath string       `env:"CREDENTIAL_PATH" envDefault:".hms/credential"`
}

// AppConfig is the full UI-shell configuration.
type AppConfig struct {
	Backend BackendConfig `envPrefix:"BACKEND_"`
	Redis   RedisConfig   `envPrefix:"REDIS_"`
	Session SessionConfig `envPrefix:"SESSION_"`

	// MetricsEnabled turns on session counters.
	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"false"`
}

// Sanitize applies guardrails to values loaded from the environment.
func (c *AppConfig) Sanitize() {
	if c.Backend.Timeout <= 0 {
		c.Backend.Timeout = 15 * time.Second
	}
	if c.Session.CredentialPath == "" {
		c.Session.CredentialPath = ".hms/credential"
	}
	if c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = "authkit"
	}
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged in first when present; a missing file is not an error.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.Sanitize()
	return &cfg, nil
}
