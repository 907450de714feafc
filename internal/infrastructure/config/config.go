package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// minSecretLen is the minimum signing key length in bytes for HS256.
const minSecretLen = 32

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT   JWTConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type JWTConfig struct {
	Secret     string `env:"JWT_SECRET"`
	Issuer     string `env:"JWT_ISSUER,   default=expense-splitter-api"`
	Audience   string `env:"JWT_AUDIENCE, default=expense-splitter-clients"`
	TTLMinutes int    `env:"JWT_TTL_MINUTES, default=120"`
}

// TTL returns the token lifetime as a duration.
func (j JWTConfig) TTL() time.Duration {
	return time.Duration(j.TTLMinutes) * time.Minute
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=expense_splitter"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`

	LoginAttempts    int64         `env:"LOGIN_RATE_LIMIT,  default=10"`
	LoginAttemptsTTL time.Duration `env:"LOGIN_RATE_WINDOW, default=1m"`
}

// Load reads configuration from environment variables using go-envconfig and
// validates it. A missing or short signing key is fatal here, before any
// listener starts, never discovered per-request.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate enforces the invariants the process cannot run without.
func (c *Config) Validate() error {
	if len(c.JWT.Secret) < minSecretLen {
		return fmt.Errorf("config: JWT_SECRET must be at least %d bytes, got %d", minSecretLen, len(c.JWT.Secret))
	}
	if c.JWT.TTLMinutes <= 0 {
		return fmt.Errorf("config: JWT_TTL_MINUTES must be positive")
	}
	return nil
}
