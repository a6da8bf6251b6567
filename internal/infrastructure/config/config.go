package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend BackendConfig
	Session SessionConfig
	Redis   RedisConfig
}

type BackendConfig struct {
	// BaseURL is the root of the ERP REST API.
	BaseURL string        `env:"BACKEND_BASE_URL, default=http://localhost:5000/api"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT,  default=30s"`
}

type SessionConfig struct {
	// CookieName is the fixed key the bearer credential is stored under.
	CookieName   string        `env:"SESSION_COOKIE_NAME,   default=alc_token"`
	CookieSecure bool          `env:"SESSION_COOKIE_SECURE, default=false"`
	CacheTTL     time.Duration `env:"SESSION_CACHE_TTL,     default=5m"`
}

type RedisConfig struct {
	// Addr is optional; empty selects the in-process profile cache.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from the environment, with a .env file applied
// first when one exists.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// IsDevelopment reports whether the console runs outside production.
func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}
