package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings for the server, populated from
// environment variables.
type Config struct {
	Addr         string        `env:"ADDR" envDefault:":8008"`
	DBPath       string        `env:"DB_PATH" envDefault:"kanban-board.db"`
	JWTSecret    string        `env:"JWT_SECRET" envDefault:"development-insecure-secret-change-me"`
	JWTIssuer    string        `env:"JWT_ISSUER" envDefault:"kanban-board-api"`
	JWTAudience  string        `env:"JWT_AUDIENCE" envDefault:"kanban-board-clients"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	UserCacheTTL time.Duration `env:"USER_CACHE_TTL" envDefault:"30s"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from the process environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	return cfg, nil
}
