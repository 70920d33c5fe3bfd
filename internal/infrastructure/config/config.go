package config

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	LoanAPI LoanAPIConfig
	Session SessionConfig
	Redis   RedisConfig
}

type LoanAPIConfig struct {
	BaseURL string        `env:"LOAN_API_URL,     default=http://localhost:8000/api"`
	Timeout time.Duration `env:"LOAN_API_TIMEOUT, default=30s"`
}

type SessionConfig struct {
	Secret      string        `env:"SESSION_SECRET"`
	TTL         time.Duration `env:"SESSION_TTL,          default=24h"`
	RememberTTL time.Duration `env:"SESSION_REMEMBER_TTL, default=720h"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(log zerolog.Logger) *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		panic(err)
	}
	return &cfg
}
