package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	logx "petro-catalog-api/pkg/logger"
)

// RedisConfig is read from REDIS_URL, REDIS_DB and REDIS_CACHE_TTL.
type RedisConfig struct {
	URL string `split_words:"true" default:"redis://localhost:6379"`
	DB  int    `split_words:"true" default:"0"`
	// CacheTTL doubles as the refetch interval: cached responses are served
	// until it elapses.
	CacheTTL time.Duration `split_words:"true" default:"5m"`
}

// RateLimitConfig is read from RATE_LIMIT_PER_SECOND, RATE_LIMIT_BURST and
// RATE_LIMIT_IDLE_TTL.
type RateLimitConfig struct {
	PerSecond float64       `split_words:"true" default:"10"`
	Burst     int           `split_words:"true" default:"20"`
	IdleTTL   time.Duration `split_words:"true" default:"10m"`
}

type Config struct {
	Port        string `envconfig:"PORT" default:"8085"`
	Environment string `envconfig:"APP_ENV" default:"development"`

	// DatabaseURL is a Postgres DSN. When empty the in-memory store is used,
	// seeded from SeedFile if set.
	DatabaseURL string `envconfig:"DATABASE_URL"`
	SeedFile    string `envconfig:"SEED_FILE"`

	Redis     RedisConfig     `envconfig:"REDIS"`
	RateLimit RateLimitConfig `envconfig:"RATE_LIMIT"`
}

func (c Config) Env() logx.Environment {
	return logx.ParseEnvironment(c.Environment)
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		logx.Debug().Err(err).Msg("no .env file loaded")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
