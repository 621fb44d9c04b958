package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage backends.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Server captures process level configuration.
type Server struct {
	Addr            string        `env:"COVERLINE_ADDR" envDefault:":8080"`
	Environment     string        `env:"COVERLINE_ENV" envDefault:"local"`
	LogLevel        string        `env:"COVERLINE_LOG_LEVEL" envDefault:"info"`
	Storage         string        `env:"COVERLINE_STORAGE" envDefault:"memory"`
	RequestTimeout  time.Duration `env:"COVERLINE_REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"COVERLINE_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	TxTimeout       time.Duration `env:"COVERLINE_TX_TIMEOUT" envDefault:"5s"`

	// PermissiveTransitions disables the claim adjacency table and keeps only
	// the adjuster and settlement rules.
	PermissiveTransitions bool `env:"COVERLINE_PERMISSIVE_TRANSITIONS" envDefault:"false"`

	Database DatabaseConfig
	Redis    RedisConfig
}

// DatabaseConfig configures the Postgres pool.
type DatabaseConfig struct {
	URL             string        `env:"COVERLINE_DATABASE_URL"`
	MaxOpenConns    int           `env:"COVERLINE_DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"COVERLINE_DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"COVERLINE_DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	AutoMigrate     bool          `env:"COVERLINE_DB_AUTO_MIGRATE" envDefault:"false"`
}

// RedisConfig configures the optional claim cache. An empty URL disables it.
type RedisConfig struct {
	URL          string        `env:"COVERLINE_REDIS_URL"`
	PoolSize     int           `env:"COVERLINE_REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"COVERLINE_REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"COVERLINE_REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"COVERLINE_REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"COVERLINE_REDIS_WRITE_TIMEOUT" envDefault:"3s"`
	CacheTTL     time.Duration `env:"COVERLINE_CACHE_TTL" envDefault:"5m"`
}

// Load builds a Server config from environment variables so main stays lean.
func Load() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate checks cross-field rules env tags cannot express.
func (c Server) Validate() error {
	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.Database.URL == "" {
			return errors.New("COVERLINE_DATABASE_URL is required when COVERLINE_STORAGE=postgres")
		}
	default:
		return fmt.Errorf("unsupported storage %q", c.Storage)
	}
	if c.TxTimeout <= 0 {
		return errors.New("COVERLINE_TX_TIMEOUT must be positive")
	}
	return nil
}

// IsLocal reports whether the process runs in a developer environment.
func (c Server) IsLocal() bool {
	return c.Environment == "local"
}
