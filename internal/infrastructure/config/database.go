package config

import (
	"fmt"
	"time"
)

// DatabaseConfig selects the save-file backend. SQLite is the default and
// stores the whole game in a single local file; Postgres is supported for
// shared deployments where the CLI and daemon run on separate hosts.
type DatabaseConfig struct {
	// "sqlite" (default) or "postgres"
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`

	// SQLite save file location, ":memory:" for a throwaway game
	Path string `mapstructure:"path"`

	// Full Postgres connection URL, overrides the individual fields below
	URL string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode" validate:"omitempty,oneof=disable require verify-ca verify-full"`

	Pool PoolConfig `mapstructure:"pool"`
}

// PoolConfig tunes the Postgres connection pool. Ignored for SQLite, which
// keeps a single connection to the save file.
type PoolConfig struct {
	MaxOpen     int           `mapstructure:"max_open" validate:"min=1"`
	MaxIdle     int           `mapstructure:"max_idle" validate:"min=1"`
	MaxLifetime time.Duration `mapstructure:"max_lifetime"`
}

// PostgresDSN returns the connection string, preferring URL when set.
func (c *DatabaseConfig) PostgresDSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// SQLitePath returns the save file path, falling back to an in-memory game.
func (c *DatabaseConfig) SQLitePath() string {
	if c.Path == "" {
		return ":memory:"
	}
	return c.Path
}
