package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/factoquest/factoquest-go/internal/infrastructure/config"
)

func TestPostgresDSN_URLTakesPrecedence(t *testing.T) {
	cfg := &config.DatabaseConfig{
		URL:  "postgresql://player@db.example/factoquest",
		Host: "ignored",
	}

	assert.Equal(t, "postgresql://player@db.example/factoquest", cfg.PostgresDSN())
}

func TestPostgresDSN_BuiltFromFields(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "factoquest",
		Password: "secret",
		Name:     "factoquest",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=factoquest password=secret dbname=factoquest sslmode=disable",
		cfg.PostgresDSN())
}

func TestSQLitePath_DefaultsToMemory(t *testing.T) {
	assert.Equal(t, ":memory:", (&config.DatabaseConfig{}).SQLitePath())
	assert.Equal(t, "save.db", (&config.DatabaseConfig{Path: "save.db"}).SQLitePath())
}
