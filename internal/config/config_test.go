package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_MAX_CONNS", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRY", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg := Load()

	assert.Equal(t, ":3000", cfg.Address)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, http://b.example ,")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/brainsimp")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY", "1h30m")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "postgres://u:p@db:5432/brainsimp", cfg.DatabaseURL)
	assert.Equal(t, int32(25), cfg.DBMaxConns)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 90*time.Minute, cfg.JWTExpiry)
}

func TestLoadIgnoresInvalidOverrides(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "zero")
	t.Setenv("JWT_EXPIRY", "-5m")

	cfg := Load()

	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
}
