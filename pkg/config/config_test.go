package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_ACCESS_EXPIRY", "")
	t.Setenv("ENRICH_CONCURRENCY", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 168*time.Hour, cfg.JWTAccessExpiry)
	assert.Equal(t, 1, cfg.EnrichConcurrency)
	assert.Equal(t, 30*time.Second, cfg.AITimeout)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_ACCESS_EXPIRY", "2h")
	t.Setenv("ENRICH_CONCURRENCY", "4")
	t.Setenv("AI_TIMEOUT", "not-a-duration")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, ,https://brainly.app")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWTAccessExpiry)
	assert.Equal(t, 4, cfg.EnrichConcurrency)
	assert.Equal(t, 30*time.Second, cfg.AITimeout, "invalid durations fall back to the default")
	assert.Equal(t, []string{"http://localhost:5173", "https://brainly.app"}, cfg.CORSOrigins)
}

func TestGetIntRejectsNonPositive(t *testing.T) {
	t.Setenv("ASK_RATE_PER_MINUTE", "0")
	assert.Equal(t, 10, getInt("ASK_RATE_PER_MINUTE", 10))

	t.Setenv("ASK_RATE_PER_MINUTE", "abc")
	assert.Equal(t, 10, getInt("ASK_RATE_PER_MINUTE", 10))
}
