package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_NAME", "questboard_test")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "questboard_test", cfg.DBName)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, "user_id", cfg.SessionCookie)
	assert.False(t, cfg.IsProduction())
}

func TestGetEnvIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("REDIS_DB", "three")
	assert.Equal(t, 0, getEnvInt("REDIS_DB", 0))

	t.Setenv("REDIS_DB", "3")
	assert.Equal(t, 3, getEnvInt("REDIS_DB", 0))
}

func TestGetEnvDurationFallsBackOnGarbage(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	assert.Equal(t, time.Hour, getEnvDuration("SESSION_TTL", time.Hour))
}
