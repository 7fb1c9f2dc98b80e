package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")

	assert.Equal(t, 1000, cfg.Packing.CacheSize)
	assert.Equal(t, 5*time.Minute, cfg.Packing.CacheTTL)
	assert.Equal(t, 8, cfg.Packing.LookAheadItems)
	assert.False(t, cfg.Packing.LegacySortOrder)

	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)

	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "boxpack_service", cfg.Database.DatabaseName)
	assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT", "10")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("PACKING_LOOKAHEAD_ITEMS", "4")
	t.Setenv("PACKING_LEGACY_SORT_ORDER", "true")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("API_KEYS", "alpha, beta ,")
	t.Setenv("CORS_ORIGINS", "https://shop.example.com")
	t.Setenv("MONGODB_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
	assert.Equal(t, 4, cfg.Packing.LookAheadItems)
	assert.True(t, cfg.Packing.LegacySortOrder)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, map[string]bool{"alpha": true, "beta": true}, cfg.Auth.APIKeys)
	assert.Contains(t, cfg.Server.CORSOrigins, "https://shop.example.com")
	assert.True(t, cfg.Database.Enabled)
}

func TestLoad_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("RATE_LIMIT", "not-a-number")
	t.Setenv("RATE_WINDOW", "soon")
	t.Setenv("AUTH_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.False(t, cfg.Auth.Enabled)
}
