package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("ENV", "development")

		cfg := Load()

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "http://localhost:8080", cfg.RemoteAPI.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.RemoteAPI.Timeout)
		assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
		assert.Equal(t, "session_id", cfg.Session.CookieName)
		assert.False(t, cfg.Session.CookieSecure)
		assert.True(t, cfg.RateLimit.Enabled)
		assert.Equal(t, 5, cfg.RateLimit.MaxAttempts)
		assert.Equal(t, time.Minute, cfg.RateLimit.Window)
		assert.Equal(t, DataSourceRemote, cfg.DataSource)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("ENV", "production")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("REMOTE_API_URL", "https://api.example.com/")
		t.Setenv("REMOTE_API_TIMEOUT", "3s")
		t.Setenv("SESSION_TTL", "2h")
		t.Setenv("LOGIN_RATE_LIMIT_MAX_ATTEMPTS", "10")
		t.Setenv("DATA_SOURCE", "Fixture")

		cfg := Load()

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "https://api.example.com", cfg.RemoteAPI.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.RemoteAPI.Timeout)
		assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
		assert.True(t, cfg.Session.CookieSecure)
		assert.Equal(t, 10, cfg.RateLimit.MaxAttempts)
		assert.Equal(t, DataSourceFixture, cfg.DataSource)
	})

	t.Run("malformed values fall back to defaults", func(t *testing.T) {
		t.Setenv("ENV", "test")
		t.Setenv("SERVER_PORT", "eighty")
		t.Setenv("SESSION_TTL", "forever")
		t.Setenv("SESSION_COOKIE_SECURE", "maybe")

		cfg := Load()

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
		assert.False(t, cfg.Session.CookieSecure)
		assert.False(t, cfg.RateLimit.Enabled)
	})
}
