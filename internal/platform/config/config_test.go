package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"STRATA_ADDR", "STORAGE_BACKEND", "GATEWAY_URL", "GATEWAY_API_KEY", "EDIT_MODE_PASSWORD", "EDIT_SESSION_STORE"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, DefaultEditPassword, cfg.EditMode.Password)
	assert.Equal(t, SessionStoreMemory, cfg.EditMode.SessionStore)
	assert.False(t, cfg.Gateway.Configured())
	assert.Equal(t, uint32(5), cfg.Gateway.BreakerFailures)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "PostgREST")
	t.Setenv("GATEWAY_URL", " https://demo.supabase.co ")
	t.Setenv("GATEWAY_API_KEY", "anon")
	t.Setenv("GATEWAY_BREAKER_COOLDOWN", "10s")
	t.Setenv("DATABASE_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("EDIT_COOKIE_SECURE", "true")

	cfg := FromEnv()
	assert.Equal(t, BackendPostgREST, cfg.Storage.Backend)
	assert.Equal(t, "https://demo.supabase.co", cfg.Gateway.URL)
	assert.True(t, cfg.Gateway.Configured())
	assert.Equal(t, 10*time.Second, cfg.Gateway.BreakerCooldown)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.EditMode.CookieSecure)
}
