package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func baseEnv() map[string]string {
	return map[string]string{
		"APP_NAME":  "tradeaskill",
		"APP_ENV":   "development",
		"HTTP_PORT": "8080",
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(envFrom(baseEnv()))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/skills", cfg.Upstream.SkillsEndpoint)
	assert.Equal(t, "http://localhost:3000/users", cfg.Upstream.UsersEndpoint)
	assert.Equal(t, 5*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, FallbackStatic, cfg.Upstream.SkillsFallback)
	assert.False(t, cfg.Upstream.SignupDuplicateCheck)
	assert.Equal(t, StoreMemory, cfg.Store.Backend)
	assert.Equal(t, "tas_session", cfg.Session.CookieName)
	assert.NotEmpty(t, cfg.Session.Secret)
	assert.Equal(t, 10000, cfg.Session.ProfileCacheSize)
	assert.Equal(t, 30*time.Minute, cfg.Session.ProfileCacheTTL)
}

func TestLoad_ProfileCacheBounds(t *testing.T) {
	env := baseEnv()
	env["PROFILE_CACHE_SIZE"] = "50"
	env["PROFILE_CACHE_TTL"] = "2h"
	env["SESSION_TTL"] = "1h"
	cfg, err := load(envFrom(env))
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Session.ProfileCacheSize)
	assert.Equal(t, time.Hour, cfg.Session.ProfileCacheTTL)

	env["PROFILE_CACHE_SIZE"] = "0"
	_, err = load(envFrom(env))
	require.ErrorIs(t, err, errInvalidEnv)
	assert.Contains(t, err.Error(), "PROFILE_CACHE_SIZE")
}

func TestLoad_MissingRequired(t *testing.T) {
	_, err := load(envFrom(map[string]string{"APP_ENV": "production"}))
	require.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "APP_NAME")
	assert.Contains(t, err.Error(), "HTTP_PORT")
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestLoad_InvalidValues(t *testing.T) {
	env := baseEnv()
	env["SKILLS_FALLBACK"] = "retry"
	env["UPSTREAM_TIMEOUT"] = "soon"
	env["SIGNUP_DUPLICATE_CHECK"] = "maybe"

	_, err := load(envFrom(env))
	require.ErrorIs(t, err, errInvalidEnv)
	assert.Contains(t, err.Error(), "SKILLS_FALLBACK")
	assert.Contains(t, err.Error(), "UPSTREAM_TIMEOUT")
	assert.Contains(t, err.Error(), "SIGNUP_DUPLICATE_CHECK")
}

func TestLoad_PostgresNeedsDatabase(t *testing.T) {
	env := baseEnv()
	env["STORE_BACKEND"] = "Postgres"
	_, err := load(envFrom(env))
	require.ErrorIs(t, err, errMissingRequiredEnv)

	env["DB_NAME"] = "tradeaskill"
	env["DB_USER"] = "app"
	cfg, err := load(envFrom(env))
	require.NoError(t, err)
	assert.Equal(t, StorePostgres, cfg.Store.Backend)
}

func TestLoad_ErrorPolicy(t *testing.T) {
	env := baseEnv()
	env["SKILLS_FALLBACK"] = "ERROR"
	env["SIGNUP_DUPLICATE_CHECK"] = "true"
	cfg, err := load(envFrom(env))
	require.NoError(t, err)
	assert.Equal(t, FallbackError, cfg.Upstream.SkillsFallback)
	assert.True(t, cfg.Upstream.SignupDuplicateCheck)
}
