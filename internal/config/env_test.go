package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_FullConfig(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "super-secret")
	t.Setenv("APP_TOKEN_ISSUER", "where-is-it-test")
	t.Setenv("APP_TOKEN_DURATION", "2h")
	t.Setenv("APP_ENVIRONMENT", "production")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/whereisit")
	t.Setenv("SERVER_ADDRESS", "localhost:5000")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.NoError(t, err)

	assert.Equal(t, "super-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "where-is-it-test", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "postgres://localhost:5432/whereisit", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:5000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.NoError(t, err)

	assert.False(t, cfg.App.IsProduction())
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	assert.Error(t, err)
}

func TestIsProduction(t *testing.T) {
	assert.True(t, App{Environment: "production"}.IsProduction())
	assert.False(t, App{Environment: "development"}.IsProduction())
	assert.False(t, App{}.IsProduction())
}
