package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "hunter22")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.AppPort)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 200, cfg.MaxRequestsPerMin)
	assert.Equal(t, "prescripto", cfg.DatabaseName)
	assert.Equal(t, "doctors", cfg.CloudinaryFolder)
	assert.Equal(t, "secret", cfg.JWTSecret)
	assert.Equal(t, "admin@example.com", cfg.AdminEmail)
	assert.Equal(t, "hunter22", cfg.AdminPassword)
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("MAX_REQUESTS_PER_MIN", "30")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.AppPort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 30, cfg.MaxRequestsPerMin)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "ADMIN_EMAIL")
	assert.Contains(t, err.Error(), "cloudinary")

	cfg = &Config{
		JWTSecret:           "s",
		AdminEmail:          "a@b.c",
		AdminPassword:       "p",
		CloudinaryCloudName: "cloud",
		CloudinaryAPIKey:    "key",
		CloudinaryAPISecret: "secret",
	}
	assert.NoError(t, cfg.Validate())
}
