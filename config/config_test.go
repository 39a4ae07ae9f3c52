package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.Server.Port, "Default server port should be 8080")
	assert.NotEmpty(t, cfg.Database.URL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("OTP_SERVER_PORT", "9090")
	t.Setenv("OTP_DATABASE_URL", "postgres://user:pass@db:5432/training?sslmode=disable")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port, "Server port should be loaded from the environment")
	assert.Equal(t, "postgres://user:pass@db:5432/training?sslmode=disable", cfg.Database.URL)
}
