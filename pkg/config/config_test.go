package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "GIN_MODE", "DATABASE_URL", "DATA_PATH", "JWT_SECRET",
		"API_MASTER_SECRET", "ADMIN_USERNAME", "ADMIN_PASSWORD",
		"LEADER_EXPERIENCE_LEVEL", "ROSTER_FILE", "SEED_DEMO_DATA", "LOG_LEVEL",
	} {
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "api_keys.db", cfg.DataPath)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, 3, cfg.LeaderLevel)
	assert.False(t, cfg.SeedDemo)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LEADER_EXPERIENCE_LEVEL", "2")
	t.Setenv("SEED_DEMO_DATA", "true")
	t.Setenv("ROSTER_FILE", "roster.yml")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2, cfg.LeaderLevel)
	assert.True(t, cfg.SeedDemo)
	assert.Equal(t, "roster.yml", cfg.RosterFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}
