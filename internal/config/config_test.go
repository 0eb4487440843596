package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finverse-labs/cardinfo-service/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, "https://lookup.binlist.net", cfg.Lookup.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Lookup.ConnTimeout)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("CARDINFO_SERVER__PORT", "9090")
	t.Setenv("CARDINFO_LOOKUP__BASE_URL", "http://localhost:4010")
	t.Setenv("CARDINFO_LOOKUP__CONN_TIMEOUT", "2s")
	t.Setenv("CARDINFO_LOGGER__LEVEL", "debug")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "http://localhost:4010", cfg.Lookup.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Lookup.ConnTimeout)
	assert.Equal(t, "debug", cfg.Logger.Level)

	// untouched keys keep their defaults
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
}
