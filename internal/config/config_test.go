package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmonteiro/carpool-ledger/internal/config"
)

// TestLoad_defaults verifies that every variable falls back to its default
// when nothing is set.
func TestLoad_defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_DIR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("MAX_BODY_BYTES", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "./data", cfg.DataDir)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.EqualValues(t, 1048576, cfg.MaxBodyBytes)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_DIR", "/var/lib/carpool")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("MAX_BODY_BYTES", "2048")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "/var/lib/carpool", cfg.DataDir)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.EqualValues(t, 2048, cfg.MaxBodyBytes)
}

// TestLoad_badMaxBodyBytes verifies that a non-numeric or non-positive
// MAX_BODY_BYTES is rejected with an error naming the variable.
func TestLoad_badMaxBodyBytes(t *testing.T) {
	for _, bad := range []string{"not-a-number", "0", "-1"} {
		t.Setenv("MAX_BODY_BYTES", bad)

		_, err := config.Load()

		require.Error(t, err)
		require.ErrorContains(t, err, "MAX_BODY_BYTES")
	}
}
