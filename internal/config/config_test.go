package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "release", cfg.GinMode)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 300*time.Millisecond, cfg.SimulatedLatency)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AUCTION_PORT", "9090")
	t.Setenv("AUCTION_GIN_MODE", "debug")
	t.Setenv("AUCTION_LOG_LEVEL", "warn")
	t.Setenv("AUCTION_SIMULATED_LATENCY", "0s")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.GinMode)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, time.Duration(0), cfg.SimulatedLatency)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("AUCTION_SIMULATED_LATENCY", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
}
