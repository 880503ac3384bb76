package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "SOLANA_RPC_URL", "COMMITMENT", "REQUEST_TIMEOUT_SECONDS", "LOG_LEVEL", "LOG_FORMAT"} {
		// t.Setenv registers the restore; the variable must be absent, not
		// empty, for envconfig defaults to apply.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "https://api.devnet.solana.com", cfg.SolanaRPCURL)
	require.Equal(t, "confirmed", cfg.Commitment)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "plain", cfg.LogFormat)
	require.Equal(t, 90*time.Second, cfg.RequestTimeoutDuration())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SOLANA_RPC_URL", "http://localhost:8899")
	t.Setenv("COMMITMENT", "finalized")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "http://localhost:8899", cfg.SolanaRPCURL)
	require.Equal(t, "finalized", cfg.Commitment)
	require.Equal(t, 5*time.Second, cfg.RequestTimeoutDuration())
}
