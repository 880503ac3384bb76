package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the gateway.
type Config struct {
	Port           string `envconfig:"PORT" default:"8080"`
	SolanaRPCURL   string `envconfig:"SOLANA_RPC_URL" default:"https://api.devnet.solana.com"`
	Commitment     string `envconfig:"COMMITMENT" default:"confirmed"`
	RequestTimeout int    `envconfig:"REQUEST_TIMEOUT_SECONDS" default:"90"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat      string `envconfig:"LOG_FORMAT" default:"plain"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return cfg, nil
}

// RequestTimeoutDuration returns the per-request timeout applied to every
// handler, including transaction confirmation waits.
func (c *Config) RequestTimeoutDuration() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}
