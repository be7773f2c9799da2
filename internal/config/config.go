package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Port             string        `envconfig:"AUCTION_PORT" default:"8080"`
	GinMode          string        `envconfig:"AUCTION_GIN_MODE" default:"release"`
	LogLevel         string        `envconfig:"AUCTION_LOG_LEVEL" default:"info"`
	SimulatedLatency time.Duration `envconfig:"AUCTION_SIMULATED_LATENCY" default:"300ms"`
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
