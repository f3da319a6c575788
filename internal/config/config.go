package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Server
	Host        string `envconfig:"HOST" default:"0.0.0.0"`
	Port        int    `envconfig:"PORT" default:"5000"`
	Environment string `envconfig:"ENV" default:"development"`

	// Database
	DatabaseURL  string        `envconfig:"DATABASE_URL" required:"true"`
	StoreTimeout time.Duration `envconfig:"STORE_TIMEOUT" default:"5s"`

	// Matching
	MatchThreshold float64 `envconfig:"MATCH_THRESHOLD" default:"0.6"`

	// Encoder (face encoding oracle)
	EncoderProvider string        `envconfig:"ENCODER_PROVIDER" default:"facerec"`
	EncoderURL      string        `envconfig:"ENCODER_URL" default:"http://localhost:8100"`
	EncoderTimeout  time.Duration `envconfig:"ENCODER_TIMEOUT" default:"30s"`

	// Image fetching
	StorageDir   string        `envconfig:"STORAGE_DIR" default:"storage"`
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"30s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.MatchThreshold <= 0 || cfg.MatchThreshold >= 1 {
		return nil, fmt.Errorf("load config: MATCH_THRESHOLD must be in (0, 1), got %v", cfg.MatchThreshold)
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
