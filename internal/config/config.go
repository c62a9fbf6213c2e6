package config

import (
	"fmt"
	"time"

	"github.com/BarkinBalci/envconfig"

	"github.com/BarkinBalci/aml-portal-bridge/internal/transform"
)

// Config holds all environment-provided settings for a bridge run
type Config struct {
	SourceDBURL        string  `envconfig:"SOURCE_DB_URL" required:"true"`
	TargetDBPath       string  `envconfig:"TARGET_DB_PATH" default:"./data/aml_portal.db"`
	ServiceEnvironment string  `envconfig:"SERVICE_ENVIRONMENT" default:"development"`
	DefaultDOB         string  `envconfig:"BRIDGE_DEFAULT_DOB" default:"1990-01-01"`
	HighRiskScore      float64 `envconfig:"BRIDGE_HIGH_RISK_SCORE" default:"75.0"`
	StandardRiskScore  float64 `envconfig:"BRIDGE_STANDARD_RISK_SCORE" default:"35.0"`
	LoadBatchSize      int     `envconfig:"BRIDGE_LOAD_BATCH_SIZE" default:"500"`
}

// Load reads the configuration from the process environment
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

// TransformOptions translates the policy settings into transform options.
// The orchestrator never reads the process environment itself.
func (c *Config) TransformOptions() (transform.Options, error) {
	opts := transform.DefaultOptions()

	dob, err := time.Parse("2006-01-02", c.DefaultDOB)
	if err != nil {
		return opts, fmt.Errorf("invalid BRIDGE_DEFAULT_DOB %q: %w", c.DefaultDOB, err)
	}

	opts.DefaultDOB = dob.UTC()
	opts.HighRiskScore = c.HighRiskScore
	opts.StandardRiskScore = c.StandardRiskScore
	return opts, nil
}
