package main

import (
	"fmt"

	"github.com/vtrgo/lookahead/config"
	"github.com/vtrgo/lookahead/telemetry"
)

// loadConfig loads the CLI's configuration from --config, falling back to
// built-in defaults if no path was given or the file does not exist.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// newLogger builds the telemetry.Logger the build pipeline and CLI report
// progress through, honoring --verbose and the configured format.
func newLogger(cfg *config.Config) *telemetry.Logger {
	level := telemetry.Level(cfg.Logging.Level)
	if verbose {
		level = telemetry.LevelDebug
	}

	return telemetry.NewLogger(telemetry.LoggerConfig{
		Level:  level,
		Format: telemetry.Format(cfg.Logging.Format),
	})
}
