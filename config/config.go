package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vtrgo/lookahead/costmodel"
)

// Config is the top-level build configuration for a lookahead-map run.
type Config struct {
	Profiling   ProfilingConfig   `yaml:"profiling"`
	Persistence PersistenceConfig `yaml:"persistence"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// ProfilingConfig mirrors profiler.Options: the diagonal-walk reference
// point and stop-rule bounds, plus which reduction rule SetCostMap uses.
type ProfilingConfig struct {
	RefX          int    `yaml:"ref_x"`
	RefY          int    `yaml:"ref_y"`
	MinProfile    int    `yaml:"min_profile"`
	MaxProfile    int    `yaml:"max_profile"`
	ReductionRule string `yaml:"reduction_rule"`
}

// PersistenceConfig selects where a built cost map is written to or read
// from on disk.
type PersistenceConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig selects the telemetry logger's level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration the library builds with when no
// file is given: the profiling defaults mirrored from profiler.DefaultOptions,
// smallest-delay reduction, an on-disk default path, and info/text logging.
func DefaultConfig() *Config {
	return &Config{
		Profiling: ProfilingConfig{
			RefX:          25,
			RefY:          23,
			MinProfile:    1,
			MaxProfile:    7,
			ReductionRule: costmodel.RuleSmallestDelay.String(),
		},
		Persistence: PersistenceConfig{
			Path: "lookahead.map",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML configuration file, starting from DefaultConfig so an
// absent or partial file still yields a usable configuration. A missing
// path is not an error: the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// Validate checks the configuration for the constraints §4.4's stop rule
// and §5's reduction step require.
func (c *Config) Validate() error {
	if c.Profiling.MinProfile < 1 {
		return fmt.Errorf("config: profiling.min_profile must be at least 1")
	}
	if c.Profiling.MaxProfile < c.Profiling.MinProfile {
		return fmt.Errorf("config: profiling.max_profile must be >= min_profile")
	}
	if _, err := c.ReductionRule(); err != nil {
		return err
	}
	if c.Persistence.Path == "" {
		return fmt.Errorf("config: persistence.path is required")
	}

	return nil
}

// ReductionRule parses the configured reduction-rule name into a
// costmodel.Rule.
func (c *Config) ReductionRule() (costmodel.Rule, error) {
	switch c.Profiling.ReductionRule {
	case "", costmodel.RuleSmallestDelay.String():
		return costmodel.RuleSmallestDelay, nil
	case costmodel.RuleArithmeticMean.String():
		return costmodel.RuleArithmeticMean, nil
	case costmodel.RuleGeometricMean.String():
		return costmodel.RuleGeometricMean, nil
	case costmodel.RuleBinnedMode.String():
		return costmodel.RuleBinnedMode, nil
	default:
		return 0, fmt.Errorf("config: unknown profiling.reduction_rule %q", c.Profiling.ReductionRule)
	}
}
