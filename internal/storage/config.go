package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFile is the name of the configuration file kept next to a solution.
	ConfigFile = ".slnstart.yaml"

	// envPrefix prefixes environment overrides, e.g. SLNSTART_STRATEGY.
	envPrefix = "slnstart"

	// Default configuration values
	DefaultStrategy     = "first-project"
	DefaultRequireClean = true
	DefaultLogLevel     = "info"
)

// Config represents user configuration from .slnstart.yaml.
// This file is user-managed and never written by slnstart.
type Config struct {
	// Strategy selects how the startup project is encoded in the solution:
	// "first-project" (what Visual Studio reads) or "section".
	Strategy string `yaml:"strategy" envconfig:"STRATEGY"`

	// RequireClean makes `slnstart set` refuse to write when a supplied
	// workspace snapshot has unsaved changes.
	RequireClean bool `yaml:"require_clean" envconfig:"REQUIRE_CLEAN"`

	// LogLevel is the zap level used when --verbose is not given.
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Strategy:     DefaultStrategy,
		RequireClean: DefaultRequireClean,
		LogLevel:     DefaultLogLevel,
	}
}

// ConfigPathFor returns the config file path that belongs to a solution.
func ConfigPathFor(solutionPath string) string {
	return filepath.Join(filepath.Dir(solutionPath), ConfigFile)
}

// LoadConfig loads the config file at path if it exists, otherwise starts
// from defaults. Partial config files are merged with defaults, and
// SLNSTART_* environment variables override both.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// No config file - keep defaults
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}

	return cfg, nil
}
