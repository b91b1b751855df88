// Package config loads the optional YAML settings file that overrides
// the per-package defaults. Resolution order: explicit --config flag,
// then STUDYPULSE_CONFIG, then built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/anupamd/studypulse/internal/burnout"
	"github.com/anupamd/studypulse/internal/load"
	"github.com/anupamd/studypulse/internal/patterns"
)

// Config aggregates the tunable sections. Anything absent from the file
// keeps its default.
type Config struct {
	Load     load.Config     `yaml:"load"`
	Burnout  burnout.Config  `yaml:"burnout"`
	Patterns patterns.Config `yaml:"patterns"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Load:     load.DefaultConfig(),
		Burnout:  burnout.DefaultConfig(),
		Patterns: patterns.DefaultConfig(),
	}
}

// Resolve picks the config file path: the flag value wins, then the
// STUDYPULSE_CONFIG environment variable. Empty means defaults only.
func Resolve(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv("STUDYPULSE_CONFIG")
}

// Load reads the file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
