// Package config loads CLI defaults from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-adjustable defaults for the CLI.
type Config struct {
	// DBPath overrides the solve history database location.
	DBPath string `yaml:"db_path"`
	// Optimized makes the solve command print the optimized solution
	// by default.
	Optimized bool `yaml:"optimized"`
	// ScrambleLength is the default scramble length.
	ScrambleLength int `yaml:"scramble_length"`
	// Method selects the default pipeline: "cfop" or "beginner".
	Method string `yaml:"method"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ScrambleLength: 25,
		Method:         "cfop",
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubesolver", "config.yaml"), nil
}

// Load reads the config file at path, falling back to defaults for
// unset fields. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.ScrambleLength <= 0 {
		cfg.ScrambleLength = 25
	}
	if cfg.Method == "" {
		cfg.Method = "cfop"
	}

	return cfg, nil
}

// LoadDefault reads the config from the default location.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), err
	}
	return Load(path)
}
