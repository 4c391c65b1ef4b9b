// Package config loads the optional YAML file holding defaults for the CLI flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/idelchi/dirtree/internal/folder"
)

// Config holds flag defaults. Flags given on the command line take precedence.
type Config struct {
	ParallelBuild bool            `yaml:"parallel_build"`
	Parallel      bool            `yaml:"parallel"`
	Strategy      folder.Strategy `yaml:"strategy"`
	Threshold     uint64          `yaml:"threshold"`
	Workers       int             `yaml:"workers"`
	Top           int             `yaml:"top"`
	Matches       []string        `yaml:"matches"`
	Output        string          `yaml:"output"`
}

func DefaultConfig() *Config {
	return &Config{
		Strategy:  folder.Recursive,
		Threshold: folder.DefaultThreshold,
		Top:       10,
		Output:    "table",
	}
}

// Load reads the config at path. An empty path or a missing file yields the
// defaults; keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}

		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}

	return cfg, nil
}

// DefaultPath returns the per-user config location, or "" if it cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "dirtree", "config.yaml")
}
