// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"dnasearch/core/bench"
)

// EnvPath names the environment variable that points at a config file.
const EnvPath = "DNASEARCH_CONFIG"

// Config holds the file-level defaults for dnasearch. Command-line flags
// override any field set here.
type Config struct {
	Algorithms bench.Selection `yaml:"algorithms"`

	// Output
	Output          string `yaml:"output"`
	Positions       bool   `yaml:"positions"`
	Chart           bool   `yaml:"chart"`
	Codons          bool   `yaml:"codons"`
	Color           bool   `yaml:"color"`
	NoHeader        bool   `yaml:"no_header"`
	NoMatchExitCode int    `yaml:"no_match_exit_code"`

	Budget BudgetConfig `yaml:"budget"`

	LogLevel string `yaml:"log_level"`
}

// BudgetConfig mirrors bench.Budget with YAML names.
type BudgetConfig struct {
	MaxTextLen int           `yaml:"max_text_len"`
	MaxWork    int64         `yaml:"max_work"`
	TimeBudget time.Duration `yaml:"time_budget"`
}

// Budget converts to the harness type.
func (b BudgetConfig) Budget() bench.Budget {
	return bench.Budget{MaxTextLen: b.MaxTextLen, MaxWork: b.MaxWork, MaxElapsed: b.TimeBudget}
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Algorithms:      bench.All(),
		Output:          "text",
		NoMatchExitCode: 1,
		LogLevel:        "error",
	}
}

// Load reads the config file at explicit, or the first discovered file when
// explicit is empty. A missing discovered file is not an error; a missing
// explicit file is. Values are only decoded here: flags may still override
// them, so range checks run on the merged options.
func Load(explicit string) (*Config, error) {
	cfg := Default()

	path := explicit
	if path == "" {
		path = discoverPath()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			if explicit == "" && errors.Is(err, os.ErrNotExist) {
				return cfg, nil
			}
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}
	return cfg, nil
}

// discoverPath returns the config file path to try.
func discoverPath() string {
	if path := os.Getenv(EnvPath); path != "" {
		return path
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dnasearch", "config.yaml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "dnasearch", "config.yaml")
	}
	return ""
}

// loadFromFile overlays the YAML at path onto cfg.
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - the path comes from the user (flag, env var, or standard location)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
