// Package config loads the optional parsegen.yaml project file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/parsegen-dev/parsegen/internal/gen"
	"github.com/parsegen-dev/parsegen/internal/parse"
)

// FileName is the project configuration file name.
const FileName = "parsegen.yaml"

// Config represents the top-level parsegen.yaml configuration.
type Config struct {
	DataDir     string                `yaml:"data_dir"`
	ParsersDir  string                `yaml:"parsers_dir"`
	MaxAttempts int                   `yaml:"max_attempts"`
	Banks       map[string]BankConfig `yaml:"banks,omitempty"`
}

// BankConfig overrides the built-in heuristic profile for one bank.
type BankConfig struct {
	Label    string   `yaml:"label,omitempty"`
	Keywords []string `yaml:"keywords,omitempty"`
}

// Load reads a parsegen.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault reads parsegen.yaml if present, else returns defaults.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the standard layout.
func Default() *Config {
	return &Config{
		DataDir:     "data",
		ParsersDir:  "custom_parsers",
		MaxAttempts: 3,
	}
}

// ProfileFor resolves the heuristic profile for a bank, applying any
// configured keyword override on top of the built-in selection.
func (c *Config) ProfileFor(bank string) parse.Profile {
	profile := gen.ProfileFor(bank)
	override, ok := c.Banks[bank]
	if !ok {
		return profile
	}
	if override.Label != "" {
		profile.Label = override.Label
	}
	if len(override.Keywords) > 0 {
		profile.Keywords = override.Keywords
	}
	return profile
}
