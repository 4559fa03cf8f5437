// Package config loads CLI configuration from YAML files.
package config

import (
	"fmt"
	"os"

	"github.com/baditaflorin/go_password_strength/internal/core/domain"
	"github.com/baditaflorin/go_password_strength/internal/core/engine"
	"gopkg.in/yaml.v3"
)

// Config represents passcheck configuration options
type Config struct {
	// MinLength is the minimum password length in characters
	MinLength int `yaml:"min_length"`

	// Similarity is the wordlist collision threshold in percent (0-100)
	Similarity int `yaml:"similarity"`

	// Wordlist is the path to an external wordlist file (empty = embedded)
	Wordlist string `yaml:"wordlist"`

	// Ignore lists rule identifiers to suppress
	Ignore []string `yaml:"ignore"`

	// NoColor disables colorized output
	NoColor bool `yaml:"no_color"`

	// Verbose enables structured log output during evaluation
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		MinLength:  engine.DefaultMinLength,
		Similarity: engine.DefaultSimilarityPercent,
	}
}

// LoadConfig reads configuration from a YAML file, applying it on top of
// the defaults. Returns an error for unreadable files, malformed YAML or
// invalid values; evaluation must not start with a bad configuration.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.MinLength <= 0 {
		return fmt.Errorf("min_length must be positive, got %d", c.MinLength)
	}
	if c.Similarity < 0 || c.Similarity > 100 {
		return fmt.Errorf("similarity must be between 0 and 100, got %d", c.Similarity)
	}
	if _, err := c.IgnoredRules(); err != nil {
		return err
	}
	return nil
}

// IgnoredRules parses the ignore list into rule identifiers.
func (c *Config) IgnoredRules() ([]domain.RuleID, error) {
	ids := make([]domain.RuleID, 0, len(c.Ignore))
	for _, name := range c.Ignore {
		id, err := domain.ParseRuleID(name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
