// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for the history store

	// Engine knobs
	ConfidenceThreshold float64 `json:"confidence_threshold,omitempty"` // Minimum extraction confidence (0.0-1.0)
	FuzzyThreshold      float64 `json:"fuzzy_threshold,omitempty"`      // Minimum string similarity for fuzzy hits (0.0-1.0)
	WeakMatchThreshold  float64 `json:"weak_match_threshold,omitempty"` // Minimum edge weight for weak-match rows (0.0-1.0)

	// Score blend weights. They must sum to 1 when all are set.
	WeightedWeight   float64 `json:"weighted_weight,omitempty"`
	F1Weight         float64 `json:"f1_weight,omitempty"`
	ExperienceWeight float64 `json:"experience_weight,omitempty"`
	CategoryWeight   float64 `json:"category_weight,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed report breakdowns
}

// Defaults returns the standard configuration.
func Defaults() Config {
	return Config{
		Port:                8080,
		ConfidenceThreshold: 0.55,
		FuzzyThreshold:      0.8,
		WeakMatchThreshold:  0.6,
		WeightedWeight:      0.4,
		F1Weight:            0.3,
		ExperienceWeight:    0.2,
		CategoryWeight:      0.1,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	fractions := map[string]float64{
		"confidence_threshold": c.ConfidenceThreshold,
		"fuzzy_threshold":      c.FuzzyThreshold,
		"weak_match_threshold": c.WeakMatchThreshold,
		"weighted_weight":      c.WeightedWeight,
		"f1_weight":            c.F1Weight,
		"experience_weight":    c.ExperienceWeight,
		"category_weight":      c.CategoryWeight,
	}
	for name, value := range fractions {
		if value < 0 || value > 1 {
			return fmt.Errorf("config error: '%s' must be between 0 and 1", name)
		}
	}

	weightSum := c.WeightedWeight + c.F1Weight + c.ExperienceWeight + c.CategoryWeight
	if weightSum != 0 && (weightSum < 0.999 || weightSum > 1.001) {
		return fmt.Errorf("config error: score weights must sum to 1, got %.3f", weightSum)
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-value fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.ConfidenceThreshold == 0 {
		result.ConfidenceThreshold = defaults.ConfidenceThreshold
	}
	if result.FuzzyThreshold == 0 {
		result.FuzzyThreshold = defaults.FuzzyThreshold
	}
	if result.WeakMatchThreshold == 0 {
		result.WeakMatchThreshold = defaults.WeakMatchThreshold
	}

	// Weights merge as a block: a partially specified blend is more likely
	// a mistake than an intent, and Validate catches the bad sum.
	if result.WeightedWeight == 0 && result.F1Weight == 0 &&
		result.ExperienceWeight == 0 && result.CategoryWeight == 0 {
		result.WeightedWeight = defaults.WeightedWeight
		result.F1Weight = defaults.F1Weight
		result.ExperienceWeight = defaults.ExperienceWeight
		result.CategoryWeight = defaults.CategoryWeight
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
