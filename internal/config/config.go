// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume      string `json:"resume,omitempty"`      // Path to parsed resume JSON file
	Job         string `json:"job,omitempty"`         // Path to job description text file
	Keywords    string `json:"keywords,omitempty"`    // Path to keyword analysis JSON file
	Suggestions string `json:"suggestions,omitempty"` // Path to suggestions JSON file

	// Analysis
	Archetype    string   `json:"archetype,omitempty"`     // Candidate archetype: coop, fulltime, career_changer
	SectionOrder []string `json:"section_order,omitempty"` // Declared resume section order
	Enhanced     bool     `json:"enhanced,omitempty"`      // Use the five-component enhanced scorer

	// Behavior
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed debug information
	CircuitBreaker bool   `json:"circuit_breaker,omitempty"` // Wrap external calls in a circuit breaker
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

// validArchetypes mirrors the archetypes the rule engine conditions on
var validArchetypes = map[string]bool{
	"":               true, // unset; CLI flag validation handles requiredness
	"coop":           true,
	"fulltime":       true,
	"career_changer": true,
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if !validArchetypes[c.Archetype] {
		return fmt.Errorf("config error: 'archetype' must be one of coop, fulltime, career_changer")
	}

	// Validate file paths exist (if specified)
	for _, p := range []struct{ name, path string }{
		{"resume", c.Resume},
		{"job", c.Job},
		{"keywords", c.Keywords},
		{"suggestions", c.Suggestions},
	} {
		if p.path == "" {
			continue
		}
		if _, err := os.Stat(p.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", p.name, p.path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Keywords == "" {
		result.Keywords = defaults.Keywords
	}
	if result.Suggestions == "" {
		result.Suggestions = defaults.Suggestions
	}
	if result.Archetype == "" {
		result.Archetype = defaults.Archetype
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	if len(result.SectionOrder) == 0 {
		result.SectionOrder = defaults.SectionOrder
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
