// Package config provides configuration loading and validation for the résumé CLIs.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultResumeFile is the document the tools operate on when nothing else is configured
const DefaultResumeFile = "resume.json"

// Environment variables that seed the configuration
const (
	EnvResumeFile = "RESUME_FILE"
	EnvProfileURL = "RESUME_PROFILE_URL"
	EnvSchema     = "RESUME_SCHEMA"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	ResumeFile string `json:"resume_file,omitempty" yaml:"resume_file,omitempty"` // Path to the résumé document
	ProfileURL string `json:"profile_url,omitempty" yaml:"profile_url,omitempty"` // Profile page suggested as the source for missing data
	SchemaFile string `json:"schema_file,omitempty" yaml:"schema_file,omitempty"` // JSON Schema override for validation
	Verbose    bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`         // Print debug logs
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{ResumeFile: DefaultResumeFile}
}

// FromEnv builds a configuration from environment variables
func FromEnv() Config {
	return Config{
		ResumeFile: os.Getenv(EnvResumeFile),
		ProfileURL: os.Getenv(EnvProfileURL),
		SchemaFile: os.Getenv(EnvSchema),
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
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
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.ResumeFile == "" {
		return fmt.Errorf("config error: 'resume_file' must not be empty")
	}
	if !strings.EqualFold(filepath.Ext(c.ResumeFile), ".json") {
		return fmt.Errorf("config error: 'resume_file' must be a .json file: %s", c.ResumeFile)
	}

	if c.ProfileURL != "" && !strings.HasPrefix(c.ProfileURL, "http://") && !strings.HasPrefix(c.ProfileURL, "https://") {
		return fmt.Errorf("config error: 'profile_url' must be an http(s) URL: %s", c.ProfileURL)
	}

	if c.SchemaFile != "" {
		if _, err := os.Stat(c.SchemaFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: schema file not found: %s", c.SchemaFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer config file, environment and built-in values under CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ResumeFile == "" {
		result.ResumeFile = defaults.ResumeFile
	}
	if result.ProfileURL == "" {
		result.ProfileURL = defaults.ProfileURL
	}
	if result.SchemaFile == "" {
		result.SchemaFile = defaults.SchemaFile
	}

	// Bool fields: cannot distinguish unset from false, so either layer enables
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}
