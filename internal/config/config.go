// Copyright 2025 AppWatch HQ, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for review-relay with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// The package supports YAML configuration files and provides automatic
// discovery of configuration in standard locations.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .review-relay.yaml (current directory)
//   - .review-relay.yml (current directory)
//   - ~/.review-relay/config.yaml
//   - ~/.review-relay/config.yml
//
// Environment variables are applied after loading the config file, allowing
// runtime overrides. Path expansion (~ and environment variables) is
// performed on the output folder.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".review-relay.yaml",
			".review-relay.yml",
			filepath.Join(os.Getenv("HOME"), ".review-relay", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".review-relay", "config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Expand paths
	cfg.Defaults.OutputFolder = expandPath(cfg.Defaults.OutputFolder)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if endpoint := os.Getenv("RELAY_FEED_ENDPOINT"); endpoint != "" {
		cfg.Feed.Endpoint = endpoint
	}
	if ua := os.Getenv("RELAY_USER_AGENT"); ua != "" {
		cfg.Feed.UserAgent = ua
	}
	if timeout := os.Getenv("RELAY_TIMEOUT_SECONDS"); timeout != "" {
		if secs, err := parsePositiveInt(timeout); err == nil {
			cfg.Feed.TimeoutSeconds = secs
		}
	}
	if pause := os.Getenv("RELAY_PAUSE_SECONDS"); pause != "" {
		if secs, err := strconv.ParseFloat(pause, 64); err == nil && secs >= 0 {
			cfg.Defaults.PauseSeconds = secs
		}
	}
	if folder := os.Getenv("RELAY_OUTPUT_FOLDER"); folder != "" {
		cfg.Defaults.OutputFolder = folder
	}
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = os.Getenv("USERPROFILE") // Windows
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// parsePositiveInt parses a string to a positive integer
func parsePositiveInt(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer from '%s': %w", s, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("value must be positive, got: %d", i)
	}
	return i, nil
}

// Validate checks if the configuration contains valid values. This should
// be called after loading configuration to catch invalid settings early.
func (c *Config) Validate() error {
	if c.Feed.Endpoint == "" {
		return fmt.Errorf("feed endpoint cannot be empty")
	}
	if c.Feed.TimeoutSeconds <= 0 {
		return fmt.Errorf("request timeout must be positive, got: %d", c.Feed.TimeoutSeconds)
	}
	if c.Defaults.PauseSeconds < 0 {
		return fmt.Errorf("pause must not be negative, got: %g", c.Defaults.PauseSeconds)
	}
	if c.Defaults.OutputFolder == "" {
		return fmt.Errorf("output folder cannot be empty")
	}
	return nil
}
