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

// Package config types define the configuration structures used throughout
// review-relay. These types represent settings that can be loaded from
// YAML configuration files, environment variables, or command-line flags.
package config

import "time"

// Config represents the complete configuration for review-relay.
// It consolidates settings from various sources and provides a unified
// interface for accessing configuration values throughout the application.
type Config struct {
	Feed     FeedConfig     `yaml:"feed"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// FeedConfig contains settings for the review syndication feed endpoint.
// Overriding the endpoint is mainly useful for tests and for proxying the
// feed through an internal mirror.
type FeedConfig struct {
	Endpoint       string `yaml:"endpoint"`
	UserAgent      string `yaml:"user_agent"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// DefaultsConfig contains default settings that apply to all fetch
// operations unless overridden by command-line flags.
type DefaultsConfig struct {
	// PauseSeconds is the politeness pause between consecutive feed page
	// requests. Increase it if the feed starts answering 403s.
	PauseSeconds float64 `yaml:"pause_seconds"`
	OutputFolder string  `yaml:"output_folder"`
}

// Pause returns the inter-page pause as a duration.
func (c *Config) Pause() time.Duration {
	return time.Duration(c.Defaults.PauseSeconds * float64(time.Second))
}

// RequestTimeout returns the per-request HTTP timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Feed.TimeoutSeconds) * time.Second
}

// DefaultConfig returns a Config with sensible defaults suitable for most
// use cases. The defaults target the public feed and can be overridden for
// mirrors or tests.
func DefaultConfig() *Config {
	return &Config{
		Feed: FeedConfig{
			Endpoint:       "https://itunes.apple.com",
			UserAgent:      "Mozilla/5.0 (compatible; review-relay)",
			TimeoutSeconds: 30,
		},
		Defaults: DefaultsConfig{
			PauseSeconds: 1.0,
			OutputFolder: ".",
		},
	}
}
