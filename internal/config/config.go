// Copyright 2025 SirSeer, LLC
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

// Package config provides configuration management for pr-size-label with
// support for multiple configuration sources and a well-defined precedence
// order. It lets enterprise deployments customize behavior through
// configuration files while staying drop-in compatible with the environment
// variables the GitHub Actions runtime provides.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// The configuration file is searched for in the working directory under the
// names .pr-size-label.yaml and .pr-size-label.yml. An explicit path given
// via the --config flag always wins and must exist.
//
// The recognized environment variables mirror the Actions runtime:
//
//	GITHUB_API_URL  overrides github.api_endpoint
//	INPUT_SIZES     overrides the size thresholds (JSON object)
//	IGNORED         overrides the ignore patterns (newline separated)
//	DEBUG_ACTION    enables debug logging when set to any non-empty value
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/iahmedsabry/pr-size-label/internal/ignore"
)

// defaultConfigNames lists the file names probed in the working directory
// when no explicit --config path is given, in search order.
var defaultConfigNames = []string{
	".pr-size-label.yaml",
	".pr-size-label.yml",
}

// LoadConfig loads configuration from the given file path, falling back to
// default locations when the path is empty. Environment variables are applied
// on top of any file values, and the merged result is validated before it is
// returned.
//
// A .env file in the working directory, when present, seeds the environment
// before overrides are read. This keeps local runs close to the Actions
// runtime without exporting variables by hand.
func LoadConfig(configPath string) (*Config, error) {
	// Absence of a .env file is the normal case, not an error.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(cfg, configPath); err != nil {
			return nil, err
		}
	} else {
		for _, name := range defaultConfigNames {
			if _, err := os.Stat(name); err != nil {
				continue
			}
			if err := loadConfigFile(cfg, name); err != nil {
				return nil, err
			}
			break
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFile reads and parses a YAML configuration file into cfg.
// Values present in the file overwrite the corresponding defaults; fields
// the file does not mention are left untouched.
func loadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies the GitHub Actions environment variables on top
// of file and default values. A variable set to the empty string behaves as
// if it were unset, matching how the Actions runtime surfaces undeclared
// inputs.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GITHUB_API_URL"); v != "" {
		cfg.GitHub.APIEndpoint = v
	}
	if v := os.Getenv("IGNORED"); v != "" {
		cfg.Ignore = ignore.ParseList(v)
	}
	// INPUT_SIZES is captured raw and parsed only when labeling actually
	// happens. A malformed value must not abort invocations that exit at
	// the action gate.
	if v := os.Getenv("INPUT_SIZES"); v != "" {
		cfg.SizesEnv = v
	}
	if os.Getenv("DEBUG_ACTION") != "" {
		cfg.Debug = true
	}
}

// Validate checks the configuration for logical errors and returns a
// descriptive error if any setting is invalid.
func (c *Config) Validate() error {
	if c.GitHub.APIEndpoint == "" {
		return fmt.Errorf("github.api_endpoint must not be empty")
	}
	if c.GitHub.TokenEnv == "" {
		return fmt.Errorf("github.token_env must not be empty")
	}
	return nil
}
