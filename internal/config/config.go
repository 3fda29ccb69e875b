// Copyright 2025 go-elementary Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads elemcheck settings from ELEMCHECK_* environment
// variables. Command-line flags override what is loaded here.
package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "ELEMCHECK"

// Config holds the checker configuration.
type Config struct {
	// Samples is the number of random inputs drawn per function.
	Samples int `envconfig:"SAMPLES" default:"100000"`

	// Seed makes every sample set reproducible.
	Seed uint64 `envconfig:"SEED" default:"1"`

	// Workers sizes the worker pool; 0 means GOMAXPROCS.
	Workers int `envconfig:"WORKERS" default:"0"`

	// Batch is the number of samples a worker evaluates per grab.
	Batch int `envconfig:"BATCH" default:"4096"`

	// Tolerance overrides every function's own tolerance when positive.
	Tolerance float64 `envconfig:"TOLERANCE" default:"0"`

	Logging LogConfig `envconfig:"LOG"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LEVEL" default:"warn"`
	Development bool   `envconfig:"DEV" default:"false"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv reads the configuration from the environment without validating
// it, so callers can layer overrides on top first.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is set. It must
// agree with the default struct tags above.
func Default() *Config {
	return &Config{
		Samples: 100000,
		Seed:    1,
		Batch:   4096,
		Logging: LogConfig{
			Level: "warn",
		},
	}
}

// Validate reports every setting that cannot be used, joined into one
// error.
func (c *Config) Validate() error {
	var errs []error
	if c.Samples < 0 {
		errs = append(errs, fmt.Errorf("samples must be >= 0, got %d", c.Samples))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must be >= 0, got %d", c.Workers))
	}
	if c.Batch <= 0 {
		errs = append(errs, fmt.Errorf("batch must be > 0, got %d", c.Batch))
	}
	if c.Tolerance < 0 || c.Tolerance != c.Tolerance {
		errs = append(errs, fmt.Errorf("tolerance must be >= 0, got %v", c.Tolerance))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
