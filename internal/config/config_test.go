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

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable envconfig may read for Config, including
// the unprefixed names it falls back to, for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SAMPLES", "SEED", "WORKERS", "BATCH", "TOLERANCE", "LOG_LEVEL", "LOG_DEV", "LEVEL", "DEV"} {
		for _, name := range []string{Prefix + "_" + key, key} {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ELEMCHECK_SAMPLES", "500")
	t.Setenv("ELEMCHECK_SEED", "42")
	t.Setenv("ELEMCHECK_WORKERS", "3")
	t.Setenv("ELEMCHECK_BATCH", "64")
	t.Setenv("ELEMCHECK_TOLERANCE", "1e-9")
	t.Setenv("ELEMCHECK_LOG_LEVEL", "debug")
	t.Setenv("ELEMCHECK_LOG_DEV", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Samples)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 64, cfg.Batch)
	assert.InDelta(t, 1e-9, cfg.Tolerance, 1e-24)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}

func TestLoadErrors(t *testing.T) {
	t.Run("Unparsable", func(t *testing.T) {
		t.Setenv("ELEMCHECK_SAMPLES", "lots")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
	})

	t.Run("Invalid", func(t *testing.T) {
		t.Setenv("ELEMCHECK_BATCH", "0")
		t.Setenv("ELEMCHECK_WORKERS", "-2")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "batch must be > 0")
		assert.Contains(t, err.Error(), "workers must be >= 0")
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	cfg := Default()
	cfg.Tolerance = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Samples, cfg.Workers, cfg.Batch, cfg.Tolerance = -1, -1, 0, -1
	err := cfg.Validate()
	require.Error(t, err)
	for _, msg := range []string{"invalid config", "samples must be", "workers must be", "batch must be", "tolerance must be"} {
		assert.Contains(t, err.Error(), msg)
	}
}

func TestFromEnvSkipsValidation(t *testing.T) {
	t.Setenv("ELEMCHECK_BATCH", "0")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Batch)
	assert.Error(t, cfg.Validate())

	cfg.Batch = 16
	assert.NoError(t, cfg.Validate())
}
