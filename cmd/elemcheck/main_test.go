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

package main

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-elementary/elementary/internal/harness"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCompare(t *testing.T) {
	out, _, err := run(t, "--samples", "300", "--workers", "2", "compare", "sin", "pow", "floor")
	require.NoError(t, err)

	assert.Contains(t, out, "Accuracy Report")
	assert.Contains(t, out, "host: "+runtime.GOARCH)
	assert.Contains(t, out, "sin")
	assert.Contains(t, out, "pow")
	assert.Contains(t, out, "exact")
	assert.NotContains(t, out, "FAIL")
}

func TestCompareTightTolerance(t *testing.T) {
	out, _, err := run(t, "--samples", "200", "--tol", "1e-300", "compare", "exp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 functions out of tolerance")
	assert.Contains(t, out, "FAIL exp(")
}

func TestCompareUnknown(t *testing.T) {
	_, _, err := run(t, "compare", "gamma")
	require.Error(t, err)
	assert.ErrorIs(t, err, harness.ErrUnknownFunction)
}

func TestSpecial(t *testing.T) {
	out, _, err := run(t, "special")
	require.NoError(t, err)
	assert.Contains(t, out, "Special Values")
	for _, name := range harness.Names() {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "FAIL")
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"pow", []string{"eval", "pow", "2", "10"}, []string{"elem:      1024", "reference: 1024", "match:     yes"}},
		{"named constant", []string{"eval", "cos", "pi"}, []string{"reference: -1\n", "match:     yes"}},
		{"negative zero", []string{"eval", "atan2", "-0", "-1"}, []string{"elem:      -3.14159265358979", "match:     yes"}},
		{"deliberate difference", []string{"eval", "sqrt", "+Inf"}, []string{"elem:      NaN", "reference: +Inf", "match:     no"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	_, _, err := run(t, "eval", "pow", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pow takes 2 argument(s), got 1")

	_, _, err = run(t, "eval", "sin", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid argument "abc"`)

	_, _, err = run(t, "eval", "sin")
	require.Error(t, err)
}

func TestHost(t *testing.T) {
	out, _, err := run(t, "host")
	require.NoError(t, err)
	assert.Contains(t, out, "Host Profile")
	assert.Contains(t, out, runtime.GOARCH)
	assert.Contains(t, out, "compiler may fuse")
}

func TestConstants(t *testing.T) {
	out, _, err := run(t, "constants")
	require.NoError(t, err)
	assert.Contains(t, out, "Named Constants")
	assert.Contains(t, out, "3.141592653589793")
	assert.Contains(t, out, "Catalan")
	assert.Contains(t, out, "1e+10")
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("ELEMCHECK_BATCH", "0")
	_, _, err := run(t, "host")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch must be > 0")

	_, _, err = run(t, "--batch", "16", "host")
	require.NoError(t, err)
}

func TestLogging(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "debug", "--samples", "10", "compare", "sqrt")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"compared"`)
	assert.Contains(t, stderr, `"func":"sqrt"`)

	_, _, err = run(t, "--log-level", "loud", "host")
	require.Error(t, err)
}
