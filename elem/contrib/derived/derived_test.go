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

package derived

import (
	stdmath "math"
	"testing"
)

func near(got, want, tol float64) bool {
	if stdmath.IsNaN(want) {
		return stdmath.IsNaN(got)
	}
	if stdmath.IsInf(want, 0) {
		return got == want
	}
	return stdmath.Abs(got-want) <= tol*stdmath.Max(1, stdmath.Abs(want))
}

func TestSinCos(t *testing.T) {
	for x := -20.0; x <= 20; x += 0.1 {
		s, c := SinCos(x)
		if !near(s, stdmath.Sin(x), 1e-10) || !near(c, stdmath.Cos(x), 1e-10) {
			t.Fatalf("SinCos(%v) = (%v, %v), want (%v, %v)", x, s, c, stdmath.Sin(x), stdmath.Cos(x))
		}
	}
}

func TestAtan2(t *testing.T) {
	for y := -5.0; y <= 5; y += 0.25 {
		for x := -5.0; x <= 5; x += 0.25 {
			if got, want := Atan2(y, x), stdmath.Atan2(y, x); !near(got, want, 1e-10) {
				t.Errorf("Atan2(%v, %v) = %v, want %v", y, x, got, want)
			}
		}
	}
}

func TestAtan2_SpecialCases(t *testing.T) {
	inf := stdmath.Inf(1)
	negZero := stdmath.Copysign(0, -1)
	vals := []float64{-inf, -3, -1, negZero, 0, 1, 3, inf, stdmath.NaN(), 1e300, -1e-300}

	for _, y := range vals {
		for _, x := range vals {
			got, want := Atan2(y, x), stdmath.Atan2(y, x)
			if !near(got, want, 1e-10) {
				t.Errorf("Atan2(%v, %v) = %v, want %v", y, x, got, want)
				continue
			}
			if want == 0 && stdmath.Signbit(got) != stdmath.Signbit(want) {
				t.Errorf("Atan2(%v, %v) = %v, sign of zero differs from %v", y, x, got, want)
			}
		}
	}
}

func TestHypot(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		y    float64
		want float64
	}{
		{"3-4-5", 3, 4, 5},
		{"5-12-13", -5, 12, 13},
		{"zero", 0, 0, 0},
		{"one axis", 0, -7, 7},
		{"large", 1e300, 1e300, 1e300 * stdmath.Sqrt2},
		{"small", 3e-300, 4e-300, 5e-300},
		{"+Inf", stdmath.Inf(1), 1, stdmath.Inf(1)},
		{"-Inf with NaN", stdmath.NaN(), stdmath.Inf(-1), stdmath.Inf(1)},
		{"NaN", stdmath.NaN(), 1, stdmath.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hypot(tt.x, tt.y)
			if !near(got, tt.want, 1e-10) {
				t.Errorf("Hypot(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCbrt(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"cbrt(8) = 2", 8.0, 2.0},
		{"cbrt(27) = 3", 27.0, 3.0},
		{"cbrt(1) = 1", 1.0, 1.0},
		{"cbrt(-8) = -2", -8.0, -2.0},
		{"cbrt(-27) = -3", -27.0, -3.0},
		{"cbrt(0.001) = 0.1", 0.001, 0.1},
		{"cbrt(1000) = 10", 1000.0, 10.0},
		{"cbrt(1e300) = 1e100", 1e300, 1e100},
		{"cbrt(0) = 0", 0, 0},
		{"+Inf", stdmath.Inf(1), stdmath.Inf(1)},
		{"-Inf", stdmath.Inf(-1), stdmath.Inf(-1)},
		{"NaN", stdmath.NaN(), stdmath.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cbrt(tt.x); !near(got, tt.want, 1e-12) {
				t.Errorf("Cbrt(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}

	if got := Cbrt(stdmath.Copysign(0, -1)); !stdmath.Signbit(got) {
		t.Errorf("Cbrt(-0) = %v, want -0", got)
	}
	if got := Cbrt(stdmath.MaxFloat64); stdmath.IsInf(got, 0) || stdmath.IsNaN(got) {
		t.Errorf("Cbrt(MaxFloat64) = %v, want finite", got)
	}
}

func TestLogExpBases(t *testing.T) {
	for _, x := range []float64{0.001, 0.5, 1, 2, 3, 8, 10, 1024, 1e6, 1e100} {
		if got, want := Log2(x), stdmath.Log2(x); !near(got, want, 1e-12) {
			t.Errorf("Log2(%v) = %v, want %v", x, got, want)
		}
		if got, want := Log10(x), stdmath.Log10(x); !near(got, want, 1e-12) {
			t.Errorf("Log10(%v) = %v, want %v", x, got, want)
		}
	}

	for x := -20.0; x <= 20; x += 0.5 {
		if got, want := Exp2(x), stdmath.Exp2(x); !near(got, want, 1e-12) {
			t.Errorf("Exp2(%v) = %v, want %v", x, got, want)
		}
		if got, want := Exp10(x), stdmath.Pow(10, x); !near(got, want, 1e-12) {
			t.Errorf("Exp10(%v) = %v, want %v", x, got, want)
		}
	}

	if got := Exp2(10); got != 1024 {
		t.Errorf("Exp2(10) = %v, want exactly 1024", got)
	}
	if got := Log2(0); !stdmath.IsInf(got, -1) {
		t.Errorf("Log2(0) = %v, want -Inf", got)
	}
	if got := Log10(-1); !stdmath.IsNaN(got) {
		t.Errorf("Log10(-1) = %v, want NaN", got)
	}
}
