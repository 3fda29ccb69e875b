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

package elem

// Asin computes asin(x) (arc sine) in radians.
//
// Algorithm: Maclaurin series x + x³/6 + 3x⁵/40 + ..., where each term is
// the previous one times x²·(2k-1)²/((2k+1)·2k).
//
// The terms shrink like x^(2k), so convergence slows sharply as |x|
// approaches 1. The loop is capped; arguments within about 1e-5 of ±1
// return before the series has fully converged.
//
// Special cases:
//   - Asin(0) = 0
//   - Asin(±1) = ±π/2
//   - Asin(x) = NaN if |x| > 1
//   - Asin(NaN) = NaN
func Asin(x float64) float64 {
	if x != x || Fabs(x) > 1 {
		return nan
	} else if Fabs(x) == 1 {
		return halfPi * x
	}

	x2 := x * x
	sum := x
	term := x
	for k := 1.0; Fabs(term) > Eps20 && k < maxSeriesTerms; k++ {
		term *= x2 * (2*k - 1) * (2*k - 1) / ((2*k + 1) * 2 * k)
		sum += term
	}
	return sum
}

// Acos computes acos(x) (arc cosine) = π/2 - Asin(x).
//
// Special cases:
//   - Acos(1) = 0
//   - Acos(-1) = π
//   - Acos(x) = NaN if |x| > 1
//   - Acos(NaN) = NaN
func Acos(x float64) float64 {
	if x != x || Fabs(x) > 1 {
		return nan
	}
	return halfPi - Asin(x)
}
