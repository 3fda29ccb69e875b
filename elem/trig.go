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

// Sin computes sin(x), x in radians.
//
// Algorithm:
//  1. Range reduction: x = Fmod(x, 2π)
//  2. Maclaurin series x - x³/3! + x⁵/5! - ..., each term derived from the
//     previous one, summed until a term falls to Eps20
//
// Special cases:
//   - Sin(±0) = 0
//   - Sin(±Inf) = NaN
//   - Sin(NaN) = NaN
func Sin(x float64) float64 {
	if x != x || Fabs(x) == inf {
		return nan
	}
	x = Fmod(x, twoPi)
	return alternatingSeries(x, x, 1)
}

// Cos computes cos(x), x in radians.
//
// Algorithm: as Sin, with the even series 1 - x²/2! + x⁴/4! - ...
//
// Special cases:
//   - Cos(±Inf) = NaN
//   - Cos(NaN) = NaN
func Cos(x float64) float64 {
	if x != x || Fabs(x) == inf {
		return nan
	}
	x = Fmod(x, twoPi)
	return alternatingSeries(x, 1, 0)
}

// Tan computes tan(x) = Sin(x)/Cos(x).
//
// No pole is special-cased: a cosine that evaluates to exactly zero
// yields ±Inf.
//
// Special cases:
//   - Tan(±Inf) = NaN
//   - Tan(NaN) = NaN
func Tan(x float64) float64 {
	return Sin(x) / Cos(x)
}

// alternatingSeries sums term - term·x²/((k+2)(k+1)) + ... where term is
// the degree-k term x^k/k!.
func alternatingSeries(x, term, k float64) float64 {
	x2 := x * x
	sum := 0.0
	sign := 1.0
	for n := 0; Fabs(term) > Eps20 && n < maxSeriesTerms; n++ {
		sum += sign * term
		k += 2
		sign = -sign
		term *= x2 / (k * (k - 1))
	}
	return sum
}
