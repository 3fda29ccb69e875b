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

// Sqrt computes the square root of x.
//
// Algorithm: Babylonian (Newton) iteration next = (guess + x/guess)/2 from
// guess 4, until two iterates differ by at most Eps20. After the first step
// the iterates decrease toward the root; once rounding makes them stop
// decreasing (a two-value cycle one ULP wide) the smaller one is returned.
//
// Sqrt(0) converges toward zero and stops at about Eps20.
//
// Special cases:
//   - Sqrt(x) = NaN if x < 0
//   - Sqrt(±Inf) = NaN
//   - Sqrt(NaN) = NaN
func Sqrt(x float64) float64 {
	if x < 0 || x != x || Fabs(x) == inf {
		return nan
	}

	guess := 4.0
	prev := 0.0
	for i := 0; Fabs(guess-prev) > Eps20 && i < maxNewtonSteps; i++ {
		prev = guess
		guess = 0.5 * (prev + x/prev)
		if i > 0 && guess >= prev {
			return prev
		}
	}
	return guess
}
