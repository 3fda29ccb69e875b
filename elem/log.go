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

// Log computes ln(x) (natural logarithm).
//
// Algorithm:
//  1. Range reduction: halve x while x >= 2, then move it into
//     [1/√2, √2] by one more halving or by doubling; each step adds or
//     subtracts ln(2)
//  2. Maclaurin series of ln(1+t) in t = x-1, each term the previous one
//     times -t·(k-1)/k, summed until a term falls to Eps20
//
// With |t| <= √2-1 the series needs about fifty terms for any input.
//
// Special cases:
//   - Log(0) = -Inf
//   - Log(x) = NaN if x < 0
//   - Log(+Inf) = +Inf
//   - Log(NaN) = NaN
func Log(x float64) float64 {
	switch {
	case x == 0:
		return negInf
	case x < 0 || x != x:
		return nan
	case x == inf:
		return inf
	}

	n := 0
	for x >= 2 {
		x /= 2
		n++
	}
	if x > Sqrt2 {
		x /= 2
		n++
	}
	for x < invSqrt2 {
		x *= 2
		n--
	}

	t := x - 1
	sum := 0.0
	term := t
	for k := 1.0; Fabs(term) > Eps20 && k < maxSeriesTerms; {
		sum += term
		k++
		term *= -t * (k - 1) / k
	}
	return sum + float64(n)*Ln2
}
