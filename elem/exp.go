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

// Exp computes e^x.
//
// Algorithm: Maclaurin series 1 + x + x²/2! + ..., each term the previous
// one times x/k, summed until a term falls to Eps20. Negative x is
// evaluated as 1/Exp(|x|), so the series never alternates.
//
// Special cases:
//   - Exp(+Inf) = +Inf
//   - Exp(-Inf) = 0
//   - Exp(NaN) = NaN
//   - Exp(x) = +Inf once the partial sum overflows (x > ~709.78)
func Exp(x float64) float64 {
	switch {
	case x != x:
		return nan
	case x == inf:
		return inf
	case x == negInf:
		return 0
	}

	negative := x < 0
	if negative {
		x = -x
	}

	sum := 1.0
	term := 1.0
	for k := 1.0; Fabs(term) > Eps20 && k < maxSeriesTerms; k++ {
		term *= x / k
		sum += term
		if sum == inf {
			break
		}
	}

	if negative {
		return 1 / sum
	}
	return sum
}
