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

import "github.com/go-elementary/elementary/elem"

// Hypot returns Sqrt(x*x + y*y), taking care to avoid unnecessary overflow
// and underflow.
//
// Special cases:
//   - Hypot(±Inf, y) = +Inf
//   - Hypot(x, ±Inf) = +Inf
//   - Hypot(NaN, y) = NaN
//   - Hypot(x, NaN) = NaN
func Hypot(x, y float64) float64 {
	p, q := elem.Fabs(x), elem.Fabs(y)
	switch {
	case isInf(p) || isInf(q):
		return inf
	case p != p || q != q:
		return nan
	}
	if p < q {
		p, q = q, p
	}
	if p == 0 {
		return 0
	}
	q = q / p
	return p * elem.Sqrt(1+q*q)
}

// Cbrt returns the cube root of x.
//
// Algorithm: Exp(Log(|x|)/3) followed by one Newton step on s³ = |x|,
// with the sign of x restored at the end.
//
// Special cases:
//   - Cbrt(±0) = ±0
//   - Cbrt(±Inf) = ±Inf
//   - Cbrt(NaN) = NaN
func Cbrt(x float64) float64 {
	if x == 0 || x != x || isInf(x) {
		return x
	}

	a := elem.Fabs(x)
	s := elem.Exp(elem.Log(a) / 3)
	s -= (s - a/(s*s)) / 3
	if x < 0 {
		return -s
	}
	return s
}
