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

// Pow computes base^exp.
//
// The special cases are checked in a fixed order; several of them overlap
// (a zero base is also "not negative", an infinite exponent is also "not an
// integer") and the first match wins:
//
//	Pow(x, ±0) = 1 for any x
//	Pow(1, y) = 1 for any y
//	Pow(0, y) = NaN for y NaN, +0 for y > 0, +Inf for y < 0
//	Pow(x, 1) = x
//	Pow(x, -1) = 1/x
//	Pow(±Inf, y) = NaN for y NaN, +Inf for y > 0, +0 for y < 0 (y not an integer)
//	Pow(x, ±Inf) = +0 or +Inf for x < 0 by the limit of |x|^y; Pow(-1, ±Inf) = 1
//	Pow(x, y) = NaN for x < 0 and finite non-integer y
//	Pow(NaN, y) = NaN
//	Pow(x, NaN) = NaN
//
// Integer exponents that fit in an int64 use square-and-multiply, which is
// exact wherever the intermediate products are. Everything else is
// Exp(exp·Log(base)).
//
// The sign of a zero result or base is not tracked: Pow(-0, -1) is +Inf.
func Pow(base, exp float64) float64 {
	if exp == 0 || base == 1 {
		return 1
	}

	if base == 0 {
		switch {
		case exp != exp:
			return nan
		case exp > 0:
			return 0
		default:
			return inf
		}
	}

	if exp == 1 {
		return base
	}
	if exp == -1 {
		return 1 / base
	}

	integral := isIntegral(exp)

	if Fabs(base) == inf && !integral {
		switch {
		case exp != exp:
			return nan
		case exp > 0:
			return inf
		default:
			return 0
		}
	}

	if base < 0 && !integral {
		if Fabs(exp) != inf {
			return nan
		}
		switch {
		case base > -1:
			if exp == negInf {
				return inf
			}
			return 0
		case base == -1:
			return 1
		case exp == negInf:
			return 0
		default:
			return inf
		}
	}

	if base != base || exp != exp {
		return nan
	}

	if integral && Fabs(exp) < int64Limit {
		return powInt(base, int64(exp))
	}

	// Integral exponents beyond int64 are all even.
	if base < 0 {
		base = -base
	}
	return Exp(exp * Log(base))
}

// isIntegral reports whether y is finite and has no fractional part.
func isIntegral(y float64) bool {
	return y == y && Fabs(y) != inf && Trunc(y) == y
}

// powInt computes base^e by binary exponentiation over the bits of |e|.
func powInt(base float64, e int64) float64 {
	n := uint64(e)
	if e < 0 {
		n = uint64(-e)
	}

	res := 1.0
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			res *= base
		}
		base *= base
	}

	if e < 0 {
		return 1 / res
	}
	return res
}
