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

import "golang.org/x/exp/constraints"

// Abs returns the magnitude of a signed integer.
//
// Abs of the minimum representable value wraps around and returns it
// unchanged, as two's-complement negation does.
func Abs[T constraints.Signed](x T) T {
	if x > 0 {
		return x
	}
	return -x
}

// Fabs returns the absolute value of x.
//
// Special cases:
//   - Fabs(±0) = +0
//   - Fabs(±Inf) = +Inf
//   - Fabs(NaN) = NaN
func Fabs(x float64) float64 {
	if x > 0 {
		return x
	}
	return -x
}

// Ceil returns the least integer value greater than or equal to x.
//
// Values that do not fit in an int64 are returned unchanged; at that
// magnitude every double is already integral.
//
// Special cases:
//   - Ceil(±Inf) = ±Inf
//   - Ceil(NaN) = NaN
//   - Ceil(x) = +0 for -1 < x <= 0 (the sign of zero is not kept)
func Ceil(x float64) float64 {
	if x >= int64Limit || x <= -int64Limit || x != x {
		return x
	}
	i := int64(x)
	if x > float64(i) {
		return float64(i + 1)
	}
	return float64(i)
}

// Floor returns the greatest integer value less than or equal to x.
//
// Special cases:
//   - Floor(±Inf) = ±Inf
//   - Floor(NaN) = NaN
//   - Floor(-0) = +0
func Floor(x float64) float64 {
	if x >= int64Limit || x <= -int64Limit || x != x {
		return x
	}
	i := int64(x)
	if x < float64(i) {
		return float64(i - 1)
	}
	return float64(i)
}

// Trunc returns the integer value of x, rounding toward zero.
func Trunc(x float64) float64 {
	if x >= 0 {
		return Floor(x)
	}
	return Ceil(x)
}

// Fmod returns the floating-point remainder of x/y. The result has the
// sign of x and magnitude less than |y|, and it is always exact.
//
// Algorithm: x - Trunc(x/y)*y, with the product formed exactly so the
// subtraction keeps every bit of the remainder. A quotient that rounded
// one unit past the true value is corrected afterwards. Quotients of 2^52
// and beyond no longer hold every integer digit, so those inputs are
// reduced by binary long division instead (see fmodLong).
//
// Special cases:
//   - Fmod(±Inf, y) = NaN
//   - Fmod(NaN, y) = NaN
//   - Fmod(x, ±Inf) = x
//   - Fmod(x, NaN) = NaN
//   - Fmod(x, 0) = NaN
func Fmod(x, y float64) float64 {
	switch {
	case x != x || y != y || y == 0 || Fabs(x) == inf:
		return nan
	case Fabs(y) == inf:
		return x
	}

	q := Trunc(x / y)
	if Fabs(q) >= exactQuotient || !canSplit(y) {
		return fmodLong(x, y)
	}

	hi, lo := twoProd(q, y)
	r := (x - hi) - lo

	ay := Fabs(y)
	switch {
	case x > 0 && r < 0:
		r += ay
	case x < 0 && r > 0:
		r -= ay
	case Fabs(r) >= ay:
		if x > 0 {
			r -= ay
		} else {
			r += ay
		}
	}
	return r
}

// fmodLong subtracts |y|·2^k from |x| for every k from the largest one
// that fits down to 0, like long division in base 2. With d <= r < 2d
// each subtraction r - d is exact (Sterbenz), and so is every doubling
// and halving of d, which is always |y| times a power of two.
func fmodLong(x, y float64) float64 {
	ay := Fabs(y)
	r := Fabs(x)
	if r >= ay {
		d := ay
		for d*2 <= r {
			d *= 2
		}
		for d >= ay {
			if r >= d {
				r -= d
			}
			d /= 2
		}
	}
	if x < 0 {
		return -r
	}
	return r
}
