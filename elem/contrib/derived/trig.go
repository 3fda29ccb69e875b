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

// SinCos returns Sin(x), Cos(x).
func SinCos(x float64) (sin, cos float64) {
	return elem.Sin(x), elem.Cos(x)
}

// Atan2 returns the arc tangent of y/x, using the signs of both arguments
// to determine the quadrant of the return value.
//
// The ratio passed to elem.Atan is always kept within [-1, 1], where the
// arcsine series converges quickly.
//
// Special cases:
//   - Atan2(y, NaN) = NaN
//   - Atan2(NaN, x) = NaN
//   - Atan2(+0, x>=0) = +0
//   - Atan2(-0, x>=0) = -0
//   - Atan2(+0, x<=-0) = +π
//   - Atan2(-0, x<=-0) = -π
//   - Atan2(y>0, 0) = +π/2
//   - Atan2(y<0, 0) = -π/2
//   - Atan2(+Inf, +Inf) = +π/4
//   - Atan2(-Inf, +Inf) = -π/4
//   - Atan2(+Inf, -Inf) = +3π/4
//   - Atan2(-Inf, -Inf) = -3π/4
//   - Atan2(y, +Inf) = 0
//   - Atan2(y>0, -Inf) = +π
//   - Atan2(y<0, -Inf) = -π
//   - Atan2(+Inf, x) = +π/2
//   - Atan2(-Inf, x) = -π/2
func Atan2(y, x float64) float64 {
	switch {
	case y != y || x != x:
		return nan
	case y == 0:
		if x >= 0 && !signbit(x) {
			return copysign(0, y)
		}
		return copysign(elem.Pi, y)
	case x == 0:
		return copysign(elem.Pi/2, y)
	case isInf(x):
		if x > 0 {
			if isInf(y) {
				return copysign(elem.Pi/4, y)
			}
			return copysign(0, y)
		}
		if isInf(y) {
			return copysign(3*elem.Pi/4, y)
		}
		return copysign(elem.Pi, y)
	case isInf(y):
		return copysign(elem.Pi/2, y)
	}

	var q float64
	if elem.Fabs(y) > elem.Fabs(x) {
		// atan(t) = ±π/2 - atan(1/t), sign of t.
		q = -elem.Atan(x / y)
		if (y > 0) == (x > 0) {
			q += elem.Pi / 2
		} else {
			q -= elem.Pi / 2
		}
	} else {
		q = elem.Atan(y / x)
	}

	if x < 0 {
		if q <= 0 {
			return q + elem.Pi
		}
		return q - elem.Pi
	}
	return q
}
