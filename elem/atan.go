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

// Atan computes atan(x) (arc tangent) in radians.
//
// Algorithm: atan(x) = asin(x / sqrt(1 + x²)) for |x| <= 1, where the Asin
// argument stays within ±1/√2. Larger arguments fold back through
// atan(x) = ±π/2 - atan(1/x), sign of x.
//
// Special cases:
//   - Atan(±0) = 0
//   - Atan(±Inf) = ±π/2
//   - Atan(NaN) = NaN
func Atan(x float64) float64 {
	if Fabs(x) > 1 {
		r := halfPi - Atan(1/Fabs(x))
		if x < 0 {
			return -r
		}
		return r
	}
	return Asin(x / Sqrt(1+x*x))
}
