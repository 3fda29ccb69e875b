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

import "math"

var (
	inf = math.Inf(1)
	nan = math.NaN()
)

func isInf(x float64) bool {
	return x == inf || x == -inf
}

// signbit reports whether x is negative or negative zero.
func signbit(x float64) bool {
	return x < 0 || (x == 0 && 1/x < 0)
}

func copysign(v, s float64) float64 {
	if v < 0 {
		v = -v
	}
	if signbit(s) {
		return -v
	}
	return v
}
