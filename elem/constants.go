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

import "math"

// =============================================================================
// Mathematical constants
// =============================================================================

const (
	Pi      = 3.14159265358979323846264338327950288
	E       = 2.71828182845904523536028747135266250
	Ln2     = 0.693147180559945309417232121458
	Ln10    = 2.30258509299404568401799145468
	Phi     = 1.6180339887498948482 // golden ratio
	InvPhi  = 0.6180339887498948482 // 1/Phi
	Sqrt2   = 1.4142135623730950488
	Sqrt3   = 1.7320508075688772935
	Sqrt5   = 2.23606797749978969
	Catalan = 0.915965594177219
	Cahen   = 0.64341054629
)

// Convergence thresholds and the large-magnitude sentinel.
const (
	Eps6  = 1e-6
	Eps10 = 1e-10
	Eps20 = 1e-20
	E10   = 1e10
)

// =============================================================================
// Internal constants
// =============================================================================

const (
	twoPi    = 2 * Pi
	halfPi   = Pi / 2
	invSqrt2 = 1 / Sqrt2

	// Doubles at or beyond ±2^63 do not fit in an int64 and are integral
	// already.
	int64Limit = 1 << 63

	// Integer quotients below 2^52 survive the division x/y with the
	// integer part off by at most one.
	exactQuotient = 1 << 52

	// Hard caps on series terms and Newton steps. The slowest documented
	// cases (Asin near ±1, Exp near overflow, Sqrt of subnormals) stay far
	// below these in practice except for Asin at the very edge of its domain.
	maxSeriesTerms = 1 << 20
	maxNewtonSteps = 1 << 12
)

var (
	inf    = math.Inf(1)
	negInf = math.Inf(-1)
	nan    = math.NaN()
)
