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

// Log2 returns the binary logarithm of x. Special cases are those of elem.Log.
func Log2(x float64) float64 {
	return elem.Log(x) / elem.Ln2
}

// Log10 returns the decimal logarithm of x. Special cases are those of
// elem.Log.
func Log10(x float64) float64 {
	return elem.Log(x) / elem.Ln10
}

// Exp2 returns 2**x. Integral x is exact while the result is representable.
func Exp2(x float64) float64 {
	return elem.Pow(2, x)
}

// Exp10 returns 10**x.
func Exp10(x float64) float64 {
	return elem.Pow(10, x)
}
