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

// Package derived provides functions composed from the elem primitives:
// SinCos, Atan2, Hypot, Cbrt, Log2, Log10, Exp2 and Exp10.
//
// Nothing here calls into the standard math package; every result is built
// from elem operations, so accuracy follows the primitive each function is
// reduced to.
package derived
