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

// Command elemcheck measures the elem functions against the standard
// library and prints accuracy reports.
//
// Usage:
//
//	elemcheck compare [func...]   randomized reference comparison
//	elemcheck special [func...]   NaN, infinity and boundary table
//	elemcheck eval <func> <x> [y] evaluate one input
//	elemcheck host                floating-point profile of this host
//	elemcheck constants           the named constants
//
// Settings come from ELEMCHECK_* environment variables and can be
// overridden by flags; see elemcheck --help.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
