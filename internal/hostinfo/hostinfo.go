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

// Package hostinfo describes the floating-point behavior of the host the
// checker runs on.
//
// The series in package elem are plain Go arithmetic. The gc compiler is
// allowed to contract x*y+z into a fused multiply-add on targets where that
// instruction is part of the baseline ISA, so the last bits of a result can
// differ between, say, arm64 and amd64 v1. Accuracy reports print the
// Profile so such differences can be told apart from regressions.
package hostinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Profile is a snapshot of the host.
type Profile struct {
	Arch      string
	OS        string
	GoVersion string

	// GOAMD64 is the amd64 microarchitecture level the binary was built
	// for ("v1" through "v4"); empty on other architectures.
	GOAMD64 string

	// HasFMA reports whether the CPU implements fused multiply-add.
	HasFMA bool

	// MayFuse reports whether the compiler may emit fused multiply-adds for
	// ordinary expressions in this binary.
	MayFuse bool

	// Features lists the CPU extensions relevant to floating point, in the
	// names used by golang.org/x/sys/cpu.
	Features []string
}

// Detect inspects the running binary and CPU.
func Detect() Profile {
	p := Profile{
		Arch:      runtime.GOARCH,
		OS:        runtime.GOOS,
		GoVersion: runtime.Version(),
	}
	if p.Arch == "amd64" {
		p.GOAMD64 = buildSetting("GOAMD64", "v1")
	}
	p.HasFMA, p.Features = cpuFeatures()
	p.MayFuse = mayFuse(p.Arch, p.GOAMD64)
	return p
}

// String formats the profile on one line.
func (p Profile) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s/%s %s", p.Arch, p.OS, p.GoVersion)
	if p.GOAMD64 != "" {
		fmt.Fprintf(&b, " GOAMD64=%s", p.GOAMD64)
	}
	fmt.Fprintf(&b, " fma=%t fuse=%t", p.HasFMA, p.MayFuse)
	if len(p.Features) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(p.Features, " "))
	}
	return b.String()
}

// mayFuse reports whether gc contracts multiply-adds on arch. FMA is
// baseline on these targets; on amd64 it arrives with the v3 level.
func mayFuse(arch, goamd64 string) bool {
	switch arch {
	case "arm64", "ppc64", "ppc64le", "s390x", "riscv64", "loong64":
		return true
	case "amd64":
		return goamd64 >= "v3"
	default:
		return false
	}
}

func buildSetting(key, fallback string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return fallback
	}
	for _, s := range info.Settings {
		if s.Key == key && s.Value != "" {
			return s.Value
		}
	}
	return fallback
}
