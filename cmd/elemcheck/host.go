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

package main

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/go-elementary/elementary/internal/hostinfo"
)

func newHostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "host",
		Short: "Print the floating-point profile of this host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := hostinfo.Detect()
			out := cmd.OutOrStdout()

			heading(out, "host profile")
			t := newTable(out, "property", "value")
			t.SetAlignment(tablewriter.ALIGN_LEFT)
			t.AppendBulk([][]string{
				{"arch", p.Arch},
				{"os", p.OS},
				{"go", p.GoVersion},
				{"GOAMD64", orDash(p.GOAMD64)},
				{"fma", boolStr(p.HasFMA)},
				{"compiler may fuse", boolStr(p.MayFuse)},
				{"features", orDash(strings.Join(p.Features, " "))},
			})
			t.Render()
			return nil
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func boolStr(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
