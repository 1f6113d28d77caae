// Copyright 2025 go-highway Authors
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
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-swizzle/swizzle"
	"github.com/ajroetker/go-swizzle/swizzle/morton"
)

// supported reports whether the drivers accept f.
func supported(f swizzle.Format) bool {
	return !f.IsTypeless() && !f.IsPlanar() && !f.IsPalettized() && f.ElementSize() > 0
}

func formatLines() []string {
	return lo.Map(lo.Filter(swizzle.Formats(), func(f swizzle.Format, _ int) bool {
		return supported(f)
	}), func(f swizzle.Format, _ int) string {
		kind := fmt.Sprintf("%d bytes/pixel", f.ElementSize())
		if f.IsCompressed() {
			kind = fmt.Sprintf("%d bytes/block", f.BytesPerBlock())
		}
		return fmt.Sprintf("%-22s %s", f, kind)
	})
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the texel formats the converters accept",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(formatLines(), "\n"))
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the active bit interleaver",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "interleaver: %s\n", morton.CurrentName())
			fmt.Fprintf(w, "%s: %t\n", morton.NoAsmEnvVar, morton.NoAsmEnv())
		},
	}
}
