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

// Command texswizzle converts texture payloads between row-major layout and
// the standard swizzle layout.
//
// Usage:
//
//	texswizzle encode --format r8g8b8a8_unorm --width 256 --height 256 tex.raw
//	texswizzle decode --format bc1_unorm --width 512 --height 512 --array 6 cube.swz
//	texswizzle encode --format r8_unorm --width 64 --height 64 --depth 32 --parallel vol.raw
//	texswizzle encode-image -o albedo.swz albedo.png
//	texswizzle decode-image --width 256 --height 256 -o albedo.png albedo.swz
//	texswizzle formats
//	texswizzle info
//
// Raw files hold tightly packed elements. Swizzled files hold every image
// padded to its Morton footprint, in the order a swizzled Texture lays them
// out. Several inputs are processed concurrently; each output is named after
// its input unless -o is given for a single input.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-swizzle/swizzle"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "texswizzle",
		Short:         "Convert textures to and from the standard swizzle layout",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug records, including the library's")

	root.AddCommand(
		newRawCmd(true),
		newRawCmd(false),
		newEncodeImageCmd(),
		newDecodeImageCmd(),
		newFormatsCmd(),
		newInfoCmd(),
	)
	return root
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	if debug {
		swizzle.SetLogger(logger)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
