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
	"image"
	"os"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/ajroetker/go-swizzle/swizzle"
)

// rgbaImage views a decoded picture as an RGBA8 swizzle source.
func rgbaImage(img image.Image) swizzle.Image {
	rgba := clone.AsRGBA(img)
	b := rgba.Bounds()
	return swizzle.Image{
		Format:     swizzle.FormatR8G8B8A8Unorm,
		Width:      b.Dx(),
		Height:     b.Dy(),
		RowPitch:   rgba.Stride,
		SlicePitch: rgba.Stride * b.Dy(),
		Pixels:     rgba.Pix,
	}
}

// encodeImageFile decodes a PNG, JPEG, BMP or TIFF file and writes its
// swizzled RGBA8 payload.
func encodeImageFile(in, out string) error {
	img, err := imgio.Open(in)
	if err != nil {
		return errors.Wrap(err, "decode image")
	}
	tex, err := swizzle.SwizzlePlane(rgbaImage(img), true)
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(out, tex.Pixels(), 0o644), "write output")
}

// decodeImageFile reads a swizzled RGBA8 payload of the given size and
// writes it as a PNG.
func decodeImageFile(in, out string, width, height int) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return errors.Wrap(err, "read input")
	}
	c := &converter{format: swizzle.FormatR8G8B8A8Unorm, width: width, height: height, depth: 1, array: 1}
	pix, err := c.convert(data, false)
	if err != nil {
		return err
	}
	rgba := &image.RGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	return errors.Wrap(imgio.Save(out, rgba, imgio.PNGEncoder()), "encode png")
}

func newEncodeImageCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "encode-image [flags] image...",
		Short: "Swizzle image files as RGBA8 payloads",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return forEachInput(cmd.Context(), args, output, ".swz", encodeImageFile)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (single input only)")
	return cmd
}

func newDecodeImageCmd() *cobra.Command {
	var (
		output        string
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "decode-image [flags] payload...",
		Short: "Write swizzled RGBA8 payloads as PNG files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 || height <= 0 {
				return errors.Wrap(swizzle.ErrInvalidArgument, "--width and --height must be positive")
			}
			return forEachInput(cmd.Context(), args, output, ".png", func(in, out string) error {
				return decodeImageFile(in, out, width, height)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (single input only)")
	cmd.Flags().IntVar(&width, "width", 0, "Width in pixels (required)")
	cmd.Flags().IntVar(&height, "height", 0, "Height in pixels (required)")
	return cmd
}
