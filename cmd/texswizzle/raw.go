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
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-swizzle/swizzle"
	"github.com/ajroetker/go-swizzle/swizzle/contrib/workerpool"
)

// shapeFlags describes the texture every input of one invocation holds.
type shapeFlags struct {
	format   string
	width    int
	height   int
	depth    int
	array    int
	parallel bool
	output   string
}

func (s *shapeFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&s.format, "format", "r8g8b8a8_unorm", "Texel format name (see 'texswizzle formats')")
	fs.IntVar(&s.width, "width", 0, "Width in pixels (required)")
	fs.IntVar(&s.height, "height", 0, "Height in pixels (required)")
	fs.IntVar(&s.depth, "depth", 1, "Volume depth; above 1 selects the 3D layout")
	fs.IntVar(&s.array, "array", 1, "Number of same-sized 2D images")
	fs.BoolVar(&s.parallel, "parallel", false, "Split the copy loops across GOMAXPROCS workers")
	fs.StringVarP(&s.output, "output", "o", "", "Output file (single input only)")
}

// converter turns whole payloads of one texture shape from one layout into
// the other.
type converter struct {
	format swizzle.Format
	width  int
	height int
	depth  int
	array  int
	pool   *workerpool.Pool
}

func (s *shapeFlags) converter() (*converter, error) {
	f, ok := swizzle.ParseFormat(strings.ToLower(s.format))
	if !ok {
		return nil, errors.Wrapf(swizzle.ErrInvalidFormat, "unknown format %q", s.format)
	}
	if s.width <= 0 || s.height <= 0 {
		return nil, errors.Wrap(swizzle.ErrInvalidArgument, "--width and --height must be positive")
	}
	if s.depth <= 0 || s.array <= 0 {
		return nil, errors.Wrap(swizzle.ErrInvalidArgument, "--depth and --array must be positive")
	}
	if s.depth > 1 && s.array > 1 {
		return nil, errors.Wrap(swizzle.ErrInvalidArgument, "--depth and --array are mutually exclusive")
	}
	c := &converter{format: f, width: s.width, height: s.height, depth: s.depth, array: s.array}
	if s.parallel {
		c.pool = workerpool.New(runtime.GOMAXPROCS(0))
	}
	return c, nil
}

func (c *converter) close() { c.pool.Close() }

func (c *converter) newTexture(layout swizzle.Layout) (*swizzle.Texture, error) {
	if c.depth > 1 {
		return swizzle.NewTexture3D(c.format, c.width, c.height, c.depth, layout)
	}
	return swizzle.NewTexture2D(c.format, c.width, c.height, c.array, 1, layout)
}

// convert returns data, laid out as a texture of the converter's shape, in
// the other layout. Swizzled payloads carry each image's padded footprint.
func (c *converter) convert(data []byte, toSwizzle bool) ([]byte, error) {
	from, to := swizzle.LayoutLinear, swizzle.LayoutSwizzled
	if !toSwizzle {
		from, to = to, from
	}
	src, err := c.newTexture(from)
	if err != nil {
		return nil, err
	}
	if len(data) != len(src.Pixels()) {
		return nil, errors.Wrapf(swizzle.ErrInvalidArgument, "input holds %d bytes, a %s %s texture of this shape holds %d",
			len(data), from, c.format, len(src.Pixels()))
	}
	copy(src.Pixels(), data)

	dst, err := c.newTexture(to)
	if err != nil {
		return nil, err
	}
	meta := src.Metadata()
	switch {
	case c.depth > 1:
		err = swizzle.ParallelVolume(c.pool, src.Images(), c.depth, meta, toSwizzle, dst.Images())
	case c.array > 1:
		// The array driver bounds the sequence by the declared mip count.
		meta.MipLevels = c.array
		err = swizzle.ParallelArray(c.pool, src.Images(), meta, toSwizzle, dst.Images())
	default:
		err = swizzle.ParallelPlane(c.pool, src.Images()[0], dst.Images()[0], toSwizzle)
	}
	if err != nil {
		return nil, err
	}
	return dst.Pixels(), nil
}

func (c *converter) convertFile(in, out string, toSwizzle bool) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return errors.Wrap(err, "read input")
	}
	res, err := c.convert(data, toSwizzle)
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(out, res, 0o644), "write output")
}

func newRawCmd(toSwizzle bool) *cobra.Command {
	var s shapeFlags
	use, short, ext := "decode", "Convert swizzled payloads to row-major layout", ".lin"
	if toSwizzle {
		use, short, ext = "encode", "Convert row-major payloads to the standard swizzle layout", ".swz"
	}
	cmd := &cobra.Command{
		Use:   use + " [flags] input...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.converter()
			if err != nil {
				return err
			}
			defer c.close()
			return forEachInput(cmd.Context(), args, s.output, ext, func(in, out string) error {
				return c.convertFile(in, out, toSwizzle)
			})
		},
	}
	s.register(cmd.Flags())
	return cmd
}
