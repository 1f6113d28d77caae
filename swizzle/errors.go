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

package swizzle

import "github.com/pkg/errors"

// Error kinds. Every error returned by this package wraps exactly one of
// these; test with errors.Is. Any error means the destination contents must
// not be trusted: bytes written before the failure are not rolled back.
var (
	// ErrInvalidFormat is returned when a format fails the validity check.
	ErrInvalidFormat = errors.New("swizzle: invalid format")

	// ErrUnsupportedFormat is returned for typeless, planar, palettized and
	// sub-byte formats, and for a volume passed to a 2D entry point (or the
	// reverse).
	ErrUnsupportedFormat = errors.New("swizzle: unsupported format")

	// ErrShapeMismatch is returned when an image's format, width or height
	// disagrees with the declared metadata.
	ErrShapeMismatch = errors.New("swizzle: shape mismatch")

	// ErrInvalidArgument is returned for empty or oversized sequences,
	// missing or undersized destinations, and extents beyond the
	// addressable range.
	ErrInvalidArgument = errors.New("swizzle: invalid argument")

	// ErrNullBuffer is returned when a source or destination image has no
	// pixel buffer.
	ErrNullBuffer = errors.New("swizzle: nil pixel buffer")

	// ErrAllocationFailure is returned when a destination texture cannot be
	// constructed.
	ErrAllocationFailure = errors.New("swizzle: allocation failure")
)

// checkFormat applies the format rules shared by every driver.
func checkFormat(f Format) error {
	if !f.IsValid() {
		return errors.Wrapf(ErrInvalidFormat, "format %s", f)
	}
	if f.IsTypeless() || f.IsPlanar() || f.IsPalettized() {
		return errors.Wrapf(ErrUnsupportedFormat, "format %s", f)
	}
	if f.ElementSize() == 0 {
		return errors.Wrapf(ErrUnsupportedFormat, "format %s is not byte addressable", f)
	}
	return nil
}
