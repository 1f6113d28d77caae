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

// Package swizzle converts texture data between row-major layout and the
// standard swizzle layout, a Z-order (Morton) arrangement used by GPUs to
// keep 2D neighbourhoods close in memory.
//
// # Drivers
//
// Three drivers cover the texture shapes:
//
//	Plane(src, dst, toSwizzle)                 // one 2D image
//	Array(srcs, meta, toSwizzle, dsts)         // same-sized 2D images
//	Volume(srcs, depth, meta, toSwizzle, dsts) // 3D slices
//
// Each has a Parallel* variant taking a *workerpool.Pool. Compressed formats
// are moved as opaque 4x4 blocks; their payload is never decoded.
//
// # Allocating Entry Points
//
// SwizzlePlane, SwizzleArray and SwizzleVolume validate their input, allocate
// a correctly shaped Texture and run the matching driver:
//
//	img := swizzle.Image{
//	    Format:   swizzle.FormatR8G8B8A8Unorm,
//	    Width:    256,
//	    Height:   256,
//	    RowPitch: 256 * 4,
//	    Pixels:   pixels,
//	}
//	tex, err := swizzle.SwizzlePlane(img, true)
//
// # Non Power-of-Two Extents
//
// Morton indices of a grid fill [0, w*h) only for power-of-two sizes. For
// other sizes some slots are never used, so a swizzled image is sized to
// morton.Footprint2D elements and a swizzled volume may hold more slices
// than its depth (FoldedSlices). The allocating entry points handle this.
//
// # Errors
//
// All failures wrap one of ErrInvalidFormat, ErrUnsupportedFormat,
// ErrShapeMismatch, ErrInvalidArgument, ErrNullBuffer or
// ErrAllocationFailure.
package swizzle
