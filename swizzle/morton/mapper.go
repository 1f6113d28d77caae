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

package morton

// Axis masks for the standard swizzle. Each mask selects the index bits that
// carry one coordinate; the masks of one dimensionality are disjoint and
// together cover all 32 bits.
const (
	// MaskX2D gives x the odd bits of a 2D index.
	MaskX2D uint32 = 0xAAAAAAAA

	// MaskY2D gives y the even bits of a 2D index.
	MaskY2D uint32 = 0x55555555

	// MaskX3D gives x every third bit starting at bit 0.
	MaskX3D uint32 = 0x49249249

	// MaskY3D gives y every third bit starting at bit 1.
	MaskY3D uint32 = 0x92492492

	// MaskZ3D gives z every third bit starting at bit 2.
	MaskZ3D uint32 = 0x24924924
)

// Extent limits implied by the masks: an axis with k mask bits addresses
// coordinates in [0, 1<<k).
const (
	MaxDim2D   = 1 << 16
	MaxDimXY3D = 1 << 11
	MaxDimZ3D  = 1 << 10
)

// Index2D returns the swizzled index of (x, y).
func Index2D(x, y uint32) uint32 {
	return Deposit(x, MaskX2D) | Deposit(y, MaskY2D)
}

// Coords2D returns the (x, y) coordinates stored at swizzled index i.
func Coords2D(i uint32) (x, y uint32) {
	return Extract(i, MaskX2D), Extract(i, MaskY2D)
}

// Index3D returns the three-way swizzled index of (x, y, z).
func Index3D(x, y, z uint32) uint32 {
	return Deposit(x, MaskX3D) | Deposit(y, MaskY3D) | Deposit(z, MaskZ3D)
}

// Coords3D returns the (x, y, z) coordinates stored at swizzled index i.
func Coords3D(i uint32) (x, y, z uint32) {
	return Extract(i, MaskX3D), Extract(i, MaskY3D), Extract(i, MaskZ3D)
}

// Fits2D reports whether every coordinate of a width x height grid has a
// distinct 2D index.
func Fits2D(width, height int) bool {
	return width > 0 && height > 0 && width <= MaxDim2D && height <= MaxDim2D
}

// Fits3D reports whether every coordinate of a width x height x depth grid
// has a distinct 3D index.
func Fits3D(width, height, depth int) bool {
	return width > 0 && height > 0 && depth > 0 &&
		width <= MaxDimXY3D && height <= MaxDimXY3D && depth <= MaxDimZ3D
}

// Footprint2D returns the number of index slots spanned by a width x height
// grid: one past the largest index any of its coordinates maps to.
//
// Deposit is monotonic in its value, so the largest index belongs to the
// far corner. The result equals width*height only when the grid is
// Morton-closed (square, or twice as tall as wide, with power-of-two
// sides); other grids leave padding slots that no coordinate maps to.
// Returns 0 when the grid does not fit.
func Footprint2D(width, height int) uint64 {
	if !Fits2D(width, height) {
		return 0
	}
	return uint64(Index2D(uint32(width-1), uint32(height-1))) + 1
}

// Footprint3D is the 3D counterpart of Footprint2D.
func Footprint3D(width, height, depth int) uint64 {
	if !Fits3D(width, height, depth) {
		return 0
	}
	return uint64(Index3D(uint32(width-1), uint32(height-1), uint32(depth-1))) + 1
}

// IsClosed2D reports whether the grid's indices are exactly [0, width*height).
func IsClosed2D(width, height int) bool {
	f := Footprint2D(width, height)
	return f != 0 && f == uint64(width)*uint64(height)
}
