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

import "github.com/gogpu/gputypes"

// Image is a non-owning view of one 2D surface.
//
// Pixels must hold at least RowPitch bytes per element row. For compressed
// formats a row is one row of 4x4 blocks. A swizzled image ignores RowPitch
// and packs its elements contiguously in Morton order, which can need more
// than RowPitch*rows bytes when the extents are not a power of two (see
// morton.Footprint2D).
//
// SlicePitch is informational: the allocator sets it to RowPitch times the
// element rows and no driver reads it.
type Image struct {
	Format     Format
	Width      int
	Height     int
	RowPitch   int
	SlicePitch int
	Pixels     []byte
}

// sameShape reports whether two images agree on format and size.
func (img Image) sameShape(o Image) bool {
	return img.Format == o.Format && img.Width == o.Width && img.Height == o.Height
}

// Metadata is the declared shape of a whole texture. Drivers only read it.
type Metadata struct {
	Format    Format
	Width     int
	Height    int
	Depth     int
	ArraySize int
	MipLevels int
	Dimension gputypes.TextureDimension
}

// IsVolume reports whether the metadata describes a 3D texture.
func (m Metadata) IsVolume() bool {
	return m.Dimension == gputypes.TextureDimension3D
}

// Extent returns the texture size as a WebGPU extent. Depth holds the
// volume depth for 3D textures and the array size otherwise.
func (m Metadata) Extent() gputypes.Extent3D {
	layers := max(m.ArraySize, 1)
	if m.IsVolume() {
		layers = max(m.Depth, 1)
	}
	return gputypes.Extent3D{
		Width:              uint32(m.Width),
		Height:             uint32(m.Height),
		DepthOrArrayLayers: uint32(layers),
	}
}

// matches reports whether img has the declared format and base size.
func (m Metadata) matches(img Image) bool {
	return img.Format == m.Format && img.Width == m.Width && img.Height == m.Height
}
