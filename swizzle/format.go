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

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Format identifies a texel format. The zero value is FormatUnknown.
type Format uint32

// Texel formats with a known layout.
const (
	FormatUnknown Format = iota
	FormatR8Unorm
	FormatR8G8Unorm
	FormatR16Float
	FormatR8G8B8A8Typeless
	FormatR8G8B8A8Unorm
	FormatR8G8B8A8UnormSRGB
	FormatB8G8R8A8Unorm
	FormatB8G8R8A8UnormSRGB
	FormatR10G10B10A2Unorm
	FormatR16G16B16A16Float
	FormatR32Float
	FormatR32G32Float
	FormatR32G32B32A32Typeless
	FormatR32G32B32A32Float
	FormatD24UnormS8Uint
	FormatR1Unorm
	FormatBC1Typeless
	FormatBC1Unorm
	FormatBC2Unorm
	FormatBC3Unorm
	FormatBC4Unorm
	FormatBC5Unorm
	FormatBC6HUF16
	FormatBC7Unorm
	FormatNV12
	FormatAI44
	FormatP8

	formatCount
)

// BlockSize is the edge length, in pixels, of a block-compressed block.
const BlockSize = 4

type formatDesc struct {
	name       string
	bits       int // bits per pixel
	blockBytes int // bytes per 4x4 block, 0 for uncompressed formats
	typeless   bool
	planar     bool
	palettized bool
}

var formatTable = [formatCount]formatDesc{
	FormatUnknown:              {name: "unknown"},
	FormatR8Unorm:              {name: "r8_unorm", bits: 8},
	FormatR8G8Unorm:            {name: "r8g8_unorm", bits: 16},
	FormatR16Float:             {name: "r16_float", bits: 16},
	FormatR8G8B8A8Typeless:     {name: "r8g8b8a8_typeless", bits: 32, typeless: true},
	FormatR8G8B8A8Unorm:        {name: "r8g8b8a8_unorm", bits: 32},
	FormatR8G8B8A8UnormSRGB:    {name: "r8g8b8a8_unorm_srgb", bits: 32},
	FormatB8G8R8A8Unorm:        {name: "b8g8r8a8_unorm", bits: 32},
	FormatB8G8R8A8UnormSRGB:    {name: "b8g8r8a8_unorm_srgb", bits: 32},
	FormatR10G10B10A2Unorm:     {name: "r10g10b10a2_unorm", bits: 32},
	FormatR16G16B16A16Float:    {name: "r16g16b16a16_float", bits: 64},
	FormatR32Float:             {name: "r32_float", bits: 32},
	FormatR32G32Float:          {name: "r32g32_float", bits: 64},
	FormatR32G32B32A32Typeless: {name: "r32g32b32a32_typeless", bits: 128, typeless: true},
	FormatR32G32B32A32Float:    {name: "r32g32b32a32_float", bits: 128},
	FormatD24UnormS8Uint:       {name: "d24_unorm_s8_uint", bits: 32},
	FormatR1Unorm:              {name: "r1_unorm", bits: 1},
	FormatBC1Typeless:          {name: "bc1_typeless", bits: 4, blockBytes: 8, typeless: true},
	FormatBC1Unorm:             {name: "bc1_unorm", bits: 4, blockBytes: 8},
	FormatBC2Unorm:             {name: "bc2_unorm", bits: 8, blockBytes: 16},
	FormatBC3Unorm:             {name: "bc3_unorm", bits: 8, blockBytes: 16},
	FormatBC4Unorm:             {name: "bc4_unorm", bits: 4, blockBytes: 8},
	FormatBC5Unorm:             {name: "bc5_unorm", bits: 8, blockBytes: 16},
	FormatBC6HUF16:             {name: "bc6h_uf16", bits: 8, blockBytes: 16},
	FormatBC7Unorm:             {name: "bc7_unorm", bits: 8, blockBytes: 16},
	FormatNV12:                 {name: "nv12", bits: 12, planar: true},
	FormatAI44:                 {name: "ai44", bits: 8, palettized: true},
	FormatP8:                   {name: "p8", bits: 8, palettized: true},
}

func (f Format) desc() formatDesc {
	if f >= formatCount {
		return formatDesc{}
	}
	return formatTable[f]
}

// IsValid reports whether f names a known, concrete format.
func (f Format) IsValid() bool {
	return f != FormatUnknown && f < formatCount
}

// IsTypeless reports whether f has no channel interpretation.
func (f Format) IsTypeless() bool { return f.desc().typeless }

// IsPlanar reports whether f stores its channels in separate planes.
func (f Format) IsPlanar() bool { return f.desc().planar }

// IsPalettized reports whether f stores palette indices.
func (f Format) IsPalettized() bool { return f.desc().palettized }

// IsCompressed reports whether f is block-compressed.
func (f Format) IsCompressed() bool { return f.desc().blockBytes != 0 }

// BitsPerPixel returns the average number of bits per pixel, or 0 for an
// invalid format.
func (f Format) BitsPerPixel() int { return f.desc().bits }

// BytesPerBlock returns the size of one 4x4 block of a compressed format, or
// 0 for uncompressed formats.
func (f Format) BytesPerBlock() int { return f.desc().blockBytes }

// ElementSize returns the number of bytes in one addressable element: a
// block for compressed formats, a pixel otherwise. Formats whose pixels are
// not a whole number of bytes return 0.
func (f Format) ElementSize() int {
	d := f.desc()
	if d.blockBytes != 0 {
		return d.blockBytes
	}
	if d.bits%8 != 0 {
		return 0
	}
	return d.bits / 8
}

// ElementExtent converts a size in pixels to a size in addressable
// elements, rounding partial blocks up for compressed formats.
func (f Format) ElementExtent(width, height int) (int, int) {
	if !f.IsCompressed() {
		return width, height
	}
	return (width + BlockSize - 1) / BlockSize, (height + BlockSize - 1) / BlockSize
}

// String returns the lower-case format name.
func (f Format) String() string {
	if f >= formatCount {
		return fmt.Sprintf("format(%d)", uint32(f))
	}
	return formatTable[f].name
}

// gpuFormats pairs formats with their WebGPU equivalents.
var gpuFormats = map[Format]gputypes.TextureFormat{
	FormatR8Unorm:        gputypes.TextureFormatR8Unorm,
	FormatR8G8B8A8Unorm:  gputypes.TextureFormatRGBA8Unorm,
	FormatB8G8R8A8Unorm:  gputypes.TextureFormatBGRA8Unorm,
	FormatD24UnormS8Uint: gputypes.TextureFormatDepth24PlusStencil8,
}

// GPU returns the matching WebGPU texture format, or
// gputypes.TextureFormatUndefined when there is none.
func (f Format) GPU() gputypes.TextureFormat {
	if tf, ok := gpuFormats[f]; ok {
		return tf
	}
	return gputypes.TextureFormatUndefined
}

// FormatFromGPU returns the format matching a WebGPU texture format, or
// FormatUnknown when the format has no counterpart here.
func FormatFromGPU(tf gputypes.TextureFormat) Format {
	for f, g := range gpuFormats {
		if g == tf {
			return f
		}
	}
	return FormatUnknown
}

// ParseFormat looks a format up by its String name.
func ParseFormat(name string) (Format, bool) {
	for f := FormatUnknown + 1; f < formatCount; f++ {
		if formatTable[f].name == name {
			return f, true
		}
	}
	return FormatUnknown, false
}

// Formats returns every valid format in declaration order.
func Formats() []Format {
	out := make([]Format, 0, formatCount-1)
	for f := FormatUnknown + 1; f < formatCount; f++ {
		out = append(out, f)
	}
	return out
}
