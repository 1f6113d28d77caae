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
	"math"
	"math/bits"

	"github.com/gogpu/gputypes"
	"github.com/pkg/errors"

	"github.com/ajroetker/go-swizzle/swizzle/morton"
)

// Layout says how the images of a Texture order their elements.
type Layout int

const (
	// LayoutLinear stores rows of elements one after another.
	LayoutLinear Layout = iota

	// LayoutSwizzled stores elements in standard swizzle (Morton) order.
	LayoutSwizzled
)

// String returns "linear" or "swizzled".
func (l Layout) String() string {
	switch l {
	case LayoutLinear:
		return "linear"
	case LayoutSwizzled:
		return "swizzled"
	default:
		return "unknown"
	}
}

// maxTextureBytes caps a single allocation.
const maxTextureBytes = 1 << 40

// Texture owns the pixel memory of a 2D, 2D array or 3D texture and exposes
// it as a sequence of Image views backed by one buffer.
type Texture struct {
	meta   Metadata
	layout Layout
	images []Image
	pixels []byte
}

// imagePlan is the size of one image before the backing buffer exists.
type imagePlan struct {
	width, height int
	rowPitch      int
	slicePitch    int
	size          uint64
}

// NewTexture2D allocates a 2D texture of arraySize items with mipLevels
// levels each. A mipLevels of 0 allocates the full chain down to 1x1.
//
// Images are ordered item-major: every mip of item 0, then item 1, and so
// on. With LayoutSwizzled each image is large enough for its Morton
// footprint.
func NewTexture2D(format Format, width, height, arraySize, mipLevels int, layout Layout) (*Texture, error) {
	if err := checkFormat(format); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 || arraySize <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "texture %dx%d with %d items", width, height, arraySize)
	}
	maxMips := mipCount(width, height)
	if mipLevels == 0 {
		mipLevels = maxMips
	}
	if mipLevels < 0 || mipLevels > maxMips {
		return nil, errors.Wrapf(ErrInvalidArgument, "%d mip levels for %dx%d, at most %d", mipLevels, width, height, maxMips)
	}

	bpe := format.ElementSize()
	plans := make([]imagePlan, 0, arraySize*mipLevels)
	for range arraySize {
		for level := range mipLevels {
			w, h := max(width>>level, 1), max(height>>level, 1)
			p, err := planImage(format, w, h, bpe, layout)
			if err != nil {
				return nil, err
			}
			plans = append(plans, p)
		}
	}

	meta := Metadata{
		Format:    format,
		Width:     width,
		Height:    height,
		Depth:     1,
		ArraySize: arraySize,
		MipLevels: mipLevels,
		Dimension: gputypes.TextureDimension2D,
	}
	return allocate(meta, layout, plans)
}

// NewTexture3D allocates a single-mip volume texture of depth slices.
//
// With LayoutSwizzled the texture holds FoldedSlices(width, height, depth)
// slices, which exceeds depth when the volume is not Morton-closed.
func NewTexture3D(format Format, width, height, depth int, layout Layout) (*Texture, error) {
	if err := checkFormat(format); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "volume %dx%dx%d", width, height, depth)
	}

	bpe := format.ElementSize()
	slices := depth
	if layout == LayoutSwizzled {
		ew, eh := format.ElementExtent(width, height)
		if !morton.Fits3D(ew, eh, depth) {
			return nil, errors.Wrapf(ErrInvalidArgument, "volume %dx%dx%d exceeds the 3D swizzle range", width, height, depth)
		}
		slices = FoldedSlices(ew, eh, depth)
	}

	// Slices of a swizzled volume never need more than one linear plane.
	p, err := planImage(format, width, height, bpe, LayoutLinear)
	if err != nil {
		return nil, err
	}
	plans := make([]imagePlan, slices)
	for i := range plans {
		plans[i] = p
	}

	meta := Metadata{
		Format:    format,
		Width:     width,
		Height:    height,
		Depth:     depth,
		ArraySize: 1,
		MipLevels: 1,
		Dimension: gputypes.TextureDimension3D,
	}
	return allocate(meta, layout, plans)
}

func planImage(format Format, width, height, bpe int, layout Layout) (imagePlan, error) {
	ew, eh := format.ElementExtent(width, height)
	pitch := ew * bpe
	linear := uint64(pitch) * uint64(eh)
	size := linear
	if layout == LayoutSwizzled {
		if !morton.Fits2D(ew, eh) {
			return imagePlan{}, errors.Wrapf(ErrInvalidArgument, "image %dx%d exceeds the 2D swizzle range", width, height)
		}
		size = max(linear, morton.Footprint2D(ew, eh)*uint64(bpe))
	}
	return imagePlan{
		width:      width,
		height:     height,
		rowPitch:   pitch,
		slicePitch: int(linear),
		size:       size,
	}, nil
}

func allocate(meta Metadata, layout Layout, plans []imagePlan) (*Texture, error) {
	var total uint64
	for _, p := range plans {
		total += p.size
		if total > maxTextureBytes || total > math.MaxInt {
			return nil, errors.Wrapf(ErrAllocationFailure, "%s texture %dx%d needs more than %d bytes",
				meta.Format, meta.Width, meta.Height, uint64(maxTextureBytes))
		}
	}

	Logger().Debug("swizzle: allocating texture",
		"format", meta.Format.String(),
		"width", meta.Width,
		"height", meta.Height,
		"images", len(plans),
		"layout", layout.String(),
		"bytes", total)

	pixels := make([]byte, total)
	images := make([]Image, len(plans))
	var off int
	for i, p := range plans {
		end := off + int(p.size)
		images[i] = Image{
			Format:     meta.Format,
			Width:      p.width,
			Height:     p.height,
			RowPitch:   p.rowPitch,
			SlicePitch: p.slicePitch,
			Pixels:     pixels[off:end:end],
		}
		off = end
	}

	return &Texture{
		meta:   meta,
		layout: layout,
		images: images,
		pixels: pixels,
	}, nil
}

// mipCount returns the length of the full mip chain for a base size.
func mipCount(width, height int) int {
	return bits.Len(uint(max(width, height)))
}

// Metadata returns the texture's declared shape.
func (t *Texture) Metadata() Metadata { return t.meta }

// Layout returns the element order of the texture's images.
func (t *Texture) Layout() Layout { return t.layout }

// Images returns the image views. The slice is shared with the texture.
func (t *Texture) Images() []Image { return t.images }

// ImageCount returns the number of image views.
func (t *Texture) ImageCount() int { return len(t.images) }

// Pixels returns the backing buffer of every image.
func (t *Texture) Pixels() []byte { return t.pixels }

// Image returns the view of one mip level of one array item of a 2D texture.
func (t *Texture) Image(item, mip int) (Image, bool) {
	if t.meta.IsVolume() || item < 0 || item >= t.meta.ArraySize || mip < 0 || mip >= t.meta.MipLevels {
		return Image{}, false
	}
	return t.images[item*t.meta.MipLevels+mip], true
}

// Slice returns the view of slice z of a volume texture. Swizzled volumes
// may have more slices than Metadata().Depth.
func (t *Texture) Slice(z int) (Image, bool) {
	if !t.meta.IsVolume() || z < 0 || z >= len(t.images) {
		return Image{}, false
	}
	return t.images[z], true
}
