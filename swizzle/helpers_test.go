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
	"testing"

	"github.com/gogpu/gputypes"
)

// linearImage returns a row-major image with numbered element bytes. Each
// row is followed by pad bytes of 0xEE.
func linearImage(tb testing.TB, f Format, w, h, pad int) Image {
	tb.Helper()
	bpe := f.ElementSize()
	ew, eh := f.ElementExtent(w, h)
	pitch := ew*bpe + pad
	pix := make([]byte, pitch*eh)
	for y := range eh {
		row := pix[y*pitch : (y+1)*pitch]
		for x := range ew * bpe {
			row[x] = byte(y*131 + x*7 + 1)
		}
		for p := ew * bpe; p < pitch; p++ {
			row[p] = 0xEE
		}
	}
	return Image{Format: f, Width: w, Height: h, RowPitch: pitch, SlicePitch: pitch * eh, Pixels: pix}
}

// blankLinear returns a zeroed row-major image shaped like img.
func blankLinear(img Image) Image {
	_, eh := img.Format.ElementExtent(img.Width, img.Height)
	out := img
	out.Pixels = make([]byte, img.RowPitch*eh)
	return out
}

// blankSwizzled returns a zeroed image shaped like img with room for its
// Morton footprint.
func blankSwizzled(img Image) Image {
	ew, eh := img.Format.ElementExtent(img.Width, img.Height)
	out := img
	out.Pixels = make([]byte, swizzledSize(img.Format, ew, eh))
	return out
}

func swizzledSize(f Format, ew, eh int) int {
	bpe := f.ElementSize()
	ew, eh = max(ew, 1), max(eh, 1)
	n := 1
	for n < ew || n < eh {
		n <<= 1
	}
	// A square power-of-two grid always covers the footprint.
	return n * n * bpe
}

// payload returns the element bytes of a row-major image without padding.
func payload(img Image) []byte {
	bpe := img.Format.ElementSize()
	ew, eh := img.Format.ElementExtent(img.Width, img.Height)
	out := make([]byte, 0, ew*eh*bpe)
	for y := range eh {
		out = append(out, img.Pixels[y*img.RowPitch:y*img.RowPitch+ew*bpe]...)
	}
	return out
}

// arrayMeta declares a 2D texture whose mip count covers a sequence of
// items images.
func arrayMeta(f Format, w, h, items int) Metadata {
	return Metadata{
		Format:    f,
		Width:     w,
		Height:    h,
		Depth:     1,
		ArraySize: 1,
		MipLevels: items,
		Dimension: gputypes.TextureDimension2D,
	}
}

func volumeMeta(f Format, w, h, d int) Metadata {
	return Metadata{
		Format:    f,
		Width:     w,
		Height:    h,
		Depth:     d,
		ArraySize: 1,
		MipLevels: 1,
		Dimension: gputypes.TextureDimension3D,
	}
}

// linearSlices returns depth numbered row-major slices. Slice z is offset so
// no two slices share the same content.
func linearSlices(tb testing.TB, f Format, w, h, depth int) []Image {
	tb.Helper()
	out := make([]Image, depth)
	for z := range out {
		out[z] = linearImage(tb, f, w, h, 0)
		for i := range out[z].Pixels {
			out[z].Pixels[i] += byte(z * 29)
		}
	}
	return out
}
