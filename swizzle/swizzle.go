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

func layoutFor(toSwizzle bool) Layout {
	if toSwizzle {
		return LayoutSwizzled
	}
	return LayoutLinear
}

// SwizzlePlane converts a single 2D image and returns the result in a newly
// allocated texture: swizzled when toSwizzle is set, row-major otherwise.
func SwizzlePlane(img Image, toSwizzle bool) (*Texture, error) {
	if err := checkFormat(img.Format); err != nil {
		return nil, err
	}
	if img.Pixels == nil {
		return nil, errors.Wrap(ErrNullBuffer, "source image")
	}
	tex, err := NewTexture2D(img.Format, img.Width, img.Height, 1, 1, layoutFor(toSwizzle))
	if err != nil {
		return nil, err
	}
	if err := Plane(img, tex.images[0], toSwizzle); err != nil {
		return nil, err
	}
	return tex, nil
}

// SwizzleArray converts a sequence of same-sized 2D images described by meta
// and returns them as the items of a newly allocated 2D array texture.
func SwizzleArray(imgs []Image, meta Metadata, toSwizzle bool) (*Texture, error) {
	if err := checkArrayHeader(imgs, meta); err != nil {
		return nil, err
	}
	tex, err := NewTexture2D(meta.Format, meta.Width, meta.Height, len(imgs), 1, layoutFor(toSwizzle))
	if err != nil {
		return nil, err
	}
	if err := Array(imgs, meta, toSwizzle, tex.images); err != nil {
		return nil, err
	}
	return tex, nil
}

// SwizzleVolume converts the slices of a volume texture described by meta
// and returns them in a newly allocated 3D texture of the given depth.
//
// When encoding, slices holds depth row-major slices and the result holds
// FoldedSlices swizzled slices. When decoding, slices must hold the folded
// swizzled slices and the result holds depth row-major slices.
func SwizzleVolume(slices []Image, depth int, meta Metadata, toSwizzle bool) (*Texture, error) {
	if err := checkVolumeHeader(slices, depth, meta); err != nil {
		return nil, err
	}
	tex, err := NewTexture3D(meta.Format, meta.Width, meta.Height, depth, layoutFor(toSwizzle))
	if err != nil {
		return nil, err
	}
	if err := Volume(slices, depth, meta, toSwizzle, tex.images); err != nil {
		return nil, err
	}
	return tex, nil
}
