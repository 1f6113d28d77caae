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
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-swizzle/swizzle/contrib/workerpool"
	"github.com/ajroetker/go-swizzle/swizzle/morton"
)

func TestVolumeFold(t *testing.T) {
	const n = 4
	f := FormatR8Unorm
	meta := volumeMeta(f, n, n, n)

	srcs := make([]Image, n)
	for z := range srcs {
		srcs[z] = Image{Format: f, Width: n, Height: n, RowPitch: n, Pixels: make([]byte, n*n)}
		for i := range srcs[z].Pixels {
			srcs[z].Pixels[i] = byte(1 + z*n*n + i)
		}
	}
	require.Equal(t, n, FoldedSlices(n, n, n))

	dsts := make([]Image, n)
	for z := range dsts {
		dsts[z] = Image{Format: f, Width: n, Height: n, RowPitch: n, Pixels: make([]byte, n*n)}
	}
	require.NoError(t, Volume(srcs, n, meta, true, dsts))

	// Every source byte is non-zero, so counting non-zero bytes counts writes.
	var all []byte
	for z, d := range dsts {
		written := 0
		for _, v := range d.Pixels {
			if v != 0 {
				written++
			}
		}
		assert.Equal(t, n*n, written, "destination slice %d", z)
		all = append(all, d.Pixels...)
	}
	slices.Sort(all)
	for i, v := range all {
		require.Equal(t, byte(i+1), v, "volume encode is not a permutation")
	}

	for z := range n {
		for y := range n {
			for x := range n {
				m := int(morton.Index3D(uint32(x), uint32(y), uint32(z)))
				got := dsts[m/(n*n)].Pixels[m%(n*n)]
				assert.Equal(t, srcs[z].Pixels[y*n+x], got, "texel (%d, %d, %d)", x, y, z)
			}
		}
	}
}

func TestVolumeSlicesMix(t *testing.T) {
	// Swizzled slice 0 of a 4x4x4 volume takes texels from source slices 0
	// and 1.
	const n = 4
	f := FormatR8Unorm
	meta := volumeMeta(f, n, n, n)
	srcs := make([]Image, n)
	for z := range srcs {
		srcs[z] = Image{Format: f, Width: n, Height: n, RowPitch: n, Pixels: slices.Repeat([]byte{byte(z + 1)}, n*n)}
	}
	tex, err := SwizzleVolume(srcs, n, meta, true)
	require.NoError(t, err)

	first, ok := tex.Slice(0)
	require.True(t, ok)
	origins := map[byte]bool{}
	for _, v := range first.Pixels {
		origins[v] = true
	}
	assert.Equal(t, map[byte]bool{1: true, 2: true}, origins)
}

func TestVolumeRoundTrip(t *testing.T) {
	tests := []struct {
		format  Format
		w, h, d int
	}{
		{FormatR8Unorm, 4, 4, 4},
		{FormatR8Unorm, 8, 8, 2},
		{FormatR8G8B8A8Unorm, 5, 3, 7},
		{FormatR8G8B8A8Unorm, 16, 16, 16},
		{FormatR16Float, 1, 1, 1},
		{FormatR32G32Float, 2, 4, 3},
		{FormatBC1Unorm, 10, 9, 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%dx%dx%d", tt.format, tt.w, tt.h, tt.d), func(t *testing.T) {
			meta := volumeMeta(tt.format, tt.w, tt.h, tt.d)
			srcs := linearSlices(t, tt.format, tt.w, tt.h, tt.d)

			swz, err := SwizzleVolume(srcs, tt.d, meta, true)
			require.NoError(t, err)
			ew, eh := tt.format.ElementExtent(tt.w, tt.h)
			require.Equal(t, FoldedSlices(ew, eh, tt.d), swz.ImageCount())
			assert.Equal(t, tt.d, swz.Metadata().Depth)

			lin, err := SwizzleVolume(swz.Images(), tt.d, meta, false)
			require.NoError(t, err)
			require.Equal(t, tt.d, lin.ImageCount())
			for z := range tt.d {
				if diff := cmp.Diff(payload(srcs[z]), payload(lin.Images()[z])); diff != "" {
					t.Errorf("slice %d mismatch (-want +got):\n%s", z, diff)
				}
			}
		})
	}
}

func TestVolumePartialDepth(t *testing.T) {
	f := FormatR8Unorm
	meta := volumeMeta(f, 4, 4, 8)
	srcs := linearSlices(t, f, 4, 4, 8)

	swz, err := SwizzleVolume(srcs, 4, meta, true)
	require.NoError(t, err)
	require.Equal(t, 4, swz.ImageCount())

	lin, err := SwizzleVolume(swz.Images(), 4, meta, false)
	require.NoError(t, err)
	for z := range 4 {
		assert.Equal(t, payload(srcs[z]), payload(lin.Images()[z]), "slice %d", z)
	}
}

func TestVolumeRejects(t *testing.T) {
	const n = 4
	f := FormatR8Unorm
	meta := volumeMeta(f, n, n, n)
	srcs := linearSlices(t, f, n, n, n)

	dsts := func(k int) []Image {
		out := make([]Image, k)
		for i := range out {
			out[i] = blankLinear(srcs[0])
		}
		return out
	}

	flat := arrayMeta(f, n, n, n)
	nilSlice := slices.Clone(srcs)
	nilSlice[2].Pixels = nil
	nilDst := dsts(n)
	nilDst[3].Pixels = nil
	badSlice := slices.Clone(srcs)
	badSlice[1] = linearImage(t, f, n, n+1, 0)
	wrongDst := dsts(n)
	wrongDst[0] = blankLinear(linearImage(t, f, n+1, n, 0))

	tests := []struct {
		name  string
		srcs  []Image
		depth int
		meta  Metadata
		dsts  []Image
		want  error
	}{
		{"empty", nil, n, meta, dsts(n), ErrInvalidArgument},
		{"zero depth", srcs, 0, meta, dsts(n), ErrInvalidArgument},
		{"not a volume", srcs, n, flat, dsts(n), ErrUnsupportedFormat},
		{"invalid format", srcs, n, volumeMeta(FormatUnknown, n, n, n), dsts(n), ErrInvalidFormat},
		{"palettized", srcs, n, volumeMeta(FormatP8, n, n, n), dsts(n), ErrUnsupportedFormat},
		{"depth beyond metadata", srcs, n + 1, meta, dsts(n + 1), ErrInvalidArgument},
		{"base mismatch", srcs, n, volumeMeta(f, n*2, n, n), dsts(n), ErrShapeMismatch},
		{"later slice mismatch", badSlice, n, meta, dsts(n), ErrShapeMismatch},
		{"too few sources", srcs[:2], n, meta, dsts(n), ErrInvalidArgument},
		{"too few destinations", srcs, n, meta, dsts(n - 1), ErrInvalidArgument},
		{"destination shape", srcs, n, meta, wrongDst, ErrInvalidArgument},
		{"nil source slice", nilSlice, n, meta, dsts(n), ErrNullBuffer},
		{"nil destination slice", srcs, n, meta, nilDst, ErrNullBuffer},
		{"too deep", srcs, morton.MaxDimZ3D + 1, volumeMeta(f, n, n, morton.MaxDimZ3D+1), dsts(n), ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Volume(tt.srcs, tt.depth, tt.meta, true, tt.dsts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParallelVolumeMatchesVolume(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	for _, sz := range [][3]int{{64, 64, 8}, {40, 24, 6}} {
		t.Run(fmt.Sprintf("%dx%dx%d", sz[0], sz[1], sz[2]), func(t *testing.T) {
			f := FormatR8G8B8A8Unorm
			meta := volumeMeta(f, sz[0], sz[1], sz[2])
			srcs := linearSlices(t, f, sz[0], sz[1], sz[2])

			seq, err := NewTexture3D(f, sz[0], sz[1], sz[2], LayoutSwizzled)
			require.NoError(t, err)
			par, err := NewTexture3D(f, sz[0], sz[1], sz[2], LayoutSwizzled)
			require.NoError(t, err)

			require.NoError(t, Volume(srcs, sz[2], meta, true, seq.Images()))
			require.NoError(t, ParallelVolume(pool, srcs, sz[2], meta, true, par.Images()))
			require.Equal(t, seq.Pixels(), par.Pixels())

			back, err := NewTexture3D(f, sz[0], sz[1], sz[2], LayoutLinear)
			require.NoError(t, err)
			require.NoError(t, ParallelVolume(pool, par.Images(), sz[2], meta, false, back.Images()))
			for z := range sz[2] {
				require.Equal(t, payload(srcs[z]), payload(back.Images()[z]), "slice %d", z)
			}
		})
	}
}
