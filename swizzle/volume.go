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
	"github.com/pkg/errors"

	"github.com/ajroetker/go-swizzle/swizzle/contrib/workerpool"
	"github.com/ajroetker/go-swizzle/swizzle/morton"
)

// FoldedSlices returns how many swizzled planes a volume of w x h x depth
// elements occupies. Every plane holds w*h Morton slots and the 3D index
// space is cut into consecutive planes, so the count equals depth only when
// the volume is Morton-closed. Returns 0 when the extents do not fit.
func FoldedSlices(w, h, depth int) int {
	f := morton.Footprint3D(w, h, depth)
	if f == 0 {
		return 0
	}
	p := uint64(w) * uint64(h)
	return int((f + p - 1) / p)
}

// volumeJob is one validated volume copy. linear holds the depth row-major
// slices and swz the folded Morton planes, whichever side is the source.
type volumeJob struct {
	bpe       int
	w, h      int
	depth     int
	plane     int // Morton slots per swizzled plane
	footprint int
	linear    [][]byte
	pitches   []int
	swz       [][]byte
	toSwizzle bool
}

// encodeRows copies row-major rows [r0, r1), numbered z*h+y across the
// whole volume, into their folded planes.
func (j *volumeJob) encodeRows(r0, r1 int) {
	bpe := j.bpe
	for r := r0; r < r1; r++ {
		z, y := r/j.h, r%j.h
		row := j.linear[z][y*j.pitches[z]:]
		for x := range j.w {
			m := int(morton.Index3D(uint32(x), uint32(y), uint32(z)))
			off := (m % j.plane) * bpe
			copy(j.swz[m/j.plane][off:off+bpe], row[x*bpe:x*bpe+bpe])
		}
	}
}

// decodeRange copies Morton indices [m0, m1) back to their row-major slice.
// Index m lives in swizzled plane m/plane at slot m%plane.
func (j *volumeJob) decodeRange(m0, m1 int) {
	bpe := j.bpe
	for m := m0; m < m1; m++ {
		x, y, z := morton.Coords3D(uint32(m))
		if int(x) >= j.w || int(y) >= j.h || int(z) >= j.depth {
			continue
		}
		src := (m % j.plane) * bpe
		dst := int(y)*j.pitches[z] + int(x)*bpe
		copy(j.linear[z][dst:dst+bpe], j.swz[m/j.plane][src:src+bpe])
	}
}

func (j *volumeJob) run(pool *workerpool.Pool) {
	if j.w*j.h*j.depth < MinParallelElements {
		pool = nil
	}
	if j.toSwizzle {
		pool.ParallelForGrain(j.depth*j.h, RowsPerTask, j.encodeRows)
	} else {
		pool.ParallelForGrain(j.footprint, IndicesPerTask, j.decodeRange)
	}
}

// checkVolumeHeader validates everything about a volume call that does not
// depend on the destination.
func checkVolumeHeader(srcs []Image, depth int, meta Metadata) error {
	if len(srcs) == 0 || depth <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "%d slices with depth %d", len(srcs), depth)
	}
	if !meta.Format.IsValid() {
		return errors.Wrapf(ErrInvalidFormat, "format %s", meta.Format)
	}
	if !meta.IsVolume() {
		return errors.Wrap(ErrUnsupportedFormat, "non-volume texture passed to the volume driver")
	}
	if err := checkFormat(meta.Format); err != nil {
		return err
	}
	if depth > meta.Depth {
		return errors.Wrapf(ErrInvalidArgument, "depth %d exceeds declared depth %d", depth, meta.Depth)
	}
	if !meta.matches(srcs[0]) {
		return errors.Wrapf(ErrShapeMismatch, "base slice %s %dx%d, metadata %s %dx%d",
			srcs[0].Format, srcs[0].Width, srcs[0].Height, meta.Format, meta.Width, meta.Height)
	}
	w, h := meta.Format.ElementExtent(meta.Width, meta.Height)
	if !morton.Fits3D(w, h, depth) {
		return errors.Wrapf(ErrInvalidArgument, "volume %dx%dx%d exceeds the 3D swizzle range",
			meta.Width, meta.Height, depth)
	}
	return nil
}

func checkVolume(srcs []Image, depth int, meta Metadata, toSwizzle bool, dsts []Image) (volumeJob, error) {
	if err := checkVolumeHeader(srcs, depth, meta); err != nil {
		return volumeJob{}, err
	}

	w, h := meta.Format.ElementExtent(meta.Width, meta.Height)

	j := volumeJob{
		bpe:       meta.Format.ElementSize(),
		w:         w,
		h:         h,
		depth:     depth,
		plane:     w * h,
		footprint: int(morton.Footprint3D(w, h, depth)),
		toSwizzle: toSwizzle,
	}
	folded := FoldedSlices(w, h, depth)

	linear, swz := srcs, dsts
	nSrc, nDst := depth, folded
	if !toSwizzle {
		linear, swz = dsts, srcs
		nSrc, nDst = folded, depth
	}
	if len(srcs) < nSrc {
		return volumeJob{}, errors.Wrapf(ErrInvalidArgument, "%d source slices, need %d", len(srcs), nSrc)
	}
	if len(dsts) < nDst {
		return volumeJob{}, errors.Wrapf(ErrInvalidArgument, "%d destination slices, need %d", len(dsts), nDst)
	}

	for z := range nSrc {
		if !meta.matches(srcs[z]) {
			return volumeJob{}, errors.Wrapf(ErrShapeMismatch, "source slice %d is %s %dx%d", z,
				srcs[z].Format, srcs[z].Width, srcs[z].Height)
		}
		if srcs[z].Pixels == nil {
			return volumeJob{}, errors.Wrapf(ErrNullBuffer, "source slice %d", z)
		}
	}
	for z := range nDst {
		if !meta.matches(dsts[z]) {
			return volumeJob{}, errors.Wrapf(ErrInvalidArgument, "destination slice %d is %s %dx%d", z,
				dsts[z].Format, dsts[z].Width, dsts[z].Height)
		}
		if dsts[z].Pixels == nil {
			return volumeJob{}, errors.Wrapf(ErrNullBuffer, "destination slice %d", z)
		}
	}

	j.linear = make([][]byte, depth)
	j.pitches = make([]int, depth)
	for z := range depth {
		img := linear[z]
		if img.RowPitch < w*j.bpe {
			return volumeJob{}, errors.Wrapf(ErrInvalidArgument, "slice %d row pitch %d below %d elements of %d bytes",
				z, img.RowPitch, w, j.bpe)
		}
		if need := (h-1)*img.RowPitch + w*j.bpe; len(img.Pixels) < need {
			return volumeJob{}, errors.Wrapf(ErrInvalidArgument, "linear slice %d has %d bytes, needs %d", z, len(img.Pixels), need)
		}
		j.linear[z] = img.Pixels
		j.pitches[z] = img.RowPitch
	}
	j.swz = make([][]byte, folded)
	for z := range folded {
		need := min(j.plane, j.footprint-z*j.plane) * j.bpe
		if len(swz[z].Pixels) < need {
			return volumeJob{}, errors.Wrapf(ErrInvalidArgument, "swizzled slice %d has %d bytes, needs %d", z, len(swz[z].Pixels), need)
		}
		j.swz[z] = swz[z].Pixels
	}
	return j, nil
}

// Volume converts the depth slices of a 3D texture between row-major and
// standard swizzle layout.
//
// The 3D Morton index of each texel is computed over (x, y, z) and then cut
// into planes of width*height slots: the texel lands in swizzled slice
// index/(width*height) at slot index%(width*height). A swizzled slice
// therefore mixes texels from several row-major slices.
//
// When encoding, srcs holds depth row-major slices and dsts must hold
// FoldedSlices slices. When decoding the roles swap. All slices share the
// declared format and size.
func Volume(srcs []Image, depth int, meta Metadata, toSwizzle bool, dsts []Image) error {
	return ParallelVolume(nil, srcs, depth, meta, toSwizzle, dsts)
}

// ParallelVolume is Volume with the copy loop split across pool. Encoding is
// partitioned by source row, decoding by Morton index range. Two workers may
// write into the same destination slice, but never to the same bytes.
func ParallelVolume(pool *workerpool.Pool, srcs []Image, depth int, meta Metadata, toSwizzle bool, dsts []Image) error {
	j, err := checkVolume(srcs, depth, meta, toSwizzle, dsts)
	if err != nil {
		return err
	}
	Logger().Debug("swizzle: volume",
		"format", meta.Format.String(),
		"width", meta.Width,
		"height", meta.Height,
		"depth", depth,
		"folded", len(j.swz),
		"toSwizzle", toSwizzle,
		"workers", pool.NumWorkers())
	j.run(pool)
	return nil
}
