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

// Tuning parameters for the parallel drivers.
const (
	// MinParallelElements is the minimum number of elements in a call
	// before work is handed to a pool.
	MinParallelElements = 64 * 64

	// RowsPerTask is the minimum number of element rows per pool task
	// when encoding.
	RowsPerTask = 16

	// IndicesPerTask is the minimum number of swizzled slots per pool task
	// when decoding.
	IndicesPerTask = 4096
)

// planeJob is one validated plane copy. The row-major side is always
// linear/pitch and the Morton side is always swz, whichever of them is the
// source.
type planeJob struct {
	bpe       int
	w, h      int // extents in elements
	linear    []byte
	pitch     int
	swz       []byte
	footprint int
	toSwizzle bool
}

// newPlaneJob validates src and dst for a copy over w x h elements.
func newPlaneJob(src, dst Image, w, h int, toSwizzle bool) (planeJob, error) {
	if src.Pixels == nil {
		return planeJob{}, errors.Wrap(ErrNullBuffer, "source image")
	}
	if dst.Pixels == nil {
		return planeJob{}, errors.Wrap(ErrNullBuffer, "destination image")
	}

	bpe := src.Format.ElementSize()
	j := planeJob{
		bpe:       bpe,
		w:         w,
		h:         h,
		footprint: int(morton.Footprint2D(w, h)),
		toSwizzle: toSwizzle,
	}
	if toSwizzle {
		j.linear, j.pitch, j.swz = src.Pixels, src.RowPitch, dst.Pixels
	} else {
		j.linear, j.pitch, j.swz = dst.Pixels, dst.RowPitch, src.Pixels
	}

	if j.pitch < w*bpe {
		return planeJob{}, errors.Wrapf(ErrInvalidArgument, "row pitch %d below %d elements of %d bytes", j.pitch, w, bpe)
	}
	if need := (h-1)*j.pitch + w*bpe; len(j.linear) < need {
		return planeJob{}, errors.Wrapf(ErrInvalidArgument, "linear buffer has %d bytes, needs %d", len(j.linear), need)
	}
	if need := j.footprint * bpe; len(j.swz) < need {
		return planeJob{}, errors.Wrapf(ErrInvalidArgument, "swizzled buffer has %d bytes, needs %d", len(j.swz), need)
	}
	return j, nil
}

// encodeRows copies rows [y0, y1) from row-major to Morton order.
func (j *planeJob) encodeRows(y0, y1 int) {
	bpe := j.bpe
	for y := y0; y < y1; y++ {
		row := j.linear[y*j.pitch:]
		for x := range j.w {
			i := int(morton.Index2D(uint32(x), uint32(y))) * bpe
			copy(j.swz[i:i+bpe], row[x*bpe:x*bpe+bpe])
		}
	}
}

// decodeRange copies swizzled slots [i0, i1) back to row-major order.
// Slots whose coordinates fall outside the extents are padding.
func (j *planeJob) decodeRange(i0, i1 int) {
	bpe := j.bpe
	for i := i0; i < i1; i++ {
		x, y := morton.Coords2D(uint32(i))
		if int(x) >= j.w || int(y) >= j.h {
			continue
		}
		off := int(y)*j.pitch + int(x)*bpe
		copy(j.linear[off:off+bpe], j.swz[i*bpe:i*bpe+bpe])
	}
}

// run executes the copy, on pool when it is worth it. A nil pool runs on the
// calling goroutine.
func (j *planeJob) run(pool *workerpool.Pool) {
	if j.w*j.h < MinParallelElements {
		pool = nil
	}
	if j.toSwizzle {
		pool.ParallelForGrain(j.h, RowsPerTask, j.encodeRows)
	} else {
		pool.ParallelForGrain(j.footprint, IndicesPerTask, j.decodeRange)
	}
}

// checkPlane validates a single plane transform and returns its job.
func checkPlane(src, dst Image, toSwizzle bool) (planeJob, error) {
	if err := checkFormat(src.Format); err != nil {
		return planeJob{}, err
	}
	if !src.sameShape(dst) {
		return planeJob{}, errors.Wrapf(ErrInvalidArgument, "destination %s %dx%d does not match source %s %dx%d",
			dst.Format, dst.Width, dst.Height, src.Format, src.Width, src.Height)
	}
	w, h := src.Format.ElementExtent(src.Width, src.Height)
	if !morton.Fits2D(w, h) {
		return planeJob{}, errors.Wrapf(ErrInvalidArgument, "image %dx%d exceeds the 2D swizzle range", src.Width, src.Height)
	}
	return newPlaneJob(src, dst, w, h, toSwizzle)
}

// Plane converts one 2D image between row-major and standard swizzle
// layout. With toSwizzle the source is row-major and the destination is
// written in Morton order; otherwise the reverse.
//
// Compressed formats are addressed in 4x4 blocks. dst must have the same
// format and size as src, and its buffer must already be large enough.
func Plane(src, dst Image, toSwizzle bool) error {
	return ParallelPlane(nil, src, dst, toSwizzle)
}

// ParallelPlane is Plane with the copy loop split across pool. Encoding is
// partitioned by row, decoding by swizzled index range; every element has a
// single writer, so the output is identical to Plane.
func ParallelPlane(pool *workerpool.Pool, src, dst Image, toSwizzle bool) error {
	j, err := checkPlane(src, dst, toSwizzle)
	if err != nil {
		return err
	}
	Logger().Debug("swizzle: plane",
		"format", src.Format.String(),
		"width", src.Width,
		"height", src.Height,
		"toSwizzle", toSwizzle,
		"workers", pool.NumWorkers(),
		"interleaver", morton.CurrentName())
	j.run(pool)
	return nil
}
