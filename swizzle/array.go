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

// checkArrayHeader validates everything about an array call that does not
// depend on the destination.
func checkArrayHeader(srcs []Image, meta Metadata) error {
	if len(srcs) == 0 {
		return errors.Wrap(ErrInvalidArgument, "empty image sequence")
	}
	if len(srcs) > meta.MipLevels {
		return errors.Wrapf(ErrInvalidArgument, "%d images for a texture declaring %d mip levels", len(srcs), meta.MipLevels)
	}
	if !meta.Format.IsValid() {
		return errors.Wrapf(ErrInvalidFormat, "format %s", meta.Format)
	}
	if meta.IsVolume() {
		return errors.Wrap(ErrUnsupportedFormat, "volume texture passed to the array driver")
	}
	if err := checkFormat(meta.Format); err != nil {
		return err
	}
	if !meta.matches(srcs[0]) {
		return errors.Wrapf(ErrShapeMismatch, "base image %s %dx%d, metadata %s %dx%d",
			srcs[0].Format, srcs[0].Width, srcs[0].Height, meta.Format, meta.Width, meta.Height)
	}
	w, h := meta.Format.ElementExtent(meta.Width, meta.Height)
	if !morton.Fits2D(w, h) {
		return errors.Wrapf(ErrInvalidArgument, "image %dx%d exceeds the 2D swizzle range", meta.Width, meta.Height)
	}
	return nil
}

// Array converts a sequence of same-sized 2D images between row-major and
// standard swizzle layout. The sequence may not be longer than
// meta.MipLevels. dsts must hold one image per source with the same format
// and size.
//
// Entries are processed in index order. On failure the error of the first
// failing entry is returned, wrapped with its index; every entry before it
// has been fully converted.
func Array(srcs []Image, meta Metadata, toSwizzle bool, dsts []Image) error {
	return ParallelArray(nil, srcs, meta, toSwizzle, dsts)
}

// ParallelArray is Array with the work split across pool: the copy loop of
// each large image, or whole images when they are small. Validation still
// runs in index order, so a failing entry leaves the same result as Array.
func ParallelArray(pool *workerpool.Pool, srcs []Image, meta Metadata, toSwizzle bool, dsts []Image) error {
	if err := checkArrayHeader(srcs, meta); err != nil {
		return err
	}
	if len(dsts) < len(srcs) {
		return errors.Wrapf(ErrInvalidArgument, "%d destination images for %d sources", len(dsts), len(srcs))
	}

	Logger().Debug("swizzle: array",
		"format", meta.Format.String(),
		"width", meta.Width,
		"height", meta.Height,
		"images", len(srcs),
		"toSwizzle", toSwizzle,
		"workers", pool.NumWorkers())

	w, h := meta.Format.ElementExtent(meta.Width, meta.Height)
	jobs := make([]planeJob, 0, len(srcs))
	var failed error
	for i, src := range srcs {
		j, err := arrayEntry(src, dsts[i], meta, w, h, toSwizzle)
		if err != nil {
			failed = errors.WithMessagef(err, "image %d", i)
			break
		}
		jobs = append(jobs, j)
	}
	runArray(pool, jobs, w*h)
	return failed
}

// runArray converts every job. Large images split their own copy loop;
// small ones are spread across the pool a whole image at a time.
func runArray(pool *workerpool.Pool, jobs []planeJob, elements int) {
	if elements >= MinParallelElements || len(jobs) < 2 {
		for i := range jobs {
			jobs[i].run(pool)
		}
		return
	}
	if elements*len(jobs) < MinParallelElements {
		pool = nil
	}
	pool.ParallelFor(len(jobs), func(start, end int) {
		for i := start; i < end; i++ {
			jobs[i].run(nil)
		}
	})
}

func arrayEntry(src, dst Image, meta Metadata, w, h int, toSwizzle bool) (planeJob, error) {
	if !meta.matches(src) {
		return planeJob{}, errors.Wrapf(ErrShapeMismatch, "image %s %dx%d, metadata %s %dx%d",
			src.Format, src.Width, src.Height, meta.Format, meta.Width, meta.Height)
	}
	if !src.sameShape(dst) {
		return planeJob{}, errors.Wrapf(ErrInvalidArgument, "destination %s %dx%d does not match source",
			dst.Format, dst.Width, dst.Height)
	}
	return newPlaneJob(src, dst, w, h, toSwizzle)
}
