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

package main

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// outputPath returns where the result for input is written. An explicit
// output is only accepted together with a single input.
func outputPath(input, output, ext string, inputs int) (string, error) {
	if output == "" {
		return input + ext, nil
	}
	if inputs != 1 {
		return "", errors.Errorf("-o given with %d inputs, it needs exactly one", inputs)
	}
	return output, nil
}

// forEachInput runs convert for every input concurrently and stops at the
// first failure.
func forEachInput(ctx context.Context, inputs []string, output, ext string,
	convert func(in, out string) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, in := range inputs {
		out, err := outputPath(in, output, ext, len(inputs))
		if err != nil {
			return err
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := convert(in, out); err != nil {
				return errors.WithMessagef(err, "%s", in)
			}
			slog.Info("wrote", "input", in, "output", out)
			return nil
		})
	}
	return g.Wait()
}
