// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gjinverse

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Check reports whether inv is the inverse of the matrix of src:
// every source row times inv must be the matching identity row.
// Rows are checked by up to par goroutines (runtime.NumCPU() if par <= 0).
func Check(ctx context.Context, f Field, src Source, inv *Matrix, par int) (bool, error) {
	n := src.Size()
	if inv.N() != n {
		return false, errors.Wrapf(ErrNotSquare, "inverse is %dx%d, source is %dx%d", inv.N(), inv.N(), n, n)
	}
	g := newGMU(f, getCPUFeature())
	status := make([]bool, n)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(parallelism(par))
	for r := 0; r < n; r++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return interrupted(err)
			}
			out := make([]Element, n)
			g.mulRow(src.Row(r), inv, out)
			out[r] ^= One
			for _, v := range out {
				if v != Zero {
					return nil
				}
			}
			status[r] = true
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return false, err
	}

	for _, ok := range status {
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func parallelism(par int) int {
	if par <= 0 {
		return runtime.NumCPU()
	}
	return par
}
