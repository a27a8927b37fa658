// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gjinverse

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// FloatPivotEpsilon is the largest pivot magnitude InvertFloat
// treats as zero.
const FloatPivotEpsilon = 1e-10

// InvertFloat inverts the n×n matrix a in place, a[r] being row r.
//
// It's Serial's elimination over float64, except that the pivot is the
// entry of largest magnitude in row k (columns >= k) for stability.
func InvertFloat(a [][]float64) error {
	n := len(a)
	for i, row := range a {
		if len(row) != n {
			return errors.Wrapf(ErrNotSquare, "row %d has %d columns, want %d", i, len(row), n)
		}
	}

	perm := make([]int, n)
	for k := 0; k < n; k++ {
		base := a[k]

		// Find the largest element in the base row.
		maxAbs := -1.
		for c := k; c < n; c++ {
			if v := math.Abs(base[c]); v > maxAbs {
				maxAbs = v
				perm[k] = c
			}
		}
		if maxAbs <= FloatPivotEpsilon {
			return errors.Wrapf(ErrSingular, "step %d: pivot %g", k, maxAbs)
		}

		col := perm[k]
		m := 1 / base[col]
		base[col] = base[k]
		base[k] = 1
		for c := range base {
			base[c] *= m
		}

		for r := 0; r < n; r++ {
			if r == k {
				continue
			}
			cur := a[r]
			m = cur[col]
			cur[col] = cur[k]
			cur[k] = 0
			for c := range cur {
				cur[c] -= base[c] * m
			}
		}
	}

	for r := n - 1; r >= 0; r-- {
		if p := perm[r]; p != r {
			a[r], a[p] = a[p], a[r]
		}
	}
	return nil
}

// FloatSource is Source over float64.
type FloatSource interface {
	Size() int
	Matrix() [][]float64
	Row(i int) []float64
}

// FloatRandom has entries uniform in [0, 1).
type FloatRandom struct {
	seed int64
	n    int
}

func NewFloatRandom(seed int64, n int) *FloatRandom {
	return &FloatRandom{seed: normSeed(seed), n: n}
}

func (s *FloatRandom) Size() int { return s.n }

func (s *FloatRandom) Matrix() [][]float64 { return buildFloat(s) }

func (s *FloatRandom) Row(r int) []float64 {
	row := make([]float64, s.n)
	rnd := rowRand(s.seed, r)
	for c := range row {
		row[c] = rnd.Float64()
	}
	return row
}

// FloatSingular is FloatRandom with the last row replaced by
// the sum of r*row[r] over the others.
type FloatSingular struct {
	rnd *FloatRandom
}

func NewFloatSingular(seed int64, n int) *FloatSingular {
	return &FloatSingular{rnd: NewFloatRandom(seed, n)}
}

func (s *FloatSingular) Size() int { return s.rnd.n }

func (s *FloatSingular) Matrix() [][]float64 {
	n := s.rnd.n
	a := make([][]float64, n)
	if n == 0 {
		return a
	}
	last := make([]float64, n)
	for r := 0; r < n-1; r++ {
		a[r] = s.rnd.Row(r)
		for j, v := range a[r] {
			last[j] += v * float64(r)
		}
	}
	a[n-1] = last
	return a
}

func (s *FloatSingular) Row(i int) []float64 {
	n := s.rnd.n
	if i != n-1 {
		return s.rnd.Row(i)
	}
	last := make([]float64, n)
	for r := 0; r < n-1; r++ {
		for j, v := range s.rnd.Row(r) {
			last[j] += v * float64(r)
		}
	}
	return last
}

// FloatPermutation is a permutation matrix over float64.
type FloatPermutation struct {
	n    int
	perm []int
}

func NewFloatPermutation(seed int64, n int) *FloatPermutation {
	return &FloatPermutation{n: n, perm: shuffle(normSeed(seed), n)}
}

func (s *FloatPermutation) Size() int { return s.n }

func (s *FloatPermutation) Matrix() [][]float64 { return buildFloat(s) }

func (s *FloatPermutation) Row(r int) []float64 {
	row := make([]float64, s.n)
	row[s.perm[r]] = 1
	return row
}

func buildFloat(s FloatSource) [][]float64 {
	a := make([][]float64, s.Size())
	for r := range a {
		a[r] = s.Row(r)
	}
	return a
}

// CheckFloat returns max |src*inv - I| over all entries.
// Rows are checked by up to par goroutines (runtime.NumCPU() if par <= 0).
func CheckFloat(ctx context.Context, src FloatSource, inv [][]float64, par int) (float64, error) {
	n := src.Size()
	if len(inv) != n {
		return 0, errors.Wrapf(ErrNotSquare, "inverse has %d rows, source has %d", len(inv), n)
	}
	errs := make([]float64, n)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(parallelism(par))
	for r := 0; r < n; r++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return interrupted(err)
			}
			row := src.Row(r)
			maxErr := 0.
			for c := 0; c < n; c++ {
				sum := 0.
				for k, v := range row {
					sum += v * inv[k][c]
				}
				if c == r {
					sum -= 1
				}
				maxErr = math.Max(maxErr, math.Abs(sum))
			}
			errs[r] = maxErr
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	res := 0.
	for _, e := range errs {
		res = math.Max(res, e)
	}
	return res, nil
}
