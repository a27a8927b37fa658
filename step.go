// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gjinverse

import "github.com/pkg/errors"

// elim is the state of one in-place inversion.
//
// Pivoting searches within the fixed row k (column pivoting), so every
// step's pivot row is known in advance: step k always reads row k.
type elim struct {
	g    *gmu
	a    [][]Element
	n    int
	perm []int // perm[k]: column chosen as pivot at step k.
}

func newElim(g *gmu, m *Matrix) *elim {
	n := m.N()
	return &elim{g: g, a: m.rows, n: n, perm: make([]int, n)}
}

// pivot normalizes row k into the pivot row of step k.
func (e *elim) pivot(k int) error {
	row := e.a[k]

	// Find a non-zero element in the base row.
	col := k
	for c := k; c < e.n; c++ {
		if row[c] != Zero {
			col = c
			break
		}
	}
	e.perm[k] = col

	m, err := e.g.f.Rev(row[col])
	if err != nil {
		return errors.Wrapf(ErrSingular, "step %d: no pivot in row %d", k, k)
	}
	row[col] = row[k]
	row[k] = One
	e.g.mulVect(m, row)
	return nil
}

// update eliminates column perm[k] from row r using pivot row k.
func (e *elim) update(r, k int) {
	cur := e.a[r]
	col := e.perm[k]
	m := cur[col]
	cur[col] = cur[k]
	cur[k] = Zero
	if m != Zero {
		e.g.mulVectXOR(m, e.a[k], cur)
	}
}

// permute applies perm to the rows, turning the reduced matrix
// into the inverse.
func (e *elim) permute() {
	for r := e.n - 1; r >= 0; r-- {
		if p := e.perm[r]; p != r {
			e.a[r], e.a[p] = e.a[p], e.a[r]
		}
	}
}

// recovered converts a recovered panic value into a worker failure.
// The stack is kept in the error (print with %+v).
func recovered(p interface{}) error {
	return errors.Wrapf(ErrWorkerFailure, "panic: %v", p)
}

func interrupted(err error) error {
	return errors.Wrap(ErrInterrupted, err.Error())
}
