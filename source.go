// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gjinverse

import "math/rand"

// Source produces a test matrix and can regenerate any of its rows
// on its own, which is what the verifier needs after the matrix
// has been inverted in place.
type Source interface {
	Size() int
	// Matrix returns a newly built matrix.
	Matrix() *Matrix
	// Row returns a new copy of row i, the same every time.
	Row(i int) []Element
}

// normSeed maps any seed to a positive one.
func normSeed(seed int64) int64 {
	if seed < 0 {
		seed = -seed
	}
	return seed + 1
}

func rowRand(seed int64, r int) *rand.Rand {
	return rand.New(rand.NewSource(seed + int64(r)))
}

// Random is a matrix of uniformly random field elements.
type Random struct {
	f    Field
	seed int64
	n    int
}

func NewRandom(f Field, seed int64, n int) *Random {
	return &Random{f: f, seed: normSeed(seed), n: n}
}

func (s *Random) Size() int { return s.n }

func (s *Random) Matrix() *Matrix {
	return buildMatrix(s)
}

func (s *Random) Row(r int) []Element {
	row := make([]Element, s.n)
	rnd := rowRand(s.seed, r)
	mask := Element(s.f.Cardinality() - 1)
	for c := range row {
		row[c] = Element(rnd.Uint64()) & mask
	}
	return row
}

// Singular is a random matrix whose last row is
// the sum of r*row[r] over the others.
type Singular struct {
	rnd *Random
}

func NewSingular(f Field, seed int64, n int) *Singular {
	return &Singular{rnd: NewRandom(f, seed, n)}
}

func (s *Singular) Size() int { return s.rnd.n }

func (s *Singular) Matrix() *Matrix {
	n := s.rnd.n
	m := &Matrix{rows: make([][]Element, n)}
	if n == 0 {
		return m
	}
	last := make([]Element, n)
	for r := 0; r < n-1; r++ {
		m.rows[r] = s.rnd.Row(r)
		s.accumulate(last, m.rows[r], r)
	}
	m.rows[n-1] = last
	return m
}

func (s *Singular) Row(i int) []Element {
	n := s.rnd.n
	if i != n-1 {
		return s.rnd.Row(i)
	}
	last := make([]Element, n)
	for r := 0; r < n-1; r++ {
		s.accumulate(last, s.rnd.Row(r), r)
	}
	return last
}

func (s *Singular) accumulate(last, row []Element, r int) {
	f := s.rnd.f
	for j, v := range row {
		last[j] ^= f.Mul(v, Element(r))
	}
}

// Permutation is a random permutation matrix, its inverse is
// its transpose.
type Permutation struct {
	n    int
	perm []int // Row r has its One at column perm[r].
}

func NewPermutation(seed int64, n int) *Permutation {
	return &Permutation{n: n, perm: shuffle(normSeed(seed), n)}
}

func shuffle(seed int64, n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	rnd := rand.New(rand.NewSource(seed))
	for i := 1; i < n; i++ {
		j := rnd.Intn(i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

func (s *Permutation) Size() int { return s.n }

func (s *Permutation) Matrix() *Matrix {
	return buildMatrix(s)
}

func (s *Permutation) Row(r int) []Element {
	row := make([]Element, s.n)
	row[s.perm[r]] = One
	return row
}

func buildMatrix(s Source) *Matrix {
	rows := make([][]Element, s.Size())
	for r := range rows {
		rows[r] = s.Row(r)
	}
	return &Matrix{rows: rows}
}
