// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gjinverse

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Matrix is an n×n matrix of field elements.
//
// Rows are allocated independently: during elimination a row is
// written by exactly one task at a time and the final permutation
// swaps row slices instead of copying them.
type Matrix struct {
	rows [][]Element
}

// NewMatrix returns an n×n zero matrix.
func NewMatrix(n int) *Matrix {
	rows := make([][]Element, n)
	for i := range rows {
		rows[i] = make([]Element, n)
	}
	return &Matrix{rows: rows}
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n)
	for i := 0; i < n; i++ {
		m.rows[i][i] = One
	}
	return m
}

// FromRows wraps rows (without copying) as a matrix.
func FromRows(rows [][]Element) (*Matrix, error) {
	for i, row := range rows {
		if len(row) != len(rows) {
			return nil, errors.Wrapf(ErrNotSquare, "row %d has %d columns, want %d", i, len(row), len(rows))
		}
	}
	return &Matrix{rows: rows}, nil
}

// N returns the matrix dimension.
func (m *Matrix) N() int { return len(m.rows) }

// Row returns row i. The slice is shared with m.
func (m *Matrix) Row(i int) []Element { return m.rows[i] }

// Rows returns all rows, shared with m.
func (m *Matrix) Rows() [][]Element { return m.rows }

func (m *Matrix) At(r, c int) Element { return m.rows[r][c] }

func (m *Matrix) Set(r, c int, v Element) { m.rows[r][c] = v }

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	c := NewMatrix(m.N())
	for i, row := range m.rows {
		copy(c.rows[i], row)
	}
	return c
}

// Equal reports whether m and o hold the same elements.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.N() != o.N() {
		return false
	}
	for i, row := range m.rows {
		or := o.rows[i]
		for j := range row {
			if row[j] != or[j] {
				return false
			}
		}
	}
	return true
}

// Transpose returns a new matrix, the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	n := m.N()
	t := NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			t.rows[j][i] = m.rows[i][j]
		}
	}
	return t
}

// Mul returns m*o over f.
func (m *Matrix) Mul(f Field, o *Matrix) *Matrix {
	g := newGMU(f, getCPUFeature())
	n := m.N()
	res := NewMatrix(n)
	for r := 0; r < n; r++ {
		g.mulRow(m.rows[r], o, res.rows[r])
	}
	return res
}

func (m *Matrix) String() string {
	rowOut := make([]string, 0, len(m.rows))
	for _, row := range m.rows {
		colOut := make([]string, 0, len(row))
		for _, col := range row {
			colOut = append(colOut, strconv.FormatUint(uint64(col), 10))
		}
		rowOut = append(rowOut, "["+strings.Join(colOut, ", ")+"]")
	}
	return "[" + strings.Join(rowOut, ", ") + "]"
}
