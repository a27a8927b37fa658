// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gjinverse

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixInverse(t *testing.T) {
	testCases := []struct {
		matrixData     [][]Element
		expectedResult string
		expectedErr    error
	}{
		// Test case validating inverse of the input matrix.
		{
			[][]Element{
				{56, 23, 98},
				{3, 100, 200},
				{45, 201, 123},
			},
			"[[175, 133, 33], [130, 13, 245], [112, 35, 126]]",
			nil,
		},
		// Test case matrix[0][0] == 0
		{
			[][]Element{
				{0, 23, 98},
				{3, 100, 200},
				{45, 201, 123},
			},
			"[[245, 128, 152], [188, 64, 135], [231, 81, 239]]",
			nil,
		},
		{
			[][]Element{
				{1, 0, 0, 0, 0},
				{0, 1, 0, 0, 0},
				{0, 0, 0, 1, 0},
				{0, 0, 0, 0, 1},
				{7, 7, 6, 6, 1},
			},
			"[[1, 0, 0, 0, 0]," +
				" [0, 1, 0, 0, 0]," +
				" [123, 123, 1, 122, 122]," +
				" [0, 0, 1, 0, 0]," +
				" [0, 0, 0, 1, 0]]",
			nil,
		},
		// Test case with singular matrix.
		{
			[][]Element{
				{4, 2},
				{12, 6},
			},
			"",
			ErrSingular,
		},
	}

	for _, threads := range []int{0, 1, 2, 4} {
		for _, nowait := range []bool{false, true} {
			if threads == 0 && nowait {
				continue
			}
			for _, feat := range testFeats {
				inv := New(Config{Field: gf8, Threads: threads, NoWait: nowait, feat: feat})
				for i, tc := range testCases {
					rows := make([][]Element, len(tc.matrixData))
					for r, row := range tc.matrixData {
						rows[r] = append([]Element(nil), row...)
					}
					m, err := FromRows(rows)
					require.NoError(t, err)

					err = inv.Invert(context.Background(), m)
					if tc.expectedErr != nil {
						if !errors.Is(err, tc.expectedErr) {
							t.Errorf("Test %d (%s, %s): expected error %q, got %v",
								i+1, inv.Name(), featToStr(feat), tc.expectedErr, err)
						}
						continue
					}
					if err != nil {
						t.Errorf("Test %d (%s, %s): expected to pass, but failed with: %s",
							i+1, inv.Name(), featToStr(feat), err)
						continue
					}
					if tc.expectedResult != m.String() {
						t.Errorf("Test %d (%s, %s): the inverse matrix doesn't match the expected result: %s",
							i+1, inv.Name(), featToStr(feat), m)
					}
				}
			}
		}
	}
}

func TestFromRows(t *testing.T) {
	_, err := FromRows([][]Element{{1, 2}, {3}})
	require.ErrorIs(t, err, ErrNotSquare)

	m, err := FromRows(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.N())
	assert.Equal(t, "[]", m.String())
}

func TestMatrixBasics(t *testing.T) {
	m := NewMatrix(2)
	m.Set(0, 1, 5)
	assert.Equal(t, Element(5), m.At(0, 1))
	assert.Equal(t, "[[0, 5], [0, 0]]", m.String())
	assert.Equal(t, "[[0, 0], [5, 0]]", m.Transpose().String())

	c := m.Clone()
	require.True(t, c.Equal(m))
	c.Set(1, 1, 1)
	assert.False(t, c.Equal(m))
	assert.False(t, m.Equal(NewMatrix(3)))

	assert.Equal(t, "[[1, 0], [0, 1]]", Identity(2).String())
	assert.Same(t, &m.Rows()[1][0], &m.Row(1)[0])
}

func TestMatrixMul(t *testing.T) {
	a := NewRandom(GF32, 3, 9).Matrix()
	assert.True(t, a.Mul(GF32, Identity(9)).Equal(a))
	assert.True(t, Identity(9).Mul(GF32, a).Equal(a))

	m, err := FromRows([][]Element{{56, 23, 98}, {3, 100, 200}, {45, 201, 123}})
	require.NoError(t, err)
	inv, err := FromRows([][]Element{{175, 133, 33}, {130, 13, 245}, {112, 35, 126}})
	require.NoError(t, err)
	assert.True(t, m.Mul(gf8, inv).Equal(Identity(3)))
}

func BenchmarkInvert(b *testing.B) {
	for _, threads := range []int{0, 4} {
		for _, nowait := range []bool{false, true} {
			if threads == 0 && nowait {
				continue
			}
			inv := New(Config{Threads: threads, NoWait: nowait})
			b.Run(inv.Name(), func(b *testing.B) {
				benchmarkInvert(b, inv, 128)
			})
		}
	}
}

func benchmarkInvert(b *testing.B, inv Inverter, size int) {
	src := NewRandom(GF32, 0, size)
	ms := make([]*Matrix, b.N)
	for i := range ms {
		ms[i] = src.Matrix()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := inv.Invert(context.Background(), ms[i]); err != nil {
			b.Fatal(err)
		}
	}
}
