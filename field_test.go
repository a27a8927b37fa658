// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gjinverse

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gf8 = MustField(Root8)

func TestNewField(t *testing.T) {
	for _, r := range knownRoots {
		f, err := NewField(r)
		require.NoError(t, err)
		assert.Equal(t, r, f.Root())
		assert.Equal(t, uint64(1)<<uint(f.Degree()), f.Cardinality())
	}
	assert.Equal(t, 8, gf8.Degree())
	assert.Equal(t, 32, GF32.Degree())
	assert.Equal(t, 42, MustField(Root42).Degree())

	_, err := NewField(0x11b)
	require.ErrorIs(t, err, ErrInvalidRoot)
	assert.Panics(t, func() { MustField(0x11b) })
}

func TestFieldValid(t *testing.T) {
	assert.True(t, gf8.Valid(255))
	assert.False(t, gf8.Valid(256))
	assert.True(t, GF32.Valid(0xffffffff))
	assert.False(t, GF32.Valid(0x100000000))
}

func TestFieldMulKnown(t *testing.T) {
	// x * x^7 = x^8 = x^4+x^3+x^2+1.
	assert.Equal(t, Element(0x1d), gf8.Mul(2, 0x80))
	assert.Equal(t, Element(3), MustField(Root4).Mul(1, 3))
	// x^32 = x^7+x^5+x^3+x^2+x+1 in GF(2^32).
	assert.Equal(t, Element(0xaf), GF32.Mul(1<<16, 1<<16))
}

// All field axioms, exhaustively for GF(2^8).
func TestFieldGF8(t *testing.T) {
	for a := Element(0); a < 256; a++ {
		assert.Equal(t, a, gf8.Mul(a, One))
		assert.Equal(t, Zero, gf8.Mul(a, Zero))
		assert.Equal(t, Zero, gf8.Add(a, a))
		assert.Equal(t, a, gf8.Sub(gf8.Add(a, 77), 77))
		for b := Element(0); b < 256; b++ {
			p := gf8.Mul(a, b)
			if p != gf8.Mul(b, a) {
				t.Fatalf("mul not commutative: %d, %d", a, b)
			}
			if !gf8.Valid(p) {
				t.Fatalf("%d*%d = %d out of field", a, b, p)
			}
			if b == Zero {
				continue
			}
			q, err := gf8.Div(a, b)
			if err != nil {
				t.Fatal(err)
			}
			if gf8.Mul(q, b) != a {
				t.Fatalf("(%d/%d)*%d != %d", a, b, b, a)
			}
		}
	}
}

func TestFieldRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, f := range []Field{MustField(Root16), GF32, MustField(Root36), MustField(Root42)} {
		mask := Element(f.Cardinality() - 1)
		for i := 0; i < 2000; i++ {
			a := Element(rnd.Uint64()) & mask
			b := Element(rnd.Uint64()) & mask
			c := Element(rnd.Uint64()) & mask

			require.True(t, f.Valid(f.Mul(a, b)))
			require.Equal(t, f.Mul(f.Mul(a, b), c), f.Mul(a, f.Mul(b, c)), "associativity")
			require.Equal(t, f.Mul(a, b^c), f.Mul(a, b)^f.Mul(a, c), "distributivity")
			if a == Zero {
				continue
			}
			r, err := f.Rev(a)
			require.NoError(t, err)
			require.Equal(t, One, f.Mul(a, r), "%#x in degree %d", uint64(a), f.Degree())
			q, err := f.Div(b, a)
			require.NoError(t, err)
			require.Equal(t, b, f.Mul(q, a))
		}
	}
}

func TestFieldPow(t *testing.T) {
	for a := Element(0); a < 256; a++ {
		exp := One
		for e := uint64(0); e < 20; e++ {
			if got := gf8.Pow(a, e); got != exp {
				t.Fatalf("%d^%d: got %d, want %d", a, e, got, exp)
			}
			exp = gf8.Mul(exp, a)
		}
	}
	// Multiplicative group has order 2^d-1.
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		a := Element(rnd.Uint32()) | 1
		assert.Equal(t, One, GF32.Pow(a, 1<<32-1))
	}
}

func TestFieldDivByZero(t *testing.T) {
	_, err := gf8.Div(3, Zero)
	require.ErrorIs(t, err, ErrDivisionByZero)
	_, err = GF32.Rev(Zero)
	require.ErrorIs(t, err, ErrDivisionByZero)

	r, err := GF32.Rev(One)
	require.NoError(t, err)
	assert.Equal(t, One, r)
}

func BenchmarkFieldMul(b *testing.B) {
	a, c := Element(0xdeadbeef), Element(0x12345678)
	for i := 0; i < b.N; i++ {
		a = GF32.Mul(a, c) | 1
	}
}

func BenchmarkFieldRev(b *testing.B) {
	a := Element(0xdeadbeef)
	for i := 0; i < b.N; i++ {
		_, _ = GF32.Rev(a + Element(i&0xff))
	}
}
