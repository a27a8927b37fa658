// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package gjinverse inverts large square matrices in place by Gauss-Jordan
// elimination over GF(2^d) (and, for comparison, over float64).
//
// Three engines share one numeric contract:
//
//	Serial:   single goroutine baseline.
//	Parallel: worker pool, dynamic row claiming, barrier between steps.
//	NoWait:   per-row/per-step task graph activated by atomic countdowns.
//
// Over GF(2^d) all engines produce bit-identical results.
package gjinverse

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Element is a polynomial over GF(2) of degree < d,
// d is the degree of the field's root.
type Element uint64

const (
	Zero Element = 0 // Additive identity.
	One  Element = 1 // Multiplicative identity.
)

// Irreducible polynomials ("roots") compiled into the package.
const (
	Root4  Element = 0x13
	Root8  Element = 0x11d // x^8+x^4+x^3+x^2+1
	Root12 Element = 0x1053
	Root16 Element = 0x1002d
	Root32 Element = 0x1000000af
	Root36 Element = 0x1000000077
	Root42 Element = 0x4000000003f
)

var knownRoots = []Element{Root4, Root8, Root12, Root16, Root32, Root36, Root42}

// Field is GF(2^d) arithmetic modulo a fixed root.
// It holds no mutable state, so it's safe for concurrent use.
type Field struct {
	root  Element
	msbit uint // Highest degree in residual polynomials (d-1).
}

// GF32 is the canonical field, GF(2^32).
var GF32 = MustField(Root32)

// NewField returns the field defined by root.
// Only the roots compiled into the package are accepted.
func NewField(root Element) (Field, error) {
	for _, r := range knownRoots {
		if r == root {
			return Field{root: root, msbit: uint(bits.Len64(uint64(root))) - 2}, nil
		}
	}
	return Field{}, errors.Wrapf(ErrInvalidRoot, "%#x", uint64(root))
}

// MustField is like NewField but panics on an unknown root.
func MustField(root Element) Field {
	f, err := NewField(root)
	if err != nil {
		panic(err)
	}
	return f
}

func (f Field) isZero() bool { return f.root == 0 }

// Root returns the field's irreducible polynomial.
func (f Field) Root() Element { return f.root }

// Degree returns d.
func (f Field) Degree() int { return int(f.msbit) + 1 }

// Cardinality returns 2^d, the number of elements in the field.
func (f Field) Cardinality() uint64 { return 1 << (f.msbit + 1) }

// Valid reports whether a is an element of the field.
func (f Field) Valid(a Element) bool { return uint64(a) < f.Cardinality() }

// Add returns a + b.
func (f Field) Add(a, b Element) Element { return a ^ b }

// Sub returns a - b.
func (f Field) Sub(a, b Element) Element { return a ^ b }

// double returns a*x.
func (f Field) double(a Element) Element {
	return a<<1 ^ (a>>f.msbit)*f.root
}

// Mul returns a * b.
func (f Field) Mul(a, b Element) Element {
	res := Zero
	for b != 0 {
		res ^= a * (b & 1)
		a = f.double(a)
		b >>= 1
	}
	return res
}

// Pow returns a ^ exp.
func (f Field) Pow(a Element, exp uint64) Element {
	res := One
	for bit := uint64(1) << 63 >> bits.LeadingZeros64(exp); bit != 0; bit >>= 1 {
		res = f.Mul(res, res)
		if exp&bit != 0 {
			res = f.Mul(res, a)
		}
	}
	return res
}

// Div returns a / b.
//
// Extended Euclid on (root, b), carrying a instead of One as the
// co-state of b, so the co-state of the final unit remainder is a/b.
func (f Field) Div(a, b Element) (Element, error) {
	if b == Zero {
		return Zero, ErrDivisionByZero
	}
	p, vp := f.root, Zero
	q, vq := b, a
	m := Element(1) << (f.msbit + 1)

	for p != One {
		for {
			if p&m != 0 {
				break
			}
			if q&m != 0 {
				p, q = q, p
				vp, vq = vq, vp
				break
			}
			m >>= 1
		}
		r, vr := q, vq
		for r&m == 0 {
			r <<= 1
			vr = f.double(vr)
		}
		p ^= r
		vp ^= vr
	}
	return vp, nil
}

// Rev returns 1 / a.
func (f Field) Rev(a Element) (Element, error) {
	return f.Div(One, a)
}
