// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gjinverse

import (
	"fmt"
	"math/rand"
	"testing"
	"time"
)

var testFeats = []int{featBase, featTable, featSIMD}

func randElements(rnd *rand.Rand, f Field, n int) []Element {
	mask := Element(f.Cardinality() - 1)
	v := make([]Element, n)
	for i := range v {
		v[i] = Element(rnd.Uint64()) & mask
	}
	return v
}

func equalElements(a, b []Element) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMulVect(t *testing.T) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, f := range []Field{gf8, GF32, MustField(Root42)} {
		for _, feat := range testFeats {
			g := newGMU(f, feat)
			for _, size := range []int{1, 7, 64, 1000} {
				for i := 0; i < 32; i++ {
					c := randElements(rnd, f, 1)[0]
					d := randElements(rnd, f, size)
					act := append([]Element(nil), d...)
					g.mulVect(c, act)

					for j, v := range d {
						if exp := f.Mul(v, c); act[j] != exp {
							t.Fatalf("%s mismatched with Field.Mul, degree: %d, size: %d",
								featToStr(feat), f.Degree(), size)
						}
					}
				}
			}
		}
	}
}

func TestMulVectXOR(t *testing.T) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	split := getSplitSize()
	for _, f := range []Field{gf8, GF32, MustField(Root36)} {
		for _, feat := range testFeats {
			g := newGMU(f, feat)
			// Sizes around split exercise the chunked SIMD path.
			for _, size := range []int{1, 15, 16, split - 1, split, split + 3, 2*split + 1} {
				c := randElements(rnd, f, 1)[0]
				d := randElements(rnd, f, size)
				act := randElements(rnd, f, size)
				exp := append([]Element(nil), act...)
				g.mulVectXOR(c, d, act)

				for j, v := range d {
					exp[j] ^= f.Mul(v, c)
				}
				if !equalElements(act, exp) {
					t.Fatalf("%s mismatched, degree: %d, size: %d", featToStr(feat), f.Degree(), size)
				}
			}
		}
	}
}

// in may be longer than out, only its prefix is used.
func TestMulVectXORPrefix(t *testing.T) {
	for _, feat := range testFeats {
		g := newGMU(GF32, feat)
		in := []Element{1, 2, 3, 4}
		out := make([]Element, 2)
		g.mulVectXOR(2, in, out)
		if !equalElements(out, []Element{2, 4}) {
			t.Fatalf("%s: got %v", featToStr(feat), out)
		}
	}
}

func TestFeatToStr(t *testing.T) {
	for feat, s := range map[int]string{
		featBase:  "base",
		featTable: "table",
		featSIMD:  "simd",
		featAuto:  "unknown",
	} {
		if got := featToStr(feat); got != s {
			t.Fatalf("feat %d: got %s, want %s", feat, got, s)
		}
	}
}

func TestGetCPUFeature(t *testing.T) {
	old := EnableSIMD
	defer func() { EnableSIMD = old }()

	EnableSIMD = false
	if f := getCPUFeature(); f != featTable {
		t.Fatalf("SIMD disabled but got %s", featToStr(f))
	}
	if getSplitSize() <= 0 {
		t.Fatal("split size must be positive")
	}
}

func BenchmarkMulVectXOR(b *testing.B) {
	for _, feat := range testFeats {
		for _, size := range []int{1024, 16384} {
			b.Run(fmt.Sprintf("%s_%d", featToStr(feat), size), func(b *testing.B) {
				benchMulVectXOR(b, feat, size)
			})
		}
	}
}

func benchMulVectXOR(b *testing.B, feat, size int) {
	rnd := rand.New(rand.NewSource(0))
	g := newGMU(GF32, feat)
	d := randElements(rnd, GF32, size)
	p := randElements(rnd, GF32, size)
	c := Element(0xdeadbeef)

	b.SetBytes(int64(size) * 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.mulVectXOR(c, d, p)
	}
}
