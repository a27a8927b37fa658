// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gjinverse

import (
	"sync"
	"unsafe"

	xor "github.com/templexxx/xorsimd"
)

// maxBytes is the widest element the split tables can hold.
const maxBytes = 8

// mulTable holds c*b<<(8i) for every byte b at every byte position i,
// so c*x is the XOR of one lookup per byte of x.
type mulTable struct {
	n       int // Bytes in use.
	t       [maxBytes][256]Element
	scratch []Element
}

func (t *mulTable) build(f Field, c Element) {
	t.n = (f.Degree() + 7) / 8
	p := c
	for i := 0; i < t.n; i++ {
		tb := &t.t[i]
		tb[0] = Zero
		for j := 0; j < 8; j++ {
			tb[1<<j] = p
			p = f.double(p)
		}
		for b := 3; b < 256; b++ {
			if b&(b-1) != 0 {
				tb[b] = tb[b&-b] ^ tb[b&(b-1)]
			}
		}
	}
}

func (t *mulTable) mul(x Element) Element {
	var r Element
	for i := 0; i < t.n; i++ {
		r ^= t.t[i][byte(x>>(8*i))]
	}
	return r
}

// gmu is the galois field multiplying unit used by the eliminators.
type gmu struct {
	f     Field
	feat  int
	split int
	pool  *sync.Pool
}

func newGMU(f Field, feat int) *gmu {
	split := getSplitSize()
	return &gmu{
		f:     f,
		feat:  feat,
		split: split,
		pool: &sync.Pool{
			New: func() interface{} {
				return &mulTable{scratch: make([]Element, split)}
			},
		},
	}
}

// mulVect sets v = c*v.
func (g *gmu) mulVect(c Element, v []Element) {
	if g.feat == featBase {
		for i := range v {
			v[i] = g.f.Mul(v[i], c)
		}
		return
	}
	t := g.pool.Get().(*mulTable)
	defer g.pool.Put(t)
	t.build(g.f, c)
	for i := range v {
		v[i] = t.mul(v[i])
	}
}

// mulVectXOR sets out ^= c*in.
func (g *gmu) mulVectXOR(c Element, in, out []Element) {
	in = in[:len(out)]
	if g.feat == featBase {
		for i := range out {
			out[i] ^= g.f.Mul(in[i], c)
		}
		return
	}

	t := g.pool.Get().(*mulTable)
	defer g.pool.Put(t)
	t.build(g.f, c)

	if g.feat == featTable {
		for i := range out {
			out[i] ^= t.mul(in[i])
		}
		return
	}

	for start := 0; start < len(out); start += g.split {
		end := start + g.split
		if end > len(out) {
			end = len(out)
		}
		s := t.scratch[:end-start]
		for i := range s {
			s[i] = t.mul(in[start+i])
		}
		dst := asBytes(out[start:end])
		xor.Encode(dst, [][]byte{dst, asBytes(s)})
	}
}

// mulRow sets out ^= row*o.
func (g *gmu) mulRow(row []Element, o *Matrix, out []Element) {
	for k, v := range row {
		if v != Zero {
			g.mulVectXOR(v, o.rows[k], out)
		}
	}
}

func asBytes(v []Element) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*8)
}
