// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// This tool lists irreducible polynomials (roots) of a given degree,
// marking the ones compiled into gjinverse with '*'.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/bits"
	"os"
	"strconv"
	"strings"

	"github.com/templexxx/gjinverse"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("genroots", flag.ContinueOnError)
	fs.SetOutput(stderr)
	deg := fs.Int("d", 8, "degree of the polynomials, in [2, 63]")
	cnt := fs.Int("n", 16, "max number of polynomials listed, <= 0 for all")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: genroots [-d degree] [-n count]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *deg < 2 || *deg > 63 {
		fs.Usage()
		return 1
	}

	d := uint(*deg)
	fmt.Fprintf(stdout, "%d degree irreducible polynomials:\n", d)
	found := 0
	// Constant term must be 1, or x divides it.
	for low := uint64(1); low < 1<<d; low += 2 {
		p := 1<<d | low
		if !irreducible(p, d) {
			continue
		}
		found++
		mark := ""
		if _, err := gjinverse.NewField(gjinverse.Element(p)); err == nil {
			mark = " *"
		}
		fmt.Fprintf(stdout, "%d. %#x %s%s\n", found, p, formatPolynomial(p), mark)
		if *cnt > 0 && found >= *cnt {
			break
		}
	}
	return 0
}

// irreducible is Rabin's test:
// x^(2^d) = x (mod p), and gcd(x^(2^(d/q)) - x, p) = 1 for every prime q | d.
func irreducible(p uint64, d uint) bool {
	if xPow2k(p, d, d) != 2 {
		return false
	}
	for _, q := range primeFactors(d) {
		if polyGCD(p, xPow2k(p, d, d/q)^2) != 1 {
			return false
		}
	}
	return true
}

// xPow2k returns x^(2^k) mod p.
func xPow2k(p uint64, d, k uint) uint64 {
	t := uint64(2)
	for i := uint(0); i < k; i++ {
		t = mulMod(t, t, p, d)
	}
	return t
}

func mulMod(a, b, p uint64, d uint) uint64 {
	var res uint64
	for b != 0 {
		if b&1 != 0 {
			res ^= a
		}
		b >>= 1
		a <<= 1
		if a>>d&1 != 0 {
			a ^= p
		}
	}
	return res
}

func polyMod(a, b uint64) uint64 {
	lb := bits.Len64(b)
	for la := bits.Len64(a); la >= lb; la = bits.Len64(a) {
		a ^= b << uint(la-lb)
	}
	return a
}

func polyGCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, polyMod(a, b)
	}
	return a
}

func primeFactors(n uint) []uint {
	var fs []uint
	for q := uint(2); q*q <= n; q++ {
		if n%q == 0 {
			fs = append(fs, q)
			for n%q == 0 {
				n /= q
			}
		}
	}
	if n > 1 {
		fs = append(fs, n)
	}
	return fs
}

func formatPolynomial(p uint64) string {
	var terms []string
	for i := bits.Len64(p) - 1; i >= 0; i-- {
		if p>>uint(i)&1 == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, "x^"+strconv.Itoa(i))
		}
	}
	return strings.Join(terms, "+")
}
