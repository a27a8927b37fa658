// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gjinverse

import "github.com/templexxx/cpu"

// Kernel features.
const (
	featAuto  = iota // Detect with getCPUFeature.
	featBase         // Element by element Field.Mul.
	featTable        // Per-coefficient split tables.
	featSIMD         // Split tables + SIMD XOR.
)

// EnableSIMD allows the SIMD XOR kernel when the CPU has AVX2.
//
// You can modify it before calling New.
var EnableSIMD = true

func getCPUFeature() int {
	if EnableSIMD && cpu.X86.HasAVX2 {
		return featSIMD
	}
	return featTable
}

func featToStr(f int) string {
	switch f {
	case featBase:
		return "base"
	case featTable:
		return "table"
	case featSIMD:
		return "simd"
	default:
		return "unknown"
	}
}

// getSplitSize returns how many elements of a row are multiplied
// per pass of the table kernels.
// Half of L1 Data Cache Size is an empirical data.
func getSplitSize() int {
	l1d := cpu.X86.Cache.L1D
	if l1d <= 0 { // Cannot detect cache size(-1) or CPU is not X86(0).
		l1d = 32 * 1024
	}
	return l1d / 2 / 8
}
