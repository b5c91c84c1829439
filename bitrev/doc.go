// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitrev implements the bit-reversal permutation used to put a
// sequence into decimation-in-time order ahead of the FFT engine's layered
// butterflies: for N = 2^k, the value at index i moves to index rev_k(i),
// the bitwise reversal of i's low k bits.
//
// Two algorithms are used depending on N (spec.md §4.4): a trivial
// index-swap loop for N <= 1024, and COBRA (cache-oblivious blocked
// reversal) above that, following
// "Towards an Optimal Bit-Reversal Permutation Program" (Carter & Gatlin),
// as implemented in original_source/src/shuffler.h. The idiomatic-Go
// reversal primitive itself (math/bits.Reverse64 instead of a hand-rolled
// byte-reversal table) is grounded on
// _examples/gonum-gonum/dsp/fourier/radix24.go's bitReversePermute.
package bitrev

import "math/bits"

// Q sets the block size COBRA partitions indices into: blocks of 2^Q on
// each side, a 2^(2Q)-element scratch buffer. Q = 5 makes the scratch
// buffer's two float64 halves 8KiB each, comfortably inside a typical L1
// cache alongside the two 2^Q-sized slabs of input being exchanged — the
// same reasoning and the same constant as the original's ShuffleFunction::Q.
const Q = 5

// trivialMax is the largest N handled by the trivial algorithm: 2^(2Q).
const trivialMax = 1 << (2 * Q)

// IsPow2 reports whether n is a positive power of two.
func IsPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns k such that n == 1<<k. n must be a power of two.
func Log2(n int) int {
	return bits.TrailingZeros(uint(n))
}

// reverseBits returns the low bits-wide bit reversal of x.
func reverseBits(x uint64, width int) uint64 {
	if width == 0 {
		return 0
	}
	return bits.Reverse64(x) >> (64 - width)
}
