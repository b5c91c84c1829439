// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitrev

import "github.com/splitfft/ctlfft/splitz"

// Permute reorders v in place so that the value originally at index i ends
// up at index rev_k(i), where N = v.Size() = 1<<k. v.Size() must be a power
// of two.
func Permute[F splitz.Float](v splitz.View[F]) {
	n := v.Size()
	if !IsPow2(n) {
		panic("bitrev: Permute requires a power-of-two size")
	}
	if n <= trivialMax {
		trivial(v)
		return
	}
	cobra(v)
}

// trivial swaps each index i < rev_k(i) with its mirror, the textbook
// algorithm used directly by original_source/src/shuffler.h for small N and
// by _examples/gonum-gonum/dsp/fourier/radix24.go's bitReversePermute.
func trivial[F splitz.Float](v splitz.View[F]) {
	n := v.Size()
	k := Log2(n)
	it := v.Iter()
	for i := 0; i < n; i++ {
		j := int(reverseBits(uint64(i), k))
		if i < j {
			it.Swap(i, j)
		}
	}
}

// cobra implements the cache-oblivious blocked bit-reversal permutation
// (Carter & Gatlin), partitioning each index i into three fields
// i = a*2^(k-Q) + b*2^Q + c with a, c in [0, 2^Q) and b in
// [0, 2^(k-2Q)), so that the inner two loops over a and c touch only
// 2^Q-sized, cache-resident slabs. Grounded on
// original_source/src/shuffler.h's ShuffleFunction::cobra.
func cobra[F splitz.Float](v splitz.View[F]) {
	n := v.Size()
	k := Log2(n)
	bBits := k - 2*Q
	blockN := 1 << Q
	bN := 1 << bBits

	re, im := v.Data()

	scratchRe := make([]F, blockN*blockN)
	scratchIm := make([]F, blockN*blockN)

	idx := func(a, b, c int) int {
		return a<<(k-Q) | b<<Q | c
	}
	tidx := func(a, c int) int {
		return a<<Q | c
	}

	for b := 0; b < bN; b++ {
		bRev := int(reverseBits(uint64(b), bBits))
		if b > bRev {
			continue
		}

		for a := 0; a < blockN; a++ {
			aRev := int(reverseBits(uint64(a), Q))
			for c := 0; c < blockN; c++ {
				i := idx(a, b, c)
				t := tidx(aRev, c)
				scratchRe[t], scratchIm[t] = re[i], im[i]
			}
		}

		for c := 0; c < blockN; c++ {
			cRev := int(reverseBits(uint64(c), Q))
			for aRev := 0; aRev < blockN; aRev++ {
				i := idx(cRev, bRev, aRev)
				t := tidx(aRev, c)
				re[i], scratchRe[t] = scratchRe[t], re[i]
				im[i], scratchIm[t] = scratchIm[t], im[i]
			}
		}

		if b != bRev {
			for a := 0; a < blockN; a++ {
				aRev := int(reverseBits(uint64(a), Q))
				for c := 0; c < blockN; c++ {
					i := idx(a, b, c)
					t := tidx(aRev, c)
					re[i], im[i] = scratchRe[t], scratchIm[t]
				}
			}
		}
	}
}
