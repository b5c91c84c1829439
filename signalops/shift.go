// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package signalops

import "github.com/splitfft/ctlfft/splitz"

// applyShift rotates v right by op.K samples in place via the standard
// three-reversal rotation: reverse [0,s), reverse [s,n), reverse [0,n),
// where s is -op.K reduced into [0,n) by explicit modular arithmetic (not
// unsigned wraparound, since op.K may be negative) — grounded on
// function.h's ShiftFunction, whose std::ranges::rotate is itself
// implemented as a three-reversal rotation in common standard library
// implementations.
func applyShift[F splitz.Float](op Shift[F], v splitz.View[F]) {
	n := v.Size()
	if n == 0 {
		return
	}
	s := reduceShift(op.K, n)
	if s == 0 {
		return
	}
	reverseRange(v, 0, s)
	reverseRange(v, s, n)
	reverseRange(v, 0, n)
}

// reduceShift reduces -k into [0, n) the way spec.md's Open Question on
// Shift's rotation distance is resolved: explicit modular arithmetic rather
// than relying on unsigned integer wraparound, so a negative k (a left
// shift) yields the equivalent non-negative rotation distance.
func reduceShift(k int64, n int) int {
	m := int64(n)
	s := ((-k) % m) + m
	s %= m
	return int(s)
}
