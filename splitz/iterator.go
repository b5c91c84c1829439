// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splitz

// Iterator is a random-access, permutable iterator over a View's complex
// references, the Go stand-in for original_source/src/tview.h's
// _VecViewIterator. Permutable means dereferencing at two positions and
// swapping the results exchanges the underlying complex values — required
// by signalops.Shift's three-reversal rotation and by bitrev's trivial
// swap path.
type Iterator[F Float] struct {
	re, im []F
	i      int
}

// Len reports the number of elements remaining from the iterator's current
// position to the end of its view.
func (it Iterator[F]) Len() int { return len(it.re) - it.i }

// At returns the complex reference offset delta positions from it's current
// position.
func (it Iterator[F]) At(delta int) Ref[F] {
	j := it.i + delta
	return Ref[F]{Re: &it.re[j], Im: &it.im[j]}
}

// Advance returns a new iterator offset by delta positions (positive or
// negative), mirroring the original's iterator `+`/`-` operators.
func (it Iterator[F]) Advance(delta int) Iterator[F] {
	return Iterator[F]{re: it.re, im: it.im, i: it.i + delta}
}

// Swap exchanges the elements at offsets a and b from it's current
// position.
func (it Iterator[F]) Swap(a, b int) {
	it.At(a).Swap(it.At(b))
}
