// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splitz

import (
	"fmt"

	"github.com/splitfft/ctlfft/vecarith"
)

// View is a non-owning pair of equal-length real/imaginary slices, the W of
// spec.md §3. A View never outlives the Storage it was taken from; Go's
// garbage collector keeps the backing array alive as long as the slice
// headers are reachable, so there is no dangling-view hazard beyond the
// usual "don't keep a view around forever" discipline.
type View[F Float] struct {
	re, im []F
}

// NewView wraps a pair of equal-length real/imaginary slices as a View.
func NewView[F Float](re, im []F) View[F] {
	if len(re) != len(im) {
		panic("splitz: re/im length mismatch")
	}
	return View[F]{re: re, im: im}
}

// Size returns the number of complex values in v.
func (v View[F]) Size() int { return len(v.re) }

// Sub returns the sub-view [lo, hi).
func (v View[F]) Sub(lo, hi int) View[F] {
	if lo < 0 || hi > len(v.re) || lo > hi {
		panic(fmt.Sprintf("splitz: invalid sub-view [%d, %d) of size %d", lo, hi, len(v.re)))
	}
	return View[F]{re: v.re[lo:hi], im: v.im[lo:hi]}
}

// Data returns the backing real and imaginary slices directly, for
// dispatch into vecarith's array kernels.
func (v View[F]) Data() (re, im []F) { return v.re, v.im }

// At returns the complex reference at index i.
func (v View[F]) At(i int) Ref[F] {
	return Ref[F]{Re: &v.re[i], Im: &v.im[i]}
}

// Get returns the value at index i.
func (v View[F]) Get(i int) Complex[F] {
	return Complex[F]{Re: v.re[i], Im: v.im[i]}
}

// Set writes val at index i.
func (v View[F]) Set(i int, val Complex[F]) {
	v.re[i] = val.Re
	v.im[i] = val.Im
}

// AddAssign computes v += other elementwise, in place. v and other may
// alias the same storage (spec.md §4.2/§5).
func (v View[F]) AddAssign(other View[F]) {
	vecarith.AddVecZ(v.re, v.im, v.re, v.im, other.re, other.im)
}

// SubAssign computes v -= other elementwise, in place.
func (v View[F]) SubAssign(other View[F]) {
	vecarith.SubVecZ(v.re, v.im, v.re, v.im, other.re, other.im)
}

// MulAssign computes v *= other elementwise, in place.
func (v View[F]) MulAssign(other View[F]) {
	vecarith.MulVecZ(v.re, v.im, v.re, v.im, other.re, other.im)
}

// ScaleAssign multiplies every element of v by the scalar s, in place.
func (v View[F]) ScaleAssign(s Complex[F]) {
	vecarith.MulScalarZ(v.re, v.im, v.re, v.im, s.Re, s.Im)
}

// Iter returns a random-access iterator over v's complex references.
func (v View[F]) Iter() Iterator[F] {
	return Iterator[F]{re: v.re, im: v.im, i: 0}
}
