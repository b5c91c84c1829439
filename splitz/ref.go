// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splitz

// Ref is an aliased complex reference: a pair of pointers into a Storage's
// (or View's) real and imaginary halves. Assigning through Ref writes both
// underlying slots; swapping two Refs exchanges their pointed-to
// components. This is the Go stand-in for original_source/src/complex.h's
// complexref<T>, needed so generic algorithms (rotation, the bit-reversal
// permutation) can move complex values around without knowing about the
// split storage layout underneath.
type Ref[F Float] struct {
	Re, Im *F
}

// Get reads the referenced value.
func (r Ref[F]) Get() Complex[F] {
	return Complex[F]{Re: *r.Re, Im: *r.Im}
}

// Set writes v through the reference.
func (r Ref[F]) Set(v Complex[F]) {
	*r.Re, *r.Im = v.Re, v.Im
}

// Swap exchanges the values pointed to by r and other, componentwise. This
// is the operation that makes View's iterator permutable (spec.md §4.2),
// required by Shift's in-place rotation and bitrev's trivial swap path.
func (r Ref[F]) Swap(other Ref[F]) {
	*r.Re, *other.Re = *other.Re, *r.Re
	*r.Im, *other.Im = *other.Im, *r.Im
}
