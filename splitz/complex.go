// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splitz

import "math/cmplx"

// Complex is the C of spec.md §3: a single complex scalar, stored as a
// plain value rather than split across two arrays. It exists for the
// handful of places the API needs a standalone scalar (Scale's constant,
// test fixtures) — bulk storage always uses Storage's split layout.
//
// Complex is distinct from Go's builtin complex64/complex128 so that
// ctlfft's core types do not depend on the builtin complex representation;
// FromComplex128 and the Complex128 method are the only bridge to it.
type Complex[F Float] struct {
	Re, Im F
}

// FromComplex128 constructs a Complex[F] from a builtin complex128, for use
// at test and API boundaries.
func FromComplex128[F Float](c complex128) Complex[F] {
	return Complex[F]{Re: F(real(c)), Im: F(imag(c))}
}

// Complex128 converts to a builtin complex128.
func (c Complex[F]) Complex128() complex128 {
	return complex(float64(c.Re), float64(c.Im))
}

// Conj returns the complex conjugate of c.
func (c Complex[F]) Conj() Complex[F] {
	return Complex[F]{Re: c.Re, Im: -c.Im}
}

// Add returns c + d.
func (c Complex[F]) Add(d Complex[F]) Complex[F] {
	return Complex[F]{Re: c.Re + d.Re, Im: c.Im + d.Im}
}

// Sub returns c - d.
func (c Complex[F]) Sub(d Complex[F]) Complex[F] {
	return Complex[F]{Re: c.Re - d.Re, Im: c.Im - d.Im}
}

// Mul returns c * d.
func (c Complex[F]) Mul(d Complex[F]) Complex[F] {
	return Complex[F]{
		Re: c.Re*d.Re - c.Im*d.Im,
		Im: c.Re*d.Im + c.Im*d.Re,
	}
}

// Abs returns the modulus of c.
func (c Complex[F]) Abs() F {
	return F(cmplx.Abs(c.Complex128()))
}
