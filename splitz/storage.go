// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splitz

import "fmt"

// laneWidth is the SIMD capacity storage rounds N up to, so both halves of
// the buffer stay independently lane-aligned for vecarith's fast paths
// (spec.md §3 — "N is rounded up to the SIMD capacity"). This mirrors
// original_source/src/vec.h's util::ceil_align<arith<T>::Alignment>, with
// a fixed width rather than a per-precision alignment query since Go's
// allocator gives no alignment control to query against in the first
// place (see DESIGN.md).
const laneWidth = 4

func ceilAlign(n int) int {
	if n == 0 {
		return 0
	}
	return ((n-1)/laneWidth + 1) * laneWidth
}

// Storage owns the split-complex buffer backing a sequence of N complex
// values: two equal-length, equal-capacity slices, re and im. Size reports
// the logical N; the slices may be longer due to SIMD padding, and that
// padding is zeroed at construction but not reset by later arithmetic
// (spec.md §3).
type Storage[F Float] struct {
	re, im []F
	n      int
}

// NewStorage allocates a Storage of n complex values, zeroed.
func NewStorage[F Float](n int) Storage[F] {
	if n < 0 {
		panic("splitz: negative size")
	}
	padded := ceilAlign(n)
	return Storage[F]{
		re: make([]F, padded),
		im: make([]F, padded),
		n:  n,
	}
}

// Size returns the number of complex values in s.
func (s Storage[F]) Size() int { return s.n }

// Re returns the real half of the buffer, logical length only.
func (s Storage[F]) Re() []F { return s.re[:s.n] }

// Im returns the imaginary half of the buffer, logical length only.
func (s Storage[F]) Im() []F { return s.im[:s.n] }

// Zero clears every logical element (and, incidentally, any padding) to 0.
func (s Storage[F]) Zero() {
	for i := range s.re {
		s.re[i] = 0
		s.im[i] = 0
	}
}

// Clone performs a deep copy of s.
func (s Storage[F]) Clone() Storage[F] {
	c := Storage[F]{
		re: make([]F, len(s.re)),
		im: make([]F, len(s.im)),
		n:  s.n,
	}
	copy(c.re, s.re)
	copy(c.im, s.im)
	return c
}

// View returns a mutable view over the whole of s.
func (s Storage[F]) View() View[F] {
	return View[F]{re: s.re[:s.n], im: s.im[:s.n]}
}

// At returns the complex reference at index i.
func (s Storage[F]) At(i int) Ref[F] {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("splitz: index %d out of range [0, %d)", i, s.n))
	}
	return Ref[F]{Re: &s.re[i], Im: &s.im[i]}
}

// Get returns the value at index i.
func (s Storage[F]) Get(i int) Complex[F] {
	r := s.At(i)
	return Complex[F]{Re: *r.Re, Im: *r.Im}
}

// Set writes v at index i.
func (s Storage[F]) Set(i int, v Complex[F]) {
	r := s.At(i)
	*r.Re, *r.Im = v.Re, v.Im
}

// FromSlice builds a Storage from an explicit sequence of complex values,
// primarily for tests and small fixed kernels (e.g. a convolution kernel).
func FromSlice[F Float](vs []Complex[F]) Storage[F] {
	s := NewStorage[F](len(vs))
	for i, v := range vs {
		s.Set(i, v)
	}
	return s
}
