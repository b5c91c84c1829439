// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fft

import (
	"github.com/splitfft/ctlfft/bitrev"
	"github.com/splitfft/ctlfft/splitz"
	"github.com/splitfft/ctlfft/twiddle"
)

// Engine computes forward or inverse discrete Fourier transforms of a fixed
// power-of-two size N, reusing a shared twiddle.Store across calls. An
// Engine is safe for concurrent use by multiple goroutines: it holds no
// mutable state of its own beyond the twiddle store, which is itself
// synchronized.
type Engine[F splitz.Float] struct {
	n        int
	forward  bool
	twiddles *twiddle.Store[F]
}

// New creates an Engine for N-point transforms. N must be a power of two.
// forward selects between the forward transform (FFT) and the inverse
// transform (IFFT, with 1/N scaling); both directions are implemented by
// the same Engine since they share every data structure but the final
// scaling step and the direction of the shuffle.
func New[F splitz.Float](n int, forward bool) *Engine[F] {
	if !bitrev.IsPow2(n) {
		panic("fft: size is not a power of two")
	}
	return &Engine[F]{
		n:        n,
		forward:  forward,
		twiddles: twiddle.Get[F](n),
	}
}

// NewForward creates an N-point forward-transform Engine.
func NewForward[F splitz.Float](n int) *Engine[F] { return New[F](n, true) }

// NewInverse creates an N-point inverse-transform Engine.
func NewInverse[F splitz.Float](n int) *Engine[F] { return New[F](n, false) }

// Size returns the transform length N the Engine was constructed with.
func (e *Engine[F]) Size() int { return e.n }

// Close releases the Engine's reference to its shared twiddle store. An
// Engine must not be used after Close.
func (e *Engine[F]) Close() {
	twiddle.Release[F](e.twiddles)
}

// Transform runs the Engine's configured direction (forward or inverse)
// over v in place and returns v. v.Size() must equal the Engine's N.
func (e *Engine[F]) Transform(v splitz.View[F]) splitz.View[F] {
	if e.forward {
		return e.FFT(v)
	}
	return e.IFFT(v)
}

// FFT computes the forward discrete Fourier transform of v in place:
// bit-reversal permutation followed by log2(N) butterfly layers of
// increasing size. Returns v.
func (e *Engine[F]) FFT(v splitz.View[F]) splitz.View[F] {
	e.checkSize(v)
	bitrev.Permute(v)
	for batchSize := 2; batchSize <= e.n; batchSize *= 2 {
		e.fftLayer(v, batchSize)
	}
	return v
}

// IFFT computes the inverse discrete Fourier transform of v in place:
// log2(N) butterfly layers of decreasing size, a bit-reversal permutation,
// then a 1/N scaling. Returns v.
func (e *Engine[F]) IFFT(v splitz.View[F]) splitz.View[F] {
	e.checkSize(v)
	for batchSize := e.n; batchSize >= 2; batchSize /= 2 {
		e.ifftLayer(v, batchSize)
	}
	bitrev.Permute(v)

	scale := splitz.Complex[F]{Re: F(1) / F(e.n), Im: 0}
	v.ScaleAssign(scale)
	return v
}

func (e *Engine[F]) checkSize(v splitz.View[F]) {
	if v.Size() != e.n {
		panic("fft: view size does not match engine size")
	}
}
