// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package twiddle provides a process-wide, refcounted cache of twiddle
// factors (the N-th roots of unity used by the FFT engine's butterflies),
// grounded on original_source/src/twiddle.h's TwiddleStore.
//
// A single Store holds every power-of-two layer up to its requested size N
// concatenated into one backing buffer: layer m (m a power of two, m <= N)
// occupies the half-open range [m/2, m) and holds the m/2 values
// w_k = exp(-2*pi*i*k/m), k = 0..m/2-1. This lets a radix-2 engine computing
// an N-point transform reuse the same store for every smaller layer it
// recurses into without recomputing trigonometric functions, the same
// precompute-once-reuse-across-calls convention as
// gonum.org/v1/gonum/fourier/internal/fftpack's twiddle tables.
package twiddle
