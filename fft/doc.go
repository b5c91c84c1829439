// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fft implements the radix-2 decimation-in-time FFT engine: a
// bit-reversal permutation (package bitrev) followed by log2(N) butterfly
// layers driven by a twiddle-factor store (package twiddle), with
// specialized kernels for the size-2 and size-4 layers and a fused
// multiply-add/subtract kernel (package vecarith) for every larger layer.
//
// Grounded throughout on original_source/src/fft.h's FFT<T>: the forward and
// inverse transforms share the same layer loop and the same permutation
// (bit-reversal is applied on the way in for the forward transform and on
// the way out for the inverse, since it is its own inverse), diverging only
// in which fused kernel each layer uses and in the final 1/N scaling of the
// inverse transform.
package fft
