// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ctlfft is a split-complex, power-of-two-only discrete Fourier
// transform library with a Fourier-dual signal-operator algebra.
//
// The package is organized the way gonum.org/v1/gonum organizes its numeric
// subpackages: each subsystem lives in its own importable package
// (splitz, twiddle, bitrev, fft, signalops, fourierdual), and this root
// package is a thin façade over the two a typical caller needs first: the
// FFT engine and the dual-composition engine. Callers building anything
// more specialized — a custom operator, direct access to the twiddle store,
// the bit-reversal permutation on its own — import the relevant subpackage
// directly.
package ctlfft

import (
	"github.com/splitfft/ctlfft/fft"
	"github.com/splitfft/ctlfft/fourierdual"
	"github.com/splitfft/ctlfft/splitz"
)

// Float is the set of types ctlfft's generic APIs are instantiated over.
type Float = splitz.Float

// Complex is a split-complex scalar value, re-exported from splitz for
// callers who don't otherwise need that package.
type Complex[F Float] = splitz.Complex[F]

// Storage is an owning split-complex buffer, re-exported from splitz.
type Storage[F Float] = splitz.Storage[F]

// View is a non-owning split-complex view, re-exported from splitz.
type View[F Float] = splitz.View[F]

// Engine is the radix-2 FFT engine, re-exported from fft.
type Engine[F Float] = fft.Engine[F]

// Dual is the Fourier-dual composition engine, re-exported from
// fourierdual.
type Dual[F Float] = fourierdual.Dual[F]

// NewForward returns an Engine computing N-point forward transforms.
func NewForward[F Float](n int) *Engine[F] { return fft.NewForward[F](n) }

// NewInverse returns an Engine computing N-point inverse transforms.
func NewInverse[F Float](n int) *Engine[F] { return fft.NewInverse[F](n) }

// NewDual returns an empty Fourier-dual composition engine for size-n
// transforms.
func NewDual[F Float](n int) *Dual[F] { return fourierdual.New[F](n) }
