// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package signalops

import "github.com/splitfft/ctlfft/splitz"

// Op is implemented by every signal-domain operator this package defines.
// The method is unexported so Op can only be implemented inside this
// package, letting callers outside (in particular fourierdual's type
// switch) treat the set of concrete operators as closed.
type Op[F splitz.Float] interface {
	isOp()
}

// Identity leaves its input unchanged. Grounded on function.h's
// IdentityFunction.
type Identity[F splitz.Float] struct{}

// Scale multiplies every sample by the complex constant C. Grounded on
// function.h's ScalerFunction.
type Scale[F splitz.Float] struct {
	C splitz.Complex[F]
}

// AddSignal adds a fixed signal A, sample for sample. A's length must match
// the view it is applied to. Grounded on function.h's SumFunction.
type AddSignal[F splitz.Float] struct {
	A splitz.Storage[F]
}

// MultSignal multiplies by a fixed signal M, sample for sample. M's length
// must match the view it is applied to. Grounded on function.h's
// MultFunction/ProductFunction.
type MultSignal[F splitz.Float] struct {
	M splitz.Storage[F]
}

// Shift circularly shifts the signal right by K samples: the output at
// index i equals the input at index i-K (mod N). Grounded on function.h's
// ShiftFunction.
type Shift[F splitz.Float] struct {
	K int64
}

// Conjugate negates the imaginary part of every sample. Grounded on
// function.h's ConjFunction.
type Conjugate[F splitz.Float] struct{}

// CircularReverse reverses every sample from index 1 onward, leaving index
// 0 fixed. Grounded on function.h's CircularReverse.
type CircularReverse[F splitz.Float] struct{}

// Convolution circularly convolves the input with a fixed kernel, computed
// via two FFTs and a pointwise multiply in the frequency domain.
// KernelHat must already hold the kernel's forward transform — use
// NewConvolution to build one from a time-domain kernel. Grounded on
// convolve.h's ConvolutionFunction.
type Convolution[F splitz.Float] struct {
	KernelHat splitz.Storage[F]
}

// Composite applies a sequence of operators in order. Appending a Composite
// to another flattens it, grounded on function.h's CompositeFunction's
// compose_outer stealing a nested composite's operator list rather than
// nesting it.
type Composite[F splitz.Float] struct {
	Ops []Op[F]
}

func (Identity[F]) isOp()        {}
func (Scale[F]) isOp()           {}
func (AddSignal[F]) isOp()       {}
func (MultSignal[F]) isOp()      {}
func (Shift[F]) isOp()           {}
func (Conjugate[F]) isOp()       {}
func (CircularReverse[F]) isOp() {}
func (Convolution[F]) isOp()     {}
func (Composite[F]) isOp()       {}

// Append adds op to the end of c's operator list, flattening op in place if
// it is itself a Composite.
func (c *Composite[F]) Append(op Op[F]) {
	if nested, ok := op.(Composite[F]); ok {
		c.Ops = append(c.Ops, nested.Ops...)
		return
	}
	c.Ops = append(c.Ops, op)
}
