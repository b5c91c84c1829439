// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package signalops

import (
	"github.com/splitfft/ctlfft/fft"
	"github.com/splitfft/ctlfft/splitz"
)

// NewConvolution builds a Convolution operator from a time-domain kernel,
// precomputing its forward transform once at construction time so that
// every later Apply only pays for one forward and one inverse FFT over the
// input, not the kernel — grounded on convolve.h's ConvolutionFunction,
// which calls dft_kernel() once in its constructor.
func NewConvolution[F splitz.Float](kernel splitz.Storage[F]) Convolution[F] {
	hat := kernel.Clone()
	e := fft.NewForward[F](hat.Size())
	defer e.Close()
	e.FFT(hat.View())
	return Convolution[F]{KernelHat: hat}
}

// applyConvolution computes the circular convolution of v with the
// operator's precomputed kernel spectrum: forward transform, pointwise
// multiply, inverse transform — grounded on convolve.h's operator().
func applyConvolution[F splitz.Float](op Convolution[F], v splitz.View[F]) splitz.View[F] {
	n := v.Size()
	if op.KernelHat.Size() != n {
		panic("signalops: convolution kernel size does not match input size")
	}

	fwd := fft.NewForward[F](n)
	defer fwd.Close()
	fwd.FFT(v)

	v.MulAssign(op.KernelHat.View())

	inv := fft.NewInverse[F](n)
	defer inv.Close()
	inv.IFFT(v)

	return v
}
