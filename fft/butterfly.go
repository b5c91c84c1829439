// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fft

import (
	"github.com/splitfft/ctlfft/splitz"
	"github.com/splitfft/ctlfft/vecarith"
)

// fftLayer applies one forward butterfly layer of the given batchSize
// (a power of two, >= 2) across every batch in v, grounded on
// original_source/src/fft.h's _fft_layer_impl.
func (e *Engine[F]) fftLayer(v splitz.View[F], batchSize int) {
	niter := e.n / batchSize
	half := batchSize / 2

	var twid splitz.View[F]
	if batchSize > 4 {
		twid = e.twiddles.Layer(batchSize)
	}

	for i := 0; i < niter; i++ {
		offset := batchSize * i
		even := v.Sub(offset, offset+half)
		odd := v.Sub(offset+half, offset+batchSize)

		switch batchSize {
		case 2:
			fftLayer2(even, odd)
		case 4:
			fftLayer4(even, odd)
		default:
			fftLayerN(even, odd, twid)
		}
	}
}

// ifftLayer applies one inverse butterfly layer of the given batchSize
// across every batch in v, grounded on _ifft_layer_impl.
func (e *Engine[F]) ifftLayer(v splitz.View[F], batchSize int) {
	niter := e.n / batchSize
	half := batchSize / 2

	for i := 0; i < niter; i++ {
		offset := batchSize * i
		even := v.Sub(offset, offset+half)
		odd := v.Sub(offset+half, offset+batchSize)

		switch batchSize {
		case 2:
			// Identical to the forward size-2 butterfly: w_0 = 1 is its
			// own conjugate.
			fftLayer2(even, odd)
		case 4:
			ifftLayer4(even, odd)
		default:
			twid := e.twiddles.Layer(batchSize)
			ifftLayerN(even, odd, twid)
		}
	}
}

// fftLayer2 is the size-2 butterfly: even = even+odd, odd = even-odd.
// Forward and inverse share this kernel, since w_0 = 1.
func fftLayer2[F splitz.Float](even, odd splitz.View[F]) {
	r0, i0 := even.Get(0).Re, even.Get(0).Im
	oRe, oIm := odd.Get(0).Re, odd.Get(0).Im
	even.Set(0, splitz.Complex[F]{Re: r0 + oRe, Im: i0 + oIm})
	odd.Set(0, splitz.Complex[F]{Re: r0 - oRe, Im: i0 - oIm})
}

// fftLayer4 is the size-4 forward butterfly: lane 0 uses twiddle w_0 = 1,
// lane 1 uses twiddle w_1 = -j, both folded in directly instead of looked
// up, grounded on _fft_layer_4_impl.
func fftLayer4[F splitz.Float](even, odd splitz.View[F]) {
	fftLayer2(even.Sub(0, 1), odd.Sub(0, 1))

	rt, it := even.Get(1).Re, even.Get(1).Im
	oRe, oIm := odd.Get(1).Re, odd.Get(1).Im

	// W = -j: even[1] = even[1] + (-j)*odd[1]; in split form re += oIm, im -= oRe.
	even.Set(1, splitz.Complex[F]{Re: rt + oIm, Im: it - oRe})

	// odd[1] = even[1] - (-j)*odd[1] = even[1] + j*odd[1], computed from the
	// pre-update even[1] values (rt, it).
	newOddRe := rt - oIm
	newOddIm := it + oRe
	odd.Set(1, splitz.Complex[F]{Re: newOddRe, Im: newOddIm})
}

// ifftLayer4 is the size-4 inverse butterfly: lane 0 uses conj(w_0) = 1,
// lane 1 uses conj(w_1) = j, grounded on _ifft_layer_4_impl.
func ifftLayer4[F splitz.Float](even, odd splitz.View[F]) {
	fftLayer2(even.Sub(0, 1), odd.Sub(0, 1))

	rt, it := even.Get(1).Re, even.Get(1).Im
	oRe, oIm := odd.Get(1).Re, odd.Get(1).Im

	even.Set(1, splitz.Complex[F]{Re: rt + oRe, Im: it + oIm})

	dRe := rt - oRe
	dIm := it - oIm
	// (dRe + j*dIm) * j = -dIm + j*dRe
	odd.Set(1, splitz.Complex[F]{Re: -dIm, Im: dRe})
}

// fftLayerN is the general forward butterfly for batchSize >= 8: even = even
// + twid*odd, odd = even - twid*odd, computed in one vectorized pass,
// grounded on _fft_layer_n_impl's altAddSubProd.
func fftLayerN[F splitz.Float](even, odd, twid splitz.View[F]) {
	eRe, eIm := even.Data()
	oRe, oIm := odd.Data()
	tRe, tIm := twid.Data()
	vecarith.FusedAddSubProd(eRe, eIm, oRe, oIm, eRe, eIm, oRe, oIm, tRe, tIm)
}

// ifftLayerN is the general inverse butterfly for batchSize >= 8: even =
// even + odd, odd = (even - odd) * conj(twid), grounded on
// _ifft_layer_n_impl's altAddSubMultConj.
func ifftLayerN[F splitz.Float](even, odd, twid splitz.View[F]) {
	eRe, eIm := even.Data()
	oRe, oIm := odd.Data()
	tRe, tIm := twid.Data()
	vecarith.FusedAddSubMulConj(eRe, eIm, oRe, oIm, eRe, eIm, oRe, oIm, tRe, tIm)
}
