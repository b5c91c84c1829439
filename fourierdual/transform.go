// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fourierdual

import (
	"math"

	"github.com/splitfft/ctlfft/fft"
	"github.com/splitfft/ctlfft/signalops"
	"github.com/splitfft/ctlfft/splitz"
)

// timeToFreq derives v such that fft(u(x)) == v(fft(x)), for every u kind
// spec.md's duality table defines. Unsupported operator kinds (Identity,
// CircularReverse, Composite, Convolution — never handled by the original's
// compose_time either) return ErrNoKnownDual.
func (d *Dual[F]) timeToFreq(u signalops.Op[F]) (signalops.Op[F], error) {
	switch o := u.(type) {
	case signalops.Scale[F]:
		return o, nil

	case signalops.AddSignal[F]:
		return signalops.AddSignal[F]{A: fftOf[F](o.A)}, nil

	case signalops.Shift[F]:
		return signalops.MultSignal[F]{M: shiftKernel[F](o.K, d.n, -1)}, nil

	case signalops.Conjugate[F]:
		return signalops.Composite[F]{Ops: []signalops.Op[F]{
			signalops.CircularReverse[F]{},
			signalops.Conjugate[F]{},
		}}, nil

	case signalops.MultSignal[F]:
		ghat := fftOf[F](o.M)
		return signalops.Composite[F]{Ops: []signalops.Op[F]{
			signalops.NewConvolution[F](ghat),
			signalops.Scale[F]{C: splitz.Complex[F]{Re: 1 / F(d.n)}},
		}}, nil

	default:
		return nil, &ErrNoKnownDual{Op: u}
	}
}

// freqToTime derives u such that ifft(v(X)) == u(ifft(X)), for every v kind
// spec.md's duality table defines. Conjugate has a time->freq dual but no
// entry in this direction, mirroring the asymmetry in the original's
// compose_freq, which never handles ConjFunction.
func (d *Dual[F]) freqToTime(v signalops.Op[F]) (signalops.Op[F], error) {
	switch o := v.(type) {
	case signalops.Scale[F]:
		return o, nil

	case signalops.AddSignal[F]:
		return signalops.AddSignal[F]{A: ifftOf[F](o.A)}, nil

	case signalops.Shift[F]:
		return signalops.MultSignal[F]{M: shiftKernel[F](o.K, d.n, 1)}, nil

	case signalops.MultSignal[F]:
		return signalops.NewConvolution[F](ifftOf[F](o.M)), nil

	default:
		return nil, &ErrNoKnownDual{Op: v}
	}
}

// fftOf returns the forward transform of a (a copy; a itself is untouched).
func fftOf[F splitz.Float](a splitz.Storage[F]) splitz.Storage[F] {
	out := a.Clone()
	e := fft.NewForward[F](out.Size())
	defer e.Close()
	e.FFT(out.View())
	return out
}

// ifftOf returns the inverse transform of a (a copy; a itself is untouched).
func ifftOf[F splitz.Float](a splitz.Storage[F]) splitz.Storage[F] {
	out := a.Clone()
	e := fft.NewInverse[F](out.Size())
	defer e.Close()
	e.IFFT(out.View())
	return out
}

// shiftKernel builds e_k[n] = exp(sign * 2*pi*i*k*n/N), the MultSignal
// kernel standing in for a Shift of k samples once moved to the other
// domain. sign is -1 for the time->freq direction, +1 for freq->time,
// matching transform.h's transform_time_func/transform_freq_func for
// ShiftFunction.
func shiftKernel[F splitz.Float](k int64, n int, sign float64) splitz.Storage[F] {
	out := splitz.NewStorage[F](n)
	re, im := out.Re(), out.Im()
	for i := 0; i < n; i++ {
		angle := sign * 2 * math.Pi * float64(k) * float64(i) / float64(n)
		re[i] = F(math.Cos(angle))
		im[i] = F(math.Sin(angle))
	}
	return out
}
