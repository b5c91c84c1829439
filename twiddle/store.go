// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twiddle

import (
	"math"

	"github.com/splitfft/ctlfft/splitz"
)

// Store holds the concatenated twiddle-factor layers for sizes up to n, laid
// out per package doc. Obtain one via Get; release it with Release when
// done, since Go has no destructors to do this automatically.
type Store[F splitz.Float] struct {
	storage splitz.Storage[F]
	n       int
}

func newStore[F splitz.Float](n int) *Store[F] {
	s := &Store[F]{storage: splitz.NewStorage[F](n), n: n}
	s.fillLayers(n)
	return s
}

// Layer returns the view of length m/2 holding w_k = exp(-2*pi*i*k/m) for
// k = 0..m/2-1. m must be a power of two no greater than the size the Store
// was created with.
func (s *Store[F]) Layer(m int) splitz.View[F] {
	if m <= 0 || m&(m-1) != 0 {
		panic("twiddle: Layer requires a power-of-two size")
	}
	if m > s.n {
		panic("twiddle: Layer size exceeds store capacity")
	}
	return s.storage.View().Sub(m/2, m)
}

// fillLastLayer computes the top layer [n/2, n) directly from cos/sin, the
// only layer not derived by subsampling.
func (s *Store[F]) fillLastLayer(n int) {
	re, im := s.storage.Re(), s.storage.Im()
	re, im = re[n/2:n], im[n/2:n]

	pi := F(math.Pi)
	fn := F(n)
	for k := 0; k < n/2; k++ {
		angle := 2 * pi * (F(-k)) / fn
		re[k] = F(math.Cos(float64(angle)))
		im[k] = F(math.Sin(float64(angle)))
	}
}

// fillLayer derives the layer of size lsize from the layer of size 2*lsize
// immediately above it by taking every other entry: w_k at size lsize equals
// w_2k at size 2*lsize.
func (s *Store[F]) fillLayer(lsize int) {
	re, im := s.storage.Re(), s.storage.Im()
	dstRe, dstIm := re[lsize/2:lsize], im[lsize/2:lsize]
	srcRe, srcIm := re[lsize:2*lsize], im[lsize:2*lsize]

	for i := 0; i < lsize/2; i++ {
		dstRe[i] = srcRe[2*i]
		dstIm[i] = srcIm[2*i]
	}
}

func (s *Store[F]) fillLayers(n int) {
	s.fillLastLayer(n)
	for lsize := n / 2; lsize != 0; lsize /= 2 {
		s.fillLayer(lsize)
	}
}
