// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package signalops

import (
	"fmt"

	"github.com/splitfft/ctlfft/splitz"
)

// Apply evaluates op over v in place and returns the (possibly reassigned)
// view holding the result, the Go replacement for BaseFunction::operator()
// across the whole operator hierarchy.
func Apply[F splitz.Float](op Op[F], v splitz.View[F]) splitz.View[F] {
	switch o := op.(type) {
	case Identity[F]:
		return v

	case Scale[F]:
		v.ScaleAssign(o.C)
		return v

	case AddSignal[F]:
		v.AddAssign(o.A.View())
		return v

	case MultSignal[F]:
		v.MulAssign(o.M.View())
		return v

	case Shift[F]:
		applyShift(o, v)
		return v

	case Conjugate[F]:
		applyConjugate(v)
		return v

	case CircularReverse[F]:
		applyCircularReverse(v)
		return v

	case Composite[F]:
		data := v
		for _, sub := range o.Ops {
			data = Apply(sub, data)
		}
		return data

	case Convolution[F]:
		return applyConvolution(o, v)

	default:
		panic(fmt.Sprintf("signalops: unknown operator type %T", op))
	}
}

func applyConjugate[F splitz.Float](v splitz.View[F]) {
	_, im := v.Data()
	for i := range im {
		im[i] = -im[i]
	}
}

func applyCircularReverse[F splitz.Float](v splitz.View[F]) {
	if v.Size() <= 2 {
		return
	}
	reverseRange(v, 1, v.Size())
}

// reverseRange reverses v's elements in the half-open range [lo, hi) using
// the permutable iterator's Swap, the same primitive a three-reversal
// rotation or a circular reversal both reduce to.
func reverseRange[F splitz.Float](v splitz.View[F], lo, hi int) {
	it := v.Iter()
	for lo < hi-1 {
		it.Swap(lo, hi-1)
		lo++
		hi--
	}
}
