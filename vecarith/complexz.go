// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecarith

// AddVecZ computes (outRe, outIm) = (aRe, aIm) + (bRe, bIm) componentwise.
func AddVecZ[F Float](outRe, outIm, aRe, aIm, bRe, bIm []F) {
	checkZLen(aRe, aIm, bRe, bIm, outRe, outIm)
	addVecZScalar(outRe, outIm, aRe, aIm, bRe, bIm)
}

// SubVecZ computes (outRe, outIm) = (aRe, aIm) - (bRe, bIm) componentwise.
func SubVecZ[F Float](outRe, outIm, aRe, aIm, bRe, bIm []F) {
	checkZLen(aRe, aIm, bRe, bIm, outRe, outIm)
	subVecZScalar(outRe, outIm, aRe, aIm, bRe, bIm)
}

// MulVecZ computes (outRe, outIm) = (aRe, aIm) * (bRe, bIm) componentwise,
// using the FMA-friendly cross form described in spec.md §4.1. Dispatches
// to the AVX2 fast path when F is float64, hasSIMD is compiled in, and the
// running CPU supports it; otherwise uses the scalar kernel.
func MulVecZ[F Float](outRe, outIm, aRe, aIm, bRe, bIm []F) {
	checkZLen(aRe, aIm, bRe, bIm, outRe, outIm)
	if hasSIMD {
		if or, ok := any(outRe).([]float64); ok {
			mulVecZF64SIMD(or, any(outIm).([]float64), any(aRe).([]float64), any(aIm).([]float64), any(bRe).([]float64), any(bIm).([]float64))
			return
		}
	}
	mulVecZScalar(outRe, outIm, aRe, aIm, bRe, bIm)
}

// FusedAddSubProd computes outa = a + b*c, outb = a - b*c, reading a and b
// before writing outa/outb so that outa may alias a and outb may alias b.
// This is the workhorse of the forward FFT's m>=8 butterfly layers.
func FusedAddSubProd[F Float](outaRe, outaIm, outbRe, outbIm, aRe, aIm, bRe, bIm, cRe, cIm []F) {
	checkZLen(aRe, aIm, bRe, bIm, cRe, cIm)
	checkZLen(outaRe, outaIm, outbRe, outbIm, aRe, aIm)
	if hasSIMD {
		if oar, ok := any(outaRe).([]float64); ok {
			fusedAddSubProdF64SIMD(oar, any(outaIm).([]float64), any(outbRe).([]float64), any(outbIm).([]float64),
				any(aRe).([]float64), any(aIm).([]float64), any(bRe).([]float64), any(bIm).([]float64),
				any(cRe).([]float64), any(cIm).([]float64))
			return
		}
	}
	fusedAddSubProdScalar(outaRe, outaIm, outbRe, outbIm, aRe, aIm, bRe, bIm, cRe, cIm)
}

// FusedAddSubMulConj computes outa = a + b, outb = (a - b) * conj(c), with
// the same aliasing contract as FusedAddSubProd. This is the workhorse of
// the inverse FFT's m>=8 butterfly layers.
func FusedAddSubMulConj[F Float](outaRe, outaIm, outbRe, outbIm, aRe, aIm, bRe, bIm, cRe, cIm []F) {
	checkZLen(aRe, aIm, bRe, bIm, cRe, cIm)
	checkZLen(outaRe, outaIm, outbRe, outbIm, aRe, aIm)
	if hasSIMD {
		if oar, ok := any(outaRe).([]float64); ok {
			fusedAddSubMulConjF64SIMD(oar, any(outaIm).([]float64), any(outbRe).([]float64), any(outbIm).([]float64),
				any(aRe).([]float64), any(aIm).([]float64), any(bRe).([]float64), any(bIm).([]float64),
				any(cRe).([]float64), any(cIm).([]float64))
			return
		}
	}
	fusedAddSubMulConjScalar(outaRe, outaIm, outbRe, outbIm, aRe, aIm, bRe, bIm, cRe, cIm)
}

// MulScalarZ computes (outRe, outIm) = (aRe, aIm) * s, broadcasting the
// complex scalar s over every lane. Grounded on
// original_source/src/arith/carith.h's _scalar_impl/_mul_scalar.
func MulScalarZ[F Float](outRe, outIm, aRe, aIm []F, sRe, sIm F) {
	check(len(aRe) == len(aIm) && len(aRe) == len(outRe) && len(aRe) == len(outIm),
		"vecarith: split-complex length mismatch")
	for i := range aRe {
		ar, ai := aRe[i], aIm[i]
		outRe[i] = ar*sRe - ai*sIm
		outIm[i] = ar*sIm + ai*sRe
	}
}

func checkZLen[F Float](aRe, aIm, bRe, bIm, cRe, cIm []F) {
	check(len(aRe) == len(aIm) && len(aRe) == len(bRe) && len(aRe) == len(bIm) && len(aRe) == len(cRe) && len(aRe) == len(cIm),
		"vecarith: split-complex length mismatch")
}
