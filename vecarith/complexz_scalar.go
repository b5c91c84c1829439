// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecarith

// The scalar bodies below are ported directly from the _exec functions in
// original_source/src/arith/carith.h's primary (non-AVX2) carith<T>
// template: one complex lane per loop iteration, real and imaginary parts
// carried in separate slices.

func addVecZScalar[F Float](outRe, outIm, aRe, aIm, bRe, bIm []F) {
	for i := range aRe {
		outRe[i] = aRe[i] + bRe[i]
		outIm[i] = aIm[i] + bIm[i]
	}
}

func subVecZScalar[F Float](outRe, outIm, aRe, aIm, bRe, bIm []F) {
	for i := range aRe {
		outRe[i] = aRe[i] - bRe[i]
		outIm[i] = aIm[i] - bIm[i]
	}
}

// mulVecZScalar uses the FMA-friendly cross form: re = ar*br - ai*bi,
// im = ar*bi + ai*br. tr/ti hold the product before it is stored, so this
// is safe when out aliases a or b.
func mulVecZScalar[F Float](outRe, outIm, aRe, aIm, bRe, bIm []F) {
	for i := range aRe {
		tr := aRe[i]*bRe[i] - aIm[i]*bIm[i]
		ti := aRe[i]*bIm[i] + aIm[i]*bRe[i]
		outRe[i] = tr
		outIm[i] = ti
	}
}

// fusedAddSubProdScalar computes outa = a + b*c, outb = a - b*c, reading a
// and b into locals before writing outa/outb so that outa may alias a and
// outb may alias b (spec.md §4.1).
func fusedAddSubProdScalar[F Float](outaRe, outaIm, outbRe, outbIm, aRe, aIm, bRe, bIm, cRe, cIm []F) {
	for i := range aRe {
		ar, ai := aRe[i], aIm[i]
		br, bi := bRe[i], bIm[i]
		pr := br*cRe[i] - bi*cIm[i]
		pi := br*cIm[i] + bi*cRe[i]
		outaRe[i] = ar + pr
		outaIm[i] = ai + pi
		outbRe[i] = ar - pr
		outbIm[i] = ai - pi
	}
}

// fusedAddSubMulConjScalar computes outa = a + b, outb = (a - b) * conj(c).
func fusedAddSubMulConjScalar[F Float](outaRe, outaIm, outbRe, outbIm, aRe, aIm, bRe, bIm, cRe, cIm []F) {
	for i := range aRe {
		ar, ai := aRe[i], aIm[i]
		br, bi := bRe[i], bIm[i]
		sr, si := ar+br, ai+bi
		dr, di := ar-br, ai-bi
		cr, ci := cRe[i], cIm[i]
		outbRe[i] = dr*cr + di*ci
		outbIm[i] = di*cr - dr*ci
		outaRe[i] = sr
		outaIm[i] = si
	}
}
