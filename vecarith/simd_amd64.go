// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build goexperiment.simd

package vecarith

import (
	"simd/archsimd"
)

// hasSIMD and useSIMD mirror the probe/gate pattern from
// _examples/madelynnblue-go-dsp/fft/radix2_simd.go: the fast path below is
// only taken when the running CPU actually has AVX2, checked once at
// package init rather than per call.
const hasSIMD = true

var useSIMD = archsimd.X86.AVX2()

// mulVecZF64SIMD computes out = a*b two complex128 lanes (4 float64) at a
// time. Falls back to the scalar kernel for lengths below 2 or when the CPU
// lacks AVX2; an odd trailing element is handled by the scalar kernel.
func mulVecZF64SIMD(outRe, outIm, aRe, aIm, bRe, bIm []float64) {
	n := len(aRe)
	if !useSIMD || n < 2 {
		mulVecZScalar(outRe, outIm, aRe, aIm, bRe, bIm)
		return
	}
	lanes := (n / 2) * 2
	var i int
	for ; i < lanes; i += 2 {
		ar := archsimd.LoadFloat64x2((*[2]float64)(aRe[i : i+2]))
		ai := archsimd.LoadFloat64x2((*[2]float64)(aIm[i : i+2]))
		br := archsimd.LoadFloat64x2((*[2]float64)(bRe[i : i+2]))
		bi := archsimd.LoadFloat64x2((*[2]float64)(bIm[i : i+2]))

		cr := ar.Mul(br).Sub(ai.Mul(bi))
		ci := ar.Mul(bi).Add(ai.Mul(br))

		cr.Store((*[2]float64)(outRe[i : i+2]))
		ci.Store((*[2]float64)(outIm[i : i+2]))
	}
	if i < n {
		mulVecZScalar(outRe[i:], outIm[i:], aRe[i:], aIm[i:], bRe[i:], bIm[i:])
	}
}

// fusedAddSubProdF64SIMD is the AVX2 fast path for the butterfly's core
// kernel: outa = a + b*c, outb = a - b*c, two complex lanes at a time.
func fusedAddSubProdF64SIMD(outaRe, outaIm, outbRe, outbIm, aRe, aIm, bRe, bIm, cRe, cIm []float64) {
	n := len(aRe)
	if !useSIMD || n < 2 {
		fusedAddSubProdScalar(outaRe, outaIm, outbRe, outbIm, aRe, aIm, bRe, bIm, cRe, cIm)
		return
	}
	lanes := (n / 2) * 2
	var i int
	for ; i < lanes; i += 2 {
		ar := archsimd.LoadFloat64x2((*[2]float64)(aRe[i : i+2]))
		ai := archsimd.LoadFloat64x2((*[2]float64)(aIm[i : i+2]))
		br := archsimd.LoadFloat64x2((*[2]float64)(bRe[i : i+2]))
		bi := archsimd.LoadFloat64x2((*[2]float64)(bIm[i : i+2]))
		cr := archsimd.LoadFloat64x2((*[2]float64)(cRe[i : i+2]))
		ci := archsimd.LoadFloat64x2((*[2]float64)(cIm[i : i+2]))

		pr := br.Mul(cr).Sub(bi.Mul(ci))
		pi := br.Mul(ci).Add(bi.Mul(cr))

		ar.Add(pr).Store((*[2]float64)(outaRe[i : i+2]))
		ai.Add(pi).Store((*[2]float64)(outaIm[i : i+2]))
		ar.Sub(pr).Store((*[2]float64)(outbRe[i : i+2]))
		ai.Sub(pi).Store((*[2]float64)(outbIm[i : i+2]))
	}
	if i < n {
		fusedAddSubProdScalar(outaRe[i:], outaIm[i:], outbRe[i:], outbIm[i:], aRe[i:], aIm[i:], bRe[i:], bIm[i:], cRe[i:], cIm[i:])
	}
}

// fusedAddSubMulConjF64SIMD is the AVX2 fast path for the inverse
// butterfly's kernel: outa = a + b, outb = (a - b) * conj(c).
func fusedAddSubMulConjF64SIMD(outaRe, outaIm, outbRe, outbIm, aRe, aIm, bRe, bIm, cRe, cIm []float64) {
	n := len(aRe)
	if !useSIMD || n < 2 {
		fusedAddSubMulConjScalar(outaRe, outaIm, outbRe, outbIm, aRe, aIm, bRe, bIm, cRe, cIm)
		return
	}
	lanes := (n / 2) * 2
	var i int
	for ; i < lanes; i += 2 {
		ar := archsimd.LoadFloat64x2((*[2]float64)(aRe[i : i+2]))
		ai := archsimd.LoadFloat64x2((*[2]float64)(aIm[i : i+2]))
		br := archsimd.LoadFloat64x2((*[2]float64)(bRe[i : i+2]))
		bi := archsimd.LoadFloat64x2((*[2]float64)(bIm[i : i+2]))
		cr := archsimd.LoadFloat64x2((*[2]float64)(cRe[i : i+2]))
		ci := archsimd.LoadFloat64x2((*[2]float64)(cIm[i : i+2]))

		sr := ar.Add(br)
		si := ai.Add(bi)
		dr := ar.Sub(br)
		di := ai.Sub(bi)

		dr.Mul(cr).Add(di.Mul(ci)).Store((*[2]float64)(outbRe[i : i+2]))
		di.Mul(cr).Sub(dr.Mul(ci)).Store((*[2]float64)(outbIm[i : i+2]))
		sr.Store((*[2]float64)(outaRe[i : i+2]))
		si.Store((*[2]float64)(outaIm[i : i+2]))
	}
	if i < n {
		fusedAddSubMulConjScalar(outaRe[i:], outaIm[i:], outbRe[i:], outbIm[i:], aRe[i:], aIm[i:], bRe[i:], bIm[i:], cRe[i:], cIm[i:])
	}
}
