// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !goexperiment.simd

package vecarith

// hasSIMD reports whether the AVX2 float64 fast path below is compiled in.
// This build does not carry it; the exported kernels in complexz.go always
// fall back to the scalar path.
const hasSIMD = false

func mulVecZF64SIMD(outRe, outIm, aRe, aIm, bRe, bIm []float64)      {}
func fusedAddSubProdF64SIMD(outaRe, outaIm, outbRe, outbIm, aRe, aIm, bRe, bIm, cRe, cIm []float64) {
}
func fusedAddSubMulConjF64SIMD(outaRe, outaIm, outbRe, outbIm, aRe, aIm, bRe, bIm, cRe, cIm []float64) {
}
