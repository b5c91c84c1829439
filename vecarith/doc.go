// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vecarith provides the elementwise split-complex array kernels
// consumed by package fft's butterflies and package splitz's
// compound-assignment views; it has no kernels for bare real arrays.
//
// Every exported function here has an unchecked precondition: all slices
// passed to it must have equal length (the vector length n), and pairs
// described as aliasable (see FusedAddSubProd and FusedAddSubMulConj) are
// the only slices that may overlap. Violating these preconditions is
// undefined behavior outside of a ctlfft_debug build; see the unexported
// check function in vecarith_debug.go.
package vecarith

// Float is the set of precisions ctlfft operates over.
type Float interface {
	~float32 | ~float64
}
