// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package signalops implements the small algebra of signal-domain
// operators: scaling, adding a fixed signal, pointwise multiplying by a
// fixed signal, circular shifting, conjugation, circular reversal,
// convolution, and composition of any of the above. The Fourier-dual
// engine (package fourierdual) derives duals for Scale, AddSignal,
// MultSignal and Shift in both directions and for Conjugate in the
// time->freq direction only; the other operators have no dual there.
//
// Each operator is represented as its own concrete type implementing Op, a
// tagged union matched with an exhaustive Go type switch in Apply — the
// idiomatic Go replacement for original_source/src/function.h's
// BaseFunction virtual-dispatch hierarchy and its dynamic_pointer_cast
// downcast chains in transform.h's compose_time/compose_freq.
package signalops
