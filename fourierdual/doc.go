// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fourierdual composes a signal-domain operator chain and its
// Fourier-domain dual together: given a new operator to append to one
// chain, it derives the equivalent operator for the other chain so that,
// for every signal x, fft(U(x)) equals V(fft(x)).
//
// Grounded on original_source/src/transform.h's FourierDual<T>, translated
// from its dynamic_pointer_cast downcast chain
// (compose_time/compose_freq's if-cascade) into an exhaustive Go type
// switch over signalops.Op[F]. An operator with no defined dual produces an
// error carrying the offending type's name rather than a C++ exception,
// using github.com/pkg/errors so callers can errors.Cause it back to a
// sentinel — the same wrapping convention go-musicfox uses for its
// subsystem errors.
package fourierdual
