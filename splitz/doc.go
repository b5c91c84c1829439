// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package splitz implements the split-complex storage and view model: an
// owning container (Storage) holding the real and imaginary halves of a
// sequence of complex scalars as two separate slices, non-owning views
// (View) over a Storage or a sub-range of one, and the aliased complex
// reference (Ref) that views index into.
//
// This is the data model of spec.md §3/§4.2, translated from
// original_source/src/vec.h and original_source/src/tview.h.
package splitz

import "github.com/splitfft/ctlfft/vecarith"

// Float is re-exported from vecarith so callers of this package do not need
// to import vecarith directly just to name the precision constraint.
type Float = vecarith.Float
