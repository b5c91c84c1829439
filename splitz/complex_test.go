// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splitz

import (
	"math"
	"testing"
)

func TestComplexArith(t *testing.T) {
	a := Complex[float64]{Re: 1, Im: 2}
	b := Complex[float64]{Re: 3, Im: -1}

	if got := a.Add(b); got != (Complex[float64]{Re: 4, Im: 1}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Complex[float64]{Re: -2, Im: 3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Mul(b); got != (Complex[float64]{Re: 5, Im: 5}) {
		t.Errorf("Mul: got %v, want (5,5)", got)
	}
	if got := a.Conj(); got != (Complex[float64]{Re: 1, Im: -2}) {
		t.Errorf("Conj: got %v", got)
	}
}

func TestComplexAbsAndBuiltinBridge(t *testing.T) {
	c := Complex[float64]{Re: 3, Im: 4}
	if got := c.Abs(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Abs: got %g, want 5", got)
	}

	bc := complex(3.0, 4.0)
	if got := FromComplex128[float64](bc); got != c {
		t.Errorf("FromComplex128: got %v, want %v", got, c)
	}
	if got := c.Complex128(); got != bc {
		t.Errorf("Complex128: got %v, want %v", got, bc)
	}
}
