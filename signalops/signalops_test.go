// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package signalops

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"

	"github.com/splitfft/ctlfft/splitz"
)

const tol = 1e-8

var floatComparer = cmp.Comparer(func(a, b float64) bool {
	return math.Abs(a-b) < tol
})

func makeView(re, im []float64) splitz.View[float64] {
	return splitz.NewView(re, im)
}

func TestIdentity(t *testing.T) {
	re := []float64{1, 2, 3, 4}
	im := []float64{5, 6, 7, 8}
	v := makeView(append([]float64(nil), re...), append([]float64(nil), im...))
	Apply[float64](Identity[float64]{}, v)
	for i := range re {
		if v.Get(i).Re != re[i] || v.Get(i).Im != im[i] {
			t.Fatalf("identity modified index %d", i)
		}
	}
}

func TestScale(t *testing.T) {
	v := makeView([]float64{1, 0}, []float64{0, 1})
	Apply[float64](Scale[float64]{C: splitz.Complex[float64]{Re: 2, Im: 0}}, v)
	if v.Get(0) != (splitz.Complex[float64]{Re: 2, Im: 0}) {
		t.Errorf("got %v", v.Get(0))
	}
	if v.Get(1) != (splitz.Complex[float64]{Re: 0, Im: 2}) {
		t.Errorf("got %v", v.Get(1))
	}
}

func TestConjugate(t *testing.T) {
	v := makeView([]float64{1, 2}, []float64{3, -4})
	Apply[float64](Conjugate[float64]{}, v)
	if v.Get(0).Im != -3 || v.Get(1).Im != 4 {
		t.Fatalf("conjugate did not negate imaginary parts: %v %v", v.Get(0), v.Get(1))
	}
}

func TestCircularReverseKeepsFirstSample(t *testing.T) {
	re := []float64{0, 1, 2, 3, 4}
	im := make([]float64, 5)
	v := makeView(re, im)
	Apply[float64](CircularReverse[float64]{}, v)
	want := []float64{0, 4, 3, 2, 1}
	for i, w := range want {
		if v.Get(i).Re != w {
			t.Errorf("index %d = %g, want %g", i, v.Get(i).Re, w)
		}
	}
}

func TestShiftMatchesDirectIndexing(t *testing.T) {
	const n = 8
	rnd := rand.New(rand.NewSource(3))
	re := make([]float64, n)
	im := make([]float64, n)
	for i := range re {
		re[i] = rnd.Float64()
		im[i] = float64(i)
	}
	orig := make([]float64, n)
	copy(orig, re)

	for _, k := range []int64{0, 1, 3, 8, -1, -5, 17} {
		gotRe := append([]float64(nil), orig...)
		gotIm := append([]float64(nil), im...)
		v := makeView(gotRe, gotIm)
		Apply[float64](Shift[float64]{K: k}, v)

		for i := 0; i < n; i++ {
			srcIdx := ((int64(i)-k)%n + n) % n
			if v.Get(i).Re != orig[srcIdx] {
				t.Errorf("k=%d: index %d = %g, want %g (from %d)", k, i, v.Get(i).Re, orig[srcIdx], srcIdx)
			}
		}
	}
}

func TestAddAndMultSignal(t *testing.T) {
	v := makeView([]float64{1, 2}, []float64{0, 0})
	a := splitz.FromSlice([]splitz.Complex[float64]{{Re: 10}, {Re: 20}})
	Apply[float64](AddSignal[float64]{A: a}, v)
	if v.Get(0).Re != 11 || v.Get(1).Re != 22 {
		t.Fatalf("AddSignal mismatch: %v %v", v.Get(0), v.Get(1))
	}

	m := splitz.FromSlice([]splitz.Complex[float64]{{Re: 2}, {Re: 3}})
	Apply[float64](MultSignal[float64]{M: m}, v)
	if v.Get(0).Re != 22 || v.Get(1).Re != 66 {
		t.Fatalf("MultSignal mismatch: %v %v", v.Get(0), v.Get(1))
	}
}

func TestCompositeFlattensNested(t *testing.T) {
	var c Composite[float64]
	c.Append(Identity[float64]{})
	inner := Composite[float64]{Ops: []Op[float64]{Conjugate[float64]{}, CircularReverse[float64]{}}}
	c.Append(inner)
	if len(c.Ops) != 3 {
		t.Fatalf("expected flattened length 3, got %d", len(c.Ops))
	}
}

func TestConvolutionAgainstDirectCircularConvolution(t *testing.T) {
	const n = 8
	rnd := rand.New(rand.NewSource(9))
	xRe := make([]float64, n)
	xIm := make([]float64, n)
	kRe := make([]float64, n)
	kIm := make([]float64, n)
	for i := 0; i < n; i++ {
		xRe[i] = rnd.Float64()
		xIm[i] = rnd.Float64()
		kRe[i] = rnd.Float64()
		kIm[i] = rnd.Float64()
	}

	wantRe := make([]float64, n)
	wantIm := make([]float64, n)
	for i := 0; i < n; i++ {
		var sr, si float64
		for j := 0; j < n; j++ {
			ki := ((i-j)%n + n) % n
			// (xRe+j xIm) * (kRe+j kIm)
			sr += xRe[j]*kRe[ki] - xIm[j]*kIm[ki]
			si += xRe[j]*kIm[ki] + xIm[j]*kRe[ki]
		}
		wantRe[i], wantIm[i] = sr, si
	}

	kernel := splitz.NewStorage[float64](n)
	kr, ki := kernel.Re(), kernel.Im()
	copy(kr, kRe)
	copy(ki, kIm)

	conv := NewConvolution[float64](kernel)
	v := makeView(append([]float64(nil), xRe...), append([]float64(nil), xIm...))
	Apply[float64](conv, v)

	for i := 0; i < n; i++ {
		got := v.Get(i)
		if !cmp.Equal(got.Re, wantRe[i], floatComparer) || !cmp.Equal(got.Im, wantIm[i], floatComparer) {
			t.Errorf("index %d: got (%g,%g), want (%g,%g)", i, got.Re, got.Im, wantRe[i], wantIm[i])
		}
	}
}
