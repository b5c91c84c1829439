// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splitz

import "testing"

func TestStorageBasics(t *testing.T) {
	s := NewStorage[float64](5)
	if s.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", s.Size())
	}
	for i := 0; i < 5; i++ {
		if got := s.Get(i); got != (Complex[float64]{}) {
			t.Fatalf("index %d not zeroed: %v", i, got)
		}
	}

	s.Set(2, Complex[float64]{Re: 1.5, Im: -2.5})
	if got := s.Get(2); got != (Complex[float64]{Re: 1.5, Im: -2.5}) {
		t.Fatalf("Set/Get roundtrip failed: %v", got)
	}

	clone := s.Clone()
	clone.Set(2, Complex[float64]{Re: 9})
	if s.Get(2) == clone.Get(2) {
		t.Fatal("Clone should be independent of the original")
	}
}

func TestStoragePanicsOnOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range index")
		}
	}()
	NewStorage[float64](3).At(3)
}

func TestStoragePanicsOnNegativeSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative size")
		}
	}()
	NewStorage[float64](-1)
}

func TestViewAssignOps(t *testing.T) {
	a := NewStorage[float64](4)
	b := NewStorage[float64](4)
	for i := 0; i < 4; i++ {
		a.Set(i, Complex[float64]{Re: float64(i), Im: float64(i)})
		b.Set(i, Complex[float64]{Re: 1, Im: 1})
	}

	av := a.View()
	av.AddAssign(b.View())
	if got := av.Get(2); got != (Complex[float64]{Re: 3, Im: 3}) {
		t.Fatalf("AddAssign: got %v", got)
	}

	av.SubAssign(b.View())
	if got := av.Get(2); got != (Complex[float64]{Re: 2, Im: 2}) {
		t.Fatalf("SubAssign: got %v", got)
	}

	av.ScaleAssign(Complex[float64]{Re: 2})
	if got := av.Get(2); got != (Complex[float64]{Re: 4, Im: 4}) {
		t.Fatalf("ScaleAssign: got %v", got)
	}
}

func TestViewSub(t *testing.T) {
	s := NewStorage[float64](6)
	for i := 0; i < 6; i++ {
		s.Set(i, Complex[float64]{Re: float64(i)})
	}
	sub := s.View().Sub(2, 5)
	if sub.Size() != 3 {
		t.Fatalf("Sub size = %d, want 3", sub.Size())
	}
	if sub.Get(0).Re != 2 {
		t.Fatalf("Sub(2,5)[0] = %v, want 2", sub.Get(0))
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid sub-range")
		}
	}()
	s.View().Sub(4, 2)
}

func TestRefSwap(t *testing.T) {
	s := NewStorage[float64](2)
	s.Set(0, Complex[float64]{Re: 1, Im: 1})
	s.Set(1, Complex[float64]{Re: 2, Im: 2})

	r0, r1 := s.At(0), s.At(1)
	r0.Swap(r1)

	if s.Get(0).Re != 2 || s.Get(1).Re != 1 {
		t.Fatalf("Swap failed: %v, %v", s.Get(0), s.Get(1))
	}
}

func TestIteratorSwapAndAdvance(t *testing.T) {
	s := NewStorage[float64](4)
	for i := 0; i < 4; i++ {
		s.Set(i, Complex[float64]{Re: float64(i)})
	}
	v := s.View()
	it := v.Iter()
	if it.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", it.Len())
	}

	it.Swap(0, 3)
	if v.Get(0).Re != 3 || v.Get(3).Re != 0 {
		t.Fatalf("Swap via iterator failed: %v %v", v.Get(0), v.Get(3))
	}

	adv := it.Advance(2)
	if adv.Len() != 2 {
		t.Fatalf("Advance(2).Len() = %d, want 2", adv.Len())
	}
	if adv.At(0).Get().Re != v.Get(2).Re {
		t.Fatalf("Advance(2).At(0) = %v, want %v", adv.At(0).Get(), v.Get(2))
	}
}

func TestFromSlice(t *testing.T) {
	s := FromSlice([]Complex[float64]{{Re: 1}, {Re: 2}, {Re: 3}})
	if s.Size() != 3 || s.Get(1).Re != 2 {
		t.Fatalf("FromSlice mismatch: size=%d, [1]=%v", s.Size(), s.Get(1))
	}
}
