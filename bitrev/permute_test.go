// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitrev

import (
	"fmt"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/splitfft/ctlfft/splitz"
)

func TestIsPow2(t *testing.T) {
	cases := map[int]bool{
		-1: false, 0: false, 1: true, 2: true, 3: false,
		4: true, 1023: false, 1024: true, 1 << 20: true,
	}
	for n, want := range cases {
		if got := IsPow2(n); got != want {
			t.Errorf("IsPow2(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestLog2(t *testing.T) {
	for k := 0; k <= 16; k++ {
		n := 1 << k
		if got := Log2(n); got != k {
			t.Errorf("Log2(%d) = %d, want %d", n, got, k)
		}
	}
}

// reference computes the bit-reversal permutation by brute force for
// comparison against both the trivial and COBRA paths.
func reference(n, k int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = int(reverseBits(uint64(i), k))
	}
	return out
}

func TestPermuteMatchesReference(t *testing.T) {
	// 2048 and 4096 exercise the COBRA path (n > trivialMax); 64 and 1024
	// exercise the trivial path.
	for _, n := range []int{2, 4, 64, 1024, 2048, 4096, 1 << 15} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			k := Log2(n)
			want := reference(n, k)

			re := make([]float64, n)
			im := make([]float64, n)
			rnd := rand.New(rand.NewSource(1))
			origRe := make([]float64, n)
			origIm := make([]float64, n)
			for i := range re {
				re[i] = rnd.Float64()
				im[i] = rnd.Float64()
				origRe[i] = re[i]
				origIm[i] = im[i]
			}

			v := splitz.NewView(re, im)
			Permute[float64](v)

			for i := 0; i < n; i++ {
				j := want[i]
				if re[j] != origRe[i] || im[j] != origIm[i] {
					t.Fatalf("n=%d: index %d should have moved to %d", n, i, j)
				}
			}
		})
	}
}

func TestPermuteInvolution(t *testing.T) {
	const n = 8192
	re := make([]float64, n)
	im := make([]float64, n)
	rnd := rand.New(rand.NewSource(2))
	for i := range re {
		re[i] = rnd.Float64()
		im[i] = rnd.Float64()
	}
	orig := append([]float64(nil), re...)

	v := splitz.NewView(re, im)
	Permute[float64](v)
	Permute[float64](v)

	for i := range re {
		if re[i] != orig[i] {
			t.Fatalf("bit-reversal is not self-inverse at index %d", i)
		}
	}
}

func TestPermuteRejectsNonPow2(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-power-of-two size")
		}
	}()
	re := make([]float64, 3)
	im := make([]float64, 3)
	Permute[float64](splitz.NewView(re, im))
}
