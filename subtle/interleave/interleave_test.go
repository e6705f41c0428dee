// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package interleave_test

import (
	"math/rand/v2"
	"testing"

	"github.com/pqkernel/pqkernel-go/subtle/interleave"
)

// spread moves bit i of x (i < n) to bit 2i of the result.
func spread(x uint64, n int) (lo, hi uint64) {
	for i := range n {
		if (x>>i)&1 == 0 {
			continue
		}
		if j := 2 * i; j < 64 {
			lo |= 1 << j
		} else {
			hi |= 1 << (j - 64)
		}
	}
	return lo, hi
}

// rotateIndex moves bit i of a 2^b-bit word to the position whose index is i
// rotated left by k within b bits.
func rotateIndex(x uint64, b, k uint) uint64 {
	w := uint(1) << b
	var out uint64
	for i := range w {
		if (x>>i)&1 == 1 {
			j := ((i << k) | (i >> (b - k))) & (w - 1)
			out |= 1 << j
		}
	}
	return out
}

func TestExpand(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for range 500 {
		x := r.Uint64()
		if got, _ := spread(x&0xFF, 8); uint64(interleave.Expand8to16(uint32(x))) != got {
			t.Fatalf("Expand8to16(%#x) = %#x, want %#x", uint32(x), interleave.Expand8to16(uint32(x)), got)
		}
		if got, _ := spread(x&0xFFFF, 16); uint64(interleave.Expand16to32(uint32(x))) != got {
			t.Fatalf("Expand16to32(%#x) = %#x, want %#x", uint32(x), interleave.Expand16to32(uint32(x)), got)
		}
		if got, _ := spread(x&0xFFFFFFFF, 32); interleave.Expand32to64(uint32(x)) != got {
			t.Fatalf("Expand32to64(%#x) = %#x, want %#x", uint32(x), interleave.Expand32to64(uint32(x)), got)
		}
		var z [2]uint64
		interleave.Expand64to128(x, &z)
		wantLo, wantHi := spread(x, 64)
		if z[0] != wantLo || z[1] != wantHi {
			t.Fatalf("Expand64to128(%#x) = %#x:%#x, want %#x:%#x", x, z[1], z[0], wantHi, wantLo)
		}
		lo, hi := interleave.Expand64to128Rev(x)
		wantRevHi, _ := spread(x&0xFFFFFFFF, 32)
		wantRevLo, _ := spread(x>>32, 32)
		if lo != wantRevLo<<1 || hi != wantRevHi<<1 {
			t.Fatalf("Expand64to128Rev(%#x) = (%#x, %#x), want (%#x, %#x)", x, lo, hi, wantRevLo<<1, wantRevHi<<1)
		}
	}
}

func TestShuffleMatchesIndexRotation(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	for range 500 {
		x := r.Uint64()
		x32 := uint32(x)
		if got, want := interleave.Shuffle32(x32), uint32(rotateIndex(uint64(x32), 5, 1)); got != want {
			t.Fatalf("Shuffle32(%#x) = %#x, want %#x", x32, got, want)
		}
		if got, want := interleave.Shuffle2x32(x32), uint32(rotateIndex(uint64(x32), 5, 2)); got != want {
			t.Fatalf("Shuffle2x32(%#x) = %#x, want %#x", x32, got, want)
		}
		if got, want := interleave.Shuffle64(x), rotateIndex(x, 6, 1); got != want {
			t.Fatalf("Shuffle64(%#x) = %#x, want %#x", x, got, want)
		}
		if got, want := interleave.Shuffle2x64(x), rotateIndex(x, 6, 2); got != want {
			t.Fatalf("Shuffle2x64(%#x) = %#x, want %#x", x, got, want)
		}
		if got, want := interleave.Shuffle3x64(x), rotateIndex(x, 6, 3); got != want {
			t.Fatalf("Shuffle3x64(%#x) = %#x, want %#x", x, got, want)
		}
	}
}

func TestUnshuffleInvertsShuffle(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 10))
	for range 500 {
		x := r.Uint64()
		x32 := uint32(x)
		if got := interleave.Unshuffle32(interleave.Shuffle32(x32)); got != x32 {
			t.Fatalf("Unshuffle32(Shuffle32(%#x)) = %#x", x32, got)
		}
		if got := interleave.Unshuffle2x32(interleave.Shuffle2x32(x32)); got != x32 {
			t.Fatalf("Unshuffle2x32(Shuffle2x32(%#x)) = %#x", x32, got)
		}
		if got := interleave.Unshuffle64(interleave.Shuffle64(x)); got != x {
			t.Fatalf("Unshuffle64(Shuffle64(%#x)) = %#x", x, got)
		}
		if got := interleave.Unshuffle2x64(interleave.Shuffle2x64(x)); got != x {
			t.Fatalf("Unshuffle2x64(Shuffle2x64(%#x)) = %#x", x, got)
		}
		if got := interleave.Shuffle3x64(interleave.Shuffle3x64(x)); got != x {
			t.Fatalf("Shuffle3x64 twice on %#x = %#x", x, got)
		}
	}
}

func TestUnshuffleSplit(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	for range 200 {
		even, odd := r.Uint64()&0xFFFFFFFF, r.Uint64()&0xFFFFFFFF
		e, _ := spread(even, 32)
		o, _ := spread(odd, 32)
		gotEven, gotOdd := interleave.UnshuffleSplit64(e | o<<1)
		if gotEven != even || gotOdd != odd {
			t.Fatalf("UnshuffleSplit64() = (%#x, %#x), want (%#x, %#x)", gotEven, gotOdd, even, odd)
		}

		even128, odd128 := r.Uint64(), r.Uint64()
		eLo, eHi := spread(even128, 64)
		oLo, oHi := spread(odd128, 64)
		x := [2]uint64{eLo | oLo<<1, eHi | oHi<<1}
		var z [2]uint64
		interleave.Unshuffle128(&x, &z)
		if z[0] != even128 || z[1] != odd128 {
			t.Fatalf("Unshuffle128() = (%#x, %#x), want (%#x, %#x)", z[0], z[1], even128, odd128)
		}
	}
}

func BenchmarkExpand64to128(b *testing.B) {
	var z [2]uint64
	x := uint64(0x0123456789abcdef)
	for i := 0; i < b.N; i++ {
		interleave.Expand64to128(x+uint64(i), &z)
	}
}
