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

package bitperm_test

import (
	"math/rand/v2"
	"testing"

	"github.com/pqkernel/pqkernel-go/subtle/bitperm"
)

// naiveStep64 swaps bit i and bit i+s for every bit i set in m.
func naiveStep64(x, m uint64, s uint) uint64 {
	out := x
	for i := uint(0); i+s < 64; i++ {
		if (m>>i)&1 == 0 {
			continue
		}
		lo := (x >> i) & 1
		hi := (x >> (i + s)) & 1
		out &^= (1 << i) | (1 << (i + s))
		out |= hi<<i | lo<<(i+s)
	}
	return out
}

func TestStep32SwapsHalves(t *testing.T) {
	if got, want := bitperm.Step32(0x12345678, 0x0000FFFF, 16), uint32(0x56781234); got != want {
		t.Errorf("Step32() = %#x, want %#x", got, want)
	}
	if got, want := bitperm.StepSimple32(0x12345678, 0x0000FFFF, 16), uint32(0x56781234); got != want {
		t.Errorf("StepSimple32() = %#x, want %#x", got, want)
	}
	if got, want := bitperm.Step64(0x0123456789abcdef, 0x00000000FFFFFFFF, 32), uint64(0x89abcdef01234567); got != want {
		t.Errorf("Step64() = %#x, want %#x", got, want)
	}
}

func TestStepMatchesNaive(t *testing.T) {
	for _, tc := range []struct {
		name string
		m    uint64
		s    uint
	}{
		{"nibbles", 0x0F0F0F0F0F0F0F0F, 4},
		{"pairs", 0x3333333333333333, 2},
		{"bits", 0x5555555555555555, 1},
		{"sparse", 0x00AA00AA00AA00AA, 7},
		{"words", 0x000000000000FFFF, 48},
		{"interleave", 0x2222222222222222, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := rand.New(rand.NewPCG(1, 2))
			for range 200 {
				x := r.Uint64()
				want := naiveStep64(x, tc.m, tc.s)
				if got := bitperm.Step64(x, tc.m, tc.s); got != want {
					t.Fatalf("Step64(%#x) = %#x, want %#x", x, got, want)
				}
				if got := bitperm.Step64(bitperm.Step64(x, tc.m, tc.s), tc.m, tc.s); got != x {
					t.Fatalf("Step64 applied twice = %#x, want %#x", got, x)
				}
				x32 := uint32(x)
				if tc.s < 32 {
					m32 := uint32(tc.m) & (^uint32(0) >> tc.s)
					want32 := uint32(naiveStep64(uint64(x32), uint64(m32), tc.s))
					if got := bitperm.Step32(x32, m32, tc.s); got != want32 {
						t.Fatalf("Step32(%#x) = %#x, want %#x", x32, got, want32)
					}
				}
			}
		})
	}
}

func TestStepSimpleMatchesStepOnFullMasks(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for _, tc := range []struct {
		m uint64
		s uint
	}{
		{0x5555555555555555, 1},
		{0x3333333333333333, 2},
		{0x0F0F0F0F0F0F0F0F, 4},
		{0x00000000FFFFFFFF, 32},
	} {
		for range 100 {
			x := r.Uint64()
			if got, want := bitperm.StepSimple64(x, tc.m, tc.s), bitperm.Step64(x, tc.m, tc.s); got != want {
				t.Fatalf("StepSimple64(%#x, %#x, %d) = %#x, want %#x", x, tc.m, tc.s, got, want)
			}
			x32 := uint32(x)
			m32 := uint32(tc.m)
			if tc.s == 32 {
				continue
			}
			if got, want := bitperm.StepSimple32(x32, m32, tc.s), bitperm.Step32(x32, m32, tc.s); got != want {
				t.Fatalf("StepSimple32(%#x, %#x, %d) = %#x, want %#x", x32, m32, tc.s, got, want)
			}
		}
	}
}

func TestStep2(t *testing.T) {
	x, y := uint32(0xAAAAAAAA), uint32(0x55555555)
	bitperm.Step2x32(&x, &y, 0xFFFFFFFF, 0)
	if x != 0x55555555 || y != 0xAAAAAAAA {
		t.Errorf("Step2x32 full swap = (%#x, %#x), want (0x55555555, 0xaaaaaaaa)", x, y)
	}
	a, b := uint64(0x00000000FFFFFFFF), uint64(0)
	bitperm.Step2x64(&a, &b, 0x00000000FFFFFFFF, 32)
	if a != 0 || b != 0xFFFFFFFF00000000 {
		t.Errorf("Step2x64 = (%#x, %#x), want (0, 0xffffffff00000000)", a, b)
	}
}
