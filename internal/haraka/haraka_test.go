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

package haraka_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pqkernel/pqkernel-go/internal/haraka"
)

func seq(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func mustHexDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex.DecodeString(%q) err = %v", s, err)
	}
	return b
}

// Reference outputs from the Haraka v2 paper for the inputs 0x00, 0x01, ...
func TestKnownAnswers(t *testing.T) {
	h := haraka.New()

	var in256 [32]byte
	copy(in256[:], seq(32))
	got256 := h.Sum256(&in256)
	if want := mustHexDecode(t, "8027ccb87949774b78d0545fb72bf70c695c2a0923cbd47bba1159efbf2b2c1c"); !bytes.Equal(got256[:], want) {
		t.Errorf("Sum256(00..1f) = %x, want %x", got256, want)
	}

	var in512 [64]byte
	copy(in512[:], seq(64))
	got512 := h.Sum512(&in512)
	if want := mustHexDecode(t, "be7f723b4e80a99813b292287f306f625a6d57331cae5f34dd9277b0945be2aa"); !bytes.Equal(got512[:], want) {
		t.Errorf("Sum512(00..3f) = %x, want %x", got512, want)
	}
}

func TestSum512IsTruncatedFeedForward(t *testing.T) {
	h := haraka.New()
	var in [64]byte
	copy(in[:], seq(64))
	s := in
	h.Permute512(&s)
	var want [32]byte
	for i, off := range []int{8, 24, 32, 48} {
		for j := range 8 {
			want[8*i+j] = s[off+j] ^ in[off+j]
		}
	}
	if diff := cmp.Diff(want, h.Sum512(&in)); diff != "" {
		t.Errorf("Sum512() mismatch (-want +got):\n%s", diff)
	}
}

func TestPermutationsDiffuse(t *testing.T) {
	h := haraka.New()
	var a, b [64]byte
	b[63] = 1
	if h.Sum512(&a) == h.Sum512(&b) {
		t.Error("Sum512 ignores the last input byte")
	}
	var c, d [32]byte
	d[0] = 0x80
	if h.Sum256(&c) == h.Sum256(&d) {
		t.Error("Sum256 ignores the first input byte")
	}
	if h.Sum256(&c) == c {
		t.Error("Sum256(0) = 0")
	}
}

func TestTweakedConstants(t *testing.T) {
	std := haraka.New()
	t1 := haraka.NewTweaked(seq(16))
	t2 := haraka.NewTweaked(seq(16))
	t3 := haraka.NewTweaked(seq(17))
	var in [64]byte
	copy(in[:], seq(64))
	if t1.Sum512(&in) != t2.Sum512(&in) {
		t.Error("NewTweaked is not deterministic")
	}
	if t1.Sum512(&in) == t3.Sum512(&in) {
		t.Error("different seeds produced the same permutation")
	}
	if t1.Sum512(&in) == std.Sum512(&in) {
		t.Error("tweaked constants equal the standard ones")
	}
}

func TestSpongeSplitInvariance(t *testing.T) {
	h := haraka.NewTweaked([]byte("sponge test seed"))
	for _, inLen := range []int{0, 1, 31, 32, 33, 64, 100} {
		in := seq(inLen)
		want := make([]byte, 97)
		h.SumS(want, in)

		x := h.NewXOF()
		for i := 0; i < len(in); i += 7 {
			x.Write(in[i:min(i+7, len(in))])
		}
		got := make([]byte, 0, len(want))
		for _, n := range []int{1, 31, 2, 32, 31} {
			buf := make([]byte, n)
			x.Read(buf)
			got = append(got, buf...)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("inLen=%d: split sponge mismatch (-want +got):\n%s", inLen, diff)
		}

		x.Reset()
		x.Write(in)
		short := make([]byte, 5)
		x.Read(short)
		if !bytes.Equal(short, want[:5]) {
			t.Errorf("inLen=%d: output is not a prefix of the longer output", inLen)
		}
	}
}

func TestSpongeDomainSeparation(t *testing.T) {
	h := haraka.New()
	a := make([]byte, 32)
	b := make([]byte, 32)
	h.SumS(a, []byte{})
	h.SumS(b, []byte{0})
	if bytes.Equal(a, b) {
		t.Error("Haraka-S() == Haraka-S(0x00)")
	}
	h.SumS(b, make([]byte, 32))
	if bytes.Equal(a, b) {
		t.Error("Haraka-S() == Haraka-S(0^32)")
	}
}

func TestWriteAfterReadPanics(t *testing.T) {
	x := haraka.New().NewXOF()
	x.Read(make([]byte, 1))
	defer func() {
		if recover() == nil {
			t.Error("Write after Read did not panic")
		}
	}()
	x.Write([]byte{1})
}

func BenchmarkSum512(b *testing.B) {
	h := haraka.New()
	var in [64]byte
	b.SetBytes(64)
	for i := 0; i < b.N; i++ {
		h.Sum512(&in)
	}
}
