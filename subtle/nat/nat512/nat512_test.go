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

package nat512_test

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pqkernel/pqkernel-go/subtle/nat"
	"github.com/pqkernel/pqkernel-go/subtle/nat/nat512"
)

func random(r *rand.Rand) *[16]uint32 {
	x := nat512.Create()
	for i := range x {
		switch r.IntN(8) {
		case 0:
			x[i] = 0xFFFFFFFF
		case 1:
			x[i] = 0
		default:
			x[i] = r.Uint32()
		}
	}
	return x
}

func testInputs(r *rand.Rand) [][2]*[16]uint32 {
	allOnes := nat512.Create()
	for i := range allOnes {
		allOnes[i] = 0xFFFFFFFF
	}
	// Halves chosen so that the differences of the halves take every sign.
	lowHeavy := nat512.Create()
	for i := range len(lowHeavy) / 2 {
		lowHeavy[i] = 0xFFFFFFFF
	}
	highHeavy := nat512.Create()
	for i := len(highHeavy) / 2; i < len(highHeavy); i++ {
		highHeavy[i] = 0xFFFFFFFF
	}
	inputs := [][2]*[16]uint32{
		{allOnes, allOnes},
		{nat512.Create(), allOnes},
		{lowHeavy, highHeavy},
		{highHeavy, lowHeavy},
		{lowHeavy, lowHeavy},
		{highHeavy, highHeavy},
	}
	for range 200 {
		inputs = append(inputs, [2]*[16]uint32{random(r), random(r)})
	}
	return inputs
}

func TestMulMatchesSchoolbook(t *testing.T) {
	r := rand.New(rand.NewPCG(512, 1))
	for _, in := range testInputs(r) {
		x, y := in[0], in[1]
		zz := nat512.CreateExt()
		nat512.Mul(x, y, zz)
		want := make([]uint32, 32)
		nat.Mul(16, x[:], y[:], want)
		if diff := cmp.Diff(want, zz[:]); diff != "" {
			t.Fatalf("Mul(%v, %v) mismatch (-want +got):\n%s", x, y, diff)
		}
		wantBig := new(big.Int).Mul(nat512.ToBigInt(x), nat512.ToBigInt(y))
		if got := nat512.ToBigIntExt(zz); got.Cmp(wantBig) != 0 {
			t.Fatalf("Mul(%v, %v) = %v, want %v", x, y, got, wantBig)
		}
	}
}

func TestSquareMatchesMul(t *testing.T) {
	r := rand.New(rand.NewPCG(512, 2))
	for _, in := range testInputs(r) {
		x := in[0]
		xx := nat512.CreateExt()
		nat512.Mul(x, x, xx)
		sq := nat512.CreateExt()
		nat512.Square(x, sq)
		if diff := cmp.Diff(xx, sq); diff != "" {
			t.Fatalf("Square(%v) differs from Mul(x, x) (-want +got):\n%s", x, diff)
		}
	}
}

func TestHelpers(t *testing.T) {
	r := rand.New(rand.NewPCG(512, 3))
	x, y := random(r), random(r)
	z := nat512.Create()
	nat512.Xor(x, y, z)
	nat512.Xor(z, y, z)
	if !nat512.Eq(x, z) {
		t.Errorf("Xor twice = %v, want %v", z, x)
	}
	nat512.Xor(x, x, z)
	if !nat512.IsZero(z) {
		t.Errorf("Xor(x, x) = %v, want 0", z)
	}
	nat512.Copy(y, z)
	if diff := cmp.Diff(y, z); diff != "" {
		t.Errorf("Copy() mismatch (-want +got):\n%s", diff)
	}
	v := nat512.ToBigInt(x)
	if got := nat512.FromBigInt(v); !nat512.Eq(got, x) {
		t.Errorf("FromBigInt(ToBigInt(x)) = %v, want %v", got, x)
	}
}

func TestAddSub(t *testing.T) {
	r := rand.New(rand.NewPCG(512, 6))
	for range 100 {
		x, y := random(r), random(r)
		z := nat512.Create()
		c := nat512.Add(x, y, z)
		b := nat512.Sub(z, y, z)
		if !nat512.Eq(z, x) || int32(c) != -b {
			t.Fatalf("Sub(Add(x, y), y) = (%v, %d, %d), want %v", z, c, b, x)
		}

		w := nat512.Create()
		nat512.Copy(y, w)
		c = nat512.AddBothTo(x, x, w)
		b = nat512.SubBothFrom(x, x, w)
		if !nat512.Eq(w, y) || int32(c) != -b {
			t.Fatalf("SubBothFrom() did not undo AddBothTo()")
		}

		u, v := nat512.Create(), nat512.Create()
		nat512.Copy(x, u)
		nat512.Copy(y, v)
		c = nat512.AddToEachOther(u, v)
		if !nat512.Eq(u, v) {
			t.Fatalf("AddToEachOther() left u != v")
		}
		if b := nat512.SubFrom(y, u); !nat512.Eq(u, x) || int32(c) != -b {
			t.Fatalf("SubFrom() did not undo AddToEachOther()")
		}

		d := nat512.Create()
		mask := nat512.Diff(x, y, d)
		wantDiff := new(big.Int).Sub(nat512.ToBigInt(x), nat512.ToBigInt(y))
		wantMask := uint32(0)
		if wantDiff.Sign() < 0 {
			wantMask = 0xFFFFFFFF
		}
		if mask != wantMask || nat512.ToBigInt(d).Cmp(wantDiff.Abs(wantDiff)) != 0 {
			t.Fatalf("Diff(%v, %v) = (%v, %#x), want (%v, %#x)", x, y, d, mask, wantDiff, wantMask)
		}
		if got, want := nat512.Gte(x, y), wantMask == 0; got != want {
			t.Fatalf("Gte() = %v, want %v", got, want)
		}

		xx, yy := nat512.CreateExt(), nat512.CreateExt()
		nat512.Mul(x, y, xx)
		nat512.Square(y, yy)
		zz := nat512.CreateExt()
		c = nat512.AddExt(xx, yy, zz)
		b = nat512.SubExt(zz, yy, zz)
		if diff := cmp.Diff(xx, zz); diff != "" || int32(c) != -b {
			t.Fatalf("SubExt(AddExt(xx, yy), yy) mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestMulWordAddTo(t *testing.T) {
	r := rand.New(rand.NewPCG(512, 7))
	for range 50 {
		x, z := random(r), random(r)
		w := r.Uint32()
		want := new(big.Int).Mul(big.NewInt(int64(w)), nat512.ToBigInt(x))
		want.Add(want, nat512.ToBigInt(z))
		c := nat512.MulWordAddTo(w, x, z)
		got := new(big.Int).Add(nat512.ToBigInt(z), new(big.Int).Lsh(big.NewInt(int64(c)), 512))
		if got.Cmp(want) != 0 {
			t.Fatalf("MulWordAddTo() = %v, want %v", got, want)
		}
	}
}

func TestMulAddTo(t *testing.T) {
	r := rand.New(rand.NewPCG(512, 8))
	for range 50 {
		x, y := random(r), random(r)
		zz := nat512.CreateExt()
		for i := range zz {
			zz[i] = r.Uint32()
		}
		want := new(big.Int).Mul(nat512.ToBigInt(x), nat512.ToBigInt(y))
		want.Add(want, nat512.ToBigIntExt(zz))
		c := nat512.MulAddTo(x, y, zz)
		got := new(big.Int).Add(nat512.ToBigIntExt(zz), new(big.Int).Lsh(big.NewInt(int64(c)), 2*512))
		if got.Cmp(want) != 0 {
			t.Fatalf("MulAddTo() = %v, want %v", got, want)
		}
	}
}

func TestPredicatesAndConversions(t *testing.T) {
	one := nat512.Create()
	one[0] = 1
	if !nat512.IsOne(one) || nat512.IsZero(one) {
		t.Errorf("IsOne/IsZero(1) = %v/%v, want true/false", nat512.IsOne(one), nat512.IsZero(one))
	}
	if !nat512.IsZero(nat512.Create()) {
		t.Errorf("IsZero(0) = false, want true")
	}
	if got := nat512.GetBit(one, 0); got != 1 {
		t.Errorf("GetBit(1, 0) = %d, want 1", got)
	}
	top := new(big.Int).Lsh(big.NewInt(1), 512-1)
	x := nat512.FromBigInt(top)
	if got := nat512.GetBit(x, 512-1); got != 1 {
		t.Errorf("GetBit(2^512-1) = %d, want 1", got)
	}
	if got := nat512.ToBigInt(x); got.Cmp(top) != 0 {
		t.Errorf("ToBigInt(FromBigInt(x)) = %v, want %v", got, top)
	}
	if want := nat.FromBigInt(512, top); !nat.Eq(16, want, x[:]) {
		t.Errorf("FromBigInt() = %v, want %v", x, want)
	}
}

func TestNat64(t *testing.T) {
	v := new(big.Int).Lsh(big.NewInt(0x1234567), 512-40)
	x := nat512.FromBigInt64(v)
	if got := nat512.ToBigInt64(x); got.Cmp(v) != 0 {
		t.Errorf("ToBigInt64(FromBigInt64(v)) = %v, want %v", got, v)
	}
	z := nat512.Create64()
	nat512.Copy64(x, z)
	if !nat512.Eq64(x, z) {
		t.Errorf("Eq64(x, Copy64(x)) = false")
	}
	if !nat512.IsZero64(nat512.Create64()) || nat512.IsZero64(z) {
		t.Errorf("IsZero64() wrong")
	}
	one := nat512.Create64()
	one[0] = 1
	if !nat512.IsOne64(one) || nat512.IsOne64(z) {
		t.Errorf("IsOne64() wrong")
	}
}

func BenchmarkMul(b *testing.B) {
	r := rand.New(rand.NewPCG(512, 4))
	x, y := random(r), random(r)
	zz := nat512.CreateExt()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nat512.Mul(x, y, zz)
	}
}

func BenchmarkSquare(b *testing.B) {
	r := rand.New(rand.NewPCG(512, 5))
	x := random(r)
	zz := nat512.CreateExt()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nat512.Square(x, zz)
	}
}
