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

// Package nat512 implements 512-bit natural numbers as 16 32-bit words.
//
// Products are formed from 256-bit halves with three half-width
// multiplications: the low product, the high product, and the product of the
// differences of the halves, whose sign is tracked as a mask so that it can be
// added or subtracted back in constant time.
package nat512

import (
	"math/big"

	"github.com/pqkernel/pqkernel-go/subtle/nat"
	"github.com/pqkernel/pqkernel-go/subtle/nat/nat256"
)

const (
	half     = 8
	words    = 16
	extWords = 32
)

// Create returns a zero value.
func Create() *[16]uint32 { return new([16]uint32) }

// CreateExt returns a zero double-width value.
func CreateExt() *[32]uint32 { return new([32]uint32) }

// Copy copies x into z.
func Copy(x, z *[16]uint32) { *z = *x }

// Add sets z = x + y and returns the carry.
func Add(x, y, z *[16]uint32) uint32 {
	return nat.Add(words, x[:], y[:], z[:])
}

// AddBothTo sets z = z + x + y and returns the carry.
func AddBothTo(x, y, z *[16]uint32) uint32 {
	return nat.AddBothTo(words, x[:], y[:], z[:])
}

// AddTo sets z = z + x and returns the carry.
func AddTo(x, z *[16]uint32) uint32 {
	return nat.AddTo(words, x[:], z[:])
}

// AddToWithCarry sets z = z + x + cIn and returns the carry. cIn may be up to
// 2.
func AddToWithCarry(x, z *[16]uint32, cIn uint32) uint32 {
	return nat.AddToWithCarry(words, x[:], z[:], cIn)
}

// AddToEachOther sets both u and v to u + v and returns the carry.
func AddToEachOther(u, v *[16]uint32) uint32 {
	return nat.AddToEachOther(words, u[:], v[:])
}

// AddExt sets zz = xx + yy and returns the carry.
func AddExt(xx, yy, zz *[32]uint32) uint32 {
	return nat.Add(extWords, xx[:], yy[:], zz[:])
}

// Sub sets z = x - y and returns the borrow (0 or -1).
func Sub(x, y, z *[16]uint32) int32 {
	return nat.Sub(words, x[:], y[:], z[:])
}

// SubFrom sets z = z - x and returns the borrow.
func SubFrom(x, z *[16]uint32) int32 {
	return nat.SubFrom(words, x[:], z[:])
}

// SubBothFrom sets z = z - x - y and returns the borrow (0, -1 or -2).
func SubBothFrom(x, y, z *[16]uint32) int32 {
	return nat.SubBothFrom(words, x[:], y[:], z[:])
}

// SubExt sets zz = xx - yy and returns the borrow.
func SubExt(xx, yy, zz *[32]uint32) int32 {
	return nat.Sub(extWords, xx[:], yy[:], zz[:])
}

// Diff sets z = |x - y| and returns a mask that is all ones if x < y.
func Diff(x, y, z *[16]uint32) uint32 {
	return nat.Diff(words, x[:], y[:], z[:])
}

// Gte reports whether x >= y. Variable time.
func Gte(x, y *[16]uint32) bool {
	return nat.Gte(words, x[:], y[:])
}

// Eq reports whether x == y. Variable time.
func Eq(x, y *[16]uint32) bool { return *x == *y }

// IsOne reports whether x == 1. Variable time.
func IsOne(x *[16]uint32) bool { return *x == [16]uint32{1} }

// IsZero reports whether x == 0. Variable time.
func IsZero(x *[16]uint32) bool { return *x == [16]uint32{} }

// GetBit returns bit number bit of x, or 0 if bit is out of range.
func GetBit(x *[16]uint32, bit int) uint32 {
	return nat.GetBit(x[:], bit)
}

// Xor sets z = x ^ y.
func Xor(x, y, z *[16]uint32) {
	nat.Xor(words, x[:], y[:], z[:])
}

func low(x *[16]uint32) *[8]uint32 { return (*[8]uint32)(x[:half]) }
func high(x *[16]uint32) *[8]uint32 { return (*[8]uint32)(x[half:]) }

// quarter returns words [i*half, (i+1)*half) of zz.
func quarter(zz *[32]uint32, i int) *[8]uint32 {
	return (*[8]uint32)(zz[i*half : (i+1)*half])
}

// halfExt returns words [i*half, i*half+words) of zz.
func halfExt(zz *[32]uint32, i int) *[16]uint32 {
	return (*[16]uint32)(zz[i*half : i*half+words])
}

// foldHalves turns zz = L + B^2*H, for B = 2^256, into
// L + B*(L + H) + B^2*H, returning the carry into the top quarter.
func foldHalves(zz *[32]uint32) uint32 {
	cHigh := nat256.AddToEachOther(quarter(zz, 1), quarter(zz, 2))
	cMid := cHigh + nat256.AddTo(quarter(zz, 0), quarter(zz, 1))
	cHigh += nat256.AddToWithCarry(quarter(zz, 3), quarter(zz, 2), cMid)
	return cHigh
}

// Mul sets zz = x * y. zz must not overlap x or y.
func Mul(x, y *[16]uint32, zz *[32]uint32) {
	nat256.Mul(low(x), low(y), halfExt(zz, 0))
	nat256.Mul(high(x), high(y), halfExt(zz, 2))
	c := foldHalves(zz)

	var dx, dy [8]uint32
	neg := nat256.Diff(high(x), low(x), &dx) ^ nat256.Diff(high(y), low(y), &dy)

	var tt [16]uint32
	nat256.Mul(&dx, &dy, &tt)

	// (x1-x0)(y1-y0) is subtracted from the middle; it is negative when
	// exactly one of the differences is.
	mid := zz[half : half+words]
	c += nat.CAddTo(words, neg&1, tt[:], mid)
	c += uint32(nat.CSubFrom(words, ^neg&1, tt[:], mid))
	nat.AddWordAt(extWords, c, zz[:], 3*half)
}

// Square sets zz = x * x. zz must not overlap x.
func Square(x *[16]uint32, zz *[32]uint32) {
	nat256.Square(low(x), halfExt(zz, 0))
	nat256.Square(high(x), halfExt(zz, 2))
	c := foldHalves(zz)

	var dx [8]uint32
	nat256.Diff(high(x), low(x), &dx)

	var tt [16]uint32
	nat256.Square(&dx, &tt)

	c += uint32(nat.SubFrom(words, tt[:], zz[half:half+words]))
	nat.AddWordAt(extWords, c, zz[:], 3*half)
}

// MulAddTo sets zz = zz + x * y and returns the carry.
func MulAddTo(x, y *[16]uint32, zz *[32]uint32) uint32 {
	var tt [32]uint32
	Mul(x, y, &tt)
	return nat.AddTo(extWords, tt[:], zz[:])
}

// MulWordAddTo sets z = z + x * y and returns the carry word.
func MulWordAddTo(x uint32, y, z *[16]uint32) uint32 {
	return nat.MulWordAddTo(words, x, y[:], z[:])
}

// FromBigInt converts x, which must be non-negative and fit in 512 bits.
func FromBigInt(x *big.Int) *[16]uint32 {
	return (*[16]uint32)(nat.FromBigInt(512, x))
}

// ToBigInt converts x to a big.Int.
func ToBigInt(x *[16]uint32) *big.Int {
	return nat.ToBigInt(words, x[:])
}

// ToBigIntExt converts the double-width value xx to a big.Int.
func ToBigIntExt(xx *[32]uint32) *big.Int {
	return nat.ToBigInt(extWords, xx[:])
}

// Create64 returns a zero value stored as 64-bit words.
func Create64() *[8]uint64 { return new([8]uint64) }

// Copy64 copies x into z.
func Copy64(x, z *[8]uint64) { *z = *x }

// Eq64 reports whether x == y. Variable time.
func Eq64(x, y *[8]uint64) bool { return *x == *y }

// IsOne64 reports whether x == 1. Variable time.
func IsOne64(x *[8]uint64) bool { return *x == [8]uint64{1} }

// IsZero64 reports whether x == 0. Variable time.
func IsZero64(x *[8]uint64) bool { return *x == [8]uint64{} }

// FromBigInt64 converts x, which must be non-negative and fit in 512 bits.
func FromBigInt64(x *big.Int) *[8]uint64 {
	return (*[8]uint64)(nat.FromBigInt64(512, x))
}

// ToBigInt64 converts x to a big.Int.
func ToBigInt64(x *[8]uint64) *big.Int {
	return nat.ToBigInt64(8, x[:])
}
