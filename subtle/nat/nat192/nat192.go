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

// Package nat192 implements 192-bit natural numbers as six 32-bit words.
//
// It is the half-width building block for the 384-bit multiplication in
// nat384.
package nat192

import (
	"math/big"

	"github.com/pqkernel/pqkernel-go/subtle/nat"
)

const (
	words    = 6
	extWords = 12
)

// Create returns a zero value.
func Create() *[6]uint32 { return new([6]uint32) }

// CreateExt returns a zero double-width value.
func CreateExt() *[12]uint32 { return new([12]uint32) }

// Copy copies x into z.
func Copy(x, z *[6]uint32) { *z = *x }

// Add sets z = x + y and returns the carry.
func Add(x, y, z *[6]uint32) uint32 {
	return nat.Add(words, x[:], y[:], z[:])
}

// AddBothTo sets z = z + x + y and returns the carry.
func AddBothTo(x, y, z *[6]uint32) uint32 {
	return nat.AddBothTo(words, x[:], y[:], z[:])
}

// AddTo sets z = z + x and returns the carry.
func AddTo(x, z *[6]uint32) uint32 {
	return nat.AddTo(words, x[:], z[:])
}

// AddToWithCarry sets z = z + x + cIn and returns the carry. cIn may be up to
// 2.
func AddToWithCarry(x, z *[6]uint32, cIn uint32) uint32 {
	return nat.AddToWithCarry(words, x[:], z[:], cIn)
}

// AddToEachOther sets both u and v to u + v and returns the carry.
func AddToEachOther(u, v *[6]uint32) uint32 {
	return nat.AddToEachOther(words, u[:], v[:])
}

// AddExt sets zz = xx + yy and returns the carry.
func AddExt(xx, yy, zz *[12]uint32) uint32 {
	return nat.Add(extWords, xx[:], yy[:], zz[:])
}

// Sub sets z = x - y and returns the borrow (0 or -1).
func Sub(x, y, z *[6]uint32) int32 {
	return nat.Sub(words, x[:], y[:], z[:])
}

// SubFrom sets z = z - x and returns the borrow.
func SubFrom(x, z *[6]uint32) int32 {
	return nat.SubFrom(words, x[:], z[:])
}

// SubBothFrom sets z = z - x - y and returns the borrow (0, -1 or -2).
func SubBothFrom(x, y, z *[6]uint32) int32 {
	return nat.SubBothFrom(words, x[:], y[:], z[:])
}

// SubExt sets zz = xx - yy and returns the borrow.
func SubExt(xx, yy, zz *[12]uint32) int32 {
	return nat.Sub(extWords, xx[:], yy[:], zz[:])
}

// Diff sets z = |x - y| and returns a mask that is all ones if x < y.
func Diff(x, y, z *[6]uint32) uint32 {
	return nat.Diff(words, x[:], y[:], z[:])
}

// Gte reports whether x >= y. Variable time.
func Gte(x, y *[6]uint32) bool {
	return nat.Gte(words, x[:], y[:])
}

// Eq reports whether x == y. Variable time.
func Eq(x, y *[6]uint32) bool { return *x == *y }

// IsOne reports whether x == 1. Variable time.
func IsOne(x *[6]uint32) bool { return *x == [6]uint32{1} }

// IsZero reports whether x == 0. Variable time.
func IsZero(x *[6]uint32) bool { return *x == [6]uint32{} }

// GetBit returns bit number bit of x, or 0 if bit is out of range.
func GetBit(x *[6]uint32, bit int) uint32 {
	return nat.GetBit(x[:], bit)
}

// Xor sets z = x ^ y.
func Xor(x, y, z *[6]uint32) {
	nat.Xor(words, x[:], y[:], z[:])
}

// Mul sets zz = x * y. zz must not overlap x or y.
func Mul(x, y *[6]uint32, zz *[12]uint32) {
	nat.Mul(words, x[:], y[:], zz[:])
}

// MulAddTo sets zz = zz + x * y and returns the carry.
func MulAddTo(x, y *[6]uint32, zz *[12]uint32) uint32 {
	return nat.MulAddTo(words, x[:], y[:], zz[:])
}

// Square sets zz = x * x. zz must not overlap x.
func Square(x *[6]uint32, zz *[12]uint32) {
	nat.Square(words, x[:], zz[:])
}

// MulWordAddTo sets z = z + x * y and returns the carry word.
func MulWordAddTo(x uint32, y, z *[6]uint32) uint32 {
	return nat.MulWordAddTo(words, x, y[:], z[:])
}

// FromBigInt converts x, which must be non-negative and fit in 192 bits.
func FromBigInt(x *big.Int) *[6]uint32 {
	return (*[6]uint32)(nat.FromBigInt(192, x))
}

// ToBigInt converts x to a big.Int.
func ToBigInt(x *[6]uint32) *big.Int {
	return nat.ToBigInt(words, x[:])
}

// ToBigIntExt converts the double-width value xx to a big.Int.
func ToBigIntExt(xx *[12]uint32) *big.Int {
	return nat.ToBigInt(extWords, xx[:])
}

// Create64 returns a zero value stored as 64-bit words.
func Create64() *[3]uint64 { return new([3]uint64) }

// Copy64 copies x into z.
func Copy64(x, z *[3]uint64) { *z = *x }

// Eq64 reports whether x == y. Variable time.
func Eq64(x, y *[3]uint64) bool { return *x == *y }

// IsOne64 reports whether x == 1. Variable time.
func IsOne64(x *[3]uint64) bool { return *x == [3]uint64{1} }

// IsZero64 reports whether x == 0. Variable time.
func IsZero64(x *[3]uint64) bool { return *x == [3]uint64{} }

// FromBigInt64 converts x, which must be non-negative and fit in 192 bits.
func FromBigInt64(x *big.Int) *[3]uint64 {
	return (*[3]uint64)(nat.FromBigInt64(192, x))
}

// ToBigInt64 converts x to a big.Int.
func ToBigInt64(x *[3]uint64) *big.Int {
	return nat.ToBigInt64(3, x[:])
}
