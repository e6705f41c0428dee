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

// Package nat implements arithmetic on fixed-width natural numbers.
//
// A number is a little-endian slice of 32-bit words (index 0 is the least
// significant word). Every function takes the word count n explicitly and
// only touches the first n words of its arguments; none of them allocate
// except Create and Copy. Carries are returned rather than stored, so calls
// can be chained across buffers of different lengths: add-family functions
// return 0 or 1, sub-family functions return 0 or -1.
//
// Functions whose documentation says "constant time" do not branch on, or
// index memory by, the values of their word arguments. Compare, Gte, Eq,
// IsOne, IsZero and GetBitLength are variable time and must only be used on
// public values.
package nat

import (
	"encoding/binary"
	"math/big"
)

const m32 = 0xFFFFFFFF

// GetLengthForBits returns the number of 32-bit words needed to hold bits
// bits.
func GetLengthForBits(bits int) int {
	if bits < 1 {
		panic("nat: bit length must be positive")
	}
	return (bits + 31) >> 5
}

// Create returns a zeroed n-word number.
func Create(n int) []uint32 {
	return make([]uint32, n)
}

// Copy returns a new slice holding the first n words of x.
func Copy(n int, x []uint32) []uint32 {
	z := make([]uint32, n)
	copy(z, x[:n])
	return z
}

// CopyTo copies the first n words of x into z.
func CopyTo(n int, x, z []uint32) {
	copy(z[:n], x[:n])
}

// Zero sets the first n words of z to zero.
func Zero(n int, z []uint32) {
	clear(z[:n])
}

// FromBigInt returns x as a number of GetLengthForBits(bits) words. It panics
// if x is negative or does not fit.
func FromBigInt(bits int, x *big.Int) []uint32 {
	if x.Sign() < 0 || x.BitLen() > bits {
		panic("nat: value out of range")
	}
	n := GetLengthForBits(bits)
	buf := x.FillBytes(make([]byte, 4*n))
	z := make([]uint32, n)
	for i := range n {
		z[i] = binary.BigEndian.Uint32(buf[4*(n-1-i):])
	}
	return z
}

// ToBigInt returns the first n words of x as a big.Int.
func ToBigInt(n int, x []uint32) *big.Int {
	buf := make([]byte, 4*n)
	for i := range n {
		binary.BigEndian.PutUint32(buf[4*(n-1-i):], x[i])
	}
	return new(big.Int).SetBytes(buf)
}

// Xor sets z = x ^ y. Constant time.
func Xor(n int, x, y, z []uint32) {
	x, y, z = x[:n], y[:n], z[:n]
	for i := range n {
		z[i] = x[i] ^ y[i]
	}
}

// GetBit returns bit number bit of x, or 0 if bit is outside x.
func GetBit(x []uint32, bit int) uint32 {
	if bit == 0 {
		return x[0] & 1
	}
	w := bit >> 5
	if w < 0 || w >= len(x) {
		return 0
	}
	return (x[w] >> (uint(bit) & 31)) & 1
}
