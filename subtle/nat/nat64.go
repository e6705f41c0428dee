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

package nat

import (
	"encoding/binary"
	"math/big"
)

// Create64 returns a zeroed n-word number with 64-bit words.
func Create64(n int) []uint64 {
	return make([]uint64, n)
}

// Copy64 copies the first n words of x into z.
func Copy64(n int, x, z []uint64) {
	copy(z[:n], x[:n])
}

// Zero64 sets the first n words of z to zero.
func Zero64(n int, z []uint64) {
	clear(z[:n])
}

// Eq64 reports whether x == y. Variable time.
func Eq64(n int, x, y []uint64) bool {
	for i := n - 1; i >= 0; i-- {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// IsOne64 reports whether x == 1. Variable time.
func IsOne64(n int, x []uint64) bool {
	if x[0] != 1 {
		return false
	}
	for i := 1; i < n; i++ {
		if x[i] != 0 {
			return false
		}
	}
	return true
}

// IsZero64 reports whether x == 0. Variable time.
func IsZero64(n int, x []uint64) bool {
	for i := range n {
		if x[i] != 0 {
			return false
		}
	}
	return true
}

// Xor64 sets z = x ^ y. Constant time.
func Xor64(n int, x, y, z []uint64) {
	x, y, z = x[:n], y[:n], z[:n]
	for i := range n {
		z[i] = x[i] ^ y[i]
	}
}

// ShiftUpBit64 sets z = x<<1 | c, where c is 0 or 1, and returns the bit
// shifted out. z may alias x.
func ShiftUpBit64(n int, x []uint64, c uint64, z []uint64) uint64 {
	x, z = x[:n], z[:n]
	for i := range n {
		next := x[i]
		z[i] = next<<1 | c
		c = next >> 63
	}
	return c
}

// ShiftDownBits64 sets z = x>>s for 0 < s < 64 with the s bits of c entering
// at the top, and returns the s bits shifted out. z may alias x.
func ShiftDownBits64(n int, x []uint64, s uint, c uint64, z []uint64) uint64 {
	if s == 0 || s > 63 {
		panic("nat: invalid shift")
	}
	x, z = x[:n], z[:n]
	lowMask := uint64(1)<<s - 1
	for i := n - 1; i >= 0; i-- {
		next := x[i]
		z[i] = next>>s | c<<(64-s)
		c = next & lowMask
	}
	return c
}

// FromBigInt64 returns x as a number of 64-bit words large enough for bits
// bits. It panics if x is negative or does not fit.
func FromBigInt64(bits int, x *big.Int) []uint64 {
	if bits < 1 || x.Sign() < 0 || x.BitLen() > bits {
		panic("nat: value out of range")
	}
	n := (bits + 63) >> 6
	buf := x.FillBytes(make([]byte, 8*n))
	z := make([]uint64, n)
	for i := range n {
		z[i] = binary.BigEndian.Uint64(buf[8*(n-1-i):])
	}
	return z
}

// ToBigInt64 returns the first n words of x as a big.Int.
func ToBigInt64(n int, x []uint64) *big.Int {
	buf := make([]byte, 8*n)
	for i := range n {
		binary.BigEndian.PutUint64(buf[8*(n-1-i):], x[i])
	}
	return new(big.Int).SetBytes(buf)
}
