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

// Add sets z = x + y and returns the carry. Constant time.
func Add(n int, x, y, z []uint32) uint32 {
	x, y, z = x[:n], y[:n], z[:n]
	var c uint64
	for i := range n {
		c += uint64(x[i]) + uint64(y[i])
		z[i] = uint32(c)
		c >>= 32
	}
	return uint32(c)
}

// AddBothTo sets z = z + x + y and returns the carry, which is 0, 1 or 2.
// Constant time.
func AddBothTo(n int, x, y, z []uint32) uint32 {
	x, y, z = x[:n], y[:n], z[:n]
	var c uint64
	for i := range n {
		c += uint64(x[i]) + uint64(y[i]) + uint64(z[i])
		z[i] = uint32(c)
		c >>= 32
	}
	return uint32(c)
}

// AddTo sets z = z + x and returns the carry. Constant time.
func AddTo(n int, x, z []uint32) uint32 {
	return AddToWithCarry(n, x, z, 0)
}

// AddToWithCarry sets z = z + x + cIn and returns the carry. cIn must be at
// most 2. Constant time.
func AddToWithCarry(n int, x, z []uint32, cIn uint32) uint32 {
	x, z = x[:n], z[:n]
	c := uint64(cIn)
	for i := range n {
		c += uint64(x[i]) + uint64(z[i])
		z[i] = uint32(c)
		c >>= 32
	}
	return uint32(c)
}

// AddToEachOther sets both u and v to u + v and returns the carry. Constant
// time.
func AddToEachOther(n int, u, v []uint32) uint32 {
	u, v = u[:n], v[:n]
	var c uint64
	for i := range n {
		c += uint64(u[i]) + uint64(v[i])
		u[i] = uint32(c)
		v[i] = uint32(c)
		c >>= 32
	}
	return uint32(c)
}

// AddWordAt adds x to z at word position zPos, propagating the carry up to
// word n, and returns the carry out of word n-1. Constant time.
func AddWordAt(n int, x uint32, z []uint32, zPos int) uint32 {
	z = z[:n]
	c := uint64(x)
	for i := zPos; i < n; i++ {
		c += uint64(z[i])
		z[i] = uint32(c)
		c >>= 32
	}
	return uint32(c)
}

// AddWordTo sets z = z + x and returns the carry. Constant time.
func AddWordTo(n int, x uint32, z []uint32) uint32 {
	return AddWordAt(n, x, z, 0)
}

// AddDWordAt adds the 64-bit value x to z at word position zPos, propagating
// the carry up to word n. zPos must be at most n-2. Constant time.
func AddDWordAt(n int, x uint64, z []uint32, zPos int) uint32 {
	if zPos > n-2 {
		panic("nat: double word does not fit")
	}
	z = z[:n]
	c := uint64(z[zPos]) + (x & m32)
	z[zPos] = uint32(c)
	c >>= 32
	c += uint64(z[zPos+1]) + (x >> 32)
	z[zPos+1] = uint32(c)
	c >>= 32
	return AddWordAt(n, uint32(c), z, zPos+2)
}

// Inc sets z = z + 1 and returns the carry. Constant time.
func Inc(n int, z []uint32) uint32 {
	return AddWordAt(n, 1, z, 0)
}

// IncAt adds 1 to z at word position zPos and returns the carry. Constant
// time.
func IncAt(n int, z []uint32, zPos int) uint32 {
	return AddWordAt(n, 1, z, zPos)
}

// Sub sets z = x - y and returns the borrow (0 or -1). Constant time.
func Sub(n int, x, y, z []uint32) int32 {
	x, y, z = x[:n], y[:n], z[:n]
	var c int64
	for i := range n {
		c += int64(x[i]) - int64(y[i])
		z[i] = uint32(c)
		c >>= 32
	}
	return int32(c)
}

// SubFrom sets z = z - x and returns the borrow. Constant time.
func SubFrom(n int, x, z []uint32) int32 {
	x, z = x[:n], z[:n]
	var c int64
	for i := range n {
		c += int64(z[i]) - int64(x[i])
		z[i] = uint32(c)
		c >>= 32
	}
	return int32(c)
}

// SubBothFrom sets z = z - x - y and returns the borrow, which is 0, -1 or
// -2. Constant time.
func SubBothFrom(n int, x, y, z []uint32) int32 {
	x, y, z = x[:n], y[:n], z[:n]
	var c int64
	for i := range n {
		c += int64(z[i]) - int64(x[i]) - int64(y[i])
		z[i] = uint32(c)
		c >>= 32
	}
	return int32(c)
}

// SubWordAt subtracts x from z at word position zPos, propagating the borrow
// up to word n. Constant time.
func SubWordAt(n int, x uint32, z []uint32, zPos int) int32 {
	z = z[:n]
	c := -int64(x)
	for i := zPos; i < n; i++ {
		c += int64(z[i])
		z[i] = uint32(c)
		c >>= 32
	}
	return int32(c)
}

// Dec sets z = z - 1 and returns the borrow. Constant time.
func Dec(n int, z []uint32) int32 {
	return SubWordAt(n, 1, z, 0)
}

// DecAt subtracts 1 from z at word position zPos and returns the borrow.
// Constant time.
func DecAt(n int, z []uint32, zPos int) int32 {
	return SubWordAt(n, 1, z, zPos)
}

// Diff sets z = |x - y| and returns a mask that is all ones if x < y and zero
// otherwise. Constant time.
func Diff(n int, x, y, z []uint32) uint32 {
	mask := uint32(Sub(n, x, y, z))
	negate(n, mask, z)
	return mask
}

// negate replaces z by its two's complement when mask is all ones.
func negate(n int, mask uint32, z []uint32) {
	z = z[:n]
	c := uint64(mask & 1)
	for i := range n {
		c += uint64(z[i] ^ mask)
		z[i] = uint32(c)
		c >>= 32
	}
}

// CAdd sets z = x + y if cond is 1 and z = x if cond is 0, returning the
// carry. Constant time.
func CAdd(n int, cond uint32, x, y, z []uint32) uint32 {
	x, y, z = x[:n], y[:n], z[:n]
	mask := -(cond & 1)
	var c uint64
	for i := range n {
		c += uint64(x[i]) + uint64(y[i]&mask)
		z[i] = uint32(c)
		c >>= 32
	}
	return uint32(c)
}

// CAddTo adds x to z if cond is 1, returning the carry. Constant time.
func CAddTo(n int, cond uint32, x, z []uint32) uint32 {
	x, z = x[:n], z[:n]
	mask := -(cond & 1)
	var c uint64
	for i := range n {
		c += uint64(z[i]) + uint64(x[i]&mask)
		z[i] = uint32(c)
		c >>= 32
	}
	return uint32(c)
}

// CSub sets z = x - y if cond is 1 and z = x if cond is 0, returning the
// borrow. Constant time.
func CSub(n int, cond uint32, x, y, z []uint32) int32 {
	x, y, z = x[:n], y[:n], z[:n]
	mask := -(cond & 1)
	var c int64
	for i := range n {
		c += int64(x[i]) - int64(y[i]&mask)
		z[i] = uint32(c)
		c >>= 32
	}
	return int32(c)
}

// CSubFrom subtracts x from z if cond is 1, returning the borrow. Constant
// time.
func CSubFrom(n int, cond uint32, x, z []uint32) int32 {
	x, z = x[:n], z[:n]
	mask := -(cond & 1)
	var c int64
	for i := range n {
		c += int64(z[i]) - int64(x[i]&mask)
		z[i] = uint32(c)
		c >>= 32
	}
	return int32(c)
}

// CMov copies x into z if cond is 1 and leaves z unchanged if cond is 0.
// Constant time.
func CMov(n int, cond uint32, x, z []uint32) {
	x, z = x[:n], z[:n]
	mask := -(cond & 1)
	for i := range n {
		z[i] ^= (z[i] ^ x[i]) & mask
	}
}

// CNegate replaces z by 2^(32n) - z if cond is 1. Constant time.
func CNegate(n int, cond uint32, z []uint32) {
	negate(n, -(cond & 1), z)
}
