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

// Package interleave spreads the bits of a word across the even (and odd)
// positions of a wider word, and gathers them back.
//
// These are the standard conversions between a polynomial over GF(2) and its
// interleaved form, where the even-indexed bits of one word and the
// odd-indexed bits of another are stored side by side. All functions run in
// constant time.
package interleave

import "github.com/pqkernel/pqkernel-go/subtle/bitperm"

const (
	m32  = 0x55555555
	m64  = 0x5555555555555555
	m64R = 0xAAAAAAAAAAAAAAAA
)

// Expand8to16 moves bit i of the low byte of x to bit 2i.
func Expand8to16(x uint32) uint32 {
	x &= 0xFF
	x = (x | (x << 4)) & 0x0F0F
	x = (x | (x << 2)) & 0x3333
	x = (x | (x << 1)) & 0x5555
	return x
}

// Expand16to32 moves bit i of the low half of x to bit 2i.
func Expand16to32(x uint32) uint32 {
	x &= 0xFFFF
	x = (x | (x << 8)) & 0x00FF00FF
	x = (x | (x << 4)) & 0x0F0F0F0F
	x = (x | (x << 2)) & 0x33333333
	x = (x | (x << 1)) & 0x55555555
	return x
}

// Expand32to64 moves bit i of x to bit 2i of the result.
func Expand32to64(x uint32) uint64 {
	x = Shuffle32(x)
	return uint64((x>>1)&m32)<<32 | uint64(x&m32)
}

// Expand64to128 moves bit i of x to bit 2i of the 128-bit value z[1]:z[0].
func Expand64to128(x uint64, z *[2]uint64) {
	x = Shuffle64(x)
	z[0] = x & m64
	z[1] = (x >> 1) & m64
}

// Expand64to128Rev spreads x over the odd bit positions of two words: bit i
// of the low half of x goes to bit 2i+1 of hi, and bit i of the high half
// goes to bit 2i+1 of lo. This is the layout used with bit-reflected field
// elements.
func Expand64to128Rev(x uint64) (lo, hi uint64) {
	x = Shuffle64(x)
	lo = x & m64R
	hi = (x << 1) & m64R
	return lo, hi
}

// Shuffle32 interleaves the two halves of x: the low half goes to the even
// bits and the high half to the odd bits.
func Shuffle32(x uint32) uint32 {
	x = bitperm.Step32(x, 0x0000FF00, 8)
	x = bitperm.Step32(x, 0x00F000F0, 4)
	x = bitperm.Step32(x, 0x0C0C0C0C, 2)
	x = bitperm.Step32(x, 0x22222222, 1)
	return x
}

// Shuffle64 interleaves the two halves of x: the low half goes to the even
// bits and the high half to the odd bits.
func Shuffle64(x uint64) uint64 {
	x = bitperm.Step64(x, 0x00000000FFFF0000, 16)
	x = bitperm.Step64(x, 0x0000FF000000FF00, 8)
	x = bitperm.Step64(x, 0x00F000F000F000F0, 4)
	x = bitperm.Step64(x, 0x0C0C0C0C0C0C0C0C, 2)
	x = bitperm.Step64(x, 0x2222222222222222, 1)
	return x
}

// Shuffle2x32 is Shuffle32 applied twice, computed in four steps.
func Shuffle2x32(x uint32) uint32 {
	x = bitperm.Step32(x, 0x00AA00AA, 7)
	x = bitperm.Step32(x, 0x0000CCCC, 14)
	x = bitperm.Step32(x, 0x00F000F0, 4)
	x = bitperm.Step32(x, 0x0000FF00, 8)
	return x
}

// Shuffle2x64 is Shuffle64 applied twice, computed in four steps.
func Shuffle2x64(x uint64) uint64 {
	x = bitperm.Step64(x, 0x00000000FF00FF00, 24)
	x = bitperm.Step64(x, 0x00CC00CC00CC00CC, 6)
	x = bitperm.Step64(x, 0x0000F0F00000F0F0, 12)
	x = bitperm.Step64(x, 0x0A0A0A0A0A0A0A0A, 3)
	return x
}

// Shuffle3x64 is Shuffle64 applied three times. It is its own inverse: it
// transposes x viewed as an 8x8 bit matrix.
func Shuffle3x64(x uint64) uint64 {
	x = bitperm.Step64(x, 0x00AA00AA00AA00AA, 7)
	x = bitperm.Step64(x, 0x0000CCCC0000CCCC, 14)
	x = bitperm.Step64(x, 0x00000000F0F0F0F0, 28)
	return x
}

// Unshuffle32 is the inverse of Shuffle32: even bits go to the low half and
// odd bits to the high half.
func Unshuffle32(x uint32) uint32 {
	x = bitperm.Step32(x, 0x22222222, 1)
	x = bitperm.Step32(x, 0x0C0C0C0C, 2)
	x = bitperm.Step32(x, 0x00F000F0, 4)
	x = bitperm.Step32(x, 0x0000FF00, 8)
	return x
}

// Unshuffle64 is the inverse of Shuffle64.
func Unshuffle64(x uint64) uint64 {
	x = bitperm.Step64(x, 0x2222222222222222, 1)
	x = bitperm.Step64(x, 0x0C0C0C0C0C0C0C0C, 2)
	x = bitperm.Step64(x, 0x00F000F000F000F0, 4)
	x = bitperm.Step64(x, 0x0000FF000000FF00, 8)
	x = bitperm.Step64(x, 0x00000000FFFF0000, 16)
	return x
}

// UnshuffleSplit64 separates the even bits of x (returned packed in even) from
// the odd bits (packed in odd).
func UnshuffleSplit64(x uint64) (even, odd uint64) {
	u := Unshuffle64(x)
	return u & 0xFFFFFFFF, u >> 32
}

// Unshuffle128 separates the 128-bit value x[1]:x[0] into its even bits, in
// z[0], and its odd bits, in z[1].
func Unshuffle128(x, z *[2]uint64) {
	u0 := Unshuffle64(x[0])
	u1 := Unshuffle64(x[1])
	z[0] = (u0 & 0xFFFFFFFF) | (u1 << 32)
	z[1] = (u0 >> 32) | (u1 & 0xFFFFFFFF00000000)
}

// Unshuffle2x32 is the inverse of Shuffle2x32.
func Unshuffle2x32(x uint32) uint32 {
	x = bitperm.Step32(x, 0x0000FF00, 8)
	x = bitperm.Step32(x, 0x00F000F0, 4)
	x = bitperm.Step32(x, 0x0000CCCC, 14)
	x = bitperm.Step32(x, 0x00AA00AA, 7)
	return x
}

// Unshuffle2x64 is the inverse of Shuffle2x64.
func Unshuffle2x64(x uint64) uint64 {
	x = bitperm.Step64(x, 0x0A0A0A0A0A0A0A0A, 3)
	x = bitperm.Step64(x, 0x0000F0F00000F0F0, 12)
	x = bitperm.Step64(x, 0x00CC00CC00CC00CC, 6)
	x = bitperm.Step64(x, 0x00000000FF00FF00, 24)
	return x
}
