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

// ShiftUpBit sets z = x<<1 | c, where c is 0 or 1, and returns the bit shifted
// out. z may alias x.
func ShiftUpBit(n int, x []uint32, c uint32, z []uint32) uint32 {
	x, z = x[:n], z[:n]
	for i := range n {
		next := x[i]
		z[i] = next<<1 | c
		c = next >> 31
	}
	return c
}

// ShiftUpBits sets z = x<<s | c for 0 < s < 32, where c < 2^s, and returns the
// s bits shifted out. z may alias x.
func ShiftUpBits(n int, x []uint32, s uint, c uint32, z []uint32) uint32 {
	if s == 0 || s > 31 {
		panic("nat: invalid shift")
	}
	x, z = x[:n], z[:n]
	for i := range n {
		next := x[i]
		z[i] = next<<s | c
		c = next >> (32 - s)
	}
	return c
}

// ShiftUpWord sets z = z<<32 | c and returns the word shifted out.
func ShiftUpWord(n int, z []uint32, c uint32) uint32 {
	z = z[:n]
	for i := range n {
		z[i], c = c, z[i]
	}
	return c
}

// ShiftDownBit sets z = x>>1 with c, which is 0 or 1, entering at the top and
// returns the bit shifted out. z may alias x.
func ShiftDownBit(n int, x []uint32, c uint32, z []uint32) uint32 {
	x, z = x[:n], z[:n]
	for i := n - 1; i >= 0; i-- {
		next := x[i]
		z[i] = next>>1 | c<<31
		c = next & 1
	}
	return c
}

// ShiftDownBits sets z = x>>s for 0 < s < 32 with the s bits of c entering at
// the top, and returns the s bits shifted out. z may alias x.
func ShiftDownBits(n int, x []uint32, s uint, c uint32, z []uint32) uint32 {
	if s == 0 || s > 31 {
		panic("nat: invalid shift")
	}
	x, z = x[:n], z[:n]
	lowMask := uint32(1)<<s - 1
	for i := n - 1; i >= 0; i-- {
		next := x[i]
		z[i] = next>>s | c<<(32-s)
		c = next & lowMask
	}
	return c
}

// ShiftDownWord sets z = z>>32 with c entering at the top and returns the word
// shifted out.
func ShiftDownWord(n int, z []uint32, c uint32) uint32 {
	z = z[:n]
	for i := n - 1; i >= 0; i-- {
		z[i], c = c, z[i]
	}
	return c
}
