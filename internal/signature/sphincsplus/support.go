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

package sphincsplus

// toInt reads the first n bytes of x as a big-endian integer.
func toInt(x []byte, n uint32) uint64 {
	if len(x) < int(n) || n > 8 {
		panic("unreachable")
	}
	total := uint64(0)
	for i := range n {
		total = 256*total + uint64(x[i])
	}
	return total
}

// toByte writes the n low bytes of x in big-endian order.
func toByte(x uint32, n uint32) []byte {
	total := x
	s := make([]byte, n)
	for i := range n {
		s[n-1-i] = byte(total)
		total >>= 8
	}
	return s
}

// baseW splits x into outLen digits of lgw bits each, most significant bits
// first.
func baseW(x []byte, lgw uint32, outLen uint32) []uint32 {
	if len(x) < int((outLen*lgw+7)/8) {
		panic("unreachable")
	}
	in := 0
	bits := uint32(0)
	total := uint32(0)
	digits := make([]uint32, outLen)
	for out := range outLen {
		for bits < lgw {
			total = (total << 8) + uint32(x[in])
			in++
			bits += 8
		}
		bits -= lgw
		digits[out] = (total >> bits) & ((1 << lgw) - 1)
	}
	return digits
}

// messageToIndices splits md into k indices of a bits each. Bits are taken
// least significant first within each byte, and the first bit read becomes
// the least significant bit of the index.
func messageToIndices(md []byte, a uint32, k uint32) []uint32 {
	if len(md) < int((a*k+7)/8) {
		panic("unreachable")
	}
	indices := make([]uint32, k)
	offset := uint32(0)
	for i := range k {
		for j := range a {
			bit := uint32(md[offset>>3]>>(offset&7)) & 1
			indices[i] ^= bit << j
			offset++
		}
	}
	return indices
}
