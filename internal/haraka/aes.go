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

package haraka

import "encoding/binary"

// The AES round below is byte oriented and table free. SubBytes inverts in
// GF(2^8) by exponentiation, eight lanes at a time, so no memory access
// depends on the state.

const (
	lanes7 = 0x7f7f7f7f7f7f7f7f
	lanes1 = 0x0101010101010101
)

// xtime8 multiplies each byte lane of a by x modulo the AES polynomial.
func xtime8(a uint64) uint64 {
	return (a&lanes7)<<1 ^ ((a>>7)&lanes1)*0x1b
}

// mul8 multiplies a and b lane by lane in GF(2^8).
func mul8(a, b uint64) uint64 {
	var r uint64
	for range 8 {
		r ^= a & ((b & lanes1) * 0xff)
		a = xtime8(a)
		b >>= 1
	}
	return r
}

// inv8 returns a^254 lane by lane, which is the inverse of every nonzero
// lane and maps zero to zero.
func inv8(a uint64) uint64 {
	a2 := mul8(a, a)
	a3 := mul8(a2, a)
	a12 := mul8(a3, a3)
	a12 = mul8(a12, a12)
	a15 := mul8(a12, a3)
	a240 := a15
	for range 4 {
		a240 = mul8(a240, a240)
	}
	return mul8(mul8(a240, a12), a2)
}

func rotl8(a uint64, k uint) uint64 {
	hi := uint64(byte(0xff<<k)) * lanes1
	lo := uint64(byte(0xff>>(8-k))) * lanes1
	return (a<<k)&hi | (a>>(8-k))&lo
}

func sbox8(a uint64) uint64 {
	b := inv8(a)
	return b ^ rotl8(b, 1) ^ rotl8(b, 2) ^ rotl8(b, 3) ^ rotl8(b, 4) ^ 0x6363636363636363
}

func sbox(b byte) byte {
	return byte(sbox8(uint64(b)))
}

func subBytes(s *[16]byte) {
	binary.LittleEndian.PutUint64(s[0:], sbox8(binary.LittleEndian.Uint64(s[0:])))
	binary.LittleEndian.PutUint64(s[8:], sbox8(binary.LittleEndian.Uint64(s[8:])))
}

// shiftRows rotates row r of the column-major state left by r.
func shiftRows(s *[16]byte) {
	t := *s
	for c := range 4 {
		for r := 1; r < 4; r++ {
			s[r+4*c] = t[r+4*((c+r)%4)]
		}
	}
}

func xtime(b byte) byte {
	return b<<1 ^ 0x1b&-(b>>7)
}

func mixColumns(s *[16]byte) {
	for c := 0; c < 16; c += 4 {
		a0, a1, a2, a3 := s[c], s[c+1], s[c+2], s[c+3]
		t := a0 ^ a1 ^ a2 ^ a3
		s[c] = a0 ^ t ^ xtime(a0^a1)
		s[c+1] = a1 ^ t ^ xtime(a1^a2)
		s[c+2] = a2 ^ t ^ xtime(a2^a3)
		s[c+3] = a3 ^ t ^ xtime(a3^a0)
	}
}

// aesRound applies one full AES encryption round with round key rk, as the
// AESENC instruction does.
func aesRound(s []byte, rk *[16]byte) {
	var t [16]byte
	copy(t[:], s)
	subBytes(&t)
	shiftRows(&t)
	mixColumns(&t)
	for i := range t {
		s[i] = t[i] ^ rk[i]
	}
}
