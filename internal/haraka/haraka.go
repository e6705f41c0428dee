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

// Package haraka implements the Haraka v2 short-input hash functions
// (https://eprint.iacr.org/2016/098) and the Haraka-S sponge used by the
// SPHINCS+ Haraka instantiation.
//
// A Haraka value carries its round constants. New returns the published
// constants; NewTweaked derives a fresh set from a public seed by squeezing
// Haraka-S, so that every SPHINCS+ key pair works with its own permutation.
package haraka

const (
	// Size256 is the input and output size of Haraka-256 in bytes.
	Size256 = 32
	// BlockSize512 is the input size of Haraka-512 in bytes.
	BlockSize512 = 64
	// Size512 is the output size of Haraka-512 in bytes.
	Size512 = 32

	rounds = 5
)

// Haraka holds a set of round constants. It is immutable after construction
// and safe for concurrent use.
type Haraka struct {
	rc [40][16]byte
}

// New returns Haraka with the standard round constants.
func New() *Haraka {
	return &Haraka{rc: roundConstants}
}

// NewTweaked returns Haraka whose round constants are the first 640 bytes of
// Haraka-S(seed) under the standard constants.
func NewTweaked(seed []byte) *Haraka {
	var buf [40 * 16]byte
	New().SumS(buf[:], seed)
	h := &Haraka{}
	for i := range h.rc {
		copy(h.rc[i][:], buf[16*i:])
	}
	return h
}

type block [16]byte

func unpackLo32(a, b block) block {
	var t block
	copy(t[0:4], a[0:4])
	copy(t[4:8], b[0:4])
	copy(t[8:12], a[4:8])
	copy(t[12:16], b[4:8])
	return t
}

func unpackHi32(a, b block) block {
	var t block
	copy(t[0:4], a[8:12])
	copy(t[4:8], b[8:12])
	copy(t[8:12], a[12:16])
	copy(t[12:16], b[12:16])
	return t
}

// Permute512 applies the Haraka-512 permutation to s in place, without the
// feed-forward.
func (h *Haraka) Permute512(s *[64]byte) {
	var b [4]block
	for k := range b {
		copy(b[k][:], s[16*k:])
	}
	for i := range rounds {
		for j := range 2 {
			for k := range b {
				aesRound(b[k][:], &h.rc[8*i+4*j+k])
			}
		}
		t := unpackLo32(b[0], b[1])
		b[0] = unpackHi32(b[0], b[1])
		b[1] = unpackLo32(b[2], b[3])
		b[2] = unpackHi32(b[2], b[3])
		b[3] = unpackLo32(b[0], b[2])
		b[0] = unpackHi32(b[0], b[2])
		b[2] = unpackHi32(b[1], t)
		b[1] = unpackLo32(b[1], t)
	}
	for k := range b {
		copy(s[16*k:], b[k][:])
	}
}

// Sum512 returns Haraka-512 of a 64-byte input: the permutation with
// feed-forward, truncated to 32 bytes.
func (h *Haraka) Sum512(in *[64]byte) [Size512]byte {
	s := *in
	h.Permute512(&s)
	for i := range s {
		s[i] ^= in[i]
	}
	var out [Size512]byte
	copy(out[0:8], s[8:16])
	copy(out[8:16], s[24:32])
	copy(out[16:24], s[32:40])
	copy(out[24:32], s[48:56])
	return out
}

// Sum256 returns Haraka-256 of a 32-byte input.
func (h *Haraka) Sum256(in *[32]byte) [Size256]byte {
	var b [2]block
	copy(b[0][:], in[0:16])
	copy(b[1][:], in[16:32])
	for i := range rounds {
		for j := range 2 {
			aesRound(b[0][:], &h.rc[4*i+2*j])
			aesRound(b[1][:], &h.rc[4*i+2*j+1])
		}
		b[0], b[1] = unpackLo32(b[0], b[1]), unpackHi32(b[0], b[1])
	}
	var out [Size256]byte
	for i := range 16 {
		out[i] = b[0][i] ^ in[i]
		out[16+i] = b[1][i] ^ in[16+i]
	}
	return out
}
