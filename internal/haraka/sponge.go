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

// rate is the Haraka-S sponge rate in bytes. The capacity is the remaining
// 32 bytes of the 64-byte Haraka-512 state.
const rate = 32

// XOF is an incremental Haraka-S sponge. Bytes written before the first Read
// are absorbed; Read squeezes an unbounded output stream. The output of Read
// does not depend on how the input or output is split across calls.
type XOF struct {
	h         *Haraka
	state     [64]byte
	buf       [rate]byte
	n         int // buffered input while absorbing, unread output while squeezing
	squeezing bool
}

// NewXOF returns a Haraka-S sponge using the round constants of h.
func (h *Haraka) NewXOF() *XOF {
	return &XOF{h: h}
}

// Write absorbs p. It panics if called after Read.
func (x *XOF) Write(p []byte) (int, error) {
	if x.squeezing {
		panic("haraka: Write after Read")
	}
	written := len(p)
	if x.n > 0 {
		c := copy(x.buf[x.n:], p)
		x.n += c
		p = p[c:]
		if x.n < rate {
			return written, nil
		}
		x.absorb(x.buf[:])
		x.n = 0
	}
	for len(p) >= rate {
		x.absorb(p[:rate])
		p = p[rate:]
	}
	x.n = copy(x.buf[:], p)
	return written, nil
}

func (x *XOF) absorb(blk []byte) {
	for i := range rate {
		x.state[i] ^= blk[i]
	}
	x.h.Permute512(&x.state)
}

func (x *XOF) finalize() {
	var t [rate]byte
	copy(t[:], x.buf[:x.n])
	t[x.n] = 0x1f
	t[rate-1] |= 0x80
	for i := range rate {
		x.state[i] ^= t[i]
	}
	x.n = 0
	x.squeezing = true
}

// Read fills out with the next bytes of the sponge output. It never fails.
func (x *XOF) Read(out []byte) (int, error) {
	if !x.squeezing {
		x.finalize()
	}
	read := len(out)
	for len(out) > 0 {
		if x.n == 0 {
			x.h.Permute512(&x.state)
			copy(x.buf[:], x.state[:rate])
			x.n = rate
		}
		c := copy(out, x.buf[rate-x.n:])
		x.n -= c
		out = out[c:]
	}
	return read, nil
}

// Reset returns the sponge to its initial state, keeping the round constants.
func (x *XOF) Reset() {
	*x = XOF{h: x.h}
}

// SumS writes len(out) bytes of Haraka-S(in) to out.
func (h *Haraka) SumS(out, in []byte) {
	x := h.NewXOF()
	x.Write(in)
	x.Read(out)
}
