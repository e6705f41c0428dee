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

import (
	"slices"

	"github.com/pqkernel/pqkernel-go/internal/haraka"
)

// harakaEngine instantiates the hash family with Haraka. The round constants
// are derived from pkSeed, which therefore does not appear in the hash inputs.
// f and prf use Haraka-512 on a single padded block, everything else the
// Haraka-S sponge.
type harakaEngine struct {
	p      *ParamSet
	pkSeed []byte
	hk     *haraka.Haraka
}

func newHarakaEngine(p *ParamSet, pkSeed []byte) engine {
	return &harakaEngine{p: p, pkSeed: pkSeed, hk: haraka.NewTweaked(pkSeed)}
}

func (e *harakaEngine) f(adrs *address, m []byte) []byte {
	var buf [haraka.BlockSize512]byte
	copy(buf[:], adrs[:])
	if e.p.robust {
		var a [haraka.Size256]byte
		copy(a[:], adrs[:])
		mask := e.hk.Sum256(&a)
		for i := range e.p.n {
			buf[len(adrs)+int(i)] = m[i] ^ mask[i]
		}
	} else {
		copy(buf[len(adrs):], m)
	}
	out := e.hk.Sum512(&buf)
	return slices.Clone(out[:e.p.n])
}

// thashS hashes ADRS || m with Haraka-S. In robust mode m is first masked with
// Haraka-S(ADRS).
func (e *harakaEngine) thashS(adrs *address, m []byte) []byte {
	if e.p.robust {
		mask := make([]byte, len(m))
		e.hk.SumS(mask, adrs[:])
		xorInto(m, mask)
	}
	out := make([]byte, e.p.n)
	e.hk.SumS(out, slices.Concat(adrs[:], m))
	return out
}

func (e *harakaEngine) h(adrs *address, m1, m2 []byte) []byte {
	return e.thashS(adrs, slices.Concat(m1, m2))
}

func (e *harakaEngine) tl(adrs *address, m []byte) []byte {
	return e.thashS(adrs, slices.Clone(m))
}

func (e *harakaEngine) prf(adrs *address, skSeed []byte) []byte {
	var buf [haraka.BlockSize512]byte
	copy(buf[:], adrs[:])
	copy(buf[len(adrs):], skSeed)
	out := e.hk.Sum512(&buf)
	return slices.Clone(out[:e.p.n])
}

func (e *harakaEngine) prfMsg(skPrf, optRand, msg []byte) []byte {
	x := e.hk.NewXOF()
	x.Write(skPrf)
	x.Write(optRand)
	x.Write(msg)
	out := make([]byte, e.p.n)
	x.Read(out)
	return out
}

func (e *harakaEngine) hMsg(r, pkRoot, msg []byte) indexedDigest {
	x := e.hk.NewXOF()
	x.Write(r)
	x.Write(e.pkSeed)
	x.Write(pkRoot)
	x.Write(msg)
	digest := make([]byte, e.p.m)
	x.Read(digest)
	return e.p.newIndexedDigest(digest)
}
