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

	"golang.org/x/crypto/sha3"
)

// shakeEngine instantiates the hash family with SHAKE256 over the full
// 32-byte address.
type shakeEngine struct {
	p      *ParamSet
	pkSeed []byte
}

func newSHAKEEngine(p *ParamSet, pkSeed []byte) engine {
	return &shakeEngine{p: p, pkSeed: pkSeed}
}

// thash hashes pkSeed || ADRS || m. In robust mode m is first masked with
// SHAKE256(pkSeed || ADRS).
func (e *shakeEngine) thash(adrs *address, m []byte) []byte {
	if e.p.robust {
		mask := make([]byte, len(m))
		sha3.ShakeSum256(mask, slices.Concat(e.pkSeed, adrs[:]))
		xorInto(m, mask)
	}
	digest := make([]byte, e.p.n)
	sha3.ShakeSum256(digest, slices.Concat(e.pkSeed, adrs[:], m))
	return digest
}

func (e *shakeEngine) f(adrs *address, m []byte) []byte {
	return e.thash(adrs, slices.Clone(m))
}

func (e *shakeEngine) h(adrs *address, m1, m2 []byte) []byte {
	return e.thash(adrs, slices.Concat(m1, m2))
}

func (e *shakeEngine) tl(adrs *address, m []byte) []byte {
	return e.thash(adrs, slices.Clone(m))
}

func (e *shakeEngine) prf(adrs *address, skSeed []byte) []byte {
	digest := make([]byte, e.p.n)
	sha3.ShakeSum256(digest, slices.Concat(e.pkSeed, adrs[:], skSeed))
	return digest
}

func (e *shakeEngine) prfMsg(skPrf, optRand, msg []byte) []byte {
	digest := make([]byte, e.p.n)
	sha3.ShakeSum256(digest, slices.Concat(skPrf, optRand, msg))
	return digest
}

func (e *shakeEngine) hMsg(r, pkRoot, msg []byte) indexedDigest {
	x := sha3.NewShake256()
	x.Write(r)
	x.Write(e.pkSeed)
	x.Write(pkRoot)
	x.Write(msg)
	digest := make([]byte, e.p.m)
	x.Read(digest)
	return e.p.newIndexedDigest(digest)
}
