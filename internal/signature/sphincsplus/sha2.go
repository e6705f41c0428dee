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
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"slices"
)

// sha2Engine instantiates the hash family with SHA-256, and with SHA-512 for
// h, tl and the message functions when n > 16. Addresses are compressed to 22
// bytes and pkSeed is padded to a full hash block.
type sha2Engine struct {
	p      *ParamSet
	pkSeed []byte
	// pkSeed padded to the SHA-256 and SHA-512 block sizes.
	block256 []byte
	block512 []byte
	wide     bool
}

func newSHA2Engine(p *ParamSet, pkSeed []byte) engine {
	return &sha2Engine{
		p:        p,
		pkSeed:   pkSeed,
		block256: slices.Concat(pkSeed, make([]byte, sha256.BlockSize-len(pkSeed))),
		block512: slices.Concat(pkSeed, make([]byte, sha512.BlockSize-len(pkSeed))),
		wide:     p.n > 16,
	}
}

func sha256Sum(data []byte) []byte {
	digest := sha256.Sum256(data)
	return digest[:]
}

func sha512Sum(data []byte) []byte {
	digest := sha512.Sum512(data)
	return digest[:]
}

// mgf1 is the mask generation function of RFC 8017, Appendix B.2.1.
func mgf1(seed []byte, maskLen int, hash func([]byte) []byte) []byte {
	var digest []byte
	var ctr [4]byte
	for c := uint32(0); len(digest) < maskLen; c++ {
		binary.BigEndian.PutUint32(ctr[:], c)
		digest = append(digest, hash(slices.Concat(seed, ctr[:]))...)
	}
	return digest[:maskLen]
}

// thash hashes m under adrs with SHA-256, or SHA-512 when wide is set. In
// robust mode m is first masked with MGF1(pkSeed || ADRSc).
func (e *sha2Engine) thash(adrs *address, wide bool, m []byte) []byte {
	hashFn, block := sha256Sum, e.block256
	if wide {
		hashFn, block = sha512Sum, e.block512
	}
	adrsc := adrs.compress()
	if e.p.robust {
		xorInto(m, mgf1(slices.Concat(e.pkSeed, adrsc), len(m), hashFn))
	}
	return hashFn(slices.Concat(block, adrsc, m))[:e.p.n]
}

func (e *sha2Engine) f(adrs *address, m []byte) []byte {
	return e.thash(adrs, false, slices.Clone(m))
}

func (e *sha2Engine) h(adrs *address, m1, m2 []byte) []byte {
	return e.thash(adrs, e.wide, slices.Concat(m1, m2))
}

func (e *sha2Engine) tl(adrs *address, m []byte) []byte {
	return e.thash(adrs, e.wide, slices.Clone(m))
}

func (e *sha2Engine) prf(adrs *address, skSeed []byte) []byte {
	return sha256Sum(slices.Concat(e.block256, adrs.compress(), skSeed))[:e.p.n]
}

func (e *sha2Engine) prfMsg(skPrf, optRand, msg []byte) []byte {
	newHash := sha256.New
	if e.wide {
		newHash = sha512.New
	}
	mac := hmac.New(newHash, skPrf)
	mac.Write(optRand)
	mac.Write(msg)
	return mac.Sum(nil)[:e.p.n]
}

func (e *sha2Engine) hMsg(r, pkRoot, msg []byte) indexedDigest {
	hashFn := sha256Sum
	if e.wide {
		hashFn = sha512Sum
	}
	seed := hashFn(slices.Concat(r, e.pkSeed, pkRoot, msg))
	return e.p.newIndexedDigest(mgf1(slices.Concat(r, e.pkSeed, seed), int(e.p.m), hashFn))
}
