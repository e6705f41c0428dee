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

// engine is the tweakable hash family of one parameter set, bound to a
// public seed. Engines keep no state between calls other than values derived
// from the seed, but are not meant to be shared between goroutines.
type engine interface {
	// f hashes a single n-byte block.
	f(adrs *address, m []byte) []byte
	// h hashes two n-byte blocks.
	h(adrs *address, m1, m2 []byte) []byte
	// tl hashes a sequence of n-byte blocks.
	tl(adrs *address, m []byte) []byte
	// prf derives a secret n-byte value from skSeed.
	prf(adrs *address, skSeed []byte) []byte
	// prfMsg derives the signature randomizer R.
	prfMsg(skPrf, optRand, msg []byte) []byte
	// hMsg computes the message digest and splits it into indices.
	hMsg(r, pkRoot, msg []byte) indexedDigest
}

// indexedDigest is the parsed output of hMsg.
type indexedDigest struct {
	idxTree uint64
	idxLeaf uint32
	digest  []byte
}

// newIndexedDigest splits an m-byte message digest into the FORS message, the
// tree index and the leaf index, masking each index to its bit width.
func (p *ParamSet) newIndexedDigest(buf []byte) indexedDigest {
	r := (p.k*p.a + 7) / 8
	s := (p.h - p.hp + 7) / 8
	t := (p.hp + 7) / 8
	idxTree := toInt(buf[r:r+s], s)
	if p.h-p.hp > 64 {
		panic("unreachable")
	}
	// h - hp = 64 leaves idxTree unmasked.
	if p.h-p.hp != 64 {
		idxTree &= (uint64(1) << (p.h - p.hp)) - 1
	}
	idxLeaf := uint32(toInt(buf[r+s:r+s+t], t)) & ((1 << p.hp) - 1)
	return indexedDigest{
		idxTree: idxTree,
		idxLeaf: idxLeaf,
		digest:  buf[:r],
	}
}

func xorInto(dst, mask []byte) {
	for i := range dst {
		dst[i] ^= mask[i]
	}
}
