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

import "fmt"

// forsSkGen derives the secret value of the FORS leaf at index idx.
func (c *hashContext) forsSkGen(skSeed []byte, adrs *address, idx uint32) []byte {
	skAdrs := adrs.withKeyPair(addressFORSPrf)
	skAdrs.setTreeIndex(idx)
	return c.e.prf(&skAdrs, skSeed)
}

// forsLeaf returns a leaf function for treeHash over the FORS trees of the
// key pair addressed by adrs.
func (c *hashContext) forsLeaf(skSeed []byte, adrs *address) func(uint32) ([]byte, error) {
	leafAdrs := *adrs
	return func(idx uint32) ([]byte, error) {
		sk := c.forsSkGen(skSeed, adrs, idx)
		leafAdrs.setTreeHeight(0)
		leafAdrs.setTreeIndex(idx)
		return c.e.f(&leafAdrs, sk), nil
	}
}

// forsSign signs the message digest md. The signature is k blocks of an n-byte
// secret value followed by an a*n-byte authentication path.
func (c *hashContext) forsSign(md, skSeed []byte, adrs *address) ([]byte, error) {
	p := c.p
	indices := messageToIndices(md, p.a, p.k)
	leaf := c.forsLeaf(skSeed, adrs)
	sig := make([]byte, 0, p.k*(p.a+1)*p.n)
	for i := range p.k {
		offset := i << p.a
		sig = append(sig, c.forsSkGen(skSeed, adrs, offset+indices[i])...)
		for j := range p.a {
			sibling := ((indices[i] >> j) ^ 1) << j
			node, err := c.treeHash(offset+sibling, j, adrs, leaf)
			if err != nil {
				return nil, err
			}
			sig = append(sig, node...)
		}
	}
	return sig, nil
}

// forsPKFromSig recomputes the k tree roots from a FORS signature and
// compresses them into the FORS public key.
func (c *hashContext) forsPKFromSig(sigFors, md []byte, adrs *address) ([]byte, error) {
	p := c.p
	if len(sigFors) != int(p.k*(p.a+1)*p.n) {
		return nil, fmt.Errorf("sphincsplus: FORS signature has %d bytes, want %d: %w", len(sigFors), p.k*(p.a+1)*p.n, ErrDecode)
	}
	indices := messageToIndices(md, p.a, p.k)
	roots := make([]byte, 0, p.k*p.n)
	for i := range p.k {
		block := sigFors[i*(p.a+1)*p.n : (i+1)*(p.a+1)*p.n]
		sk, auth := block[:p.n], block[p.n:]
		idx := (i << p.a) + indices[i]
		adrs.setTreeHeight(0)
		adrs.setTreeIndex(idx)
		node := c.e.f(adrs, sk)
		roots = append(roots, c.rootFromAuthPath(node, idx, auth, adrs)...)
	}
	pkAdrs := adrs.withKeyPair(addressFORSRoots)
	return c.e.tl(&pkAdrs, roots), nil
}
