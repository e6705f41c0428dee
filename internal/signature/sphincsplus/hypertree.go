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
	"crypto/subtle"
	"fmt"
	"slices"
)

// xmssLeaf returns a leaf function for treeHash over the XMSS tree addressed
// by adrs: leaf i is the WOTS+ public key of key pair i.
func (c *hashContext) xmssLeaf(skSeed []byte, adrs *address) func(uint32) ([]byte, error) {
	wotsAdrs := *adrs
	return func(idx uint32) ([]byte, error) {
		wotsAdrs.setType(addressWOTSHash)
		wotsAdrs.setKeyPairAddress(idx)
		return c.wotsPKGen(skSeed, &wotsAdrs)
	}
}

// xmssRoot computes the root of the XMSS tree addressed by adrs.
func (c *hashContext) xmssRoot(skSeed []byte, adrs *address) ([]byte, error) {
	nodeAdrs := *adrs
	nodeAdrs.setType(addressTree)
	return c.treeHash(0, c.p.hp, &nodeAdrs, c.xmssLeaf(skSeed, adrs))
}

// xmssSign signs the n-byte msg with key pair idx of the XMSS tree addressed
// by adrs. The signature is a WOTS+ signature followed by hp authentication
// path nodes.
func (c *hashContext) xmssSign(msg, skSeed []byte, idx uint32, adrs *address) ([]byte, error) {
	leaf := c.xmssLeaf(skSeed, adrs)
	nodeAdrs := *adrs
	nodeAdrs.setType(addressTree)
	auth := make([]byte, 0, c.p.hp*c.p.n)
	for j := range c.p.hp {
		sibling := ((idx >> j) ^ 1) << j
		node, err := c.treeHash(sibling, j, &nodeAdrs, leaf)
		if err != nil {
			return nil, err
		}
		auth = append(auth, node...)
	}
	wotsAdrs := *adrs
	wotsAdrs.setType(addressWOTSHash)
	wotsAdrs.setKeyPairAddress(idx)
	sig, err := c.wotsSign(msg, skSeed, &wotsAdrs)
	if err != nil {
		return nil, err
	}
	return slices.Concat(sig, auth), nil
}

// xmssPKFromSig recovers the XMSS root from a signature of msg by key pair
// idx.
func (c *hashContext) xmssPKFromSig(idx uint32, sigXMSS, msg []byte, adrs *address) ([]byte, error) {
	p := c.p
	if len(sigXMSS) != int((p.len+p.hp)*p.n) {
		return nil, fmt.Errorf("sphincsplus: XMSS signature has %d bytes, want %d: %w", len(sigXMSS), (p.len+p.hp)*p.n, ErrDecode)
	}
	wotsAdrs := *adrs
	wotsAdrs.setType(addressWOTSHash)
	wotsAdrs.setKeyPairAddress(idx)
	sig, auth := sigXMSS[:p.len*p.n], sigXMSS[p.len*p.n:]
	node, err := c.wotsPKFromSig(sig, msg, &wotsAdrs)
	if err != nil {
		return nil, err
	}
	treeAdrs := *adrs
	treeAdrs.setType(addressTree)
	return c.rootFromAuthPath(node, idx, auth, &treeAdrs), nil
}

// htSign signs msg with the hypertree, starting at leaf idxLeaf of tree
// idxTree on the bottom layer.
func (c *hashContext) htSign(msg, skSeed []byte, idxTree uint64, idxLeaf uint32) ([]byte, error) {
	p := c.p
	var adrs address
	adrs.setTreeAddress(idxTree)
	sigHT, err := c.xmssSign(msg, skSeed, idxLeaf, &adrs)
	if err != nil {
		return nil, err
	}
	root, err := c.xmssPKFromSig(idxLeaf, sigHT, msg, &adrs)
	if err != nil {
		return nil, err
	}
	for j := uint32(1); j < p.d; j++ {
		// The low hp bits of idxTree select the leaf on the next layer.
		idxLeaf = uint32(idxTree & ((1 << p.hp) - 1))
		idxTree >>= p.hp
		adrs.setLayerAddress(j)
		adrs.setTreeAddress(idxTree)
		sigTmp, err := c.xmssSign(root, skSeed, idxLeaf, &adrs)
		if err != nil {
			return nil, err
		}
		sigHT = append(sigHT, sigTmp...)
		if j < p.d-1 {
			root, err = c.xmssPKFromSig(idxLeaf, sigTmp, root, &adrs)
			if err != nil {
				return nil, err
			}
		}
	}
	return sigHT, nil
}

// htVerify reports whether sigHT is a hypertree signature of msg under
// pkRoot. sigHT holds d XMSS signatures of (hp + len) * n bytes each.
func (c *hashContext) htVerify(msg, sigHT []byte, idxTree uint64, idxLeaf uint32, pkRoot []byte) (bool, error) {
	p := c.p
	if len(sigHT) != int((p.h+p.d*p.len)*p.n) {
		return false, fmt.Errorf("sphincsplus: hypertree signature has %d bytes, want %d: %w", len(sigHT), (p.h+p.d*p.len)*p.n, ErrDecode)
	}
	step := (p.hp + p.len) * p.n
	var adrs address
	adrs.setTreeAddress(idxTree)
	node, err := c.xmssPKFromSig(idxLeaf, sigHT[:step], msg, &adrs)
	if err != nil {
		return false, err
	}
	for j := uint32(1); j < p.d; j++ {
		idxLeaf = uint32(idxTree & ((1 << p.hp) - 1))
		idxTree >>= p.hp
		adrs.setLayerAddress(j)
		adrs.setTreeAddress(idxTree)
		node, err = c.xmssPKFromSig(idxLeaf, sigHT[j*step:(j+1)*step], node, &adrs)
		if err != nil {
			return false, err
		}
	}
	return subtle.ConstantTimeCompare(node, pkRoot) == 1, nil
}
