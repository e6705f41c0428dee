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

// Package sphincsplus implements the SPHINCS+ stateless hash-based signature
// scheme, round 3.1 (https://sphincs.org/data/sphincs+-r3.1-specification.pdf),
// with the SHA2, SHAKE and Haraka instantiations in robust and simple mode.
// The implementation is constant time assuming that the underlying hashing
// primitives are constant time.
package sphincsplus

import (
	"crypto/rand"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidInput is returned when an internal precondition is violated.
	ErrInvalidInput = errors.New("sphincsplus: invalid input")
	// ErrDecode is returned for keys and signatures of the wrong length.
	ErrDecode = errors.New("sphincsplus: decoding error")
)

// PublicKey is a SPHINCS+ public key.
type PublicKey struct {
	pkSeed []byte
	pkRoot []byte
	p      *ParamSet
}

// SecretKey is a SPHINCS+ secret key.
type SecretKey struct {
	skSeed []byte
	skPrf  []byte
	pkSeed []byte
	pkRoot []byte
	p      *ParamSet
}

// KeyGenFromSeeds derives the key pair for the given n-byte seeds.
func (p *ParamSet) KeyGenFromSeeds(skSeed, skPrf, pkSeed []byte) (*SecretKey, *PublicKey, error) {
	for _, s := range [][]byte{skSeed, skPrf, pkSeed} {
		if len(s) != int(p.n) {
			return nil, nil, fmt.Errorf("sphincsplus: seed has %d bytes, want %d: %w", len(s), p.n, ErrInvalidInput)
		}
	}
	// The public root is the root of the single XMSS tree on the top layer.
	var adrs address
	adrs.setLayerAddress(p.d - 1)
	pkRoot, err := p.newHashContext(pkSeed).xmssRoot(skSeed, &adrs)
	if err != nil {
		return nil, nil, err
	}
	skSeed, skPrf, pkSeed = slices.Clone(skSeed), slices.Clone(skPrf), slices.Clone(pkSeed)
	return &SecretKey{skSeed, skPrf, pkSeed, pkRoot, p}, &PublicKey{pkSeed, pkRoot, p}, nil
}

// KeyGen generates a fresh key pair from crypto/rand.
func (p *ParamSet) KeyGen() (*SecretKey, *PublicKey, error) {
	seeds := make([]byte, 3*p.n)
	if _, err := rand.Read(seeds); err != nil {
		return nil, nil, fmt.Errorf("sphincsplus: reading randomness: %v", err)
	}
	return p.KeyGenFromSeeds(seeds[:p.n], seeds[p.n:2*p.n], seeds[2*p.n:])
}

// signInternal produces R || SIG_FORS || SIG_HT, where R is derived from
// optRand and the message.
func (sk *SecretKey) signInternal(msg, optRand []byte) ([]byte, error) {
	p := sk.p
	c := p.newHashContext(sk.pkSeed)
	r := c.e.prfMsg(sk.skPrf, optRand, msg)
	md := c.e.hMsg(r, sk.pkRoot, msg)

	var adrs address
	adrs.setTreeAddress(md.idxTree)
	adrs.setType(addressFORSTree)
	adrs.setKeyPairAddress(md.idxLeaf)
	sigFors, err := c.forsSign(md.digest, sk.skSeed, &adrs)
	if err != nil {
		return nil, err
	}
	pkFors, err := c.forsPKFromSig(sigFors, md.digest, &adrs)
	if err != nil {
		return nil, err
	}
	sigHT, err := c.htSign(pkFors, sk.skSeed, md.idxTree, md.idxLeaf)
	if err != nil {
		return nil, err
	}
	return slices.Concat(r, sigFors, sigHT), nil
}

// verifyInternal reports whether sig is a valid signature of msg. It returns
// ErrDecode if sig has the wrong length.
func (pk *PublicKey) verifyInternal(msg, sig []byte) (bool, error) {
	p := pk.p
	if len(sig) != p.SignatureLength() {
		return false, fmt.Errorf("sphincsplus: signature has %d bytes, want %d: %w", len(sig), p.SignatureLength(), ErrDecode)
	}
	forsEnd := (1 + p.k*(1+p.a)) * p.n
	r := sig[:p.n]
	sigFors := sig[p.n:forsEnd]
	sigHT := sig[forsEnd:]

	c := p.newHashContext(pk.pkSeed)
	md := c.e.hMsg(r, pk.pkRoot, msg)

	var adrs address
	adrs.setTreeAddress(md.idxTree)
	adrs.setType(addressFORSTree)
	adrs.setKeyPairAddress(md.idxLeaf)
	pkFors, err := c.forsPKFromSig(sigFors, md.digest, &adrs)
	if err != nil {
		return false, err
	}
	return c.htVerify(pkFors, sigHT, md.idxTree, md.idxLeaf, pk.pkRoot)
}

// Sign signs msg with fresh randomness.
func (sk *SecretKey) Sign(msg []byte) ([]byte, error) {
	optRand := make([]byte, sk.p.n)
	if _, err := rand.Read(optRand); err != nil {
		return nil, fmt.Errorf("sphincsplus: reading randomness: %v", err)
	}
	return sk.signInternal(msg, optRand)
}

// SignDeterministic signs msg using pkSeed in place of fresh randomness.
func (sk *SecretKey) SignDeterministic(msg []byte) ([]byte, error) {
	return sk.signInternal(msg, sk.pkSeed)
}

// Verify reports whether sig is a valid signature of msg. A signature of the
// wrong length is an error; any other mismatch is a plain false.
func (pk *PublicKey) Verify(msg, sig []byte) (bool, error) {
	return pk.verifyInternal(msg, sig)
}

// ParamSet returns the parameter set of the key.
func (pk *PublicKey) ParamSet() *ParamSet { return pk.p }

// ParamSet returns the parameter set of the key.
func (sk *SecretKey) ParamSet() *ParamSet { return sk.p }

// Encode encodes a public key as pkSeed || pkRoot.
func (pk *PublicKey) Encode() []byte {
	return slices.Concat(pk.pkSeed, pk.pkRoot)
}

// DecodePublicKey decodes a public key.
func (p *ParamSet) DecodePublicKey(pkEnc []byte) (*PublicKey, error) {
	if len(pkEnc) != p.PublicKeyLength() {
		return nil, fmt.Errorf("sphincsplus: public key has %d bytes, want %d: %w", len(pkEnc), p.PublicKeyLength(), ErrDecode)
	}
	pkEnc = slices.Clone(pkEnc)
	return &PublicKey{pkEnc[:p.n], pkEnc[p.n:], p}, nil
}

// Encode encodes a secret key as skSeed || skPrf || pkSeed || pkRoot.
func (sk *SecretKey) Encode() []byte {
	return slices.Concat(sk.skSeed, sk.skPrf, sk.pkSeed, sk.pkRoot)
}

// DecodeSecretKey decodes a secret key. The public root is taken as given.
func (p *ParamSet) DecodeSecretKey(skEnc []byte) (*SecretKey, error) {
	if len(skEnc) != p.SecretKeyLength() {
		return nil, fmt.Errorf("sphincsplus: secret key has %d bytes, want %d: %w", len(skEnc), p.SecretKeyLength(), ErrDecode)
	}
	skEnc = slices.Clone(skEnc)
	n := p.n
	return &SecretKey{skEnc[:n], skEnc[n : 2*n], skEnc[2*n : 3*n], skEnc[3*n:], p}, nil
}

// PublicKey returns the public key of sk.
func (sk *SecretKey) PublicKey() *PublicKey {
	return &PublicKey{sk.pkSeed, sk.pkRoot, sk.p}
}
