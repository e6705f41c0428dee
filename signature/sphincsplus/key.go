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
	"bytes"
	"fmt"

	"github.com/pqkernel/pqkernel-go/insecuresecretdataaccess"
	"github.com/pqkernel/pqkernel-go/internal/outputprefix"
	"github.com/pqkernel/pqkernel-go/internal/signature/sphincsplus"
	"github.com/pqkernel/pqkernel-go/key"
	"github.com/pqkernel/pqkernel-go/secretdata"
	"github.com/pqkernel/pqkernel-go/subtle"
)

// PublicKey represents a SPHINCS+ public key, pkSeed || pkRoot.
type PublicKey struct {
	keyBytes      []byte
	idRequirement uint32
	params        *Parameters
	outputPrefix  []byte
}

var _ key.Key = (*PublicKey)(nil)

func calculateOutputPrefix(variant Variant, keyID uint32) ([]byte, error) {
	switch variant {
	case VariantTink:
		return outputprefix.Tink(keyID), nil
	case VariantNoPrefix:
		return nil, nil
	default:
		return nil, fmt.Errorf("invalid output prefix variant: %v", variant)
	}
}

// NewPublicKey creates a new SPHINCS+ public key.
//
// idRequirement is the ID of the key in the keyset. It must be zero if params
// doesn't have an ID requirement.
func NewPublicKey(keyBytes []byte, idRequirement uint32, params *Parameters) (*PublicKey, error) {
	if params == nil {
		return nil, fmt.Errorf("sphincsplus.NewPublicKey: params must not be nil")
	}
	if !params.HasIDRequirement() && idRequirement != 0 {
		return nil, fmt.Errorf("sphincsplus.NewPublicKey: idRequirement must be zero if params doesn't have an ID requirement")
	}
	if len(keyBytes) != params.PublicKeySize() {
		return nil, fmt.Errorf("sphincsplus.NewPublicKey: invalid public key length %d, want %d", len(keyBytes), params.PublicKeySize())
	}
	outputPrefix, err := calculateOutputPrefix(params.variant, idRequirement)
	if err != nil {
		return nil, fmt.Errorf("sphincsplus.NewPublicKey: %w", err)
	}
	return &PublicKey{
		keyBytes:      bytes.Clone(keyBytes),
		idRequirement: idRequirement,
		params:        params,
		outputPrefix:  outputPrefix,
	}, nil
}

// KeyBytes returns the public key bytes.
func (k *PublicKey) KeyBytes() []byte { return bytes.Clone(k.keyBytes) }

// OutputPrefix returns the output prefix of this key.
func (k *PublicKey) OutputPrefix() []byte { return bytes.Clone(k.outputPrefix) }

// Parameters returns the parameters of the key.
func (k *PublicKey) Parameters() key.Parameters { return k.params }

// IDRequirement returns the ID requirement of the key, and whether it is
// required.
func (k *PublicKey) IDRequirement() (uint32, bool) {
	return k.idRequirement, k.params.HasIDRequirement()
}

// Equals returns true if this key is equal to other.
func (k *PublicKey) Equals(other key.Key) bool {
	that, ok := other.(*PublicKey)
	return ok && k.params.Equals(that.params) &&
		bytes.Equal(k.keyBytes, that.keyBytes) &&
		k.idRequirement == that.idRequirement
}

// PrivateKey represents a SPHINCS+ private key,
// skSeed || skPrf || pkSeed || pkRoot.
type PrivateKey struct {
	publicKey *PublicKey
	keyBytes  secretdata.Bytes
}

var _ key.Key = (*PrivateKey)(nil)

func decodeSecretKey(privateKeyBytes secretdata.Bytes, params *Parameters) (*sphincsplus.SecretKey, error) {
	sk, err := params.paramSet.DecodeSecretKey(privateKeyBytes.Data(insecuresecretdataaccess.Token{}))
	if err != nil {
		return nil, fmt.Errorf("invalid private key bytes: %w", err)
	}
	return sk, nil
}

// NewPrivateKey creates a new SPHINCS+ private key from privateKeyBytes, with
// idRequirement and params. The public key is taken from the trailing
// pkSeed || pkRoot of privateKeyBytes.
func NewPrivateKey(privateKeyBytes secretdata.Bytes, idRequirement uint32, params *Parameters) (*PrivateKey, error) {
	if params == nil {
		return nil, fmt.Errorf("sphincsplus.NewPrivateKey: params must not be nil")
	}
	sk, err := decodeSecretKey(privateKeyBytes, params)
	if err != nil {
		return nil, fmt.Errorf("sphincsplus.NewPrivateKey: %w", err)
	}
	pubKey, err := NewPublicKey(sk.PublicKey().Encode(), idRequirement, params)
	if err != nil {
		return nil, fmt.Errorf("sphincsplus.NewPrivateKey: %w", err)
	}
	return &PrivateKey{
		publicKey: pubKey,
		keyBytes:  privateKeyBytes,
	}, nil
}

// NewPrivateKeyWithPublicKey creates a new SPHINCS+ private key from
// privateKeyBytes and a [PublicKey].
func NewPrivateKeyWithPublicKey(privateKeyBytes secretdata.Bytes, pubKey *PublicKey) (*PrivateKey, error) {
	if pubKey == nil {
		return nil, fmt.Errorf("sphincsplus.NewPrivateKeyWithPublicKey: pubKey must not be nil")
	}
	sk, err := decodeSecretKey(privateKeyBytes, pubKey.params)
	if err != nil {
		return nil, fmt.Errorf("sphincsplus.NewPrivateKeyWithPublicKey: %w", err)
	}
	if !bytes.Equal(sk.PublicKey().Encode(), pubKey.keyBytes) {
		return nil, fmt.Errorf("sphincsplus.NewPrivateKeyWithPublicKey: public key does not match private key")
	}
	return &PrivateKey{
		publicKey: pubKey,
		keyBytes:  privateKeyBytes,
	}, nil
}

// PrivateKeyBytes returns the private key bytes.
func (k *PrivateKey) PrivateKeyBytes() secretdata.Bytes { return k.keyBytes }

// PublicKey returns the public key of the key.
func (k *PrivateKey) PublicKey() (key.Key, error) { return k.publicKey, nil }

// Parameters returns the parameters of the key.
func (k *PrivateKey) Parameters() key.Parameters { return k.publicKey.params }

// IDRequirement returns the ID requirement of the key, and whether it is
// required.
func (k *PrivateKey) IDRequirement() (uint32, bool) { return k.publicKey.IDRequirement() }

// OutputPrefix returns the output prefix of this key.
func (k *PrivateKey) OutputPrefix() []byte { return bytes.Clone(k.publicKey.outputPrefix) }

// Equals returns true if this key is equal to other.
func (k *PrivateKey) Equals(other key.Key) bool {
	that, ok := other.(*PrivateKey)
	return ok && k.publicKey.Equals(that.publicKey) &&
		k.keyBytes.Equal(that.keyBytes)
}

func newPrivateKeyFromSecretKey(sk *sphincsplus.SecretKey, idRequirement uint32, params *Parameters) (*PrivateKey, error) {
	return NewPrivateKey(secretdata.NewBytesFromData(sk.Encode(), insecuresecretdataaccess.Token{}), idRequirement, params)
}

// GenerateKeyPair generates a fresh private key.
func GenerateKeyPair(params *Parameters, idRequirement uint32) (*PrivateKey, error) {
	if params == nil {
		return nil, fmt.Errorf("sphincsplus.GenerateKeyPair: params must not be nil")
	}
	sk, _, err := params.paramSet.KeyGen()
	if err != nil {
		return nil, fmt.Errorf("sphincsplus.GenerateKeyPair: %w", err)
	}
	return newPrivateKeyFromSecretKey(sk, idRequirement, params)
}

// DeriveKeyPair deterministically derives a private key from the input keying
// material ikm. The three seeds are the HKDF output for salt and info, using
// SHA-256 at the 128-bit level and SHA-512 otherwise.
func DeriveKeyPair(params *Parameters, idRequirement uint32, ikm, salt, info []byte) (*PrivateKey, error) {
	if params == nil {
		return nil, fmt.Errorf("sphincsplus.DeriveKeyPair: params must not be nil")
	}
	n := params.paramSet.N()
	if len(ikm) < n {
		return nil, fmt.Errorf("sphincsplus.DeriveKeyPair: input keying material has %d bytes, want at least %d", len(ikm), n)
	}
	hashAlg := "SHA256"
	if n > 16 {
		hashAlg = "SHA512"
	}
	seeds, err := subtle.ComputeHKDF(hashAlg, ikm, salt, info, uint32(3*n))
	if err != nil {
		return nil, fmt.Errorf("sphincsplus.DeriveKeyPair: %w", err)
	}
	sk, _, err := params.paramSet.KeyGenFromSeeds(seeds[:n], seeds[n:2*n], seeds[2*n:])
	if err != nil {
		return nil, fmt.Errorf("sphincsplus.DeriveKeyPair: %w", err)
	}
	return newPrivateKeyFromSecretKey(sk, idRequirement, params)
}
