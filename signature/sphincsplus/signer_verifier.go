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
	"errors"
	"fmt"
	"slices"

	"github.com/pqkernel/pqkernel-go/internal/outputprefix"
	"github.com/pqkernel/pqkernel-go/internal/signature/sphincsplus"
	"github.com/pqkernel/pqkernel-go/tink"
)

var errInvalidSignature = errors.New("sphincsplus: invalid signature")

// signer is an implementation of [tink.Signer] for SPHINCS+.
type signer struct {
	secretKey     *sphincsplus.SecretKey
	prefix        []byte
	deterministic bool
}

var _ tink.Signer = (*signer)(nil)

func newSigner(privateKey *PrivateKey, deterministic bool) (*signer, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("sphincsplus: private key must not be nil")
	}
	sk, err := decodeSecretKey(privateKey.keyBytes, privateKey.publicKey.params)
	if err != nil {
		return nil, fmt.Errorf("sphincsplus: %w", err)
	}
	return &signer{
		secretKey:     sk,
		prefix:        privateKey.OutputPrefix(),
		deterministic: deterministic,
	}, nil
}

// NewSigner creates a new [tink.Signer] for SPHINCS+ that randomizes every
// signature.
func NewSigner(privateKey *PrivateKey) (tink.Signer, error) {
	return newSigner(privateKey, false)
}

// NewDeterministicSigner creates a new [tink.Signer] for SPHINCS+ that uses
// pkSeed in place of fresh randomness, so equal messages get equal signatures.
func NewDeterministicSigner(privateKey *PrivateKey) (tink.Signer, error) {
	return newSigner(privateKey, true)
}

// Sign computes a signature for the given data.
//
// If the key has a prefix, the signature will be prefixed with the output
// prefix.
func (s *signer) Sign(data []byte) ([]byte, error) {
	var sig []byte
	var err error
	if s.deterministic {
		sig, err = s.secretKey.SignDeterministic(data)
	} else {
		sig, err = s.secretKey.Sign(data)
	}
	if err != nil {
		return nil, err
	}
	return slices.Concat(s.prefix, sig), nil
}

// verifier is an implementation of [tink.Verifier] for SPHINCS+.
type verifier struct {
	publicKey *sphincsplus.PublicKey
	prefix    []byte
}

var _ tink.Verifier = (*verifier)(nil)

// NewVerifier creates a new [tink.Verifier] for SPHINCS+.
func NewVerifier(publicKey *PublicKey) (tink.Verifier, error) {
	if publicKey == nil {
		return nil, fmt.Errorf("sphincsplus: public key must not be nil")
	}
	pk, err := publicKey.params.paramSet.DecodePublicKey(publicKey.keyBytes)
	if err != nil {
		return nil, fmt.Errorf("sphincsplus: %w", err)
	}
	return &verifier{
		publicKey: pk,
		prefix:    publicKey.OutputPrefix(),
	}, nil
}

// Verify verifies whether the given signature is valid for the given data.
//
// It returns an error if the prefix is not valid or the signature is not
// valid.
func (v *verifier) Verify(signature, data []byte) error {
	sig, ok := outputprefix.Strip(v.prefix, signature)
	if !ok {
		return fmt.Errorf("sphincsplus: the signature does not have the expected prefix")
	}
	valid, err := v.publicKey.Verify(data, sig)
	if err != nil {
		return err
	}
	if !valid {
		return errInvalidSignature
	}
	return nil
}

// Verify reports whether signature, as produced by a signer for the private
// key of publicKey, is a valid signature of message.
func Verify(message, signature []byte, publicKey *PublicKey) bool {
	v, err := NewVerifier(publicKey)
	if err != nil {
		return false
	}
	return v.Verify(signature, message) == nil
}
