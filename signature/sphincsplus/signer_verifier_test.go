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

package sphincsplus_test

import (
	"bytes"
	"testing"

	"github.com/pqkernel/pqkernel-go/signature/sphincsplus"
)

var message = []byte("message to be signed by sphincs+")

func TestSignVerify(t *testing.T) {
	for _, tc := range []struct {
		name          string
		hashType      sphincsplus.HashType
		level         int
		sigType       sphincsplus.SignatureType
		mode          sphincsplus.Mode
		variant       sphincsplus.Variant
		idRequirement uint32
	}{
		{"sha2-128s-simple tink", sphincsplus.SHA2, 128, sphincsplus.SmallSignature, sphincsplus.Simple, sphincsplus.VariantTink, 0x11223344},
		{"sha2-128f-robust no prefix", sphincsplus.SHA2, 128, sphincsplus.FastSigning, sphincsplus.Robust, sphincsplus.VariantNoPrefix, 0},
		{"shake-192f-simple tink", sphincsplus.SHAKE, 192, sphincsplus.FastSigning, sphincsplus.Simple, sphincsplus.VariantTink, 7},
		{"shake-128f-robust no prefix", sphincsplus.SHAKE, 128, sphincsplus.FastSigning, sphincsplus.Robust, sphincsplus.VariantNoPrefix, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			params := mustNewParameters(t, tc.hashType, tc.level, tc.sigType, tc.mode, tc.variant)
			privateKey := mustGenerateKeyPair(t, params, tc.idRequirement)
			publicKey := publicKeyOf(t, privateKey)

			signer, err := sphincsplus.NewSigner(privateKey)
			if err != nil {
				t.Fatalf("sphincsplus.NewSigner() err = %v", err)
			}
			verifier, err := sphincsplus.NewVerifier(publicKey)
			if err != nil {
				t.Fatalf("sphincsplus.NewVerifier() err = %v", err)
			}
			sig, err := signer.Sign(message)
			if err != nil {
				t.Fatalf("signer.Sign() err = %v", err)
			}
			prefix := privateKey.OutputPrefix()
			if got, want := len(sig), len(prefix)+params.SignatureSize(); got != want {
				t.Fatalf("len(sig) = %v, want %v", got, want)
			}
			if !bytes.HasPrefix(sig, prefix) {
				t.Errorf("sig = %x..., want prefix %x", sig[:len(prefix)], prefix)
			}
			if err := verifier.Verify(sig, message); err != nil {
				t.Errorf("verifier.Verify() err = %v, want nil", err)
			}
			if !sphincsplus.Verify(message, sig, publicKey) {
				t.Error("sphincsplus.Verify() = false, want true")
			}

			corrupted := bytes.Clone(sig)
			corrupted[len(prefix)] ^= 1
			if err := verifier.Verify(corrupted, message); err == nil {
				t.Error("verifier.Verify(corrupted) err = nil, want error")
			}
			if sphincsplus.Verify(message, corrupted, publicKey) {
				t.Error("sphincsplus.Verify(corrupted) = true, want false")
			}
			if err := verifier.Verify(sig, []byte("another message")); err == nil {
				t.Error("verifier.Verify(another message) err = nil, want error")
			}
			if err := verifier.Verify(sig[:len(sig)-1], message); err == nil {
				t.Error("verifier.Verify(truncated) err = nil, want error")
			}
			if len(prefix) > 0 {
				badPrefix := bytes.Clone(sig)
				badPrefix[1] ^= 1
				if err := verifier.Verify(badPrefix, message); err == nil {
					t.Error("verifier.Verify(bad prefix) err = nil, want error")
				}
				if err := verifier.Verify(sig[len(prefix):], message); err == nil {
					t.Error("verifier.Verify(no prefix) err = nil, want error")
				}
			}
		})
	}
}

func TestSignerRandomizedAndDeterministic(t *testing.T) {
	params := mustNewParameters(t, sphincsplus.SHA2, 128, sphincsplus.FastSigning, sphincsplus.Simple, sphincsplus.VariantNoPrefix)
	privateKey := mustGenerateKeyPair(t, params, 0)
	verifier, err := sphincsplus.NewVerifier(publicKeyOf(t, privateKey))
	if err != nil {
		t.Fatalf("sphincsplus.NewVerifier() err = %v", err)
	}

	randomized, err := sphincsplus.NewSigner(privateKey)
	if err != nil {
		t.Fatalf("sphincsplus.NewSigner() err = %v", err)
	}
	sig1, err := randomized.Sign(message)
	if err != nil {
		t.Fatalf("Sign() err = %v", err)
	}
	sig2, err := randomized.Sign(message)
	if err != nil {
		t.Fatalf("Sign() err = %v", err)
	}
	if bytes.Equal(sig1, sig2) {
		t.Error("randomized signatures are equal")
	}

	deterministic, err := sphincsplus.NewDeterministicSigner(privateKey)
	if err != nil {
		t.Fatalf("sphincsplus.NewDeterministicSigner() err = %v", err)
	}
	sig3, err := deterministic.Sign(message)
	if err != nil {
		t.Fatalf("Sign() err = %v", err)
	}
	sig4, err := deterministic.Sign(message)
	if err != nil {
		t.Fatalf("Sign() err = %v", err)
	}
	if !bytes.Equal(sig3, sig4) {
		t.Error("deterministic signatures differ")
	}
	for _, sig := range [][]byte{sig1, sig2, sig3} {
		if err := verifier.Verify(sig, message); err != nil {
			t.Errorf("verifier.Verify() err = %v, want nil", err)
		}
	}
}

func TestVerifyWithWrongKey(t *testing.T) {
	params := mustNewParameters(t, sphincsplus.SHAKE, 128, sphincsplus.FastSigning, sphincsplus.Simple, sphincsplus.VariantTink)
	privateKey := mustGenerateKeyPair(t, params, 1)
	otherKey := mustGenerateKeyPair(t, params, 1)
	signer, err := sphincsplus.NewSigner(privateKey)
	if err != nil {
		t.Fatalf("sphincsplus.NewSigner() err = %v", err)
	}
	sig, err := signer.Sign(message)
	if err != nil {
		t.Fatalf("signer.Sign() err = %v", err)
	}
	if sphincsplus.Verify(message, sig, publicKeyOf(t, otherKey)) {
		t.Error("sphincsplus.Verify() with another key = true, want false")
	}
	if sphincsplus.Verify(message, sig, nil) {
		t.Error("sphincsplus.Verify() with nil key = true, want false")
	}
}
