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

// Package subtle holds key-derivation helpers shared by the signature
// packages.
package subtle

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
)

// minOutputSize is the smallest accepted HKDF output, 80 bits.
const minOutputSize = 10

func hashFunc(hashAlg string) (func() hash.Hash, int, error) {
	switch hashAlg {
	case "SHA256":
		return sha256.New, sha256.Size, nil
	case "SHA384":
		return sha512.New384, sha512.Size384, nil
	case "SHA512":
		return sha512.New, sha512.Size, nil
	default:
		return nil, 0, fmt.Errorf("unsupported hash algorithm %q", hashAlg)
	}
}

// ComputeHKDF returns outputSize bytes of HKDF (RFC 5869) output. An empty salt
// is replaced by a zero block of the digest size.
func ComputeHKDF(hashAlg string, key, salt, info []byte, outputSize uint32) ([]byte, error) {
	newHash, digestSize, err := hashFunc(hashAlg)
	if err != nil {
		return nil, fmt.Errorf("hkdf: %v", err)
	}
	if outputSize > 255*uint32(digestSize) {
		return nil, fmt.Errorf("hkdf: output size %d too big", outputSize)
	}
	if outputSize < minOutputSize {
		return nil, fmt.Errorf("hkdf: output size %d too small", outputSize)
	}
	if len(salt) == 0 {
		salt = make([]byte, digestSize)
	}
	out := make([]byte, outputSize)
	if _, err := io.ReadFull(hkdf.New(newHash, key, salt, info), out); err != nil {
		return nil, fmt.Errorf("hkdf: %v", err)
	}
	return out, nil
}
