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

// Package secretdata wraps secret key material so that reading it requires an
// [insecuresecretdataaccess.Token].
package secretdata

import (
	"bytes"
	"crypto/rand"
	"crypto/subtle"

	"github.com/pqkernel/pqkernel-go/insecuresecretdataaccess"
)

// Bytes holds an immutable copy of secret bytes.
type Bytes struct {
	data []byte
}

// NewBytesFromRand returns size bytes from crypto/rand.
func NewBytesFromRand(size uint32) (Bytes, error) {
	b := Bytes{data: make([]byte, size)}
	if _, err := rand.Read(b.data); err != nil {
		return Bytes{}, err
	}
	return b, nil
}

// NewBytesFromData returns a Bytes holding a copy of data.
func NewBytesFromData(data []byte, token insecuresecretdataaccess.Token) Bytes {
	return Bytes{data: bytes.Clone(data)}
}

// Data returns a copy of the secret bytes.
func (b Bytes) Data(token insecuresecretdataaccess.Token) []byte { return bytes.Clone(b.data) }

// Len returns the number of secret bytes.
func (b Bytes) Len() int { return len(b.data) }

// Equal compares b and other in time that depends only on their lengths.
func (b Bytes) Equal(other Bytes) bool {
	return subtle.ConstantTimeCompare(b.data, other.data) == 1
}
