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

// Package tink defines the primitive interfaces implemented by the signature
// packages.
package tink

// Signer computes digital signatures.
type Signer interface {
	// Sign returns a signature of data.
	Sign(data []byte) ([]byte, error)
}

// Verifier checks digital signatures.
type Verifier interface {
	// Verify returns nil if signature is a valid signature of data and an
	// error otherwise.
	Verify(signature, data []byte) error
}
