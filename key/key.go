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

// Package key defines the interfaces shared by key and parameter types.
package key

// Parameters describes everything about a key except the key material.
type Parameters interface {
	// HasIDRequirement reports whether keys created with these parameters must
	// carry an identifier, typically because their outputs are prefixed with it.
	HasIDRequirement() bool
	// Equals reports whether other describes the same parameters.
	Equals(other Parameters) bool
}

// Key is a complete key: parameters, key material and an optional identifier.
type Key interface {
	// Parameters returns the parameters of this key.
	Parameters() Parameters
	// IDRequirement returns the identifier of the key and whether the
	// parameters require one.
	IDRequirement() (id uint32, required bool)
	// Equals reports whether other is the same key.
	Equals(other Key) bool
}
