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

// Package sphincsplus provides SPHINCS+ (round 3.1) keys, parameters, signers
// and verifiers.
//
// Every combination of hash function (SHA2, SHAKE, Haraka), security level
// (128, 192, 256), signature type (fast signing or small signatures) and mode
// (robust or simple) is supported.
package sphincsplus

import (
	"fmt"

	"github.com/pqkernel/pqkernel-go/internal/signature/sphincsplus"
	"github.com/pqkernel/pqkernel-go/key"
)

// Variant is the prefix variant of a SPHINCS+ key.
//
// It describes the format of the signature:
//
//   - TINK: prepends '0x01<big endian key id>' to the signature.
//   - NO_PREFIX: adds no prefix to the signature.
type Variant int

const (
	// VariantUnknown is the default value of Variant.
	VariantUnknown Variant = iota
	// VariantTink prefixes '0x01<big endian key id>' to the signature.
	VariantTink
	// VariantNoPrefix does not prefix the signature with the key id.
	VariantNoPrefix
)

func (variant Variant) String() string {
	switch variant {
	case VariantTink:
		return "TINK"
	case VariantNoPrefix:
		return "NO_PREFIX"
	default:
		return "UNKNOWN"
	}
}

// HashType is the hash function family of a SPHINCS+ key.
type HashType int

const (
	// UnknownHashType is the default value of HashType.
	UnknownHashType HashType = iota
	// SHA2 selects SHA-256, with SHA-512 for levels above 128.
	SHA2
	// SHAKE selects SHAKE256.
	SHAKE
	// Haraka selects Haraka-256, Haraka-512 and the Haraka-S sponge.
	Haraka
)

func (h HashType) String() string {
	switch h {
	case SHA2:
		return "sha2"
	case SHAKE:
		return "shake"
	case Haraka:
		return "haraka"
	default:
		return "unknown"
	}
}

// SignatureType is the speed and size tradeoff of a SPHINCS+ key.
type SignatureType int

const (
	// UnknownSignatureType is the default value of SignatureType.
	UnknownSignatureType SignatureType = iota
	// FastSigning selects the "f" parameter sets.
	FastSigning
	// SmallSignature selects the "s" parameter sets.
	SmallSignature
)

func (s SignatureType) String() string {
	switch s {
	case FastSigning:
		return "f"
	case SmallSignature:
		return "s"
	default:
		return "?"
	}
}

// Mode selects how tweakable hash inputs are masked.
type Mode int

const (
	// UnknownMode is the default value of Mode.
	UnknownMode Mode = iota
	// Robust masks every hash input with a pseudorandom bitmask.
	Robust
	// Simple hashes inputs unmasked.
	Simple
)

func (m Mode) String() string {
	switch m {
	case Robust:
		return "robust"
	case Simple:
		return "simple"
	default:
		return "unknown"
	}
}

// Parameters represents the parameters of a SPHINCS+ key.
type Parameters struct {
	hashType      HashType
	securityLevel int
	sigType       SignatureType
	mode          Mode
	variant       Variant
	paramSet      *sphincsplus.ParamSet
}

var _ key.Parameters = (*Parameters)(nil)

// NewParameters creates a new Parameters. securityLevel is 128, 192 or 256.
func NewParameters(hashType HashType, securityLevel int, sigType SignatureType, mode Mode, variant Variant) (*Parameters, error) {
	if hashType == UnknownHashType || hashType > Haraka {
		return nil, fmt.Errorf("sphincsplus.NewParameters: unsupported hash type %v", hashType)
	}
	if securityLevel != 128 && securityLevel != 192 && securityLevel != 256 {
		return nil, fmt.Errorf("sphincsplus.NewParameters: security level must be 128, 192 or 256, got %d", securityLevel)
	}
	if sigType != FastSigning && sigType != SmallSignature {
		return nil, fmt.Errorf("sphincsplus.NewParameters: unsupported signature type %v", sigType)
	}
	if mode != Robust && mode != Simple {
		return nil, fmt.Errorf("sphincsplus.NewParameters: unsupported mode %v", mode)
	}
	if variant != VariantTink && variant != VariantNoPrefix {
		return nil, fmt.Errorf("sphincsplus.NewParameters: unsupported variant %v", variant)
	}
	name := fmt.Sprintf("%v-%d%v-%v", hashType, securityLevel, sigType, mode)
	paramSet, err := sphincsplus.ParamSetByName(name)
	if err != nil {
		return nil, fmt.Errorf("sphincsplus.NewParameters: %v", err)
	}
	return &Parameters{
		hashType:      hashType,
		securityLevel: securityLevel,
		sigType:       sigType,
		mode:          mode,
		variant:       variant,
		paramSet:      paramSet,
	}, nil
}

// parametersFromID returns the parameters of the parameter set with the given
// 4-byte identifier.
func parametersFromID(id uint32, variant Variant) (*Parameters, error) {
	if _, err := sphincsplus.ParamSetByID(id); err != nil {
		return nil, err
	}
	level := id & 0xff
	sigType := FastSigning
	if level%2 == 0 {
		sigType = SmallSignature
	}
	return NewParameters(HashType(id>>16), 64*int((level+1)/2)+64, sigType, Mode((id>>8)&0xff), variant)
}

// HashType returns the hash type.
func (p *Parameters) HashType() HashType { return p.hashType }

// SecurityLevel returns the security level in bits.
func (p *Parameters) SecurityLevel() int { return p.securityLevel }

// SignatureType returns the signature type.
func (p *Parameters) SignatureType() SignatureType { return p.sigType }

// Mode returns the hashing mode.
func (p *Parameters) Mode() Mode { return p.mode }

// Variant returns the prefix variant of the parameters.
func (p *Parameters) Variant() Variant { return p.variant }

// Name returns the name of the parameter set, such as "sha2-128s-simple".
func (p *Parameters) Name() string { return p.paramSet.Name() }

// ParamSetID returns the 4-byte identifier of the parameter set.
func (p *Parameters) ParamSetID() uint32 { return p.paramSet.ID() }

// PublicKeySize returns the public key size in bytes.
func (p *Parameters) PublicKeySize() int { return p.paramSet.PublicKeyLength() }

// PrivateKeySize returns the private key size in bytes.
func (p *Parameters) PrivateKeySize() int { return p.paramSet.SecretKeyLength() }

// SignatureSize returns the signature size in bytes, without output prefix.
func (p *Parameters) SignatureSize() int { return p.paramSet.SignatureLength() }

// HasIDRequirement returns true if the key has an ID requirement.
func (p *Parameters) HasIDRequirement() bool { return p.variant != VariantNoPrefix }

// Equals returns true if this parameters object is equal to other.
func (p *Parameters) Equals(other key.Parameters) bool {
	that, ok := other.(*Parameters)
	return ok && p.hashType == that.hashType &&
		p.securityLevel == that.securityLevel &&
		p.sigType == that.sigType &&
		p.mode == that.mode &&
		p.variant == that.variant
}
