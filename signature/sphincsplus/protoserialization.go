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
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/pqkernel/pqkernel-go/insecuresecretdataaccess"
	"github.com/pqkernel/pqkernel-go/secretdata"
)

// Keys are serialized as protocol buffers with the following schema:
//
//	message SphincsPlusParams {
//	  SphincsPlusHashType hash_type = 1;
//	  int32 security_level = 2;
//	  SphincsPlusSignatureType sig_type = 3;
//	  SphincsPlusMode mode = 4;
//	}
//
//	message SphincsPlusPublicKey {
//	  uint32 version = 1;
//	  SphincsPlusParams params = 2;
//	  bytes key_value = 3;
//	  OutputPrefixType output_prefix_type = 4;
//	  uint32 id_requirement = 5;
//	}
//
//	message SphincsPlusPrivateKey {
//	  uint32 version = 1;
//	  SphincsPlusPublicKey public_key = 2;
//	  bytes key_value = 3;
//	}
//
// The enum values of hash type, signature type and mode equal the Go
// constants. OutputPrefixType uses TINK = 1 and RAW = 3.
const (
	// Only version 0 is supported; other versions are rejected.
	publicKeyProtoVersion  = 0
	privateKeyProtoVersion = 0

	paramsHashTypeField      protowire.Number = 1
	paramsSecurityLevelField protowire.Number = 2
	paramsSigTypeField       protowire.Number = 3
	paramsModeField          protowire.Number = 4

	publicKeyVersionField       protowire.Number = 1
	publicKeyParamsField        protowire.Number = 2
	publicKeyValueField         protowire.Number = 3
	publicKeyPrefixTypeField    protowire.Number = 4
	publicKeyIDRequirementField protowire.Number = 5

	privateKeyVersionField   protowire.Number = 1
	privateKeyPublicKeyField protowire.Number = 2
	privateKeyValueField     protowire.Number = 3

	outputPrefixTypeTink = 1
	outputPrefixTypeRaw  = 3
)

func protoOutputPrefixTypeFromVariant(variant Variant) (uint64, error) {
	switch variant {
	case VariantTink:
		return outputPrefixTypeTink, nil
	case VariantNoPrefix:
		return outputPrefixTypeRaw, nil
	default:
		return 0, fmt.Errorf("unknown output prefix variant: %v", variant)
	}
}

func variantFromProto(prefixType uint64) (Variant, error) {
	switch prefixType {
	case outputPrefixTypeTink:
		return VariantTink, nil
	case outputPrefixTypeRaw:
		return VariantNoPrefix, nil
	default:
		return VariantUnknown, fmt.Errorf("unsupported output prefix type: %v", prefixType)
	}
}

// appendVarintField omits zero values, as proto3 does.
func appendVarintField(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendBytesField(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// message holds the scalar and length-delimited fields of a decoded message.
// Later occurrences of a field replace earlier ones.
type message struct {
	varints map[protowire.Number]uint64
	bytes   map[protowire.Number][]byte
}

func parseMessage(b []byte) (*message, error) {
	m := &message{
		varints: make(map[protowire.Number]uint64),
		bytes:   make(map[protowire.Number][]byte),
	}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			m.varints[num] = v
			b = b[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			m.bytes[num] = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return m, nil
}

func marshalParams(p *Parameters) []byte {
	var b []byte
	b = appendVarintField(b, paramsHashTypeField, uint64(p.hashType))
	b = appendVarintField(b, paramsSecurityLevelField, uint64(p.securityLevel))
	b = appendVarintField(b, paramsSigTypeField, uint64(p.sigType))
	return appendVarintField(b, paramsModeField, uint64(p.mode))
}

func marshalPublicKey(k *PublicKey) ([]byte, error) {
	prefixType, err := protoOutputPrefixTypeFromVariant(k.params.variant)
	if err != nil {
		return nil, err
	}
	var b []byte
	b = appendVarintField(b, publicKeyVersionField, publicKeyProtoVersion)
	b = appendBytesField(b, publicKeyParamsField, marshalParams(k.params))
	b = appendBytesField(b, publicKeyValueField, k.keyBytes)
	b = appendVarintField(b, publicKeyPrefixTypeField, prefixType)
	// idRequirement is zero if the key doesn't have a key requirement.
	return appendVarintField(b, publicKeyIDRequirementField, uint64(k.idRequirement)), nil
}

func parsePublicKey(b []byte) (*PublicKey, error) {
	m, err := parseMessage(b)
	if err != nil {
		return nil, err
	}
	if v := m.varints[publicKeyVersionField]; v != publicKeyProtoVersion {
		return nil, fmt.Errorf("public key has unsupported version: %v", v)
	}
	pm, err := parseMessage(m.bytes[publicKeyParamsField])
	if err != nil {
		return nil, err
	}
	variant, err := variantFromProto(m.varints[publicKeyPrefixTypeField])
	if err != nil {
		return nil, err
	}
	params, err := NewParameters(
		HashType(pm.varints[paramsHashTypeField]),
		int(pm.varints[paramsSecurityLevelField]),
		SignatureType(pm.varints[paramsSigTypeField]),
		Mode(pm.varints[paramsModeField]),
		variant)
	if err != nil {
		return nil, err
	}
	idRequirement := m.varints[publicKeyIDRequirementField]
	if idRequirement > 0xffffffff {
		return nil, fmt.Errorf("id requirement %d out of range", idRequirement)
	}
	return NewPublicKey(m.bytes[publicKeyValueField], uint32(idRequirement), params)
}

// SerializePublicKey serializes k as a SphincsPlusPublicKey message.
func SerializePublicKey(k *PublicKey) ([]byte, error) {
	b, err := marshalPublicKey(k)
	if err != nil {
		return nil, fmt.Errorf("sphincsplus.SerializePublicKey: %w", err)
	}
	return b, nil
}

// ParseSerializedPublicKey parses the output of [SerializePublicKey].
func ParseSerializedPublicKey(b []byte) (*PublicKey, error) {
	k, err := parsePublicKey(b)
	if err != nil {
		return nil, fmt.Errorf("sphincsplus.ParseSerializedPublicKey: %w", err)
	}
	return k, nil
}

// SerializePrivateKey serializes k as a SphincsPlusPrivateKey message.
func SerializePrivateKey(k *PrivateKey, token insecuresecretdataaccess.Token) ([]byte, error) {
	pub, err := marshalPublicKey(k.publicKey)
	if err != nil {
		return nil, fmt.Errorf("sphincsplus.SerializePrivateKey: %w", err)
	}
	var b []byte
	b = appendVarintField(b, privateKeyVersionField, privateKeyProtoVersion)
	b = appendBytesField(b, privateKeyPublicKeyField, pub)
	return appendBytesField(b, privateKeyValueField, k.keyBytes.Data(token)), nil
}

// ParseSerializedPrivateKey parses the output of [SerializePrivateKey]. The
// embedded public key must match the private key.
func ParseSerializedPrivateKey(b []byte, token insecuresecretdataaccess.Token) (*PrivateKey, error) {
	m, err := parseMessage(b)
	if err != nil {
		return nil, fmt.Errorf("sphincsplus.ParseSerializedPrivateKey: %w", err)
	}
	if v := m.varints[privateKeyVersionField]; v != privateKeyProtoVersion {
		return nil, fmt.Errorf("sphincsplus.ParseSerializedPrivateKey: private key has unsupported version: %v", v)
	}
	publicKey, err := parsePublicKey(m.bytes[privateKeyPublicKeyField])
	if err != nil {
		return nil, fmt.Errorf("sphincsplus.ParseSerializedPrivateKey: %w", err)
	}
	return NewPrivateKeyWithPublicKey(secretdata.NewBytesFromData(m.bytes[privateKeyValueField], token), publicKey)
}
