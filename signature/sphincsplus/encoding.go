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
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/pqkernel/pqkernel-go/insecuresecretdataaccess"
	"github.com/pqkernel/pqkernel-go/secretdata"
)

// paramSetIDSize is the length of the parameter set identifier that prefixes
// marshaled keys.
const paramSetIDSize = 4

func appendParamSetID(id uint32, keyBytes []byte) []byte {
	return slices.Concat(binary.BigEndian.AppendUint32(nil, id), keyBytes)
}

func splitParamSetID(data []byte, variant Variant) (*Parameters, []byte, error) {
	if len(data) < paramSetIDSize {
		return nil, nil, fmt.Errorf("encoding too short: %d bytes", len(data))
	}
	params, err := parametersFromID(binary.BigEndian.Uint32(data), variant)
	if err != nil {
		return nil, nil, err
	}
	return params, data[paramSetIDSize:], nil
}

// MarshalPublicKey encodes k as the 4-byte big-endian parameter set identifier
// followed by pkSeed || pkRoot. [PublicKey.KeyBytes] is the same encoding
// without the identifier.
func MarshalPublicKey(k *PublicKey) []byte {
	return appendParamSetID(k.params.ParamSetID(), k.keyBytes)
}

// ParsePublicKey decodes the output of [MarshalPublicKey]. The parameter set is
// taken from the identifier; variant and idRequirement complete the
// parameters.
func ParsePublicKey(data []byte, variant Variant, idRequirement uint32) (*PublicKey, error) {
	params, keyBytes, err := splitParamSetID(data, variant)
	if err != nil {
		return nil, fmt.Errorf("sphincsplus.ParsePublicKey: %w", err)
	}
	return NewPublicKey(keyBytes, idRequirement, params)
}

// MarshalPrivateKey encodes k as the 4-byte big-endian parameter set
// identifier followed by skSeed || skPrf || pkSeed || pkRoot.
func MarshalPrivateKey(k *PrivateKey, token insecuresecretdataaccess.Token) []byte {
	return appendParamSetID(k.publicKey.params.ParamSetID(), k.keyBytes.Data(token))
}

// ParsePrivateKey decodes the output of [MarshalPrivateKey].
func ParsePrivateKey(data []byte, variant Variant, idRequirement uint32, token insecuresecretdataaccess.Token) (*PrivateKey, error) {
	params, keyBytes, err := splitParamSetID(data, variant)
	if err != nil {
		return nil, fmt.Errorf("sphincsplus.ParsePrivateKey: %w", err)
	}
	return NewPrivateKey(secretdata.NewBytesFromData(keyBytes, token), idRequirement, params)
}
