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
	"encoding/binary"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/pqkernel/pqkernel-go/insecuresecretdataaccess"
	"github.com/pqkernel/pqkernel-go/signature/sphincsplus"
)

func TestMarshalParsePublicKey(t *testing.T) {
	params := mustNewParameters(t, sphincsplus.SHA2, 128, sphincsplus.FastSigning, sphincsplus.Robust, sphincsplus.VariantTink)
	privateKey := mustGenerateKeyPair(t, params, 99)
	publicKey := publicKeyOf(t, privateKey)

	data := sphincsplus.MarshalPublicKey(publicKey)
	if got, want := binary.BigEndian.Uint32(data), uint32(0x010101); got != want {
		t.Errorf("parameter set ID = %#x, want %#x", got, want)
	}
	if !bytes.Equal(data[4:], publicKey.KeyBytes()) {
		t.Errorf("MarshalPublicKey()[4:] = %x, want %x", data[4:], publicKey.KeyBytes())
	}
	got, err := sphincsplus.ParsePublicKey(data, sphincsplus.VariantTink, 99)
	if err != nil {
		t.Fatalf("sphincsplus.ParsePublicKey() err = %v", err)
	}
	if !got.Equals(publicKey) {
		t.Error("ParsePublicKey(MarshalPublicKey(k)) != k")
	}

	privData := sphincsplus.MarshalPrivateKey(privateKey, insecuresecretdataaccess.Token{})
	gotPriv, err := sphincsplus.ParsePrivateKey(privData, sphincsplus.VariantTink, 99, insecuresecretdataaccess.Token{})
	if err != nil {
		t.Fatalf("sphincsplus.ParsePrivateKey() err = %v", err)
	}
	if !gotPriv.Equals(privateKey) {
		t.Error("ParsePrivateKey(MarshalPrivateKey(k)) != k")
	}
}

func TestParsePublicKeyEveryParamSetID(t *testing.T) {
	for _, hashType := range []sphincsplus.HashType{sphincsplus.SHA2, sphincsplus.SHAKE, sphincsplus.Haraka} {
		for _, level := range []int{128, 192, 256} {
			for _, sigType := range []sphincsplus.SignatureType{sphincsplus.FastSigning, sphincsplus.SmallSignature} {
				for _, mode := range []sphincsplus.Mode{sphincsplus.Robust, sphincsplus.Simple} {
					params := mustNewParameters(t, hashType, level, sigType, mode, sphincsplus.VariantNoPrefix)
					data := binary.BigEndian.AppendUint32(nil, params.ParamSetID())
					data = append(data, make([]byte, params.PublicKeySize())...)
					k, err := sphincsplus.ParsePublicKey(data, sphincsplus.VariantNoPrefix, 0)
					if err != nil {
						t.Fatalf("%s: sphincsplus.ParsePublicKey() err = %v", params.Name(), err)
					}
					if !k.Parameters().Equals(params) {
						t.Errorf("%s: parsed parameters differ", params.Name())
					}
				}
			}
		}
	}
}

func TestParsePublicKeyInvalid(t *testing.T) {
	params := mustNewParameters(t, sphincsplus.SHA2, 128, sphincsplus.FastSigning, sphincsplus.Simple, sphincsplus.VariantNoPrefix)
	valid := binary.BigEndian.AppendUint32(nil, params.ParamSetID())
	valid = append(valid, make([]byte, params.PublicKeySize())...)
	if _, err := sphincsplus.ParsePublicKey(valid, sphincsplus.VariantNoPrefix, 0); err != nil {
		t.Fatalf("sphincsplus.ParsePublicKey(valid) err = %v", err)
	}
	for _, tc := range []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"id only", valid[:4]},
		{"short key", valid[:len(valid)-1]},
		{"long key", append(bytes.Clone(valid), 0)},
		{"unknown id", append([]byte{0x00, 0x04, 0x01, 0x01}, valid[4:]...)},
		{"unknown level", append([]byte{0x00, 0x01, 0x01, 0x07}, valid[4:]...)},
		{"wrong level", append([]byte{0x00, 0x01, 0x02, 0x03}, valid[4:]...)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := sphincsplus.ParsePublicKey(tc.data, sphincsplus.VariantNoPrefix, 0); err == nil {
				t.Error("sphincsplus.ParsePublicKey() err = nil, want error")
			}
		})
	}
}

func TestSerializeParsePublicKey(t *testing.T) {
	for _, variant := range []sphincsplus.Variant{sphincsplus.VariantTink, sphincsplus.VariantNoPrefix} {
		params := mustNewParameters(t, sphincsplus.SHAKE, 128, sphincsplus.FastSigning, sphincsplus.Simple, variant)
		idRequirement := uint32(0)
		if variant == sphincsplus.VariantTink {
			idRequirement = 0xdeadbeef
		}
		privateKey := mustGenerateKeyPair(t, params, idRequirement)
		publicKey := publicKeyOf(t, privateKey)

		b, err := sphincsplus.SerializePublicKey(publicKey)
		if err != nil {
			t.Fatalf("sphincsplus.SerializePublicKey() err = %v", err)
		}
		got, err := sphincsplus.ParseSerializedPublicKey(b)
		if err != nil {
			t.Fatalf("sphincsplus.ParseSerializedPublicKey() err = %v", err)
		}
		if !got.Equals(publicKey) {
			t.Errorf("%v: ParseSerializedPublicKey(SerializePublicKey(k)) != k", variant)
		}

		pb, err := sphincsplus.SerializePrivateKey(privateKey, insecuresecretdataaccess.Token{})
		if err != nil {
			t.Fatalf("sphincsplus.SerializePrivateKey() err = %v", err)
		}
		gotPriv, err := sphincsplus.ParseSerializedPrivateKey(pb, insecuresecretdataaccess.Token{})
		if err != nil {
			t.Fatalf("sphincsplus.ParseSerializedPrivateKey() err = %v", err)
		}
		if !gotPriv.Equals(privateKey) {
			t.Errorf("%v: ParseSerializedPrivateKey(SerializePrivateKey(k)) != k", variant)
		}
	}
}

func TestSerializedPublicKeyLayout(t *testing.T) {
	params := mustNewParameters(t, sphincsplus.Haraka, 256, sphincsplus.SmallSignature, sphincsplus.Robust, sphincsplus.VariantTink)
	keyBytes := bytes.Repeat([]byte{0xab}, params.PublicKeySize())
	publicKey, err := sphincsplus.NewPublicKey(keyBytes, 5, params)
	if err != nil {
		t.Fatalf("sphincsplus.NewPublicKey() err = %v", err)
	}
	got, err := sphincsplus.SerializePublicKey(publicKey)
	if err != nil {
		t.Fatalf("sphincsplus.SerializePublicKey() err = %v", err)
	}
	var paramsMsg []byte
	paramsMsg = protowire.AppendTag(paramsMsg, 1, protowire.VarintType)
	paramsMsg = protowire.AppendVarint(paramsMsg, 3)
	paramsMsg = protowire.AppendTag(paramsMsg, 2, protowire.VarintType)
	paramsMsg = protowire.AppendVarint(paramsMsg, 256)
	paramsMsg = protowire.AppendTag(paramsMsg, 3, protowire.VarintType)
	paramsMsg = protowire.AppendVarint(paramsMsg, 2)
	paramsMsg = protowire.AppendTag(paramsMsg, 4, protowire.VarintType)
	paramsMsg = protowire.AppendVarint(paramsMsg, 1)
	var want []byte
	want = protowire.AppendTag(want, 2, protowire.BytesType)
	want = protowire.AppendBytes(want, paramsMsg)
	want = protowire.AppendTag(want, 3, protowire.BytesType)
	want = protowire.AppendBytes(want, keyBytes)
	want = protowire.AppendTag(want, 4, protowire.VarintType)
	want = protowire.AppendVarint(want, 1)
	want = protowire.AppendTag(want, 5, protowire.VarintType)
	want = protowire.AppendVarint(want, 5)
	if !bytes.Equal(got, want) {
		t.Errorf("SerializePublicKey() = %x, want %x", got, want)
	}
}

func TestParseSerializedInvalid(t *testing.T) {
	params := mustNewParameters(t, sphincsplus.SHA2, 128, sphincsplus.FastSigning, sphincsplus.Simple, sphincsplus.VariantTink)
	privateKey := mustGenerateKeyPair(t, params, 3)
	publicKey := publicKeyOf(t, privateKey)
	pub, err := sphincsplus.SerializePublicKey(publicKey)
	if err != nil {
		t.Fatalf("sphincsplus.SerializePublicKey() err = %v", err)
	}
	priv, err := sphincsplus.SerializePrivateKey(privateKey, insecuresecretdataaccess.Token{})
	if err != nil {
		t.Fatalf("sphincsplus.SerializePrivateKey() err = %v", err)
	}
	version1 := protowire.AppendVarint(protowire.AppendTag(nil, 1, protowire.VarintType), 1)

	for _, tc := range []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated", pub[:len(pub)-1]},
		{"unsupported version", append(bytes.Clone(version1), pub...)},
		{"garbage", []byte{0xff, 0xff, 0xff}},
	} {
		t.Run("public "+tc.name, func(t *testing.T) {
			if _, err := sphincsplus.ParseSerializedPublicKey(tc.data); err == nil {
				t.Error("sphincsplus.ParseSerializedPublicKey() err = nil, want error")
			}
		})
	}

	otherKey := mustGenerateKeyPair(t, params, 3)
	otherPub, err := sphincsplus.SerializePublicKey(publicKeyOf(t, otherKey))
	if err != nil {
		t.Fatalf("sphincsplus.SerializePublicKey() err = %v", err)
	}
	// A later public_key field replaces the earlier one.
	mismatched := protowire.AppendBytes(protowire.AppendTag(bytes.Clone(priv), 2, protowire.BytesType), otherPub)
	for _, tc := range []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated", priv[:len(priv)-1]},
		{"unsupported version", append(bytes.Clone(version1), priv...)},
		{"mismatched public key", mismatched},
	} {
		t.Run("private "+tc.name, func(t *testing.T) {
			if _, err := sphincsplus.ParseSerializedPrivateKey(tc.data, insecuresecretdataaccess.Token{}); err == nil {
				t.Error("sphincsplus.ParseSerializedPrivateKey() err = nil, want error")
			}
		})
	}
}
