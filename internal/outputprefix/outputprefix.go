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

// Package outputprefix computes the prefix that keys with an ID requirement
// put in front of their signatures.
package outputprefix

import (
	"bytes"
	"encoding/binary"
)

const (
	// Size is the length of a TINK prefix.
	Size = 5

	tinkStartByte = byte(1)
)

// Tink returns 0x01 followed by the big-endian keyID.
func Tink(keyID uint32) []byte {
	prefix := make([]byte, Size)
	prefix[0] = tinkStartByte
	binary.BigEndian.PutUint32(prefix[1:], keyID)
	return prefix
}

// Strip removes prefix from data. It reports false if data does not start
// with prefix.
func Strip(prefix, data []byte) ([]byte, bool) {
	if !bytes.HasPrefix(data, prefix) {
		return nil, false
	}
	return data[len(prefix):], true
}
