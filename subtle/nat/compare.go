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

package nat

import "math/bits"

// Compare returns -1, 0 or +1 as x is less than, equal to or greater than y.
// Variable time.
func Compare(n int, x, y []uint32) int {
	for i := n - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// Gte reports whether x >= y. Variable time.
func Gte(n int, x, y []uint32) bool {
	return Compare(n, x, y) >= 0
}

// Eq reports whether x == y. Variable time.
func Eq(n int, x, y []uint32) bool {
	for i := n - 1; i >= 0; i-- {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// IsOne reports whether x == 1. Variable time.
func IsOne(n int, x []uint32) bool {
	if x[0] != 1 {
		return false
	}
	for i := 1; i < n; i++ {
		if x[i] != 0 {
			return false
		}
	}
	return true
}

// IsZero reports whether x == 0. Variable time.
func IsZero(n int, x []uint32) bool {
	for i := range n {
		if x[i] != 0 {
			return false
		}
	}
	return true
}

// zeroMask returns all ones if d is zero and zero otherwise.
func zeroMask(d uint32) uint32 {
	return uint32((uint64(d) - 1) >> 32)
}

// EqualTo returns all ones if x == y and zero otherwise. Constant time.
func EqualTo(n int, x, y []uint32) uint32 {
	x, y = x[:n], y[:n]
	var d uint32
	for i := range n {
		d |= x[i] ^ y[i]
	}
	return zeroMask(d)
}

// EqualToWord returns all ones if x == y and zero otherwise. Constant time.
func EqualToWord(n int, x []uint32, y uint32) uint32 {
	x = x[:n]
	d := x[0] ^ y
	for i := 1; i < n; i++ {
		d |= x[i]
	}
	return zeroMask(d)
}

// EqualToZero returns all ones if x == 0 and zero otherwise. Constant time.
func EqualToZero(n int, x []uint32) uint32 {
	x = x[:n]
	var d uint32
	for i := range n {
		d |= x[i]
	}
	return zeroMask(d)
}

// LessThan returns all ones if x < y and zero otherwise. Constant time.
func LessThan(n int, x, y []uint32) uint32 {
	x, y = x[:n], y[:n]
	var c int64
	for i := range n {
		c += int64(x[i]) - int64(y[i])
		c >>= 32
	}
	return uint32(c)
}

// GetBitLength returns the position of the highest set bit of x plus one, or
// zero if x is zero. Variable time.
func GetBitLength(n int, x []uint32) int {
	for i := n - 1; i >= 0; i-- {
		if x[i] != 0 {
			return 32*i + bits.Len32(x[i])
		}
	}
	return 0
}
