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

// Mul sets zz = x * y. zz has 2n words and must not overlap x or y. Constant
// time.
func Mul(n int, x, y, zz []uint32) {
	x, y, zz = x[:n], y[:n], zz[:2*n]
	zz[n] = MulWord(n, x[0], y, zz)
	for i := 1; i < n; i++ {
		zz[i+n] = MulWordAddTo(n, x[i], y, zz[i:])
	}
}

// MulAddTo sets zz = zz + x * y over 2n words and returns the carry. Constant
// time.
func MulAddTo(n int, x, y, zz []uint32) uint32 {
	x, y, zz = x[:n], y[:n], zz[:2*n]
	var zc uint64
	for i := range n {
		c := MulWordAddTo(n, x[i], y, zz[i:])
		zc += uint64(c) + uint64(zz[i+n])
		zz[i+n] = uint32(zc)
		zc >>= 32
	}
	return uint32(zc)
}

// MulWord sets z = x * y over n words and returns the high word of the
// product. Constant time.
func MulWord(n int, x uint32, y, z []uint32) uint32 {
	y, z = y[:n], z[:n]
	xx := uint64(x)
	var c uint64
	for i := range n {
		c += xx * uint64(y[i])
		z[i] = uint32(c)
		c >>= 32
	}
	return uint32(c)
}

// MulWordAddTo sets z = z + x * y over n words and returns the carry word.
// Constant time.
func MulWordAddTo(n int, x uint32, y, z []uint32) uint32 {
	y, z = y[:n], z[:n]
	xx := uint64(x)
	var c uint64
	for i := range n {
		c += xx*uint64(y[i]) + uint64(z[i])
		z[i] = uint32(c)
		c >>= 32
	}
	return uint32(c)
}

// Square sets zz = x * x. zz has 2n words and must not overlap x. The cross
// products are computed once and doubled. Constant time.
func Square(n int, x, zz []uint32) {
	x, zz = x[:n], zz[:2*n]
	clear(zz)
	for i := 1; i < n; i++ {
		zz[2*i] = MulWordAddTo(i, x[i], x, zz[i:])
	}
	ShiftUpBit(2*n, zz, 0, zz)
	var c uint64
	for i := range n {
		sq := uint64(x[i]) * uint64(x[i])
		c += uint64(zz[2*i]) + (sq & m32)
		zz[2*i] = uint32(c)
		c >>= 32
		c += uint64(zz[2*i+1]) + (sq >> 32)
		zz[2*i+1] = uint32(c)
		c >>= 32
	}
}
