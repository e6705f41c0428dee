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

// Package mod computes modular inverses for odd moduli with the safegcd
// algorithm of Bernstein and Yang ("Fast constant-time gcd computation and
// modular inversion", https://eprint.iacr.org/2019/266).
//
// Numbers use the little-endian 32-bit word layout of package nat. The
// constant-time functions run a number of divsteps fixed by the bit length of
// the modulus; the Var functions stop as soon as the gcd is found and must
// only be used when the input is not secret.
package mod

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/pqkernel/pqkernel-go/subtle/nat"
)

var (
	// ErrInvalidInput is returned for an even or zero modulus, or a value that
	// is not reduced modulo the modulus.
	ErrInvalidInput = errors.New("mod: invalid input")
	// ErrNotInvertible is returned when the value shares a factor with the
	// modulus.
	ErrNotInvertible = errors.New("mod: inverse does not exist")
)

// Inverse32 returns the inverse of the odd value d modulo 2^32.
func Inverse32(d uint32) uint32 {
	x := d       // d*x == 1 mod 2^3
	x *= 2 - d*x // 2^6
	x *= 2 - d*x // 2^12
	x *= 2 - d*x // 2^24
	x *= 2 - d*x // 2^48
	return x
}

// Inverse64 returns the inverse of the odd value d modulo 2^64.
func Inverse64(d uint64) uint64 {
	x := d
	for range 5 {
		x *= 2 - d*x
	}
	return x
}

// ModOddInverse sets z to the inverse of x modulo m and returns 1, or returns
// 0 if x is not invertible. m must be odd, x must be less than m, and all
// three slices have len(m) words. Constant time in the value of x.
func ModOddInverse(m, x, z []uint32) uint32 {
	n := len(m)
	bits := nat.GetBitLength(n, m)
	len30 := (bits + 29) / 30

	var t [4]int32
	d := make([]int32, len30)
	e := make([]int32, len30)
	f := make([]int32, len30)
	g := make([]int32, len30)
	mm := make([]int32, len30)

	e[0] = 1
	encode30(bits, x, g)
	encode30(bits, m, mm)
	copy(f, mm)

	zeta := int32(-1)
	m0Inv := int32(Inverse32(uint32(mm[0])))
	maxDivsteps := maximumDivsteps(bits)

	for divsteps := 0; divsteps < maxDivsteps; divsteps += 30 {
		zeta = divsteps30(zeta, uint32(f[0]), uint32(g[0]), &t)
		updateDE30(len30, d, e, &t, m0Inv, mm)
		updateFG30(len30, f, g, &t)
	}

	signF := f[len30-1] >> 31
	cnegate30(len30, signF, f)

	// d is in (-2m, m) and carries the sign of f.
	cnormalize30(len30, signF, d, mm)

	clear(z[:n])
	decode30(bits, d, z)

	return uint32(equalToOne30(len30, f)&equalToZero30(len30, g)) & 1
}

// ModOddInverseVar sets z to the inverse of x modulo m and reports whether
// the inverse exists. Preconditions are as for ModOddInverse. Variable time.
func ModOddInverseVar(m, x, z []uint32) bool {
	n := len(m)
	bits := nat.GetBitLength(n, m)
	len30 := (bits + 29) / 30

	var t [4]int32
	d := make([]int32, len30)
	e := make([]int32, len30)
	f := make([]int32, len30)
	g := make([]int32, len30)
	mm := make([]int32, len30)

	e[0] = 1
	encode30(bits, x, g)
	encode30(bits, m, mm)
	copy(f, mm)

	eta := int32(-1)
	lenFG := len30
	m0Inv := int32(Inverse32(uint32(mm[0])))
	maxDivsteps := maximumDivsteps(bits)

	for divsteps := 0; !isZero30(lenFG, g); divsteps += 30 {
		if divsteps >= maxDivsteps {
			return false
		}
		eta = divsteps30Var(eta, uint32(f[0]), uint32(g[0]), &t)
		updateDE30(len30, d, e, &t, m0Inv, mm)
		updateFG30(lenFG, f, g, &t)
		lenFG = trimFG30(lenFG, f, g)
	}

	signF := f[lenFG-1] >> 31

	// d is in (-2m, m). Bring it into (-m, m), apply the sign of f, and
	// then into [0, m).
	signD := d[len30-1] >> 31
	if signD < 0 {
		signD = add30(len30, d, mm)
	}
	if signF < 0 {
		signD = negate30(len30, d)
		negate30(lenFG, f)
	}
	if !isOne30(lenFG, f) {
		return false
	}
	if signD < 0 {
		add30(len30, d, mm)
	}

	clear(z[:n])
	decode30(bits, d, z)
	return true
}

// ModOddIsCoprime reports whether x and the odd modulus m are coprime.
// Constant time in the value of x.
func ModOddIsCoprime(m, x []uint32) bool {
	bits := nat.GetBitLength(len(m), m)
	len30 := (bits + 29) / 30

	var t [4]int32
	f := make([]int32, len30)
	g := make([]int32, len30)
	encode30(bits, x, g)
	encode30(bits, m, f)

	zeta := int32(-1)
	maxDivsteps := maximumDivsteps(bits)
	for divsteps := 0; divsteps < maxDivsteps; divsteps += 30 {
		zeta = divsteps30(zeta, uint32(f[0]), uint32(g[0]), &t)
		updateFG30(len30, f, g, &t)
	}

	signF := f[len30-1] >> 31
	cnegate30(len30, signF, f)
	return equalToOne30(len30, f)&equalToZero30(len30, g) != 0
}

// ModOddIsCoprimeVar is the variable-time version of ModOddIsCoprime.
func ModOddIsCoprimeVar(m, x []uint32) bool {
	bits := nat.GetBitLength(len(m), m)
	len30 := (bits + 29) / 30

	var t [4]int32
	f := make([]int32, len30)
	g := make([]int32, len30)
	encode30(bits, x, g)
	encode30(bits, m, f)

	eta := int32(-1)
	lenFG := len30
	maxDivsteps := maximumDivsteps(bits)
	for divsteps := 0; !isZero30(lenFG, g); divsteps += 30 {
		if divsteps >= maxDivsteps {
			return false
		}
		eta = divsteps30Var(eta, uint32(f[0]), uint32(g[0]), &t)
		updateFG30(lenFG, f, g, &t)
		lenFG = trimFG30(lenFG, f, g)
	}

	if f[lenFG-1]>>31 < 0 {
		negate30(lenFG, f)
	}
	return isOne30(lenFG, f)
}

func checkInputs(m, x, z []uint32) error {
	n := len(m)
	if n == 0 || m[0]&1 == 0 {
		return fmt.Errorf("mod: modulus must be odd: %w", ErrInvalidInput)
	}
	if len(x) != n || (z != nil && len(z) < n) {
		return fmt.Errorf("mod: operands must have %d words: %w", n, ErrInvalidInput)
	}
	if nat.LessThan(n, x, m) == 0 {
		return fmt.Errorf("mod: value is not reduced: %w", ErrInvalidInput)
	}
	return nil
}

// CheckedModOddInverse sets z to the inverse of x modulo m. It returns
// ErrInvalidInput if the preconditions of ModOddInverse do not hold and
// ErrNotInvertible if there is no inverse.
func CheckedModOddInverse(m, x, z []uint32) error {
	if err := checkInputs(m, x, z); err != nil {
		return err
	}
	if ModOddInverse(m, x, z) == 0 {
		return ErrNotInvertible
	}
	return nil
}

// CheckedModOddInverseVar is the variable-time version of
// CheckedModOddInverse.
func CheckedModOddInverseVar(m, x, z []uint32) error {
	if err := checkInputs(m, x, z); err != nil {
		return err
	}
	if !ModOddInverseVar(m, x, z) {
		return ErrNotInvertible
	}
	return nil
}

// Random returns a uniformly random value in [0, p) read from crypto/rand.
// p is public; leading zero words are allowed.
func Random(p []uint32) ([]uint32, error) {
	n := len(p)
	if n == 0 || nat.IsZero(n, p) {
		return nil, fmt.Errorf("mod: bound must be positive: %w", ErrInvalidInput)
	}
	hi := n - 1
	for p[hi] == 0 {
		hi--
	}
	top := p[hi]
	top |= top >> 1
	top |= top >> 2
	top |= top >> 4
	top |= top >> 8
	top |= top >> 16

	s := nat.Create(n)
	buf := make([]byte, 4*(hi+1))
	for {
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("mod: reading randomness: %v", err)
		}
		for i := range hi + 1 {
			s[i] = binary.BigEndian.Uint32(buf[4*(hi-i):])
		}
		s[hi] &= top
		if !nat.Gte(n, s, p) {
			return s, nil
		}
	}
}
