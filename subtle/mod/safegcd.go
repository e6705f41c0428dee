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

package mod

import "math/bits"

// Values are held in signed base-2^30 form: every limb but the last holds 30
// bits in [0, 2^30), and the last limb carries the sign.
const m30 = 0x3FFFFFFF

// maximumDivsteps bounds the number of divsteps needed to reach g = 0 for a
// modulus of the given bit length (Theorem 11.2 of the safegcd paper).
func maximumDivsteps(bitLen int) int {
	c := 57
	if bitLen < 46 {
		c = 80
	}
	return (49*bitLen + c + 16) / 17
}

func encode30(bitLen int, x []uint32, z []int32) {
	avail := 0
	var data uint64
	xOff, zOff := 0, 0
	for bitLen > 0 {
		if avail < min(30, bitLen) {
			data |= uint64(x[xOff]) << avail
			xOff++
			avail += 32
		}
		z[zOff] = int32(data) & m30
		zOff++
		data >>= 30
		avail -= 30
		bitLen -= 30
	}
}

func decode30(bitLen int, x []int32, z []uint32) {
	avail := 0
	var data uint64
	xOff, zOff := 0, 0
	for bitLen > 0 {
		for avail < min(32, bitLen) {
			data |= uint64(x[xOff]) << avail
			xOff++
			avail += 30
		}
		z[zOff] = uint32(data)
		zOff++
		data >>= 32
		avail -= 32
		bitLen -= 32
	}
}

// divsteps30 runs 30 half-delta divsteps on the low limbs of f and g and
// stores the scaled transition matrix in t. zeta is -(delta + 1/2). Constant
// time.
func divsteps30(zeta int32, f0, g0 uint32, t *[4]int32) int32 {
	u, v, q, r := uint32(1), uint32(0), uint32(0), uint32(1)
	f, g := f0, g0
	for range 30 {
		// c1 is set when zeta < 0, c2 when g is odd.
		c1 := uint32(zeta >> 31)
		c2 := -(g & 1)

		x := (f ^ c1) - c1
		y := (u ^ c1) - c1
		z := (v ^ c1) - c1

		g += x & c2
		q += y & c2
		r += z & c2

		c1 &= c2
		zeta = (zeta ^ int32(c1)) - 1

		f += g & c1
		u += q & c1
		v += r & c1

		g >>= 1
		u <<= 1
		v <<= 1
	}
	t[0], t[1], t[2], t[3] = int32(u), int32(v), int32(q), int32(r)
	return zeta
}

// divsteps30Var runs 30 divsteps, skipping runs of even g and cancelling up
// to 6 (eta < 0) or 4 (eta >= 0) low bits of g per iteration. eta is -delta.
func divsteps30Var(eta int32, f0, g0 uint32, t *[4]int32) int32 {
	u, v, q, r := uint32(1), uint32(0), uint32(0), uint32(1)
	f, g := f0, g0
	i := 30
	for {
		// The sentinel bit stops the count at i.
		zeros := bits.TrailingZeros32(g | (^uint32(0) << uint(i)))
		g >>= uint(zeros)
		u <<= uint(zeros)
		v <<= uint(zeros)
		eta -= int32(zeros)
		i -= zeros
		if i == 0 {
			break
		}

		var w uint32
		if eta < 0 {
			eta = -eta
			f, g = g, -f
			u, q = q, -u
			v, r = r, -v
			limit := min(int(eta)+1, i)
			m := (^uint32(0) >> (32 - uint(limit))) & 63
			w = (f * g * (f*f - 2)) & m
		} else {
			limit := min(int(eta)+1, i)
			m := (^uint32(0) >> (32 - uint(limit))) & 15
			w = f + (((f + 1) & 4) << 1)
			w = (-w * g) & m
		}
		g += f * w
		q += u * w
		r += v * w
	}
	t[0], t[1], t[2], t[3] = int32(u), int32(v), int32(q), int32(r)
	return eta
}

// updateDE30 sets [d, e] = t*[d, e]/2^30 mod m, keeping both in (-2m, m).
// A multiple of m is added so that the division by 2^30 is exact.
func updateDE30(len30 int, d, e []int32, t *[4]int32, m0Inv int32, m []int32) {
	u, v, q, r := t[0], t[1], t[2], t[3]

	sd := d[len30-1] >> 31
	se := e[len30-1] >> 31

	md := (u & sd) + (v & se)
	me := (q & sd) + (r & se)

	di, ei := d[0], e[0]
	cd := int64(u)*int64(di) + int64(v)*int64(ei)
	ce := int64(q)*int64(di) + int64(r)*int64(ei)

	md -= (m0Inv*int32(cd) + md) & m30
	me -= (m0Inv*int32(ce) + me) & m30

	cd += int64(m[0]) * int64(md)
	ce += int64(m[0]) * int64(me)

	cd >>= 30
	ce >>= 30

	for i := 1; i < len30; i++ {
		di, ei = d[i], e[i]
		cd += int64(u)*int64(di) + int64(v)*int64(ei) + int64(m[i])*int64(md)
		ce += int64(q)*int64(di) + int64(r)*int64(ei) + int64(m[i])*int64(me)
		d[i-1] = int32(cd) & m30
		e[i-1] = int32(ce) & m30
		cd >>= 30
		ce >>= 30
	}
	d[len30-1] = int32(cd)
	e[len30-1] = int32(ce)
}

// updateFG30 sets [f, g] = t*[f, g]/2^30. The division is exact.
func updateFG30(length int, f, g []int32, t *[4]int32) {
	u, v, q, r := int64(t[0]), int64(t[1]), int64(t[2]), int64(t[3])

	fi, gi := int64(f[0]), int64(g[0])
	cf := u*fi + v*gi
	cg := q*fi + r*gi
	cf >>= 30
	cg >>= 30

	for i := 1; i < length; i++ {
		fi, gi = int64(f[i]), int64(g[i])
		cf += u*fi + v*gi
		cg += q*fi + r*gi
		f[i-1] = int32(cf) & m30
		g[i-1] = int32(cg) & m30
		cf >>= 30
		cg >>= 30
	}
	f[length-1] = int32(cf)
	g[length-1] = int32(cg)
}

// trimFG30 drops the top limb of f and g when both only hold sign bits,
// folding the sign into the limb below.
func trimFG30(length int, f, g []int32) int {
	fn, gn := f[length-1], g[length-1]
	cond := int32(length-2) >> 31
	cond |= fn ^ (fn >> 31)
	cond |= gn ^ (gn >> 31)
	if cond == 0 {
		f[length-2] |= int32(uint32(fn) << 30)
		g[length-2] |= int32(uint32(gn) << 30)
		length--
	}
	return length
}

// cnegate30 negates d when cond is -1. Constant time.
func cnegate30(len30 int, cond int32, d []int32) {
	last := len30 - 1
	var c int32
	for i := range last {
		c += (d[i] ^ cond) - cond
		d[i] = c & m30
		c >>= 30
	}
	c += (d[last] ^ cond) - cond
	d[last] = c
}

// cnormalize30 takes d from (-2m, m) to [0, m), negating it on the way when
// condNegate is -1. Constant time.
func cnormalize30(len30 int, condNegate int32, d, m []int32) {
	last := len30 - 1

	condAdd := d[last] >> 31
	for i := range len30 {
		d[i] += m[i] & condAdd
		d[i] = (d[i] ^ condNegate) - condNegate
	}
	propagate30(len30, d)

	condAdd = d[last] >> 31
	for i := range len30 {
		d[i] += m[i] & condAdd
	}
	propagate30(len30, d)
}

func propagate30(len30 int, d []int32) {
	for i := range len30 - 1 {
		d[i+1] += d[i] >> 30
		d[i] &= m30
	}
}

// add30 sets d = d + m and returns the sign of the result.
func add30(len30 int, d, m []int32) int32 {
	last := len30 - 1
	var c int32
	for i := range last {
		c += d[i] + m[i]
		d[i] = c & m30
		c >>= 30
	}
	c += d[last] + m[last]
	d[last] = c
	return c >> 31
}

// negate30 sets d = -d and returns the sign of the result.
func negate30(len30 int, d []int32) int32 {
	last := len30 - 1
	var c int32
	for i := range last {
		c -= d[i]
		d[i] = c & m30
		c >>= 30
	}
	c -= d[last]
	d[last] = c
	return c >> 31
}

// equalToOne30 returns -1 if x == 1 and 0 otherwise. Constant time.
func equalToOne30(len30 int, x []int32) int32 {
	d := x[0] ^ 1
	for i := 1; i < len30; i++ {
		d |= x[i]
	}
	return ^((d | -d) >> 31)
}

// equalToZero30 returns -1 if x == 0 and 0 otherwise. Constant time.
func equalToZero30(len30 int, x []int32) int32 {
	var d int32
	for i := range len30 {
		d |= x[i]
	}
	return ^((d | -d) >> 31)
}

func isOne30(length int, x []int32) bool {
	if x[0] != 1 {
		return false
	}
	for i := 1; i < length; i++ {
		if x[i] != 0 {
			return false
		}
	}
	return true
}

func isZero30(length int, x []int32) bool {
	for i := range length {
		if x[i] != 0 {
			return false
		}
	}
	return true
}
