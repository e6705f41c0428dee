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

// Package bitperm implements delta-swap bit permutation steps on 32-bit and
// 64-bit words.
//
// A step exchanges every bit selected by mask m with the bit s positions above
// it. The mask and the shift are public; the word being permuted may be secret,
// and none of the functions branch on it.
package bitperm

// Step32 swaps the bits of x selected by m with the bits s positions higher.
//
// m must not have any bit set in its top s positions, and (m<<s)&m must be 0.
func Step32(x, m uint32, s uint) uint32 {
	t := (x ^ (x >> s)) & m
	return t ^ (t << s) ^ x
}

// Step64 is the 64-bit version of Step32.
func Step64(x, m uint64, s uint) uint64 {
	t := (x ^ (x >> s)) & m
	return t ^ (t << s) ^ x
}

// StepSimple32 exchanges the bits selected by m with the bits selected by m<<s.
//
// It is only correct when m | m<<s covers every bit of x, i.e. when every bit
// takes part in the swap. That holds for the interleaving masks used in
// shuffles where m and m<<s together are all ones.
func StepSimple32(x, m uint32, s uint) uint32 {
	return ((x & m) << s) | ((x >> s) & m)
}

// StepSimple64 is the 64-bit version of StepSimple32.
func StepSimple64(x, m uint64, s uint) uint64 {
	return ((x & m) << s) | ((x >> s) & m)
}

// Step2x32 swaps the bits of x selected by m with the bits of y selected by
// m<<s, updating both words.
func Step2x32(x, y *uint32, m uint32, s uint) {
	t := ((*y >> s) ^ *x) & m
	*x ^= t
	*y ^= t << s
}

// Step2x64 is the 64-bit version of Step2x32.
func Step2x64(x, y *uint64, m uint64, s uint) {
	t := ((*y >> s) ^ *x) & m
	*x ^= t
	*y ^= t << s
}
