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
	"math/bits"
)

// ParamSet is one entry of the closed table of SPHINCS+ parameter sets.
type ParamSet struct {
	name string
	id   uint32

	n uint32
	// Note that h = d * hp.
	h   uint32
	d   uint32
	hp  uint32
	a   uint32
	k   uint32
	lgw uint32
	// Message digest length in bytes.
	m uint32

	// Derived WOTS+ parameters.
	w    uint32
	len1 uint32
	len2 uint32
	len  uint32

	robust    bool
	newEngine func(p *ParamSet, pkSeed []byte) engine
}

type paramsOpts struct {
	n   uint32
	h   uint32
	d   uint32
	a   uint32
	k   uint32
	lgw uint32
}

type hashFamily struct {
	name      string
	id        uint32
	newEngine func(p *ParamSet, pkSeed []byte) engine
}

func newParamSet(name string, id uint32, par paramsOpts, robust bool, newEngine func(*ParamSet, []byte) engine) *ParamSet {
	w := uint32(1) << par.lgw
	len1 := (8*par.n + par.lgw - 1) / par.lgw
	log2 := func(x uint32) uint32 { return uint32(bits.Len(uint(x)) - 1) }
	len2 := log2(len1*(w-1))/par.lgw + 1
	hp := par.h / par.d
	m := (par.k*par.a+7)/8 + (par.h-hp+7)/8 + (hp+7)/8
	return &ParamSet{
		name:      name,
		id:        id,
		n:         par.n,
		h:         par.h,
		d:         par.d,
		hp:        hp,
		a:         par.a,
		k:         par.k,
		lgw:       par.lgw,
		m:         m,
		w:         w,
		len1:      len1,
		len2:      len2,
		len:       len1 + len2,
		robust:    robust,
		newEngine: newEngine,
	}
}

// Security levels in identifier order: the low byte of a parameter set
// identifier is the index into this table plus one.
var levels = []struct {
	name string
	opts paramsOpts
}{
	{"128f", paramsOpts{n: 16, h: 66, d: 22, a: 6, k: 33, lgw: 4}},
	{"128s", paramsOpts{n: 16, h: 63, d: 7, a: 12, k: 14, lgw: 4}},
	{"192f", paramsOpts{n: 24, h: 66, d: 22, a: 8, k: 33, lgw: 4}},
	{"192s", paramsOpts{n: 24, h: 63, d: 7, a: 14, k: 17, lgw: 4}},
	{"256f", paramsOpts{n: 32, h: 68, d: 17, a: 9, k: 35, lgw: 4}},
	{"256s", paramsOpts{n: 32, h: 64, d: 8, a: 14, k: 22, lgw: 4}},
}

var families = []hashFamily{
	{"sha2", 0x01, newSHA2Engine},
	{"shake", 0x02, newSHAKEEngine},
	{"haraka", 0x03, newHarakaEngine},
}

var (
	paramSets     []*ParamSet
	paramSetsByID = make(map[uint32]*ParamSet)
	paramSetsName = make(map[string]*ParamSet)
)

func init() {
	for _, f := range families {
		for mode, modeName := range []string{"robust", "simple"} {
			for lvl, l := range levels {
				name := fmt.Sprintf("%s-%s-%s", f.name, l.name, modeName)
				id := f.id<<16 | uint32(mode+1)<<8 | uint32(lvl+1)
				p := newParamSet(name, id, l.opts, modeName == "robust", f.newEngine)
				paramSets = append(paramSets, p)
				paramSetsByID[id] = p
				paramSetsName[name] = p
			}
		}
	}
}

// ParamSets returns every supported parameter set in identifier order.
func ParamSets() []*ParamSet {
	return append([]*ParamSet(nil), paramSets...)
}

// ParamSetByName returns the parameter set with the given name, such as
// "sha2-128s-simple".
func ParamSetByName(name string) (*ParamSet, error) {
	p, ok := paramSetsName[name]
	if !ok {
		return nil, fmt.Errorf("sphincsplus: unknown parameter set %q", name)
	}
	return p, nil
}

// ParamSetByID returns the parameter set with the given 4-byte identifier.
func ParamSetByID(id uint32) (*ParamSet, error) {
	p, ok := paramSetsByID[id]
	if !ok {
		return nil, fmt.Errorf("sphincsplus: unknown parameter set identifier 0x%08x", id)
	}
	return p, nil
}

// Name returns the name of the parameter set.
func (p *ParamSet) Name() string { return p.name }

// ID returns the 4-byte identifier of the parameter set.
func (p *ParamSet) ID() uint32 { return p.id }

// N returns the security parameter in bytes.
func (p *ParamSet) N() int { return int(p.n) }

// Robust reports whether the tweakable hashes mask their inputs.
func (p *ParamSet) Robust() bool { return p.robust }

// PublicKeyLength returns the length of an encoded public key.
func (p *ParamSet) PublicKeyLength() int { return int(2 * p.n) }

// SecretKeyLength returns the length of an encoded secret key.
func (p *ParamSet) SecretKeyLength() int { return int(4 * p.n) }

// SignatureLength returns the length of a signature.
func (p *ParamSet) SignatureLength() int {
	return int((1 + p.k*(1+p.a) + p.h + p.d*p.len) * p.n)
}
