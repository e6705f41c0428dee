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

import "fmt"

// hashContext binds a parameter set to the engine of one public seed. All
// tree operations hang off it.
type hashContext struct {
	p *ParamSet
	e engine
}

func (p *ParamSet) newHashContext(pkSeed []byte) *hashContext {
	return &hashContext{p: p, e: p.newEngine(p, pkSeed)}
}

// chain applies f s times to x, starting at chain position i.
func (c *hashContext) chain(x []byte, i, s uint32, adrs *address) ([]byte, error) {
	if i+s > c.p.w-1 {
		return nil, fmt.Errorf("sphincsplus: chain range [%d, %d) exceeds %d: %w", i, i+s, c.p.w-1, ErrInvalidInput)
	}
	tmp := x
	for j := i; j < i+s; j++ {
		adrs.setHashAddress(j)
		tmp = c.e.f(adrs, tmp)
	}
	return tmp, nil
}

// wotsChecksum returns the base-w digits of msg followed by the digits of its
// checksum.
func (p *ParamSet) wotsChecksum(msg []byte) []uint32 {
	msgw := baseW(msg, p.lgw, p.len1)
	csum := uint32(0)
	for i := range p.len1 {
		csum += p.w - 1 - msgw[i]
	}
	// Align the checksum to the top of its last byte.
	csum <<= (8 - ((p.len2 * p.lgw) & 7)) & 7
	buf := toByte(csum, (p.len2*p.lgw+7)/8)
	return append(msgw, baseW(buf, p.lgw, p.len2)...)
}

// wotsPKGen computes the compressed WOTS+ public key of the key pair
// addressed by adrs.
func (c *hashContext) wotsPKGen(skSeed []byte, adrs *address) ([]byte, error) {
	skAdrs := adrs.withKeyPair(addressWOTSPrf)
	tmp := make([]byte, 0, c.p.len*c.p.n)
	for i := range c.p.len {
		skAdrs.setChainAddress(i)
		sk := c.e.prf(&skAdrs, skSeed)
		adrs.setChainAddress(i)
		pk, err := c.chain(sk, 0, c.p.w-1, adrs)
		if err != nil {
			return nil, err
		}
		tmp = append(tmp, pk...)
	}
	pkAdrs := adrs.withKeyPair(addressWOTSPk)
	return c.e.tl(&pkAdrs, tmp), nil
}

// wotsSign signs the n-byte message msg.
func (c *hashContext) wotsSign(msg, skSeed []byte, adrs *address) ([]byte, error) {
	msgw := c.p.wotsChecksum(msg)
	skAdrs := adrs.withKeyPair(addressWOTSPrf)
	sig := make([]byte, 0, c.p.len*c.p.n)
	for i := range c.p.len {
		skAdrs.setChainAddress(i)
		sk := c.e.prf(&skAdrs, skSeed)
		adrs.setChainAddress(i)
		s, err := c.chain(sk, 0, msgw[i], adrs)
		if err != nil {
			return nil, err
		}
		sig = append(sig, s...)
	}
	return sig, nil
}

// wotsPKFromSig recovers the compressed public key from a signature of msg.
// sig holds len n-byte chain values.
func (c *hashContext) wotsPKFromSig(sig, msg []byte, adrs *address) ([]byte, error) {
	if len(sig) != int(c.p.len*c.p.n) {
		return nil, fmt.Errorf("sphincsplus: WOTS+ signature has %d bytes, want %d: %w", len(sig), c.p.len*c.p.n, ErrDecode)
	}
	msgw := c.p.wotsChecksum(msg)
	tmp := make([]byte, 0, c.p.len*c.p.n)
	for i := range c.p.len {
		adrs.setChainAddress(i)
		pk, err := c.chain(sig[i*c.p.n:(i+1)*c.p.n], msgw[i], c.p.w-1-msgw[i], adrs)
		if err != nil {
			return nil, err
		}
		tmp = append(tmp, pk...)
	}
	pkAdrs := adrs.withKeyPair(addressWOTSPk)
	return c.e.tl(&pkAdrs, tmp), nil
}
