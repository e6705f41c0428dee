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

// nodeEntry is a tree hash stack entry.
type nodeEntry struct {
	value  []byte
	height uint32
}

// treeHash computes the root of the subtree of height z whose leftmost leaf
// has index s. leaf returns the leaf at a given index. Inner nodes are hashed
// under nodeAdrs with their height and index filled in; s must be a multiple
// of 2^z.
//
// Leaves are visited left to right. Whenever the new node has the height of
// the top of the stack the two are merged, so stack heights strictly
// decrease from bottom to top.
func (c *hashContext) treeHash(s, z uint32, nodeAdrs *address, leaf func(idx uint32) ([]byte, error)) ([]byte, error) {
	if z >= 32 || s&(uint32(1)<<z-1) != 0 {
		return nil, fmt.Errorf("sphincsplus: tree hash start %d is not aligned to height %d: %w", s, z, ErrInvalidInput)
	}
	stack := make([]nodeEntry, 0, z+1)
	for i := range uint32(1) << z {
		node, err := leaf(s + i)
		if err != nil {
			return nil, err
		}
		height := uint32(0)
		for len(stack) > 0 && stack[len(stack)-1].height == height {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			height++
			nodeAdrs.setTreeHeight(height)
			nodeAdrs.setTreeIndex((s + i) >> height)
			node = c.e.h(nodeAdrs, top.value, node)
		}
		stack = append(stack, nodeEntry{value: node, height: height})
	}
	return stack[0].value, nil
}

// rootFromAuthPath climbs from node, the leaf at index idx, to the root of a
// tree of height len(auth)/n.
func (c *hashContext) rootFromAuthPath(node []byte, idx uint32, auth []byte, adrs *address) []byte {
	n := c.p.n
	adrs.setTreeIndex(idx)
	for j := range uint32(len(auth)) / n {
		adrs.setTreeHeight(j + 1)
		adrs.setTreeIndex(adrs.treeIndex() >> 1)
		authJ := auth[j*n : (j+1)*n]
		if (idx>>j)&1 == 0 {
			node = c.e.h(adrs, node, authJ)
		} else {
			node = c.e.h(adrs, authJ, node)
		}
	}
	return node
}
