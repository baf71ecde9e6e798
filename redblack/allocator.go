// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

// allocate a new red leaf, reuses reclaimed slots if any are available
func (tree *Tree[K, V]) newNode(key K, value V, up handle) handle {
	if 0 == len(tree.nodes) {
		tree.nodes = make([]node[K, V], 1, 16) // zero value tree
	}
	n := node[K, V]{
		up:    up,
		color: red,
		key:   key,
		value: value,
	}
	if null == tree.free {
		if 0 != tree.freeNodes {
			panic("redblack: free list corrupt")
		}
		tree.nodes = append(tree.nodes, n)
		return handle(len(tree.nodes) - 1)
	}
	h := tree.free
	tree.free = tree.nodes[h].up
	tree.freeNodes -= 1
	tree.nodes[h] = n
	return h
}

// reclaim a slot and keep it on the free list
func (tree *Tree[K, V]) freeNode(h handle) {
	tree.nodes[h] = node[K, V]{
		up: tree.free, // use as free list pointer
	}
	tree.free = h
	tree.freeNodes += 1
}
