// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// handle - index of a node in the tree's arena
type handle int32

// the reserved slot meaning "no node"
const null handle = 0

// a node in the tree
type node[K cmp.Ordered, V any] struct {
	left  handle // left sub-tree
	right handle // right sub-tree
	up    handle // parent node, or next free slot when reclaimed
	level int    // height of the sub-tree rooted at this node
	key   K      // key part for ordering
	value V      // value part for data storage
}

// Tree - type to hold the root node of a tree
type Tree[K cmp.Ordered, V any] struct {
	nodes      []node[K, V] // arena, slot zero is never used
	free       handle       // linked list of reclaimed slots
	freeNodes  int          // number of slots on the free list
	root       handle
	count      int
	generation uint64 // changes on every successful insert or delete
}

// New - create an initially empty tree
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{
		nodes: make([]node[K, V], 1),
		free:  null,
		root:  null,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return null == tree.root
}

// Len - number of nodes currently in the tree
func (tree *Tree[K, V]) Len() int {
	return tree.count
}

// Height - number of nodes on the longest path from the root to a
// leaf, zero for an empty tree
func (tree *Tree[K, V]) Height() int {
	return tree.height(tree.root)
}

func (tree *Tree[K, V]) height(h handle) int {
	if null == h {
		return 0
	}
	return 1 + max(tree.height(tree.nodes[h].left), tree.height(tree.nodes[h].right))
}

// First - return the entry with the lowest key
func (tree *Tree[K, V]) First() (K, V, bool) {
	return tree.entry(tree.first(tree.root))
}

// Last - return the entry with the highest key
func (tree *Tree[K, V]) Last() (K, V, bool) {
	return tree.entry(tree.last(tree.root))
}

// copy out the key/value of a node
func (tree *Tree[K, V]) entry(h handle) (K, V, bool) {
	if null == h {
		var key K
		var value V
		return key, value, false
	}
	p := &tree.nodes[h]
	return p.key, p.value, true
}
