// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Find - return the value stored for a key
func (tree *Tree[K, V]) Find(key K) (V, bool) {
	_, value, ok := tree.entry(tree.search(key))
	return value, ok
}

// Contains - true if the key is in the tree
func (tree *Tree[K, V]) Contains(key K) bool {
	return null != tree.search(key)
}

func (tree *Tree[K, V]) search(key K) handle {
	p := tree.root
	for null != p {
		switch cmp.Compare(key, tree.nodes[p].key) {
		case -1: // key < p.key
			p = tree.nodes[p].left
		case +1: // key > p.key
			p = tree.nodes[p].right
		default:
			return p
		}
	}
	return null
}
