// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/bstree/fault"
)

// Insert - insert a new node into the tree
//
// returns fault.ErrDuplicateKey, without changing the tree, if the
// key is already present
func (tree *Tree[K, V]) Insert(key K, value V) error {
	parent := null
	side := 0
	for p := tree.root; null != p; {
		parent = p
		side = cmp.Compare(key, tree.nodes[p].key)
		switch side {
		case -1: // key < p.key
			p = tree.nodes[p].left
		case +1: // key > p.key
			p = tree.nodes[p].right
		default:
			return fault.ErrDuplicateKey
		}
	}

	n := tree.newNode(key, value, parent)
	switch {
	case null == parent:
		tree.root = n
	case side < 0:
		tree.nodes[parent].left = n
	default:
		tree.nodes[parent].right = n
	}
	tree.count += 1
	tree.generation += 1

	tree.rebalance(parent)
	return nil
}
