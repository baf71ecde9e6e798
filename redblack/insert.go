// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"cmp"

	"github.com/bitmark-inc/bstree/fault"
)

// the situation of a freshly reddened node during insert fix-up
type insertCase int

const (
	insertRoot        insertCase = iota // node is the root
	insertBlackParent insertCase = iota // nothing to repair
	insertRedUncle    insertCase = iota // recolour and move up two levels
	insertOuter       insertCase = iota // node and parent lean the same way
	insertInner       insertCase = iota // node and parent lean opposite ways
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

	tree.fixInsert(n)
	return nil
}

// decide which repair applies to a red node
func (tree *Tree[K, V]) classifyInsert(h handle) insertCase {
	parent := tree.nodes[h].up
	switch {
	case null == parent:
		return insertRoot
	case tree.isBlack(parent):
		return insertBlackParent
	}

	grand := tree.nodes[parent].up
	if null == grand {
		fault.Panicf("redblack: red root at key: %v", tree.nodes[parent].key)
	}
	if tree.isRed(tree.sibling(parent)) {
		return insertRedUncle
	}
	if (h == tree.nodes[parent].left) == (parent == tree.nodes[grand].left) {
		return insertOuter
	}
	return insertInner
}

// restore the colour properties starting from a new red node
func (tree *Tree[K, V]) fixInsert(h handle) {
loop:
	for {
		switch c := tree.classifyInsert(h); c {

		case insertRoot, insertBlackParent:
			break loop

		case insertRedUncle:
			parent := tree.nodes[h].up
			grand := tree.nodes[parent].up
			tree.setColor(parent, black)
			tree.setColor(tree.sibling(parent), black)
			tree.setColor(grand, red)
			h = grand

		case insertInner, insertOuter:
			parent := tree.nodes[h].up
			if insertInner == c {
				if h == tree.nodes[parent].left {
					tree.rotateRight(parent)
				} else {
					tree.rotateLeft(parent)
				}
				// old parent is now the outer child
				h, parent = parent, h
			}
			grand := tree.nodes[parent].up
			if parent == tree.nodes[grand].left {
				tree.rotateRight(grand)
			} else {
				tree.rotateLeft(grand)
			}
			tree.setColor(parent, black)
			tree.setColor(grand, red)
			break loop

		default:
			panic("unreachable statement")
		}
	}
	tree.setColor(tree.root, black)
}
