// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"github.com/bitmark-inc/bstree/fault"
)

// the situation of a node carrying an extra black during delete fix-up
type deleteCase int

const (
	deleteDone          deleteCase = iota // node is the root or red
	deleteRedSibling    deleteCase = iota // turn into one of the black sibling cases
	deleteBlackNephews  deleteCase = iota // recolour and move up a level
	deleteNearRedNephew deleteCase = iota // turn into far red nephew
	deleteFarRedNephew  deleteCase = iota // rotate and finish
)

// Remove - delete the node with the given key
//
// returns the key and value that were stored and true, or false if
// the key is not in the tree
func (tree *Tree[K, V]) Remove(key K) (K, V, bool) {
	z := tree.search(key)
	if null == z {
		return tree.entry(null)
	}
	n := tree.nodes

	x := null      // the node moving into the excised position
	parent := null // parent of x after splicing
	excised := n[z].color

	switch {
	case null == n[z].left:
		x = n[z].right
		parent = n[z].up
		tree.replaceChild(parent, z, x)

	case null == n[z].right:
		x = n[z].left
		parent = n[z].up
		tree.replaceChild(parent, z, x)

	default:
		// splice the successor into the place of z
		y := tree.first(n[z].right)
		excised = n[y].color
		x = n[y].right
		if z == n[y].up {
			parent = y
		} else {
			parent = n[y].up
			tree.replaceChild(parent, y, x)
			n[y].right = n[z].right
			n[n[y].right].up = y
		}
		tree.replaceChild(n[z].up, z, y)
		n[y].left = n[z].left
		n[n[y].left].up = y
		n[y].color = n[z].color
	}

	k, v, _ := tree.entry(z)
	tree.freeNode(z)
	tree.count -= 1
	tree.generation += 1

	if black == excised {
		tree.fixDelete(x, parent)
	}
	return k, v, true
}

// the sibling of x below parent and the sibling's children nearer to
// and further from x
//
// x may be null so its side is found from parent's links
func (tree *Tree[K, V]) nephews(x handle, parent handle) (sibling handle, near handle, far handle) {
	p := &tree.nodes[parent]
	if x == p.left {
		sibling = p.right
		if null != sibling {
			near, far = tree.nodes[sibling].left, tree.nodes[sibling].right
		}
	} else {
		sibling = p.left
		if null != sibling {
			near, far = tree.nodes[sibling].right, tree.nodes[sibling].left
		}
	}
	return
}

// decide which repair applies to x
func (tree *Tree[K, V]) classifyDelete(x handle, parent handle) deleteCase {
	if x == tree.root || tree.isRed(x) {
		return deleteDone
	}
	sibling, near, far := tree.nephews(x, parent)
	switch {
	case null == sibling:
		fault.Panicf("redblack: no sibling for deficient child of key: %v", tree.nodes[parent].key)
	case tree.isRed(sibling):
		return deleteRedSibling
	case tree.isBlack(near) && tree.isBlack(far):
		return deleteBlackNephews
	case tree.isBlack(far):
		return deleteNearRedNephew
	}
	return deleteFarRedNephew
}

// rotate parent so that it moves down on the side of x
func (tree *Tree[K, V]) rotateToward(x handle, parent handle) {
	if x == tree.nodes[parent].left {
		tree.rotateLeft(parent)
	} else {
		tree.rotateRight(parent)
	}
}

// remove the extra black carried by x, parent is passed separately
// since x may be null
func (tree *Tree[K, V]) fixDelete(x handle, parent handle) {
	for {
		switch tree.classifyDelete(x, parent) {

		case deleteDone:
			tree.setColor(x, black)
			return

		case deleteRedSibling:
			sibling, _, _ := tree.nephews(x, parent)
			tree.setColor(sibling, black)
			tree.setColor(parent, red)
			tree.rotateToward(x, parent)

		case deleteBlackNephews:
			sibling, _, _ := tree.nephews(x, parent)
			tree.setColor(sibling, red)
			x = parent
			parent = tree.nodes[x].up

		case deleteNearRedNephew:
			sibling, near, _ := tree.nephews(x, parent)
			tree.setColor(near, black)
			tree.setColor(sibling, red)
			if x == tree.nodes[parent].left {
				tree.rotateRight(sibling)
			} else {
				tree.rotateLeft(sibling)
			}

		case deleteFarRedNephew:
			sibling, _, far := tree.nephews(x, parent)
			tree.setColor(sibling, tree.nodes[parent].color)
			tree.setColor(parent, black)
			tree.setColor(far, black)
			tree.rotateToward(x, parent)
			x = tree.root
			parent = null

		default:
			panic("unreachable statement")
		}
	}
}
