// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/bstree/fault"
)

// the fix-up needed at a node, from its balance factor and that of
// its heavier child
type rotation int

const (
	balanced   rotation = iota // nothing to do
	leftLeft                   // single right rotation
	leftRight                  // left rotation of left child, then right rotation
	rightRight                 // single left rotation
	rightLeft                  // right rotation of right child, then left rotation
)

// level of a sub-tree, absent nodes are level zero
func (tree *Tree[K, V]) level(h handle) int {
	if null == h {
		return 0
	}
	return tree.nodes[h].level
}

// recompute a node's level from its children
func (tree *Tree[K, V]) updateLevel(h handle) {
	p := &tree.nodes[h]
	p.level = 1 + max(tree.level(p.left), tree.level(p.right))
}

// left level minus right level, positive when left heavy
func (tree *Tree[K, V]) balanceFactor(h handle) int {
	if null == h {
		return 0
	}
	p := &tree.nodes[h]
	return tree.level(p.left) - tree.level(p.right)
}

// select the fix-up for a node whose level is current
func (tree *Tree[K, V]) classify(h handle) rotation {
	switch bf := tree.balanceFactor(h); bf {
	case -1, 0, +1:
		return balanced
	case +2:
		if tree.balanceFactor(tree.nodes[h].left) >= 0 {
			return leftLeft
		}
		return leftRight
	case -2:
		if tree.balanceFactor(tree.nodes[h].right) <= 0 {
			return rightRight
		}
		return rightLeft
	default:
		fault.Panicf("avl: balance factor: %d at key: %v", bf, tree.nodes[h].key)
	}
	return balanced
}

// make child take the place of old below parent (or as root)
func (tree *Tree[K, V]) replaceChild(parent handle, old handle, child handle) {
	switch {
	case null == parent:
		tree.root = child
	case old == tree.nodes[parent].left:
		tree.nodes[parent].left = child
	default:
		tree.nodes[parent].right = child
	}
	if null != child {
		tree.nodes[child].up = parent
	}
}

// rotate left: the right child becomes the sub-tree root, returns
// the new sub-tree root
func (tree *Tree[K, V]) rotateLeft(x handle) handle {
	n := tree.nodes
	y := n[x].right
	if null == y {
		fault.Panicf("avl: rotate left without right child at key: %v", n[x].key)
	}

	b := n[y].left
	n[x].right = b
	if null != b {
		n[b].up = x
	}
	tree.replaceChild(n[x].up, x, y)
	n[y].left = x
	n[x].up = y

	tree.updateLevel(x)
	tree.updateLevel(y)
	return y
}

// rotate right: the left child becomes the sub-tree root, returns
// the new sub-tree root
func (tree *Tree[K, V]) rotateRight(x handle) handle {
	n := tree.nodes
	y := n[x].left
	if null == y {
		fault.Panicf("avl: rotate right without left child at key: %v", n[x].key)
	}

	b := n[y].right
	n[x].left = b
	if null != b {
		n[b].up = x
	}
	tree.replaceChild(n[x].up, x, y)
	n[y].right = x
	n[x].up = y

	tree.updateLevel(x)
	tree.updateLevel(y)
	return y
}

// apply the fix-up for one node, returns the root of the sub-tree
// that now occupies its position
func (tree *Tree[K, V]) fix(h handle, r rotation) handle {
	switch r {
	case balanced:
		return h
	case leftLeft:
		return tree.rotateRight(h)
	case leftRight:
		tree.rotateLeft(tree.nodes[h].left)
		return tree.rotateRight(h)
	case rightRight:
		return tree.rotateLeft(h)
	case rightLeft:
		tree.rotateRight(tree.nodes[h].right)
		return tree.rotateLeft(h)
	default:
		fault.Panicf("avl: invalid rotation: %d", r)
	}
	return h
}

// walk from a changed node up to the root restoring levels and
// balance on the way
func (tree *Tree[K, V]) rebalance(h handle) {
	for null != h {
		tree.updateLevel(h)
		h = tree.fix(h, tree.classify(h))
		h = tree.nodes[h].up
	}
}
