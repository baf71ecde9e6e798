// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"github.com/bitmark-inc/bstree/fault"
)

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

// the other child of a node's parent
func (tree *Tree[K, V]) sibling(h handle) handle {
	up := tree.nodes[h].up
	if h == tree.nodes[up].left {
		return tree.nodes[up].right
	}
	return tree.nodes[up].left
}

// right child moves up to take the place of x
func (tree *Tree[K, V]) rotateLeft(x handle) {
	n := tree.nodes
	y := n[x].right
	if null == y {
		fault.Panicf("redblack: rotate left without right child at key: %v", n[x].key)
	}

	n[x].right = n[y].left
	if null != n[y].left {
		n[n[y].left].up = x
	}
	tree.replaceChild(n[x].up, x, y)
	n[y].left = x
	n[x].up = y
}

// left child moves up to take the place of x
func (tree *Tree[K, V]) rotateRight(x handle) {
	n := tree.nodes
	y := n[x].left
	if null == y {
		fault.Panicf("redblack: rotate right without left child at key: %v", n[x].key)
	}

	n[x].left = n[y].right
	if null != n[y].right {
		n[n[y].right].up = x
	}
	tree.replaceChild(n[x].up, x, y)
	n[y].right = x
	n[x].up = y
}
