// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"iter"

	"github.com/bitmark-inc/bstree/fault"
)

// InOrder - sequence of all entries in ascending key order
//
// the tree must not be modified while a walk is in progress
func (tree *Tree[K, V]) InOrder() iter.Seq2[K, V] {
	return tree.walk(func() handle { return tree.first(tree.root) }, tree.next)
}

// PreOrder - sequence of all entries, each node before its sub-trees
func (tree *Tree[K, V]) PreOrder() iter.Seq2[K, V] {
	return tree.walk(func() handle { return tree.root }, tree.preNext)
}

// PostOrder - sequence of all entries, each node after its sub-trees
func (tree *Tree[K, V]) PostOrder() iter.Seq2[K, V] {
	return tree.walk(func() handle { return tree.deepest(tree.root) }, tree.postNext)
}

// each call of the sequence restarts from the current start node
func (tree *Tree[K, V]) walk(start func() handle, step func(handle) handle) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		generation := tree.generation
		for p := start(); null != p; p = step(p) {
			if !yield(tree.nodes[p].key, tree.nodes[p].value) {
				return
			}
			if generation != tree.generation {
				panic(fault.ErrTreeModified)
			}
		}
	}
}

// internal: lowest node in a sub-tree
func (tree *Tree[K, V]) first(h handle) handle {
	if null == h {
		return null
	}
	for null != tree.nodes[h].left {
		h = tree.nodes[h].left
	}
	return h
}

// internal: highest node in a sub-tree
func (tree *Tree[K, V]) last(h handle) handle {
	if null == h {
		return null
	}
	for null != tree.nodes[h].right {
		h = tree.nodes[h].right
	}
	return h
}

// internal: first node of a post-order walk of a sub-tree
func (tree *Tree[K, V]) deepest(h handle) handle {
	if null == h {
		return null
	}
	for {
		p := &tree.nodes[h]
		switch {
		case null != p.left:
			h = p.left
		case null != p.right:
			h = p.right
		default:
			return h
		}
	}
}

// given a node, return the node with the next highest key or null
func (tree *Tree[K, V]) next(h handle) handle {
	if null != tree.nodes[h].right {
		return tree.first(tree.nodes[h].right)
	}
	for {
		up := tree.nodes[h].up
		if null == up || h == tree.nodes[up].left {
			return up
		}
		h = up
	}
}

// pre-order successor: left child, else right child, else the right
// child of the nearest ancestor reached from its left side
func (tree *Tree[K, V]) preNext(h handle) handle {
	p := &tree.nodes[h]
	if null != p.left {
		return p.left
	}
	if null != p.right {
		return p.right
	}
	for {
		up := tree.nodes[h].up
		if null == up {
			return null
		}
		if h == tree.nodes[up].left && null != tree.nodes[up].right {
			return tree.nodes[up].right
		}
		h = up
	}
}

// post-order successor: the parent, unless coming from its left and
// it has a right sub-tree still to visit
func (tree *Tree[K, V]) postNext(h handle) handle {
	up := tree.nodes[h].up
	if null == up {
		return null
	}
	if h == tree.nodes[up].left && null != tree.nodes[up].right {
		return tree.deepest(tree.nodes[up].right)
	}
	return up
}
