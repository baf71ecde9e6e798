// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific item from the tree, returning its key
// and value
//
// ok is false, and the tree unchanged, if the key was not present
func (tree *Tree[K, V]) Remove(key K) (K, V, bool) {
	z := tree.search(key)
	if null == z {
		return tree.entry(null)
	}

	n := tree.nodes

	// lowest node whose sub-tree changed shape
	var changed handle

	switch {
	case null == n[z].left:
		changed = n[z].up
		tree.replaceChild(n[z].up, z, n[z].right)
	case null == n[z].right:
		changed = n[z].up
		tree.replaceChild(n[z].up, z, n[z].left)
	default:
		// in-order successor has no left child
		s := tree.first(n[z].right)
		if z == n[s].up {
			changed = s
		} else {
			changed = n[s].up
			tree.replaceChild(n[s].up, s, n[s].right)
			n[s].right = n[z].right
			n[n[s].right].up = s
		}
		tree.replaceChild(n[z].up, z, s)
		n[s].left = n[z].left
		n[n[s].left].up = s
	}

	k, v := n[z].key, n[z].value
	tree.freeNode(z)
	tree.count -= 1
	tree.generation += 1

	tree.rebalance(changed)
	return k, v, true
}
