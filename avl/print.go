// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// Print - display an ASCII graphic representation of the tree, the
// right sub-tree above and the left sub-tree below each node
//
// each node shows its key, parent key, level and balance factor
// returns the depth of the tree
func (tree *Tree[K, V]) Print(w io.Writer, printData bool) int {
	return tree.printTree(w, tree.root, "", rootBranch, printData)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree[K, V]) printTree(w io.Writer, h handle, prefix string, br branch, printData bool) int {
	if null == h {
		return 0
	}
	p := &tree.nodes[h]
	rd := 0
	ld := 0
	if null != p.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = tree.printTree(w, p.right, prefix+t, rightBranch, printData)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := "nil"
	if null != p.up {
		up = fmt.Sprint(tree.nodes[p.up].key)
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%s %d/%+d\n", p.key, p.value, up, p.level, tree.balanceFactor(h))
	} else {
		fmt.Fprintf(w, "%v ^%s\n", p.key, up)
	}
	if null != p.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = tree.printTree(w, p.left, prefix+t, leftBranch, printData)
	}
	return 1 + max(rd, ld)
}
