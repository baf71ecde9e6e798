// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"fmt"

	"github.com/bitmark-inc/bstree/fault"
)

// Check - verify the ordering, parent links, stored levels, balance
// and count of the whole tree
//
// returns nil or an error of class fault.InvariantError
func (tree *Tree[K, V]) Check() error {
	n, _, err := tree.check(tree.root, null, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: reachable: %d  count: %d", fault.ErrCount, n, tree.count)
	}
	if 0 != len(tree.nodes) && len(tree.nodes) != 1+n+tree.freeNodes {
		return fmt.Errorf("%w: slots: %d  nodes: %d  free: %d", fault.ErrCount, len(tree.nodes), n, tree.freeNodes)
	}
	return nil
}

// internal: consistency checker, returns node count and height of
// the sub-tree
//
// low and high are the exclusive key bounds inherited from ancestors
func (tree *Tree[K, V]) check(h handle, up handle, low *K, high *K) (int, int, error) {
	if null == h {
		return 0, 0, nil
	}
	p := &tree.nodes[h]
	if p.up != up {
		return 0, 0, fmt.Errorf("%w: key: %v", fault.ErrParentLink, p.key)
	}
	if nil != low && cmp.Compare(p.key, *low) <= 0 {
		return 0, 0, fmt.Errorf("%w: key: %v  not above: %v", fault.ErrOrder, p.key, *low)
	}
	if nil != high && cmp.Compare(p.key, *high) >= 0 {
		return 0, 0, fmt.Errorf("%w: key: %v  not below: %v", fault.ErrOrder, p.key, *high)
	}

	ln, lh, err := tree.check(p.left, h, low, &p.key)
	if nil != err {
		return 0, 0, err
	}
	rn, rh, err := tree.check(p.right, h, &p.key, high)
	if nil != err {
		return 0, 0, err
	}

	height := 1 + max(lh, rh)
	if p.level != height {
		return 0, 0, fmt.Errorf("%w: key: %v  level: %d  height: %d", fault.ErrLevel, p.key, p.level, height)
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("%w: key: %v  factor: %d", fault.ErrBalance, p.key, bf)
	}
	return 1 + ln + rn, height, nil
}
