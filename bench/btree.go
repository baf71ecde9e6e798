// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"github.com/google/btree"

	"github.com/bitmark-inc/bstree/fault"
)

// degree of the baseline B-tree
const btreeDegree = 32

// key/value pair ordered by key only
type entry struct {
	key   int
	value int
}

func (e entry) Less(than btree.Item) bool {
	return e.key < than.(entry).key
}

// baseline Map on a B-tree, for comparison with the binary trees
type btreeMap struct {
	t *btree.BTree
}

func newBTreeMap() *btreeMap {
	return &btreeMap{
		t: btree.New(btreeDegree),
	}
}

func (m *btreeMap) Insert(key int, value int) error {
	if m.t.Has(entry{key: key}) {
		return fault.ErrDuplicateKey
	}
	m.t.ReplaceOrInsert(entry{key: key, value: value})
	return nil
}

func (m *btreeMap) Find(key int) (int, bool) {
	item := m.t.Get(entry{key: key})
	if nil == item {
		return 0, false
	}
	return item.(entry).value, true
}

func (m *btreeMap) Remove(key int) (int, int, bool) {
	item := m.t.Delete(entry{key: key})
	if nil == item {
		return 0, 0, false
	}
	e := item.(entry)
	return e.key, e.value, true
}

func (m *btreeMap) Len() int {
	return m.t.Len()
}
