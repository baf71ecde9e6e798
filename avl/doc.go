// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL height balanced tree with the addition of
// parent links to allow iteration through the nodes without a stack
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes are held in an arena owned by the tree and refer to each
// other by slot index.  Slot zero is never allocated and stands for
// an absent node.  Removed slots are kept on a free list and reused
// by later inserts.
//
// Every node records the height of its sub-tree (its level).  After
// an insert or delete the levels are recomputed from the point of
// change up to the root and any node whose children differ in level
// by two is restored with a single or double rotation.
//
// Keys are unique: inserting an existing key is rejected and leaves
// the tree unchanged.  Delete does not copy data between nodes, the
// in-order successor is relinked into the position of the removed
// node.
package avl
