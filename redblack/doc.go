// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package redblack - a red-black balanced tree with parent links
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The tree keeps these properties after every insert and delete:
//
//   1. the root is black
//   2. absent children count as black
//   3. a red node has no red child
//   4. every path from a node down to an absent child passes the
//      same number of black nodes
//
// Nodes live in an arena owned by the tree and link to each other by
// slot index, slot zero stands for an absent node and is always
// black.  Removed slots are recycled through a free list.
package redblack
