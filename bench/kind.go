// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

//go:generate mockgen -destination=mocks/map.go -package=mocks github.com/bitmark-inc/bstree/bench Map

import (
	"strings"

	"github.com/bitmark-inc/bstree/avl"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/redblack"
)

// Map - the operations a job needs from a tree
type Map interface {
	Insert(key int, value int) error
	Find(key int) (int, bool)
	Remove(key int) (int, int, bool)
	Len() int
}

// Kind - name of a tree implementation
type Kind string

// the available implementations
const (
	AVL      Kind = "avl"
	RedBlack Kind = "redblack"
	BTree    Kind = "btree" // baseline only, not a binary tree
)

// Kinds - the binary tree implementations in a fixed order
var Kinds = []Kind{AVL, RedBlack}

// ParseKind - convert a name to a kind, ignoring case
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case AVL, RedBlack, BTree:
		return k, nil
	}
	return "", fault.ErrInvalidTreeKind
}

// NewMap - create an empty tree of the given kind
func NewMap(kind Kind) (Map, error) {
	switch kind {
	case AVL:
		return avl.New[int, int](), nil
	case RedBlack:
		return redblack.New[int, int](), nil
	case BTree:
		return newBTreeMap(), nil
	}
	return nil, fault.ErrInvalidTreeKind
}
