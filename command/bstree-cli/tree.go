// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"iter"

	"github.com/bitmark-inc/bstree/avl"
	"github.com/bitmark-inc/bstree/bench"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/redblack"
)

// the operations common to both tree kinds
type tree interface {
	Insert(key int, value string) error
	Find(key int) (string, bool)
	Remove(key int) (int, string, bool)
	Len() int
	IsEmpty() bool
	Height() int
	First() (int, string, bool)
	Last() (int, string, bool)
	InOrder() iter.Seq2[int, string]
	PreOrder() iter.Seq2[int, string]
	PostOrder() iter.Seq2[int, string]
	Check() error
	Print(w io.Writer, printData bool) int
}

func newTree(kind bench.Kind) (tree, error) {
	switch kind {
	case bench.AVL:
		return avl.New[int, string](), nil
	case bench.RedBlack:
		return redblack.New[int, string](), nil
	}
	return nil, fault.ErrInvalidTreeKind
}
