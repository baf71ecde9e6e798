// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bstree-cli - explore the balanced trees from the command line
//
// the "shell" command reads commands from standard input and applies
// them to a single tree, "build" inserts keys from the command line
// and prints the resulting tree.
//
// keys are integers, values are strings and default to the text of
// the key.
package main
