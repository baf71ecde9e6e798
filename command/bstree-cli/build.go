// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/fault"
)

func runBuild(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return fmt.Errorf("%w: build KEY…", fault.ErrMissingArgument)
	}

	t, err := newTree(m.kind)
	if nil != err {
		return err
	}
	return buildTree(t, c.Args(), c.Bool("values"), m.verbose, m.w, m.e)
}

// insert all keys, duplicates are reported and skipped
func buildTree(t tree, keys []string, values bool, verbose bool, w io.Writer, e io.Writer) error {
	for _, s := range keys {
		key, err := parseKey(s)
		if nil != err {
			return err
		}
		if err := t.Insert(key, s); nil != err {
			fmt.Fprintf(e, "skipped: %d  error: %s\n", key, err)
			continue
		}
		if verbose {
			fmt.Fprintf(w, "inserted: %d\n", key)
			t.Print(w, values)
		}
	}

	t.Print(w, values)
	fmt.Fprintf(w, "len: %d  height: %d\n", t.Len(), t.Height())
	return nil
}
