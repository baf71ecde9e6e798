// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/bench"
	"github.com/bitmark-inc/bstree/version"
)

type metadata struct {
	kind    bench.Kind
	verbose bool
	r       io.Reader
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.build=M.N" ./...
var build = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "bstree-cli"
	app.Usage = "balanced binary search tree explorer"
	app.Version = version.Full(build)
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " print the tree after each change",
		},
		cli.StringFlag{
			Name:  "kind, k",
			Value: string(bench.AVL),
			Usage: " tree implementation `KIND` [avl|redblack]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "shell",
			Usage:     "apply commands read from standard input to one tree",
			ArgsUsage: "\n   (type help for a list of commands)",
			Action:    runShell,
		},
		{
			Name:      "build",
			Usage:     "insert keys into an empty tree and print it",
			ArgsUsage: "KEY…",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "values, d",
					Usage: " show the stored values",
				},
			},
			Action: runBuild,
		},
		{
			Name:  "version",
			Usage: "display bstree-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", c.App.Version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		kind, err := bench.ParseKind(c.GlobalString("kind"))
		if nil != err {
			return fmt.Errorf("kind: %q  error: %w", c.GlobalString("kind"), err)
		}

		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				kind:    kind,
				verbose: c.GlobalBool("verbose"),
				r:       os.Stdin,
				e:       c.App.ErrWriter,
				w:       c.App.Writer,
			},
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
