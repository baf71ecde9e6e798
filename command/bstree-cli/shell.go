// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/fault"
)

const prompt = "bstree> "

// one line of help per command, in display order
var shellCommands = [][2]string{
	{"insert KEY [VALUE]", "add a key, the value defaults to the key"},
	{"remove KEY", "delete a key and show its value"},
	{"find KEY", "show the value stored for a key"},
	{"len", "number of keys"},
	{"height", "number of levels"},
	{"empty", "whether the tree has no keys"},
	{"inorder", "list entries in ascending key order"},
	{"preorder", "list entries, each node before its sub-trees"},
	{"postorder", "list entries, each node after its sub-trees"},
	{"min", "entry with the lowest key"},
	{"max", "entry with the highest key"},
	{"print [values]", "draw the tree"},
	{"check", "verify the tree structure"},
	{"help", "this list"},
	{"quit", "leave the shell"},
}

type shell struct {
	t       tree
	verbose bool
	w       io.Writer
}

func runShell(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	t, err := newTree(m.kind)
	if nil != err {
		return err
	}
	s := &shell{
		t:       t,
		verbose: m.verbose,
		w:       m.w,
	}

	fmt.Fprintf(m.w, "%s tree, type help for commands\n", m.kind)
	return s.loop(m.r, m.e)
}

// read and execute lines until quit or end of input, errors are
// reported and do not stop the loop
func (s *shell) loop(r io.Reader, e io.Writer) error {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(s.w, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.w)
			return scanner.Err()
		}
		quit, err := s.execute(scanner.Text())
		if nil != err {
			fmt.Fprintf(e, "error: %s\n", err)
		}
		if quit {
			return nil
		}
	}
}

// run one command line, returns true for quit
func (s *shell) execute(line string) (bool, error) {
	words, err := shellwords.Parse(line)
	if nil != err {
		return false, fmt.Errorf("%w: %s", fault.ErrInvalidLine, err)
	}
	if 0 == len(words) {
		return false, nil
	}
	command, arguments := strings.ToLower(words[0]), words[1:]

	switch command {

	case "insert", "i", "add":
		if 0 == len(arguments) {
			return false, fmt.Errorf("%w: %s KEY [VALUE]", fault.ErrMissingArgument, command)
		}
		key, err := parseKey(arguments[0])
		if nil != err {
			return false, err
		}
		value := arguments[0]
		if len(arguments) > 1 {
			value = strings.Join(arguments[1:], " ")
		}
		if err := s.t.Insert(key, value); nil != err {
			return false, fmt.Errorf("insert: %d  error: %w", key, err)
		}
		fmt.Fprintf(s.w, "inserted: %d → %s\n", key, value)
		s.show()

	case "remove", "r", "delete":
		if 0 == len(arguments) {
			return false, fmt.Errorf("%w: %s KEY", fault.ErrMissingArgument, command)
		}
		key, err := parseKey(arguments[0])
		if nil != err {
			return false, err
		}
		k, v, ok := s.t.Remove(key)
		if !ok {
			return false, fmt.Errorf("remove: %d  error: %w", key, fault.ErrKeyNotFound)
		}
		fmt.Fprintf(s.w, "removed: %d → %s\n", k, v)
		s.show()

	case "find", "f":
		if 0 == len(arguments) {
			return false, fmt.Errorf("%w: %s KEY", fault.ErrMissingArgument, command)
		}
		key, err := parseKey(arguments[0])
		if nil != err {
			return false, err
		}
		v, ok := s.t.Find(key)
		if !ok {
			return false, fmt.Errorf("find: %d  error: %w", key, fault.ErrKeyNotFound)
		}
		fmt.Fprintf(s.w, "%d → %s\n", key, v)

	case "len":
		fmt.Fprintf(s.w, "len: %d\n", s.t.Len())

	case "height":
		fmt.Fprintf(s.w, "height: %d\n", s.t.Height())

	case "empty":
		fmt.Fprintf(s.w, "empty: %t\n", s.t.IsEmpty())

	case "inorder":
		s.list(s.t.InOrder())

	case "preorder":
		s.list(s.t.PreOrder())

	case "postorder":
		s.list(s.t.PostOrder())

	case "min", "max":
		first := s.t.First
		if "max" == command {
			first = s.t.Last
		}
		k, v, ok := first()
		if !ok {
			return false, fmt.Errorf("%s: tree is empty: %w", command, fault.ErrKeyNotFound)
		}
		fmt.Fprintf(s.w, "%s: %d → %s\n", command, k, v)

	case "print", "p":
		values := len(arguments) > 0 && strings.HasPrefix("values", strings.ToLower(arguments[0]))
		s.t.Print(s.w, values)

	case "check":
		if err := s.t.Check(); nil != err {
			return false, err
		}
		fmt.Fprintf(s.w, "ok: %d keys\n", s.t.Len())

	case "help", "h", "?":
		for _, c := range shellCommands {
			fmt.Fprintf(s.w, "  %-20s %s\n", c[0], c[1])
		}

	case "quit", "q", "exit":
		return true, nil

	default:
		return false, fmt.Errorf("%w: %q", fault.ErrUnknownCommand, command)
	}
	return false, nil
}

// draw the tree after a change in verbose mode
func (s *shell) show() {
	if s.verbose {
		s.t.Print(s.w, false)
	}
}

func (s *shell) list(seq iter.Seq2[int, string]) {
	for k, v := range seq {
		fmt.Fprintf(s.w, "%d → %s\n", k, v)
	}
}

func parseKey(s string) (int, error) {
	key, err := strconv.Atoi(s)
	if nil != err {
		return 0, fmt.Errorf("%w: %q", fault.ErrInvalidKey, s)
	}
	return key, nil
}
