// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bstree/bench"
	"github.com/bitmark-inc/bstree/fault"
)

func newShell(t *testing.T, kind bench.Kind) (*shell, *bytes.Buffer) {
	tr, err := newTree(kind)
	require.NoError(t, err, "kind: %s", kind)
	buffer := &bytes.Buffer{}
	return &shell{t: tr, w: buffer}, buffer
}

func TestShellCommands(t *testing.T) {
	for _, kind := range bench.Kinds {
		s, buffer := newShell(t, kind)

		items := []struct {
			line     string
			expected string
		}{
			{"insert 4", "inserted: 4 → 4\n"},
			{"insert 2 two", "inserted: 2 → two\n"},
			{"  INSERT   6  six and a half ", "inserted: 6 → six and a half\n"},
			{"i 1", "inserted: 1 → 1\n"},
			{"insert 3 'x  y'", "inserted: 3 → x  y\n"},
			{"remove 3", "removed: 3 → x  y\n"},
			{"find 2", "2 → two\n"},
			{"len", "len: 4\n"},
			{"height", "height: 3\n"},
			{"empty", "empty: false\n"},
			{"inorder", "1 → 1\n2 → two\n4 → 4\n6 → six and a half\n"},
			{"min", "min: 1 → 1\n"},
			{"max", "max: 6 → six and a half\n"},
			{"remove 4", "removed: 4 → 4\n"},
			{"check", "ok: 3 keys\n"},
			{"", ""},
		}

		for _, item := range items {
			buffer.Reset()
			quit, err := s.execute(item.line)
			assert.NoError(t, err, "%s: %q", kind, item.line)
			assert.False(t, quit, "%s: %q", kind, item.line)
			assert.Equal(t, item.expected, buffer.String(), "%s: %q", kind, item.line)
		}
	}
}

func TestShellTraversals(t *testing.T) {
	s, buffer := newShell(t, bench.AVL)
	for _, k := range []string{"1", "2", "3"} {
		_, err := s.execute("insert " + k)
		require.NoError(t, err)
	}

	buffer.Reset()
	_, err := s.execute("preorder")
	assert.NoError(t, err)
	assert.Equal(t, "2 → 2\n1 → 1\n3 → 3\n", buffer.String(), "wrong pre-order")

	buffer.Reset()
	_, err = s.execute("postorder")
	assert.NoError(t, err)
	assert.Equal(t, "1 → 1\n3 → 3\n2 → 2\n", buffer.String(), "wrong post-order")

	buffer.Reset()
	_, err = s.execute("print")
	assert.NoError(t, err)
	assert.Equal(t, "       /------+ 3 ^2\n|------+ 2 ^nil\n       \\------+ 1 ^2\n", buffer.String(), "wrong drawing")

	buffer.Reset()
	_, err = s.execute("print values")
	assert.NoError(t, err)
	assert.Contains(t, buffer.String(), "2 → 2 ^nil", "values not drawn")
}

func TestShellErrors(t *testing.T) {
	s, buffer := newShell(t, bench.RedBlack)
	_, err := s.execute("insert 5")
	require.NoError(t, err)

	items := []struct {
		line    string
		isClass func(error) bool
	}{
		{"insert 5", fault.IsErrExists},
		{"insert", fault.IsErrInvalid},
		{"insert five", fault.IsErrInvalid},
		{"remove 7", fault.IsErrNotFound},
		{"remove", fault.IsErrInvalid},
		{"find 7", fault.IsErrNotFound},
		{"find 1.5", fault.IsErrInvalid},
		{"rotate 5", fault.IsErrInvalid},
		{"insert 6 \"unterminated", fault.IsErrInvalid},
	}

	for _, item := range items {
		buffer.Reset()
		quit, err := s.execute(item.line)
		assert.Error(t, err, "%q", item.line)
		assert.True(t, item.isClass(err), "%q: wrong class: %v", item.line, err)
		assert.False(t, quit, "%q", item.line)
		assert.Empty(t, buffer.String(), "%q: output on error", item.line)
	}
	assert.Equal(t, 1, s.t.Len(), "errors changed the tree")
}

func TestShellEmptyTree(t *testing.T) {
	s, buffer := newShell(t, bench.AVL)

	for _, line := range []string{"min", "max"} {
		_, err := s.execute(line)
		assert.True(t, fault.IsErrNotFound(err), "%s: wrong error: %v", line, err)
	}

	buffer.Reset()
	_, err := s.execute("empty")
	assert.NoError(t, err)
	assert.Equal(t, "empty: true\n", buffer.String())
}

func TestShellLoop(t *testing.T) {
	s, buffer := newShell(t, bench.RedBlack)
	errors := &bytes.Buffer{}

	input := strings.NewReader("insert 3\ninsert x\nlen\nquit\ninsert 9\n")
	err := s.loop(input, errors)
	assert.NoError(t, err, "loop failed")

	assert.Equal(t, 1, s.t.Len(), "input after quit was executed")
	assert.Contains(t, buffer.String(), "len: 1\n", "missing output")
	assert.Equal(t, 4, strings.Count(buffer.String(), prompt), "wrong number of prompts")
	assert.Equal(t, "error: invalid key: \"x\"\n", errors.String(), "wrong error report")
}

func TestShellLoopEndOfInput(t *testing.T) {
	s, _ := newShell(t, bench.AVL)
	err := s.loop(strings.NewReader("insert 1\ninsert 2"), &bytes.Buffer{})
	assert.NoError(t, err, "loop failed")
	assert.Equal(t, 2, s.t.Len(), "last line without newline lost")
}

func TestShellVerbose(t *testing.T) {
	s, buffer := newShell(t, bench.RedBlack)
	s.verbose = true

	_, err := s.execute("insert 8")
	assert.NoError(t, err)
	assert.Equal(t, "inserted: 8 → 8\n|------+ 8 black ^nil\n", buffer.String(), "tree not drawn")
}

func TestShellHelp(t *testing.T) {
	s, buffer := newShell(t, bench.AVL)
	_, err := s.execute("help")
	assert.NoError(t, err)
	assert.Equal(t, len(shellCommands), strings.Count(buffer.String(), "\n"), "wrong number of help lines")

	quit, err := s.execute("quit")
	assert.NoError(t, err)
	assert.True(t, quit, "quit ignored")
}
