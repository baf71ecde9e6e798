// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type InvariantError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ProcessError("already initialised")
	ErrBalance              = InvariantError("balance factor out of range")
	ErrBlackHeight          = InvariantError("black height is not uniform")
	ErrCount                = InvariantError("node count mismatch")
	ErrDuplicateKey         = ExistsError("key already exists")
	ErrFileNotFound         = NotFoundError("file not found")
	ErrInvalidDivisor       = InvalidError("invalid search divisor")
	ErrInvalidFormat        = InvalidError("invalid report format")
	ErrInvalidInterval      = InvalidError("invalid progress interval")
	ErrInvalidKey           = InvalidError("invalid key")
	ErrInvalidLine          = InvalidError("invalid command line")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidSize          = InvalidError("invalid size")
	ErrInvalidTreeKind      = InvalidError("invalid tree kind")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrLevel                = InvariantError("stored level differs from subtree height")
	ErrMissingArgument      = InvalidError("missing argument")
	ErrOrder                = InvariantError("keys out of order")
	ErrParentLink           = InvariantError("parent link does not match child link")
	ErrRedRed               = InvariantError("red node has a red child")
	ErrRootNotBlack         = InvariantError("root is not black")
	ErrTreeModified         = ProcessError("tree modified during traversal")
	ErrUnknownCommand       = InvalidError("unknown command")
	ErrValueMismatch        = InvariantError("returned value does not match")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e InvariantError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool    { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool   { var x InvalidError; return errors.As(e, &x) }
func IsErrInvariant(e error) bool { var x InvariantError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool  { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool   { var x ProcessError; return errors.As(e, &x) }
