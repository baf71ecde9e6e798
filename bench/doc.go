// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bench - timed insert, search and delete runs over the
// balanced tree implementations
//
// each job inserts the keys 0 up to its size, searches for the first
// fraction of them and then deletes every key again, timing each of
// the three phases separately.
package bench
