// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version - release number shared by the programs
package version

// ensure that git has a tag: "vX.Y" corresponding to major and minor
const (
	Major   = "1"
	Minor   = "0"
	Version = Major + "." + Minor
)

// Full - the release number followed by any linker supplied build
// identifier
func Full(build string) string {
	switch build {
	case "", "zero", Version:
		return Version
	}
	return Version + " (" + build + ")"
}
