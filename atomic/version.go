// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atomic

import "github.com/kolkov/atomicops/internal/ops"

// Version information for the atomicops library.
const (
	// Version is the current version of the library.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info describes the compiled-in configuration.
type Info struct {
	// Version is the library version string.
	Version string

	// Backend names the backend selected at build time:
	// "native", "serial" or "mutex".
	Backend string

	// Blocking reports whether the backend can block on a lock.
	// Only the mutex backend blocks.
	Blocking bool
}

// GetInfo returns the compiled-in configuration.
//
// Example:
//
//	info := atomic.GetInfo()
//	fmt.Printf("atomicops %s (%s backend)\n", info.Version, info.Backend)
func GetInfo() Info {
	return Info{
		Version:  Version,
		Backend:  ops.Name,
		Blocking: ops.Blocking,
	}
}
