// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atomic

// noCopy signals `go vet -copylocks` that the embedding struct must not be
// copied after first use. Copying a cell would split its modification
// order across two addresses — and on 32-bit targets would invalidate the
// alignment computed for 64-bit cells.
type noCopy struct{}

// Lock is a no-op used by the copylocks checker.
func (*noCopy) Lock() {}

// Unlock is a no-op used by the copylocks checker.
func (*noCopy) Unlock() {}
