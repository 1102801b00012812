// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build 386 || arm || mips || mipsle

package atomic

import "unsafe"

// cell64 is the storage for the 64-bit cell kinds on 32-bit targets.
//
// These targets only guarantee 4-byte alignment for struct fields, while
// their 64-bit atomic instructions (LOCK CMPXCHG8B, LDREXD/STREXD, and
// friends) fault or lose atomicity on an unaligned address. Instead of
// pushing an alignment obligation onto every struct that embeds a cell,
// the cell carries 15 bytes and derives the unique 8-aligned 8-byte window
// inside itself.
//
// The derived address is stable: Go's collector never moves objects, so
// ptr returns the same address for the life of the cell. A copied cell
// would compute a fresh window over different bytes, which is one of the
// reasons cells are no-copy.
type cell64 struct {
	v [15]byte
}

// ptr returns the 8-byte-aligned address inside the storage window.
//
//go:nosplit
func (c *cell64) ptr() *uint64 {
	base := uintptr(unsafe.Pointer(&c.v))
	off := (8 - base%8) % 8

	return (*uint64)(unsafe.Pointer(&c.v[off]))
}
