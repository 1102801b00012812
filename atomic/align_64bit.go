// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !386 && !arm && !mips && !mipsle

package atomic

// cell64 is the storage for the 64-bit cell kinds on targets whose
// allocator already aligns uint64 fields to 8 bytes. It is exactly the
// size of its value; ptr is free.
type cell64 struct {
	v uint64
}

// ptr returns the address the backend operates on.
//
//go:nosplit
func (c *cell64) ptr() *uint64 { return &c.v }
