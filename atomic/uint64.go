// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atomic

import "github.com/kolkov/atomicops/internal/ops"

// Uint64 is a 64-bit unsigned atomic cell.
//
// The zero value holds 0 and is ready to use. A Uint64 must not be copied
// after first use. Like [Int64], it is safe to embed at any struct offset
// on every supported target. Arithmetic wraps modulo 2^64.
type Uint64 struct {
	_ noCopy
	c cell64
}

// Init sets the cell to v before the cell is shared. See [Int32.Init].
func (x *Uint64) Init(v uint64) { *x.c.ptr() = v }

// Load returns the cell's value with sequentially consistent ordering.
func (x *Uint64) Load() uint64 { return ops.LoadUint64(x.c.ptr()) }

// LoadAcquire is Load with acquire ordering.
func (x *Uint64) LoadAcquire() uint64 { return ops.LoadUint64(x.c.ptr()) }

// LoadRelaxed is Load with atomicity only.
func (x *Uint64) LoadRelaxed() uint64 { return ops.LoadUint64(x.c.ptr()) }

// Store sets the cell to v with sequentially consistent ordering.
func (x *Uint64) Store(v uint64) { ops.StoreUint64(x.c.ptr(), v) }

// StoreRelease is Store with release ordering.
func (x *Uint64) StoreRelease(v uint64) { ops.StoreUint64(x.c.ptr(), v) }

// StoreRelaxed is Store with atomicity only.
func (x *Uint64) StoreRelaxed(v uint64) { ops.StoreUint64(x.c.ptr(), v) }

// Swap sets the cell to v and returns the value it replaced.
func (x *Uint64) Swap(v uint64) uint64 { return ops.SwapUint64(x.c.ptr(), v) }

// SwapAcqRel is Swap with acquire-release ordering.
func (x *Uint64) SwapAcqRel(v uint64) uint64 { return ops.SwapUint64(x.c.ptr(), v) }

// SwapRelaxed is Swap with atomicity only.
func (x *Uint64) SwapRelaxed(v uint64) uint64 { return ops.SwapUint64(x.c.ptr(), v) }

// CompareAndSwap replaces the cell's value with new if it currently equals
// old, returning the value observed immediately before the attempt. The
// exchange happened if and only if the result equals old.
func (x *Uint64) CompareAndSwap(old, new uint64) uint64 {
	return ops.CompareAndSwapUint64(x.c.ptr(), old, new)
}

// CompareAndSwapAcqRel is CompareAndSwap with acquire-release ordering.
func (x *Uint64) CompareAndSwapAcqRel(old, new uint64) uint64 {
	return ops.CompareAndSwapUint64(x.c.ptr(), old, new)
}

// Add adds delta to the cell.
func (x *Uint64) Add(delta uint64) { ops.AddUint64(x.c.ptr(), delta) }

// AddAcqRel is Add with acquire-release ordering.
func (x *Uint64) AddAcqRel(delta uint64) { ops.AddUint64(x.c.ptr(), delta) }

// AddRelaxed is Add with atomicity only.
func (x *Uint64) AddRelaxed(delta uint64) { ops.AddUint64(x.c.ptr(), delta) }

// AddNv adds delta to the cell and returns the resulting value.
func (x *Uint64) AddNv(delta uint64) uint64 { return ops.AddUint64(x.c.ptr(), delta) }

// AddNvAcqRel is AddNv with acquire-release ordering.
func (x *Uint64) AddNvAcqRel(delta uint64) uint64 { return ops.AddUint64(x.c.ptr(), delta) }

// AddNvRelaxed is AddNv with atomicity only.
func (x *Uint64) AddNvRelaxed(delta uint64) uint64 { return ops.AddUint64(x.c.ptr(), delta) }

// Sub subtracts delta from the cell.
func (x *Uint64) Sub(delta uint64) { ops.AddUint64(x.c.ptr(), -delta) }

// SubAcqRel is Sub with acquire-release ordering.
func (x *Uint64) SubAcqRel(delta uint64) { ops.AddUint64(x.c.ptr(), -delta) }

// SubRelaxed is Sub with atomicity only.
func (x *Uint64) SubRelaxed(delta uint64) { ops.AddUint64(x.c.ptr(), -delta) }

// SubNv subtracts delta from the cell and returns the resulting value.
func (x *Uint64) SubNv(delta uint64) uint64 { return ops.AddUint64(x.c.ptr(), -delta) }

// SubNvAcqRel is SubNv with acquire-release ordering.
func (x *Uint64) SubNvAcqRel(delta uint64) uint64 { return ops.AddUint64(x.c.ptr(), -delta) }

// SubNvRelaxed is SubNv with atomicity only.
func (x *Uint64) SubNvRelaxed(delta uint64) uint64 { return ops.AddUint64(x.c.ptr(), -delta) }

// Incr adds one to the cell.
func (x *Uint64) Incr() { ops.AddUint64(x.c.ptr(), 1) }

// IncrAcqRel is Incr with acquire-release ordering.
func (x *Uint64) IncrAcqRel() { ops.AddUint64(x.c.ptr(), 1) }

// IncrRelaxed is Incr with atomicity only.
func (x *Uint64) IncrRelaxed() { ops.AddUint64(x.c.ptr(), 1) }

// IncrNv adds one to the cell and returns the resulting value.
func (x *Uint64) IncrNv() uint64 { return ops.AddUint64(x.c.ptr(), 1) }

// IncrNvAcqRel is IncrNv with acquire-release ordering.
func (x *Uint64) IncrNvAcqRel() uint64 { return ops.AddUint64(x.c.ptr(), 1) }

// IncrNvRelaxed is IncrNv with atomicity only.
func (x *Uint64) IncrNvRelaxed() uint64 { return ops.AddUint64(x.c.ptr(), 1) }

// Decr subtracts one from the cell.
func (x *Uint64) Decr() { ops.AddUint64(x.c.ptr(), ^uint64(0)) }

// DecrAcqRel is Decr with acquire-release ordering.
func (x *Uint64) DecrAcqRel() { ops.AddUint64(x.c.ptr(), ^uint64(0)) }

// DecrRelaxed is Decr with atomicity only.
func (x *Uint64) DecrRelaxed() { ops.AddUint64(x.c.ptr(), ^uint64(0)) }

// DecrNv subtracts one from the cell and returns the resulting value.
func (x *Uint64) DecrNv() uint64 { return ops.AddUint64(x.c.ptr(), ^uint64(0)) }

// DecrNvAcqRel is DecrNv with acquire-release ordering.
func (x *Uint64) DecrNvAcqRel() uint64 { return ops.AddUint64(x.c.ptr(), ^uint64(0)) }

// DecrNvRelaxed is DecrNv with atomicity only.
func (x *Uint64) DecrNvRelaxed() uint64 { return ops.AddUint64(x.c.ptr(), ^uint64(0)) }

// And applies a bitwise AND of mask to the cell and returns the value
// observed before the operation.
func (x *Uint64) And(mask uint64) uint64 { return ops.AndUint64(x.c.ptr(), mask) }

// Or applies a bitwise OR of mask to the cell and returns the value
// observed before the operation.
func (x *Uint64) Or(mask uint64) uint64 { return ops.OrUint64(x.c.ptr(), mask) }

// Xor applies a bitwise XOR of mask to the cell and returns the value
// observed before the operation.
func (x *Uint64) Xor(mask uint64) uint64 { return ops.XorUint64(x.c.ptr(), mask) }
