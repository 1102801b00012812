// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atomic

import "github.com/kolkov/atomicops/internal/ops"

// Uint32 is a 32-bit unsigned atomic cell.
//
// The zero value holds 0 and is ready to use. A Uint32 must not be copied
// after first use. Arithmetic wraps modulo 2^32, so incrementing past
// math.MaxUint32 lands on 0.
type Uint32 struct {
	_ noCopy
	v uint32
}

// Init sets the cell to v before the cell is shared. See [Int32.Init].
func (x *Uint32) Init(v uint32) { x.v = v }

// Load returns the cell's value with sequentially consistent ordering.
func (x *Uint32) Load() uint32 { return ops.LoadUint32(&x.v) }

// LoadAcquire is Load with acquire ordering.
func (x *Uint32) LoadAcquire() uint32 { return ops.LoadUint32(&x.v) }

// LoadRelaxed is Load with atomicity only.
func (x *Uint32) LoadRelaxed() uint32 { return ops.LoadUint32(&x.v) }

// Store sets the cell to v with sequentially consistent ordering.
func (x *Uint32) Store(v uint32) { ops.StoreUint32(&x.v, v) }

// StoreRelease is Store with release ordering.
func (x *Uint32) StoreRelease(v uint32) { ops.StoreUint32(&x.v, v) }

// StoreRelaxed is Store with atomicity only.
func (x *Uint32) StoreRelaxed(v uint32) { ops.StoreUint32(&x.v, v) }

// Swap sets the cell to v and returns the value it replaced.
func (x *Uint32) Swap(v uint32) uint32 { return ops.SwapUint32(&x.v, v) }

// SwapAcqRel is Swap with acquire-release ordering.
func (x *Uint32) SwapAcqRel(v uint32) uint32 { return ops.SwapUint32(&x.v, v) }

// SwapRelaxed is Swap with atomicity only.
func (x *Uint32) SwapRelaxed(v uint32) uint32 { return ops.SwapUint32(&x.v, v) }

// CompareAndSwap replaces the cell's value with new if it currently equals
// old, returning the value observed immediately before the attempt. The
// exchange happened if and only if the result equals old.
func (x *Uint32) CompareAndSwap(old, new uint32) uint32 {
	return ops.CompareAndSwapUint32(&x.v, old, new)
}

// CompareAndSwapAcqRel is CompareAndSwap with acquire-release ordering.
func (x *Uint32) CompareAndSwapAcqRel(old, new uint32) uint32 {
	return ops.CompareAndSwapUint32(&x.v, old, new)
}

// Add adds delta to the cell.
func (x *Uint32) Add(delta uint32) { ops.AddUint32(&x.v, delta) }

// AddAcqRel is Add with acquire-release ordering.
func (x *Uint32) AddAcqRel(delta uint32) { ops.AddUint32(&x.v, delta) }

// AddRelaxed is Add with atomicity only.
func (x *Uint32) AddRelaxed(delta uint32) { ops.AddUint32(&x.v, delta) }

// AddNv adds delta to the cell and returns the resulting value.
func (x *Uint32) AddNv(delta uint32) uint32 { return ops.AddUint32(&x.v, delta) }

// AddNvAcqRel is AddNv with acquire-release ordering.
func (x *Uint32) AddNvAcqRel(delta uint32) uint32 { return ops.AddUint32(&x.v, delta) }

// AddNvRelaxed is AddNv with atomicity only.
func (x *Uint32) AddNvRelaxed(delta uint32) uint32 { return ops.AddUint32(&x.v, delta) }

// Sub subtracts delta from the cell.
func (x *Uint32) Sub(delta uint32) { ops.AddUint32(&x.v, -delta) }

// SubAcqRel is Sub with acquire-release ordering.
func (x *Uint32) SubAcqRel(delta uint32) { ops.AddUint32(&x.v, -delta) }

// SubRelaxed is Sub with atomicity only.
func (x *Uint32) SubRelaxed(delta uint32) { ops.AddUint32(&x.v, -delta) }

// SubNv subtracts delta from the cell and returns the resulting value.
func (x *Uint32) SubNv(delta uint32) uint32 { return ops.AddUint32(&x.v, -delta) }

// SubNvAcqRel is SubNv with acquire-release ordering.
func (x *Uint32) SubNvAcqRel(delta uint32) uint32 { return ops.AddUint32(&x.v, -delta) }

// SubNvRelaxed is SubNv with atomicity only.
func (x *Uint32) SubNvRelaxed(delta uint32) uint32 { return ops.AddUint32(&x.v, -delta) }

// Incr adds one to the cell.
func (x *Uint32) Incr() { ops.AddUint32(&x.v, 1) }

// IncrAcqRel is Incr with acquire-release ordering.
func (x *Uint32) IncrAcqRel() { ops.AddUint32(&x.v, 1) }

// IncrRelaxed is Incr with atomicity only.
func (x *Uint32) IncrRelaxed() { ops.AddUint32(&x.v, 1) }

// IncrNv adds one to the cell and returns the resulting value.
func (x *Uint32) IncrNv() uint32 { return ops.AddUint32(&x.v, 1) }

// IncrNvAcqRel is IncrNv with acquire-release ordering.
func (x *Uint32) IncrNvAcqRel() uint32 { return ops.AddUint32(&x.v, 1) }

// IncrNvRelaxed is IncrNv with atomicity only.
func (x *Uint32) IncrNvRelaxed() uint32 { return ops.AddUint32(&x.v, 1) }

// Decr subtracts one from the cell.
func (x *Uint32) Decr() { ops.AddUint32(&x.v, ^uint32(0)) }

// DecrAcqRel is Decr with acquire-release ordering.
func (x *Uint32) DecrAcqRel() { ops.AddUint32(&x.v, ^uint32(0)) }

// DecrRelaxed is Decr with atomicity only.
func (x *Uint32) DecrRelaxed() { ops.AddUint32(&x.v, ^uint32(0)) }

// DecrNv subtracts one from the cell and returns the resulting value.
func (x *Uint32) DecrNv() uint32 { return ops.AddUint32(&x.v, ^uint32(0)) }

// DecrNvAcqRel is DecrNv with acquire-release ordering.
func (x *Uint32) DecrNvAcqRel() uint32 { return ops.AddUint32(&x.v, ^uint32(0)) }

// DecrNvRelaxed is DecrNv with atomicity only.
func (x *Uint32) DecrNvRelaxed() uint32 { return ops.AddUint32(&x.v, ^uint32(0)) }

// And applies a bitwise AND of mask to the cell and returns the value
// observed before the operation.
func (x *Uint32) And(mask uint32) uint32 { return ops.AndUint32(&x.v, mask) }

// Or applies a bitwise OR of mask to the cell and returns the value
// observed before the operation.
func (x *Uint32) Or(mask uint32) uint32 { return ops.OrUint32(&x.v, mask) }

// Xor applies a bitwise XOR of mask to the cell and returns the value
// observed before the operation.
func (x *Uint32) Xor(mask uint32) uint32 { return ops.XorUint32(&x.v, mask) }
