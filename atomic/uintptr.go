// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atomic

import "github.com/kolkov/atomicops/internal/ops"

// Uintptr is a pointer-sized atomic cell.
//
// The zero value holds 0 and is ready to use. A Uintptr must not be copied
// after first use. The cell holds raw bit patterns: CompareAndSwap has no
// tag or stamp, so the ABA hazard is the caller's to manage, and the
// garbage collector does not trace a Uintptr — use [Pointer] when the cell
// must keep its referent alive.
type Uintptr struct {
	_ noCopy
	v uintptr
}

// Init sets the cell to v before the cell is shared. See [Int32.Init].
func (x *Uintptr) Init(v uintptr) { x.v = v }

// Load returns the cell's value with sequentially consistent ordering.
func (x *Uintptr) Load() uintptr { return ops.LoadUintptr(&x.v) }

// LoadAcquire is Load with acquire ordering.
func (x *Uintptr) LoadAcquire() uintptr { return ops.LoadUintptr(&x.v) }

// LoadRelaxed is Load with atomicity only.
func (x *Uintptr) LoadRelaxed() uintptr { return ops.LoadUintptr(&x.v) }

// Store sets the cell to v with sequentially consistent ordering.
func (x *Uintptr) Store(v uintptr) { ops.StoreUintptr(&x.v, v) }

// StoreRelease is Store with release ordering.
func (x *Uintptr) StoreRelease(v uintptr) { ops.StoreUintptr(&x.v, v) }

// StoreRelaxed is Store with atomicity only.
func (x *Uintptr) StoreRelaxed(v uintptr) { ops.StoreUintptr(&x.v, v) }

// Swap sets the cell to v and returns the value it replaced.
func (x *Uintptr) Swap(v uintptr) uintptr { return ops.SwapUintptr(&x.v, v) }

// SwapAcqRel is Swap with acquire-release ordering.
func (x *Uintptr) SwapAcqRel(v uintptr) uintptr { return ops.SwapUintptr(&x.v, v) }

// SwapRelaxed is Swap with atomicity only.
func (x *Uintptr) SwapRelaxed(v uintptr) uintptr { return ops.SwapUintptr(&x.v, v) }

// CompareAndSwap replaces the cell's value with new if it currently equals
// old, returning the value observed immediately before the attempt. The
// exchange happened if and only if the result equals old.
func (x *Uintptr) CompareAndSwap(old, new uintptr) uintptr {
	return ops.CompareAndSwapUintptr(&x.v, old, new)
}

// CompareAndSwapAcqRel is CompareAndSwap with acquire-release ordering.
func (x *Uintptr) CompareAndSwapAcqRel(old, new uintptr) uintptr {
	return ops.CompareAndSwapUintptr(&x.v, old, new)
}

// Add adds delta to the cell.
func (x *Uintptr) Add(delta uintptr) { ops.AddUintptr(&x.v, delta) }

// AddAcqRel is Add with acquire-release ordering.
func (x *Uintptr) AddAcqRel(delta uintptr) { ops.AddUintptr(&x.v, delta) }

// AddRelaxed is Add with atomicity only.
func (x *Uintptr) AddRelaxed(delta uintptr) { ops.AddUintptr(&x.v, delta) }

// AddNv adds delta to the cell and returns the resulting value.
func (x *Uintptr) AddNv(delta uintptr) uintptr { return ops.AddUintptr(&x.v, delta) }

// AddNvAcqRel is AddNv with acquire-release ordering.
func (x *Uintptr) AddNvAcqRel(delta uintptr) uintptr { return ops.AddUintptr(&x.v, delta) }

// AddNvRelaxed is AddNv with atomicity only.
func (x *Uintptr) AddNvRelaxed(delta uintptr) uintptr { return ops.AddUintptr(&x.v, delta) }

// Sub subtracts delta from the cell.
func (x *Uintptr) Sub(delta uintptr) { ops.AddUintptr(&x.v, -delta) }

// SubAcqRel is Sub with acquire-release ordering.
func (x *Uintptr) SubAcqRel(delta uintptr) { ops.AddUintptr(&x.v, -delta) }

// SubRelaxed is Sub with atomicity only.
func (x *Uintptr) SubRelaxed(delta uintptr) { ops.AddUintptr(&x.v, -delta) }

// SubNv subtracts delta from the cell and returns the resulting value.
func (x *Uintptr) SubNv(delta uintptr) uintptr { return ops.AddUintptr(&x.v, -delta) }

// SubNvAcqRel is SubNv with acquire-release ordering.
func (x *Uintptr) SubNvAcqRel(delta uintptr) uintptr { return ops.AddUintptr(&x.v, -delta) }

// SubNvRelaxed is SubNv with atomicity only.
func (x *Uintptr) SubNvRelaxed(delta uintptr) uintptr { return ops.AddUintptr(&x.v, -delta) }

// Incr adds one to the cell.
func (x *Uintptr) Incr() { ops.AddUintptr(&x.v, 1) }

// IncrAcqRel is Incr with acquire-release ordering.
func (x *Uintptr) IncrAcqRel() { ops.AddUintptr(&x.v, 1) }

// IncrRelaxed is Incr with atomicity only.
func (x *Uintptr) IncrRelaxed() { ops.AddUintptr(&x.v, 1) }

// IncrNv adds one to the cell and returns the resulting value.
func (x *Uintptr) IncrNv() uintptr { return ops.AddUintptr(&x.v, 1) }

// IncrNvAcqRel is IncrNv with acquire-release ordering.
func (x *Uintptr) IncrNvAcqRel() uintptr { return ops.AddUintptr(&x.v, 1) }

// IncrNvRelaxed is IncrNv with atomicity only.
func (x *Uintptr) IncrNvRelaxed() uintptr { return ops.AddUintptr(&x.v, 1) }

// Decr subtracts one from the cell.
func (x *Uintptr) Decr() { ops.AddUintptr(&x.v, ^uintptr(0)) }

// DecrAcqRel is Decr with acquire-release ordering.
func (x *Uintptr) DecrAcqRel() { ops.AddUintptr(&x.v, ^uintptr(0)) }

// DecrRelaxed is Decr with atomicity only.
func (x *Uintptr) DecrRelaxed() { ops.AddUintptr(&x.v, ^uintptr(0)) }

// DecrNv subtracts one from the cell and returns the resulting value.
func (x *Uintptr) DecrNv() uintptr { return ops.AddUintptr(&x.v, ^uintptr(0)) }

// DecrNvAcqRel is DecrNv with acquire-release ordering.
func (x *Uintptr) DecrNvAcqRel() uintptr { return ops.AddUintptr(&x.v, ^uintptr(0)) }

// DecrNvRelaxed is DecrNv with atomicity only.
func (x *Uintptr) DecrNvRelaxed() uintptr { return ops.AddUintptr(&x.v, ^uintptr(0)) }

// And applies a bitwise AND of mask to the cell and returns the value
// observed before the operation.
func (x *Uintptr) And(mask uintptr) uintptr { return ops.AndUintptr(&x.v, mask) }

// Or applies a bitwise OR of mask to the cell and returns the value
// observed before the operation.
func (x *Uintptr) Or(mask uintptr) uintptr { return ops.OrUintptr(&x.v, mask) }

// Xor applies a bitwise XOR of mask to the cell and returns the value
// observed before the operation.
func (x *Uintptr) Xor(mask uintptr) uintptr { return ops.XorUintptr(&x.v, mask) }
