// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atomic

import "github.com/kolkov/atomicops/internal/ops"

// Int32 is a 32-bit signed atomic cell.
//
// The zero value holds 0 and is ready to use. An Int32 must not be copied
// after first use. All arithmetic wraps in two's complement; signed values
// travel to the backend as their bit patterns, which makes wrapping exact.
type Int32 struct {
	_ noCopy
	v uint32
}

// Init sets the cell to v before the cell is shared.
//
// Init is a plain store: it is the one operation that may touch the cell
// non-atomically, and it is only legal while no other goroutine can reach
// the cell. Publish the cell (or the struct containing it) only after Init
// returns.
func (x *Int32) Init(v int32) { x.v = uint32(v) }

// Load returns the cell's value with sequentially consistent ordering.
func (x *Int32) Load() int32 { return int32(ops.LoadUint32(&x.v)) }

// LoadAcquire returns the cell's value; operations after it in program
// order cannot be observed by another goroutine as happening before it.
func (x *Int32) LoadAcquire() int32 { return int32(ops.LoadUint32(&x.v)) }

// LoadRelaxed returns the cell's value with atomicity but no cross-thread
// ordering guarantee.
func (x *Int32) LoadRelaxed() int32 { return int32(ops.LoadUint32(&x.v)) }

// Store sets the cell to v with sequentially consistent ordering.
func (x *Int32) Store(v int32) { ops.StoreUint32(&x.v, uint32(v)) }

// StoreRelease sets the cell to v; operations before it in program order
// cannot be observed by another goroutine as happening after it.
func (x *Int32) StoreRelease(v int32) { ops.StoreUint32(&x.v, uint32(v)) }

// StoreRelaxed sets the cell to v with atomicity only.
func (x *Int32) StoreRelaxed(v int32) { ops.StoreUint32(&x.v, uint32(v)) }

// Swap sets the cell to v and returns the value it replaced.
func (x *Int32) Swap(v int32) int32 { return int32(ops.SwapUint32(&x.v, uint32(v))) }

// SwapAcqRel is Swap with acquire-release ordering.
func (x *Int32) SwapAcqRel(v int32) int32 { return int32(ops.SwapUint32(&x.v, uint32(v))) }

// SwapRelaxed is Swap with atomicity only.
func (x *Int32) SwapRelaxed(v int32) int32 { return int32(ops.SwapUint32(&x.v, uint32(v))) }

// CompareAndSwap replaces the cell's value with new if it currently equals
// old. It always returns the value observed immediately before the
// attempt: the exchange happened if and only if the result equals old.
//
//	for {
//		cur := x.Load()
//		if x.CompareAndSwap(cur, f(cur)) == cur {
//			break
//		}
//	}
func (x *Int32) CompareAndSwap(old, new int32) int32 {
	return int32(ops.CompareAndSwapUint32(&x.v, uint32(old), uint32(new)))
}

// CompareAndSwapAcqRel is CompareAndSwap with acquire-release ordering.
func (x *Int32) CompareAndSwapAcqRel(old, new int32) int32 {
	return int32(ops.CompareAndSwapUint32(&x.v, uint32(old), uint32(new)))
}

// Add adds delta to the cell. Use AddNv when the post-operation value is
// needed: a separate Load after a concurrent mutation would race.
func (x *Int32) Add(delta int32) { ops.AddUint32(&x.v, uint32(delta)) }

// AddAcqRel is Add with acquire-release ordering.
func (x *Int32) AddAcqRel(delta int32) { ops.AddUint32(&x.v, uint32(delta)) }

// AddRelaxed is Add with atomicity only.
func (x *Int32) AddRelaxed(delta int32) { ops.AddUint32(&x.v, uint32(delta)) }

// AddNv adds delta to the cell and returns the resulting value, computed
// in the same indivisible step as the addition.
func (x *Int32) AddNv(delta int32) int32 { return int32(ops.AddUint32(&x.v, uint32(delta))) }

// AddNvAcqRel is AddNv with acquire-release ordering.
func (x *Int32) AddNvAcqRel(delta int32) int32 { return int32(ops.AddUint32(&x.v, uint32(delta))) }

// AddNvRelaxed is AddNv with atomicity only.
func (x *Int32) AddNvRelaxed(delta int32) int32 { return int32(ops.AddUint32(&x.v, uint32(delta))) }

// Sub subtracts delta from the cell.
func (x *Int32) Sub(delta int32) { ops.AddUint32(&x.v, -uint32(delta)) }

// SubAcqRel is Sub with acquire-release ordering.
func (x *Int32) SubAcqRel(delta int32) { ops.AddUint32(&x.v, -uint32(delta)) }

// SubRelaxed is Sub with atomicity only.
func (x *Int32) SubRelaxed(delta int32) { ops.AddUint32(&x.v, -uint32(delta)) }

// SubNv subtracts delta from the cell and returns the resulting value.
func (x *Int32) SubNv(delta int32) int32 { return int32(ops.AddUint32(&x.v, -uint32(delta))) }

// SubNvAcqRel is SubNv with acquire-release ordering.
func (x *Int32) SubNvAcqRel(delta int32) int32 { return int32(ops.AddUint32(&x.v, -uint32(delta))) }

// SubNvRelaxed is SubNv with atomicity only.
func (x *Int32) SubNvRelaxed(delta int32) int32 { return int32(ops.AddUint32(&x.v, -uint32(delta))) }

// Incr adds one to the cell.
func (x *Int32) Incr() { ops.AddUint32(&x.v, 1) }

// IncrAcqRel is Incr with acquire-release ordering.
func (x *Int32) IncrAcqRel() { ops.AddUint32(&x.v, 1) }

// IncrRelaxed is Incr with atomicity only.
func (x *Int32) IncrRelaxed() { ops.AddUint32(&x.v, 1) }

// IncrNv adds one to the cell and returns the resulting value.
func (x *Int32) IncrNv() int32 { return int32(ops.AddUint32(&x.v, 1)) }

// IncrNvAcqRel is IncrNv with acquire-release ordering.
func (x *Int32) IncrNvAcqRel() int32 { return int32(ops.AddUint32(&x.v, 1)) }

// IncrNvRelaxed is IncrNv with atomicity only.
func (x *Int32) IncrNvRelaxed() int32 { return int32(ops.AddUint32(&x.v, 1)) }

// Decr subtracts one from the cell.
func (x *Int32) Decr() { ops.AddUint32(&x.v, ^uint32(0)) }

// DecrAcqRel is Decr with acquire-release ordering.
func (x *Int32) DecrAcqRel() { ops.AddUint32(&x.v, ^uint32(0)) }

// DecrRelaxed is Decr with atomicity only.
func (x *Int32) DecrRelaxed() { ops.AddUint32(&x.v, ^uint32(0)) }

// DecrNv subtracts one from the cell and returns the resulting value.
func (x *Int32) DecrNv() int32 { return int32(ops.AddUint32(&x.v, ^uint32(0))) }

// DecrNvAcqRel is DecrNv with acquire-release ordering.
func (x *Int32) DecrNvAcqRel() int32 { return int32(ops.AddUint32(&x.v, ^uint32(0))) }

// DecrNvRelaxed is DecrNv with atomicity only.
func (x *Int32) DecrNvRelaxed() int32 { return int32(ops.AddUint32(&x.v, ^uint32(0))) }
