// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atomic

import "github.com/kolkov/atomicops/internal/ops"

// Int64 is a 64-bit signed atomic cell.
//
// The zero value holds 0 and is ready to use. An Int64 must not be copied
// after first use. Unlike a bare int64, an Int64 is safe to embed at any
// offset of any struct on every supported target: the cell representation
// (see cell64) guarantees the alignment the target's 64-bit atomic
// instructions require, which 32-bit targets do not provide for plain
// fields.
type Int64 struct {
	_ noCopy
	c cell64
}

// Init sets the cell to v before the cell is shared. See [Int32.Init].
func (x *Int64) Init(v int64) { *x.c.ptr() = uint64(v) }

// Load returns the cell's value with sequentially consistent ordering.
func (x *Int64) Load() int64 { return int64(ops.LoadUint64(x.c.ptr())) }

// LoadAcquire is Load with acquire ordering.
func (x *Int64) LoadAcquire() int64 { return int64(ops.LoadUint64(x.c.ptr())) }

// LoadRelaxed is Load with atomicity only.
func (x *Int64) LoadRelaxed() int64 { return int64(ops.LoadUint64(x.c.ptr())) }

// Store sets the cell to v with sequentially consistent ordering.
func (x *Int64) Store(v int64) { ops.StoreUint64(x.c.ptr(), uint64(v)) }

// StoreRelease is Store with release ordering.
func (x *Int64) StoreRelease(v int64) { ops.StoreUint64(x.c.ptr(), uint64(v)) }

// StoreRelaxed is Store with atomicity only.
func (x *Int64) StoreRelaxed(v int64) { ops.StoreUint64(x.c.ptr(), uint64(v)) }

// Swap sets the cell to v and returns the value it replaced.
func (x *Int64) Swap(v int64) int64 { return int64(ops.SwapUint64(x.c.ptr(), uint64(v))) }

// SwapAcqRel is Swap with acquire-release ordering.
func (x *Int64) SwapAcqRel(v int64) int64 { return int64(ops.SwapUint64(x.c.ptr(), uint64(v))) }

// SwapRelaxed is Swap with atomicity only.
func (x *Int64) SwapRelaxed(v int64) int64 { return int64(ops.SwapUint64(x.c.ptr(), uint64(v))) }

// CompareAndSwap replaces the cell's value with new if it currently equals
// old, returning the value observed immediately before the attempt. The
// exchange happened if and only if the result equals old.
func (x *Int64) CompareAndSwap(old, new int64) int64 {
	return int64(ops.CompareAndSwapUint64(x.c.ptr(), uint64(old), uint64(new)))
}

// CompareAndSwapAcqRel is CompareAndSwap with acquire-release ordering.
func (x *Int64) CompareAndSwapAcqRel(old, new int64) int64 {
	return int64(ops.CompareAndSwapUint64(x.c.ptr(), uint64(old), uint64(new)))
}

// Add adds delta to the cell. Wraps in two's complement.
func (x *Int64) Add(delta int64) { ops.AddUint64(x.c.ptr(), uint64(delta)) }

// AddAcqRel is Add with acquire-release ordering.
func (x *Int64) AddAcqRel(delta int64) { ops.AddUint64(x.c.ptr(), uint64(delta)) }

// AddRelaxed is Add with atomicity only.
func (x *Int64) AddRelaxed(delta int64) { ops.AddUint64(x.c.ptr(), uint64(delta)) }

// AddNv adds delta to the cell and returns the resulting value.
func (x *Int64) AddNv(delta int64) int64 { return int64(ops.AddUint64(x.c.ptr(), uint64(delta))) }

// AddNvAcqRel is AddNv with acquire-release ordering.
func (x *Int64) AddNvAcqRel(delta int64) int64 {
	return int64(ops.AddUint64(x.c.ptr(), uint64(delta)))
}

// AddNvRelaxed is AddNv with atomicity only.
func (x *Int64) AddNvRelaxed(delta int64) int64 {
	return int64(ops.AddUint64(x.c.ptr(), uint64(delta)))
}

// Sub subtracts delta from the cell.
func (x *Int64) Sub(delta int64) { ops.AddUint64(x.c.ptr(), -uint64(delta)) }

// SubAcqRel is Sub with acquire-release ordering.
func (x *Int64) SubAcqRel(delta int64) { ops.AddUint64(x.c.ptr(), -uint64(delta)) }

// SubRelaxed is Sub with atomicity only.
func (x *Int64) SubRelaxed(delta int64) { ops.AddUint64(x.c.ptr(), -uint64(delta)) }

// SubNv subtracts delta from the cell and returns the resulting value.
func (x *Int64) SubNv(delta int64) int64 { return int64(ops.AddUint64(x.c.ptr(), -uint64(delta))) }

// SubNvAcqRel is SubNv with acquire-release ordering.
func (x *Int64) SubNvAcqRel(delta int64) int64 {
	return int64(ops.AddUint64(x.c.ptr(), -uint64(delta)))
}

// SubNvRelaxed is SubNv with atomicity only.
func (x *Int64) SubNvRelaxed(delta int64) int64 {
	return int64(ops.AddUint64(x.c.ptr(), -uint64(delta)))
}

// Incr adds one to the cell.
func (x *Int64) Incr() { ops.AddUint64(x.c.ptr(), 1) }

// IncrAcqRel is Incr with acquire-release ordering.
func (x *Int64) IncrAcqRel() { ops.AddUint64(x.c.ptr(), 1) }

// IncrRelaxed is Incr with atomicity only.
func (x *Int64) IncrRelaxed() { ops.AddUint64(x.c.ptr(), 1) }

// IncrNv adds one to the cell and returns the resulting value.
func (x *Int64) IncrNv() int64 { return int64(ops.AddUint64(x.c.ptr(), 1)) }

// IncrNvAcqRel is IncrNv with acquire-release ordering.
func (x *Int64) IncrNvAcqRel() int64 { return int64(ops.AddUint64(x.c.ptr(), 1)) }

// IncrNvRelaxed is IncrNv with atomicity only.
func (x *Int64) IncrNvRelaxed() int64 { return int64(ops.AddUint64(x.c.ptr(), 1)) }

// Decr subtracts one from the cell.
func (x *Int64) Decr() { ops.AddUint64(x.c.ptr(), ^uint64(0)) }

// DecrAcqRel is Decr with acquire-release ordering.
func (x *Int64) DecrAcqRel() { ops.AddUint64(x.c.ptr(), ^uint64(0)) }

// DecrRelaxed is Decr with atomicity only.
func (x *Int64) DecrRelaxed() { ops.AddUint64(x.c.ptr(), ^uint64(0)) }

// DecrNv subtracts one from the cell and returns the resulting value.
func (x *Int64) DecrNv() int64 { return int64(ops.AddUint64(x.c.ptr(), ^uint64(0))) }

// DecrNvAcqRel is DecrNv with acquire-release ordering.
func (x *Int64) DecrNvAcqRel() int64 { return int64(ops.AddUint64(x.c.ptr(), ^uint64(0))) }

// DecrNvRelaxed is DecrNv with atomicity only.
func (x *Int64) DecrNvRelaxed() int64 { return int64(ops.AddUint64(x.c.ptr(), ^uint64(0))) }
