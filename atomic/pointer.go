// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atomic

import (
	"unsafe"

	"github.com/kolkov/atomicops/internal/ops"
)

// Pointer is a typed pointer atomic cell.
//
// The zero value holds nil and is ready to use. A Pointer must not be
// copied after first use. Unlike [Uintptr], a Pointer keeps its referent
// visible to the garbage collector. CompareAndSwap compares raw addresses
// with no tag or stamp; retry loops built on it are exposed to the ABA
// hazard when referents are recycled (see package nodepool for the free
// list this matters to).
type Pointer[T any] struct {
	_ noCopy
	v unsafe.Pointer
}

// Init sets the cell to v before the cell is shared. See [Int32.Init].
func (x *Pointer[T]) Init(v *T) { x.v = unsafe.Pointer(v) }

// Load returns the cell's value with sequentially consistent ordering.
func (x *Pointer[T]) Load() *T { return (*T)(ops.LoadPointer(&x.v)) }

// LoadAcquire is Load with acquire ordering.
func (x *Pointer[T]) LoadAcquire() *T { return (*T)(ops.LoadPointer(&x.v)) }

// LoadRelaxed is Load with atomicity only.
func (x *Pointer[T]) LoadRelaxed() *T { return (*T)(ops.LoadPointer(&x.v)) }

// Store sets the cell to v with sequentially consistent ordering.
func (x *Pointer[T]) Store(v *T) { ops.StorePointer(&x.v, unsafe.Pointer(v)) }

// StoreRelease is Store with release ordering.
func (x *Pointer[T]) StoreRelease(v *T) { ops.StorePointer(&x.v, unsafe.Pointer(v)) }

// StoreRelaxed is Store with atomicity only.
func (x *Pointer[T]) StoreRelaxed(v *T) { ops.StorePointer(&x.v, unsafe.Pointer(v)) }

// Swap sets the cell to v and returns the value it replaced.
func (x *Pointer[T]) Swap(v *T) *T { return (*T)(ops.SwapPointer(&x.v, unsafe.Pointer(v))) }

// SwapAcqRel is Swap with acquire-release ordering.
func (x *Pointer[T]) SwapAcqRel(v *T) *T { return (*T)(ops.SwapPointer(&x.v, unsafe.Pointer(v))) }

// SwapRelaxed is Swap with atomicity only.
func (x *Pointer[T]) SwapRelaxed(v *T) *T { return (*T)(ops.SwapPointer(&x.v, unsafe.Pointer(v))) }

// CompareAndSwap replaces the cell's value with new if it currently equals
// old, returning the value observed immediately before the attempt. The
// exchange happened if and only if the result equals old.
func (x *Pointer[T]) CompareAndSwap(old, new *T) *T {
	return (*T)(ops.CompareAndSwapPointer(&x.v, unsafe.Pointer(old), unsafe.Pointer(new)))
}

// CompareAndSwapAcqRel is CompareAndSwap with acquire-release ordering.
func (x *Pointer[T]) CompareAndSwapAcqRel(old, new *T) *T {
	return (*T)(ops.CompareAndSwapPointer(&x.v, unsafe.Pointer(old), unsafe.Pointer(new)))
}
