// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !atomicops_mutex && ((js && wasm) || wasip1)

// Serial backend for single-threaded WebAssembly ports.
//
// On js/wasm and wasip1 all goroutines run on one thread and asynchronous
// preemption is unavailable: a goroutine can only lose the processor at a
// function call or a blocking operation. None of the bodies below contain
// either, so each runs to completion once entered and plain memory access
// is already indivisible. No fences are needed — there is no second
// processor for stores to become visible to out of order.
//
// The bodies mirror the mutex backend's critical sections with the locking
// stripped out; the conformance suite holds this backend to the same
// observable behavior as the other two.

package ops

import "unsafe"

// Name identifies the compiled-in backend.
const Name = "serial"

// Blocking reports whether this backend can block on a lock.
const Blocking = false

// LoadUint32 loads *p.
func LoadUint32(p *uint32) uint32 { return *p }

// StoreUint32 stores v into *p.
func StoreUint32(p *uint32, v uint32) { *p = v }

// SwapUint32 stores v into *p and returns the replaced value.
func SwapUint32(p *uint32, v uint32) uint32 {
	old := *p
	*p = v
	return old
}

// AddUint32 adds delta to *p and returns the new value. Wraps modulo 2^32.
func AddUint32(p *uint32, delta uint32) uint32 {
	*p += delta
	return *p
}

// CompareAndSwapUint32 stores new into *p if *p equals old, returning the
// value observed before the attempt.
func CompareAndSwapUint32(p *uint32, old, new uint32) uint32 {
	prev := *p
	if prev == old {
		*p = new
	}
	return prev
}

// AndUint32 applies *p &= mask and returns the old value.
func AndUint32(p *uint32, mask uint32) uint32 {
	old := *p
	*p = old & mask
	return old
}

// OrUint32 applies *p |= mask and returns the old value.
func OrUint32(p *uint32, mask uint32) uint32 {
	old := *p
	*p = old | mask
	return old
}

// XorUint32 applies *p ^= mask and returns the old value.
func XorUint32(p *uint32, mask uint32) uint32 {
	old := *p
	*p = old ^ mask
	return old
}

// LoadUint64 loads *p.
func LoadUint64(p *uint64) uint64 { return *p }

// StoreUint64 stores v into *p.
func StoreUint64(p *uint64, v uint64) { *p = v }

// SwapUint64 stores v into *p and returns the replaced value.
func SwapUint64(p *uint64, v uint64) uint64 {
	old := *p
	*p = v
	return old
}

// AddUint64 adds delta to *p and returns the new value. Wraps modulo 2^64.
func AddUint64(p *uint64, delta uint64) uint64 {
	*p += delta
	return *p
}

// CompareAndSwapUint64 stores new into *p if *p equals old, returning the
// value observed before the attempt.
func CompareAndSwapUint64(p *uint64, old, new uint64) uint64 {
	prev := *p
	if prev == old {
		*p = new
	}
	return prev
}

// AndUint64 applies *p &= mask and returns the old value.
func AndUint64(p *uint64, mask uint64) uint64 {
	old := *p
	*p = old & mask
	return old
}

// OrUint64 applies *p |= mask and returns the old value.
func OrUint64(p *uint64, mask uint64) uint64 {
	old := *p
	*p = old | mask
	return old
}

// XorUint64 applies *p ^= mask and returns the old value.
func XorUint64(p *uint64, mask uint64) uint64 {
	old := *p
	*p = old ^ mask
	return old
}

// LoadUintptr loads *p.
func LoadUintptr(p *uintptr) uintptr { return *p }

// StoreUintptr stores v into *p.
func StoreUintptr(p *uintptr, v uintptr) { *p = v }

// SwapUintptr stores v into *p and returns the replaced value.
func SwapUintptr(p *uintptr, v uintptr) uintptr {
	old := *p
	*p = v
	return old
}

// AddUintptr adds delta to *p and returns the new value.
func AddUintptr(p *uintptr, delta uintptr) uintptr {
	*p += delta
	return *p
}

// CompareAndSwapUintptr stores new into *p if *p equals old, returning the
// value observed before the attempt.
func CompareAndSwapUintptr(p *uintptr, old, new uintptr) uintptr {
	prev := *p
	if prev == old {
		*p = new
	}
	return prev
}

// AndUintptr applies *p &= mask and returns the old value.
func AndUintptr(p *uintptr, mask uintptr) uintptr {
	old := *p
	*p = old & mask
	return old
}

// OrUintptr applies *p |= mask and returns the old value.
func OrUintptr(p *uintptr, mask uintptr) uintptr {
	old := *p
	*p = old | mask
	return old
}

// XorUintptr applies *p ^= mask and returns the old value.
func XorUintptr(p *uintptr, mask uintptr) uintptr {
	old := *p
	*p = old ^ mask
	return old
}

// LoadPointer loads *p.
func LoadPointer(p *unsafe.Pointer) unsafe.Pointer { return *p }

// StorePointer stores v into *p.
func StorePointer(p *unsafe.Pointer, v unsafe.Pointer) { *p = v }

// SwapPointer stores v into *p and returns the replaced value.
func SwapPointer(p *unsafe.Pointer, v unsafe.Pointer) unsafe.Pointer {
	old := *p
	*p = v
	return old
}

// CompareAndSwapPointer stores new into *p if *p equals old, returning the
// value observed before the attempt.
func CompareAndSwapPointer(p *unsafe.Pointer, old, new unsafe.Pointer) unsafe.Pointer {
	prev := *p
	if prev == old {
		*p = new
	}
	return prev
}
