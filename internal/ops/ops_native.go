// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !atomicops_mutex && !(js && wasm) && !wasip1

// Native lock-free backend.
//
// This is the default backend on every port where goroutines can run in
// parallel. All operations delegate to sync/atomic intrinsics, which the
// compiler lowers per target: LOCK-prefixed instructions on amd64, LSE
// atomics (or LL/SC pairs on pre-8.1 cores) on arm64, LR/SC on riscv64,
// and so on. Load and store are wait-free; the read-modify-write entry
// points are lock-free, with the retry-loop forms below bounded only by
// contention.
//
// Two operations have no direct sync/atomic counterpart and are built as
// compare-and-swap retry loops:
//
//   - CompareAndSwap*: sync/atomic reports success as a bool, while this
//     layer's contract returns the value observed before the attempt.
//   - Xor*: sync/atomic gained And/Or intrinsics in Go 1.23 but has no
//     fetch-XOR.

package ops

import (
	"sync/atomic"
	"unsafe"
)

// Name identifies the compiled-in backend.
const Name = "native"

// Blocking reports whether this backend can block on a lock.
const Blocking = false

// LoadUint32 atomically loads *p.
//
//go:nosplit
func LoadUint32(p *uint32) uint32 { return atomic.LoadUint32(p) }

// StoreUint32 atomically stores v into *p.
//
//go:nosplit
func StoreUint32(p *uint32, v uint32) { atomic.StoreUint32(p, v) }

// SwapUint32 atomically stores v into *p and returns the replaced value.
//
//go:nosplit
func SwapUint32(p *uint32, v uint32) uint32 { return atomic.SwapUint32(p, v) }

// AddUint32 atomically adds delta to *p and returns the new value.
// Wraps modulo 2^32.
//
//go:nosplit
func AddUint32(p *uint32, delta uint32) uint32 { return atomic.AddUint32(p, delta) }

// CompareAndSwapUint32 stores new into *p if *p equals old, returning the
// value observed immediately before the attempt.
//
// The loop terminates as soon as either the hardware CAS succeeds or a
// conflicting value is observed; it re-arms only when the cell left old
// and returned to it between the load and the CAS, so it is bounded purely
// by contention.
func CompareAndSwapUint32(p *uint32, old, new uint32) uint32 {
	for {
		if atomic.CompareAndSwapUint32(p, old, new) {
			return old
		}
		if prev := atomic.LoadUint32(p); prev != old {
			return prev
		}
	}
}

// AndUint32 atomically applies *p &= mask and returns the old value.
//
//go:nosplit
func AndUint32(p *uint32, mask uint32) uint32 { return atomic.AndUint32(p, mask) }

// OrUint32 atomically applies *p |= mask and returns the old value.
//
//go:nosplit
func OrUint32(p *uint32, mask uint32) uint32 { return atomic.OrUint32(p, mask) }

// XorUint32 atomically applies *p ^= mask and returns the old value.
// CAS retry loop; there is no fetch-XOR intrinsic.
func XorUint32(p *uint32, mask uint32) uint32 {
	for {
		old := atomic.LoadUint32(p)
		if atomic.CompareAndSwapUint32(p, old, old^mask) {
			return old
		}
	}
}

// LoadUint64 atomically loads *p. The address must be 8-byte aligned;
// package atomic's cell representation guarantees that on every port.
//
//go:nosplit
func LoadUint64(p *uint64) uint64 { return atomic.LoadUint64(p) }

// StoreUint64 atomically stores v into *p.
//
//go:nosplit
func StoreUint64(p *uint64, v uint64) { atomic.StoreUint64(p, v) }

// SwapUint64 atomically stores v into *p and returns the replaced value.
//
//go:nosplit
func SwapUint64(p *uint64, v uint64) uint64 { return atomic.SwapUint64(p, v) }

// AddUint64 atomically adds delta to *p and returns the new value.
// Wraps modulo 2^64.
//
//go:nosplit
func AddUint64(p *uint64, delta uint64) uint64 { return atomic.AddUint64(p, delta) }

// CompareAndSwapUint64 stores new into *p if *p equals old, returning the
// value observed immediately before the attempt.
func CompareAndSwapUint64(p *uint64, old, new uint64) uint64 {
	for {
		if atomic.CompareAndSwapUint64(p, old, new) {
			return old
		}
		if prev := atomic.LoadUint64(p); prev != old {
			return prev
		}
	}
}

// AndUint64 atomically applies *p &= mask and returns the old value.
//
//go:nosplit
func AndUint64(p *uint64, mask uint64) uint64 { return atomic.AndUint64(p, mask) }

// OrUint64 atomically applies *p |= mask and returns the old value.
//
//go:nosplit
func OrUint64(p *uint64, mask uint64) uint64 { return atomic.OrUint64(p, mask) }

// XorUint64 atomically applies *p ^= mask and returns the old value.
func XorUint64(p *uint64, mask uint64) uint64 {
	for {
		old := atomic.LoadUint64(p)
		if atomic.CompareAndSwapUint64(p, old, old^mask) {
			return old
		}
	}
}

// LoadUintptr atomically loads *p.
//
//go:nosplit
func LoadUintptr(p *uintptr) uintptr { return atomic.LoadUintptr(p) }

// StoreUintptr atomically stores v into *p.
//
//go:nosplit
func StoreUintptr(p *uintptr, v uintptr) { atomic.StoreUintptr(p, v) }

// SwapUintptr atomically stores v into *p and returns the replaced value.
//
//go:nosplit
func SwapUintptr(p *uintptr, v uintptr) uintptr { return atomic.SwapUintptr(p, v) }

// AddUintptr atomically adds delta to *p and returns the new value.
//
//go:nosplit
func AddUintptr(p *uintptr, delta uintptr) uintptr { return atomic.AddUintptr(p, delta) }

// CompareAndSwapUintptr stores new into *p if *p equals old, returning the
// value observed immediately before the attempt.
func CompareAndSwapUintptr(p *uintptr, old, new uintptr) uintptr {
	for {
		if atomic.CompareAndSwapUintptr(p, old, new) {
			return old
		}
		if prev := atomic.LoadUintptr(p); prev != old {
			return prev
		}
	}
}

// AndUintptr atomically applies *p &= mask and returns the old value.
//
//go:nosplit
func AndUintptr(p *uintptr, mask uintptr) uintptr { return atomic.AndUintptr(p, mask) }

// OrUintptr atomically applies *p |= mask and returns the old value.
//
//go:nosplit
func OrUintptr(p *uintptr, mask uintptr) uintptr { return atomic.OrUintptr(p, mask) }

// XorUintptr atomically applies *p ^= mask and returns the old value.
func XorUintptr(p *uintptr, mask uintptr) uintptr {
	for {
		old := atomic.LoadUintptr(p)
		if atomic.CompareAndSwapUintptr(p, old, old^mask) {
			return old
		}
	}
}

// LoadPointer atomically loads *p.
//
//go:nosplit
func LoadPointer(p *unsafe.Pointer) unsafe.Pointer { return atomic.LoadPointer(p) }

// StorePointer atomically stores v into *p.
//
//go:nosplit
func StorePointer(p *unsafe.Pointer, v unsafe.Pointer) { atomic.StorePointer(p, v) }

// SwapPointer atomically stores v into *p and returns the replaced value.
//
//go:nosplit
func SwapPointer(p *unsafe.Pointer, v unsafe.Pointer) unsafe.Pointer {
	return atomic.SwapPointer(p, v)
}

// CompareAndSwapPointer stores new into *p if *p equals old, returning the
// value observed immediately before the attempt. Comparison is on raw bit
// patterns; ABA is the caller's problem.
func CompareAndSwapPointer(p *unsafe.Pointer, old, new unsafe.Pointer) unsafe.Pointer {
	for {
		if atomic.CompareAndSwapPointer(p, old, new) {
			return old
		}
		if prev := atomic.LoadPointer(p); prev != old {
			return prev
		}
	}
}
