// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build atomicops_mutex

// Mutex backend: the lock-table fallback promoted to the active backend.
//
// Built with -tags=atomicops_mutex on any port. Every operation routes to
// internal/locktab, the behavioral oracle. Nothing here is lock-free; the
// only blocking in the whole library happens inside locktab's O(1)
// critical sections.
//
// This configuration exists for two reasons: conformance runs that want
// the oracle as the production backend, and any future port where the
// native backend's assumptions do not hold.

package ops

import (
	"unsafe"

	"github.com/kolkov/atomicops/internal/locktab"
)

// Name identifies the compiled-in backend.
const Name = "mutex"

// Blocking reports whether this backend can block on a lock.
const Blocking = true

// LoadUint32 atomically loads *p.
func LoadUint32(p *uint32) uint32 { return locktab.Load(p) }

// StoreUint32 atomically stores v into *p.
func StoreUint32(p *uint32, v uint32) { locktab.Store(p, v) }

// SwapUint32 atomically stores v into *p and returns the replaced value.
func SwapUint32(p *uint32, v uint32) uint32 { return locktab.Swap(p, v) }

// AddUint32 atomically adds delta to *p and returns the new value.
func AddUint32(p *uint32, delta uint32) uint32 { return locktab.Add(p, delta) }

// CompareAndSwapUint32 stores new into *p if *p equals old, returning the
// value observed before the attempt.
func CompareAndSwapUint32(p *uint32, old, new uint32) uint32 {
	return locktab.CompareAndSwap(p, old, new)
}

// AndUint32 atomically applies *p &= mask and returns the old value.
func AndUint32(p *uint32, mask uint32) uint32 { return locktab.And(p, mask) }

// OrUint32 atomically applies *p |= mask and returns the old value.
func OrUint32(p *uint32, mask uint32) uint32 { return locktab.Or(p, mask) }

// XorUint32 atomically applies *p ^= mask and returns the old value.
func XorUint32(p *uint32, mask uint32) uint32 { return locktab.Xor(p, mask) }

// LoadUint64 atomically loads *p.
func LoadUint64(p *uint64) uint64 { return locktab.Load(p) }

// StoreUint64 atomically stores v into *p.
func StoreUint64(p *uint64, v uint64) { locktab.Store(p, v) }

// SwapUint64 atomically stores v into *p and returns the replaced value.
func SwapUint64(p *uint64, v uint64) uint64 { return locktab.Swap(p, v) }

// AddUint64 atomically adds delta to *p and returns the new value.
func AddUint64(p *uint64, delta uint64) uint64 { return locktab.Add(p, delta) }

// CompareAndSwapUint64 stores new into *p if *p equals old, returning the
// value observed before the attempt.
func CompareAndSwapUint64(p *uint64, old, new uint64) uint64 {
	return locktab.CompareAndSwap(p, old, new)
}

// AndUint64 atomically applies *p &= mask and returns the old value.
func AndUint64(p *uint64, mask uint64) uint64 { return locktab.And(p, mask) }

// OrUint64 atomically applies *p |= mask and returns the old value.
func OrUint64(p *uint64, mask uint64) uint64 { return locktab.Or(p, mask) }

// XorUint64 atomically applies *p ^= mask and returns the old value.
func XorUint64(p *uint64, mask uint64) uint64 { return locktab.Xor(p, mask) }

// LoadUintptr atomically loads *p.
func LoadUintptr(p *uintptr) uintptr { return locktab.Load(p) }

// StoreUintptr atomically stores v into *p.
func StoreUintptr(p *uintptr, v uintptr) { locktab.Store(p, v) }

// SwapUintptr atomically stores v into *p and returns the replaced value.
func SwapUintptr(p *uintptr, v uintptr) uintptr { return locktab.Swap(p, v) }

// AddUintptr atomically adds delta to *p and returns the new value.
func AddUintptr(p *uintptr, delta uintptr) uintptr { return locktab.Add(p, delta) }

// CompareAndSwapUintptr stores new into *p if *p equals old, returning the
// value observed before the attempt.
func CompareAndSwapUintptr(p *uintptr, old, new uintptr) uintptr {
	return locktab.CompareAndSwap(p, old, new)
}

// AndUintptr atomically applies *p &= mask and returns the old value.
func AndUintptr(p *uintptr, mask uintptr) uintptr { return locktab.And(p, mask) }

// OrUintptr atomically applies *p |= mask and returns the old value.
func OrUintptr(p *uintptr, mask uintptr) uintptr { return locktab.Or(p, mask) }

// XorUintptr atomically applies *p ^= mask and returns the old value.
func XorUintptr(p *uintptr, mask uintptr) uintptr { return locktab.Xor(p, mask) }

// LoadPointer atomically loads *p.
func LoadPointer(p *unsafe.Pointer) unsafe.Pointer { return locktab.LoadPointer(p) }

// StorePointer atomically stores v into *p.
func StorePointer(p *unsafe.Pointer, v unsafe.Pointer) { locktab.StorePointer(p, v) }

// SwapPointer atomically stores v into *p and returns the replaced value.
func SwapPointer(p *unsafe.Pointer, v unsafe.Pointer) unsafe.Pointer {
	return locktab.SwapPointer(p, v)
}

// CompareAndSwapPointer stores new into *p if *p equals old, returning the
// value observed before the attempt.
func CompareAndSwapPointer(p *unsafe.Pointer, old, new unsafe.Pointer) unsafe.Pointer {
	return locktab.CompareAndSwapPointer(p, old, new)
}
