// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package locktab implements the generic mutex-based atomic backend.
//
// Every operation acquires a mutex from a small fixed-size table keyed by
// cell address, then performs an ordinary read-modify-write of the cell.
// The table approach bounds memory to a constant regardless of how many
// cells exist, at the cost of occasional false sharing of a lock between
// unrelated cells (harmless: it only ever over-serializes).
//
// This backend is compiled on every platform, independent of which backend
// the build selected, so that conformance tests can run the active backend
// and this one side by side in a single binary. It is the behavioral oracle:
// any observable divergence between a native backend and this package is a
// bug in the native backend.
//
// Ordering: every operation here is sequentially consistent. Relaxed and
// acquire/release requests are deliberately over-synchronized, which is
// always a legal substitution for a weaker ordering.
//
// Progress: operations block only while another operation on the same lock
// is in flight, and every critical section is O(1) straight-line code.
package locktab

import (
	"sync"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// tableSize is the number of locks in the table. Power of two so the hash
// can be masked instead of reduced modulo. 128 locks keeps the table at two
// cache lines worth of mutexes while making address collisions rare for
// realistic cell populations.
const tableSize = 128

// locks is the global lock table. Index is derived from the cell address,
// so the same cell always maps to the same lock.
var locks [tableSize]sync.Mutex

// lockFor returns the mutex guarding the cell at addr.
//
// The index is the top bits of a multiplicative hash of the address.
// Multiplying by the 64-bit golden ratio constant mixes well for both
// sequential (stack, struct fields) and random (heap) addresses; taking
// top bits avoids the poor low-bit behavior of aligned addresses.
func lockFor(addr unsafe.Pointer) *sync.Mutex {
	const goldenRatio = 0x9E3779B97F4A7C15

	hash := uint64(uintptr(addr)) * goldenRatio

	return &locks[hash>>(64-7)] // Top 7 bits → [0, 127].
}

// Integer covers the cell widths this backend serves. Pointer-sized cells
// go through the uintptr instantiation; typed pointers through the
// unsafe.Pointer entry points below.
type Integer interface {
	constraints.Integer
}

// Load returns the current value of the cell at p.
func Load[T Integer](p *T) T {
	mu := lockFor(unsafe.Pointer(p))
	mu.Lock()
	v := *p
	mu.Unlock()

	return v
}

// Store sets the cell at p to v.
func Store[T Integer](p *T, v T) {
	mu := lockFor(unsafe.Pointer(p))
	mu.Lock()
	*p = v
	mu.Unlock()
}

// Swap sets the cell at p to v and returns the value it replaced.
func Swap[T Integer](p *T, v T) T {
	mu := lockFor(unsafe.Pointer(p))
	mu.Lock()
	old := *p
	*p = v
	mu.Unlock()

	return old
}

// CompareAndSwap replaces the cell's value with new if it currently equals
// old. It always returns the value observed before the attempt; the caller
// decides success by comparing the result against old.
func CompareAndSwap[T Integer](p *T, old, new T) T {
	mu := lockFor(unsafe.Pointer(p))
	mu.Lock()
	prev := *p
	if prev == old {
		*p = new
	}
	mu.Unlock()

	return prev
}

// Add adds delta to the cell at p and returns the post-operation value.
// Subtraction is addition of the two's-complement negation, so callers
// build Sub on top of this. Overflow wraps modulo 2^N.
func Add[T Integer](p *T, delta T) T {
	mu := lockFor(unsafe.Pointer(p))
	mu.Lock()
	*p += delta
	v := *p
	mu.Unlock()

	return v
}

// And applies a bitwise AND of mask to the cell at p and returns the value
// observed before the operation.
func And[T constraints.Unsigned](p *T, mask T) T {
	mu := lockFor(unsafe.Pointer(p))
	mu.Lock()
	old := *p
	*p = old & mask
	mu.Unlock()

	return old
}

// Or applies a bitwise OR of mask to the cell at p and returns the value
// observed before the operation.
func Or[T constraints.Unsigned](p *T, mask T) T {
	mu := lockFor(unsafe.Pointer(p))
	mu.Lock()
	old := *p
	*p = old | mask
	mu.Unlock()

	return old
}

// Xor applies a bitwise XOR of mask to the cell at p and returns the value
// observed before the operation.
func Xor[T constraints.Unsigned](p *T, mask T) T {
	mu := lockFor(unsafe.Pointer(p))
	mu.Lock()
	old := *p
	*p = old ^ mask
	mu.Unlock()

	return old
}

// LoadPointer returns the current value of the pointer cell at p.
func LoadPointer(p *unsafe.Pointer) unsafe.Pointer {
	mu := lockFor(unsafe.Pointer(p))
	mu.Lock()
	v := *p
	mu.Unlock()

	return v
}

// StorePointer sets the pointer cell at p to v.
func StorePointer(p *unsafe.Pointer, v unsafe.Pointer) {
	mu := lockFor(unsafe.Pointer(p))
	mu.Lock()
	*p = v
	mu.Unlock()
}

// SwapPointer sets the pointer cell at p to v and returns the value it
// replaced.
func SwapPointer(p *unsafe.Pointer, v unsafe.Pointer) unsafe.Pointer {
	mu := lockFor(unsafe.Pointer(p))
	mu.Lock()
	old := *p
	*p = v
	mu.Unlock()

	return old
}

// CompareAndSwapPointer replaces the pointer cell's value with new if it
// currently equals old, returning the value observed before the attempt.
// Comparison is on raw bit patterns; there is no ABA protection.
func CompareAndSwapPointer(p *unsafe.Pointer, old, new unsafe.Pointer) unsafe.Pointer {
	mu := lockFor(unsafe.Pointer(p))
	mu.Lock()
	prev := *p
	if prev == old {
		*p = new
	}
	mu.Unlock()

	return prev
}
