// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package atomic provides lock-free atomic cells for fixed-width integers
// and pointer-sized values, with explicit memory-ordering variants.
//
// Five integer cell kinds are provided — [Int32], [Uint32], [Int64],
// [Uint64] and [Uintptr] — plus a typed pointer cell [Pointer]. Each cell
// is a plain value container: it has no identity beyond its address, is
// initialized once before being shared, and is thereafter mutated in place
// only through its methods. The zero value of every cell kind is valid and
// holds zero (or nil).
//
// # Operation set
//
// Every integer cell supports load, store, swap, compare-and-swap,
// add/subtract in plain and new-value ("Nv") forms, by-one increment and
// decrement specializations, and (for the unsigned kinds) the bitwise
// fetch operations And, Or and Xor. CompareAndSwap always returns the
// value observed immediately before the attempt; success is determined by
// comparing that result against the expected value, never by a boolean.
// Arithmetic wraps modulo 2^N — two's complement for the signed kinds —
// and never traps.
//
// # Ordering variants
//
// Each operation carries up to three ordering variants. The unsuffixed
// form is sequentially consistent, the strongest. The Relaxed suffix
// promises atomicity only; the Acquire, Release and AcqRel suffixes
// promise one-directional or bidirectional synchronization:
//
//   - LoadAcquire: program-order-later operations cannot be observed by
//     another thread as happening before the load.
//   - StoreRelease: program-order-earlier operations cannot be observed as
//     happening after the store.
//   - SwapAcqRel, CompareAndSwapAcqRel, AddNvAcqRel, ...: both, for
//     read-modify-write operations that consume and publish in one step.
//
// Mixing variants on one cell is legal; each call's guarantee applies to
// that call alone, and all writes to a single cell always compose into one
// modification order that every goroutine observes consistently.
//
// A backend may substitute a stronger ordering than requested — and the
// backends in this module do, because the Go memory model only exposes
// sequentially consistent atomics. The variant names remain the contract:
// call sites declare what they need, not what the current backend happens
// to deliver.
//
// # Backends
//
// At build time exactly one backend is compiled in (see internal/ops):
// the native lock-free backend on multithreaded ports, a serial backend on
// single-threaded WebAssembly ports, and a mutex lock-table fallback
// selected with -tags=atomicops_mutex. Callers never observe which one is
// active; the fallback is the behavioral oracle the lock-free backends are
// validated against.
//
// # Misuse
//
// Reading or writing a cell's storage by non-atomic means while it is
// shared, or copying a cell after first use, is a precondition violation
// with undefined behavior, not a recoverable error. Cells do not protect
// against the ABA hazard: a pointer compare-and-swap compares raw bit
// patterns only.
package atomic
