// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ops is the backend dispatch layer for the atomic cell types.
//
// Exactly one backend is compiled into any given binary, selected once by
// build constraints — never by a runtime branch:
//
//   - native (ops_native.go): every multithreaded port. Delegates to
//     sync/atomic, which the compiler lowers to the most specific atomic
//     instruction sequence the target CPU offers.
//   - serial (ops_serial.go): single-threaded WebAssembly ports, where a
//     call-free read-modify-write cannot be interrupted and plain memory
//     access is already indivisible.
//   - mutex (ops_mutex.go, build tag "atomicops_mutex"): forces the
//     lock-table backend from internal/locktab on any port. Used as the
//     oracle configuration when validating the other backends.
//
// The three constraint sets are mutually exclusive and together cover every
// platform/tag combination; a configuration matching none of them fails to
// link with undefined ops references rather than silently compiling a
// non-atomic implementation.
//
// Each backend exports the identical operation set per cell width:
// Load, Store, Swap, CompareAndSwap (returning the previously observed
// value), Add (returning the new value), and the bitwise And/Or/Xor
// (returning the old value). Callers in package atomic compose the full
// public surface — plain/new-value arithmetic forms, increments, ordering
// variants — from these entry points.
//
// Every entry point is sequentially consistent. Ordering variants weaker
// than that are accepted at the facade and served by the same entry point:
// over-synchronizing never violates an ordering contract, and Go's memory
// model offers no portable way to request less.
package ops
