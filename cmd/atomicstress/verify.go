// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// verify.go implements the 'atomicstress verify' command.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/kolkov/atomicops/atomic"
	"github.com/kolkov/atomicops/internal/locktab"
	"github.com/kolkov/atomicops/internal/ops"
)

// verifyCommand implements the 'atomicstress verify' command.
//
// It replays the single-threaded conformance sequences twice — once
// through the compiled-in backend, once through the lock-table oracle —
// and reports any divergence. Cheap enough to run on every port before
// trusting the backend selection.
func verifyCommand(args []string) {
	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "Error: verify takes no arguments\n")
		os.Exit(1)
	}

	checks := []struct {
		name string
		run  func() error
	}{
		{name: "round trip", run: verifyRoundTrip},
		{name: "compare-and-swap", run: verifyCompareAndSwap},
		{name: "wraparound", run: verifyWraparound},
		{name: "backend vs oracle", run: verifyAgainstOracle},
	}

	failed := 0
	for _, c := range checks {
		if err := c.run(); err != nil {
			fmt.Printf("%-20s FAILED: %v\n", c.name, err)
			failed++
		} else {
			fmt.Printf("%-20s ok\n", c.name)
		}
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d checks failed (%s backend)\n",
			failed, len(checks), ops.Name)
		os.Exit(1)
	}
	fmt.Printf("all checks passed (%s backend)\n", ops.Name)
}

// verifyRoundTrip stores and reloads the boundary values of every cell
// kind.
func verifyRoundTrip() error {
	var i32 atomic.Int32
	for _, v := range []int32{0, -1, math.MinInt32, math.MaxInt32} {
		i32.Store(v)
		if got := i32.Load(); got != v {
			return fmt.Errorf("Int32 round trip: got %d, want %d", got, v)
		}
	}

	var i64 atomic.Int64
	for _, v := range []int64{0, -1, math.MinInt64, math.MaxInt64} {
		i64.Store(v)
		if got := i64.Load(); got != v {
			return fmt.Errorf("Int64 round trip: got %d, want %d", got, v)
		}
	}

	var up atomic.Uintptr
	for _, v := range []uintptr{0, ^uintptr(0)} {
		up.Store(v)
		if got := up.Load(); got != v {
			return fmt.Errorf("Uintptr round trip: got %#x, want %#x", got, v)
		}
	}
	return nil
}

// verifyCompareAndSwap replays the canonical CAS scenario.
func verifyCompareAndSwap() error {
	var x atomic.Int32
	x.Init(0)

	if got := x.AddNv(5); got != 5 {
		return fmt.Errorf("AddNv(5) = %d, want 5", got)
	}
	if got := x.CompareAndSwap(5, 9); got != 5 {
		return fmt.Errorf("CompareAndSwap(5, 9) = %d, want 5", got)
	}
	if got := x.CompareAndSwap(5, 1); got != 9 {
		return fmt.Errorf("CompareAndSwap(5, 1) = %d, want 9", got)
	}
	if got := x.Load(); got != 9 {
		return fmt.Errorf("final value %d, want 9", got)
	}
	return nil
}

// verifyWraparound checks modulo-2^N arithmetic at the edges.
func verifyWraparound() error {
	var u32 atomic.Uint32
	u32.Init(math.MaxUint32)
	if got := u32.IncrNv(); got != 0 {
		return fmt.Errorf("uint32 wrap: IncrNv = %d, want 0", got)
	}

	var i64 atomic.Int64
	i64.Init(math.MaxInt64)
	if got := i64.IncrNv(); got != math.MinInt64 {
		return fmt.Errorf("int64 wrap: IncrNv = %d, want %d", got, int64(math.MinInt64))
	}
	return nil
}

// verifyAgainstOracle applies one mixed sequence through the backend and
// the lock-table oracle and compares every result.
func verifyAgainstOracle() error {
	var b, o uint64
	ops.StoreUint64(&b, 3)
	locktab.Store(&o, 3)

	steps := []struct {
		name    string
		backend func() uint64
		oracle  func() uint64
	}{
		{"add", func() uint64 { return ops.AddUint64(&b, 41) }, func() uint64 { return locktab.Add(&o, 41) }},
		{"swap", func() uint64 { return ops.SwapUint64(&b, 7) }, func() uint64 { return locktab.Swap(&o, 7) }},
		{"cas hit", func() uint64 { return ops.CompareAndSwapUint64(&b, 7, 100) }, func() uint64 { return locktab.CompareAndSwap(&o, 7, 100) }},
		{"cas miss", func() uint64 { return ops.CompareAndSwapUint64(&b, 7, 200) }, func() uint64 { return locktab.CompareAndSwap(&o, 7, 200) }},
		{"or", func() uint64 { return ops.OrUint64(&b, 0xFF) }, func() uint64 { return locktab.Or(&o, 0xFF) }},
		{"and", func() uint64 { return ops.AndUint64(&b, 0x0F) }, func() uint64 { return locktab.And(&o, 0x0F) }},
		{"xor", func() uint64 { return ops.XorUint64(&b, 0xAA) }, func() uint64 { return locktab.Xor(&o, 0xAA) }},
		{"load", func() uint64 { return ops.LoadUint64(&b) }, func() uint64 { return locktab.Load(&o) }},
	}

	for _, s := range steps {
		bv, ov := s.backend(), s.oracle()
		if bv != ov {
			return fmt.Errorf("%s: backend %#x, oracle %#x", s.name, bv, ov)
		}
	}
	return nil
}
