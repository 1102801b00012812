// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atomic

import (
	"math"
	"testing"
	"unsafe"
)

// TestInt32RoundTrip verifies Init/Load at the boundary values.
func TestInt32RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    int32
	}{
		{name: "zero", v: 0},
		{name: "minus one", v: -1},
		{name: "min", v: math.MinInt32},
		{name: "max", v: math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var x Int32
			x.Init(tt.v)
			if got := x.Load(); got != tt.v {
				t.Errorf("Load() = %d, want %d", got, tt.v)
			}
			if got := x.LoadAcquire(); got != tt.v {
				t.Errorf("LoadAcquire() = %d, want %d", got, tt.v)
			}
			if got := x.LoadRelaxed(); got != tt.v {
				t.Errorf("LoadRelaxed() = %d, want %d", got, tt.v)
			}
		})
	}
}

// TestInt64RoundTrip verifies Init/Load at the boundary values.
func TestInt64RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    int64
	}{
		{name: "zero", v: 0},
		{name: "minus one", v: -1},
		{name: "min", v: math.MinInt64},
		{name: "max", v: math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var x Int64
			x.Init(tt.v)
			if got := x.Load(); got != tt.v {
				t.Errorf("Load() = %d, want %d", got, tt.v)
			}
		})
	}
}

// TestUintRoundTrip verifies the unsigned and pointer-sized kinds at zero
// and the all-ones bit pattern.
func TestUintRoundTrip(t *testing.T) {
	t.Run("uint32", func(t *testing.T) {
		var x Uint32
		for _, v := range []uint32{0, math.MaxUint32} {
			x.Store(v)
			if got := x.Load(); got != v {
				t.Errorf("Load() = %#x, want %#x", got, v)
			}
		}
	})

	t.Run("uint64", func(t *testing.T) {
		var x Uint64
		for _, v := range []uint64{0, math.MaxUint64} {
			x.Store(v)
			if got := x.Load(); got != v {
				t.Errorf("Load() = %#x, want %#x", got, v)
			}
		}
	})

	t.Run("uintptr", func(t *testing.T) {
		var x Uintptr
		for _, v := range []uintptr{0, ^uintptr(0)} {
			x.Store(v)
			if got := x.Load(); got != v {
				t.Errorf("Load() = %#x, want %#x", got, v)
			}
		}
	})
}

// TestCompareAndSwapSequence walks the canonical CAS scenario: a successful
// exchange reports the expected value, a failed exchange reports the
// conflicting value and leaves the cell untouched.
func TestCompareAndSwapSequence(t *testing.T) {
	var x Int32
	x.Init(0)

	if got := x.AddNv(5); got != 5 {
		t.Fatalf("AddNv(5) = %d, want 5", got)
	}
	if got := x.Load(); got != 5 {
		t.Fatalf("Load() = %d, want 5", got)
	}

	if got := x.CompareAndSwap(5, 9); got != 5 {
		t.Fatalf("CompareAndSwap(5, 9) = %d, want 5 (success)", got)
	}
	if got := x.Load(); got != 9 {
		t.Fatalf("Load() after successful CAS = %d, want 9", got)
	}

	if got := x.CompareAndSwap(5, 1); got != 9 {
		t.Fatalf("CompareAndSwap(5, 1) = %d, want 9 (failure reports current)", got)
	}
	if got := x.Load(); got != 9 {
		t.Fatalf("Load() after failed CAS = %d, want 9 (unchanged)", got)
	}
}

// TestSwapReturnsPrior verifies swap on every kind returns the replaced
// value.
func TestSwapReturnsPrior(t *testing.T) {
	var x Uint64
	x.Init(7)
	if got := x.Swap(11); got != 7 {
		t.Errorf("Swap(11) = %d, want 7", got)
	}
	if got := x.SwapAcqRel(13); got != 11 {
		t.Errorf("SwapAcqRel(13) = %d, want 11", got)
	}
	if got := x.Load(); got != 13 {
		t.Errorf("Load() = %d, want 13", got)
	}
}

// TestUnsignedWraparound verifies modulo-2^N arithmetic with no trap.
func TestUnsignedWraparound(t *testing.T) {
	t.Run("uint32 increment wraps to zero", func(t *testing.T) {
		var x Uint32
		x.Init(math.MaxUint32)
		x.Incr()
		if got := x.Load(); got != 0 {
			t.Errorf("Load() = %d, want 0", got)
		}
	})

	t.Run("uint32 decrement wraps to all ones", func(t *testing.T) {
		var x Uint32
		x.Init(0)
		if got := x.DecrNv(); got != math.MaxUint32 {
			t.Errorf("DecrNv() = %#x, want %#x", got, uint32(math.MaxUint32))
		}
	})

	t.Run("uint64 increment wraps to zero", func(t *testing.T) {
		var x Uint64
		x.Init(math.MaxUint64)
		if got := x.IncrNv(); got != 0 {
			t.Errorf("IncrNv() = %d, want 0", got)
		}
	})

	t.Run("uint64 sub wraps", func(t *testing.T) {
		var x Uint64
		x.Init(3)
		if got := x.SubNv(5); got != math.MaxUint64-1 {
			t.Errorf("SubNv(5) = %#x, want %#x", got, uint64(math.MaxUint64-1))
		}
	})
}

// TestSignedWraparound verifies two's-complement wrapping for the signed
// kinds.
func TestSignedWraparound(t *testing.T) {
	t.Run("int32 max increment wraps to min", func(t *testing.T) {
		var x Int32
		x.Init(math.MaxInt32)
		if got := x.IncrNv(); got != math.MinInt32 {
			t.Errorf("IncrNv() = %d, want %d", got, int32(math.MinInt32))
		}
	})

	t.Run("int64 min decrement wraps to max", func(t *testing.T) {
		var x Int64
		x.Init(math.MinInt64)
		if got := x.DecrNv(); got != math.MaxInt64 {
			t.Errorf("DecrNv() = %d, want %d", got, int64(math.MaxInt64))
		}
	})

	t.Run("int32 negative delta", func(t *testing.T) {
		var x Int32
		x.Init(10)
		if got := x.AddNv(-25); got != -15 {
			t.Errorf("AddNv(-25) = %d, want -15", got)
		}
		if got := x.SubNv(-5); got != -10 {
			t.Errorf("SubNv(-5) = %d, want -10", got)
		}
	})
}

// TestArithmeticForms checks the plain (no return) and Nv forms agree.
func TestArithmeticForms(t *testing.T) {
	var x Int64
	x.Init(100)

	x.Add(10)
	if got := x.Load(); got != 110 {
		t.Fatalf("after Add(10): Load() = %d, want 110", got)
	}
	x.Sub(20)
	if got := x.Load(); got != 90 {
		t.Fatalf("after Sub(20): Load() = %d, want 90", got)
	}
	x.Incr()
	x.Decr()
	x.Decr()
	if got := x.Load(); got != 89 {
		t.Fatalf("after Incr/Decr/Decr: Load() = %d, want 89", got)
	}
	if got := x.SubNv(89); got != 0 {
		t.Fatalf("SubNv(89) = %d, want 0", got)
	}
}

// TestBitOps verifies the fetch-And/Or/Xor supplements return the prior
// value and apply the mask.
func TestBitOps(t *testing.T) {
	tests := []struct {
		name    string
		init    uint32
		op      func(x *Uint32) uint32
		wantOld uint32
		wantNew uint32
	}{
		{
			name:    "and clears bits",
			init:    0xFF00FF00,
			op:      func(x *Uint32) uint32 { return x.And(0x0F0F0F0F) },
			wantOld: 0xFF00FF00,
			wantNew: 0x0F000F00,
		},
		{
			name:    "or sets bits",
			init:    0x00000001,
			op:      func(x *Uint32) uint32 { return x.Or(0x80000000) },
			wantOld: 0x00000001,
			wantNew: 0x80000001,
		},
		{
			name:    "xor toggles bits",
			init:    0xAAAAAAAA,
			op:      func(x *Uint32) uint32 { return x.Xor(0xFFFFFFFF) },
			wantOld: 0xAAAAAAAA,
			wantNew: 0x55555555,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var x Uint32
			x.Init(tt.init)
			if old := tt.op(&x); old != tt.wantOld {
				t.Errorf("old = %#x, want %#x", old, tt.wantOld)
			}
			if got := x.Load(); got != tt.wantNew {
				t.Errorf("Load() = %#x, want %#x", got, tt.wantNew)
			}
		})
	}

	t.Run("uint64", func(t *testing.T) {
		var x Uint64
		x.Init(0xFFFFFFFF00000000)
		if old := x.Xor(0xFFFFFFFFFFFFFFFF); old != 0xFFFFFFFF00000000 {
			t.Errorf("Xor old = %#x", old)
		}
		if got := x.Load(); got != 0x00000000FFFFFFFF {
			t.Errorf("Load() = %#x, want %#x", got, uint64(0x00000000FFFFFFFF))
		}
	})
}

// TestPointerCell verifies the typed pointer cell including nil handling
// and failed CAS.
func TestPointerCell(t *testing.T) {
	type node struct{ id int }

	var p Pointer[node]
	if got := p.Load(); got != nil {
		t.Fatalf("zero value Load() = %p, want nil", got)
	}

	a := &node{id: 1}
	b := &node{id: 2}

	p.Init(a)
	if got := p.Load(); got != a {
		t.Fatalf("Load() = %p, want %p", got, a)
	}

	if prev := p.CompareAndSwap(a, b); prev != a {
		t.Fatalf("CompareAndSwap(a, b) = %p, want %p", prev, a)
	}
	if prev := p.CompareAndSwap(a, nil); prev != b {
		t.Fatalf("CompareAndSwap(a, nil) = %p, want %p (unchanged)", prev, b)
	}
	if got := p.Load(); got != b {
		t.Fatalf("Load() = %p, want %p", got, b)
	}

	if old := p.Swap(nil); old != b {
		t.Fatalf("Swap(nil) = %p, want %p", old, b)
	}
	if got := p.Load(); got != nil {
		t.Fatalf("Load() = %p, want nil", got)
	}
}

// TestCell64Alignment verifies the 64-bit cell representation hands the
// backend an 8-byte-aligned address even when the cell sits at a hostile
// struct offset. On 64-bit targets this is the allocator's guarantee; on
// 32-bit targets it is the dynamically aligned window.
func TestCell64Alignment(t *testing.T) {
	type hostile struct {
		_ byte
		x Int64
		_ byte
		y Uint64
	}

	var h hostile
	if addr := uintptr(unsafe.Pointer(h.x.c.ptr())); addr%8 != 0 {
		t.Errorf("Int64 backend address %#x not 8-byte aligned", addr)
	}
	if addr := uintptr(unsafe.Pointer(h.y.c.ptr())); addr%8 != 0 {
		t.Errorf("Uint64 backend address %#x not 8-byte aligned", addr)
	}

	// The derived address must be stable across calls.
	if h.x.c.ptr() != h.x.c.ptr() {
		t.Error("Int64 backend address not stable")
	}

	h.x.Store(math.MaxInt64)
	if got := h.x.Load(); got != math.MaxInt64 {
		t.Errorf("hostile-offset Load() = %d, want %d", got, int64(math.MaxInt64))
	}
}

// TestInfo sanity-checks the compiled-in configuration report.
func TestInfo(t *testing.T) {
	info := GetInfo()
	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
	switch info.Backend {
	case "native", "serial":
		if info.Blocking {
			t.Errorf("backend %q reported blocking", info.Backend)
		}
	case "mutex":
		if !info.Blocking {
			t.Error("mutex backend reported non-blocking")
		}
	default:
		t.Errorf("unknown backend %q", info.Backend)
	}
}
