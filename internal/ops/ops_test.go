// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Differential conformance: the active backend is checked operation by
// operation against the locktab oracle. Both run in this binary, so the
// same sequence is applied to a backend-owned cell and an oracle-owned
// cell and the observable results must match exactly. When the build is
// tagged atomicops_mutex the backend is the oracle and the test reduces to
// a self-check, which is still a valid (if weaker) run.

package ops

import (
	"math/rand"
	"testing"

	"github.com/kolkov/atomicops/internal/locktab"
)

// TestDifferentialUint32 replays a pseudo-random operation sequence
// through the backend and the oracle in lockstep.
func TestDifferentialUint32(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var got, want uint32
	StoreUint32(&got, 0xDEADBEEF)
	locktab.Store(&want, 0xDEADBEEF)

	for i := 0; i < 50000; i++ {
		arg := rng.Uint32()
		switch rng.Intn(8) {
		case 0:
			g, w := LoadUint32(&got), locktab.Load(&want)
			if g != w {
				t.Fatalf("op %d: Load: backend %#x, oracle %#x", i, g, w)
			}
		case 1:
			StoreUint32(&got, arg)
			locktab.Store(&want, arg)
		case 2:
			g, w := SwapUint32(&got, arg), locktab.Swap(&want, arg)
			if g != w {
				t.Fatalf("op %d: Swap(%#x): backend %#x, oracle %#x", i, arg, g, w)
			}
		case 3:
			g, w := AddUint32(&got, arg), locktab.Add(&want, arg)
			if g != w {
				t.Fatalf("op %d: Add(%#x): backend %#x, oracle %#x", i, arg, g, w)
			}
		case 4:
			// Half the attempts use the live value so both branches of
			// the CAS contract get exercised.
			old := arg
			if i%2 == 0 {
				old = locktab.Load(&want)
			}
			g := CompareAndSwapUint32(&got, old, arg^0x5A5A5A5A)
			w := locktab.CompareAndSwap(&want, old, arg^0x5A5A5A5A)
			if g != w {
				t.Fatalf("op %d: CAS(%#x): backend %#x, oracle %#x", i, old, g, w)
			}
		case 5:
			g, w := AndUint32(&got, arg), locktab.And(&want, arg)
			if g != w {
				t.Fatalf("op %d: And(%#x): backend %#x, oracle %#x", i, arg, g, w)
			}
		case 6:
			g, w := OrUint32(&got, arg), locktab.Or(&want, arg)
			if g != w {
				t.Fatalf("op %d: Or(%#x): backend %#x, oracle %#x", i, arg, g, w)
			}
		default:
			g, w := XorUint32(&got, arg), locktab.Xor(&want, arg)
			if g != w {
				t.Fatalf("op %d: Xor(%#x): backend %#x, oracle %#x", i, arg, g, w)
			}
		}
	}

	if g, w := LoadUint32(&got), locktab.Load(&want); g != w {
		t.Fatalf("final state: backend %#x, oracle %#x", g, w)
	}
}

// TestDifferentialUint64 is the 64-bit replay.
func TestDifferentialUint64(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	var got, want uint64

	for i := 0; i < 50000; i++ {
		arg := rng.Uint64()
		switch rng.Intn(6) {
		case 0:
			StoreUint64(&got, arg)
			locktab.Store(&want, arg)
		case 1:
			g, w := SwapUint64(&got, arg), locktab.Swap(&want, arg)
			if g != w {
				t.Fatalf("op %d: Swap: backend %#x, oracle %#x", i, g, w)
			}
		case 2:
			g, w := AddUint64(&got, arg), locktab.Add(&want, arg)
			if g != w {
				t.Fatalf("op %d: Add: backend %#x, oracle %#x", i, g, w)
			}
		case 3:
			old := arg
			if i%2 == 0 {
				old = locktab.Load(&want)
			}
			g := CompareAndSwapUint64(&got, old, ^arg)
			w := locktab.CompareAndSwap(&want, old, ^arg)
			if g != w {
				t.Fatalf("op %d: CAS: backend %#x, oracle %#x", i, g, w)
			}
		case 4:
			g, w := XorUint64(&got, arg), locktab.Xor(&want, arg)
			if g != w {
				t.Fatalf("op %d: Xor: backend %#x, oracle %#x", i, g, w)
			}
		default:
			g, w := LoadUint64(&got), locktab.Load(&want)
			if g != w {
				t.Fatalf("op %d: Load: backend %#x, oracle %#x", i, g, w)
			}
		}
	}
}

// TestCASReportsPrior pins the prev-returning contract at the backend
// level: success returns the expected value, failure returns the
// conflicting one and leaves the cell alone.
func TestCASReportsPrior(t *testing.T) {
	var v uint32
	StoreUint32(&v, 10)

	if prev := CompareAndSwapUint32(&v, 10, 20); prev != 10 {
		t.Fatalf("successful CAS returned %d, want 10", prev)
	}
	if prev := CompareAndSwapUint32(&v, 10, 30); prev != 20 {
		t.Fatalf("failed CAS returned %d, want 20", prev)
	}
	if got := LoadUint32(&v); got != 20 {
		t.Fatalf("cell = %d after failed CAS, want 20", got)
	}
}

// TestXorRetryLoop checks the CAS-loop Xor against its algebra: applying
// the same mask twice restores the value, and the returned old values
// chain correctly.
func TestXorRetryLoop(t *testing.T) {
	var v uint64
	StoreUint64(&v, 0x0123456789ABCDEF)

	const mask = 0xFFFF0000FFFF0000
	first := XorUint64(&v, mask)
	second := XorUint64(&v, mask)

	if first != 0x0123456789ABCDEF {
		t.Errorf("first Xor old = %#x", first)
	}
	if second != first^mask {
		t.Errorf("second Xor old = %#x, want %#x", second, first^mask)
	}
	if got := LoadUint64(&v); got != first {
		t.Errorf("double Xor did not restore: %#x, want %#x", got, first)
	}
}

// TestBackendName makes sure the compiled-in backend identifies itself as
// one of the known three.
func TestBackendName(t *testing.T) {
	switch Name {
	case "native", "serial", "mutex":
	default:
		t.Fatalf("unknown backend name %q", Name)
	}
	if Name == "mutex" && !Blocking {
		t.Error("mutex backend must report Blocking")
	}
}
