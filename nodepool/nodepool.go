// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nodepool provides a lock-free node pool for node-structured
// containers.
//
// A Pool hands out nodes for linked structures (lists, stacks, intrusive
// queues) and takes them back for reuse, so a container's steady-state
// churn stops allocating. The free list is a Treiber stack driven by
// compare-and-swap retry loops on an atomic pointer cell — the pool is a
// consumer of the atomic package, layered strictly above it.
//
// Each push allocates a fresh link cell around the recycled node. Link
// cells are never reused, so a link address cannot re-enter the stack
// while a concurrent pop still holds it, and the classic ABA failure of
// recycled Treiber stacks cannot occur. The payload nodes are what get
// recycled; the links are garbage-collected.
//
// All methods are safe for concurrent use and lock-free: a Get or Put
// retries only while some other goroutine's operation succeeds.
package nodepool

import "github.com/kolkov/atomicops/atomic"

// Node is a pooled payload cell. The pool owns a Node between Put and
// Get; callers own it in between and may use Value freely. A node handed
// to Put must no longer be referenced by its previous owner.
type Node[T any] struct {
	// Value is the payload. Get returns it zeroed.
	Value T
}

// link is a single-use free-list cell. Never recycled; see the package
// comment for why that is load-bearing.
type link[T any] struct {
	next *link[T]
	node *Node[T]
}

// Stats is a snapshot of a pool's counters. Counters are maintained with
// relaxed atomics and are individually exact but not mutually consistent.
type Stats struct {
	// Gets is the number of Get calls.
	Gets uint64

	// Puts is the number of Put calls.
	Puts uint64

	// Misses is the number of Get calls that allocated because the free
	// list was empty.
	Misses uint64
}

// Pool is a lock-free free list of nodes. The zero value is an empty,
// ready-to-use pool. A Pool must not be copied after first use.
type Pool[T any] struct {
	head atomic.Pointer[link[T]]

	gets   atomic.Uint64
	puts   atomic.Uint64
	misses atomic.Uint64
}

// New returns an empty pool.
func New[T any]() *Pool[T] {
	return &Pool[T]{}
}

// NewWithReserve returns a pool pre-populated with n nodes.
func NewWithReserve[T any](n int) *Pool[T] {
	p := New[T]()
	p.Reserve(n)
	return p
}

// Get returns a node with a zero Value, reusing a pooled node when one is
// available and allocating otherwise.
func (p *Pool[T]) Get() *Node[T] {
	p.gets.IncrRelaxed()

	for {
		top := p.head.LoadAcquire()
		if top == nil {
			p.misses.IncrRelaxed()
			return new(Node[T])
		}
		if p.head.CompareAndSwap(top, top.next) == top {
			n := top.node
			var zero T
			n.Value = zero
			return n
		}
	}
}

// Put returns a node to the pool for reuse. The caller must not touch n
// after Put returns.
func (p *Pool[T]) Put(n *Node[T]) {
	if n == nil {
		return
	}
	p.puts.IncrRelaxed()

	l := &link[T]{node: n}
	for {
		top := p.head.LoadAcquire()
		l.next = top
		if p.head.CompareAndSwap(top, l) == top {
			return
		}
	}
}

// Reserve pushes n freshly allocated nodes onto the free list, so the
// next n Get calls are allocation-free even under contention.
func (p *Pool[T]) Reserve(n int) {
	for i := 0; i < n; i++ {
		l := &link[T]{node: new(Node[T])}
		for {
			top := p.head.LoadAcquire()
			l.next = top
			if p.head.CompareAndSwap(top, l) == top {
				break
			}
		}
	}
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Gets:   p.gets.LoadRelaxed(),
		Puts:   p.puts.LoadRelaxed(),
		Misses: p.misses.LoadRelaxed(),
	}
}
