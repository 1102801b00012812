// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stress.go implements the 'atomicstress stress' command.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/sugawarayuuta/sonnet"
	"golang.org/x/sync/errgroup"

	"github.com/kolkov/atomicops/atomic"
)

// stressReport is the machine-readable result of one stress run.
type stressReport struct {
	Backend    string        `json:"backend"`
	Workers    int           `json:"workers"`
	Iters      int           `json:"iters_per_worker"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	OpsPerSec  float64       `json:"ops_per_sec"`
	Increments bool          `json:"increment_census_ok"`
	Swaps      bool          `json:"swap_partition_ok"`
	Failures   []string      `json:"failures,omitempty"`
}

// stressCommand implements the 'atomicstress stress' command.
//
// It runs the two concurrent linearizability workloads from the
// conformance suite at CLI-selectable scale:
//
//   - increment census: workers × iters IncrNv calls on one cell; the
//     final value and the multiset of returned values must both be exact.
//   - swap partition: every Swap must observe one of the two legal
//     values; the observation counts must sum to the call count.
func stressCommand(args []string) {
	fs := flag.NewFlagSet("stress", flag.ExitOnError)
	workers := fs.Int("workers", runtime.GOMAXPROCS(0)*2, "concurrent goroutines")
	iters := fs.Int("iters", 100000, "operations per goroutine")
	asJSON := fs.Bool("json", false, "emit the report as JSON")
	fs.Parse(args)

	if *workers < 1 || *iters < 1 {
		fmt.Fprintf(os.Stderr, "Error: -workers and -iters must be positive\n")
		os.Exit(1)
	}

	rep := stressReport{
		Backend: atomic.GetInfo().Backend,
		Workers: *workers,
		Iters:   *iters,
	}

	start := time.Now()

	if err := runIncrementCensus(*workers, *iters); err != nil {
		rep.Failures = append(rep.Failures, err.Error())
	} else {
		rep.Increments = true
	}

	if err := runSwapPartition(*workers, *iters); err != nil {
		rep.Failures = append(rep.Failures, err.Error())
	} else {
		rep.Swaps = true
	}

	rep.Elapsed = time.Since(start)
	totalOps := float64(*workers) * float64(*iters) * 2
	rep.OpsPerSec = totalOps / rep.Elapsed.Seconds()

	if *asJSON {
		out, err := sonnet.Marshal(rep)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	} else {
		fmt.Printf("backend: %s, workers: %d, iters: %d\n", rep.Backend, rep.Workers, rep.Iters)
		fmt.Printf("elapsed: %v (%.0f ops/sec)\n", rep.Elapsed, rep.OpsPerSec)
		fmt.Printf("increment census: %s\n", pass(rep.Increments))
		fmt.Printf("swap partition:   %s\n", pass(rep.Swaps))
		for _, f := range rep.Failures {
			fmt.Printf("  FAIL: %s\n", f)
		}
	}

	if len(rep.Failures) > 0 {
		os.Exit(1)
	}
}

func pass(ok bool) string {
	if ok {
		return "ok"
	}
	return "FAILED"
}

// runIncrementCensus checks that workers × iters IncrNv calls on one cell
// produce the exact value set {1, ..., workers×iters}.
func runIncrementCensus(workers, iters int) error {
	total := workers * iters

	var x atomic.Uint64
	x.Init(0)

	results := make([][]uint64, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			vals := make([]uint64, 0, iters)
			for i := 0; i < iters; i++ {
				vals = append(vals, x.IncrNv())
			}
			results[w] = vals
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if got := x.Load(); got != uint64(total) {
		return fmt.Errorf("increment census: final value %d, want %d", got, total)
	}

	seen := make([]bool, total+1)
	for _, vals := range results {
		for _, v := range vals {
			if v == 0 || v > uint64(total) {
				return fmt.Errorf("increment census: out-of-range value %d", v)
			}
			if seen[v] {
				return fmt.Errorf("increment census: value %d returned twice", v)
			}
			seen[v] = true
		}
	}
	return nil
}

// runSwapPartition checks that concurrent swaps between two sentinel
// values never observe anything else, and that observations account for
// every call.
func runSwapPartition(workers, iters int) error {
	const (
		v1 = uint64(0x1111111111111111)
		v2 = uint64(0x2222222222222222)
	)

	var x atomic.Uint64
	x.Init(v1)

	counts := make([][2]int, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			var c [2]int
			for i := 0; i < iters; i++ {
				next := v1
				if i%2 == 0 {
					next = v2
				}
				switch old := x.Swap(next); old {
				case v1:
					c[0]++
				case v2:
					c[1]++
				default:
					return fmt.Errorf("swap partition: observed torn value %#x", old)
				}
			}
			counts[w] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sum := 0
	for _, c := range counts {
		sum += c[0] + c[1]
	}
	if want := workers * iters; sum != want {
		return fmt.Errorf("swap partition: %d observations, want %d", sum, want)
	}
	return nil
}
