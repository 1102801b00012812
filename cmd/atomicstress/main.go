// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package main implements the atomicstress CLI tool.
//
// atomicstress exercises the atomicops library on the host it runs on:
//
//  1. Hammering cells from many goroutines and checking the
//     linearizability invariants (stress)
//  2. Replaying the single-threaded conformance sequences against the
//     compiled-in backend and the lock-table oracle (verify)
//  3. Reporting the selected backend and the host CPU's atomics
//     capabilities (doctor)
//
// Usage:
//
//	atomicstress stress [-workers N] [-iters M] [-json]
//	atomicstress verify
//	atomicstress doctor [-modfile path]
//
// Exit status is nonzero when any check fails, so the tool slots into CI
// for new ports: build with the port's GOOS/GOARCH (optionally with
// -tags=atomicops_mutex) and run stress and verify on the target.
package main

import (
	"fmt"
	"os"

	"github.com/kolkov/atomicops/atomic"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "stress":
		stressCommand(os.Args[2:])
	case "verify":
		verifyCommand(os.Args[2:])
	case "doctor":
		doctorCommand(os.Args[2:])
	case "version", "--version", "-v":
		info := atomic.GetInfo()
		fmt.Printf("atomicstress version %s (%s backend)\n", info.Version, info.Backend)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`atomicstress - atomicops backend validation tool

USAGE:
    atomicstress <command> [options]

COMMANDS:
    stress     Run concurrent linearizability workloads
    verify     Run conformance sequences against backend and oracle
    doctor     Report backend selection and CPU capabilities
    version    Print version information
    help       Show this message

OPTIONS (stress):
    -workers N   Concurrent goroutines (default GOMAXPROCS*2)
    -iters M     Operations per goroutine (default 100000)
    -json        Emit the report as JSON

OPTIONS (doctor):
    -modfile P   go.mod to check for toolchain compatibility (default ./go.mod)
`)
}
