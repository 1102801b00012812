// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// doctor.go implements the 'atomicstress doctor' command.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/semver"
	"golang.org/x/sys/cpu"

	"github.com/kolkov/atomicops/atomic"
)

// minGoVersion is the oldest go directive the native backend supports:
// the fetch-And/Or intrinsics it delegates to appeared in Go 1.23.
const minGoVersion = "v1.23"

// doctorCommand implements the 'atomicstress doctor' command.
//
// It reports which backend this binary was built with, what the host CPU
// offers for atomic read-modify-write, and whether the project's go.mod
// (if one is present) declares a toolchain new enough for the native
// backend's intrinsics.
func doctorCommand(args []string) {
	fs := flag.NewFlagSet("doctor", flag.ExitOnError)
	modPath := fs.String("modfile", "go.mod", "go.mod to check for toolchain compatibility")
	fs.Parse(args)

	info := atomic.GetInfo()
	fmt.Printf("atomicops %s\n", info.Version)
	fmt.Printf("target:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("backend:  %s", info.Backend)
	if info.Blocking {
		fmt.Print(" (blocking: lock-table fallback)")
	}
	fmt.Println()

	reportCPU()

	if err := checkModFile(*modPath); err != nil {
		fmt.Fprintf(os.Stderr, "go.mod:   %v\n", err)
		os.Exit(1)
	}
}

// reportCPU prints the host's atomics-relevant capabilities. Only the
// features that change which instruction sequences the native backend's
// intrinsics lower to are worth reporting.
func reportCPU() {
	switch runtime.GOARCH {
	case "arm64":
		fmt.Printf("cpu:      LSE atomics: %v (false means LL/SC loops)\n",
			cpu.ARM64.HasATOMICS)
	case "amd64", "386":
		// LOCK-prefixed RMW is baseline on x86; CMPXCHG16B only matters
		// to double-width consumers, reported for completeness.
		fmt.Printf("cpu:      CMPXCHG16B: %v\n", cpu.X86.HasCX16)
	default:
		fmt.Printf("cpu:      no feature probes for %s\n", runtime.GOARCH)
	}
}

// checkModFile parses path and verifies its go directive is at least
// minGoVersion. A missing file is not an error — doctor may run outside
// any module.
func checkModFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("go.mod:   none found at %s (skipped)\n", path)
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	mf, err := modfile.Parse(path, data, nil)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if mf.Go == nil {
		return fmt.Errorf("%s has no go directive", path)
	}

	have := "v" + mf.Go.Version
	if semver.Compare(have, minGoVersion) < 0 {
		return fmt.Errorf("go directive %s predates %s; the native backend needs the Go 1.23 atomic intrinsics",
			mf.Go.Version, minGoVersion[1:])
	}

	name := path
	if mf.Module != nil {
		name = mf.Module.Mod.Path
	}
	fmt.Printf("go.mod:   %s (go %s) ok\n", name, mf.Go.Version)
	return nil
}
