// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report computes the Reynolds-number summary and prints the
// end-of-run console block.
package report

import (
	"syscall"
	"time"

	"github.com/cpmech/gosl/io"
)

// Result holds the end-of-run figures printed to the console.
type Result struct {
	Reynolds float64
	Elapsed  time.Duration
	UserTime time.Duration
	SysTime  time.Duration
}

// Reynolds computes U·L/ν, with U the final recorded average velocity,
// L the characteristic length (reynolds_dim) and ν=(2/ω-1)/6.
func Reynolds(avgVel []float32, reynoldsDim int, omega float32) float64 {
	if len(avgVel) == 0 {
		return 0
	}
	u := float64(avgVel[len(avgVel)-1])
	nu := (2/float64(omega) - 1) / 6
	return u * float64(reynoldsDim) / nu
}

// Compute assembles a Result from the simulation's average-velocity log,
// the wall-clock start time captured before Run, and the process's own
// resource usage (user/sys CPU time).
func Compute(avgVel []float32, reynoldsDim int, omega float32, start time.Time) Result {
	var usage syscall.Rusage
	var userTime, sysTime time.Duration
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &usage); err == nil {
		userTime = time.Duration(usage.Utime.Sec)*time.Second + time.Duration(usage.Utime.Usec)*time.Microsecond
		sysTime = time.Duration(usage.Stime.Sec)*time.Second + time.Duration(usage.Stime.Usec)*time.Microsecond
	}
	return Result{
		Reynolds: Reynolds(avgVel, reynoldsDim, omega),
		Elapsed:  time.Since(start),
		UserTime: userTime,
		SysTime:  sysTime,
	}
}

// Print writes the console report block in the same coloured-banner
// style gofem's main.go uses for progress messages.
func (r Result) Print() {
	io.PfWhite("\n==================== reynolds number ====================\n")
	io.Pf("Reynolds number:       %.12E\n", r.Reynolds)
	io.Pf("Elapsed (wall) time:   %v\n", r.Elapsed)
	io.Pf("User CPU time:         %v\n", r.UserTime)
	io.Pf("System CPU time:       %v\n", r.SysTime)
}
