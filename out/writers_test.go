// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/lbflow/lbm"
)

// Test_writers01 checks that WriteFinalState emits one line per cell, and
// that the second line, in row-major order, is the solid cell (1,0) with
// obstacle flag 1.
func Test_writers01(tst *testing.T) {

	chk.PrintTitle("writers01: final state line count and solid-cell fields")

	nx, ny := 3, 2
	obs := make([]bool, nx*ny)
	obs[1] = true // (x=1,y=0)
	p := &lbm.Params{Nx: nx, Ny: ny, Density: 1.0}
	g := lbm.NewGrid(nx, ny, obs, p.Density)

	path := filepath.Join(tst.TempDir(), "final_state.dat")
	WriteFinalState(path, p, g)

	f, err := os.Open(path)
	if err != nil {
		tst.Fatalf("cannot open written file: %v", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	chk.IntAssert(len(lines), nx*ny)

	fields := strings.Fields(lines[1]) // x=1,y=0 -> second cell in row-major order
	if fields[0] != "1" || fields[1] != "0" {
		tst.Errorf("expected solid-cell line for (1,0), got %q", lines[1])
	}
	if fields[6] != "1" {
		tst.Errorf("expected obstacle flag 1, got %q", fields[6])
	}
}

// Test_writers02 checks that WriteAvgVels emits one "t:\t<value>" line
// per timestep, in order.
func Test_writers02(tst *testing.T) {

	chk.PrintTitle("writers02: average-velocity file format")

	avg := []float32{0.001, 0.002, 0.0035}
	path := filepath.Join(tst.TempDir(), "av_vels.dat")
	WriteAvgVels(path, avg)

	f, err := os.Open(path)
	if err != nil {
		tst.Fatalf("cannot open written file: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		line := scanner.Text()
		want := io.Sf("%d:\t", lineno)
		if !strings.HasPrefix(line, want) {
			tst.Errorf("line %d: expected prefix %q, got %q", lineno, want, line)
		}
		lineno++
	}
	chk.IntAssert(lineno, len(avg))
}
