// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_stream01 checks the periodic-wrap source mapping on a uniform
// field: every cell should end up with the same nine values it started
// with, since the field has no spatial variation to propagate.
func Test_stream01(tst *testing.T) {

	chk.PrintTitle("stream01: uniform field is a fixed point")

	nx, ny := 6, 5
	obs := make([]bool, nx*ny)
	density := float32(1.0)
	g := NewGrid(nx, ny, obs, density)

	g.streamRows(0, ny)

	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			cell := g.cellIndex(y, x)
			chk.Scalar(tst, "ux", 1e-12, float64(g.ux[cell]), 0.0)
			chk.Scalar(tst, "uy", 1e-12, float64(g.uy[cell]), 0.0)
			chk.Scalar(tst, "rho", 1e-6, float64(g.rho[cell]), float64(density))
			for k := 0; k < NSpeeds; k++ {
				chk.Scalar(tst, "f'", 1e-6, float64(g.fPrime[g.Index(k, y, x)]), float64(g.f[g.Index(k, y, x)]))
			}
		}
	}
}

// Test_stream02 checks that a single perturbed speed at one cell arrives
// at exactly the neighbour the D2Q9 lattice vector predicts.
func Test_stream02(tst *testing.T) {

	chk.PrintTitle("stream02: single perturbation propagates to the right neighbour")

	nx, ny := 5, 5
	obs := make([]bool, nx*ny)
	g := NewGrid(nx, ny, obs, 1.0)

	y0, x0 := 2, 2
	bump := float32(0.05)
	g.f[g.Index(SpeedE, y0, x0)] += bump // +x speed should move to x0+1

	g.streamRows(0, ny)

	xe := (x0 + 1) % nx
	got := g.fPrime[g.Index(SpeedE, y0, xe)]
	want := g.f[g.Index(SpeedE, y0, x0)]
	chk.Scalar(tst, "f1 arrived east", 1e-6, float64(got), float64(want))
}

// Test_stream03 checks density conservation under streaming alone:
// summing fPrime over all k and cells equals the pre-stream total, since
// streaming only relabels where each population lives.
func Test_stream03(tst *testing.T) {

	chk.PrintTitle("stream03: streaming conserves total density")

	nx, ny := 10, 7
	obs := make([]bool, nx*ny)
	obs[3*nx+4] = true
	g := NewGrid(nx, ny, obs, 1.3)

	var before float32
	for _, v := range g.f {
		before += v
	}
	g.streamRows(0, ny)
	var after float32
	for _, v := range g.fPrime {
		after += v
	}
	chk.Scalar(tst, "total density", 1e-3, float64(after), float64(before))
}
