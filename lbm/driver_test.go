// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_driver01 runs a small empty-channel simulation and checks that
// total density is preserved and no NaN/Inf leaks into the output.
func Test_driver01(tst *testing.T) {

	chk.PrintTitle("driver01: small channel runs stably")

	nx, ny := 16, 16
	obs := make([]bool, nx*ny)
	p := &Params{Nx: nx, Ny: ny, MaxIters: 50, ReynoldsDim: nx, Density: 0.1, Accel: 0.005, Omega: 1.7}
	sim := NewSimulation(p, obs, 2)

	var before float32
	for _, v := range sim.Grid.f {
		before += v
	}

	sim.Run()

	if len(sim.AvgVel) != p.MaxIters {
		tst.Errorf("expected %d recorded timesteps, got %d", p.MaxIters, len(sim.AvgVel))
	}
	for t, v := range sim.AvgVel {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			tst.Errorf("avg velocity at t=%d is not finite: %v", t, v)
		}
	}

	var after float32
	for _, v := range sim.Grid.f {
		after += v
	}
	rel := float64(after-before) / float64(before)
	if rel < 0 {
		rel = -rel
	}
	if rel >= 1e-4 {
		tst.Errorf("density not conserved over run: relative error %v", rel)
	}
}

// Test_driver02 checks determinism: two runs with identical inputs
// produce byte-identical AvgVel sequences.
func Test_driver02(tst *testing.T) {

	chk.PrintTitle("driver02: determinism across repeated runs")

	nx, ny := 12, 12
	newObs := func() []bool {
		obs := make([]bool, nx*ny)
		obs[5*nx+6] = true
		return obs
	}
	p := &Params{Nx: nx, Ny: ny, MaxIters: 30, ReynoldsDim: nx, Density: 0.2, Accel: 0.004, Omega: 1.2}

	sim1 := NewSimulation(p, newObs(), 3)
	sim1.Run()
	sim2 := NewSimulation(p, newObs(), 3)
	sim2.Run()

	for t := range sim1.AvgVel {
		if sim1.AvgVel[t] != sim2.AvgVel[t] {
			tst.Errorf("avg velocity mismatch at t=%d: %v != %v", t, sim1.AvgVel[t], sim2.AvgVel[t])
		}
	}
}

// Test_driver03 checks that a fully blocked accelerate row makes a call
// to Accelerate leave the distribution at that row unchanged.
func Test_driver03(tst *testing.T) {

	chk.PrintTitle("driver03: fully blocked accelerate row is a no-op")

	nx, ny := 10, 10
	obs := make([]bool, nx*ny)
	for x := 0; x < nx; x++ {
		obs[(ny-2)*nx+x] = true
	}
	p := &Params{Nx: nx, Ny: ny, MaxIters: 5, ReynoldsDim: nx, Density: 0.1, Accel: 0.01, Omega: 1.0}
	sim := NewSimulation(p, obs, 1)

	row := (ny - 2) * nx
	before := make([]float32, NSpeeds)
	for k := 0; k < NSpeeds; k++ {
		before[k] = sim.Grid.f[k*sim.Grid.N+row]
	}
	sim.Grid.Accelerate(p)
	for k := 0; k < NSpeeds; k++ {
		chk.Scalar(tst, "blocked row unchanged", 1e-15, float64(sim.Grid.f[k*sim.Grid.N+row]), float64(before[k]))
	}
}
