// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

import "github.com/cpmech/gosl/chk"

// Params holds the scalar simulation parameters read from the parameter
// file. It is immutable after being loaded by inp.ReadParams.
type Params struct {
	Nx          int // grid extent in x
	Ny          int // grid extent in y
	MaxIters    int // number of timesteps
	ReynoldsDim int // characteristic length used in the Reynolds number report
	Density     float32
	Accel       float32
	Omega       float32 // relaxation parameter; 0 < Omega < 2
}

// Check validates that Params describes a solvable problem. It panics via
// chk.Panic on any violation, in keeping with the fatal-at-init convention
// used throughout this program.
func (p *Params) Check() {
	if p.Nx <= 0 || p.Ny <= 0 {
		chk.Panic("nx and ny must be positive: nx=%d ny=%d", p.Nx, p.Ny)
	}
	if p.MaxIters <= 0 {
		chk.Panic("max_iters must be positive: %d", p.MaxIters)
	}
	if p.Omega <= 0 || p.Omega >= 2 {
		chk.Panic("omega must satisfy 0 < omega < 2: %v", p.Omega)
	}
}

// AccelDeltas returns the two accelerate-stage increments derived from
// density and accel: Δ₁ for the axis speeds and Δ₂ for the diagonal speeds.
func (p *Params) AccelDeltas() (d1, d2 float32) {
	d1 = p.Density * p.Accel / 9
	d2 = p.Density * p.Accel / 36
	return
}
