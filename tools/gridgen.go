// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

// gridgen writes a parameter file and an obstacle file describing a
// rectangular channel, optionally with a centred square obstacle of side
// ObstSide. It reads no command-line flags: the values are set in main,
// where ObstSide is 0, so the obstacle file is written empty. Run with:
// go run tools/gridgen.go
package main

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

type Input struct {
	Nx, Ny     int
	MaxIters   int
	ReynoldsD  int
	Density    float64
	Accel      float64
	Omega      float64
	ObstSide   int
	ParamFn    string
	ObstacleFn string
}

func (o Input) String() (l string) {
	l = io.ArgsTable("GRIDGEN ARGUMENTS",
		"grid width", "Nx", o.Nx,
		"grid height", "Ny", o.Ny,
		"number of timesteps", "MaxIters", o.MaxIters,
		"Reynolds characteristic length", "ReynoldsD", o.ReynoldsD,
		"fluid density", "Density", o.Density,
		"acceleration", "Accel", o.Accel,
		"relaxation parameter", "Omega", o.Omega,
		"side of the centred square obstacle (0 disables it)", "ObstSide", o.ObstSide,
		"parameter file to write", "ParamFn", o.ParamFn,
		"obstacle file to write", "ObstacleFn", o.ObstacleFn,
	)
	return
}

func main() {
	o := Input{
		Nx: 256, Ny: 256, MaxIters: 20000, ReynoldsD: 256,
		Density: 0.1, Accel: 0.005, Omega: 1.0,
		ObstSide: 0, ParamFn: "params.dat", ObstacleFn: "obstacles.dat",
	}
	io.Pf("%v", o)

	if o.Nx <= 0 || o.Ny <= 0 {
		chk.Panic("Nx and Ny must be positive")
	}

	var params bytes.Buffer
	io.Ff(&params, "%d %d %d %d %.12E %.12E %.12E\n",
		o.Nx, o.Ny, o.MaxIters, o.ReynoldsD, o.Density, o.Accel, o.Omega)
	io.WriteFileV(o.ParamFn, &params)

	var obst bytes.Buffer
	if o.ObstSide > 0 {
		x0 := o.Nx/2 - o.ObstSide/2
		y0 := o.Ny/2 - o.ObstSide/2
		for y := y0; y < y0+o.ObstSide; y++ {
			for x := x0; x < x0+o.ObstSide; x++ {
				io.Ff(&obst, "%d %d 1\n", x, y)
			}
		}
	}
	io.WriteFileV(o.ObstacleFn, &obst)

	io.Pf("> wrote %s and %s\n", o.ParamFn, o.ObstacleFn)
}
