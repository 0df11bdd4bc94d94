// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

import "github.com/cpmech/gosl/chk"

// Simulation drives the fixed-count timestep loop: accelerate, stream,
// collide/bounce-back, reduce. It owns the Grid and the per-timestep
// average-velocity log.
type Simulation struct {
	Params *Params
	Grid   *Grid
	AvgVel []float32 // length Params.MaxIters, filled append-only by Run

	pool *workerPool
}

// NewSimulation builds a Simulation ready to Run, allocating the grid and
// the worker pool once. nworkers <= 0 selects defaultWorkerCount().
func NewSimulation(p *Params, obs []bool, nworkers int) *Simulation {
	p.Check()
	if nworkers <= 0 {
		nworkers = defaultWorkerCount()
	}
	return &Simulation{
		Params: p,
		Grid:   NewGrid(p.Nx, p.Ny, obs, p.Density),
		AvgVel: make([]float32, 0, p.MaxIters),
		pool:   newWorkerPool(p.Ny, nworkers),
	}
}

// Run advances the simulation for Params.MaxIters timesteps. Each
// timestep is: accelerate (serial, touches only the second-to-top row);
// stream+moments, collide/bounce-back and the average-velocity reduction
// (each row-parallel and barrier-separated from the next). It panics via
// chk.Panic if the fluid-cell count is zero, since every other invariant
// of the simulation depends on there being fluid to move.
func (s *Simulation) Run() {
	if s.Grid.FluidCount == 0 {
		chk.Panic("grid has no fluid cells; nothing to simulate")
	}
	for t := 0; t < s.Params.MaxIters; t++ {
		s.Grid.Accelerate(s.Params)
		s.pool.run(s.Grid.streamRows)
		s.pool.run(func(y0, y1 int) { s.Grid.collideRows(s.Params, y0, y1) })
		total := s.pool.reduce(s.Grid.averagePartial)
		s.AvgVel = append(s.AvgVel, total/float32(s.Grid.FluidCount))
	}
}
