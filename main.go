// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/lbflow/inp"
	"github.com/cpmech/lbflow/lbm"
	"github.com/cpmech/lbflow/out"
	"github.com/cpmech/lbflow/report"
)

func main() {
	io.PfWhite("\nlbflow -- D2Q9 lattice Boltzmann channel flow\n\n")
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

// run parses the command line, reads the parameter and obstacle files,
// runs the simulation and writes the output files. It is the library
// entry point behind main(), kept separate so tests can drive a full
// run, including the missing-parameter-file case, without spawning a
// subprocess. Any fatal condition surfaces as a returned error; nothing
// in this program calls os.Exit except main() itself.
func run(args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	fs := flag.NewFlagSet("lbflow", flag.ContinueOnError)
	nworkers := fs.Int("workers", 0, "number of row-parallel workers; 0 selects GOMAXPROCS")
	if e := fs.Parse(args); e != nil {
		return e
	}
	if fs.NArg() < 2 {
		chk.Panic("Please, provide a parameter file and an obstacle file. Ex.: lbflow params.dat obstacles.dat")
	}
	paramFile := fs.Arg(0)
	obstacleFile := fs.Arg(1)

	// profiling?
	defer utl.DoProf(false)()

	// read input data
	p := inp.ReadParams(paramFile)
	obs := inp.ReadObstacles(obstacleFile, p.Nx, p.Ny)
	io.Pf("> parameter file read: nx=%d ny=%d max_iters=%d\n", p.Nx, p.Ny, p.MaxIters)

	// run simulation
	start := time.Now()
	sim := lbm.NewSimulation(p, obs, *nworkers)
	sim.Run()
	io.Pf("> simulation complete\n")

	// write output files
	out.WriteFinalState("final_state.dat", p, sim.Grid)
	out.WriteAvgVels("av_vels.dat", sim.AvgVel)
	io.Pf("> wrote final_state.dat and av_vels.dat\n")

	// console report
	rep := report.Compute(sim.AvgVel, p.ReynoldsDim, p.Omega, start)
	rep.Print()
	return nil
}
