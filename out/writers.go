// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out implements the final-state and average-velocity file
// writers.
package out

import (
	"bytes"
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/lbflow/lbm"
)

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// WriteFinalState writes one line per cell, in row-major (y,x) order:
// "x y u_x u_y |u| pressure obstacle_flag", floats in %.12E form with LF
// terminators. Solid cells report u_x=u_y=|u|=0 and
// pressure=density*c_s²; fluid cells recompute (ρ,u) from the final f.
func WriteFinalState(fnpath string, p *lbm.Params, g *lbm.Grid) {
	var buf bytes.Buffer
	for y := 0; y < g.Ny; y++ {
		for x := 0; x < g.Nx; x++ {
			cell := y*g.Nx + x
			if g.Obs[cell] {
				io.Ff(&buf, "%d %d %.12E %.12E %.12E %.12E %d\n",
					x, y, 0.0, 0.0, 0.0, float64(p.Density*lbm.CSSq), 1)
				continue
			}
			var f [lbm.NSpeeds]float32
			for k := 0; k < lbm.NSpeeds; k++ {
				f[k] = g.Fvalue(k, cell)
			}
			rho := f[0] + f[1] + f[2] + f[3] + f[4] + f[5] + f[6] + f[7] + f[8]
			ux := ((f[1] + f[5] + f[8]) - (f[3] + f[6] + f[7])) / rho
			uy := ((f[2] + f[5] + f[6]) - (f[4] + f[7] + f[8])) / rho
			speed := sqrt32(ux*ux + uy*uy)
			pressure := rho * lbm.CSSq
			io.Ff(&buf, "%d %d %.12E %.12E %.12E %.12E %d\n",
				x, y, float64(ux), float64(uy), float64(speed), float64(pressure), 0)
		}
	}
	io.WriteFileV(fnpath, &buf)
}

// WriteAvgVels writes one line per timestep, "t:\t<avg>", floats in
// %.12E form.
func WriteAvgVels(fnpath string, avg []float32) {
	var buf bytes.Buffer
	for t, v := range avg {
		io.Ff(&buf, "%d:\t%.12E\n", t, float64(v))
	}
	io.WriteFileV(fnpath, &buf)
}
