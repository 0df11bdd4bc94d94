// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

import "github.com/cpmech/gosl/chk"

// NSpeeds is the number of discrete velocities in the D2Q9 lattice.
const NSpeeds = 9

// Speed indexing (fixed physical meaning):
//
//	0=rest; 1=+x, 2=+y, 3=-x, 4=-y; 5=(+x,+y), 6=(-x,+y), 7=(-x,-y), 8=(+x,-y)
const (
	SpeedRest = iota
	SpeedE
	SpeedN
	SpeedW
	SpeedS
	SpeedNE
	SpeedNW
	SpeedSW
	SpeedSE
)

// CellSpeeds gives the (ex, ey) lattice vector for each speed index.
var CellSpeeds = [NSpeeds][2]int{
	{0, 0},
	{1, 0}, {0, 1}, {-1, 0}, {0, -1},
	{1, 1}, {-1, 1}, {-1, -1}, {1, -1},
}

// equilibrium weights and speed of sound squared, per the D2Q9 lattice.
const (
	w0     = float32(4.0 / 9.0)
	wAxis  = float32(1.0 / 9.0)
	wDiag  = float32(1.0 / 36.0)
	CSSq   = float32(1.0 / 3.0) // c_s², the lattice speed of sound squared
	invCs2 = float32(3.0)
)

// weights indexed the same way as CellSpeeds.
var weights = [NSpeeds]float32{w0, wAxis, wAxis, wAxis, wAxis, wDiag, wDiag, wDiag, wDiag}

// bouncePair maps a speed to its opposite (bounce-back partner): 1<->3,
// 2<->4, 5<->7, 6<->8; 0 maps to itself but is never written for solids.
var bouncePair = [NSpeeds]int{0, 3, 4, 1, 2, 7, 8, 5, 6}

// Grid owns the distribution buffer, its shadow, the obstacle mask and the
// per-timestep scratch used by the moment computation. f and fPrime share
// a speed-major, then row-major layout: linear index k*N + y*nx + x.
// After a full timestep the authoritative state is always back in f;
// fPrime is written during streaming and consumed during
// collide/bounce-back.
type Grid struct {
	Nx, Ny int
	N      int // Nx*Ny

	f      []float32 // NSpeeds*N
	fPrime []float32 // NSpeeds*N

	Obs        []bool // N, row-major (y,x)
	FluidCount int

	// scratch, valid only for fluid cells, refreshed every timestep by streamRows
	rho []float32 // N
	ux  []float32 // N
	uy  []float32 // N
}

// NewGrid allocates a Grid of the given extent and obstacle mask, and
// initialises every cell to the uniform rest distribution:
// f[0]=4ρ/9, f[1..4]=ρ/9, f[5..8]=ρ/36.
func NewGrid(nx, ny int, obs []bool, density float32) *Grid {
	if len(obs) != nx*ny {
		chk.Panic("obstacle mask length %d does not match nx*ny=%d", len(obs), nx*ny)
	}
	n := nx * ny
	g := &Grid{
		Nx: nx, Ny: ny, N: n,
		f:      make([]float32, NSpeeds*n),
		fPrime: make([]float32, NSpeeds*n),
		Obs:    obs,
		rho:    make([]float32, n),
		ux:     make([]float32, n),
		uy:     make([]float32, n),
	}
	for _, solid := range obs {
		if !solid {
			g.FluidCount++
		}
	}
	for cell := 0; cell < n; cell++ {
		g.f[SpeedRest*n+cell] = 4 * density / 9
		for k := 1; k <= 4; k++ {
			g.f[k*n+cell] = density / 9
		}
		for k := 5; k <= 8; k++ {
			g.f[k*n+cell] = density / 36
		}
	}
	return g
}

// Index returns the linear offset of speed k at row y, column x.
func (g *Grid) Index(k, y, x int) int {
	return k*g.N + y*g.Nx + x
}

// cellIndex returns the linear offset of row y, column x in a per-cell
// (non-speed-major) scratch buffer such as Obs, rho, ux or uy.
func (g *Grid) cellIndex(y, x int) int {
	return y*g.Nx + x
}

// Fvalue returns the current (post-timestep) value of speed k at the
// given row-major cell index. It exists so that out-of-package code such
// as the final-state writer can read the authoritative distribution
// without reaching into the unexported f slice.
func (g *Grid) Fvalue(k, cell int) float32 {
	return g.f[k*g.N+cell]
}
