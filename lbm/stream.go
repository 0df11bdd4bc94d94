// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

// streamRows propagates every speed from its upstream neighbour under
// periodic wrap, for rows [y0,y1), writing into fPrime. For fluid cells it
// additionally computes and caches the local density and velocity. The
// caches for solid cells are left stale; callers must not read them.
func (g *Grid) streamRows(y0, y1 int) {
	nx, ny := g.Nx, g.Ny
	for y := y0; y < y1; y++ {
		yn := (y + 1) % ny
		ys := (y - 1 + ny) % ny
		for x := 0; x < nx; x++ {
			xe := (x + 1) % nx
			xw := (x - 1 + nx) % nx

			dst := g.cellIndex(y, x)
			f0 := g.f[g.Index(SpeedRest, y, x)]
			f1 := g.f[g.Index(SpeedE, y, xw)]
			f2 := g.f[g.Index(SpeedN, ys, x)]
			f3 := g.f[g.Index(SpeedW, y, xe)]
			f4 := g.f[g.Index(SpeedS, yn, x)]
			f5 := g.f[g.Index(SpeedNE, ys, xw)]
			f6 := g.f[g.Index(SpeedNW, ys, xe)]
			f7 := g.f[g.Index(SpeedSW, yn, xe)]
			f8 := g.f[g.Index(SpeedSE, yn, xw)]

			g.fPrime[SpeedRest*g.N+dst] = f0
			g.fPrime[SpeedE*g.N+dst] = f1
			g.fPrime[SpeedN*g.N+dst] = f2
			g.fPrime[SpeedW*g.N+dst] = f3
			g.fPrime[SpeedS*g.N+dst] = f4
			g.fPrime[SpeedNE*g.N+dst] = f5
			g.fPrime[SpeedNW*g.N+dst] = f6
			g.fPrime[SpeedSW*g.N+dst] = f7
			g.fPrime[SpeedSE*g.N+dst] = f8

			if g.Obs[dst] {
				continue
			}
			rho := f0 + f1 + f2 + f3 + f4 + f5 + f6 + f7 + f8
			g.rho[dst] = rho
			g.ux[dst] = ((f1 + f5 + f8) - (f3 + f6 + f7)) / rho
			g.uy[dst] = ((f2 + f5 + f6) - (f4 + f7 + f8)) / rho
		}
	}
}
