// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

// collideRows applies bounce-back at solid cells and BGK relaxation
// toward equilibrium at fluid cells, for rows [y0,y1), writing the
// result back into f from fPrime. f[0] at solid cells is left
// untouched and so keeps its initial value: streaming copies it only
// into the same cell's fPrime[0], which the solid branch here does not
// read, and no other stage reads f[0] of a solid cell.
func (g *Grid) collideRows(p *Params, y0, y1 int) {
	n := g.N
	for y := y0; y < y1; y++ {
		for x := 0; x < g.Nx; x++ {
			cell := g.cellIndex(y, x)
			if g.Obs[cell] {
				for k := 1; k <= 4; k++ {
					g.f[k*n+cell] = g.fPrime[bouncePair[k]*n+cell]
				}
				for k := 5; k <= 8; k++ {
					g.f[k*n+cell] = g.fPrime[bouncePair[k]*n+cell]
				}
				continue
			}

			rho, ux, uy := g.rho[cell], g.ux[cell], g.uy[cell]
			uSq := ux*ux + uy*uy
			for k := 0; k < NSpeeds; k++ {
				ex, ey := float32(CellSpeeds[k][0]), float32(CellSpeeds[k][1])
				eu := ex*ux + ey*uy
				feq := weights[k] * rho * (1 + invCs2*eu + 4.5*eu*eu - 1.5*uSq)
				idx := k*n + cell
				g.f[idx] = g.fPrime[idx] + p.Omega*(feq-g.fPrime[idx])
			}
		}
	}
}
