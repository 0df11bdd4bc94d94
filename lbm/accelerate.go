// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

// Accelerate injects momentum on the second-to-top row (y = ny-2) where
// the row is unobstructed. It mutates f in place, before streaming. The
// precondition is strict: a column is skipped unless f[3], f[6] and
// f[7] all remain strictly positive after the decrement.
func (g *Grid) Accelerate(p *Params) {
	d1, d2 := p.AccelDeltas()
	y := g.Ny - 2
	row := g.cellIndex(y, 0)
	for x := 0; x < g.Nx; x++ {
		cell := row + x
		if g.Obs[cell] {
			continue
		}
		iW, iNW, iSW := g.Index(SpeedW, y, x), g.Index(SpeedNW, y, x), g.Index(SpeedSW, y, x)
		if g.f[iW]-d1 <= 0 || g.f[iNW]-d2 <= 0 || g.f[iSW]-d2 <= 0 {
			continue
		}
		iE, iNE, iSE := g.Index(SpeedE, y, x), g.Index(SpeedNE, y, x), g.Index(SpeedSE, y, x)
		g.f[iE] += d1
		g.f[iW] -= d1
		g.f[iNE] += d2
		g.f[iSE] += d2
		g.f[iNW] -= d2
		g.f[iSW] -= d2
	}
}
