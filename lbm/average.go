// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

// averagePartial sums |u| over the fluid cells of rows [y0,y1), recomputing
// rho, ux and uy from the freshly-collided f (the streaming-stage scratch
// is stale here, since collide rewrote f).
func (g *Grid) averagePartial(y0, y1 int) float32 {
	n := g.N
	var sum float32
	for y := y0; y < y1; y++ {
		for x := 0; x < g.Nx; x++ {
			cell := g.cellIndex(y, x)
			if g.Obs[cell] {
				continue
			}
			f0 := g.f[SpeedRest*n+cell]
			f1 := g.f[SpeedE*n+cell]
			f2 := g.f[SpeedN*n+cell]
			f3 := g.f[SpeedW*n+cell]
			f4 := g.f[SpeedS*n+cell]
			f5 := g.f[SpeedNE*n+cell]
			f6 := g.f[SpeedNW*n+cell]
			f7 := g.f[SpeedSW*n+cell]
			f8 := g.f[SpeedSE*n+cell]
			rho := f0 + f1 + f2 + f3 + f4 + f5 + f6 + f7 + f8
			ux := ((f1 + f5 + f8) - (f3 + f6 + f7)) / rho
			uy := ((f2 + f5 + f6) - (f4 + f7 + f8)) / rho
			sum += fastSqrt(ux*ux + uy*uy)
		}
	}
	return sum
}
