// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

import (
	"runtime"
	"sync"
)

// workerPool partitions [0,ny) into contiguous row bands, one per
// goroutine, and runs each of the per-timestep stages as a barrier: no
// band may begin stage S+1 before every band has finished stage S. This
// generalises the processor-partitioning idiom (knowing your rank and the
// total count) to a single node with goroutines in place of MPI ranks —
// multi-node distribution remains out of scope.
type workerPool struct {
	nbands int
	bounds [][2]int // [y0,y1) per band
}

// newWorkerPool splits ny rows across min(nworkers, ny) bands of
// near-equal size. Bands are listed in ascending row order so that any
// reduction over bands in band order reproduces the same floating-point
// sum on every run.
func newWorkerPool(ny, nworkers int) *workerPool {
	if nworkers < 1 {
		nworkers = 1
	}
	if nworkers > ny {
		nworkers = ny
	}
	p := &workerPool{nbands: nworkers, bounds: make([][2]int, nworkers)}
	base := ny / nworkers
	rem := ny % nworkers
	y := 0
	for i := 0; i < nworkers; i++ {
		size := base
		if i < rem {
			size++
		}
		p.bounds[i] = [2]int{y, y + size}
		y += size
	}
	return p
}

// defaultWorkerCount mirrors GOMAXPROCS, the idiomatic stand-in for the
// teacher's Nproc field now that MPI ranks are gone.
func defaultWorkerCount() int {
	return runtime.GOMAXPROCS(0)
}

// run executes fn once per band, concurrently, and blocks until every
// band has returned — the barrier between successive timestep stages.
func (p *workerPool) run(fn func(y0, y1 int)) {
	var wg sync.WaitGroup
	wg.Add(p.nbands)
	for _, b := range p.bounds {
		y0, y1 := b[0], b[1]
		go func() {
			defer wg.Done()
			fn(y0, y1)
		}()
	}
	wg.Wait()
}

// reduce executes fn once per band, concurrently, collects each band's
// partial result, and sums them in ascending band order — a deterministic
// reduction tree, never an unordered atomic accumulate.
func (p *workerPool) reduce(fn func(y0, y1 int) float32) float32 {
	partials := make([]float32, p.nbands)
	var wg sync.WaitGroup
	wg.Add(p.nbands)
	for i, b := range p.bounds {
		i, y0, y1 := i, b[0], b[1]
		go func() {
			defer wg.Done()
			partials[i] = fn(y0, y1)
		}()
	}
	wg.Wait()
	var total float32
	for _, v := range partials {
		total += v
	}
	return total
}
