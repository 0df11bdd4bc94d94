// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp reads the parameter and obstacle files that configure a
// lattice Boltzmann run.
package inp

import (
	"bufio"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/lbflow/lbm"
)

// ReadParams reads the seven whitespace/newline-separated tokens of the
// parameter file, in order: nx, ny, max_iters, reynolds_dim, density,
// accel, omega. Any deviation — missing file, too few tokens, a token
// that is not a number — is fatal.
func ReadParams(fnpath string) *lbm.Params {
	file, err := os.Open(fnpath)
	if err != nil {
		chk.Panic("ReadParams: cannot open parameter file %q:\n%v", fnpath, err)
	}
	defer file.Close()

	var tokens []string
	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		chk.Panic("ReadParams: cannot read parameter file %q:\n%v", fnpath, err)
	}
	if len(tokens) != 7 {
		chk.Panic("ReadParams: %q must contain exactly 7 tokens (nx ny max_iters reynolds_dim density accel omega); found %d", fnpath, len(tokens))
	}

	p := &lbm.Params{
		Nx:          io.Atoi(tokens[0]),
		Ny:          io.Atoi(tokens[1]),
		MaxIters:    io.Atoi(tokens[2]),
		ReynoldsDim: io.Atoi(tokens[3]),
		Density:     float32(io.Atof(tokens[4])),
		Accel:       float32(io.Atof(tokens[5])),
		Omega:       float32(io.Atof(tokens[6])),
	}
	p.Check()
	return p
}
