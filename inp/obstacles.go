// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bufio"
	"os"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ReadObstacles reads zero or more "x y flag" lines describing solid
// cells. x must be in [0,nx), y in [0,ny) and flag must be 1; any
// deviation is fatal. The returned mask is row-major (y,x), length
// nx*ny.
func ReadObstacles(fnpath string, nx, ny int) []bool {
	file, err := os.Open(fnpath)
	if err != nil {
		chk.Panic("ReadObstacles: cannot open obstacle file %q:\n%v", fnpath, err)
	}
	defer file.Close()

	mask := make([]bool, nx*ny)
	scanner := bufio.NewScanner(file)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) != 3 {
			chk.Panic("ReadObstacles: %q line %d must have 3 fields \"x y flag\"; found %d", fnpath, lineno, len(tokens))
		}
		x := io.Atoi(tokens[0])
		y := io.Atoi(tokens[1])
		flag := io.Atoi(tokens[2])
		if x < 0 || x >= nx {
			chk.Panic("ReadObstacles: %q line %d: x=%d out of range [0,%d)", fnpath, lineno, x, nx)
		}
		if y < 0 || y >= ny {
			chk.Panic("ReadObstacles: %q line %d: y=%d out of range [0,%d)", fnpath, lineno, y, ny)
		}
		if flag != 1 {
			chk.Panic("ReadObstacles: %q line %d: flag must be 1, found %d", fnpath, lineno, flag)
		}
		mask[y*nx+x] = true
	}
	if err := scanner.Err(); err != nil {
		chk.Panic("ReadObstacles: cannot read obstacle file %q:\n%v", fnpath, err)
	}
	return mask
}
