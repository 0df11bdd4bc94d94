// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lbm implements the D2Q9 lattice Boltzmann method with a
// single-relaxation-time (BGK) collision operator for two-dimensional
// channel flow around interior solid obstacles.
package lbm
