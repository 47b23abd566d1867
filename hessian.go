/*
 * hessian.go, part of gopoly.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package poly

import (
	"math"

	"github.com/james-bowman/sparse"
	v3 "github.com/rmera/gopoly/v3"
)

//pairBlock returns the 3x3 second-derivative block of one pair: the radial
//part (d2e/dr2 along the bond) plus the transverse part (de/dr / r in the
//plane normal to the bond).
func pairBlock(de, dde float64, unit [3]float64, dist float64) [3][3]float64 {
	var K [3][3]float64
	t := de / dist
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			K[a][b] = (dde - t) * unit[a] * unit[b]
			if a == b {
				K[a][b] += t
			}
		}
	}
	return K
}

//Hessian returns the 3Nx3N matrix of second derivatives of the energy with
//respect to the atomic positions, as a compressed sparse row matrix. The
//off-diagonal 3x3 block of a pair is the negated pairBlock; the diagonal
//block of an atom is the sum of the pairBlocks of all its pairs, which makes
//every row and column of the matrix sum to zero (rigid translations cost no
//energy). Pairs of an atom with its own periodic images cancel out exactly,
//as both contributions land on the same diagonal block with opposite signs.
//
//If divideByMasses is true, every block (i,j) is divided by
//sqrt(mass_i*mass_j), turning the Hessian into the dynamical matrix. This is
//a pure post-factor on each block; the block construction is identical in
//both modes.
func (C *Calculator) Hessian(conf *Configuration, divideByMasses bool) (*sparse.CSR, error) {
	list, err := C.pairs(conf)
	if err != nil {
		return nil, errDecorate(err, "Calculator.Hessian")
	}
	N := conf.Len()
	H := sparse.NewDOK(3*N, 3*N)
	for _, p := range list {
		lambda := C.pot.MixedLength(conf.Size(p.I), conf.Size(p.J))
		de := C.pot.Gradient(p.Dist, lambda)
		dde := C.pot.Curvature(p.Dist, lambda)
		if de == 0 && dde == 0 {
			continue
		}
		unit := v3.Scale(1.0/p.Dist, p.Vec)
		K := pairBlock(de, dde, unit, p.Dist)
		off := 1.0
		diag := 1.0
		if divideByMasses {
			off = 1.0 / math.Sqrt(conf.Mass(p.I)*conf.Mass(p.J))
			diag = 1.0 / conf.Mass(p.I)
		}
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				row := 3*p.I + a
				col := 3*p.J + b
				H.Set(row, col, H.At(row, col)-off*K[a][b])
				drow := 3*p.I + a
				dcol := 3*p.I + b
				H.Set(drow, dcol, H.At(drow, dcol)+diag*K[a][b])
			}
		}
	}
	return H.ToCSR(), nil
}
