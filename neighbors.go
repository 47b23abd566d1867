/*
 * neighbors.go, part of gopoly.
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
	"fmt"
	"math"

	v3 "github.com/rmera/gopoly/v3"
)

//Pair is one directed interacting pair: atom J, displaced by the integer
//cell-image Offset, lies at Vec (of length Dist) from atom I. Every pair
//appears twice in a pair list, once per direction, so summing a per-I
//quantity over the list visits every interaction of every atom exactly once.
//Distinct images of the same two atoms are distinct pairs, and an atom can
//pair with its own periodic images (I == J with a non-zero Offset).
type Pair struct {
	I, J   int
	Offset [3]int
	Vec    [3]float64
	Dist   float64
}

//zeroDist is the distance below which two atoms are considered overlapping.
const zeroDist = 1e-10

//Pairs returns the directed list of all pairs in conf closer than cutoff,
//including periodic images. The enumeration is brute force over all image
//offsets that can fall within the cutoff, so it remains correct for cells
//smaller than the cutoff, at the cost of O(N^2) work. It fails if two atoms
//(or an atom and one of its images) overlap.
func Pairs(conf *Configuration, cutoff float64) ([]Pair, error) {
	if conf == nil {
		return nil, CError{ErrNilConfiguration, []string{"Pairs"}}
	}
	offsets := imageOffsets(conf.Cell(), cutoff)
	coords := conf.Coords()
	N := conf.Len()
	cut2 := cutoff * cutoff
	var list []Pair
	for _, n := range offsets {
		shift := conf.Cell().Offset(n)
		central := n == [3]int{0, 0, 0}
		for i := 0; i < N; i++ {
			xi := coords.Vec(i)
			for j := 0; j < N; j++ {
				if i == j && central {
					continue
				}
				vec := v3.Sub(v3.Add(coords.Vec(j), shift), xi)
				d2 := v3.Dot(vec, vec)
				if d2 >= cut2 {
					continue
				}
				if d2 < zeroDist*zeroDist {
					return nil, CError{fmt.Sprintf("%s: atoms %d and %d, offset %v", ErrZeroDistance, i, j, n), []string{"Pairs"}}
				}
				list = append(list, Pair{I: i, J: j, Offset: n, Vec: vec, Dist: math.Sqrt(d2)})
			}
		}
	}
	return list, nil
}

//imageOffsets returns every integer cell-image offset that can bring an atom
//within cutoff of another. Along each periodic direction the range follows
//from the perpendicular width of the cell, with one extra image as a margin
//for positions that are not wrapped into the cell. Non-periodic directions
//only get the zero offset.
func imageOffsets(cell *Cell, cutoff float64) [][3]int {
	w := cell.Widths()
	pbc := cell.PBC()
	var nmax [3]int
	for k := 0; k < 3; k++ {
		if pbc[k] {
			nmax[k] = int(math.Ceil(cutoff/w[k])) + 1
		}
	}
	var offsets [][3]int
	for n0 := -nmax[0]; n0 <= nmax[0]; n0++ {
		for n1 := -nmax[1]; n1 <= nmax[1]; n1++ {
			for n2 := -nmax[2]; n2 <= nmax[2]; n2++ {
				offsets = append(offsets, [3]int{n0, n1, n2})
			}
		}
	}
	return offsets
}
