/*
 * voigt.go, part of gopoly.
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

import "gonum.org/v1/gonum/mat"

//Tensor4 is a rank-4 elasticity tensor in full 3x3x3x3 form.
type Tensor4 [3][3][3][3]float64

//voigtPairs maps each Voigt index 0..5 to its index pair, in the standard
//ordering xx, yy, zz, yz, xz, xy.
var voigtPairs = [6][2]int{{0, 0}, {1, 1}, {2, 2}, {1, 2}, {0, 2}, {0, 1}}

//Voigt returns the 6x6 Voigt form of the tensor.
func (T *Tensor4) Voigt() *mat.Dense {
	C := mat.NewDense(6, 6, nil)
	for p := 0; p < 6; p++ {
		for q := 0; q < 6; q++ {
			a, b := voigtPairs[p][0], voigtPairs[p][1]
			c, d := voigtPairs[q][0], voigtPairs[q][1]
			C.Set(p, q, T[a][b][c][d])
		}
	}
	return C
}

//VoigtToFull returns the full 3x3x3x3 form of a 6x6 Voigt matrix, filling
//the minor-symmetric entries. It panics if C is not 6x6.
func VoigtToFull(C *mat.Dense) *Tensor4 {
	r, co := C.Dims()
	if r != 6 || co != 6 {
		panic("VoigtToFull: matrix is not 6x6")
	}
	T := new(Tensor4)
	for p := 0; p < 6; p++ {
		for q := 0; q < 6; q++ {
			a, b := voigtPairs[p][0], voigtPairs[p][1]
			c, d := voigtPairs[q][0], voigtPairs[q][1]
			v := C.At(p, q)
			T[a][b][c][d] = v
			T[b][a][c][d] = v
			T[a][b][d][c] = v
			T[b][a][d][c] = v
		}
	}
	return T
}

//StressVoigt returns the 6-component Voigt reduction of a symmetric stress
//tensor, in the ordering xx, yy, zz, yz, xz, xy.
func StressVoigt(s *mat.SymDense) []float64 {
	v := make([]float64, 6)
	for p := 0; p < 6; p++ {
		v[p] = s.At(voigtPairs[p][0], voigtPairs[p][1])
	}
	return v
}
