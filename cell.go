/*
 * cell.go, part of gopoly.
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
	"gonum.org/v1/gonum/mat"
)

//Cell represents a periodic simulation cell: a 3x3 matrix where each row is
//one lattice vector, plus a periodicity flag per direction. A Cell is
//immutable after construction.
type Cell struct {
	lattice *mat.Dense
	pbc     [3]bool
}

//NewCell returns a Cell with the given 3x3 lattice matrix (rows are lattice
//vectors) and periodicity flags. It fails if the matrix is not 3x3 or is
//singular.
func NewCell(lattice *mat.Dense, pbc [3]bool) (*Cell, error) {
	r, c := lattice.Dims()
	if r != 3 || c != 3 {
		return nil, CError{fmt.Sprintf("%s: lattice is %dx%d, not 3x3", ErrBadCell, r, c), []string{"NewCell"}}
	}
	if math.Abs(mat.Det(lattice)) < 1e-12 {
		return nil, CError{fmt.Sprintf("%s: singular lattice matrix", ErrBadCell), []string{"NewCell"}}
	}
	l := mat.NewDense(3, 3, nil)
	l.Copy(lattice)
	return &Cell{lattice: l, pbc: pbc}, nil
}

//CubicCell returns a fully periodic cubic cell with side l. It panics on a
//non-positive side, as there is no legitimate use for one.
func CubicCell(l float64) *Cell {
	if l <= 0 {
		panic("CubicCell: non-positive cell side")
	}
	C, _ := NewCell(mat.NewDense(3, 3, []float64{l, 0, 0, 0, l, 0, 0, 0, l}), [3]bool{true, true, true})
	return C
}

//OrthorhombicCell returns a fully periodic cell with sides a, b and c.
func OrthorhombicCell(a, b, c float64) (*Cell, error) {
	C, err := NewCell(mat.NewDense(3, 3, []float64{a, 0, 0, 0, b, 0, 0, 0, c}), [3]bool{true, true, true})
	if err != nil {
		return nil, errDecorate(err, "OrthorhombicCell")
	}
	return C, nil
}

//Lattice returns a copy of the 3x3 lattice matrix of the cell.
func (C *Cell) Lattice() *mat.Dense {
	l := mat.NewDense(3, 3, nil)
	l.Copy(C.lattice)
	return l
}

//PBC returns the periodicity flags of the cell.
func (C *Cell) PBC() [3]bool {
	return C.pbc
}

//Vector returns the ith lattice vector.
func (C *Cell) Vector(i int) [3]float64 {
	return [3]float64{C.lattice.At(i, 0), C.lattice.At(i, 1), C.lattice.At(i, 2)}
}

//Volume returns the volume of the cell.
func (C *Cell) Volume() float64 {
	return math.Abs(mat.Det(C.lattice))
}

//Offset returns the cartesian translation corresponding to the integer
//cell-image offset n, i.e. n[0]*a0 + n[1]*a1 + n[2]*a2.
func (C *Cell) Offset(n [3]int) [3]float64 {
	var off [3]float64
	for k := 0; k < 3; k++ {
		v := C.Vector(k)
		for a := 0; a < 3; a++ {
			off[a] += float64(n[k]) * v[a]
		}
	}
	return off
}

//Widths returns the perpendicular width of the cell along each lattice
//direction, i.e. the distance between the two cell faces not containing
//that lattice vector. These widths decide how many periodic images must
//be searched for a given interaction cutoff.
func (C *Cell) Widths() [3]float64 {
	v := C.Volume()
	var w [3]float64
	for k := 0; k < 3; k++ {
		j := (k + 1) % 3
		l := (k + 2) % 3
		area := v3.Norm(v3.Cross(C.Vector(j), C.Vector(l)))
		w[k] = v / area
	}
	return w
}

//Strained returns a new Cell with every lattice vector transformed by
//(1 + eps), where eps is a 3x3 strain matrix. The periodicity flags are
//preserved.
func (C *Cell) Strained(eps *mat.Dense) (*Cell, error) {
	r, c := eps.Dims()
	if r != 3 || c != 3 {
		return nil, CError{fmt.Sprintf("%s: strain is %dx%d, not 3x3", ErrBadCell, r, c), []string{"Cell.Strained"}}
	}
	F := deformation(eps)
	l := mat.NewDense(3, 3, nil)
	l.Mul(C.lattice, F.T())
	N, err := NewCell(l, C.pbc)
	if err != nil {
		return nil, errDecorate(err, "Cell.Strained")
	}
	return N, nil
}

//deformation returns the deformation matrix 1+eps.
func deformation(eps *mat.Dense) *mat.Dense {
	F := mat.NewDense(3, 3, nil)
	F.Copy(eps)
	for i := 0; i < 3; i++ {
		F.Set(i, i, F.At(i, i)+1.0)
	}
	return F
}
