/*
 * gonum.go, part of gopoly.
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

//gonum.go contains the Matrix type and everything needed to handle it with
//the gonum/mat types and facilities.

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space. The underlying implementation is
//a gonum mat.Dense, so a Matrix can be fed to any gonum function taking a
//mat.Matrix.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, fmt.Errorf("malformed coordinate slice: length %d not divisible by %d", l, cols)
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	f := make([]float64, 3*vecs)
	return &Matrix{mat.NewDense(vecs, 3, f)}
}

//Dense2Matrix wraps a 3-column mat.Dense into a Matrix. It panics if
//A does not have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic("v3: only 3-column matrices can be wrapped")
	}
	return &Matrix{A}
}

//Matrix2Dense returns the underlying mat.Dense of A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//NVecs returns the number of vectors in the receiver.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the ith vector of the matrix in the receiver.
//Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//Vec copies the ith vector of the receiver into the 3-element array dst.
func (F *Matrix) Vec(i int) [3]float64 {
	return [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

//SetVec sets the ith vector of the receiver to v.
func (F *Matrix) SetVec(i int, v [3]float64) {
	F.Set(i, 0, v[0])
	F.Set(i, 1, v[1])
	F.Set(i, 2, v[2])
}

//AddVec adds v to the ith vector of the receiver.
func (F *Matrix) AddVec(i int, v [3]float64) {
	F.Set(i, 0, F.At(i, 0)+v[0])
	F.Set(i, 1, F.At(i, 1)+v[1])
	F.Set(i, 2, F.At(i, 2)+v[2])
}

//Copy returns a new Matrix with a copy of the data in the receiver.
func (F *Matrix) Copy() *Matrix {
	r, _ := F.Dims()
	N := Zeros(r)
	N.Dense.Copy(F.Dense)
	return N
}

//SomeVecs returns a new Matrix with copies of the vectors of F indexed
//by clist, in that order. It panics if an index is out of range.
func (F *Matrix) SomeVecs(clist []int) *Matrix {
	N := Zeros(len(clist))
	for k, i := range clist {
		N.SetVec(k, F.Vec(i))
	}
	return N
}

//Norm returns the Euclidean norm of the ith vector of the receiver.
func (F *Matrix) Norm(i int) float64 {
	x := F.At(i, 0)
	y := F.At(i, 1)
	z := F.At(i, 2)
	return math.Sqrt(x*x + y*y + z*z)
}

//MaxNorm returns the largest Euclidean norm among the vectors of the
//receiver.
func (F *Matrix) MaxNorm() float64 {
	max := 0.0
	for i := 0; i < F.NVecs(); i++ {
		if n := F.Norm(i); n > max {
			max = n
		}
	}
	return max
}

//Dot returns the dot product between 3D vectors a and b.
func Dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

//Cross returns the cross product between 3D vectors a and b.
func Cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

//Norm returns the Euclidean norm of the 3D vector a.
func Norm(a [3]float64) float64 {
	return math.Sqrt(Dot(a, a))
}

//Sub returns the difference a-b between 3D vectors a and b.
func Sub(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

//Add returns the sum of the 3D vectors a and b.
func Add(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

//Scale returns the 3D vector a scaled by f.
func Scale(f float64, a [3]float64) [3]float64 {
	return [3]float64{f * a[0], f * a[1], f * a[2]}
}
