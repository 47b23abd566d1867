/*
 * atoms.go, part of gopoly.
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

	v3 "github.com/rmera/gopoly/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Configuration is an atomic configuration: positions, per-atom sizes and
//masses, and a periodic cell. Sizes and masses are required attributes;
//a Configuration cannot be built without them, so the calculator never has
//to guess a default in the middle of a numeric evaluation.
type Configuration struct {
	coords  *v3.Matrix
	sizes   []float64
	masses  []float64
	symbols []string //optional, only used by the XYZ reader/writer
	cell    *Cell
}

//NewConfiguration builds a Configuration from the Nx3 coordinate matrix, the
//per-atom size and mass slices, and the periodic cell. It fails if any of
//the arguments is nil, if the slice lengths do not match the atom count, or
//if a size or mass is non-positive.
func NewConfiguration(coords *v3.Matrix, sizes, masses []float64, cell *Cell) (*Configuration, error) {
	const f = "NewConfiguration"
	if coords == nil || cell == nil {
		return nil, CError{ErrNilConfiguration, []string{f}}
	}
	N := coords.NVecs()
	if sizes == nil || len(sizes) != N {
		return nil, CError{fmt.Sprintf("%s: want %d, have %d", ErrMissingSizes, N, len(sizes)), []string{f}}
	}
	if masses == nil || len(masses) != N {
		return nil, CError{fmt.Sprintf("%s: want %d, have %d", ErrMissingMasses, N, len(masses)), []string{f}}
	}
	for i := 0; i < N; i++ {
		if sizes[i] <= 0 {
			return nil, CError{fmt.Sprintf("%s: atom %d has size %f", ErrMissingSizes, i, sizes[i]), []string{f}}
		}
		if masses[i] <= 0 {
			return nil, CError{fmt.Sprintf("%s: atom %d has mass %f", ErrMissingMasses, i, masses[i]), []string{f}}
		}
	}
	conf := new(Configuration)
	conf.coords = coords
	conf.sizes = sizes
	conf.masses = masses
	conf.cell = cell
	return conf, nil
}

//Len returns the number of atoms in the configuration.
func (C *Configuration) Len() int {
	return C.coords.NVecs()
}

//Coords returns the coordinate matrix of the configuration. The returned
//matrix is not a copy; changes to it are reflected in the configuration.
func (C *Configuration) Coords() *v3.Matrix {
	return C.coords
}

//Size returns the size of the ith atom.
func (C *Configuration) Size(i int) float64 {
	return C.sizes[i]
}

//Mass returns the mass of the ith atom.
func (C *Configuration) Mass(i int) float64 {
	return C.masses[i]
}

//MaxSize returns the largest per-atom size in the configuration.
func (C *Configuration) MaxSize() float64 {
	return floats.Max(C.sizes)
}

//Cell returns the periodic cell of the configuration.
func (C *Configuration) Cell() *Cell {
	return C.cell
}

//Symbol returns the chemical symbol of the ith atom, or "X" if no symbols
//were set.
func (C *Configuration) Symbol(i int) string {
	if C.symbols == nil {
		return "X"
	}
	return C.symbols[i]
}

//SetSymbols sets the chemical symbols of the atoms. It fails if the slice
//length does not match the atom count.
func (C *Configuration) SetSymbols(symbols []string) error {
	if len(symbols) != C.Len() {
		return CError{fmt.Sprintf("wrong number of symbols: want %d, have %d", C.Len(), len(symbols)), []string{"Configuration.SetSymbols"}}
	}
	C.symbols = symbols
	return nil
}

//Copy returns a deep copy of the configuration.
func (C *Configuration) Copy() *Configuration {
	N := new(Configuration)
	N.coords = C.coords.Copy()
	N.sizes = append([]float64{}, C.sizes...)
	N.masses = append([]float64{}, C.masses...)
	if C.symbols != nil {
		N.symbols = append([]string{}, C.symbols...)
	}
	N.cell = C.cell //cells are immutable, sharing is safe
	return N
}

//Strained returns a copy of the configuration deformed by the affine
//transformation 1+eps: every position and every lattice vector x becomes
//(1+eps)x. This is the deformation against which stress, Born constants and
//non-affine forces are defined.
func (C *Configuration) Strained(eps *mat.Dense) (*Configuration, error) {
	cell, err := C.cell.Strained(eps)
	if err != nil {
		return nil, errDecorate(err, "Configuration.Strained")
	}
	N := C.Copy()
	N.cell = cell
	F := deformation(eps)
	N.coords.Dense.Mul(C.coords.Dense, F.T())
	return N, nil
}
