/*
 * calculator.go, part of gopoly.
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
	v3 "github.com/rmera/gopoly/v3"
	"gonum.org/v1/gonum/mat"
)

//Calculator evaluates energies, forces, stresses and second-order response
//properties of atomic configurations under a pair potential. It holds no
//per-configuration state: every method re-enumerates the pair list and
//recomputes its result from scratch, so the same Calculator can be shared
//between goroutines evaluating different configurations.
type Calculator struct {
	pot PairPotential
}

//NewCalculator returns a Calculator for the given pair potential.
func NewCalculator(pot PairPotential) (*Calculator, error) {
	if pot == nil {
		return nil, CError{"nil potential given", []string{"NewCalculator"}}
	}
	return &Calculator{pot: pot}, nil
}

//Potential returns the pair potential of the calculator.
func (C *Calculator) Potential() PairPotential {
	return C.pot
}

//pairs enumerates the directed pair list of conf with the largest cutoff
//any pair in conf can have, i.e. that of two atoms of the largest size.
//Pairs of smaller atoms beyond their own cutoff are retained but contribute
//exactly zero to every sum.
func (C *Calculator) pairs(conf *Configuration) ([]Pair, error) {
	if conf == nil {
		return nil, CError{ErrNilConfiguration, []string{"Calculator.pairs"}}
	}
	smax := conf.MaxSize()
	cutoff := C.pot.Cutoff(C.pot.MixedLength(smax, smax))
	list, err := Pairs(conf, cutoff)
	if err != nil {
		return nil, errDecorate(err, "Calculator.pairs")
	}
	return list, nil
}

//Energy returns the total potential energy of conf. Each undirected pair
//contributes once, i.e. half the sum over the directed pair list.
func (C *Calculator) Energy(conf *Configuration) (float64, error) {
	list, err := C.pairs(conf)
	if err != nil {
		return 0, errDecorate(err, "Calculator.Energy")
	}
	e := 0.0
	for _, p := range list {
		lambda := C.pot.MixedLength(conf.Size(p.I), conf.Size(p.J))
		e += C.pot.Energy(p.Dist, lambda)
	}
	return e / 2.0, nil
}

//Forces returns the per-atom forces of conf as an Nx3 matrix. The forces of
//an isolated periodic configuration sum to zero by construction: every pair
//contribution enters twice with opposite signs.
func (C *Calculator) Forces(conf *Configuration) (*v3.Matrix, error) {
	list, err := C.pairs(conf)
	if err != nil {
		return nil, errDecorate(err, "Calculator.Forces")
	}
	forces := v3.Zeros(conf.Len())
	for _, p := range list {
		lambda := C.pot.MixedLength(conf.Size(p.I), conf.Size(p.J))
		de := C.pot.Gradient(p.Dist, lambda)
		if de == 0 {
			continue
		}
		//de/dr is negative for a repulsive pair, so this pushes I away
		//from J.
		forces.AddVec(p.I, v3.Scale(de/p.Dist, p.Vec))
	}
	return forces, nil
}

//Stress returns the virial stress tensor of conf: the derivative of the
//energy with respect to affine strain, per unit volume.
func (C *Calculator) Stress(conf *Configuration) (*mat.SymDense, error) {
	list, err := C.pairs(conf)
	if err != nil {
		return nil, errDecorate(err, "Calculator.Stress")
	}
	var s [3][3]float64
	for _, p := range list {
		lambda := C.pot.MixedLength(conf.Size(p.I), conf.Size(p.J))
		de := C.pot.Gradient(p.Dist, lambda)
		if de == 0 {
			continue
		}
		for a := 0; a < 3; a++ {
			for b := a; b < 3; b++ {
				s[a][b] += de * p.Vec[a] * p.Vec[b] / p.Dist
			}
		}
	}
	vol := conf.Cell().Volume()
	stress := mat.NewSymDense(3, nil)
	for a := 0; a < 3; a++ {
		for b := a; b < 3; b++ {
			stress.SetSym(a, b, s[a][b]/(2.0*vol))
		}
	}
	return stress, nil
}
