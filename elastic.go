/*
 * elastic.go, part of gopoly.
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

//elastic.go computes the strain derivatives of the energy: the non-affine
//forces (mixed position/strain second derivative), the Born constants (pure
//strain second derivative at fixed reduced coordinates) and the Birch
//coefficients (strain derivative of the Cauchy stress). Strain always means
//the affine deformation x -> (1+eps)x of both positions and cell, with eps
//symmetric; the off-diagonal derivative directions are the symmetrized
//generators (e_a e_b + e_b e_a)/2.

package poly

import (
	v3 "github.com/rmera/gopoly/v3"
)

//NonAffineForces returns, per atom, the derivative of the force with respect
//to affine strain: a 3x3x3 array per atom, indexed by the force component and
//the two strain indices, symmetric in the latter two. It quantifies how much
//each atom must relax internally when the cell is strained; it vanishes on
//lattices where every atom sits on an inversion center.
func (C *Calculator) NonAffineForces(conf *Configuration) ([][3][3][3]float64, error) {
	list, err := C.pairs(conf)
	if err != nil {
		return nil, errDecorate(err, "Calculator.NonAffineForces")
	}
	naf := make([][3][3][3]float64, conf.Len())
	for _, p := range list {
		lambda := C.pot.MixedLength(conf.Size(p.I), conf.Size(p.J))
		de := C.pot.Gradient(p.Dist, lambda)
		dde := C.pot.Curvature(p.Dist, lambda)
		if de == 0 && dde == 0 {
			continue
		}
		u := v3.Scale(1.0/p.Dist, p.Vec)
		radial := dde*p.Dist - de
		//the transverse de terms carry 1/2 from the symmetrized strain
		//generators; the two halves merge on the diagonal directions
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				for c := 0; c < 3; c++ {
					t := radial * u[a] * u[b] * u[c]
					if a == b {
						t += 0.5 * de * u[c]
					}
					if a == c {
						t += 0.5 * de * u[b]
					}
					naf[p.I][a][b][c] += t
				}
			}
		}
	}
	return naf, nil
}

//BornElasticConstants returns the affine second derivative of the energy
//density with respect to strain, at fixed reduced coordinates: the Born
//approximation to the elastic constants, with no atomic relaxation and no
//stress correction.
func (C *Calculator) BornElasticConstants(conf *Configuration) (*Tensor4, error) {
	list, err := C.pairs(conf)
	if err != nil {
		return nil, errDecorate(err, "Calculator.BornElasticConstants")
	}
	born := new(Tensor4)
	for _, p := range list {
		lambda := C.pot.MixedLength(conf.Size(p.I), conf.Size(p.J))
		de := C.pot.Gradient(p.Dist, lambda)
		dde := C.pot.Curvature(p.Dist, lambda)
		if de == 0 && dde == 0 {
			continue
		}
		u := v3.Scale(1.0/p.Dist, p.Vec)
		r2 := p.Dist * p.Dist
		radial := (dde - de/p.Dist) * r2
		shear := de * p.Dist / 4.0
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				for c := 0; c < 3; c++ {
					for d := 0; d < 3; d++ {
						t := radial * u[a] * u[b] * u[c] * u[d]
						if a == c {
							t += shear * u[b] * u[d]
						}
						if a == d {
							t += shear * u[b] * u[c]
						}
						if b == c {
							t += shear * u[a] * u[d]
						}
						if b == d {
							t += shear * u[a] * u[c]
						}
						born[a][b][c][d] += t
					}
				}
			}
		}
	}
	vol := conf.Cell().Volume()
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 3; c++ {
				for d := 0; d < 3; d++ {
					born[a][b][c][d] /= 2.0 * vol
				}
			}
		}
	}
	return born, nil
}

//StressContribution returns the finite-stress correction that turns the Born
//constants into the Birch coefficients. At zero stress it vanishes; at
//finite stress it accounts for the rotation of the stressed reference frame
//and the change of volume under strain, and is in general not symmetric
//under exchange of the first and second index pairs.
func (C *Calculator) StressContribution(conf *Configuration) (*Tensor4, error) {
	stress, err := C.Stress(conf)
	if err != nil {
		return nil, errDecorate(err, "Calculator.StressContribution")
	}
	T := new(Tensor4)
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 3; c++ {
				for d := 0; d < 3; d++ {
					t := 0.0
					if a == c {
						t += stress.At(b, d) / 4.0
					}
					if a == d {
						t += stress.At(b, c) / 4.0
					}
					if b == c {
						t += stress.At(a, d) / 4.0
					}
					if b == d {
						t += stress.At(a, c) / 4.0
					}
					if c == d {
						t -= stress.At(a, b)
					}
					T[a][b][c][d] = t
				}
			}
		}
	}
	return T, nil
}

//BirchCoefficients returns the purely affine elastic constant tensor at the
//current stress: the derivative of the Cauchy stress with respect to affine
//strain, i.e. the Born constants plus the stress contribution. Atomic
//relaxation (the non-affine correction, built from NonAffineForces and the
//Hessian) is a separate, downstream computation.
func (C *Calculator) BirchCoefficients(conf *Configuration) (*Tensor4, error) {
	born, err := C.BornElasticConstants(conf)
	if err != nil {
		return nil, errDecorate(err, "Calculator.BirchCoefficients")
	}
	sc, err := C.StressContribution(conf)
	if err != nil {
		return nil, errDecorate(err, "Calculator.BirchCoefficients")
	}
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 3; c++ {
				for d := 0; d < 3; d++ {
					born[a][b][c][d] += sc[a][b][c][d]
				}
			}
		}
	}
	return born, nil
}
