/*
 * numerical.go, part of gopoly.
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

//numerical.go provides centered finite-difference counterparts of every
//analytical derivative the calculator produces. They exist so that any
//configuration can be self-checked; the test suite leans on them heavily.
//All of them displace copies of the configuration, never the original.

package poly

import (
	v3 "github.com/rmera/gopoly/v3"
	"gonum.org/v1/gonum/mat"
)

//strainGenerator returns the symmetrized strain direction for the index
//pair (a,b): e_a (x) e_b, symmetrized and scaled so the diagonal generators
//have a unit entry and the off-diagonal ones have 1/2 in each of the two
//symmetric slots.
func strainGenerator(a, b int) *mat.Dense {
	G := mat.NewDense(3, 3, nil)
	G.Set(a, b, G.At(a, b)+0.5)
	G.Set(b, a, G.At(b, a)+0.5)
	return G
}

//scaledGenerator returns t times the (a,b) strain generator, optionally
//added on top of another strain matrix.
func scaledGenerator(a, b int, t float64, base *mat.Dense) *mat.Dense {
	G := strainGenerator(a, b)
	G.Scale(t, G)
	if base != nil {
		G.Add(G, base)
	}
	return G
}

//NumericalForces returns the centered finite-difference forces of conf:
//minus the energy difference under displacing every atom by +-d along every
//cartesian direction.
func (C *Calculator) NumericalForces(conf *Configuration, d float64) (*v3.Matrix, error) {
	if conf == nil {
		return nil, CError{ErrNilConfiguration, []string{"Calculator.NumericalForces"}}
	}
	work := conf.Copy()
	coords := work.Coords()
	forces := v3.Zeros(conf.Len())
	for i := 0; i < conf.Len(); i++ {
		for a := 0; a < 3; a++ {
			orig := coords.At(i, a)
			coords.Set(i, a, orig+d)
			eplus, err := C.Energy(work)
			if err != nil {
				return nil, errDecorate(err, "Calculator.NumericalForces")
			}
			coords.Set(i, a, orig-d)
			eminus, err := C.Energy(work)
			if err != nil {
				return nil, errDecorate(err, "Calculator.NumericalForces")
			}
			coords.Set(i, a, orig)
			forces.Set(i, a, -(eplus-eminus)/(2.0*d))
		}
	}
	return forces, nil
}

//NumericalStress returns the centered finite-difference stress of conf: the
//energy derivative under affine strain along each Voigt generator, per unit
//reference volume.
func (C *Calculator) NumericalStress(conf *Configuration, d float64) (*mat.SymDense, error) {
	const f = "Calculator.NumericalStress"
	if conf == nil {
		return nil, CError{ErrNilConfiguration, []string{f}}
	}
	stress := mat.NewSymDense(3, nil)
	vol := conf.Cell().Volume()
	for p := 0; p < 6; p++ {
		a, b := voigtPairs[p][0], voigtPairs[p][1]
		eplus, err := C.strainedEnergy(conf, scaledGenerator(a, b, d, nil))
		if err != nil {
			return nil, errDecorate(err, f)
		}
		eminus, err := C.strainedEnergy(conf, scaledGenerator(a, b, -d, nil))
		if err != nil {
			return nil, errDecorate(err, f)
		}
		stress.SetSym(a, b, (eplus-eminus)/(2.0*d*vol))
	}
	return stress, nil
}

//NumericalHessian returns the centered finite-difference Hessian of conf as
//a dense 3Nx3N matrix: minus the force differences under single-atom
//displacements of +-d.
func (C *Calculator) NumericalHessian(conf *Configuration, d float64) (*mat.Dense, error) {
	const f = "Calculator.NumericalHessian"
	if conf == nil {
		return nil, CError{ErrNilConfiguration, []string{f}}
	}
	N := conf.Len()
	H := mat.NewDense(3*N, 3*N, nil)
	work := conf.Copy()
	coords := work.Coords()
	for i := 0; i < N; i++ {
		for a := 0; a < 3; a++ {
			orig := coords.At(i, a)
			coords.Set(i, a, orig+d)
			fplus, err := C.Forces(work)
			if err != nil {
				return nil, errDecorate(err, f)
			}
			coords.Set(i, a, orig-d)
			fminus, err := C.Forces(work)
			if err != nil {
				return nil, errDecorate(err, f)
			}
			coords.Set(i, a, orig)
			for j := 0; j < N; j++ {
				for b := 0; b < 3; b++ {
					H.Set(3*i+a, 3*j+b, -(fplus.At(j, b)-fminus.At(j, b))/(2.0*d))
				}
			}
		}
	}
	return H, nil
}

//NumericalNonAffineForces returns the centered finite-difference non-affine
//forces of conf: the force differences under affine strain along each Voigt
//generator.
func (C *Calculator) NumericalNonAffineForces(conf *Configuration, d float64) ([][3][3][3]float64, error) {
	const f = "Calculator.NumericalNonAffineForces"
	if conf == nil {
		return nil, CError{ErrNilConfiguration, []string{f}}
	}
	naf := make([][3][3][3]float64, conf.Len())
	for p := 0; p < 6; p++ {
		b, c := voigtPairs[p][0], voigtPairs[p][1]
		fplus, err := C.strainedForces(conf, scaledGenerator(b, c, d, nil))
		if err != nil {
			return nil, errDecorate(err, f)
		}
		fminus, err := C.strainedForces(conf, scaledGenerator(b, c, -d, nil))
		if err != nil {
			return nil, errDecorate(err, f)
		}
		for i := 0; i < conf.Len(); i++ {
			for a := 0; a < 3; a++ {
				t := (fplus.At(i, a) - fminus.At(i, a)) / (2.0 * d)
				naf[i][a][b][c] = t
				naf[i][a][c][b] = t
			}
		}
	}
	return naf, nil
}

//NumericalBornConstants returns the finite-difference Born constants of
//conf: the mixed second derivatives of the energy density with respect to
//pairs of Voigt strain generators.
func (C *Calculator) NumericalBornConstants(conf *Configuration, d float64) (*Tensor4, error) {
	const f = "Calculator.NumericalBornConstants"
	if conf == nil {
		return nil, CError{ErrNilConfiguration, []string{f}}
	}
	vol := conf.Cell().Volume()
	e0, err := C.Energy(conf)
	if err != nil {
		return nil, errDecorate(err, f)
	}
	T := new(Tensor4)
	for p := 0; p < 6; p++ {
		for q := p; q < 6; q++ {
			a, b := voigtPairs[p][0], voigtPairs[p][1]
			c, dd := voigtPairs[q][0], voigtPairs[q][1]
			var val float64
			if p == q {
				eplus, err := C.strainedEnergy(conf, scaledGenerator(a, b, d, nil))
				if err != nil {
					return nil, errDecorate(err, f)
				}
				eminus, err := C.strainedEnergy(conf, scaledGenerator(a, b, -d, nil))
				if err != nil {
					return nil, errDecorate(err, f)
				}
				val = (eplus - 2.0*e0 + eminus) / (d * d * vol)
			} else {
				var e [2][2]float64
				for si, s1 := range []float64{d, -d} {
					for ti, t1 := range []float64{d, -d} {
						eps := scaledGenerator(a, b, s1, nil)
						eps = scaledGenerator(c, dd, t1, eps)
						ev, err := C.strainedEnergy(conf, eps)
						if err != nil {
							return nil, errDecorate(err, f)
						}
						e[si][ti] = ev
					}
				}
				val = (e[0][0] - e[0][1] - e[1][0] + e[1][1]) / (4.0 * d * d * vol)
			}
			fillSym(T, a, b, c, dd, val)
		}
	}
	return T, nil
}

//NumericalBirchCoefficients returns the finite-difference Birch
//coefficients of conf: the derivative of the Cauchy stress (volume included)
//with respect to affine strain along each Voigt generator.
func (C *Calculator) NumericalBirchCoefficients(conf *Configuration, d float64) (*Tensor4, error) {
	const f = "Calculator.NumericalBirchCoefficients"
	if conf == nil {
		return nil, CError{ErrNilConfiguration, []string{f}}
	}
	T := new(Tensor4)
	for q := 0; q < 6; q++ {
		c, dd := voigtPairs[q][0], voigtPairs[q][1]
		splus, err := C.strainedStress(conf, scaledGenerator(c, dd, d, nil))
		if err != nil {
			return nil, errDecorate(err, f)
		}
		sminus, err := C.strainedStress(conf, scaledGenerator(c, dd, -d, nil))
		if err != nil {
			return nil, errDecorate(err, f)
		}
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				t := (splus.At(a, b) - sminus.At(a, b)) / (2.0 * d)
				T[a][b][c][dd] = t
				T[a][b][dd][c] = t
			}
		}
	}
	return T, nil
}

//fillSym sets every minor- and major-symmetric slot of T corresponding to
//the Voigt pair (ab),(cd) to val.
func fillSym(T *Tensor4, a, b, c, d int, val float64) {
	set := func(w, x, y, z int) {
		T[w][x][y][z] = val
		T[x][w][y][z] = val
		T[w][x][z][y] = val
		T[x][w][z][y] = val
	}
	set(a, b, c, d)
	set(c, d, a, b)
}

func (C *Calculator) strainedEnergy(conf *Configuration, eps *mat.Dense) (float64, error) {
	s, err := conf.Strained(eps)
	if err != nil {
		return 0, err
	}
	return C.Energy(s)
}

func (C *Calculator) strainedForces(conf *Configuration, eps *mat.Dense) (*v3.Matrix, error) {
	s, err := conf.Strained(eps)
	if err != nil {
		return nil, err
	}
	return C.Forces(s)
}

func (C *Calculator) strainedStress(conf *Configuration, eps *mat.Dense) (*mat.SymDense, error) {
	s, err := conf.Strained(eps)
	if err != nil {
		return nil, err
	}
	return C.Stress(s)
}
