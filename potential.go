/*
 * potential.go, part of gopoly.
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

	"gonum.org/v1/gonum/mat"
)

//InversePowerLaw is a smoothly truncated, size-dependent inverse-power-law
//pair potential. In reduced units x = r/lambda, with lambda the mixed
//interaction length of the pair, the energy is
//
//	u(x) = epsilon * ( x^-exponent + sum_{l=0}^{smooth} c_l x^(2l) )
//
//for x below the reduced cutoff, and exactly zero beyond it. The
//coefficients c_l are chosen so that u and its first "smooth" derivatives
//vanish at the cutoff, which makes energy, force and force-derivative
//continuous there for smooth >= 2.
//
//The mixed length of a pair with sizes si and sj is the power mean
//
//	lambda_ij = length * ((si^mixing + sj^mixing)/2)^(1/mixing)
//
//so mixing interpolates between the geometric (mixing -> 0) and the
//arithmetic (mixing = 1) size-mixing rules.
type InversePowerLaw struct {
	epsilon  float64
	length   float64
	mixing   float64
	smooth   int
	exponent float64
	rcut     float64 //reduced cutoff, in units of the mixed length
	coeffs   []float64
}

//NewInversePowerLaw returns an InversePowerLaw with the given energy scale,
//reference length, size-mixing exponent, cutoff-smoothness order, interaction
//exponent and reduced cutoff. The smoothing coefficients are obtained here,
//once, by solving the small linear system of vanishing-derivative conditions
//at the cutoff. Non-positive parameters, or a smoothness below 1, are
//rejected.
func NewInversePowerLaw(epsilon, length, mixing float64, smooth int, exponent, rcut float64) (*InversePowerLaw, error) {
	const f = "NewInversePowerLaw"
	switch {
	case epsilon <= 0:
		return nil, CError{fmt.Sprintf("%s: energy scale %f", ErrBadParameter, epsilon), []string{f}}
	case length <= 0:
		return nil, CError{fmt.Sprintf("%s: reference length %f", ErrBadParameter, length), []string{f}}
	case mixing <= 0:
		return nil, CError{fmt.Sprintf("%s: mixing exponent %f", ErrBadParameter, mixing), []string{f}}
	case smooth < 1:
		return nil, CError{fmt.Sprintf("%s: smoothness order %d", ErrBadParameter, smooth), []string{f}}
	case exponent <= 0:
		return nil, CError{fmt.Sprintf("%s: interaction exponent %f", ErrBadParameter, exponent), []string{f}}
	case rcut <= 0:
		return nil, CError{fmt.Sprintf("%s: cutoff %f", ErrBadParameter, rcut), []string{f}}
	}
	P := &InversePowerLaw{
		epsilon:  epsilon,
		length:   length,
		mixing:   mixing,
		smooth:   smooth,
		exponent: exponent,
		rcut:     rcut,
	}
	var err error
	P.coeffs, err = smoothingCoefficients(smooth, exponent, rcut)
	if err != nil {
		return nil, errDecorate(err, f)
	}
	return P, nil
}

//smoothingCoefficients solves for the c_l in the truncated polynomial
//sum_l c_l x^(2l), l = 0..s, such that x^-n + sum_l c_l x^(2l) has
//vanishing derivatives of order 0..s at x = xc. Row k of the system is the
//kth derivative condition.
func smoothingCoefficients(s int, n, xc float64) ([]float64, error) {
	dim := s + 1
	A := mat.NewDense(dim, dim, nil)
	b := mat.NewDense(dim, 1, nil)
	for k := 0; k < dim; k++ {
		for l := 0; l < dim; l++ {
			p := 2 * l
			if p < k {
				continue //the kth derivative of x^p is zero
			}
			fall := 1.0
			for m := 0; m < k; m++ {
				fall *= float64(p - m)
			}
			A.Set(k, l, fall*math.Pow(xc, float64(p-k)))
		}
		//kth derivative of x^-n at xc, negated
		fall := 1.0
		for m := 0; m < k; m++ {
			fall *= -n - float64(m)
		}
		b.Set(k, 0, -fall*math.Pow(xc, -n-float64(k)))
	}
	var c mat.Dense
	if err := c.Solve(A, b); err != nil {
		return nil, CError{fmt.Sprintf("%s: singular smoothing system: %v", ErrBadParameter, err), []string{"smoothingCoefficients"}}
	}
	coeffs := make([]float64, dim)
	for l := 0; l < dim; l++ {
		coeffs[l] = c.At(l, 0)
	}
	return coeffs, nil
}

//MixedLength returns the effective interaction length of a pair with sizes
//si and sj.
func (P *InversePowerLaw) MixedLength(si, sj float64) float64 {
	q := P.mixing
	return P.length * math.Pow((math.Pow(si, q)+math.Pow(sj, q))/2.0, 1.0/q)
}

//Cutoff returns the absolute cutoff distance for a pair with mixed length
//lambda.
func (P *InversePowerLaw) Cutoff(lambda float64) float64 {
	return P.rcut * lambda
}

//Energy returns the pair energy at distance r for a pair with mixed length
//lambda. It is identically zero at and beyond the cutoff.
func (P *InversePowerLaw) Energy(r, lambda float64) float64 {
	x := r / lambda
	if x >= P.rcut {
		return 0
	}
	u := math.Pow(x, -P.exponent)
	for l, c := range P.coeffs {
		u += c * math.Pow(x, float64(2*l))
	}
	return P.epsilon * u
}

//Gradient returns the derivative of the pair energy with respect to r.
//It is identically zero at and beyond the cutoff.
func (P *InversePowerLaw) Gradient(r, lambda float64) float64 {
	x := r / lambda
	if x >= P.rcut {
		return 0
	}
	n := P.exponent
	du := -n * math.Pow(x, -n-1)
	for l, c := range P.coeffs {
		if l == 0 {
			continue
		}
		p := float64(2 * l)
		du += p * c * math.Pow(x, p-1)
	}
	return P.epsilon * du / lambda
}

//Curvature returns the second derivative of the pair energy with respect to
//r. It is identically zero at and beyond the cutoff.
func (P *InversePowerLaw) Curvature(r, lambda float64) float64 {
	x := r / lambda
	if x >= P.rcut {
		return 0
	}
	n := P.exponent
	ddu := n * (n + 1) * math.Pow(x, -n-2)
	for l, c := range P.coeffs {
		if l == 0 {
			continue
		}
		p := float64(2 * l)
		ddu += p * (p - 1) * c * math.Pow(x, p-2)
	}
	return P.epsilon * ddu / (lambda * lambda)
}

func (P *InversePowerLaw) String() string {
	return fmt.Sprintf("InversePowerLaw{epsilon: %g, length: %g, mixing: %g, smooth: %d, exponent: %g, cutoff: %g}",
		P.epsilon, P.length, P.mixing, P.smooth, P.exponent, P.rcut)
}
