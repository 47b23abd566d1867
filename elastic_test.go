/*
 * elastic_test.go, part of gopoly.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tensorMaxDiff(a, b *Tensor4) float64 {
	max := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					if d := math.Abs(a[i][j][k][l] - b[i][j][k][l]); d > max {
						max = d
					}
				}
			}
		}
	}
	return max
}

func nafMaxDiff(a, b [][3][3][3]float64) float64 {
	max := 0.0
	for i := range a {
		for x := 0; x < 3; x++ {
			for y := 0; y < 3; y++ {
				for z := 0; z < 3; z++ {
					if d := math.Abs(a[i][x][y][z] - b[i][x][y][z]); d > max {
						max = d
					}
				}
			}
		}
	}
	return max
}

//TestNonAffineForcesCrystal checks the analytical non-affine forces of a
//crystal against finite differences of the forces under strain, for several
//lattice constants.
func TestNonAffineForcesCrystal(t *testing.T) {
	calc := testCalculator(t)
	for _, a0 := range []float64{2.0, 2.5, 3.0} {
		conf := fccConf(t, a0)
		ana, err := calc.NonAffineForces(conf)
		require.NoError(t, err)
		num, err := calc.NumericalNonAffineForces(conf, 1e-6)
		require.NoError(t, err)
		require.Len(t, num, conf.Len())
		d := nafMaxDiff(ana, num)
		assert.LessOrEqualf(t, d, 1e-3, "a0=%f: non-affine forces differ from finite differences", a0)
	}
}

//TestNonAffineForcesDimer checks the non-affine forces of the dimer, where
//only one pair contributes, against finite differences and against the
//closed form for a bond along x: the longitudinal entry is r*d2e/dr2 and the
//transverse shear entry is half of de/dr, the half coming from the
//symmetrized strain generators.
func TestNonAffineForcesDimer(t *testing.T) {
	calc := testCalculator(t)
	conf := dimerConf(t)
	ana, err := calc.NonAffineForces(conf)
	require.NoError(t, err)
	num, err := calc.NumericalNonAffineForces(conf, 1e-6)
	require.NoError(t, err)
	assert.LessOrEqual(t, nafMaxDiff(ana, num), 1e-4)

	const r = 1.2
	pot := calc.Potential()
	lambda := pot.MixedLength(1.3, 2.22)
	de := pot.Gradient(r, lambda)
	dde := pot.Curvature(r, lambda)
	assert.InDelta(t, dde*r, ana[0][0][0][0], 1e-12)
	assert.InDelta(t, de/2.0, ana[0][1][0][1], 1e-12)
	assert.InDelta(t, de/2.0, ana[0][2][0][2], 1e-12)
	assert.InDelta(t, 0.0, ana[0][1][1][1], 1e-12)
}

//TestBornConstants checks the affine second strain derivative of the energy
//density against mixed finite differences.
func TestBornConstants(t *testing.T) {
	calc := testCalculator(t)
	conf := fccConf(t, 2.5)
	ana, err := calc.BornElasticConstants(conf)
	require.NoError(t, err)
	num, err := calc.NumericalBornConstants(conf, 1e-4)
	require.NoError(t, err)
	assert.LessOrEqual(t, tensorMaxDiff(ana, num), 1e-3, "Born constants differ from finite differences")
}

//TestBirchCoefficients checks the Birch coefficients against finite
//differences of the Cauchy stress under strain.
func TestBirchCoefficients(t *testing.T) {
	calc := testCalculator(t)
	for _, a0 := range []float64{2.0, 3.0} {
		conf := fccConf(t, a0)
		ana, err := calc.BirchCoefficients(conf)
		require.NoError(t, err)
		num, err := calc.NumericalBirchCoefficients(conf, 1e-5)
		require.NoError(t, err)
		assert.LessOrEqualf(t, tensorMaxDiff(ana, num), 1e-3, "a0=%f: Birch coefficients differ from stress finite differences", a0)
	}
}

//TestStressContribution checks that the stress correction is built from the
//Cauchy stress exactly as stated, and that Birch = Born + correction.
func TestStressContribution(t *testing.T) {
	delta := func(a, b int) float64 {
		if a == b {
			return 1.0
		}
		return 0.0
	}
	calc := testCalculator(t)
	conf := fccConf(t, 2.5)
	sc, err := calc.StressContribution(conf)
	require.NoError(t, err)
	s, err := calc.Stress(conf)
	require.NoError(t, err)
	want := new(Tensor4)
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 3; c++ {
				for d := 0; d < 3; d++ {
					want[a][b][c][d] = 0.25*(delta(a, c)*s.At(b, d)+delta(a, d)*s.At(b, c)+
						delta(b, c)*s.At(a, d)+delta(b, d)*s.At(a, c)) - delta(c, d)*s.At(a, b)
				}
			}
		}
	}
	assert.LessOrEqual(t, tensorMaxDiff(sc, want), 1e-12)

	born, err := calc.BornElasticConstants(conf)
	require.NoError(t, err)
	birch, err := calc.BirchCoefficients(conf)
	require.NoError(t, err)
	sum := new(Tensor4)
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 3; c++ {
				for d := 0; d < 3; d++ {
					sum[a][b][c][d] = born[a][b][c][d] + sc[a][b][c][d]
				}
			}
		}
	}
	assert.LessOrEqual(t, tensorMaxDiff(birch, sum), 1e-12, "Birch coefficients are not Born plus the stress correction")
}

//TestVoigtRoundTrip checks the 3x3x3x3 <-> 6x6 Voigt conversion on the Born
//tensor, which has both minor symmetries.
func TestVoigtRoundTrip(t *testing.T) {
	calc := testCalculator(t)
	conf := fccConf(t, 2.5)
	born, err := calc.BornElasticConstants(conf)
	require.NoError(t, err)
	back := VoigtToFull(born.Voigt())
	assert.LessOrEqual(t, tensorMaxDiff(born, back), 1e-12, "Voigt round trip changed the tensor")
	v := born.Voigt()
	r, c := v.Dims()
	require.Equal(t, 6, r)
	require.Equal(t, 6, c)
}
