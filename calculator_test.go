/*
 * calculator_test.go, part of gopoly.
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
	"math/rand"
	"testing"

	v3 "github.com/rmera/gopoly/v3"
	"gonum.org/v1/gonum/mat"
)

//testCalculator returns a calculator with the potential used across the
//test suite.
func testCalculator(Te *testing.T) *Calculator {
	calc, err := NewCalculator(testPotential(Te))
	if err != nil {
		Te.Fatal(err)
	}
	return calc
}

//dimerConf returns two atoms of sizes 1.3 and 2.22, 1.2 length units apart,
//in a 10x10x10 periodic cell.
func dimerConf(Te *testing.T) *Configuration {
	const L = 10.0
	const d = 1.2
	coords, err := v3.NewMatrix([]float64{L / 2, L / 2, L / 2, L/2 + d, L / 2, L / 2})
	if err != nil {
		Te.Fatal(err)
	}
	conf, err := NewConfiguration(coords, []float64{1.3, 2.22}, []float64{1, 1}, CubicCell(L))
	if err != nil {
		Te.Fatal(err)
	}
	return conf
}

//fccConf returns a 2x2x2 face-centered-cubic supercell with lattice
//constant a0, uniform unit masses and reproducibly random sizes in
//[1.0, 2.22].
func fccConf(Te *testing.T, a0 float64) *Configuration {
	basis := [4][3]float64{{0, 0, 0}, {0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0}}
	var data []float64
	for nx := 0; nx < 2; nx++ {
		for ny := 0; ny < 2; ny++ {
			for nz := 0; nz < 2; nz++ {
				for _, b := range basis {
					data = append(data,
						a0*(float64(nx)+b[0]),
						a0*(float64(ny)+b[1]),
						a0*(float64(nz)+b[2]))
				}
			}
		}
	}
	coords, err := v3.NewMatrix(data)
	if err != nil {
		Te.Fatal(err)
	}
	N := coords.NVecs()
	rng := rand.New(rand.NewSource(42))
	sizes := make([]float64, N)
	masses := make([]float64, N)
	for i := range sizes {
		sizes[i] = 1.0 + rng.Float64()*(2.22-1.0)
		masses[i] = 1.0
	}
	conf, err := NewConfiguration(coords, sizes, masses, CubicCell(2*a0))
	if err != nil {
		Te.Fatal(err)
	}
	return conf
}

//maxAbsDiff returns the largest absolute elementwise difference between two
//equally sized matrices.
func maxAbsDiff(a, b mat.Matrix) float64 {
	r, c := a.Dims()
	max := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if d := math.Abs(a.At(i, j) - b.At(i, j)); d > max {
				max = d
			}
		}
	}
	return max
}

//TestForcesDimer checks the analytical forces of a dimer against finite
//differences.
func TestForcesDimer(Te *testing.T) {
	calc := testCalculator(Te)
	conf := dimerConf(Te)
	f, err := calc.Forces(conf)
	if err != nil {
		Te.Fatal(err)
	}
	fn, err := calc.NumericalForces(conf, 1e-4)
	if err != nil {
		Te.Fatal(err)
	}
	if d := maxAbsDiff(f, fn); d > 1e-4 {
		Te.Errorf("Dimer forces differ from finite differences by %g", d)
	}
}

//TestForcesCrystal checks the analytical forces of a crystalline
//configuration with random sizes against finite differences.
func TestForcesCrystal(Te *testing.T) {
	calc := testCalculator(Te)
	conf := fccConf(Te, 2.37126)
	f, err := calc.Forces(conf)
	if err != nil {
		Te.Fatal(err)
	}
	fn, err := calc.NumericalForces(conf, 1e-4)
	if err != nil {
		Te.Fatal(err)
	}
	if d := maxAbsDiff(f, fn); d > 1e-4 {
		Te.Errorf("Crystal forces differ from finite differences by %g", d)
	}
}

//TestForcesSumZero checks Newton's third law: the forces of a periodic
//configuration with no external field sum to zero.
func TestForcesSumZero(Te *testing.T) {
	calc := testCalculator(Te)
	conf := fccConf(Te, 2.5)
	f, err := calc.Forces(conf)
	if err != nil {
		Te.Fatal(err)
	}
	for a := 0; a < 3; a++ {
		sum := 0.0
		for i := 0; i < conf.Len(); i++ {
			sum += f.At(i, a)
		}
		if math.Abs(sum) > 1e-10 {
			Te.Errorf("Forces do not sum to zero along component %d: %g", a, sum)
		}
	}
}

//TestCrystalStress checks the analytical stress of a crystal against finite
//differences, for several lattice constants.
func TestCrystalStress(Te *testing.T) {
	calc := testCalculator(Te)
	for _, a0 := range []float64{2.0, 2.5, 3.0} {
		conf := fccConf(Te, a0)
		s, err := calc.Stress(conf)
		if err != nil {
			Te.Fatal(err)
		}
		sn, err := calc.NumericalStress(conf, 1e-5)
		if err != nil {
			Te.Fatal(err)
		}
		if d := maxAbsDiff(s, sn); d > 1e-4 {
			Te.Errorf("a0=%f: stress differs from finite differences by %g", a0, d)
		}
	}
}

//TestDimerEnergy checks that the dimer energy is a single pair interaction:
//twice the directed sum halved, and that the two atoms see the same mixed
//length.
func TestDimerEnergy(Te *testing.T) {
	calc := testCalculator(Te)
	conf := dimerConf(Te)
	e, err := calc.Energy(conf)
	if err != nil {
		Te.Fatal(err)
	}
	pot := calc.Potential()
	lambda := pot.MixedLength(1.3, 2.22)
	want := pot.Energy(1.2, lambda)
	if math.Abs(e-want) > 1e-12 {
		Te.Errorf("Dimer energy %g, want single pair energy %g", e, want)
	}
	fmt.Println("dimer energy", e)
}

//TestIdempotence checks that repeated evaluation of an unchanged
//configuration gives identical results.
func TestIdempotence(Te *testing.T) {
	calc := testCalculator(Te)
	conf := fccConf(Te, 2.5)
	e1, err := calc.Energy(conf)
	if err != nil {
		Te.Fatal(err)
	}
	e2, err := calc.Energy(conf)
	if err != nil {
		Te.Fatal(err)
	}
	if e1 != e2 {
		Te.Errorf("Energy not reproducible: %g vs %g", e1, e2)
	}
	f1, err := calc.Forces(conf)
	if err != nil {
		Te.Fatal(err)
	}
	f2, err := calc.Forces(conf)
	if err != nil {
		Te.Fatal(err)
	}
	if d := maxAbsDiff(f1, f2); d != 0 {
		Te.Errorf("Forces not reproducible, max difference %g", d)
	}
}

//TestConfigurationValidation checks that configurations with missing or
//invalid per-atom attributes are rejected before any numeric work.
func TestConfigurationValidation(Te *testing.T) {
	coords, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 1, 1})
	cell := CubicCell(10)
	if _, err := NewConfiguration(coords, nil, []float64{1, 1}, cell); err == nil {
		Te.Error("Expected an error for missing sizes")
	}
	if _, err := NewConfiguration(coords, []float64{1.3, 2.22}, nil, cell); err == nil {
		Te.Error("Expected an error for missing masses")
	}
	if _, err := NewConfiguration(coords, []float64{1.3}, []float64{1, 1}, cell); err == nil {
		Te.Error("Expected an error for a short size slice")
	}
	if _, err := NewConfiguration(coords, []float64{1.3, -2.0}, []float64{1, 1}, cell); err == nil {
		Te.Error("Expected an error for a negative size")
	}
	if _, err := NewConfiguration(nil, []float64{1.3, 2.22}, []float64{1, 1}, cell); err == nil {
		Te.Error("Expected an error for nil coordinates")
	}
}
