/*
 * plot_test.go, part of gopoly.
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
	"os"
	"path/filepath"
	"testing"
)

//TestPlotPotential renders the test potential to a PNG and checks that a
//non-empty file comes out.
func TestPlotPotential(Te *testing.T) {
	pot := testPotential(Te)
	lambda := pot.MixedLength(1.3, 2.22)
	name := filepath.Join(Te.TempDir(), "potential.png")
	if err := PlotPotential(pot, lambda, 0.5*lambda, 200, name); err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(name)
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("Plot file is empty")
	}
}

//TestPlotPotentialBadArguments checks the argument validation.
func TestPlotPotentialBadArguments(Te *testing.T) {
	pot := testPotential(Te)
	lambda := pot.MixedLength(1.3, 2.22)
	name := filepath.Join(Te.TempDir(), "potential.png")
	if err := PlotPotential(nil, lambda, 1.0, 100, name); err == nil {
		Te.Error("Expected an error for a nil potential")
	}
	if err := PlotPotential(pot, lambda, 1.0, 1, name); err == nil {
		Te.Error("Expected an error for too few points")
	}
	if err := PlotPotential(pot, lambda, -1.0, 100, name); err == nil {
		Te.Error("Expected an error for a non-positive lower bound")
	}
}
