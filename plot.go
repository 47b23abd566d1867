/*
 * plot.go, part of gopoly.
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

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//PlotPotential renders the pair energy and its derivative, for a pair with
//mixed length lambda, as a function of distance, from rmin to the cutoff,
//and saves the plot to filename. The format is taken from the file
//extension (.png, .pdf, .svg...). Handy to eyeball the effect of the
//smoothing order on the cutoff region.
func PlotPotential(pot PairPotential, lambda, rmin float64, points int, filename string) error {
	const f = "PlotPotential"
	if pot == nil {
		return CError{"nil potential given", []string{f}}
	}
	if points < 2 {
		return CError{fmt.Sprintf("%s: %d points", ErrBadParameter, points), []string{f}}
	}
	cut := pot.Cutoff(lambda)
	if rmin <= 0 || rmin >= cut {
		return CError{fmt.Sprintf("%s: rmin %f outside (0, %f)", ErrBadParameter, rmin, cut), []string{f}}
	}
	energies := make(plotter.XYs, points)
	gradients := make(plotter.XYs, points)
	step := (cut - rmin) / float64(points-1)
	for i := 0; i < points; i++ {
		r := rmin + float64(i)*step
		energies[i].X = r
		energies[i].Y = pot.Energy(r, lambda)
		gradients[i].X = r
		gradients[i].Y = pot.Gradient(r, lambda)
	}
	p := plot.New()
	p.Title.Text = "Pair potential"
	p.X.Label.Text = "r"
	p.Y.Label.Text = "e(r), de/dr"
	le, err := plotter.NewLine(energies)
	if err != nil {
		return CError{err.Error(), []string{f}}
	}
	lg, err := plotter.NewLine(gradients)
	if err != nil {
		return CError{err.Error(), []string{f}}
	}
	lg.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(le, lg)
	p.Legend.Add("energy", le)
	p.Legend.Add("gradient", lg)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return CError{err.Error(), []string{f}}
	}
	return nil
}
