/*
 * energy.go, part of gogaussian.
 *
 *
 * Copyright 2024 The gogaussian Authors
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

//Package chemplot draws plots of calculation results.
package chemplot

import (
	"fmt"
	"image/color"

	chem "github.com/fafoom/gogaussian"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//EnergyProfile plots the energies (in hartree) of the steps of an optimization,
//relative to the last one and in eV, and saves the plot as plotname.png.
func EnergyProfile(energies []float64, title, plotname string) error {
	if len(energies) == 0 {
		return fmt.Errorf("No energies to plot")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Step"
	p.Y.Label.Text = "E - E(final) (eV)"
	p.Add(plotter.NewGrid())
	final := energies[len(energies)-1]
	pts := make(plotter.XYs, len(energies))
	for i, e := range energies {
		pts[i].X = float64(i + 1)
		pts[i].Y = (e - final) * chem.H2eV
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{B: 200, A: 255}
	points.Color = line.Color
	p.Add(line, points)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(5*vg.Inch, 4*vg.Inch, filename)
}
