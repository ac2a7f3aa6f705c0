/*
 * doc.go, part of gogaussian.
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

/*
Package chem provides the atom and molecule structures used by gogaussian,
readers and writers for the XYZ and MDL SD (V2000) formats, periodic table
data and unit conversion factors.

Coordinates are stored as v3.Matrix values (N×3 gonum matrices, one row per
atom). The qm subpackage drives Gaussian optimizations built from these
molecules, and chemplot draws the energy profiles of those optimizations.

A typical use:

	sdf, _ := os.ReadFile("mol.sdf")
	G, err := qm.NewGaussianHandle(qm.Calc{Method: "b3lyp/6-31g* opt"})
	if err != nil {
		log.Fatal(err)
	}
	if err := G.BuildInput(string(sdf)); err != nil {
		log.Fatal(err)
	}
	converged, err := G.Run()
	if err != nil || !converged {
		log.Fatal("no luck", err)
	}
	E, _ := G.Energy() //eV
	geo, _ := G.OptimizedGeometry()
	fmt.Println(E, geo)
*/
package chem
