/*
 * root.go, part of gogaussian.
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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	chem "github.com/fafoom/gogaussian"
	"github.com/fafoom/gogaussian/chemplot"
	"github.com/fafoom/gogaussian/qm"
)

var errNotConverged = errors.New("the optimization did not converge")

var (
	workDir    string
	jobName    string
	configFile string
	command    string
	plotName   string
	outXYZ     string
)

var rootCmd = &cobra.Command{
	Use:   "gaussrun",
	Short: "Run Gaussian geometry optimizations",
	Long: `gaussrun writes Gaussian inputs from SD files, runs the optimizations and
reports the final energy (eV) and optimized geometry.

Runs use fixed file names (<name>.gjf, <name>.log, kill.dat) in the working
directory, so concurrent runs need different directories.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&workDir, "dir", ".", "working directory for the calculation")
	rootCmd.PersistentFlags().StringVar(&jobName, "name", "gaussian_job", "base name of the input and log files")
}

//newHandle builds a handle from the configuration file and the global flags.
func newHandle() (*qm.GaussianHandle, error) {
	Q, err := qm.LoadCalc(configFile)
	if err != nil {
		return nil, err
	}
	G, err := qm.NewGaussianHandle(Q)
	if err != nil {
		return nil, err
	}
	G.SetDir(workDir)
	G.SetName(jobName)
	if command != "" {
		G.SetCommand(command)
	}
	return G, nil
}

//report prints the result of a calculation and writes the optional outputs.
func report(w io.Writer, res *qm.GaussianResult, converged bool) error {
	if !converged {
		fmt.Fprintln(w, "converged: false")
		return errNotConverged
	}
	fmt.Fprintln(w, "converged: true")
	fmt.Fprintf(w, "energy: %.8f eV (%.10f hartree)\n", res.Energy*chem.H2eV, res.Energy)
	fmt.Fprint(w, res.Geometry)
	if outXYZ != "" {
		if err := chem.XYZFileWrite(outXYZ, res.Molecule.Coords[0], res.Molecule); err != nil {
			return err
		}
	}
	if plotName != "" {
		if err := chemplot.EnergyProfile(res.SCFEnergies, "Optimization energy profile", plotName); err != nil {
			return err
		}
	}
	return nil
}

func readFile(name string) (string, error) {
	b, err := os.ReadFile(name)
	return string(b), err
}
