/*
 * qm.go, part of gogaussian.
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

package qm

import (
	"fmt"
	"strconv"
	"strings"
)

//Handle allows to set and run QM calculations.
type Handle interface {

	//Sets the name for the job, used for input
	//and output files. The extensions will depend on the program.
	SetName(name string)

	//BuildInput builds an input for the QM program from a molecule
	//given as the text of an SD file. returns only error.
	BuildInput(sdf string) error

	//Run runs the QM program for a calculation previously set, waits
	//for it to finish and returns whether the calculation converged.
	Run() (bool, error)

	//Energy returns the final energy, in eV, of the last converged
	//calculation.
	Energy() (float64, error)

	//OptimizedGeometry returns the optimized geometry, in xyz format,
	//of the last converged calculation.
	OptimizedGeometry() (string, error)

	//Clean removes leftovers from previous calculations.
	Clean() error
}

//Calc contains the settings for a calculation. A handle keeps its own
//copy, so changing a Calc after building a handle has no effect on it.
type Calc struct {
	Method     string `toml:"method" yaml:"method"`         //the route section, e.g. "opt b3lyp/6-31g(d)"
	Memory     string `toml:"memory" yaml:"memory"`         //e.g. "256mb"
	ChargeMult string `toml:"chargemult" yaml:"chargemult"` //charge and multiplicity, e.g. "0 1"
	NCPU       int    `toml:"nprocs" yaml:"nprocs"`
	Title      string `toml:"title" yaml:"title"`
	Command    string `toml:"command" yaml:"command"` //the program to run. Empty means the handle default.
}

//SetDefaults fills the empty fields of Q, except for Method and Command, with
//the default values: 256mb of memory, neutral singlet, 1 CPU.
func (Q *Calc) SetDefaults() {
	if Q.Memory == "" {
		Q.Memory = "256mb"
	}
	if Q.ChargeMult == "" {
		Q.ChargeMult = "0 1"
	}
	if Q.NCPU == 0 {
		Q.NCPU = 1
	}
	if Q.Title == "" {
		Q.Title = "fafoom"
	}
}

//Validate returns an error if Q can't be used to build an input.
func (Q *Calc) Validate() error {
	if strings.TrimSpace(Q.Method) == "" {
		return Error{kind: ErrBadConfig, message: "no command line (method) given", deco: []string{"Validate"}, critical: true}
	}
	if Q.NCPU < 1 {
		return Error{kind: ErrBadConfig, message: fmt.Sprintf("the number of processors must be at least 1, not %d", Q.NCPU), deco: []string{"Validate"}, critical: true}
	}
	return nil
}

//chargeMulti returns the charge and multiplicity in Q.ChargeMult as integers.
func (Q *Calc) chargeMulti() (int, int, error) {
	f := strings.Fields(Q.ChargeMult)
	if len(f) < 2 {
		return 0, 0, fmt.Errorf("can't read charge and multiplicity from %q", Q.ChargeMult)
	}
	charge, err := strconv.Atoi(f[0])
	if err != nil {
		return 0, 0, err
	}
	multi, err := strconv.Atoi(f[1])
	if err != nil {
		return 0, 0, err
	}
	return charge, multi, nil
}
