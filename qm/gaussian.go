/*
 * gaussian.go, part of gogaussian.
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
//In order to use this part of the library you need the Gaussian program, which must be obtained from Gaussian, Inc.

package qm

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	chem "github.com/fafoom/gogaussian"
)

const (
	gaussianDefaultCommand = "g09"
	gaussianDefaultName    = "gaussian_job"
	gaussianSentinel       = "kill.dat"        //created when an optimization doesn't converge
	gaussianCleanGlob      = "orca_molecule.*" //leftovers from a previous ORCA calculation
)

//GaussianHandle runs Gaussian optimizations. The settings are fixed when the handle
//is created. The result of the last run is kept until the next one.
type GaussianHandle struct {
	calc      Calc
	command   string
	inputname string
	dir       string
	result    *GaussianResult //nil unless the last run converged
}

//NewGaussianHandle returns a handle for calculations with the settings in Q.
//Empty fields in Q take the default values (see Calc.SetDefaults).
//The command run is Q.Command if given, else $GAUSSIAN_COMMAND, else g09.
func NewGaussianHandle(Q Calc) (*GaussianHandle, error) {
	Q.SetDefaults()
	if err := Q.Validate(); err != nil {
		return nil, errDecorate(err, "NewGaussianHandle")
	}
	G := &GaussianHandle{calc: Q, inputname: gaussianDefaultName, dir: "."}
	G.command = Q.Command
	if G.command == "" {
		G.command = os.Getenv("GAUSSIAN_COMMAND")
	}
	if G.command == "" {
		G.command = gaussianDefaultCommand
	}
	return G, nil
}

//GaussianHandle methods

//Calc returns a copy of the settings of the handle.
func (G *GaussianHandle) Calc() Calc {
	return G.calc
}

func (G *GaussianHandle) SetName(name string) {
	G.inputname = name
}

//SetDir sets the directory where the files are written and Gaussian is run.
func (G *GaussianHandle) SetDir(dir string) {
	G.dir = dir
}

func (G *GaussianHandle) SetCommand(name string) {
	G.command = name
}

func (G *GaussianHandle) Command() string {
	return G.command
}

//InputFile returns the path of the Gaussian input file.
func (G *GaussianHandle) InputFile() string {
	return filepath.Join(G.dir, G.inputname+".gjf")
}

//LogFile returns the path of the Gaussian output file.
func (G *GaussianHandle) LogFile() string {
	return filepath.Join(G.dir, G.inputname+".log")
}

//SentinelFile returns the path of the file created when an optimization doesn't converge.
func (G *GaussianHandle) SentinelFile() string {
	return filepath.Join(G.dir, gaussianSentinel)
}

//GaussianInput returns the text of a Gaussian input for the settings in Q and
//the geometry in xyz. The first 2 lines of xyz (atom count and comment)
//are skipped.
func GaussianInput(Q Calc, xyz string) string {
	coord := strings.Split(xyz, "\n")
	var b strings.Builder
	fmt.Fprintf(&b, "%%nprocshared=%d\n", Q.NCPU)
	fmt.Fprintf(&b, "%%mem=%s\n", Q.Memory)
	fmt.Fprintf(&b, "#p %s\n", Q.Method)
	fmt.Fprintf(&b, "\n %s\n", Q.Title)
	fmt.Fprintf(&b, "\n%s\n", Q.ChargeMult)
	if len(coord) > 2 {
		b.WriteString(strings.Join(coord[2:], "\n"))
	}
	b.WriteString("\n\n")
	return b.String()
}

//BuildInput writes the Gaussian input for the molecule in the SD file text sdf,
//overwriting any previous input.
func (G *GaussianHandle) BuildInput(sdf string) error {
	xyz, err := chem.SDF2XYZ(sdf)
	if err != nil {
		return Error{kind: ErrCantInput, program: "Gaussian", filename: G.InputFile(), deco: []string{"chem.SDF2XYZ", "BuildInput"}, critical: true, cause: err}
	}
	err = os.WriteFile(G.InputFile(), []byte(GaussianInput(G.calc, xyz)), 0644)
	if err != nil {
		return Error{kind: ErrCantInput, program: "Gaussian", filename: G.InputFile(), deco: []string{"BuildInput"}, critical: true, cause: err}
	}
	return nil
}

//Run runs Gaussian on the input previously written by BuildInput, and waits for it
//to finish. The standard output goes to the log file, which is then parsed.
//It returns whether the optimization converged. A non-zero exit status of Gaussian is
//not an error by itself: the log is parsed anyway. The result of any previous run
//is discarded, even if this one fails.
func (G *GaussianHandle) Run() (bool, error) {
	G.result = nil
	if _, err := os.Stat(G.InputFile()); err != nil {
		return false, Error{kind: ErrMissingInput, program: "Gaussian", filename: G.InputFile(), deco: []string{"Run"}, critical: true, cause: err}
	}
	out, err := os.Create(G.LogFile())
	if err != nil {
		return false, Error{kind: ErrNotRunning, program: "Gaussian", filename: G.LogFile(), deco: []string{"os.Create", "Run"}, critical: true, cause: err}
	}
	command := exec.Command(G.command, G.inputname+".gjf")
	command.Dir = G.dir
	command.Stdout = out
	command.Stderr = os.Stderr
	log.Printf("Running %s %s.gjf in %s", G.command, G.inputname, G.dir)
	err = command.Run()
	cerr := out.Close()
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		log.Printf("%s exited with status %d, will parse the output anyway", G.command, exit.ExitCode())
	} else if err != nil {
		return false, Error{kind: ErrNotRunning, program: "Gaussian", filename: G.InputFile(), deco: []string{"exec.Run", "Run"}, critical: true, cause: err}
	}
	if cerr != nil {
		return false, Error{kind: ErrNotRunning, program: "Gaussian", filename: G.LogFile(), deco: []string{"Close", "Run"}, critical: true, cause: cerr}
	}
	conv, err := G.ReadOutput()
	if err != nil {
		return conv, errDecorate(err, "Run")
	}
	return conv, nil
}

//ReadOutput parses the existing log file, replacing the previous result.
//If the optimization didn't converge the sentinel file is created, the
//result is cleared and false is returned, with no error.
func (G *GaussianHandle) ReadOutput() (bool, error) {
	G.result = nil
	res, conv, err := ParseGaussianLogFile(G.LogFile())
	if err != nil {
		return conv, errDecorate(err, "ReadOutput")
	}
	if !conv {
		log.Printf("Gaussian optimization in %s didn't converge", G.LogFile())
		if err := os.WriteFile(G.SentinelFile(), nil, 0644); err != nil {
			return false, Error{kind: ErrCantWrite, program: "Gaussian", filename: G.SentinelFile(), deco: []string{"os.WriteFile", "ReadOutput"}, critical: true, cause: err}
		}
		return false, nil
	}
	if charge, multi, err := G.calc.chargeMulti(); err == nil {
		res.Molecule.SetCharge(charge)
		res.Molecule.SetMulti(multi)
	}
	G.result = res
	return true, nil
}

//Result returns the full result of the last calculation.
func (G *GaussianHandle) Result() (*GaussianResult, error) {
	if G.result == nil {
		return nil, Error{kind: ErrNotAvailable, program: "Gaussian", filename: G.LogFile(), deco: []string{"Result"}, critical: true}
	}
	return G.result, nil
}

//Energy returns the final energy of the last calculation, in eV.
func (G *GaussianHandle) Energy() (float64, error) {
	res, err := G.Result()
	if err != nil {
		return 0, errDecorate(err, "Energy")
	}
	return res.Energy * chem.H2eV, nil
}

//OptimizedGeometry returns the optimized geometry of the last calculation in xyz format.
func (G *GaussianHandle) OptimizedGeometry() (string, error) {
	res, err := G.Result()
	if err != nil {
		return "", errDecorate(err, "OptimizedGeometry")
	}
	return res.Geometry, nil
}

//Clean removes the files left by a previous ORCA calculation in the directory of the handle.
//It tries to remove every file, and returns the first error found, if any.
func (G *GaussianHandle) Clean() error {
	files, err := filepath.Glob(filepath.Join(G.dir, gaussianCleanGlob))
	if err != nil {
		return err
	}
	var first error
	for _, f := range files {
		if err := os.Remove(f); err != nil {
			log.Printf("Can't remove %s: %v", f, err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}
