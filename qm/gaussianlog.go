/*
 * gaussianlog.go, part of gogaussian.
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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	chem "github.com/fafoom/gogaussian"
	v3 "github.com/fafoom/gogaussian/v3"
)

//Markers in the Gaussian output. The parsing is positional: the fields
//used are fixed token positions in the lines containing these markers.
const (
	gaussianConverged   = "Stationary point found"
	gaussianSCFDone     = "SCF Done"
	gaussianNAtoms      = "NAtoms"
	gaussianOrientation = "Standard orientation"

	gaussianEnergyField       = 4 //in the SCF Done line
	gaussianNAtomsField       = 1 //in the NAtoms line, splitting also on "="
	gaussianOrientationHeader = 4 //lines between the marker and the first atom
	gaussianOrientationFields = 6 //center, atomic number, atomic type, x, y, z
)

//GaussianResult contains the results of a converged Gaussian optimization.
type GaussianResult struct {
	Energy      float64   //final SCF energy, in hartree
	SCFEnergies []float64 //every SCF energy in the output, in order, in hartree
	NAtoms      int
	Geometry    string //the optimized geometry in xyz format
	Molecule    *chem.Molecule
}

type logState int

const (
	logScanning          logState = iota //looking for markers
	logOrientationHeader                 //skipping the header of a Standard orientation table
	logOrientationTable                  //reading the rows of the table
)

//gaussianLogScanner is fed an output one line at a time. Markers are looked
//for in every line. A Standard orientation marker starts a new table and
//discards the previous one, so the last table in the output is the one kept.
type gaussianLogScanner struct {
	state     logState
	remaining int //lines left in the current header or table
	converged bool
	scf       []string
	natoms    int //-1 until an NAtoms line is read
	natomsErr error
	rows      []string //table being read
	table     []string //last complete table
	tableErr  error    //problem with the last Standard orientation marker
}

func newGaussianLogScanner() *gaussianLogScanner {
	return &gaussianLogScanner{natoms: -1}
}

//Feed processes the next line of the output.
func (S *gaussianLogScanner) Feed(line string) {
	if strings.Contains(line, gaussianConverged) {
		S.converged = true
	}
	if strings.Contains(line, gaussianSCFDone) {
		S.scf = append(S.scf, line)
	}
	if strings.Contains(line, gaussianNAtoms) {
		S.natoms, S.natomsErr = nAtoms(line)
	}
	if strings.Contains(line, gaussianOrientation) {
		S.startTable()
		return
	}
	switch S.state {
	case logOrientationHeader:
		S.remaining--
		if S.remaining == 0 {
			S.state = logOrientationTable
			S.remaining = S.natoms
		}
	case logOrientationTable:
		S.rows = append(S.rows, line)
		S.remaining--
		if S.remaining == 0 {
			S.table = S.rows
			S.rows = nil
			S.state = logScanning
		}
	}
}

func (S *gaussianLogScanner) startTable() {
	S.table = nil
	S.rows = nil
	S.tableErr = nil
	if S.natoms <= 0 {
		S.tableErr = fmt.Errorf("%q found before a valid %q line", gaussianOrientation, gaussianNAtoms)
		S.state = logScanning
		return
	}
	S.rows = make([]string, 0, S.natoms)
	S.state = logOrientationHeader
	S.remaining = gaussianOrientationHeader
}

//Result returns the result of the calculation and whether it converged.
//The result is nil if the calculation didn't converge. An error means that
//the output claims convergence but the energy or geometry can't be read.
func (S *gaussianLogScanner) Result() (*GaussianResult, bool, error) {
	if !S.converged {
		return nil, false, nil
	}
	inconsistent := func(format string, a ...interface{}) error {
		return Error{kind: ErrInconsistentOutput, program: "Gaussian", message: fmt.Sprintf(format, a...), deco: []string{"Result"}, critical: true}
	}
	if len(S.scf) == 0 {
		return nil, true, inconsistent("%q found but no %q line", gaussianConverged, gaussianSCFDone)
	}
	energies := make([]float64, len(S.scf))
	for i, line := range S.scf {
		e, err := scfEnergy(line)
		if err != nil {
			return nil, true, inconsistent("%v", err)
		}
		energies[i] = e
	}
	switch {
	case S.natomsErr != nil:
		return nil, true, inconsistent("%v", S.natomsErr)
	case S.natoms < 0:
		return nil, true, inconsistent("no %q line", gaussianNAtoms)
	case S.tableErr != nil:
		return nil, true, inconsistent("%v", S.tableErr)
	case S.state != logScanning:
		return nil, true, inconsistent("output ends in the middle of the last %q table", gaussianOrientation)
	case S.table == nil:
		return nil, true, inconsistent("no %q table", gaussianOrientation)
	}
	geometry, mol, err := orientationGeometry(S.table)
	if err != nil {
		return nil, true, inconsistent("%v", err)
	}
	return &GaussianResult{
		Energy:      energies[len(energies)-1],
		SCFEnergies: energies,
		NAtoms:      S.natoms,
		Geometry:    geometry,
		Molecule:    mol,
	}, true, nil
}

//ParseGaussianLog reads a full Gaussian output from r. It returns false and a nil
//result if the optimization didn't reach a stationary point, which is not an error.
func ParseGaussianLog(r io.Reader) (*GaussianResult, bool, error) {
	S := newGaussianLogScanner()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		S.Feed(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, false, err
	}
	return S.Result()
}

//ParseGaussianLogFile opens and parses the Gaussian output in filename.
//Files ending in .gz or .zst are decompressed on the fly.
func ParseGaussianLogFile(filename string) (*GaussianResult, bool, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, false, Error{kind: ErrMissingOutput, program: "Gaussian", filename: filename, deco: []string{"ParseGaussianLogFile"}, critical: true, cause: err}
	}
	defer f.Close()
	var r io.Reader = f
	switch {
	case strings.HasSuffix(filename, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, false, Error{kind: ErrInconsistentOutput, program: "Gaussian", filename: filename, deco: []string{"ParseGaussianLogFile"}, critical: true, cause: err}
		}
		defer gz.Close()
		r = gz
	case strings.HasSuffix(filename, ".zst"):
		zs, err := zstd.NewReader(f)
		if err != nil {
			return nil, false, Error{kind: ErrInconsistentOutput, program: "Gaussian", filename: filename, deco: []string{"ParseGaussianLogFile"}, critical: true, cause: err}
		}
		defer zs.Close()
		r = zs
	}
	res, converged, err := ParseGaussianLog(r)
	if err != nil {
		var e Error
		if !errors.As(err, &e) {
			return nil, converged, Error{kind: ErrInconsistentOutput, program: "Gaussian", filename: filename, deco: []string{"ParseGaussianLogFile"}, critical: true, cause: err}
		}
		e.filename = filename
		return nil, converged, errDecorate(e, "ParseGaussianLogFile")
	}
	return res, converged, nil
}

//scfEnergy reads the energy, in hartree, from an SCF Done line.
func scfEnergy(line string) (float64, error) {
	fields := strings.Fields(line)
	if len(fields) <= gaussianEnergyField {
		return 0, fmt.Errorf("too few fields in %q", strings.TrimSpace(line))
	}
	e, err := strconv.ParseFloat(fields[gaussianEnergyField], 64)
	if err != nil {
		return 0, fmt.Errorf("can't read the energy from %q: %v", strings.TrimSpace(line), err)
	}
	return e, nil
}

//nAtoms reads the number of atoms from an NAtoms line. Gaussian prints it
//as "NAtoms=    3", so "=" counts as a separator.
func nAtoms(line string) (int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == '='
	})
	if len(fields) <= gaussianNAtomsField {
		return -1, fmt.Errorf("too few fields in %q", strings.TrimSpace(line))
	}
	n, err := strconv.Atoi(fields[gaussianNAtomsField])
	if err != nil || n <= 0 {
		return -1, fmt.Errorf("can't read the number of atoms from %q", strings.TrimSpace(line))
	}
	return n, nil
}

//orientationGeometry builds the xyz block and the molecule from the rows
//of a Standard orientation table. The coordinates are copied verbatim.
func orientationGeometry(rows []string) (string, *chem.Molecule, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n\n", len(rows))
	atoms := make([]*chem.Atom, len(rows))
	coords := v3.Zeros(len(rows))
	for i, row := range rows {
		fields := strings.Fields(row)
		if len(fields) != gaussianOrientationFields {
			return "", nil, fmt.Errorf("ill formed %q row %q", gaussianOrientation, strings.TrimSpace(row))
		}
		z, err := strconv.Atoi(fields[1])
		if err != nil {
			return "", nil, fmt.Errorf("bad atomic number in %q", strings.TrimSpace(row))
		}
		symbol, err := chem.Symbol(z)
		if err != nil {
			return "", nil, err
		}
		var c [3]float64
		for j := range c {
			if c[j], err = strconv.ParseFloat(fields[3+j], 64); err != nil {
				return "", nil, fmt.Errorf("bad coordinate in %q", strings.TrimSpace(row))
			}
		}
		fmt.Fprintf(&b, "%s %s %s %s\n", symbol, fields[3], fields[4], fields[5])
		atoms[i] = chem.NewAtom(symbol, i+1)
		coords.SetVec(i, c[0], c[1], c[2])
	}
	top, _ := chem.NewTopology(atoms, 0, 1)
	mol, err := chem.NewMolecule(top, coords)
	if err != nil {
		return "", nil, err
	}
	return b.String(), mol, nil
}
