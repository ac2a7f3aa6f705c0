/*
 * files.go, part of gogaussian.
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

package chem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/fafoom/gogaussian/v3"
)

var (
	ErrBadXYZ = errors.New("ill formatted XYZ file")
	ErrBadSDF = errors.New("ill formatted SDF file")
)

//XYZRead reads the first frame of an xyz file from r and returns a molecule
//with charge 0 and multiplicity 1.
func XYZRead(r io.Reader) (*Molecule, error) {
	xyz := bufio.NewScanner(r)
	if !xyz.Scan() {
		return nil, fmt.Errorf("%w: missing atom count", ErrBadXYZ)
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(xyz.Text()))
	if err != nil || natoms <= 0 {
		return nil, fmt.Errorf("%w: bad atom count %q", ErrBadXYZ, xyz.Text())
	}
	xyz.Scan() //We dont care about this line
	atoms := make([]*Atom, natoms)
	coords := v3.Zeros(natoms)
	for i := 0; i < natoms; i++ {
		if !xyz.Scan() {
			return nil, fmt.Errorf("%w: expected %d atoms, found %d", ErrBadXYZ, natoms, i)
		}
		fields := strings.Fields(xyz.Text())
		if len(fields) < 4 {
			return nil, fmt.Errorf("%w: line for atom %d ill formed", ErrBadXYZ, i)
		}
		atoms[i] = NewAtom(fields[0], i+1)
		c, err := parseFloats(fields[1:4])
		if err != nil {
			return nil, fmt.Errorf("%w: atom %d: %v", ErrBadXYZ, i, err)
		}
		coords.SetVec(i, c[0], c[1], c[2])
	}
	if err := xyz.Err(); err != nil {
		return nil, err
	}
	top, _ := NewTopology(atoms, 0, 1)
	return NewMolecule(top, coords)
}

//XYZFileRead opens and reads the xyz file xyzname.
func XYZFileRead(xyzname string) (*Molecule, error) {
	f, err := os.Open(xyzname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return XYZRead(f)
}

//XYZWrite writes the coordinates coords for the atoms in xyz format to out.
//The comment line is left blank.
func XYZWrite(out io.Writer, coords *v3.Matrix, atoms Atomer) error {
	if coords == nil || atoms == nil {
		return fmt.Errorf("Missing atoms or coordinates")
	}
	if coords.NVecs() != atoms.Len() {
		return fmt.Errorf("Inconsistency between coordinates (%d) and atoms (%d)", coords.NVecs(), atoms.Len())
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%d\n\n", atoms.Len())
	for i := 0; i < atoms.Len(); i++ {
		c := coords.Vec(i)
		fmt.Fprintf(w, "%-2s %14.8f %14.8f %14.8f\n", atoms.Atom(i).Symbol, c[0], c[1], c[2])
	}
	return w.Flush()
}

//XYZFileWrite writes the coordinates and atoms in the file xyzname, which is
//created or overwritten.
func XYZFileWrite(xyzname string, coords *v3.Matrix, atoms Atomer) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return err
	}
	if err := XYZWrite(out, coords, atoms); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

//SDFRead reads the first record of an MDL SD file (V2000 molfile) from r.
//Only the header, counts line and atom block are used; bonds and properties
//are ignored. The returned molecule has charge 0 and multiplicity 1.
func SDFRead(r io.Reader) (*Molecule, error) {
	sdf := bufio.NewScanner(r)
	var lines []string
	//3 header lines plus the counts line
	for len(lines) < 4 && sdf.Scan() {
		lines = append(lines, sdf.Text())
	}
	if len(lines) < 4 {
		return nil, fmt.Errorf("%w: truncated header", ErrBadSDF)
	}
	counts := lines[3]
	if strings.Contains(counts, "V3000") {
		return nil, fmt.Errorf("%w: V3000 molfiles are not supported", ErrBadSDF)
	}
	natoms, err := fixedInt(counts, 0, 3)
	if err != nil || natoms <= 0 {
		return nil, fmt.Errorf("%w: bad counts line %q", ErrBadSDF, counts)
	}
	atoms := make([]*Atom, natoms)
	coords := v3.Zeros(natoms)
	for i := 0; i < natoms; i++ {
		if !sdf.Scan() {
			return nil, fmt.Errorf("%w: expected %d atoms, found %d", ErrBadSDF, natoms, i)
		}
		symbol, c, err := sdfAtomLine(sdf.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: atom %d: %v", ErrBadSDF, i+1, err)
		}
		atoms[i] = NewAtom(symbol, i+1)
		coords.SetVec(i, c[0], c[1], c[2])
	}
	if err := sdf.Err(); err != nil {
		return nil, err
	}
	top, _ := NewTopology(atoms, 0, 1)
	return NewMolecule(top, coords)
}

//SDF2XYZ converts the first record of an SD file given as a string
//into xyz text: a count line, a blank comment line and one
//"symbol x y z" line per atom.
func SDF2XYZ(sdf string) (string, error) {
	mol, err := SDFRead(strings.NewReader(sdf))
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := XYZWrite(&b, mol.Coords[0], mol); err != nil {
		return "", err
	}
	return b.String(), nil
}

//sdfAtomLine parses an atom block line. The format is fixed width
//(xxxxx.xxxxyyyyy.yyyyzzzzz.zzzz aaa...), but whitespace separated lines
//are accepted too, as many programs don't pad them.
func sdfAtomLine(line string) (string, [3]float64, error) {
	var c [3]float64
	if len(line) >= 34 {
		var err error
		for i := range c {
			if c[i], err = strconv.ParseFloat(strings.TrimSpace(line[10*i:10*i+10]), 64); err != nil {
				break
			}
		}
		symbol := strings.TrimSpace(line[31:34])
		if err == nil && symbol != "" {
			return symbol, c, nil
		}
	}
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return "", c, fmt.Errorf("too few fields in %q", line)
	}
	f, err := parseFloats(fields[:3])
	if err != nil {
		return "", c, err
	}
	copy(c[:], f)
	return fields[3], c, nil
}

func fixedInt(line string, from, to int) (int, error) {
	if len(line) < to {
		to = len(line)
	}
	if from >= to {
		return 0, fmt.Errorf("field out of range")
	}
	return strconv.Atoi(strings.TrimSpace(line[from:to]))
}

func parseFloats(strs []string) ([]float64, error) {
	ret := make([]float64, len(strs))
	var err error
	for i, s := range strs {
		ret[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}
