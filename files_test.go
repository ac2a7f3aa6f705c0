/*
 * files_test.go, part of gogaussian.
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
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

const waterXYZ = `3

O      0.00000000     0.00000000     0.11730000
H      0.00000000     0.75720000    -0.46920000
H      0.00000000    -0.75720000    -0.46920000
`

//TestSDF2XYZ converts the water SDF in the test directory to xyz text.
func TestSDF2XYZ(Te *testing.T) {
	sdf, err := os.ReadFile("test/water.sdf")
	if err != nil {
		Te.Fatal(err)
	}
	xyz, err := SDF2XYZ(string(sdf))
	if err != nil {
		Te.Fatal(err)
	}
	if xyz != waterXYZ {
		Te.Errorf("got\n%s\nwanted\n%s", xyz, waterXYZ)
	}
	//a second conversion must give exactly the same text
	xyz2, _ := SDF2XYZ(string(sdf))
	if xyz2 != xyz {
		Te.Errorf("SDF2XYZ is not deterministic")
	}
}

func TestSDFUnpadded(Te *testing.T) {
	sdf := "h2\n\n\n  2  1  0  0  0  0  0  0  0  0999 V2000\n0.0 0.0 0.0 H\n0.0 0.0 0.74 H\n  1  2  1  0\nM  END\n"
	mol, err := SDFRead(strings.NewReader(sdf))
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 2 || mol.Atom(1).Symbol != "H" || mol.Coords[0].At(1, 2) != 0.74 {
		Te.Errorf("unexpected molecule %v %v", mol.Atoms, mol.Coords[0])
	}
}

func TestSDFErrors(Te *testing.T) {
	bad := map[string]string{
		"empty":     "",
		"truncated": "name\n\n\n  3  2  0  0  0  0  0  0  0  0999 V2000\n    0.0000    0.0000    0.1173 O   0  0\n",
		"counts":    "name\n\n\nabc\n",
		"v3000":     "name\n\n\n  0  0  0     0  0            999 V3000\n",
		"coords":    "name\n\n\n  1  0  0  0  0  0  0  0  0  0999 V2000\nfoo bar baz O\n",
	}
	for name, sdf := range bad {
		if _, err := SDF2XYZ(sdf); !errors.Is(err, ErrBadSDF) {
			Te.Errorf("%s: expected ErrBadSDF, got %v", name, err)
		}
	}
}

func TestXYZIO(Te *testing.T) {
	mol, err := XYZRead(strings.NewReader(waterXYZ))
	if err != nil {
		Te.Fatal(err)
	}
	Te.Log("XYZ read!", mol.Coords[0])
	if mol.Len() != 3 || mol.Atom(0).Symbol != "O" || mol.Atom(0).Z != 8 || mol.Atom(2).Mass != 1.0 {
		Te.Errorf("unexpected atoms %v", mol.Atoms)
	}
	var b bytes.Buffer
	if err := XYZWrite(&b, mol.Coords[0], mol); err != nil {
		Te.Fatal(err)
	}
	if b.String() != waterXYZ {
		Te.Errorf("got\n%s\nwanted\n%s", b.String(), waterXYZ)
	}
	name := Te.TempDir() + "/water.xyz"
	if err := XYZFileWrite(name, mol.Coords[0], mol); err != nil {
		Te.Fatal(err)
	}
	if _, err := XYZFileRead(name); err != nil {
		Te.Error(err)
	}
	if _, err := XYZRead(strings.NewReader("2\n\nO 0 0 0\n")); !errors.Is(err, ErrBadXYZ) {
		Te.Errorf("expected ErrBadXYZ for a truncated file, got %v", err)
	}
}

func TestSymbol(Te *testing.T) {
	cases := map[int]string{0: "X", 1: "H", 6: "C", 8: "O", 26: "Fe", 54: "Xe", 79: "Au", 92: "U", 118: "Og"}
	for z, want := range cases {
		got, err := Symbol(z)
		if err != nil || got != want {
			Te.Errorf("Symbol(%d) = %q, %v; wanted %q", z, got, err, want)
		}
		back, err := AtomicNumber(want)
		if err != nil || back != z {
			Te.Errorf("AtomicNumber(%q) = %d, %v; wanted %d", want, back, err, z)
		}
	}
	for _, z := range []int{-1, 119} {
		if _, err := Symbol(z); !errors.Is(err, ErrUnknownElement) {
			Te.Errorf("Symbol(%d): expected ErrUnknownElement, got %v", z, err)
		}
	}
}
