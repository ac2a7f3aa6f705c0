/*
 * chem.go, part of gogaussian.
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
	"fmt"

	v3 "github.com/fafoom/gogaussian/v3"
)

/**Note: Many functions here panic instead of returning errors. This is because they are "fundamental"
 * functions. If something goes wrong here, the program is most likely wrong and should
 * crash. Most panics are related to using the function on a nil object or trying to access out-of bounds
 * fields**/

//Atom contains the atoms read except for the coordinates, which will be in a matrix.
type Atom struct {
	Name   string
	Id     int
	Mass   float64
	Charge float64
	Symbol string
	Z      int //atomic number, 0 if unknown
}

//NewAtom returns an atom for the given element symbol, with
//mass and atomic number filled in when the element is known.
func NewAtom(symbol string, id int) *Atom {
	at := &Atom{Name: symbol, Symbol: symbol, Id: id}
	at.Mass = symbolMass[symbol]
	at.Z, _ = AtomicNumber(symbol)
	return at
}

/*****Topology type***/

//Topology contains information about a molecule which is not expected to change in time (i.e. everything except for coordinates)
type Topology struct {
	Atoms  []*Atom
	charge int
	multi  int
}

//NewTopology returns a topology with the given atoms, charge and multiplicity.
//It returns error if ats is nil. It doesnt check for consistency
//between charge and multiplicity.
func NewTopology(ats []*Atom, charge, multi int) (*Topology, error) {
	if ats == nil {
		return nil, fmt.Errorf("Supplied a nil atom slice")
	}
	top := new(Topology)
	top.Atoms = ats
	top.charge = charge
	top.multi = multi
	return top, nil
}

//Charge gets the total charge of the topology
func (T *Topology) Charge() int {
	return T.charge
}

//Multi returns the multiplicity of the topology
func (T *Topology) Multi() int {
	return T.multi
}

//SetCharge sets the total charge of the topology to i
func (T *Topology) SetCharge(i int) {
	T.charge = i
}

//SetMulti sets the multiplicity of the topology to i
func (T *Topology) SetMulti(i int) {
	T.multi = i
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Topology. Panics if
//out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.Atoms[i]
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

/**Molecule type**/

//Molecule contains all the info for a molecule in many states. The info that is expected to change between states,
//the coordinates, is kept in Coords, one matrix per frame.
type Molecule struct {
	*Topology
	Coords []*v3.Matrix
}

//NewMolecule makes a molecule with ats atoms and coords coordinates.
//It returns an error if the coordinates don't match the atoms.
func NewMolecule(ats *Topology, coords ...*v3.Matrix) (*Molecule, error) {
	if ats == nil {
		return nil, fmt.Errorf("Supplied a nil Topology")
	}
	mol := &Molecule{Topology: ats, Coords: coords}
	if err := mol.Corrupted(); err != nil {
		return nil, err
	}
	return mol, nil
}

//Corrupted checks whether the molecule is corrupted, i.e. the
//coordinates don't match the number of atoms.
func (M *Molecule) Corrupted() error {
	for i, c := range M.Coords {
		if c == nil {
			return fmt.Errorf("Frame %d has nil coordinates", i)
		}
		if c.NVecs() != M.Len() {
			return fmt.Errorf("Inconsistency between coordinates (%d) and atoms (%d) in frame %d", c.NVecs(), M.Len(), i)
		}
	}
	return nil
}
