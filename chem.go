/*
 * chem.go, part of molgeo.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

	v3 "github.com/rmera/molgeo/v3"
)

// Molecule contains a set of atoms, identified by their element symbols,
// their cartesian coordinates and the bonds among them. The bonds are
// recalculated every time the coordinates are replaced. A Molecule is
// not safe for concurrent use if its coordinates are being replaced.
type Molecule struct {
	name    string
	symbols []string
	coords  []v3.Vec
	window  BondWindow
	bonds   Bonds
}

// NewMolecule returns a molecule with the given name, element symbols and coordinates,
// and builds its bond list. There must be one coordinate for each symbol.
// The optional window gives the limits for bond lengths. If not given,
// DefaultBondWindow() is used. symbols and coords are copied.
func NewMolecule(name string, symbols []string, coords []v3.Vec, window ...BondWindow) (*Molecule, error) {
	if len(symbols) != len(coords) {
		return nil, newError(ErrInvalidArgument, "NewMolecule", "%d symbols given for %d coordinates", len(symbols), len(coords))
	}
	w := DefaultBondWindow()
	if len(window) > 0 {
		w = window[0]
	}
	if err := w.Check(); err != nil {
		return nil, errDecorate(err, "NewMolecule")
	}
	M := &Molecule{
		name:    name,
		symbols: copyStrings(symbols),
		window:  w,
	}
	M.replace(coords)
	return M, nil
}

// replace sets a copy of coords as the coordinates of the molecule and
// rebuilds the bond list from them.
func (M *Molecule) replace(coords []v3.Vec) {
	c := make([]v3.Vec, len(coords))
	copy(c, coords)
	M.coords = c
	M.bonds = BuildBondList(M.coords, M.window)
}

// SetCoordinates replaces all the coordinates of the molecule
// with a copy of coords, and rebuilds the bond list. coords must have one
// element per atom, otherwise an error is returned and the molecule is not changed.
func (M *Molecule) SetCoordinates(coords []v3.Vec) error {
	if len(coords) != len(M.symbols) {
		return newError(ErrInvalidArgument, "SetCoordinates", "%d coordinates given for %d atoms", len(coords), len(M.symbols))
	}
	M.replace(coords)
	return nil
}

// Name returns the name of the molecule.
func (M *Molecule) Name() string {
	return M.name
}

// NumAtoms returns the number of atoms (i.e. of coordinates) in the molecule.
func (M *Molecule) NumAtoms() int {
	return len(M.coords)
}

// Symbol returns the element symbol of the atom i. Panics if i is out of range.
func (M *Molecule) Symbol(i int) string {
	return M.symbols[i]
}

// Symbols returns a copy of the element symbols of the molecule.
func (M *Molecule) Symbols() []string {
	return copyStrings(M.symbols)
}

// Coord returns the coordinates of the atom i. Panics if i is out of range.
func (M *Molecule) Coord(i int) v3.Vec {
	return M.coords[i]
}

// Coordinates returns a copy of the coordinates of the molecule.
func (M *Molecule) Coordinates() []v3.Vec {
	ret := make([]v3.Vec, len(M.coords))
	copy(ret, M.coords)
	return ret
}

// Bonds returns a copy of the current bond list.
func (M *Molecule) Bonds() Bonds {
	return M.bonds.Copy()
}

// Window returns the bond window used by the molecule.
func (M *Molecule) Window() BondWindow {
	return M.window
}

func (M *Molecule) checkIndexes(caller string, indexes ...int) error {
	for _, i := range indexes {
		if i < 0 || i >= len(M.coords) {
			return newError(ErrInvalidArgument, caller, "atom index %d out of range for %d atoms", i, len(M.coords))
		}
	}
	return nil
}

// Distance returns the distance between the atoms i and j.
func (M *Molecule) Distance(i, j int) (float64, error) {
	if err := M.checkIndexes("Distance", i, j); err != nil {
		return 0, err
	}
	return Distance(M.coords[i], M.coords[j]), nil
}

// Angle returns the angle formed by the atoms i, j and k, with j as the vertex.
// See the Angle function.
func (M *Molecule) Angle(i, j, k int, degrees bool) (float64, error) {
	if err := M.checkIndexes("Angle", i, j, k); err != nil {
		return 0, err
	}
	a, err := Angle(M.coords[i], M.coords[j], M.coords[k], degrees)
	if err != nil {
		return 0, errDecorate(err, fmt.Sprintf("Molecule.Angle: atoms %d %d %d", i, j, k))
	}
	return a, nil
}

// Dihedral returns the dihedral angle formed by the atoms i, j, k and l.
// See the Dihedral function.
func (M *Molecule) Dihedral(i, j, k, l int, degrees bool) (float64, error) {
	if err := M.checkIndexes("Dihedral", i, j, k, l); err != nil {
		return 0, err
	}
	d, err := Dihedral(M.coords[i], M.coords[j], M.coords[k], M.coords[l], degrees)
	if err != nil {
		return 0, errDecorate(err, fmt.Sprintf("Molecule.Dihedral: atoms %d %d %d %d", i, j, k, l))
	}
	return d, nil
}
