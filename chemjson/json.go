/*
 * json.go, part of molgeo.
 *
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

package chemjson

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	chem "github.com/rmera/molgeo"
	v3 "github.com/rmera/molgeo/v3"
)

// Bond is a ready-to-serialize container for a bond
type Bond struct {
	I    int     `json:"i"`
	J    int     `json:"j"`
	Dist float64 `json:"dist"`
}

// Molecule is a ready-to-serialize container for a molecule
type Molecule struct {
	Name    string       `json:"name"`
	Symbols []string     `json:"symbols"`
	Coords  [][3]float64 `json:"coords"`
	Bonds   []Bond       `json:"bonds"`
}

// what is actually read. The name is kept raw so its type can be checked.
type rawMolecule struct {
	Name    json.RawMessage `json:"name"`
	Symbols []string        `json:"symbols"`
	Coords  [][]float64     `json:"coords"`
}

// An easily JSON-serializable error type,
type Error struct {
	deco     []string
	inner    error
	IsError  bool   //If this is false (no error) all the other fields will be at their zero-values.
	InDecode bool   //Was it in reading a molecule?
	InEncode bool   //Was it in writing one?
	Invalid  bool   //The data was read but is not a valid molecule
	Function string //which go function gave the error
	Message  string //the error itself
}

// Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

// Critical is always true, there are no harmless JSON errors.
func (J *Error) Critical() bool { return true }

// Unwrap returns the error that caused this one, if any.
func (J *Error) Unwrap() error { return J.inner }

// Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

// NewError takes an error and some additional info to create a json-marshal-able error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "encode":
		jerr.InEncode = true
	default:
		jerr.InDecode = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	jerr.inner = err
	jerr.deco = []string{function}
	return jerr
}

// invalid returns an Error for well-formed JSON that doesn't describe a valid
// molecule. It matches chem.ErrInvalidArgument with errors.Is.
func invalid(function, format string, a ...interface{}) *Error {
	err := NewError("decode", function, fmt.Errorf("%w: %s", chem.ErrInvalidArgument, fmt.Sprintf(format, a...)))
	err.Invalid = true
	return err
}

// FromMolecule puts the data of mol in a ready-to-serialize Molecule.
func FromMolecule(mol *chem.Molecule) *Molecule {
	ret := &Molecule{
		Name:    mol.Name(),
		Symbols: mol.Symbols(),
		Coords:  make([][3]float64, 0, mol.NumAtoms()),
	}
	for _, c := range mol.Coordinates() {
		ret.Coords = append(ret.Coords, c)
	}
	sorted := mol.Bonds().Sorted()
	ret.Bonds = make([]Bond, 0, len(sorted))
	for _, b := range sorted {
		ret.Bonds = append(ret.Bonds, Bond{I: b.I, J: b.J, Dist: b.Dist})
	}
	return ret
}

// EncodeMolecule writes mol as one line of JSON to out.
func EncodeMolecule(mol *chem.Molecule, out io.Writer) error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(FromMolecule(mol)); err != nil {
		return NewError("encode", "EncodeMolecule", err)
	}
	return nil
}

// DecodeMolecule reads one JSON molecule from in and builds a chem.Molecule from it,
// which means that the bonds are calculated again, with the given window, if any.
// The name must be a JSON string, and each coordinate an array of 3 numbers,
// otherwise an error matching chem.ErrInvalidArgument is returned.
func DecodeMolecule(in io.Reader, window ...chem.BondWindow) (*chem.Molecule, error) {
	dec := json.NewDecoder(in)
	raw := new(rawMolecule)
	if err := dec.Decode(raw); err != nil {
		return nil, NewError("decode", "DecodeMolecule", err)
	}
	var name string
	if len(raw.Name) == 0 || string(raw.Name) == "null" {
		return nil, invalid("DecodeMolecule", "molecule without a name")
	}
	if err := json.Unmarshal(raw.Name, &name); err != nil {
		return nil, invalid("DecodeMolecule", "name is not a string: %s", string(raw.Name))
	}
	coords := make([]v3.Vec, len(raw.Coords))
	for i, c := range raw.Coords {
		if len(c) != 3 {
			return nil, invalid("DecodeMolecule", "coordinate %d has %d components", i, len(c))
		}
		copy(coords[i][:], c)
	}
	mol, err := chem.NewMolecule(name, raw.Symbols, coords, window...)
	if err != nil {
		jerr := NewError("decode", "DecodeMolecule", err)
		jerr.Invalid = true
		return nil, jerr
	}
	return mol, nil
}
