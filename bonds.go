/*
 * bonds.go, part of molgeo.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"math"
	"sort"

	v3 "github.com/rmera/molgeo/v3"
)

// Default limits of the bond window, in the units of the coordinates (usually A).
const (
	DefaultMinBond = 0.0
	DefaultMaxBond = 2.93
)

// BondWindow holds the limits for the distance between two bonded atoms.
// Both limits are exclusive.
type BondWindow struct {
	Min float64
	Max float64
}

// DefaultBondWindow returns the window (DefaultMinBond, DefaultMaxBond)
func DefaultBondWindow() BondWindow {
	return BondWindow{Min: DefaultMinBond, Max: DefaultMaxBond}
}

// Contains returns true if Min < d < Max.
func (w BondWindow) Contains(d float64) bool {
	return d > w.Min && d < w.Max
}

// Check returns an error of kind ErrInvalidArgument if a limit is not
// finite or if no distance could ever fall in the window. A negative Min
// is allowed, and makes every atom bonded to itself.
func (w BondWindow) Check() error {
	if math.IsNaN(w.Min) || math.IsNaN(w.Max) || math.IsInf(w.Min, 0) || math.IsInf(w.Max, 0) {
		return newError(ErrInvalidArgument, "Check", "non-finite limit in bond window (%f, %f)", w.Min, w.Max)
	}
	if w.Max <= w.Min {
		return newError(ErrInvalidArgument, "Check", "empty bond window (%f, %f)", w.Min, w.Max)
	}
	return nil
}

// BondKey identifies a bond by the indexes of its two atoms, with I<=J.
type BondKey struct {
	I int
	J int
}

// Key returns the BondKey for the atoms i and j, in any order.
func Key(i, j int) BondKey {
	if j < i {
		i, j = j, i
	}
	return BondKey{I: i, J: j}
}

// Bond is one element of a bond list.
type Bond struct {
	BondKey
	Dist float64
}

// Bonds maps each pair of bonded atoms to their distance.
type Bonds map[BondKey]float64

// Len returns the number of bonds.
func (B Bonds) Len() int {
	return len(B)
}

// Has returns true if atoms i and j are bonded. The order of i and j doesn't matter.
func (B Bonds) Has(i, j int) bool {
	_, ok := B[Key(i, j)]
	return ok
}

// Dist returns the length of the bond between i and j, and false if they
// are not bonded.
func (B Bonds) Dist(i, j int) (float64, bool) {
	d, ok := B[Key(i, j)]
	return d, ok
}

// Copy returns a copy of B.
func (B Bonds) Copy() Bonds {
	ret := make(Bonds, len(B))
	for k, v := range B {
		ret[k] = v
	}
	return ret
}

// Sorted returns the bonds as a slice, sorted by the first and then
// by the second atom index.
func (B Bonds) Sorted() []Bond {
	ret := make([]Bond, 0, len(B))
	for k, v := range B {
		ret = append(ret, Bond{BondKey: k, Dist: v})
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].I != ret[j].I {
			return ret[i].I < ret[j].I
		}
		return ret[i].J < ret[j].J
	})
	return ret
}

// BuildBondList returns the bonds among the points in coords: every pair
// of indexes i<=j for which the distance between coords[i] and coords[j] lies
// strictly inside the window w. The pair i==j is only included if w.Min is negative.
// The search visits all pairs, so it is thought for small molecules.
func BuildBondList(coords []v3.Vec, w BondWindow) Bonds {
	bonds := make(Bonds)
	tot := len(coords)
	for i := 0; i < tot; i++ {
		for j := i; j < tot; j++ {
			d := Distance(coords[i], coords[j])
			if w.Contains(d) {
				bonds[BondKey{I: i, J: j}] = d
			}
		}
	}
	return bonds
}
