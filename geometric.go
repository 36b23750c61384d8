/*
 * geometric.go, part of molgeo.
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
	"math"

	v3 "github.com/rmera/molgeo/v3"
)

// Distance returns the euclidean distance between the points p1 and p2.
func Distance(p1, p2 v3.Vec) float64 {
	return p1.Sub(p2).Norm()
}

// Angle returns the angle at vertex p2 between the rays from p2 to p1 and from p2 to p3.
// The angle is given in radians, or in degrees if degrees is true. The angle is
// not defined if p2 coincides with p1 or p3, and an error of kind ErrDomain is returned.
func Angle(p1, p2, p3 v3.Vec, degrees bool) (float64, error) {
	u1, err := p1.Sub(p2).Unit()
	if err != nil {
		return 0, newError(ErrDomain, "Angle", "vertex %v coincides with the first point %v", p2, p1)
	}
	u3, err := p3.Sub(p2).Unit()
	if err != nil {
		return 0, newError(ErrDomain, "Angle", "vertex %v coincides with the third point %v", p2, p3)
	}
	argument := u1.Dot(u3)
	//Take care of floating point math errors
	if argument > 1 {
		argument = 1
	} else if argument < -1 {
		argument = -1
	}
	angle := math.Acos(argument)
	if degrees {
		return angle * Rad2Deg, nil
	}
	return angle, nil
}

// Dihedral returns the dihedral (torsion) angle defined by the points p1 to p4, i.e.
// the angle between the plane of p1, p2, p3 and the plane of p2, p3, p4, in the range
// (-pi, pi], or (-180, 180] if degrees is true. It is not defined if p1, p2, p3
// or p2, p3, p4 are collinear, and an error of kind ErrDomain is returned.
func Dihedral(p1, p2, p3, p4 v3.Vec, degrees bool) (float64, error) {
	b1 := p2.Sub(p1)
	b2 := p3.Sub(p2)
	b3 := p4.Sub(p3)
	n1, err := b1.Cross(b2).Unit()
	if err != nil {
		return 0, newError(ErrDomain, "Dihedral", "points %v %v %v are collinear", p1, p2, p3)
	}
	n2, err := b2.Cross(b3).Unit()
	if err != nil {
		return 0, newError(ErrDomain, "Dihedral", "points %v %v %v are collinear", p2, p3, p4)
	}
	u2, _ := b2.Unit() //can't fail if n1 didn't.
	dihedral := math.Atan2(n1.Cross(n2).Dot(u2), n1.Dot(n2))
	if degrees {
		return dihedral * Rad2Deg, nil
	}
	return dihedral, nil
}
