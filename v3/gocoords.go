/*
 * gocoords.go, part of molgeo.
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

package v3

import (
	"fmt"
	"math"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// Vec is a point in 3D space, or the displacement between two of them.
type Vec [3]float64

// Add returns v+w
func (v Vec) Add(w Vec) Vec {
	return Vec{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v-w
func (v Vec) Sub(w Vec) Vec {
	return Vec{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns v with each component multiplied by f
func (v Vec) Scale(f float64) Vec {
	return Vec{v[0] * f, v[1] * f, v[2] * f}
}

// Dot returns the scalar product of v and w.
func (v Vec) Dot(w Vec) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Norm returns the euclidean norm of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns the vector of norm 1 parallel to v. It fails
// for vectors of (approximately) zero length, which have no direction.
func (v Vec) Unit() (Vec, error) {
	n := v.Norm()
	if n <= appzero {
		return Vec{}, &Error{ErrZeroVector, []string{"Unit"}, true}
	}
	return v.Scale(1 / n), nil
}

// Cross returns the cross product vxw.
func (v Vec) Cross(w Vec) Vec {
	return Vec{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// IsFinite returns false if any component is NaN or infinite.
func (v Vec) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func (v Vec) String() string {
	return fmt.Sprintf("[%6.3f %6.3f %6.3f]", v[0], v[1], v[2])
}
