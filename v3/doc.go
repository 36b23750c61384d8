/*
 * doc.go, part of molgeo.
 *
 * Copyright 2015 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

/*
Package v3 implements the two 3D types used by molgeo.

Vec is a fixed-size point (or displacement) in cartesian space, with the
handful of arithmetic operations the geometry functions need. All of them
return new values, a Vec is never modified in place.

Matrix is a row-major Nx3 matrix, each row being one point in space. It is
based on gonum's (gonum.org/v1/gonum/mat) Dense type and is used to move
whole coordinate sets in and out of the library, for instance one frame of
a trajectory file.
*/
package v3
