/*
 * gonum.go, part of molgeo.
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

//gonum.go contains what is needed for handling the gonum/mat types.

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of vectors in 3D space, backed by a gonum Dense.
// Within the package it is understood that a "vector" is a row vector, i.e. the
// cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

// Zeros returns a zero-filled Matrix with vecs vectors. vecs must be positive.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Vec returns a copy of the ith vector of the matrix.
func (F *Matrix) Vec(i int) Vec {
	return Vec{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

// SetVec sets the ith vector of the matrix to v.
func (F *Matrix) SetVec(i int, v Vec) {
	F.SetRow(i, v[:])
}

// Vecs returns a copy of every vector in the matrix, in order.
func (F *Matrix) Vecs() []Vec {
	ret := make([]Vec, F.NVecs())
	for i := range ret {
		ret[i] = F.Vec(i)
	}
	return ret
}

// String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r, _ := F.Dims()
	v := make([]string, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	row := make([]float64, 3)
	for i := 0; i < r; i++ {
		mat.Row(row, i, F.Dense)
		if i == 0 {
			v[i+1] = fmt.Sprintf("%6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
			continue
		} else if i == r-1 {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2])
			continue
		} else {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
		}
	}
	v[len(v)-2] = strings.Replace(v[len(v)-2], "\n", "", 1)
	return strings.Join(v, "")
}

//Errors

// Error is the error type of this package. It follows the decorated error
// convention of the rest of the library.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice. An empty dec only returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical return whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("molgeo/v3: A Matrix should have 3 columns")
)

// ErrZeroVector is the message for operations that need a direction
// and are given a zero-length vector.
const ErrZeroVector = "molgeo/v3: zero-length vector has no direction"
