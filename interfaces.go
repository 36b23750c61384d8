/*
 * interfaces.go, part of molgeo.
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
	"errors"
	"fmt"
)

// Atomer is the basic interface for a set of atoms.
type Atomer interface {

	//Symbol returns the element symbol of the atom i.
	//Should panic if out of range.
	Symbol(i int) string

	//NumAtoms returns the number of atoms
	NumAtoms() int
}

// Bonder is an Atomer that also knows its bonds.
type Bonder interface {
	Atomer
	Bonds() Bonds
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	Critical() bool
}

// Kinds of errors returned by this package. Use errors.Is to check for them.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDomain          = errors.New("domain error")
)

// CError is the error type for the chem package.
type CError struct {
	msg      string
	kind     error
	deco     []string
	critical bool
}

// Error returns a string with the kind and message of the error.
func (err *CError) Error() string {
	return fmt.Sprintf("%s: %s", err.kind, err.msg)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored
func (err *CError) Critical() bool { return err.critical }

// Unwrap returns the kind of the error, so errors.Is works with
// ErrInvalidArgument and ErrDomain.
func (err *CError) Unwrap() error { return err.kind }

func newError(kind error, caller, format string, a ...interface{}) *CError {
	return &CError{msg: fmt.Sprintf(format, a...), kind: kind, deco: []string{caller}, critical: true}
}

// errDecorate decorates the error with the caller's name before returning it,
// if it implements Error. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
