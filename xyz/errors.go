package xyz

import (
	"fmt"

	chem "github.com/rmera/molgeo"
)

// errDecorate is a helper function that decorates the error with the caller's name
// before returning it, if the error implements chem.Error.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(chem.Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

// Error is the general structure for XYZ file errors. *Error fulfills chem.Error
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	if err.filename == "" {
		return "xyz error: " + err.message
	}
	return fmt.Sprintf("xyz file %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file to which the failing operation was associated
func (err *Error) FileName() string { return err.filename }

// Format returns the format of the file (always "xyz") associated to the error
func (err *Error) Format() string { return "xyz" }

// Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

const (
	ReadError    = "Error reading frame"
	UnableToOpen = "Unable to open file"
	WrongFormat  = "Wrong format in the XYZ file or frame"
	NoFrames     = "No frames in XYZ data"
)
