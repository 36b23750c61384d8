// Package xyz reads and writes molecules in the XYZ format. Files with
// several frames (one after the other, each with its own atom-count and
// comment lines) are read as trajectories. Files ending in .gz or .zst are
// transparently (de)compressed.
package xyz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	chem "github.com/rmera/molgeo"
	v3 "github.com/rmera/molgeo/v3"
)

// Trajectory contains the frames read from an XYZ file. All frames
// share the same atoms.
type Trajectory struct {
	filename string
	symbols  []string
	frames   []*v3.Matrix
	comments []string
}

// Len returns the number of atoms per frame.
func (T *Trajectory) Len() int {
	return len(T.symbols)
}

// NFrames returns the number of frames read.
func (T *Trajectory) NFrames() int {
	return len(T.frames)
}

// Symbol returns the element symbol of the atom i.
func (T *Trajectory) Symbol(i int) string {
	return T.symbols[i]
}

// NumAtoms returns the number of atoms per frame. It is the same as Len,
// and is there so a Trajectory is a chem.Atomer.
func (T *Trajectory) NumAtoms() int {
	return T.Len()
}

// Frame returns the coordinates of the frame i.
func (T *Trajectory) Frame(i int) *v3.Matrix {
	return T.frames[i]
}

// Comment returns the comment line of the frame i.
func (T *Trajectory) Comment(i int) string {
	return T.comments[i]
}

// Molecule builds a molecule with the given name from the atoms and the first frame of
// the trajectory. window is passed on to chem.NewMolecule.
func (T *Trajectory) Molecule(name string, window ...chem.BondWindow) (*chem.Molecule, error) {
	mol, err := chem.NewMolecule(name, T.symbols, T.frames[0].Vecs(), window...)
	if err != nil {
		return nil, errDecorate(err, "Molecule")
	}
	return mol, nil
}

// Read reads the XYZ file name. Files ending in .gz or .zst are decompressed.
func Read(name string) (*Trajectory, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &Error{UnableToOpen + ": " + err.Error(), name, []string{"Read"}, true}
	}
	defer f.Close()
	r, err := decompressor(f, name)
	if err != nil {
		return nil, &Error{"Can't decompress: " + err.Error(), name, []string{"Read"}, true}
	}
	defer r.Close()
	T, err := ReadFrom(r, name)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	return T, nil
}

// ReadFrom reads XYZ data from r. name is only used to identify the data in errors.
func ReadFrom(r io.Reader, name string) (*Trajectory, error) {
	T := &Trajectory{filename: name}
	scanner := bufio.NewScanner(r)
	lineno := 0
	next := func() (string, bool) {
		ok := scanner.Scan()
		lineno++
		return scanner.Text(), ok
	}
	for {
		line, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue //blank lines between or after frames
		}
		natoms, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || natoms <= 0 {
			return nil, &Error{fmt.Sprintf("%s: line %d: invalid number of atoms %q", WrongFormat, lineno, line), name, []string{"ReadFrom"}, true}
		}
		if T.frames != nil && natoms != T.Len() {
			return nil, &Error{fmt.Sprintf("%s: frame %d has %d atoms, expected %d", WrongFormat, len(T.frames), natoms, T.Len()), name, []string{"ReadFrom"}, true}
		}
		comment, ok := next()
		if !ok {
			return nil, &Error{fmt.Sprintf("%s: missing comment line", ReadError), name, []string{"ReadFrom"}, true}
		}
		coords := v3.Zeros(natoms)
		symbols := make([]string, natoms)
		for i := 0; i < natoms; i++ {
			line, ok = next()
			if !ok {
				return nil, &Error{fmt.Sprintf("%s: frame %d ends after %d of %d atoms", ReadError, len(T.frames), i, natoms), name, []string{"ReadFrom"}, true}
			}
			symbols[i], err = readAtomLine(line, coords, i)
			if err != nil {
				return nil, &Error{fmt.Sprintf("%s: line %d: %s", WrongFormat, lineno, err.Error()), name, []string{"ReadFrom"}, true}
			}
		}
		if T.frames == nil {
			T.symbols = symbols
		} else if i, same := sameSymbols(T.symbols, symbols); !same {
			return nil, &Error{fmt.Sprintf("%s: frame %d atom %d is %s, expected %s", WrongFormat, len(T.frames), i, symbols[i], T.symbols[i]), name, []string{"ReadFrom"}, true}
		}
		T.frames = append(T.frames, coords)
		T.comments = append(T.comments, comment)
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{ReadError + ": " + err.Error(), name, []string{"ReadFrom"}, true}
	}
	if len(T.frames) == 0 {
		return nil, &Error{NoFrames, name, []string{"ReadFrom"}, true}
	}
	return T, nil
}

// readAtomLine parses a "Symbol x y z" line, putting the coordinates in the
// vector i of coords. NaN or infinite coordinates are rejected.
func readAtomLine(line string, coords *v3.Matrix, i int) (string, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return "", fmt.Errorf("expected symbol and 3 coordinates, got %q", line)
	}
	var v v3.Vec
	for k := 0; k < 3; k++ {
		f, err := strconv.ParseFloat(fields[k+1], 64)
		if err != nil {
			return "", err
		}
		v[k] = f
	}
	if !v.IsFinite() {
		return "", fmt.Errorf("non-finite coordinates %v", v)
	}
	coords.SetVec(i, v)
	return fields[0], nil
}

func sameSymbols(a, b []string) (int, bool) {
	for i := range a {
		if a[i] != b[i] {
			return i, false
		}
	}
	return -1, true
}

// Write writes coords, with the symbols in mol, as an XYZ file with name name, which will
// be created for that. If the file exist it will be overwritten. Names ending in .gz or .zst
// produce compressed files.
func Write(name string, coords []v3.Vec, mol chem.Atomer, comment string) error {
	out, err := os.Create(name)
	if err != nil {
		return &Error{UnableToOpen + ": " + err.Error(), name, []string{"Write"}, true}
	}
	defer out.Close()
	w, err := compressor(out, name)
	if err != nil {
		return &Error{"Can't compress: " + err.Error(), name, []string{"Write"}, true}
	}
	if err := WriteTo(w, coords, mol, comment); err != nil {
		w.Close()
		return errDecorate(err, "Write")
	}
	if err := w.Close(); err != nil {
		return &Error{err.Error(), name, []string{"Write"}, true}
	}
	return out.Close()
}

// WriteTo writes one XYZ frame with coords and the symbols in mol to w.
// Newlines in comment are replaced by spaces.
func WriteTo(w io.Writer, coords []v3.Vec, mol chem.Atomer, comment string) error {
	if len(coords) != mol.NumAtoms() {
		return &Error{fmt.Sprintf("%d coordinates given for %d atoms", len(coords), mol.NumAtoms()), "", []string{"WriteTo"}, true}
	}
	comment = strings.ReplaceAll(comment, "\n", " ")
	if _, err := fmt.Fprintf(w, "%d\n%s\n", len(coords), comment); err != nil {
		return &Error{err.Error(), "", []string{"WriteTo"}, true}
	}
	for i, c := range coords {
		_, err := fmt.Fprintf(w, "%-2s  %12.6f %12.6f %12.6f\n", mol.Symbol(i), c[0], c[1], c[2])
		if err != nil {
			return &Error{err.Error(), "", []string{"WriteTo"}, true}
		}
	}
	return nil
}

func decompressor(r io.Reader, name string) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return gzip.NewReader(r)
	case ".zst":
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	default:
		return io.NopCloser(r), nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func compressor(w io.Writer, name string) (io.WriteCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return gzip.NewWriter(w), nil
	case ".zst":
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	default:
		return nopWriteCloser{w}, nil
	}
}
