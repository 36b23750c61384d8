package xyz

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	chem "github.com/rmera/molgeo"
	v3 "github.com/rmera/molgeo/v3"
)

const waterTraj = `3
water, frame 0
H    2.000000   0.000000   0.000000
O    0.000000   0.000000   0.000000
H   -2.000000   0.000000  -2.000000
3
water, frame 1
H    5.0 0.0 0.0
O    0.0 0.0 0.0
H    0.0 0.0 -2.0

`

func TestReadMultiXYZ(Te *testing.T) {
	traj, err := ReadFrom(strings.NewReader(waterTraj), "water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if traj.NFrames() != 2 || traj.Len() != 3 {
		Te.Fatalf("Expected 2 frames of 3 atoms, got %d of %d", traj.NFrames(), traj.Len())
	}
	if traj.Comment(1) != "water, frame 1" {
		Te.Errorf("Unexpected comment %q", traj.Comment(1))
	}
	mol, err := traj.Molecule("water")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Bonds().Len() != 2 {
		Te.Errorf("Expected 2 bonds in the first frame, got %v", mol.Bonds())
	}
	if err := mol.SetCoordinates(traj.Frame(1).Vecs()); err != nil {
		Te.Fatal(err)
	}
	if mol.Bonds().Len() != 1 {
		Te.Errorf("Expected 1 bond in the second frame, got %v", mol.Bonds())
	}
	fmt.Println(traj.Frame(1))
}

func TestReadErrors(Te *testing.T) {
	bad := map[string]string{
		"empty":          "",
		"no count":       "H 0 0 0\n",
		"truncated":      "3\ncomment\nH 0 0 0\n",
		"bad coordinate": "1\ncomment\nH 0 x 0\n",
		"short line":     "1\ncomment\nH 0 0\n",
		"atom count":     "1\nc\nH 0 0 0\n2\nc\nH 0 0 0\nH 1 0 0\n",
		"symbols":        "1\nc\nH 0 0 0\n1\nc\nO 0 0 0\n",
		"NaN coordinate": "1\ncomment\nH 0 NaN 0\n",
		"inf coordinate": "1\ncomment\nH 0 0 -Inf\n",
	}
	for name, data := range bad {
		_, err := ReadFrom(strings.NewReader(data), name)
		if err == nil {
			Te.Errorf("%s: expected an error", name)
			continue
		}
		var e *Error
		if !errors.As(err, &e) || e.Format() != "xyz" || e.FileName() != name {
			Te.Errorf("%s: unexpected error %v", name, err)
		}
	}
}

func TestReadDecoration(Te *testing.T) {
	dir := Te.TempDir()
	for _, ext := range []string{".xyz", ".xyz.gz"} {
		name := filepath.Join(dir, "bad"+ext)
		//a valid gzip stream is needed to get to the XYZ parsing.
		if err := writeRaw(name, "2\ncomment\nH 0 0 0\n"); err != nil {
			Te.Fatal(err)
		}
		_, err := Read(name)
		var e *Error
		if !errors.As(err, &e) {
			Te.Fatalf("%s: unexpected error %v", ext, err)
		}
		deco := e.Decorate("")
		if len(deco) != 2 || deco[0] != "ReadFrom" || deco[1] != "Read" {
			Te.Errorf("%s: expected decorations [ReadFrom Read], got %v", ext, deco)
		}
		e.Decorate("Caller")
		if d := e.Decorate(""); len(d) != 3 || d[2] != "Caller" {
			Te.Errorf("%s: decoration was not kept, got %v", ext, d)
		}
	}
}

func writeRaw(name, content string) error {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	defer out.Close()
	w, err := compressor(out, name)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, content); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return out.Close()
}

func TestRoundTrip(Te *testing.T) {
	coords := []v3.Vec{{2, 0, 0}, {0, 0, 0}, {-2, 0, -2}}
	mol, err := chem.NewMolecule("water", []string{"H", "O", "H"}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, ext := range []string{".xyz", ".xyz.gz", ".xyz.zst"} {
		name := filepath.Join(dir, "water"+ext)
		if err := Write(name, mol.Coordinates(), mol, "water\nmolecule"); err != nil {
			Te.Fatal(err)
		}
		traj, err := Read(name)
		if err != nil {
			Te.Fatal(err)
		}
		if traj.NFrames() != 1 || traj.Comment(0) != "water molecule" {
			Te.Errorf("%s: unexpected trajectory with %d frames, comment %q", ext, traj.NFrames(), traj.Comment(0))
		}
		for i, c := range traj.Frame(0).Vecs() {
			if chem.Distance(c, coords[i]) > 1e-6 || traj.Symbol(i) != mol.Symbol(i) {
				Te.Errorf("%s: atom %d read as %s %v", ext, i, traj.Symbol(i), c)
			}
		}
	}
	if err := WriteTo(&strings.Builder{}, coords[:2], mol, ""); err == nil {
		Te.Error("WriteTo should fail with mismatched coordinates")
	}
	err = Write(filepath.Join(dir, "short.xyz"), coords[:2], mol, "")
	var e *Error
	if !errors.As(err, &e) {
		Te.Fatalf("Unexpected error from Write: %v", err)
	}
	if d := e.Decorate(""); len(d) != 2 || d[1] != "Write" {
		Te.Errorf("Expected decorations [WriteTo Write], got %v", d)
	}
	if _, err := Read(filepath.Join(dir, "missing.xyz")); err == nil {
		Te.Error("Read should fail for a missing file")
	}
}
