package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	chem "github.com/rmera/molgeo"
	"github.com/rmera/molgeo/chemjson"
	"github.com/rmera/molgeo/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waterTraj = `3
frame 0
H  2 0 0
O  0 0 0
H -2 0 -2
3
frame 1
H  5 0 0
O  0 0 0
H  0 0 -2
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBondsText(t *testing.T) {
	input := writeFile(t, "water.xyz", waterTraj)
	out, err := run(t, "bonds", input, "--fragments")
	require.NoError(t, err)
	assert.Contains(t, out, "# frame 0: water, 3 atoms, 2 bonds")
	assert.Contains(t, out, "# frame 1: water, 3 atoms, 1 bonds")
	assert.Contains(t, out, "# fragment 0: [0 1 2]")
	assert.Contains(t, out, "# fragment 0: [0]")
	assert.Contains(t, out, "# fragment 1: [1 2]")
}

func TestBondsJSON(t *testing.T) {
	input := writeFile(t, "water.xyz", waterTraj)
	out, err := run(t, "bonds", input, "--format", "json", "--max", "2.5")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	mol, err := chemjson.DecodeMolecule(strings.NewReader(lines[0]), chem.BondWindow{Min: 0, Max: 2.5})
	require.NoError(t, err)
	assert.Equal(t, "water", mol.Name())
	assert.Equal(t, 1, mol.Bonds().Len())
	assert.True(t, mol.Bonds().Has(0, 1))
}

func TestBondsConfig(t *testing.T) {
	input := writeFile(t, "water.xyz", waterTraj)
	hist := filepath.Join(t.TempDir(), "lengths.png")
	config := writeFile(t, "run.yaml", "input: "+input+"\nname: h2o\nhistogram: "+hist+"\nbins: 4\n")
	out, err := run(t, "bonds", "--config", config)
	require.NoError(t, err)
	assert.Contains(t, out, "# frame 0: h2o, 3 atoms, 2 bonds")
	info, err := os.Stat(hist)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestBondsErrors(t *testing.T) {
	input := writeFile(t, "water.xyz", waterTraj)
	tests := []struct {
		name string
		args []string
	}{
		{name: "no input", args: []string{"bonds"}},
		{name: "missing file", args: []string{"bonds", filepath.Join(t.TempDir(), "nope.xyz")}},
		{name: "empty window", args: []string{"bonds", input, "--min", "3", "--max", "1"}},
		{name: "bad format", args: []string{"bonds", input, "--format", "xml"}},
		{name: "missing config", args: []string{"bonds", input, "--config", filepath.Join(t.TempDir(), "nope.yaml")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestAngle(t *testing.T) {
	input := writeFile(t, "water.xyz", waterTraj)
	out, err := run(t, "angle", input, "0", "1", "2", "--deg")
	require.NoError(t, err)
	assert.Equal(t, "135.0000 deg\n", out)
	out, err = run(t, "angle", input, "0", "1", "2", "--deg", "--frame", "1")
	require.NoError(t, err)
	assert.Equal(t, "90.0000 deg\n", out)
	_, err = run(t, "angle", input, "0", "0", "2")
	assert.ErrorIs(t, err, chem.ErrDomain)
	_, err = run(t, "angle", input, "0", "1", "x")
	assert.Error(t, err)
	_, err = run(t, "angle", input, "0", "1", "2", "--frame", "2")
	assert.Error(t, err)
}

func TestDihedral(t *testing.T) {
	input := writeFile(t, "peroxide.xyz", "4\nHOOH\nH 1 0 0\nO 0 0 0\nO 0 1.5 0\nH 0 1.5 1\n")
	out, err := run(t, "dihedral", input, "0", "1", "2", "3", "-d")
	require.NoError(t, err)
	assert.Equal(t, "-90.0000 deg\n", out)
	_, err = run(t, "dihedral", input, "0", "1", "1", "3")
	assert.ErrorIs(t, err, chem.ErrDomain)
	_, err = run(t, "dihedral", input, "0", "1", "2", "4")
	assert.ErrorIs(t, err, chem.ErrInvalidArgument)
	_, err = run(t, "dihedral", input, "0", "1", "2")
	assert.Error(t, err)
}

type failingWriter struct {
	writes int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	f.writes++
	return 0, errors.New("disk full")
}

func TestWriteFrameError(t *testing.T) {
	input := writeFile(t, "water.xyz", waterTraj)
	traj, err := xyz.Read(input)
	require.NoError(t, err)
	mol, err := traj.Molecule("water")
	require.NoError(t, err)
	w := &failingWriter{}
	err = writeFrame(w, 0, mol, mol.Bonds(), true)
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, 1, w.writes, "writing should stop after the first error")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "bondlist "+chem.Version+"\n", out)
}
