// Package cfg reads the YAML configuration of a bondlist run.
package cfg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	chem "github.com/rmera/molgeo"
	"gopkg.in/yaml.v3"
)

// Format is the output format of the bond list
type Format string

// Accepted formats. FText is a human-readable table, FJSON one JSON molecule per frame.
var (
	FText Format = "text"
	FJSON Format = "json"
)

// Cfg is a structure containing the parameters specified in the configuration
// file. It can be instanced through the New function or by "hand". If it is
// instanced by hand, please start from Default and use the Check method.
type Cfg struct {
	// Input is the XYZ file with the molecule (can be compressed)
	Input string `yaml:"input"`

	// Name is the name given to the molecule. If empty, the input file name is used.
	Name string `yaml:"name"`

	// MinBond is the (exclusive) lower limit for bond lengths
	MinBond float64 `yaml:"minBond"`

	// MaxBond is the (exclusive) upper limit for bond lengths
	MaxBond float64 `yaml:"maxBond"`

	// Format is the output format
	Format Format `yaml:"format"`

	// Histogram, if not empty, is the image file for a histogram of bond lengths
	Histogram string `yaml:"histogram"`

	// Bins is the number of bins of the histogram
	Bins int `yaml:"bins"`

	// Fragments requests the list of bonded fragments of each frame
	Fragments bool `yaml:"fragments"`
}

// Default returns the configuration used when no file is given.
func Default() *Cfg {
	return &Cfg{
		MinBond: chem.DefaultMinBond,
		MaxBond: chem.DefaultMaxBond,
		Format:  FText,
		Bins:    20,
	}
}

// New opens and decodes the specified configuration file. The file must be
// a YAML file. Fields not in the file keep their default values.
// This function automatically calls the Check method.
func New(path string) (*Cfg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(bufio.NewReader(f))
}

// Decode reads a YAML configuration from r and checks it.
func Decode(r io.Reader) (*Cfg, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(c)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	err = c.Check()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

// Check checks if Cfg is correct. It returns an error if a field doesn't meet
// the requirements. The input file is not required, as it can be given later.
func (c *Cfg) Check() error {
	if err := c.Window().Check(); err != nil {
		return err
	}
	if c.Format != FText && c.Format != FJSON {
		return fmt.Errorf("unsupported format %q", c.Format)
	}
	if c.Bins < 1 {
		return fmt.Errorf("bins must be greater than 0")
	}
	return nil
}

// Window returns the bond window of the configuration.
func (c *Cfg) Window() chem.BondWindow {
	return chem.BondWindow{Min: c.MinBond, Max: c.MaxBond}
}
