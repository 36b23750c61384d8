package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	chem "github.com/rmera/molgeo"
	"github.com/rmera/molgeo/cfg"
	"github.com/rmera/molgeo/chemgraph"
	"github.com/rmera/molgeo/chemjson"
	"github.com/rmera/molgeo/chemplot"
	"github.com/rmera/molgeo/chemstat"
	"github.com/rmera/molgeo/xyz"
	"github.com/spf13/cobra"
)

type bondsOptions struct {
	config    string
	minBond   float64
	maxBond   float64
	format    string
	histogram string
	bins      int
	fragments bool
}

func newBondsCmd() *cobra.Command {
	o := &bondsOptions{}
	cmd := &cobra.Command{
		Use:   "bonds [file]",
		Short: "Print the bond list of each frame of an XYZ file",
		Long: `Prints the bonds of the molecule in each frame of an XYZ file. The bond
list is rebuilt for every frame. Values in the configuration file given with
--config are overridden by the flags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.resolve(cmd, args)
			if err != nil {
				return err
			}
			return runBonds(cmd.OutOrStdout(), c)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.config, "config", "c", "", "YAML configuration file")
	f.Float64Var(&o.minBond, "min", chem.DefaultMinBond, "minimum bond length (exclusive)")
	f.Float64Var(&o.maxBond, "max", chem.DefaultMaxBond, "maximum bond length (exclusive)")
	f.StringVarP(&o.format, "format", "f", string(cfg.FText), "output format: text or json")
	f.StringVar(&o.histogram, "hist", "", "save a histogram of the bond lengths of all frames to this image file")
	f.IntVar(&o.bins, "bins", 20, "number of bins for the histogram")
	f.BoolVar(&o.fragments, "fragments", false, "also print the bonded fragments of each frame")
	return cmd
}

// resolve merges the configuration file, the flags that were set and the
// positional argument, in that order of precedence (lowest first).
func (o *bondsOptions) resolve(cmd *cobra.Command, args []string) (*cfg.Cfg, error) {
	c := cfg.Default()
	if o.config != "" {
		var err error
		c, err = cfg.New(o.config)
		if err != nil {
			return nil, fmt.Errorf("reading configuration %s: %w", o.config, err)
		}
	}
	f := cmd.Flags()
	if f.Changed("min") {
		c.MinBond = o.minBond
	}
	if f.Changed("max") {
		c.MaxBond = o.maxBond
	}
	if f.Changed("format") {
		c.Format = cfg.Format(o.format)
	}
	if f.Changed("hist") {
		c.Histogram = o.histogram
	}
	if f.Changed("bins") {
		c.Bins = o.bins
	}
	if f.Changed("fragments") {
		c.Fragments = o.fragments
	}
	if len(args) > 0 {
		c.Input = args[0]
	}
	if c.Input == "" {
		return nil, errors.New("no input file given")
	}
	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return c, nil
}

func moleculeName(c *cfg.Cfg) string {
	if c.Name != "" {
		return c.Name
	}
	base := filepath.Base(c.Input)
	for _, ext := range []string{".gz", ".zst", ".xyz"} {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

func runBonds(out io.Writer, c *cfg.Cfg) error {
	traj, err := xyz.Read(c.Input)
	if err != nil {
		return err
	}
	mol, err := traj.Molecule(moleculeName(c), c.Window())
	if err != nil {
		return err
	}
	var lengths []float64
	for frame := 0; frame < traj.NFrames(); frame++ {
		if frame > 0 {
			if err := mol.SetCoordinates(traj.Frame(frame).Vecs()); err != nil {
				return fmt.Errorf("frame %d: %w", frame, err)
			}
		}
		bonds := mol.Bonds()
		if c.Histogram != "" {
			lengths = append(lengths, chemstat.BondLengths(bonds)...)
		}
		switch c.Format {
		case cfg.FJSON:
			err = chemjson.EncodeMolecule(mol, out)
		default:
			err = writeFrame(out, frame, mol, bonds, c.Fragments)
		}
		if err != nil {
			return err
		}
	}
	if c.Histogram != "" {
		if len(lengths) == 0 {
			log.Printf("no bonds found, histogram %s not written", c.Histogram)
			return nil
		}
		title := fmt.Sprintf("Bond lengths, %s", mol.Name())
		if err := chemplot.LengthHistogram(lengths, c.Bins, title, c.Histogram); err != nil {
			return fmt.Errorf("writing histogram: %w", err)
		}
	}
	return nil
}

// errWriter keeps the first error of a series of writes, after which
// it writes nothing.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, a ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, a...)
}

func writeFrame(out io.Writer, frame int, mol *chem.Molecule, bonds chem.Bonds, fragments bool) error {
	ew := &errWriter{w: out}
	w := mol.Window()
	ew.printf("# frame %d: %s, %d atoms, %d bonds (window %.3f-%.3f)\n", frame, mol.Name(), mol.NumAtoms(), bonds.Len(), w.Min, w.Max)
	for _, b := range bonds.Sorted() {
		ew.printf("%5d %-2s %5d %-2s %10.4f\n", b.I, mol.Symbol(b.I), b.J, mol.Symbol(b.J), b.Dist)
	}
	if bonds.Len() > 0 {
		ew.printf("# %s\n", chemstat.Summarize(bonds))
	}
	if fragments {
		g := chemgraph.FromBonds(mol.NumAtoms(), bonds)
		for i, f := range g.Fragments() {
			ew.printf("# fragment %d: %v\n", i, f)
		}
	}
	ew.printf("\n")
	return ew.err
}
