package main

import (
	"fmt"
	"strconv"

	chem "github.com/rmera/molgeo"
	"github.com/rmera/molgeo/xyz"
	"github.com/spf13/cobra"
)

// geometryOptions are shared by the commands that measure one frame of a file.
type geometryOptions struct {
	degrees bool
	frame   int
}

func (o *geometryOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.degrees, "deg", "d", false, "give the angle in degrees")
	cmd.Flags().IntVar(&o.frame, "frame", 0, "frame of the file to use")
}

func (o *geometryOptions) unit() string {
	if o.degrees {
		return "deg"
	}
	return "rad"
}

func atomIndexes(args []string) ([]int, error) {
	idx := make([]int, len(args))
	for n, a := range args {
		i, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid atom index %q: %w", a, err)
		}
		idx[n] = i
	}
	return idx, nil
}

// frameMolecule returns the molecule in the given frame of the XYZ file name.
func frameMolecule(name string, frame int) (*chem.Molecule, error) {
	traj, err := xyz.Read(name)
	if err != nil {
		return nil, err
	}
	if frame < 0 || frame >= traj.NFrames() {
		return nil, fmt.Errorf("frame %d out of range, the file has %d frames", frame, traj.NFrames())
	}
	mol, err := traj.Molecule(name)
	if err != nil {
		return nil, err
	}
	if err := mol.SetCoordinates(traj.Frame(frame).Vecs()); err != nil {
		return nil, err
	}
	return mol, nil
}

func newAngleCmd() *cobra.Command {
	o := &geometryOptions{}
	cmd := &cobra.Command{
		Use:   "angle file i j k",
		Short: "Print the angle formed by atoms i, j and k, with j as the vertex",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := atomIndexes(args[1:])
			if err != nil {
				return err
			}
			mol, err := frameMolecule(args[0], o.frame)
			if err != nil {
				return err
			}
			a, err := mol.Angle(idx[0], idx[1], idx[2], o.degrees)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.4f %s\n", a, o.unit())
			return err
		},
	}
	o.addFlags(cmd)
	return cmd
}

func newDihedralCmd() *cobra.Command {
	o := &geometryOptions{}
	cmd := &cobra.Command{
		Use:   "dihedral file i j k l",
		Short: "Print the dihedral angle formed by atoms i, j, k and l",
		Long: `Prints the angle between the plane of atoms i, j, k and the plane
of atoms j, k, l, in the range (-180, 180] degrees (or the equivalent in radians).`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := atomIndexes(args[1:])
			if err != nil {
				return err
			}
			mol, err := frameMolecule(args[0], o.frame)
			if err != nil {
				return err
			}
			d, err := mol.Dihedral(idx[0], idx[1], idx[2], idx[3], o.degrees)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.4f %s\n", d, o.unit())
			return err
		},
	}
	o.addFlags(cmd)
	return cmd
}
