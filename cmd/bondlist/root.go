package main

import (
	"fmt"

	chem "github.com/rmera/molgeo"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bondlist",
		Short: "Distance-based bond lists for molecules",
		Long: `bondlist reads molecules from XYZ files (optionally gzip or zstd compressed)
and finds their bonds: pairs of atoms closer than a maximum and farther
than a minimum bond length.`,
		SilenceUsage: true,
	}
	root.AddCommand(newBondsCmd(), newAngleCmd(), newDihedralCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "bondlist %s\n", chem.Version)
			return err
		},
	}
}
