package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kmiernik/nuchart"
)

var s2nCmd = &cobra.Command{
	Use:   "s2n <datafile> [outfile]",
	Short: "Tabulate two-neutron separation energies",
	Long: "S2n derives the two-neutron separation energy for every nuclide whose\n" +
		"mass excess and (Z, N-2) neighbor are both measured. Writes to stdout\n" +
		"when no outfile is given.",
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeparation(cmd, args, nuchart.TwoNeutron)
	},
}

var s2pCmd = &cobra.Command{
	Use:   "s2p <datafile> [outfile]",
	Short: "Tabulate two-proton separation energies",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeparation(cmd, args, nuchart.TwoProton)
	},
}

func init() {
	rootCmd.AddCommand(s2nCmd)
	rootCmd.AddCommand(s2pCmd)
}

func runSeparation(cmd *cobra.Command, args []string, kind nuchart.SeparationKind) error {
	table, err := loadTable(cmd, args[0])
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if len(args) == 2 {
		f, err := os.Create(args[1])
		if err != nil {
			return fmt.Errorf("output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := nuchart.WriteSeparationTable(out, table, kind); err != nil {
		return err
	}
	logger.Info("separation table written", zap.Stringer("kind", kind))
	return nil
}
