package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "placer",
		Short:         "Place components on a board to minimize interconnect length",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.AddCommand(newDemoCmd())
	cmd.AddCommand(newSolveCmd())
	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newHistoryCmd())

	return cmd
}
