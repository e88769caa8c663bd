package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/demetriusdemiurge/placer/internal/history"
)

func newHistoryCmd() *cobra.Command {
	var designID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded solver runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := history.DefaultPath()
			if err != nil {
				return err
			}
			entries, err := history.Load(path)
			if err != nil {
				return err
			}

			for _, e := range entries {
				if designID != "" && e.DesignID != designID {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-10s  design=%s  score=%.4f  ran=%s\n",
					e.ID, e.Solver, e.DesignID, e.Metrics.Score, e.RanAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&designID, "design-id", "", "only show runs for this design ID")
	return cmd
}
