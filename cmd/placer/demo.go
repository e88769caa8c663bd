package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/demetriusdemiurge/placer/internal/model"
)

func newDemoCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the built-in demo design as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := model.DemoDesign()
			data, err := json.MarshalIndent(d, "", "  ")
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			return os.WriteFile(out, data, 0644)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write the design to a file instead of stdout")
	return cmd
}
