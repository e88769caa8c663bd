package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/demetriusdemiurge/placer/internal/importer"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Build a design from an external source",
	}
	cmd.AddCommand(newImportSpreadsheetCmd())
	cmd.AddCommand(newImportDXFCmd())
	return cmd
}

func newImportSpreadsheetCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "xlsx [path]",
		Short: "Import Components/Nets/Links sheets from a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := importer.ImportSpreadsheet(args[0])
			for _, w := range result.Warnings {
				fmt.Fprintln(os.Stderr, "warning:", w)
			}
			if len(result.Errors) > 0 {
				for _, e := range result.Errors {
					fmt.Fprintln(os.Stderr, "error:", e)
				}
				return fmt.Errorf("import failed with %d error(s)", len(result.Errors))
			}

			data, err := json.MarshalIndent(result.Design, "", "  ")
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

func newImportDXFCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "dxf [path]",
		Short: "Derive a board outline and position field from a DXF drawing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := importer.ImportBoardDXF(args[0])
			for _, w := range result.Warnings {
				fmt.Fprintln(os.Stderr, "warning:", w)
			}
			if len(result.Errors) > 0 {
				for _, e := range result.Errors {
					fmt.Fprintln(os.Stderr, "error:", e)
				}
				return fmt.Errorf("import failed with %d error(s)", len(result.Errors))
			}

			payload := struct {
				Board interface{} `json:"board"`
				Field interface{} `json:"field"`
			}{Board: result.Board, Field: result.Field}

			data, err := json.MarshalIndent(payload, "", "  ")
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

	cmd.Flags().StringVar(&out, "out", "", "write the board/field JSON to a file instead of stdout")
	return cmd
}
